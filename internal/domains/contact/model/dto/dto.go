package dto

import (
	"time"

	"github.com/google/uuid"

	"clinic/internal/domains/contact/model"
)

type ContactRequest struct {
	Name    string `json:"name"    validate:"required,max=100"`
	Email   string `json:"email"   validate:"required,email,max=100"`
	Phone   string `json:"phone"   validate:"omitempty,phone"`
	Message string `json:"message" validate:"omitempty,max=2000"`
}

func (c *ContactRequest) ToModel(now time.Time) model.ContactMessage {
	return model.ContactMessage{
		ID:        uuid.NewString(),
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Message:   c.Message,
		CreatedAt: now,
	}
}
