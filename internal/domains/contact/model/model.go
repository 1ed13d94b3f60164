package model

import "time"

const (
	TableName  = "contact_messages"
	EntityName = "contact message"

	FieldID = "id"
)

type ContactMessage struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Phone     string    `db:"phone"`
	Message   string    `db:"message"`
	CreatedAt time.Time `db:"created_at"`
}
