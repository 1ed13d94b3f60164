package dto

import (
	"time"

	"github.com/google/uuid"

	"clinic/internal/domains/appointment/model"
	"clinic/shared"
	"clinic/shared/failure"
	"clinic/shared/timezone"
)

type BookAppointmentRequest struct {
	PatientName         string `json:"patientName"         validate:"required,max=100"`
	Phone               string `json:"phone"               validate:"required,phone"`
	PatientEmail        string `json:"patientEmail"        validate:"omitempty,max=100"`
	AppointmentDatetime string `json:"appointmentDatetime" validate:"required"`
	Reason              string `json:"reason"              validate:"omitempty,max=2000"`
}

// ParseDatetime interprets the requested slot as RFC 3339, applying the
// configured timezone when the caller omits an offset.
func (b *BookAppointmentRequest) ParseDatetime() (time.Time, error) {
	at, err := timezone.Parse(time.RFC3339, b.AppointmentDatetime)
	if err != nil {
		return time.Time{}, failure.BadRequestFromString("appointmentDatetime must be a valid RFC 3339 timestamp")
	}

	return at, nil
}

func (b *BookAppointmentRequest) ToModel(at, now time.Time) model.Appointment {
	return model.Appointment{
		ID:                  uuid.NewString(),
		PatientName:         b.PatientName,
		Phone:               b.Phone,
		PatientEmail:        b.PatientEmail,
		AppointmentDatetime: at,
		Reason:              b.Reason,
		Status:              model.StatusPending,
		CreatedAt:           now,
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type AppointmentResponse struct {
	ID                  string `json:"id"`
	PatientName         string `json:"patientName"`
	Phone               string `json:"phone"`
	PatientEmail        string `json:"patientEmail"`
	AppointmentDatetime string `json:"appointmentDatetime"`
	Reason              string `json:"reason"`
	Status              string `json:"status"`
	CreatedAt           string `json:"createdAt"`
}

func (r *AppointmentResponse) FromModel(model model.Appointment) {
	r.ID = model.ID
	r.PatientName = model.PatientName
	r.Phone = model.Phone
	r.PatientEmail = model.PatientEmail
	r.AppointmentDatetime = model.AppointmentDatetime.Format(time.RFC3339)
	r.Reason = model.Reason
	r.Status = model.Status.String()
	r.CreatedAt = model.CreatedAt.Format(time.RFC3339)
}

type GetAppointmentsResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetAppointmentsResponse) FromModels(models []model.Appointment, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Appointments = make([]AppointmentResponse, len(models))
	for i, mod := range models {
		r.Appointments[i].FromModel(mod)
	}
}
