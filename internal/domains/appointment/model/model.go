package model

import (
	"time"
)

const (
	TableName  = "appointments"
	EntityName = "appointment"

	FieldID                  = "id"
	FieldPatientName         = "patient_name"
	FieldPhone               = "phone"
	FieldPatientEmail        = "patient_email"
	FieldAppointmentDatetime = "appointment_datetime"
	FieldReason              = "reason"
	FieldStatus              = "status"
	FieldCreatedAt           = "created_at"
)

// Appointment is a patient's booking request once it has been accepted and
// persisted. ID and CreatedAt are assigned server-side exactly once; the
// appointment datetime was strictly in the future at booking time, but is
// never re-validated afterwards.
type Appointment struct {
	ID                  string    `db:"id"`
	PatientName         string    `db:"patient_name"`
	Phone               string    `db:"phone"`
	PatientEmail        string    `db:"patient_email"`
	AppointmentDatetime time.Time `db:"appointment_datetime"`
	Reason              string    `db:"reason"`
	Status              Status    `db:"status"`
	CreatedAt           time.Time `db:"created_at"`
}
