package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"clinic/internal/domains/appointment/model"
	"clinic/internal/domains/appointment/model/dto"
)

func TestBookAppointmentRequest_ParseDatetime(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "rfc3339 with offset", value: "2026-09-15T10:30:00+07:00"},
		{name: "rfc3339 utc", value: "2026-09-15T03:30:00Z"},
		{name: "date only", value: "2026-09-15", wantErr: true},
		{name: "free-form text", value: "next tuesday", wantErr: true},
		{name: "empty", value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.BookAppointmentRequest{AppointmentDatetime: tt.value}

			at, err := req.ParseDatetime()

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.False(t, at.IsZero())
		})
	}
}

func TestBookAppointmentRequest_ToModel(t *testing.T) {
	req := dto.BookAppointmentRequest{
		PatientName:         "John Doe",
		Phone:               "08123456789",
		PatientEmail:        "john@example.com",
		AppointmentDatetime: "2026-09-15T10:30:00Z",
		Reason:              "General checkup",
	}

	at, err := req.ParseDatetime()
	assert.NoError(t, err)

	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	appointment := req.ToModel(at, now)

	assert.NotEmpty(t, appointment.ID)
	assert.Equal(t, req.PatientName, appointment.PatientName)
	assert.Equal(t, req.Phone, appointment.Phone)
	assert.Equal(t, req.PatientEmail, appointment.PatientEmail)
	assert.True(t, appointment.AppointmentDatetime.Equal(at))
	assert.Equal(t, req.Reason, appointment.Reason)
	assert.Equal(t, model.StatusPending, appointment.Status)
	assert.True(t, appointment.CreatedAt.Equal(now))

	other := req.ToModel(at, now)
	assert.NotEqual(t, appointment.ID, other.ID)
}

func TestAppointmentResponse_FromModel(t *testing.T) {
	at := time.Date(2026, 9, 15, 10, 30, 0, 0, time.UTC)
	created := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)

	appointment := model.Appointment{
		ID:                  "appointment-1",
		PatientName:         "John Doe",
		Phone:               "08123456789",
		PatientEmail:        "john@example.com",
		AppointmentDatetime: at,
		Reason:              "General checkup",
		Status:              model.StatusConfirmed,
		CreatedAt:           created,
	}

	var res dto.AppointmentResponse
	res.FromModel(appointment)

	assert.Equal(t, "appointment-1", res.ID)
	assert.Equal(t, "2026-09-15T10:30:00Z", res.AppointmentDatetime)
	assert.Equal(t, "2026-09-01T08:00:00Z", res.CreatedAt)
	assert.Equal(t, "CONFIRMED", res.Status)
}

func TestGetAppointmentsResponse_FromModels(t *testing.T) {
	models := []model.Appointment{
		{ID: "appointment-1", Status: model.StatusPending},
		{ID: "appointment-2", Status: model.StatusCancelled},
	}

	var res dto.GetAppointmentsResponse
	res.FromModels(models, 12, 5)

	assert.Len(t, res.Appointments, 2)
	assert.Equal(t, 12, res.TotalData)
	assert.Equal(t, 3, res.TotalPage)
	assert.Equal(t, "appointment-1", res.Appointments[0].ID)
}
