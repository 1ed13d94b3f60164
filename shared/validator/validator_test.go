package validator_test

import (
	"strings"
	"testing"

	"clinic/shared/failure"
	"clinic/shared/validator"
)

type bookingPayload struct {
	PatientName string `json:"patientName" validate:"required"`
	Phone       string `json:"phone"       validate:"required,phone"`
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name: "valid payload",
			body: `{"patientName": "Jane Doe", "phone": "555-1234"}`,
		},
		{
			name:    "missing name",
			body:    `{"phone": "555-1234"}`,
			wantErr: "PatientName is required",
		},
		{
			name:    "malformed json",
			body:    `{"patientName": `,
			wantErr: "failed to decode request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := bookingPayload{}
			err := validator.Validate(strings.NewReader(tt.body), &payload)

			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}

				return
			}

			if err == nil {
				t.Fatal("expected error, got nil")
			}

			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %q", tt.wantErr, err.Error())
			}

			if failure.GetCode(err) != 400 {
				t.Errorf("expected code 400, got %d", failure.GetCode(err))
			}
		})
	}
}

func TestValidateStruct_PhoneTag(t *testing.T) {
	tests := []struct {
		name    string
		phone   string
		wantErr bool
	}{
		{name: "digits and dash", phone: "555-1234"},
		{name: "international", phone: "+62 812 3456"},
		{name: "too short", phone: "12345", wantErr: true},
		{name: "too long", phone: "1234567890123456", wantErr: true},
		{name: "letters", phone: "call-me-maybe", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := bookingPayload{PatientName: "Jane Doe", Phone: tt.phone}
			err := validator.ValidateStruct(&payload)

			if tt.wantErr && err == nil {
				t.Errorf("expected error for phone %q", tt.phone)
			}

			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error for phone %q: %v", tt.phone, err)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	if err := validator.ValidateVar("jane@example.com", "email"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	if err := validator.ValidateVar("not-an-email", "email"); err == nil {
		t.Error("expected error for invalid email")
	}
}
