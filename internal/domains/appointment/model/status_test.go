package model_test

import (
	"strings"
	"testing"

	"clinic/internal/domains/appointment/model"
	"clinic/shared/failure"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name     string
		label    string
		expected model.Status
		wantErr  bool
	}{
		{name: "canonical pending", label: "PENDING", expected: model.StatusPending},
		{name: "lowercase confirmed", label: "confirmed", expected: model.StatusConfirmed},
		{name: "mixed case cancelled", label: "CanCelled", expected: model.StatusCancelled},
		{name: "surrounding whitespace", label: "  pending ", expected: model.StatusPending},
		{name: "unknown label", label: "done", wantErr: true},
		{name: "empty label", label: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, err := model.ParseStatus(tt.label)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for label %q", tt.label)
				}

				if failure.GetCode(err) != 400 {
					t.Errorf("expected code 400, got %d", failure.GetCode(err))
				}

				for _, canonical := range []string{"PENDING", "CONFIRMED", "CANCELLED"} {
					if !strings.Contains(err.Error(), canonical) {
						t.Errorf("expected error message to enumerate %s, got %q", canonical, err.Error())
					}
				}

				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if status != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, status)
			}
		})
	}
}

func TestStatus_Valid(t *testing.T) {
	for _, status := range []model.Status{model.StatusPending, model.StatusConfirmed, model.StatusCancelled} {
		if !status.Valid() {
			t.Errorf("expected %s to be valid", status)
		}
	}

	if model.Status("DONE").Valid() {
		t.Error("expected DONE to be invalid")
	}

	if model.Status("").Valid() {
		t.Error("expected empty status to be invalid")
	}
}
