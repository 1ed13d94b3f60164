package failure_test

import (
	"errors"
	"net/http"
	"testing"

	"clinic/shared/failure"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestBadRequest(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected error
	}{
		{
			name:     "with error",
			input:    errors.New("validation failed"),
			expected: &failure.Failure{Code: http.StatusBadRequest, Message: "validation failed"},
		},
		{
			name:     "with nil error",
			input:    nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := failure.BadRequest(tt.input)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("expected nil, got %v", result)
				}

				return
			}

			f, ok := result.(*failure.Failure)
			if !ok {
				t.Fatalf("expected result to be *failure.Failure, got %T", result)
			}

			expectedF := tt.expected.(*failure.Failure)
			if f.Code != expectedF.Code || f.Message != expectedF.Message {
				t.Errorf("expected %+v, got %+v", expectedF, f)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected int
	}{
		{
			name:     "unauthorized failure",
			input:    failure.Unauthorized("Unauthorized: invalid admin secret"),
			expected: http.StatusUnauthorized,
		},
		{
			name:     "not found failure",
			input:    failure.NotFound("appointment not found"),
			expected: http.StatusNotFound,
		},
		{
			name:     "bad request failure",
			input:    failure.BadRequestFromString("appointment must be in the future"),
			expected: http.StatusBadRequest,
		},
		{
			name:     "plain error maps to internal",
			input:    errors.New("connection refused"),
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if code := failure.GetCode(tt.input); code != tt.expected {
				t.Errorf("expected code %d, got %d", tt.expected, code)
			}
		})
	}
}

func TestIsClientError(t *testing.T) {
	if !failure.IsClientError(failure.NotFound("appointment not found")) {
		t.Error("expected NotFound to be a client error")
	}

	if failure.IsClientError(errors.New("boom")) {
		t.Error("expected plain error to not be a client error")
	}
}
