package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"clinic/config"
	otelMocks "clinic/infras/otel/mocks"
	"clinic/transport/http/middleware"
	"clinic/transport/http/response"
)

func TestAdminGate(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.AdminSecret = "super-secret"

	gate := middleware.NewAdminGate(cfg, otelMocks.NewOtel())

	next := http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writer.WriteHeader(http.StatusOK)
		_, _ = writer.Write([]byte("reached"))
	})

	tests := []struct {
		name           string
		target         string
		expectedStatus int
		expectReached  bool
	}{
		{
			name:           "correct secret passes through",
			target:         "/v1/appointments?adminSecret=super-secret",
			expectedStatus: http.StatusOK,
			expectReached:  true,
		},
		{
			name:           "wrong secret is rejected",
			target:         "/v1/appointments?adminSecret=guess",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "missing secret is rejected",
			target:         "/v1/appointments",
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodGet, test.target, nil)
			recorder := httptest.NewRecorder()

			gate.Gate(next).ServeHTTP(recorder, request)

			assert.Equal(t, test.expectedStatus, recorder.Code)

			if test.expectReached {
				assert.Equal(t, "reached", recorder.Body.String())

				return
			}

			var body response.Base[any]
			err := json.Unmarshal(recorder.Body.Bytes(), &body)

			assert.NoError(t, err)
			assert.False(t, body.Success)
			assert.Equal(t, "Unauthorized: invalid admin secret", body.Message)
		})
	}
}
