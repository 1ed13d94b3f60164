package response

import (
	"encoding/json"
	"net/http"

	"clinic/shared/constant"
	"clinic/shared/failure"
	"clinic/shared/logger"
)

// Base is the uniform response envelope used by every endpoint.
type Base[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    *T     `json:"data,omitempty"`
}

// WithMessage sends a successful response carrying only a message.
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Base[any]{Success: true, Message: message})
}

// WithJSON sends a successful response carrying a message and a JSON payload.
func WithJSON(writer http.ResponseWriter, code int, message string, jsonPayload interface{}) {
	response(writer, code, Base[any]{Success: true, Message: message, Data: &jsonPayload})
}

// WithError sends a failed response; the status code is derived from the error.
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)

	response(writer, code, Base[any]{Success: false, Message: err.Error()})
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	response(writer, http.StatusTooManyRequests, Base[any]{Success: false, Message: constant.ResponseErrorRequestLimitExceeded})
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	response(writer, http.StatusServiceUnavailable, Base[any]{Success: false, Message: constant.ResponseErrorPrepareShutdown})
}

// WithUnhealthy sends a default response for when the server is unhealthy
func WithUnhealthy(writer http.ResponseWriter) {
	response(writer, http.StatusServiceUnavailable, Base[any]{Success: false, Message: constant.ResponseErrorUnhealthy})
}

func response(writer http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(response)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}
