package middleware

import (
	"crypto/subtle"
	"net/http"

	"clinic/config"
	"clinic/infras/otel"
	"clinic/shared/constant"
	"clinic/shared/failure"
	"clinic/transport/http/response"
)

// AdminGate guards every privileged (non-create) appointment operation with a
// single static shared secret, supplied by the caller as the adminSecret query
// parameter. This is deliberately a placeholder authorization layer: there is
// no session, expiry, rotation, or per-admin identity. See config.Config for
// the development fallback behavior.
type AdminGate interface {
	Gate(next http.Handler) http.Handler
}

type adminGateImpl struct {
	secret string
	otel   otel.Otel
}

func NewAdminGate(cfg *config.Config, otel otel.Otel) AdminGate {
	return &adminGateImpl{
		secret: cfg.App.AdminSecret,
		otel:   otel,
	}
}

// Gate rejects the request with 401 before any handler logic runs when the
// supplied secret does not match. The response never discloses whether the
// targeted resource exists.
func (m *adminGateImpl) Gate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		_, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "admin_gate.middleware")
		defer scope.End()

		supplied := request.URL.Query().Get(constant.RequestParamAdminSecret)

		if subtle.ConstantTimeCompare([]byte(supplied), []byte(m.secret)) != 1 {
			err := failure.Unauthorized("Unauthorized: invalid admin secret")

			scope.TraceError(err)
			response.WithError(writer, err)

			return
		}

		next.ServeHTTP(writer, request)
	})
}
