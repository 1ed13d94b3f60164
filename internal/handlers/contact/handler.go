package contact

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"clinic/infras/otel"
	"clinic/internal/domains/contact/model/dto"
	"clinic/internal/domains/contact/service"
	"clinic/shared/constant"
	"clinic/shared/validator"
	"clinic/transport/http/response"
)

type Handler struct {
	service service.Contact
	otel    otel.Otel
}

func New(service service.Contact, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/contact", handler.SubmitContact)
}

// SubmitContact handles a public contact form submission.
// @Summary Submit a contact message
// @Description Submit a contact form message to the clinic.
// @Tags Contact
// @Accept json
// @Produce json
// @Param request body dto.ContactRequest true "Contact Request"
// @Success 200 {object} response.Base[any] "Message received"
// @Failure 400 {object} response.Base[any]
// @Failure 500 {object} response.Base[any]
// @Router /v1/contact [post]
func (handler *Handler) SubmitContact(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitContact")
	defer scope.End()

	req := dto.ContactRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to submit contact message")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Contact message submitted successfully")

	response.WithMessage(writer, http.StatusOK, "Thank you for contacting us! We'll get back to you within 24 hours.")
}
