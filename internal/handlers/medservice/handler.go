package medservice

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"clinic/infras/otel"
	"clinic/internal/domains/medservice/service"
	"clinic/shared/constant"
	gDto "clinic/shared/dto"
	"clinic/transport/http/response"
)

type Handler struct {
	service service.MedicalService
	otel    otel.Otel
}

func New(service service.MedicalService, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/services", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetServices)
		routerGroup.Get("/{id}", handler.GetServiceByID)
	})
}

// GetServices retrieves all active medical services.
// @Summary Get all active services
// @Description Retrieve all active medical services ordered by display order.
// @Tags Service
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Base[dto.GetMedicalServicesResponse] "Services retrieved"
// @Failure 500 {object} response.Base[any]
// @Router /v1/services [get]
func (handler *Handler) GetServices(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetServices")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	services, err := handler.service.GetAllActive(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get services")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Services retrieved successfully")

	response.WithJSON(w, http.StatusOK, "Services retrieved", services)
}

// GetServiceByID retrieves a medical service by its ID.
// @Summary Get a service by ID
// @Description Retrieve a medical service by its unique identifier.
// @Tags Service
// @Accept json
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} response.Base[dto.MedicalServiceResponse] "Service found"
// @Failure 404 {object} response.Base[any]
// @Failure 500 {object} response.Base[any]
// @Router /v1/services/{id} [get]
func (handler *Handler) GetServiceByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetServiceByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	medService, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get service by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Service retrieved successfully")

	response.WithJSON(w, http.StatusOK, "Service found", medService)
}
