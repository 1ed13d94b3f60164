package appointment

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"clinic/infras/otel"
	"clinic/internal/domains/appointment/model"
	"clinic/internal/domains/appointment/model/dto"
	"clinic/internal/domains/appointment/service"
	"clinic/shared/constant"
	gDto "clinic/shared/dto"
	"clinic/shared/validator"
	"clinic/transport/http/middleware"
	"clinic/transport/http/response"
)

type Handler struct {
	service   service.Appointment
	adminGate middleware.AdminGate
	otel      otel.Otel
}

func New(service service.Appointment, adminGate middleware.AdminGate, otel otel.Otel) Handler {
	return Handler{
		service:   service,
		adminGate: adminGate,
		otel:      otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/appointments", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.BookAppointment)

		routerGroup.Group(func(adminGroup chi.Router) {
			adminGroup.Use(handler.adminGate.Gate)

			adminGroup.Get("/", handler.GetAppointments)
			adminGroup.Get("/{id}", handler.GetAppointmentByID)
			adminGroup.Put("/{id}/status", handler.UpdateAppointmentStatus)
			adminGroup.Delete("/{id}", handler.DeleteAppointment)
		})
	})
}

// BookAppointment handles a public booking request.
// @Summary Book a new appointment
// @Description Book a new appointment with the provided patient details. New appointments always start as PENDING.
// @Tags Appointment
// @Accept json
// @Produce json
// @Param request body dto.BookAppointmentRequest true "Book Appointment Request"
// @Success 201 {object} response.Base[dto.AppointmentResponse] "Appointment booked successfully!"
// @Failure 400 {object} response.Base[any]
// @Failure 500 {object} response.Base[any]
// @Router /v1/appointments [post]
func (handler *Handler) BookAppointment(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".BookAppointment")
	defer scope.End()

	req := dto.BookAppointmentRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	appointment, err := handler.service.Book(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to book appointment")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Appointment booked successfully")

	response.WithJSON(writer, http.StatusCreated, "Appointment booked successfully!", appointment)
}

// GetAppointments retrieves all appointments.
// @Summary Get all appointments
// @Description Retrieve all appointments with optional status filtering and pagination. Admin only.
// @Tags Appointment
// @Accept json
// @Produce json
// @Param adminSecret query string true "Admin secret"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status (PENDING, CONFIRMED, CANCELLED)"
// @Success 200 {object} response.Base[dto.GetAppointmentsResponse] "Appointments retrieved"
// @Failure 401 {object} response.Base[any]
// @Failure 500 {object} response.Base[any]
// @Router /v1/appointments [get]
func (handler *Handler) GetAppointments(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAppointments")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if status := r.URL.Query().Get(model.FieldStatus); status != "" {
		parsed, err := model.ParseStatus(status)
		if err != nil {
			scope.TraceError(err)

			response.WithError(w, err)

			return
		}

		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    parsed.String(),
			Table:    model.TableName,
		})
	}

	appointments, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get appointments")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Appointments retrieved successfully")

	response.WithJSON(w, http.StatusOK, "Appointments retrieved", appointments)
}

// GetAppointmentByID retrieves an appointment by its ID.
// @Summary Get an appointment by ID
// @Description Retrieve an appointment by its unique identifier. Admin only.
// @Tags Appointment
// @Accept json
// @Produce json
// @Param adminSecret query string true "Admin secret"
// @Param id path string true "Appointment ID"
// @Success 200 {object} response.Base[dto.AppointmentResponse] "Appointment found"
// @Failure 401 {object} response.Base[any]
// @Failure 404 {object} response.Base[any]
// @Failure 500 {object} response.Base[any]
// @Router /v1/appointments/{id} [get]
func (handler *Handler) GetAppointmentByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAppointmentByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	appointment, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get appointment by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Appointment retrieved successfully")

	response.WithJSON(w, http.StatusOK, "Appointment found", appointment)
}

// UpdateAppointmentStatus updates the status of an existing appointment.
// @Summary Update appointment status
// @Description Set an appointment's status to PENDING, CONFIRMED, or CANCELLED (case-insensitive). Admin only.
// @Tags Appointment
// @Accept json
// @Produce json
// @Param adminSecret query string true "Admin secret"
// @Param id path string true "Appointment ID"
// @Param request body dto.UpdateStatusRequest true "Update Status Request"
// @Success 200 {object} response.Base[dto.AppointmentResponse] "Status updated"
// @Failure 400 {object} response.Base[any]
// @Failure 401 {object} response.Base[any]
// @Failure 404 {object} response.Base[any]
// @Failure 500 {object} response.Base[any]
// @Router /v1/appointments/{id}/status [put]
func (handler *Handler) UpdateAppointmentStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateAppointmentStatus")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateStatusRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	appointment, err := handler.service.UpdateStatus(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update appointment status")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Appointment status updated to " + appointment.Status)

	response.WithJSON(w, http.StatusOK, "Status updated to "+appointment.Status, appointment)
}

// DeleteAppointment deletes an appointment by its ID.
// @Summary Delete an appointment
// @Description Remove an appointment using its unique identifier. Admin only.
// @Tags Appointment
// @Accept json
// @Produce json
// @Param adminSecret query string true "Admin secret"
// @Param id path string true "Appointment ID"
// @Success 200 {object} response.Base[any] "Appointment deleted successfully"
// @Failure 401 {object} response.Base[any]
// @Failure 404 {object} response.Base[any]
// @Failure 500 {object} response.Base[any]
// @Router /v1/appointments/{id} [delete]
func (handler *Handler) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteAppointment")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete appointment")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Appointment deleted successfully")

	response.WithMessage(w, http.StatusOK, "Appointment deleted successfully")
}
