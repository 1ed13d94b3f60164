package doctor

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"clinic/infras/otel"
	"clinic/internal/domains/doctor/model/dto"
	"clinic/internal/domains/doctor/service"
	"clinic/shared/constant"
	gDto "clinic/shared/dto"
	"clinic/shared/validator"
	"clinic/transport/http/middleware"
	"clinic/transport/http/response"
)

type Handler struct {
	service   service.Doctor
	adminGate middleware.AdminGate
	otel      otel.Otel
}

func New(service service.Doctor, adminGate middleware.AdminGate, otel otel.Otel) Handler {
	return Handler{
		service:   service,
		adminGate: adminGate,
		otel:      otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/doctors", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetDoctors)
		routerGroup.Get("/{id}", handler.GetDoctorByID)

		routerGroup.Group(func(adminGroup chi.Router) {
			adminGroup.Use(handler.adminGate.Gate)

			adminGroup.Put("/{id}/photo", handler.UpdateDoctorPhoto)
		})
	})
}

// GetDoctors retrieves all doctor profiles.
// @Summary Get all doctors
// @Description Retrieve all doctor profiles with optional pagination.
// @Tags Doctor
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Base[dto.GetDoctorsResponse] "Doctors retrieved"
// @Failure 500 {object} response.Base[any]
// @Router /v1/doctors [get]
func (handler *Handler) GetDoctors(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDoctors")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	doctors, err := handler.service.GetAll(ctx, queryParams, gDto.FilterGroup{})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get doctors")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Doctors retrieved successfully")

	response.WithJSON(w, http.StatusOK, "Doctors retrieved", doctors)
}

// GetDoctorByID retrieves a doctor profile by its ID.
// @Summary Get a doctor by ID
// @Description Retrieve a doctor profile by its unique identifier.
// @Tags Doctor
// @Accept json
// @Produce json
// @Param id path string true "Doctor ID"
// @Success 200 {object} response.Base[dto.DoctorResponse] "Doctor found"
// @Failure 404 {object} response.Base[any]
// @Failure 500 {object} response.Base[any]
// @Router /v1/doctors/{id} [get]
func (handler *Handler) GetDoctorByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDoctorByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	doctor, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get doctor by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Doctor retrieved successfully")

	response.WithJSON(w, http.StatusOK, "Doctor found", doctor)
}

// UpdateDoctorPhoto uploads a new profile photo for a doctor.
// @Summary Update a doctor's profile photo
// @Description Upload a new profile photo to S3 and persist its URL. Admin only.
// @Tags Doctor
// @Accept multipart/form-data
// @Produce json
// @Param adminSecret query string true "Admin secret"
// @Param id path string true "Doctor ID"
// @Param file formData file true "Photo file to upload"
// @Success 200 {object} response.Base[dto.UploadPhotoResponse] "Photo updated"
// @Failure 400 {object} response.Base[any]
// @Failure 401 {object} response.Base[any]
// @Failure 404 {object} response.Base[any]
// @Failure 500 {object} response.Base[any]
// @Router /v1/doctors/{id}/photo [put]
func (handler *Handler) UpdateDoctorPhoto(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateDoctorPhoto")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, err)

		return
	}

	file, fileHeader, err := r.FormFile(constant.FormFile)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get file from form")

		response.WithError(w, err)

		return
	}
	defer file.Close()

	req := dto.UploadPhotoRequest{
		Photo:     fileHeader,
		PhotoFile: file,
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate uploaded photo")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.UpdatePhoto(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update doctor photo")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Doctor photo updated successfully")

	response.WithJSON(w, http.StatusOK, "Photo updated", res)
}
