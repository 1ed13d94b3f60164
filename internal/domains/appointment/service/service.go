package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"clinic/config"
	"clinic/infras/kafka"
	"clinic/infras/otel"
	"clinic/internal/domains/appointment/model"
	"clinic/internal/domains/appointment/model/dto"
	"clinic/internal/domains/appointment/repository"
	"clinic/shared"
	"clinic/shared/cache"
	"clinic/shared/constant"
	gDto "clinic/shared/dto"
	"clinic/shared/failure"
	"clinic/shared/timezone"
)

const (
	cacheGetAppointment    = "appointment:get"
	cacheGetAllAppointment = "appointment:gets"
	cacheCountAppointment  = "appointment:count"
)

type Appointment interface {
	Book(ctx context.Context, req dto.BookAppointmentRequest) (dto.AppointmentResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetAppointmentsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.AppointmentResponse, error)
	UpdateStatus(ctx context.Context, req dto.UpdateStatusRequest, id string) (dto.AppointmentResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo   repository.Appointment
	cfg    *config.Config
	cache  cache.RedisCache
	events kafka.Client
	otel   otel.Otel
}

func New(repo repository.Appointment, cfg *config.Config, cache cache.RedisCache, events kafka.Client, otel otel.Otel) Appointment {
	return &serviceImpl{
		repo:   repo,
		cfg:    cfg,
		cache:  cache,
		events: events,
		otel:   otel,
	}
}

type appointmentEvent struct {
	Event      string `json:"event"`
	ID         string `json:"id"`
	Status     string `json:"status,omitempty"`
	OccurredAt string `json:"occurredAt"`
}

func (s *serviceImpl) Book(ctx context.Context, req dto.BookAppointmentRequest) (res dto.AppointmentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Book")
	defer scope.End()
	defer scope.TraceIfError(err)

	at, err := req.ParseDatetime()
	if err != nil {
		log.Error().Err(err).Msg("failed to parse appointment datetime")

		return res, err
	}

	now := timezone.Now()
	if !at.After(now) {
		return res, failure.BadRequestFromString("appointment must be in the future") // nolint:wrapcheck
	}

	appointment := req.ToModel(at, now)

	if err = s.repo.Insert(ctx, appointment); err != nil {
		log.Error().Err(err).Msg("failed to book appointment")

		return res, fmt.Errorf("failed to book appointment: %w", err)
	}

	res.FromModel(appointment)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllAppointment)
		shared.InvalidateCaches(c, s.cache, cacheCountAppointment)

		s.publish(c, constant.EventAppointmentBooked, appointment.ID, appointment.Status.String())
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetAppointmentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.SortBy == "" {
		req.SortBy = model.FieldCreatedAt
		req.SortDir = gDto.SortDirDesc
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllAppointment, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for appointments")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count appointments")

		return res, fmt.Errorf("failed to count appointments: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get appointments")

		return res, fmt.Errorf("failed to get appointments: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save appointments to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountAppointment, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for appointment count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count appointments")

		return res, fmt.Errorf("failed to count appointments: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save appointment count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.AppointmentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetAppointment, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for appointment")

		return res, nil
	}

	appointment, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get appointment")

		return res, fmt.Errorf("failed to get appointment: %w", err)
	}

	if appointment.ID == constant.Empty {
		return res, failure.NotFound("appointment not found") // nolint:wrapcheck
	}

	res.FromModel(appointment)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save appointment to cache")
		}
	}()

	return res, nil
}

// UpdateStatus checks that the appointment exists before parsing the label,
// so an unknown status on a missing appointment still answers 404. The
// updated record is returned to the caller.
func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateStatusRequest, id string) (res dto.AppointmentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	appointment, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get appointment")

		return res, fmt.Errorf("failed to get appointment: %w", err)
	}

	if appointment.ID == constant.Empty {
		log.Error().Msg("appointment not found")

		return res, failure.NotFound("appointment not found") // nolint:wrapcheck
	}

	status, err := model.ParseStatus(req.Status)
	if err != nil {
		return res, err
	}

	if err = s.repo.Update(ctx, map[string]any{model.FieldStatus: status}, filter); err != nil {
		log.Error().Err(err).Msg("failed to update appointment status")

		return res, fmt.Errorf("failed to update appointment status: %w", err)
	}

	appointment.Status = status
	res.FromModel(appointment)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetAppointment, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete appointment from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllAppointment)
		shared.InvalidateCaches(c, s.cache, cacheCountAppointment)

		s.publish(c, constant.EventAppointmentStatusChanged, id, status.String())
	}()

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(nil)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if appointment exists")

		return fmt.Errorf("failed to check if appointment exists: %w", err)
	}

	if !exist {
		log.Error().Msg("appointment not found")

		return failure.NotFound("appointment not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete appointment")

		return fmt.Errorf("failed to delete appointment: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetAppointment, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete appointment from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllAppointment)
		shared.InvalidateCaches(c, s.cache, cacheCountAppointment)

		s.publish(c, constant.EventAppointmentDeleted, id, constant.Empty)
	}()

	return nil
}

// publish emits a lifecycle event keyed by appointment ID. Delivery is best
// effort; a broker failure is logged and never surfaces to the caller.
func (s *serviceImpl) publish(ctx context.Context, event, id, status string) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".publish")
	defer scope.End()

	payload := appointmentEvent{
		Event:      event,
		ID:         id,
		Status:     status,
		OccurredAt: timezone.Now().Format(time.RFC3339),
	}

	err := s.events.SendMessages(ctx, constant.KafkaTopicAppointments, kafka.Message{Key: id, Value: payload})
	if err != nil {
		log.Error().Err(err).Str("event", event).Str("id", id).Msg("failed to publish appointment event")
	}
}
