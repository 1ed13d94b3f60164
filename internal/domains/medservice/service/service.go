package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"clinic/config"
	"clinic/infras/otel"
	"clinic/internal/domains/medservice/model"
	"clinic/internal/domains/medservice/model/dto"
	"clinic/internal/domains/medservice/repository"
	"clinic/shared"
	"clinic/shared/cache"
	"clinic/shared/constant"
	gDto "clinic/shared/dto"
	"clinic/shared/failure"
)

const (
	cacheGetService    = "service:get"
	cacheGetAllService = "service:gets"
	cacheCountService  = "service:count"
)

type MedicalService interface {
	GetAllActive(ctx context.Context, req gDto.QueryParams) (dto.GetMedicalServicesResponse, error)
	Get(ctx context.Context, id string) (dto.MedicalServiceResponse, error)
}

type serviceImpl struct {
	repo  repository.MedicalService
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.MedicalService, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) MedicalService {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// GetAllActive lists active services in their display order. Inactive rows
// stay hidden; they are only reachable by ID.
func (s *serviceImpl) GetAllActive(ctx context.Context, req gDto.QueryParams) (res dto.GetMedicalServicesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllActive")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.SortBy == constant.Empty {
		req.SortBy = model.FieldDisplayOrder
		req.SortDir = gDto.SortDirAsc
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldActive,
				Value:    true,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllService, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for services")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count services")

		return res, fmt.Errorf("failed to count services: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get services")

		return res, fmt.Errorf("failed to get services: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save services to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.MedicalServiceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetService, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for service")

		return res, nil
	}

	medService, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get service")

		return res, fmt.Errorf("failed to get service: %w", err)
	}

	if medService.ID == constant.Empty {
		return res, failure.NotFound("service not found") // nolint:wrapcheck
	}

	res.FromModel(medService)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save service to cache")
		}
	}()

	return res, nil
}
