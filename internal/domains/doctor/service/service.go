package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"clinic/config"
	"clinic/infras/otel"
	"clinic/infras/s3"
	"clinic/internal/domains/doctor/model"
	"clinic/internal/domains/doctor/model/dto"
	"clinic/internal/domains/doctor/repository"
	"clinic/shared"
	"clinic/shared/cache"
	"clinic/shared/constant"
	gDto "clinic/shared/dto"
	"clinic/shared/failure"
)

const (
	cacheGetDoctor    = "doctor:get"
	cacheGetAllDoctor = "doctor:gets"
	cacheCountDoctor  = "doctor:count"
)

type Doctor interface {
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetDoctorsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.DoctorResponse, error)
	UpdatePhoto(ctx context.Context, req dto.UploadPhotoRequest, id string) (dto.UploadPhotoResponse, error)
}

type serviceImpl struct {
	repo  repository.Doctor
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	s3    s3.S3
}

func New(repo repository.Doctor, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Doctor {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		s3:    s3,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetDoctorsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllDoctor, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for doctors")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count doctors")

		return res, fmt.Errorf("failed to count doctors: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get doctors")

		return res, fmt.Errorf("failed to get doctors: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save doctors to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountDoctor, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for doctor count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count doctors")

		return res, fmt.Errorf("failed to count doctors: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save doctor count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.DoctorResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetDoctor, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for doctor")

		return res, nil
	}

	doctor, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get doctor")

		return res, fmt.Errorf("failed to get doctor: %w", err)
	}

	if doctor.ID == constant.Empty {
		return res, failure.NotFound("doctor not found") // nolint:wrapcheck
	}

	res.FromModel(doctor)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save doctor to cache")
		}
	}()

	return res, nil
}

// UpdatePhoto uploads the new profile photo first and persists its URL only on
// success; the previous photo is removed from S3 afterwards, best effort.
func (s *serviceImpl) UpdatePhoto(ctx context.Context, req dto.UploadPhotoRequest, id string) (res dto.UploadPhotoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdatePhoto")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	doctor, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get doctor")

		return res, fmt.Errorf("failed to get doctor: %w", err)
	}

	if doctor.ID == constant.Empty {
		return res, failure.NotFound("doctor not found") // nolint:wrapcheck
	}

	bucketName := s.cfg.External.S3.BucketName

	url, err := s.s3.UploadFile(ctx, bucketName, model.EntityName, req.PhotoFile, req.Photo, req.Photo.Filename)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload photo to S3")

		return res, fmt.Errorf("failed to upload photo to S3: %w", err)
	}

	if err = s.repo.Update(ctx, map[string]any{model.FieldPhotoURL: url}, filter); err != nil {
		log.Error().Err(err).Msg("failed to update doctor photo")

		return res, fmt.Errorf("failed to update doctor photo: %w", err)
	}

	res.FromModel(url, req.Photo.Filename)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetDoctor, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete doctor from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllDoctor)

		if doctor.PhotoURL != constant.Empty {
			objectName := s.s3.GetObjectNameFromURL(bucketName, doctor.PhotoURL)
			if objectName == constant.Empty {
				log.Warn().Str("url", doctor.PhotoURL).Msg("failed to extract object name from URL")

				return
			}

			if err := s.s3.DeleteFile(c, bucketName, model.EntityName, objectName); err != nil {
				log.Error().Err(err).Msg("failed to delete previous photo from S3")
			}
		}
	}()

	return res, nil
}
