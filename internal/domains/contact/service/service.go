package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"clinic/config"
	"clinic/infras/otel"
	"clinic/internal/domains/contact/model/dto"
	"clinic/internal/domains/contact/repository"
	"clinic/shared/constant"
	"clinic/shared/timezone"
)

type Contact interface {
	Create(ctx context.Context, req dto.ContactRequest) error
}

type serviceImpl struct {
	repo repository.Contact
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.Contact, cfg *config.Config, otel otel.Otel) Contact {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.ContactRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	message := req.ToModel(timezone.Now())

	if err = s.repo.Insert(ctx, message); err != nil {
		log.Error().Err(err).Msg("failed to save contact message")

		return fmt.Errorf("failed to save contact message: %w", err)
	}

	log.Info().
		Str("id", message.ID).
		Str("name", message.Name).
		Str("email", message.Email).
		Msg("contact message received")

	return nil
}
