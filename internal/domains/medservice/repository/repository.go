package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"clinic/infras/otel"
	"clinic/infras/postgres"
	"clinic/internal/domains/medservice/model"
	gDto "clinic/shared/dto"
	gRepo "clinic/shared/repository"
)

type MedicalService interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.MedicalService, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.MedicalService, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.MedicalService]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) MedicalService {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.MedicalService](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
