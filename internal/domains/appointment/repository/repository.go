package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"clinic/infras/otel"
	"clinic/infras/postgres"
	"clinic/internal/domains/appointment/model"
	gDto "clinic/shared/dto"
	gRepo "clinic/shared/repository"
)

type Appointment interface {
	Insert(ctx context.Context, model model.Appointment) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Appointment, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Appointment, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Appointment]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Appointment {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Appointment](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
