//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"clinic/config"
	"clinic/infras/kafka"
	"clinic/infras/otel"
	"clinic/infras/postgres"
	"clinic/infras/redis"
	"clinic/infras/s3"
	"clinic/shared/cache"
	"clinic/transport/http"
	"clinic/transport/http/middleware"
	"clinic/transport/http/router"

	appointmentRepository "clinic/internal/domains/appointment/repository"
	appointmentService "clinic/internal/domains/appointment/service"
	appointmentHandler "clinic/internal/handlers/appointment"

	doctorRepository "clinic/internal/domains/doctor/repository"
	doctorService "clinic/internal/domains/doctor/service"
	doctorHandler "clinic/internal/handlers/doctor"

	medserviceRepository "clinic/internal/domains/medservice/repository"
	medserviceService "clinic/internal/domains/medservice/service"
	medserviceHandler "clinic/internal/handlers/medservice"

	contactRepository "clinic/internal/domains/contact/repository"
	contactService "clinic/internal/domains/contact/service"
	contactHandler "clinic/internal/handlers/contact"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAdminGate,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var appointmentDomain = wire.NewSet(
	appointmentRepository.New,
	appointmentService.New,
)

var doctorDomain = wire.NewSet(
	doctorRepository.New,
	doctorService.New,
)

var medserviceDomain = wire.NewSet(
	medserviceRepository.New,
	medserviceService.New,
)

var contactDomain = wire.NewSet(
	contactRepository.New,
	contactService.New,
)

var domains = wire.NewSet(
	appointmentDomain,
	doctorDomain,
	medserviceDomain,
	contactDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	appointmentHandler.New,
	doctorHandler.New,
	medserviceHandler.New,
	contactHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
