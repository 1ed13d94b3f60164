package router

import (
	"github.com/go-chi/chi/v5"

	"clinic/internal/handlers/appointment"
	"clinic/internal/handlers/contact"
	"clinic/internal/handlers/doctor"
	"clinic/internal/handlers/medservice"
)

type DomainHandlers struct {
	Appointment appointment.Handler
	Doctor      doctor.Handler
	MedService  medservice.Handler
	Contact     contact.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Appointment.Router(routerGroup)
		r.DomainHandlers.Doctor.Router(routerGroup)
		r.DomainHandlers.MedService.Router(routerGroup)
		r.DomainHandlers.Contact.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
