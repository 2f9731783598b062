package router

import (
	"net/http"

	"friendlydate/internal/handlers/datetime"
	"friendlydate/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Datetime datetime.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Get("/health", r.health)

	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Datetime.Router(routerGroup)
	})
}

func (r *Router) health(w http.ResponseWriter, _ *http.Request) {
	response.WithMessage(w, http.StatusOK, "OK")
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
