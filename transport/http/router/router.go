package router

import (
	"drive4less/internal/handlers/auth"
	"drive4less/internal/handlers/catalog"
	"drive4less/internal/handlers/content"
	"drive4less/internal/handlers/vehicle"
	"drive4less/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth    auth.Handler
	Vehicle vehicle.Handler
	Catalog catalog.Handler
	Content content.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	AuthMiddleware middleware.Auth
}

// SetupRoutes keeps the storefront public and puts everything that touches
// inventory behind the admin group.
func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Catalog.Router(routerGroup)
		r.DomainHandlers.Content.Router(routerGroup)

		routerGroup.Route("/admin", func(adminGroup chi.Router) {
			adminGroup.Use(r.AuthMiddleware.Auth)

			r.DomainHandlers.Vehicle.Router(adminGroup)
		})
	})
}

func New(domainHandlers DomainHandlers, authMiddleware middleware.Auth) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AuthMiddleware: authMiddleware,
	}
}
