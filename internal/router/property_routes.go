package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Mathiyarasan2102/LuxeEstate-RealEstate-Website-Backend/internal/entity"
	"github.com/Mathiyarasan2102/LuxeEstate-RealEstate-Website-Backend/internal/handler"
	"github.com/Mathiyarasan2102/LuxeEstate-RealEstate-Website-Backend/internal/middleware"
)

// SetupPropertyRoutes configures public listing browsing plus the
// authenticated listing management routes.
func SetupPropertyRoutes(r *chi.Mux, propertyHandler *handler.PropertyHandler, authMW func(http.Handler) http.Handler) {
	// Public routes
	r.Get("/api/properties", propertyHandler.List)

	r.Group(func(authRouter chi.Router) {
		authRouter.Use(authMW)

		// Fixed paths before the {id} wildcard
		authRouter.With(middleware.RequireRole(entity.RoleAgent, entity.RoleAdmin)).
			Get("/api/properties/agent/my-listings", propertyHandler.MyListings)
		authRouter.With(middleware.RequireRole(entity.RoleAdmin)).
			Get("/api/properties/admin/all", propertyHandler.AdminListings)
		authRouter.With(middleware.RequireRole(entity.RoleAgent, entity.RoleAdmin)).
			Post("/api/properties/upload", propertyHandler.Upload)

		authRouter.With(middleware.RequireRole(entity.RoleAgent, entity.RoleAdmin)).
			Post("/api/properties", propertyHandler.Create)
		authRouter.Put("/api/properties/{id}", propertyHandler.Update)
		authRouter.Delete("/api/properties/{id}", propertyHandler.Delete)
		authRouter.Post("/api/properties/{id}/publish", propertyHandler.Publish)
		authRouter.Get("/api/properties/{id}/stats", propertyHandler.Stats)
	})

	// Single-property fetch stays public and matches slugs too, so it is
	// registered after the fixed authenticated paths.
	r.Get("/api/properties/{id}", propertyHandler.Get)
}
