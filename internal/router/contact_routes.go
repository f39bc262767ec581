package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Mathiyarasan2102/LuxeEstate-RealEstate-Website-Backend/internal/entity"
	"github.com/Mathiyarasan2102/LuxeEstate-RealEstate-Website-Backend/internal/handler"
	"github.com/Mathiyarasan2102/LuxeEstate-RealEstate-Website-Backend/internal/middleware"
)

// SetupContactRoutes configures the public contact form and its admin
// management routes.
func SetupContactRoutes(r *chi.Mux, contactHandler *handler.ContactHandler, authMW func(http.Handler) http.Handler) {
	r.Post("/api/contact/submit", contactHandler.Submit)

	r.Group(func(authRouter chi.Router) {
		authRouter.Use(authMW)
		authRouter.Use(middleware.RequireRole(entity.RoleAdmin))

		authRouter.Get("/api/contact/inquiries", contactHandler.List)
		authRouter.Put("/api/contact/inquiries/{id}/status", contactHandler.UpdateStatus)
	})
}
