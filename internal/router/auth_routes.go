package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Mathiyarasan2102/LuxeEstate-RealEstate-Website-Backend/internal/handler"
)

// SetupAuthRoutes configures registration, login and session routes.
func SetupAuthRoutes(r *chi.Mux, authHandler *handler.AuthHandler, authMW func(http.Handler) http.Handler) {
	r.Post("/api/auth/register", authHandler.Register)
	r.Post("/api/auth/login", authHandler.Login)
	r.Post("/api/auth/google", authHandler.GoogleLogin)
	r.Post("/api/auth/refresh", authHandler.Refresh)

	r.Group(func(authRouter chi.Router) {
		authRouter.Use(authMW)

		authRouter.Post("/api/auth/logout", authHandler.Logout)
		authRouter.Put("/api/auth/profile", authHandler.UpdateProfile)
	})
}
