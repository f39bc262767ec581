package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Mathiyarasan2102/LuxeEstate-RealEstate-Website-Backend/internal/entity"
	"github.com/Mathiyarasan2102/LuxeEstate-RealEstate-Website-Backend/internal/handler"
	"github.com/Mathiyarasan2102/LuxeEstate-RealEstate-Website-Backend/internal/middleware"
)

// SetupUserRoutes configures profile, wishlist, seller-application and
// admin user-management routes.
func SetupUserRoutes(r *chi.Mux, userHandler *handler.UserHandler, authMW func(http.Handler) http.Handler) {
	r.Group(func(authRouter chi.Router) {
		authRouter.Use(authMW)

		authRouter.Get("/api/users/profile", userHandler.Profile)
		authRouter.Put("/api/users/profile", userHandler.UpdateProfile)

		authRouter.Get("/api/users/wishlist", userHandler.Wishlist)
		authRouter.Put("/api/users/wishlist/{propertyId}", userHandler.ToggleWishlist)

		authRouter.Post("/api/users/apply-seller", userHandler.ApplyForSeller)

		// Admin user management
		authRouter.With(middleware.RequireRole(entity.RoleAdmin)).
			Get("/api/users", userHandler.List)
		authRouter.With(middleware.RequireRole(entity.RoleAdmin)).
			Delete("/api/users/{id}", userHandler.Delete)
		authRouter.With(middleware.RequireRole(entity.RoleAdmin)).
			Put("/api/users/{id}/role", userHandler.UpdateRole)
		authRouter.With(middleware.RequireRole(entity.RoleAdmin)).
			Put("/api/users/{id}/reject-seller", userHandler.RejectSeller)
	})
}
