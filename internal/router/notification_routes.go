package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Mathiyarasan2102/LuxeEstate-RealEstate-Website-Backend/internal/handler"
)

// SetupNotificationRoutes configures the notification inbox.
func SetupNotificationRoutes(r *chi.Mux, notificationHandler *handler.NotificationHandler, authMW func(http.Handler) http.Handler) {
	r.Group(func(authRouter chi.Router) {
		authRouter.Use(authMW)

		authRouter.Get("/api/notifications", notificationHandler.List)
		authRouter.Put("/api/notifications/read/all", notificationHandler.MarkAllRead)
		authRouter.Put("/api/notifications/{id}/read", notificationHandler.MarkRead)
	})
}
