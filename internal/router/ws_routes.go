package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Mathiyarasan2102/LuxeEstate-RealEstate-Website-Backend/internal/handler"
)

// SetupWSRoutes configures the realtime push endpoint.
func SetupWSRoutes(r *chi.Mux, wsHandler *handler.WSHandler, authMW func(http.Handler) http.Handler) {
	r.With(authMW).Get("/api/ws", wsHandler.Serve)
}
