package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Mathiyarasan2102/LuxeEstate-RealEstate-Website-Backend/internal/entity"
	"github.com/Mathiyarasan2102/LuxeEstate-RealEstate-Website-Backend/internal/handler"
	"github.com/Mathiyarasan2102/LuxeEstate-RealEstate-Website-Backend/internal/middleware"
)

// SetupInquiryRoutes configures buyer inquiries and the agent inbox.
func SetupInquiryRoutes(r *chi.Mux, inquiryHandler *handler.InquiryHandler, authMW func(http.Handler) http.Handler) {
	r.Group(func(authRouter chi.Router) {
		authRouter.Use(authMW)

		authRouter.Post("/api/inquiries", inquiryHandler.Create)
		authRouter.Get("/api/inquiries/my", inquiryHandler.MyInquiries)
		authRouter.With(middleware.RequireRole(entity.RoleAgent, entity.RoleAdmin)).
			Get("/api/inquiries/agent", inquiryHandler.AgentInbox)
		authRouter.Put("/api/inquiries/{id}", inquiryHandler.UpdateStatus)
		authRouter.Post("/api/inquiries/{id}/reply", inquiryHandler.Reply)
	})
}
