package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/Mathiyarasan2102/LuxeEstate-RealEstate-Website-Backend/internal/middleware"
	"github.com/Mathiyarasan2102/LuxeEstate-RealEstate-Website-Backend/internal/usecase"
)

type NotificationHandler struct {
	notificationUC *usecase.NotificationUsecase
	logger         *zap.Logger
}

func NewNotificationHandler(notificationUC *usecase.NotificationUsecase, logger *zap.Logger) *NotificationHandler {
	return &NotificationHandler{
		notificationUC: notificationUC,
		logger:         logger.Named("NotificationHandler"),
	}
}

func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	actor := middleware.UserFromContext(r)
	notifications, err := h.notificationUC.ListForUser(r.Context(), actor.ID)
	if err != nil {
		respondError(w, err)
		return
	}

	out := make([]notificationResponse, 0, len(notifications))
	for _, n := range notifications {
		out = append(out, toNotificationResponse(n))
	}
	respondJSON(w, http.StatusOK, out)
}

func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	actor := middleware.UserFromContext(r)
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid notification id")
		return
	}

	notification, err := h.notificationUC.MarkRead(r.Context(), actor.ID, id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toNotificationResponse(notification))
}

func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	actor := middleware.UserFromContext(r)
	if err := h.notificationUC.MarkAllRead(r.Context(), actor.ID); err != nil {
		respondError(w, err)
		return
	}
	respondMessage(w, http.StatusOK, "All notifications marked as read")
}
