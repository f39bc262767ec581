package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/Mathiyarasan2102/LuxeEstate-RealEstate-Website-Backend/internal/entity"
	"github.com/Mathiyarasan2102/LuxeEstate-RealEstate-Website-Backend/internal/middleware"
	"github.com/Mathiyarasan2102/LuxeEstate-RealEstate-Website-Backend/internal/usecase"
)

type InquiryHandler struct {
	inquiryUC *usecase.InquiryUsecase
	logger    *zap.Logger
}

func NewInquiryHandler(inquiryUC *usecase.InquiryUsecase, logger *zap.Logger) *InquiryHandler {
	return &InquiryHandler{
		inquiryUC: inquiryUC,
		logger:    logger.Named("InquiryHandler"),
	}
}

func (h *InquiryHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor := middleware.UserFromContext(r)

	var req struct {
		PropertyID string `json:"propertyId"`
		Message    string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	propertyID, err := primitive.ObjectIDFromHex(req.PropertyID)
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid property id")
		return
	}

	view, err := h.inquiryUC.Create(r.Context(), actor, propertyID, req.Message)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, toInquiryResponse(view))
}

func (h *InquiryHandler) AgentInbox(w http.ResponseWriter, r *http.Request) {
	actor := middleware.UserFromContext(r)
	views, err := h.inquiryUC.AgentInbox(r.Context(), actor)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toInquiryResponses(views))
}

func (h *InquiryHandler) MyInquiries(w http.ResponseWriter, r *http.Request) {
	actor := middleware.UserFromContext(r)
	views, err := h.inquiryUC.MyInquiries(r.Context(), actor)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toInquiryResponses(views))
}

func (h *InquiryHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	actor := middleware.UserFromContext(r)
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid inquiry id")
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	view, err := h.inquiryUC.UpdateStatus(r.Context(), actor, id, entity.InquiryStatus(req.Status))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toInquiryResponse(view))
}

func (h *InquiryHandler) Reply(w http.ResponseWriter, r *http.Request) {
	actor := middleware.UserFromContext(r)
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid inquiry id")
		return
	}

	var req struct {
		Subject string `json:"subject"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.inquiryUC.Reply(r.Context(), actor, id, req.Subject, req.Message); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Email sent successfully",
	})
}
