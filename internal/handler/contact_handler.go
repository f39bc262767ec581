package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/Mathiyarasan2102/LuxeEstate-RealEstate-Website-Backend/internal/entity"
	"github.com/Mathiyarasan2102/LuxeEstate-RealEstate-Website-Backend/internal/usecase"
)

type ContactHandler struct {
	contactUC *usecase.ContactUsecase
	logger    *zap.Logger
}

func NewContactHandler(contactUC *usecase.ContactUsecase, logger *zap.Logger) *ContactHandler {
	return &ContactHandler{
		contactUC: contactUC,
		logger:    logger.Named("ContactHandler"),
	}
}

func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Subject string `json:"subject"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	inquiry, err := h.contactUC.Submit(r.Context(), req.Name, req.Email, req.Subject, req.Message)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Thank you for your message. We will get back to you shortly.",
		"inquiry": map[string]interface{}{
			"id":        inquiry.ID.Hex(),
			"name":      inquiry.Name,
			"email":     inquiry.Email,
			"subject":   inquiry.Subject,
			"createdAt": inquiry.CreatedAt,
		},
	})
}

func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	inquiries, err := h.contactUC.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	out := make([]contactResponse, 0, len(inquiries))
	for _, inquiry := range inquiries {
		out = append(out, toContactResponse(inquiry))
	}
	respondJSON(w, http.StatusOK, out)
}

func (h *ContactHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid inquiry id")
		return
	}

	var req struct {
		Status   string `json:"status"`
		Response string `json:"response"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	inquiry, err := h.contactUC.UpdateStatus(r.Context(), id, entity.ContactStatus(req.Status), req.Response)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toContactResponse(inquiry))
}
