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

type UserHandler struct {
	userUC *usecase.UserUsecase
	logger *zap.Logger
}

func NewUserHandler(userUC *usecase.UserUsecase, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		userUC: userUC,
		logger: logger.Named("UserHandler"),
	}
}

func (h *UserHandler) Profile(w http.ResponseWriter, r *http.Request) {
	actor := middleware.UserFromContext(r)
	user, err := h.userUC.Profile(r.Context(), actor.ID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toUserResponse(user, ""))
}

func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	actor := middleware.UserFromContext(r)

	var req struct {
		Name                     string `json:"name"`
		Password                 string `json:"password"`
		ReceivePushNotifications *bool  `json:"receivePushNotifications"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.userUC.UpdateAccount(r.Context(), actor.ID, usecase.AccountUpdate{
		Name:                    req.Name,
		Password:                req.Password,
		ReceivePushNotification: req.ReceivePushNotifications,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toUserResponse(user, ""))
}

func (h *UserHandler) ToggleWishlist(w http.ResponseWriter, r *http.Request) {
	actor := middleware.UserFromContext(r)
	propertyID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "propertyId"))
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid property id")
		return
	}

	wishlist, err := h.userUC.ToggleWishlist(r.Context(), actor.ID, propertyID)
	if err != nil {
		respondError(w, err)
		return
	}

	ids := make([]string, 0, len(wishlist))
	for _, id := range wishlist {
		ids = append(ids, id.Hex())
	}
	respondJSON(w, http.StatusOK, map[string][]string{"wishlist": ids})
}

func (h *UserHandler) Wishlist(w http.ResponseWriter, r *http.Request) {
	actor := middleware.UserFromContext(r)
	properties, err := h.userUC.Wishlist(r.Context(), actor.ID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toPropertyResponses(properties))
}

func (h *UserHandler) ApplyForSeller(w http.ResponseWriter, r *http.Request) {
	actor := middleware.UserFromContext(r)
	user, err := h.userUC.ApplyForSeller(r.Context(), actor.ID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toUserResponse(user, ""))
}

func (h *UserHandler) RejectSeller(w http.ResponseWriter, r *http.Request) {
	userID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	var req struct {
		Reason string `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.userUC.RejectSeller(r.Context(), userID, req.Reason); err != nil {
		respondError(w, err)
		return
	}
	respondMessage(w, http.StatusOK, "Application rejected")
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userUC.ListUsers(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	out := make([]userResponse, 0, len(users))
	for _, user := range users {
		out = append(out, toUserResponse(user, ""))
	}
	respondJSON(w, http.StatusOK, out)
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor := middleware.UserFromContext(r)
	userID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	if err := h.userUC.DeleteUser(r.Context(), actor.ID, userID); err != nil {
		respondError(w, err)
		return
	}
	respondMessage(w, http.StatusOK, "User removed")
}

func (h *UserHandler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	userID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	var req struct {
		Role string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.userUC.UpdateRole(r.Context(), userID, entity.Role(req.Role))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toUserResponse(user, ""))
}
