package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/Mathiyarasan2102/LuxeEstate-RealEstate-Website-Backend/internal/auth"
	"github.com/Mathiyarasan2102/LuxeEstate-RealEstate-Website-Backend/internal/entity"
	"github.com/Mathiyarasan2102/LuxeEstate-RealEstate-Website-Backend/internal/middleware"
	"github.com/Mathiyarasan2102/LuxeEstate-RealEstate-Website-Backend/internal/repository"
	"github.com/Mathiyarasan2102/LuxeEstate-RealEstate-Website-Backend/internal/usecase"
)

const refreshCookieName = "jwt"

type AuthHandler struct {
	authUC       *usecase.AuthUsecase
	tokens       *auth.TokenManager
	sessions     *repository.TokenStore
	secureCookie bool
	logger       *zap.Logger
}

func NewAuthHandler(authUC *usecase.AuthUsecase, tokens *auth.TokenManager, sessions *repository.TokenStore, secureCookie bool, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authUC:       authUC,
		tokens:       tokens,
		sessions:     sessions,
		secureCookie: secureCookie,
		logger:       logger.Named("AuthHandler"),
	}
}

// issueSession mints the access token for the response body and sets the
// refresh token as an httpOnly cookie, recording it in the session store
// so logout can revoke it.
func (h *AuthHandler) issueSession(w http.ResponseWriter, r *http.Request, user *entity.User) (string, error) {
	accessToken, err := h.tokens.GenerateAccessToken(user.ID.Hex())
	if err != nil {
		return "", err
	}
	refreshToken, err := h.tokens.GenerateRefreshToken(user.ID.Hex())
	if err != nil {
		return "", err
	}
	if err := h.sessions.SaveRefreshToken(r.Context(), user.ID.Hex(), refreshToken, auth.RefreshTokenTTL); err != nil {
		h.logger.Warn("Failed to store refresh token", zap.String("userID", user.ID.Hex()), zap.Error(err))
	}

	http.SetCookie(w, &http.Cookie{
		Name:     refreshCookieName,
		Value:    refreshToken,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   int(auth.RefreshTokenTTL / time.Second),
	})
	return accessToken, nil
}

func (h *AuthHandler) clearSession(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     refreshCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteStrictMode,
		Expires:  time.Unix(0, 0),
	})
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.authUC.Register(r.Context(), req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		respondError(w, err)
		return
	}

	token, err := h.issueSession(w, r, user)
	if err != nil {
		h.logger.Error("Failed to issue session after registration", zap.Error(err))
		respondMessage(w, http.StatusInternalServerError, "Failed to issue session")
		return
	}
	respondJSON(w, http.StatusCreated, toUserResponse(user, token))
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.authUC.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respondError(w, err)
		return
	}

	token, err := h.issueSession(w, r, user)
	if err != nil {
		h.logger.Error("Failed to issue session after login", zap.Error(err))
		respondMessage(w, http.StatusInternalServerError, "Failed to issue session")
		return
	}
	respondJSON(w, http.StatusOK, toUserResponse(user, token))
}

func (h *AuthHandler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Credential string `json:"credential"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.authUC.GoogleLogin(r.Context(), req.Credential)
	if err != nil {
		respondError(w, err)
		return
	}

	token, err := h.issueSession(w, r, user)
	if err != nil {
		h.logger.Error("Failed to issue session after Google login", zap.Error(err))
		respondMessage(w, http.StatusInternalServerError, "Failed to issue session")
		return
	}
	respondJSON(w, http.StatusOK, toUserResponse(user, token))
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if user := middleware.UserFromContext(r); user != nil {
		if err := h.sessions.RevokeRefreshToken(r.Context(), user.ID.Hex()); err != nil {
			h.logger.Warn("Failed to revoke refresh token", zap.String("userID", user.ID.Hex()), zap.Error(err))
		}
	}
	h.clearSession(w)
	respondMessage(w, http.StatusOK, "Logged out successfully")
}

// Refresh rotates the access token from the refresh cookie. The cookie
// must parse and match the stored, non-revoked session entry.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(refreshCookieName)
	if err != nil {
		respondMessage(w, http.StatusUnauthorized, "Not authorized, no refresh token")
		return
	}

	userID, err := h.tokens.ParseRefreshToken(cookie.Value)
	if err != nil {
		respondMessage(w, http.StatusUnauthorized, "Not authorized, token failed")
		return
	}

	stored, err := h.sessions.GetRefreshToken(r.Context(), userID)
	if err != nil || stored == "" || stored != cookie.Value {
		respondMessage(w, http.StatusUnauthorized, "Not authorized, session revoked")
		return
	}

	accessToken, err := h.tokens.GenerateAccessToken(userID)
	if err != nil {
		respondMessage(w, http.StatusInternalServerError, "Failed to issue session")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"token": accessToken})
}

func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r)
	if user == nil {
		respondMessage(w, http.StatusUnauthorized, "Not authorized, no token")
		return
	}

	var req struct {
		Name                     string `json:"name"`
		Email                    string `json:"email"`
		Password                 string `json:"password"`
		OldPassword              string `json:"oldPassword"`
		ReceivePushNotifications *bool  `json:"receivePushNotifications"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.authUC.UpdateProfile(r.Context(), user.ID, usecase.ProfileUpdate{
		Name:                    req.Name,
		Email:                   req.Email,
		Password:                req.Password,
		OldPassword:             req.OldPassword,
		ReceivePushNotification: req.ReceivePushNotifications,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	token, err := h.issueSession(w, r, updated)
	if err != nil {
		h.logger.Error("Failed to reissue session after profile update", zap.Error(err))
		respondMessage(w, http.StatusInternalServerError, "Failed to issue session")
		return
	}
	respondJSON(w, http.StatusOK, toUserResponse(updated, token))
}
