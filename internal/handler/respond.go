package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/Mathiyarasan2102/LuxeEstate-RealEstate-Website-Backend/internal/auth"
	"github.com/Mathiyarasan2102/LuxeEstate-RealEstate-Website-Backend/internal/entity"
	"github.com/Mathiyarasan2102/LuxeEstate-RealEstate-Website-Backend/internal/repository"
	"github.com/Mathiyarasan2102/LuxeEstate-RealEstate-Website-Backend/internal/usecase"
)

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondMessage(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"message": message})
}

// respondError maps domain sentinels onto HTTP statuses and returns the
// error text as {"message": ...}.
func respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, repository.ErrUserNotFound),
		errors.Is(err, repository.ErrPropertyNotFound),
		errors.Is(err, repository.ErrInquiryNotFound),
		errors.Is(err, repository.ErrNotificationNotFound),
		errors.Is(err, repository.ErrContactNotFound):
		status = http.StatusNotFound
	case errors.Is(err, usecase.ErrInvalidCredentials),
		errors.Is(err, usecase.ErrUnauthorized),
		errors.Is(err, usecase.ErrCurrentPasswordMismatch),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrInvalidGoogleToken):
		status = http.StatusUnauthorized
	case errors.Is(err, usecase.ErrForbidden),
		errors.Is(err, usecase.ErrAccountSuspended):
		status = http.StatusForbidden
	case errors.Is(err, repository.ErrDuplicateEmail),
		errors.Is(err, usecase.ErrEmailExists),
		errors.Is(err, usecase.ErrAlreadyAgent),
		errors.Is(err, usecase.ErrSelfDelete),
		errors.Is(err, usecase.ErrCurrentPasswordMissing),
		errors.Is(err, usecase.ErrInquirerEmailMissing),
		errors.Is(err, usecase.ErrAllFieldsRequired):
		status = http.StatusBadRequest
	}
	respondMessage(w, status, err.Error())
}

type authProvidersResponse struct {
	Local  bool `json:"local"`
	Google bool `json:"google"`
}

type userResponse struct {
	ID                       string                `json:"_id"`
	Name                     string                `json:"name"`
	Email                    string                `json:"email"`
	Avatar                   string                `json:"avatar"`
	Role                     string                `json:"role"`
	SellerApplicationStatus  string                `json:"sellerApplicationStatus"`
	RejectionReason          string                `json:"rejectionReason,omitempty"`
	ReceivePushNotifications bool                  `json:"receivePushNotifications"`
	AuthProviders            authProvidersResponse `json:"authProviders"`
	IsDeleted                bool                  `json:"isDeleted,omitempty"`
	CreatedAt                time.Time             `json:"createdAt"`
	Token                    string                `json:"token,omitempty"`
}

func toUserResponse(user *entity.User, token string) userResponse {
	return userResponse{
		ID:                       user.ID.Hex(),
		Name:                     user.Name,
		Email:                    user.Email,
		Avatar:                   user.Avatar,
		Role:                     string(user.Role),
		SellerApplicationStatus:  string(user.SellerApplicationStatus),
		RejectionReason:          user.RejectionReason,
		ReceivePushNotifications: user.ReceivePushNotification,
		AuthProviders:            authProvidersResponse{Local: user.AuthProviders.Local, Google: user.AuthProviders.Google},
		IsDeleted:                user.IsDeleted,
		CreatedAt:                user.CreatedAt,
		Token:                    token,
	}
}

type locationResponse struct {
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
}

type statsResponse struct {
	Views         int64 `json:"views"`
	Inquiries     int64 `json:"inquiries"`
	WishlistCount int64 `json:"wishlistCount"`
}

type propertyResponse struct {
	ID             string           `json:"_id"`
	Title          string           `json:"title"`
	Description    string           `json:"description"`
	Price          float64          `json:"price"`
	Location       locationResponse `json:"location"`
	Bedrooms       int              `json:"bedrooms"`
	Bathrooms      int              `json:"bathrooms"`
	AreaSqft       float64          `json:"areaSqft"`
	PropertyType   string           `json:"propertyType"`
	Amenities      []string         `json:"amenities"`
	Images         []string         `json:"images"`
	CoverImage     string           `json:"coverImage"`
	Slug           string           `json:"slug"`
	AgentID        string           `json:"agentId"`
	ApprovalStatus string           `json:"approvalStatus"`
	IsArchived     bool             `json:"isArchived"`
	Stats          statsResponse    `json:"stats"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`
}

func toPropertyResponse(p *entity.Property) propertyResponse {
	return propertyResponse{
		ID:          p.ID.Hex(),
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		Location: locationResponse{
			Address: p.Location.Address,
			City:    p.Location.City,
			State:   p.Location.State,
			Country: p.Location.Country,
		},
		Bedrooms:       p.Bedrooms,
		Bathrooms:      p.Bathrooms,
		AreaSqft:       p.AreaSqft,
		PropertyType:   p.PropertyType,
		Amenities:      p.Amenities,
		Images:         p.Images,
		CoverImage:     p.CoverImage,
		Slug:           p.Slug,
		AgentID:        p.AgentID.Hex(),
		ApprovalStatus: string(p.ApprovalStatus),
		IsArchived:     p.IsArchived,
		Stats: statsResponse{
			Views:         p.Stats.Views,
			Inquiries:     p.Stats.Inquiries,
			WishlistCount: p.Stats.WishlistCount,
		},
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func toPropertyResponses(properties []*entity.Property) []propertyResponse {
	out := make([]propertyResponse, 0, len(properties))
	for _, p := range properties {
		out = append(out, toPropertyResponse(p))
	}
	return out
}

type notificationResponse struct {
	ID        string    `json:"_id"`
	UserID    string    `json:"user"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	Link      string    `json:"link"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

func toNotificationResponse(n *entity.Notification) notificationResponse {
	return notificationResponse{
		ID:        n.ID.Hex(),
		UserID:    n.UserID.Hex(),
		Title:     n.Title,
		Message:   n.Message,
		Type:      string(n.Type),
		Link:      n.Link,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}

// inquiryResponse embeds the author and property display fields the way
// clients expect them populated.
type inquiryResponse struct {
	ID        string              `json:"_id"`
	Property  *inquiryPropertyRef `json:"propertyId"`
	User      *inquiryUserRef     `json:"userId"`
	Message   string              `json:"message"`
	Status    string              `json:"status"`
	CreatedAt time.Time           `json:"createdAt"`
}

type inquiryPropertyRef struct {
	ID         string `json:"_id"`
	Title      string `json:"title"`
	CoverImage string `json:"coverImage,omitempty"`
}

type inquiryUserRef struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func toInquiryResponse(view *usecase.InquiryView) inquiryResponse {
	resp := inquiryResponse{
		ID:        view.Inquiry.ID.Hex(),
		Message:   view.Inquiry.Message,
		Status:    string(view.Inquiry.Status),
		CreatedAt: view.Inquiry.CreatedAt,
	}
	if view.Property != nil {
		resp.Property = &inquiryPropertyRef{
			ID:         view.Property.ID.Hex(),
			Title:      view.Property.Title,
			CoverImage: view.Property.CoverImage,
		}
	}
	if view.User != nil {
		resp.User = &inquiryUserRef{
			ID:    view.User.ID.Hex(),
			Name:  view.User.Name,
			Email: view.User.Email,
		}
	}
	return resp
}

func toInquiryResponses(views []*usecase.InquiryView) []inquiryResponse {
	out := make([]inquiryResponse, 0, len(views))
	for _, view := range views {
		out = append(out, toInquiryResponse(view))
	}
	return out
}

type contactResponse struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	Response  string    `json:"response,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toContactResponse(c *entity.ContactInquiry) contactResponse {
	return contactResponse{
		ID:        c.ID.Hex(),
		Name:      c.Name,
		Email:     c.Email,
		Subject:   c.Subject,
		Message:   c.Message,
		Status:    string(c.Status),
		Response:  c.Response,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
