package middleware

import (
	"net/http"

	"github.com/Mathiyarasan2102/LuxeEstate-RealEstate-Website-Backend/internal/entity"
)

// ContextKey is a private key type for context values to avoid collisions.
type ContextKey string

const (
	// UserCtxKey holds the authenticated *entity.User loaded by JWTAuth.
	UserCtxKey = ContextKey("user")

	// UserIDCtxKey holds the authenticated user's hex id.
	UserIDCtxKey = ContextKey("user_id")

	// UserRoleCtxKey holds the authenticated user's role.
	UserRoleCtxKey = ContextKey("user_role")
)

// UserFromContext returns the authenticated user set by JWTAuth, or nil.
func UserFromContext(r *http.Request) *entity.User {
	user, _ := r.Context().Value(UserCtxKey).(*entity.User)
	return user
}
