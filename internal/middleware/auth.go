package middleware

import (
	"context"
	"net/http"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/Mathiyarasan2102/LuxeEstate-RealEstate-Website-Backend/internal/auth"
	"github.com/Mathiyarasan2102/LuxeEstate-RealEstate-Website-Backend/internal/entity"
)

// UserLoader resolves an authenticated user id to its account.
type UserLoader interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.User, error)
}

// JWTAuth validates the Bearer access token, loads the account behind it
// and stores it in the request context. Suspended accounts are rejected.
func JWTAuth(tokens *auth.TokenManager, users UserLoader, logger *zap.Logger) func(http.Handler) http.Handler {
	log := logger.Named("JWTAuth")
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				http.Error(w, "Not authorized, no token", http.StatusUnauthorized)
				return
			}

			userID, err := tokens.ParseAccessToken(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				http.Error(w, "Not authorized, token failed", http.StatusUnauthorized)
				return
			}

			oid, err := primitive.ObjectIDFromHex(userID)
			if err != nil {
				http.Error(w, "Not authorized, token failed", http.StatusUnauthorized)
				return
			}

			user, err := users.FindByID(r.Context(), oid)
			if err != nil {
				log.Warn("Token subject has no account", zap.String("userID", userID), zap.Error(err))
				http.Error(w, "Not authorized, user not found", http.StatusUnauthorized)
				return
			}
			if user.IsDeleted {
				http.Error(w, "Account suspended", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), UserCtxKey, user)
			ctx = context.WithValue(ctx, UserIDCtxKey, user.ID.Hex())
			ctx = context.WithValue(ctx, UserRoleCtxKey, string(user.Role))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole guards a route group to the given roles. Must run after
// JWTAuth.
func RequireRole(roles ...entity.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := UserFromContext(r)
			if user == nil {
				http.Error(w, "Not authorized, no token", http.StatusUnauthorized)
				return
			}
			for _, role := range roles {
				if user.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			http.Error(w, "Forbidden", http.StatusForbidden)
		})
	}
}
