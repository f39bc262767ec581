package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

const DefaultAvatarURL = "https://ui-avatars.com/api/?name=User&background=0D8ABC&color=fff"

type Role string

const (
	RoleUser  Role = "user"
	RoleAgent Role = "agent"
	RoleAdmin Role = "admin"
)

type SellerApplicationStatus string

const (
	SellerApplicationNone     SellerApplicationStatus = "none"
	SellerApplicationPending  SellerApplicationStatus = "pending"
	SellerApplicationRejected SellerApplicationStatus = "rejected"
)

// AuthProviders records which login methods are enabled for an account.
// A user may hold both when a local account later links Google, or vice versa.
type AuthProviders struct {
	Local  bool
	Google bool
}

type User struct {
	ID                      primitive.ObjectID
	Name                    string
	Email                   string
	Password                string // bcrypt hash, empty for pure-OAuth accounts
	GoogleID                string
	Avatar                  string
	Role                    Role
	AuthProviders           AuthProviders
	ReceivePushNotification bool
	Wishlist                []primitive.ObjectID
	SellerApplicationStatus SellerApplicationStatus
	IsDeleted               bool
	RejectionReason         string
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// MatchPassword compares a candidate password against the stored hash.
// Accounts without a stored hash (Google-only) never match.
func (u *User) MatchPassword(candidate string) bool {
	if u.Password == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(candidate)) == nil
}

// InWishlist reports whether the property is already wishlisted.
func (u *User) InWishlist(propertyID primitive.ObjectID) bool {
	for _, id := range u.Wishlist {
		if id == propertyID {
			return true
		}
	}
	return false
}
