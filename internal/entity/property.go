package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

type Location struct {
	Address string
	City    string
	State   string
	Country string
}

// PropertyStats are monotonic counters maintained by the backend.
// Views grows on every single-property fetch, Inquiries on every new
// inquiry, WishlistCount moves with wishlist toggles (floored at zero).
type PropertyStats struct {
	Views         int64
	Inquiries     int64
	WishlistCount int64
}

type Property struct {
	ID             primitive.ObjectID
	Title          string
	Description    string
	Price          float64
	Location       Location
	Bedrooms       int
	Bathrooms      int
	AreaSqft       float64
	PropertyType   string
	Amenities      []string
	Images         []string
	CoverImage     string
	Slug           string
	AgentID        primitive.ObjectID
	ApprovalStatus ApprovalStatus
	IsArchived     bool
	Stats          PropertyStats
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// PubliclyVisible reports whether the listing appears in public queries.
func (p *Property) PubliclyVisible() bool {
	return p.ApprovalStatus == ApprovalApproved && !p.IsArchived
}

// PropertyFilter narrows public listing queries.
type PropertyFilter struct {
	Search       string
	City         string
	PropertyType string
	MinPrice     float64
	MaxPrice     float64
	Bedrooms     int
	Bathrooms    int
	Page         int64
	Limit        int64
}
