package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type InquiryStatus string

const (
	InquiryPending   InquiryStatus = "pending"
	InquiryReviewed  InquiryStatus = "reviewed"
	InquiryResponded InquiryStatus = "responded"
)

// Inquiry is a buyer message about one property. It references both the
// author and the property but is owned by neither; it is deleted on its own.
type Inquiry struct {
	ID         primitive.ObjectID
	PropertyID primitive.ObjectID
	UserID     primitive.ObjectID
	Message    string
	Status     InquiryStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
