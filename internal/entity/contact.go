package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ContactStatus string

const (
	ContactNew        ContactStatus = "new"
	ContactInProgress ContactStatus = "in-progress"
	ContactResolved   ContactStatus = "resolved"
)

// ContactInquiry is a public contact-form submission, independent of any
// user account or property.
type ContactInquiry struct {
	ID        primitive.ObjectID
	Name      string
	Email     string
	Subject   string
	Message   string
	Status    ContactStatus
	Response  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
