package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationSuccess NotificationType = "success"
	NotificationWarning NotificationType = "warning"
	NotificationError   NotificationType = "error"
)

// Notification is always created as a side effect of some other entity's
// state change, never directly by a client request.
type Notification struct {
	ID        primitive.ObjectID
	UserID    primitive.ObjectID
	Title     string
	Message   string
	Type      NotificationType
	Link      string
	IsRead    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
