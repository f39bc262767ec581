package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Mathiyarasan2102/LuxeEstate-RealEstate-Website-Backend/internal/entity"
)

// Narrow views of the adapters each usecase needs, so they can be mocked in
// tests. The mongo repositories and platform adapters satisfy them.

type UserRepo interface {
	Create(ctx context.Context, user *entity.User) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	UpdatePassword(ctx context.Context, userID primitive.ObjectID, newPassword string) error
	SoftDelete(ctx context.Context, userID primitive.ObjectID) error
	List(ctx context.Context) ([]*entity.User, error)
}

type PropertyRepo interface {
	Create(ctx context.Context, property *entity.Property) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Property, error)
	FindByIDOrSlug(ctx context.Context, idOrSlug string) (*entity.Property, error)
	Update(ctx context.Context, property *entity.Property) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	IncrementViews(ctx context.Context, id primitive.ObjectID) error
	IncrementInquiries(ctx context.Context, id primitive.ObjectID) error
	SetWishlistCount(ctx context.Context, id primitive.ObjectID, count int64) error
	FindPublic(ctx context.Context, filter entity.PropertyFilter) ([]*entity.Property, int64, error)
	FindByAgent(ctx context.Context, agentID primitive.ObjectID) ([]*entity.Property, error)
	FindAll(ctx context.Context) ([]*entity.Property, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*entity.Property, error)
}

type InquiryRepo interface {
	Create(ctx context.Context, inquiry *entity.Inquiry) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Inquiry, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status entity.InquiryStatus) error
	FindByUser(ctx context.Context, userID primitive.ObjectID) ([]*entity.Inquiry, error)
	FindByProperties(ctx context.Context, propertyIDs []primitive.ObjectID) ([]*entity.Inquiry, error)
}

type NotificationRepo interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Notification, error)
	FindByUser(ctx context.Context, userID primitive.ObjectID) ([]*entity.Notification, error)
	MarkRead(ctx context.Context, id primitive.ObjectID) error
	MarkAllRead(ctx context.Context, userID primitive.ObjectID) error
}

type ContactRepo interface {
	Create(ctx context.Context, contact *entity.ContactInquiry) (*entity.ContactInquiry, error)
	List(ctx context.Context) ([]*entity.ContactInquiry, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status entity.ContactStatus, response string) (*entity.ContactInquiry, error)
}

// NotificationSender is the fan-out contract: persist plus best-effort live
// push, never failing the caller. Satisfied by *notifier.Notifier.
type NotificationSender interface {
	Send(ctx context.Context, userID primitive.ObjectID, title, message string, typ entity.NotificationType, link string) *entity.Notification
	NotifyAdmins(ctx context.Context, title, message string, typ entity.NotificationType, link string)
}

// MailSender delivers transactional email. Satisfied by *mailer.Mailer.
type MailSender interface {
	Send(to, subject, body string) error
}

// EventPublisher emits lifecycle events to the message bus, fire-and-forget.
// Satisfied by *nats.Publisher.
type EventPublisher interface {
	Publish(ctx context.Context, subject string, data interface{})
}

// ImageStorage uploads listing images. Satisfied by *s3.Storage.
type ImageStorage interface {
	Upload(ctx context.Context, originalFileName string, data []byte) (string, error)
}
