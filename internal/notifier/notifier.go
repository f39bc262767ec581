package notifier

import (
	"context"
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/Mathiyarasan2102/LuxeEstate-RealEstate-Website-Backend/internal/entity"
)

// Store persists notifications; the row is the durable record of delivery.
type Store interface {
	Create(ctx context.Context, notification *entity.Notification) (*entity.Notification, error)
}

// Pusher delivers a payload to a live per-user channel, best-effort.
// Satisfied by *realtime.Hub.
type Pusher interface {
	SendToUser(userID string, payload []byte)
}

// AdminDirectory resolves the current admin accounts for fan-out, decoupling
// the notifier from how admins are stored. Satisfied by *repository.UserRepository.
type AdminDirectory interface {
	AdminIDs(ctx context.Context) ([]primitive.ObjectID, error)
}

// Notifier persists a notification and pushes it to the recipient's live
// channel. Persistence failure is logged and swallowed: a notification must
// never fail the request that triggered it.
type Notifier struct {
	store  Store
	pusher Pusher
	admins AdminDirectory
	logger *zap.Logger
}

func New(store Store, pusher Pusher, admins AdminDirectory, logger *zap.Logger) *Notifier {
	return &Notifier{
		store:  store,
		pusher: pusher,
		admins: admins,
		logger: logger.Named("Notifier"),
	}
}

// wirePayload mirrors the JSON shape browsers receive on the websocket.
type wirePayload struct {
	Event string           `json:"event"`
	Data  wireNotification `json:"data"`
}

type wireNotification struct {
	ID        string    `json:"_id"`
	UserID    string    `json:"user"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	Link      string    `json:"link"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

// Send persists the notification, then pushes it to the user's room if one
// is live. Returns the persisted notification, or nil when persistence
// failed (the failure is logged, never surfaced).
func (n *Notifier) Send(ctx context.Context, userID primitive.ObjectID, title, message string, typ entity.NotificationType, link string) *entity.Notification {
	notification, err := n.store.Create(ctx, &entity.Notification{
		UserID:  userID,
		Title:   title,
		Message: message,
		Type:    typ,
		Link:    link,
	})
	if err != nil {
		n.logger.Error("Failed to persist notification, dropping",
			zap.String("userID", userID.Hex()), zap.String("title", title), zap.Error(err))
		return nil
	}

	if n.pusher != nil {
		payload, err := json.Marshal(wirePayload{
			Event: "receive_notification",
			Data: wireNotification{
				ID:        notification.ID.Hex(),
				UserID:    notification.UserID.Hex(),
				Title:     notification.Title,
				Message:   notification.Message,
				Type:      string(notification.Type),
				Link:      notification.Link,
				IsRead:    notification.IsRead,
				CreatedAt: notification.CreatedAt,
			},
		})
		if err != nil {
			n.logger.Error("Failed to encode notification payload", zap.Error(err))
			return notification
		}
		n.pusher.SendToUser(userID.Hex(), payload)
	}

	return notification
}

// NotifyAdmins fans one event out as an individual notification per admin
// account; there is no broadcast primitive.
func (n *Notifier) NotifyAdmins(ctx context.Context, title, message string, typ entity.NotificationType, link string) {
	adminIDs, err := n.admins.AdminIDs(ctx)
	if err != nil {
		n.logger.Error("Failed to resolve admin accounts for fan-out", zap.Error(err))
		return
	}
	for _, adminID := range adminIDs {
		n.Send(ctx, adminID, title, message, typ, link)
	}
}
