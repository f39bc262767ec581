package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/Mathiyarasan2102/LuxeEstate-RealEstate-Website-Backend/internal/entity"
)

type NotificationUsecase struct {
	notifications NotificationRepo
	logger        *zap.Logger
}

func NewNotificationUsecase(notifications NotificationRepo, logger *zap.Logger) *NotificationUsecase {
	return &NotificationUsecase{
		notifications: notifications,
		logger:        logger.Named("NotificationUsecase"),
	}
}

func (uc *NotificationUsecase) ListForUser(ctx context.Context, userID primitive.ObjectID) ([]*entity.Notification, error) {
	return uc.notifications.FindByUser(ctx, userID)
}

// MarkRead flips a single notification. Only the recipient may touch it.
func (uc *NotificationUsecase) MarkRead(ctx context.Context, actorID, id primitive.ObjectID) (*entity.Notification, error) {
	notification, err := uc.notifications.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if notification.UserID != actorID {
		return nil, ErrUnauthorized
	}
	if err := uc.notifications.MarkRead(ctx, id); err != nil {
		return nil, err
	}
	notification.IsRead = true
	return notification, nil
}

func (uc *NotificationUsecase) MarkAllRead(ctx context.Context, userID primitive.ObjectID) error {
	return uc.notifications.MarkAllRead(ctx, userID)
}
