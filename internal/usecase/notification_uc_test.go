package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/Mathiyarasan2102/LuxeEstate-RealEstate-Website-Backend/internal/entity"
)

func TestNotificationUsecase_MarkRead(t *testing.T) {
	ctx := context.Background()
	recipientID := primitive.NewObjectID()
	notificationID := primitive.NewObjectID()

	t.Run("RecipientMarksRead", func(t *testing.T) {
		notifications := new(MockNotificationRepo)
		uc := NewNotificationUsecase(notifications, zap.NewNop())

		notifications.On("FindByID", ctx, notificationID).Return(&entity.Notification{
			ID: notificationID, UserID: recipientID,
		}, nil).Once()
		notifications.On("MarkRead", ctx, notificationID).Return(nil).Once()

		notification, err := uc.MarkRead(ctx, recipientID, notificationID)

		require.NoError(t, err)
		assert.True(t, notification.IsRead)
	})

	t.Run("NonRecipientIsUnauthorized", func(t *testing.T) {
		notifications := new(MockNotificationRepo)
		uc := NewNotificationUsecase(notifications, zap.NewNop())

		notifications.On("FindByID", ctx, notificationID).Return(&entity.Notification{
			ID: notificationID, UserID: recipientID,
		}, nil).Once()

		_, err := uc.MarkRead(ctx, primitive.NewObjectID(), notificationID)

		assert.ErrorIs(t, err, ErrUnauthorized)
		notifications.AssertNotCalled(t, "MarkRead", mock.Anything, mock.Anything)
	})
}
