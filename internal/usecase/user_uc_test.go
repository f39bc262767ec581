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

func newUserUC(users *MockUserRepo, properties *MockPropertyRepo, notify *MockNotificationSender) *UserUsecase {
	return NewUserUsecase(users, properties, notify, zap.NewNop())
}

func TestUserUsecase_ToggleWishlist(t *testing.T) {
	ctx := context.Background()
	userID := primitive.NewObjectID()
	propertyID := primitive.NewObjectID()

	t.Run("AddThenRemoveRoundTrips", func(t *testing.T) {
		users := new(MockUserRepo)
		properties := new(MockPropertyRepo)
		uc := newUserUC(users, properties, new(MockNotificationSender))

		user := &entity.User{ID: userID}
		property := &entity.Property{ID: propertyID}

		users.On("FindByID", ctx, userID).Return(user, nil)
		properties.On("FindByID", ctx, propertyID).Return(property, nil)
		users.On("Update", ctx, user).Return(nil)
		properties.On("SetWishlistCount", ctx, propertyID, int64(1)).Return(nil).Once()
		properties.On("SetWishlistCount", ctx, propertyID, int64(0)).Return(nil).Once()

		wishlist, err := uc.ToggleWishlist(ctx, userID, propertyID)
		require.NoError(t, err)
		assert.Equal(t, []primitive.ObjectID{propertyID}, wishlist)
		assert.Equal(t, int64(1), property.Stats.WishlistCount)

		wishlist, err = uc.ToggleWishlist(ctx, userID, propertyID)
		require.NoError(t, err)
		assert.Empty(t, wishlist)
		assert.Equal(t, int64(0), property.Stats.WishlistCount)
		properties.AssertExpectations(t)
	})

	t.Run("RemovalNeverGoesNegative", func(t *testing.T) {
		users := new(MockUserRepo)
		properties := new(MockPropertyRepo)
		uc := newUserUC(users, properties, new(MockNotificationSender))

		user := &entity.User{ID: userID, Wishlist: []primitive.ObjectID{propertyID}}
		property := &entity.Property{ID: propertyID, Stats: entity.PropertyStats{WishlistCount: 0}}

		users.On("FindByID", ctx, userID).Return(user, nil).Once()
		properties.On("FindByID", ctx, propertyID).Return(property, nil).Once()
		users.On("Update", ctx, user).Return(nil).Once()
		properties.On("SetWishlistCount", ctx, propertyID, int64(0)).Return(nil).Once()

		_, err := uc.ToggleWishlist(ctx, userID, propertyID)

		require.NoError(t, err)
		assert.Equal(t, int64(0), property.Stats.WishlistCount)
	})
}

func TestUserUsecase_Wishlist_NewestFirst(t *testing.T) {
	ctx := context.Background()
	userID := primitive.NewObjectID()
	first := primitive.NewObjectID()
	second := primitive.NewObjectID()

	users := new(MockUserRepo)
	properties := new(MockPropertyRepo)
	uc := newUserUC(users, properties, new(MockNotificationSender))

	users.On("FindByID", ctx, userID).Return(&entity.User{
		ID: userID, Wishlist: []primitive.ObjectID{first, second},
	}, nil).Once()
	properties.On("FindByIDs", ctx, []primitive.ObjectID{first, second}).Return([]*entity.Property{
		{ID: first}, {ID: second},
	}, nil).Once()

	listed, err := uc.Wishlist(ctx, userID)

	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, second, listed[0].ID)
	assert.Equal(t, first, listed[1].ID)
}

func TestUserUsecase_ApplyForSeller(t *testing.T) {
	ctx := context.Background()
	userID := primitive.NewObjectID()

	t.Run("AgentCannotApply", func(t *testing.T) {
		users := new(MockUserRepo)
		uc := newUserUC(users, new(MockPropertyRepo), new(MockNotificationSender))

		users.On("FindByID", ctx, userID).Return(&entity.User{ID: userID, Role: entity.RoleAgent}, nil).Once()

		_, err := uc.ApplyForSeller(ctx, userID)

		assert.ErrorIs(t, err, ErrAlreadyAgent)
	})

	t.Run("ApplicationGoesPendingAndNotifiesAdmins", func(t *testing.T) {
		users := new(MockUserRepo)
		notify := new(MockNotificationSender)
		uc := newUserUC(users, new(MockPropertyRepo), notify)

		users.On("FindByID", ctx, userID).Return(&entity.User{
			ID: userID, Name: "Kate", Role: entity.RoleUser,
		}, nil).Once()
		users.On("Update", ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.SellerApplicationStatus == entity.SellerApplicationPending
		})).Return(nil).Once()
		notify.On("NotifyAdmins", ctx, "New Seller Application",
			"Kate has applied for a seller account.",
			entity.NotificationInfo, "/admin/dashboard").Once()

		user, err := uc.ApplyForSeller(ctx, userID)

		require.NoError(t, err)
		assert.Equal(t, entity.SellerApplicationPending, user.SellerApplicationStatus)
		notify.AssertExpectations(t)
	})
}

func TestUserUsecase_RejectSeller(t *testing.T) {
	ctx := context.Background()
	userID := primitive.NewObjectID()

	t.Run("MissingReasonFallsBackToDefault", func(t *testing.T) {
		users := new(MockUserRepo)
		notify := new(MockNotificationSender)
		uc := newUserUC(users, new(MockPropertyRepo), notify)

		users.On("FindByID", ctx, userID).Return(&entity.User{ID: userID}, nil).Once()
		users.On("Update", ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.SellerApplicationStatus == entity.SellerApplicationRejected &&
				u.RejectionReason == "No specific reason provided."
		})).Return(nil).Once()
		notify.On("Send", ctx, userID, "Application Rejected",
			"Your seller application was rejected. Reason: No specific reason provided.",
			entity.NotificationError, "/dashboard").Return(nil).Once()

		err := uc.RejectSeller(ctx, userID, "")

		require.NoError(t, err)
		notify.AssertNumberOfCalls(t, "Send", 1)
	})

	t.Run("ExplicitReasonIsKept", func(t *testing.T) {
		users := new(MockUserRepo)
		notify := new(MockNotificationSender)
		uc := newUserUC(users, new(MockPropertyRepo), notify)

		users.On("FindByID", ctx, userID).Return(&entity.User{ID: userID}, nil).Once()
		users.On("Update", ctx, mock.Anything).Return(nil).Once()
		notify.On("Send", ctx, userID, "Application Rejected",
			"Your seller application was rejected. Reason: Incomplete documents",
			entity.NotificationError, "/dashboard").Return(nil).Once()

		err := uc.RejectSeller(ctx, userID, "Incomplete documents")

		require.NoError(t, err)
		notify.AssertExpectations(t)
	})
}

func TestUserUsecase_DeleteUser(t *testing.T) {
	ctx := context.Background()
	adminID := primitive.NewObjectID()

	t.Run("SelfDeletionRejected", func(t *testing.T) {
		users := new(MockUserRepo)
		uc := newUserUC(users, new(MockPropertyRepo), new(MockNotificationSender))

		users.On("FindByID", ctx, adminID).Return(&entity.User{ID: adminID, Role: entity.RoleAdmin}, nil).Once()

		err := uc.DeleteUser(ctx, adminID, adminID)

		assert.ErrorIs(t, err, ErrSelfDelete)
		users.AssertNotCalled(t, "SoftDelete", mock.Anything, mock.Anything)
	})

	t.Run("OtherAccountsAreSoftDeleted", func(t *testing.T) {
		users := new(MockUserRepo)
		uc := newUserUC(users, new(MockPropertyRepo), new(MockNotificationSender))
		targetID := primitive.NewObjectID()

		users.On("FindByID", ctx, targetID).Return(&entity.User{ID: targetID}, nil).Once()
		users.On("SoftDelete", ctx, targetID).Return(nil).Once()

		err := uc.DeleteUser(ctx, adminID, targetID)

		require.NoError(t, err)
		users.AssertExpectations(t)
	})
}

func TestUserUsecase_UpdateRole_PromotionClearsApplication(t *testing.T) {
	ctx := context.Background()
	userID := primitive.NewObjectID()
	users := new(MockUserRepo)
	uc := newUserUC(users, new(MockPropertyRepo), new(MockNotificationSender))

	users.On("FindByID", ctx, userID).Return(&entity.User{
		ID: userID, Role: entity.RoleUser, SellerApplicationStatus: entity.SellerApplicationPending,
	}, nil).Once()
	users.On("Update", ctx, mock.MatchedBy(func(u *entity.User) bool {
		return u.Role == entity.RoleAgent && u.SellerApplicationStatus == entity.SellerApplicationNone
	})).Return(nil).Once()

	user, err := uc.UpdateRole(ctx, userID, entity.RoleAgent)

	require.NoError(t, err)
	assert.Equal(t, entity.RoleAgent, user.Role)
	assert.Equal(t, entity.SellerApplicationNone, user.SellerApplicationStatus)
}
