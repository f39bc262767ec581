package usecase

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/Mathiyarasan2102/LuxeEstate-RealEstate-Website-Backend/internal/entity"
)

func newPropertyUC(properties *MockPropertyRepo, notify *MockNotificationSender, events *MockEventPublisher) *PropertyUsecase {
	return NewPropertyUsecase(properties, notify, events, new(MockImageStorage), zap.NewNop())
}

func TestPropertyUsecase_Create(t *testing.T) {
	ctx := context.Background()
	agent := &entity.User{ID: primitive.NewObjectID(), Name: "Kate", Role: entity.RoleAgent}

	t.Run("NewListingStartsPendingAndNotifiesAdmins", func(t *testing.T) {
		properties := new(MockPropertyRepo)
		notify := new(MockNotificationSender)
		events := new(MockEventPublisher)
		uc := newPropertyUC(properties, notify, events)
		id := primitive.NewObjectID()

		properties.On("Create", ctx, mock.MatchedBy(func(p *entity.Property) bool {
			return p.ApprovalStatus == entity.ApprovalPending && p.AgentID == agent.ID && p.Slug != ""
		})).Return(id, nil).Once()
		notify.On("NotifyAdmins", ctx, "New Property Submission",
			`Kate has submitted "Sea View Villa" for approval.`,
			entity.NotificationInfo, "/admin/dashboard?tab=listings").Once()
		events.On("Publish", ctx, "property.created", mock.Anything).Once()
		properties.On("FindByID", ctx, id).Return(&entity.Property{ID: id, ApprovalStatus: entity.ApprovalPending}, nil).Once()

		property, err := uc.Create(ctx, agent, PropertyInput{Title: "Sea View Villa", Price: 500000})

		require.NoError(t, err)
		assert.Equal(t, entity.ApprovalPending, property.ApprovalStatus)
		properties.AssertExpectations(t)
		notify.AssertExpectations(t)
		events.AssertExpectations(t)
	})
}

func TestPropertyUsecase_Update(t *testing.T) {
	ctx := context.Background()
	ownerID := primitive.NewObjectID()
	owner := &entity.User{ID: ownerID, Role: entity.RoleAgent}
	admin := &entity.User{ID: primitive.NewObjectID(), Role: entity.RoleAdmin}
	stranger := &entity.User{ID: primitive.NewObjectID(), Role: entity.RoleAgent}

	approved := entity.ApprovalApproved
	rejected := entity.ApprovalRejected
	pending := entity.ApprovalPending

	t.Run("NonOwnerIsForbidden", func(t *testing.T) {
		properties := new(MockPropertyRepo)
		notify := new(MockNotificationSender)
		events := new(MockEventPublisher)
		uc := newPropertyUC(properties, notify, events)
		id := primitive.NewObjectID()

		properties.On("FindByID", ctx, id).Return(&entity.Property{ID: id, AgentID: ownerID}, nil).Once()

		_, err := uc.Update(ctx, stranger, id, PropertyUpdate{})

		assert.ErrorIs(t, err, ErrForbidden)
		properties.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("AdminApprovalNotifiesOwnerOnce", func(t *testing.T) {
		properties := new(MockPropertyRepo)
		notify := new(MockNotificationSender)
		events := new(MockEventPublisher)
		uc := newPropertyUC(properties, notify, events)
		id := primitive.NewObjectID()

		properties.On("FindByID", ctx, id).Return(&entity.Property{
			ID: id, Title: "Sea View Villa", Slug: "sea-view-villa-a1b2c3d4",
			AgentID: ownerID, ApprovalStatus: entity.ApprovalPending,
		}, nil).Once()
		properties.On("Update", ctx, mock.MatchedBy(func(p *entity.Property) bool {
			return p.ApprovalStatus == entity.ApprovalApproved
		})).Return(nil).Once()
		notify.On("Send", ctx, ownerID, "Property Approved",
			`Your property "Sea View Villa" has been approved and is now live.`,
			entity.NotificationSuccess, "/properties/sea-view-villa-a1b2c3d4").Return(nil).Once()
		events.On("Publish", ctx, "property.approved", mock.Anything).Once()

		_, err := uc.Update(ctx, admin, id, PropertyUpdate{ApprovalStatus: &approved})

		require.NoError(t, err)
		notify.AssertNumberOfCalls(t, "Send", 1)
	})

	t.Run("ApprovedToApprovedSendsNothing", func(t *testing.T) {
		properties := new(MockPropertyRepo)
		notify := new(MockNotificationSender)
		events := new(MockEventPublisher)
		uc := newPropertyUC(properties, notify, events)
		id := primitive.NewObjectID()

		properties.On("FindByID", ctx, id).Return(&entity.Property{
			ID: id, AgentID: ownerID, ApprovalStatus: entity.ApprovalApproved,
		}, nil).Once()
		properties.On("Update", ctx, mock.Anything).Return(nil).Once()

		_, err := uc.Update(ctx, admin, id, PropertyUpdate{ApprovalStatus: &approved})

		require.NoError(t, err)
		notify.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("AdminRejectionNotifiesOwner", func(t *testing.T) {
		properties := new(MockPropertyRepo)
		notify := new(MockNotificationSender)
		events := new(MockEventPublisher)
		uc := newPropertyUC(properties, notify, events)
		id := primitive.NewObjectID()

		properties.On("FindByID", ctx, id).Return(&entity.Property{
			ID: id, Title: "Sea View Villa", AgentID: ownerID, ApprovalStatus: entity.ApprovalPending,
		}, nil).Once()
		properties.On("Update", ctx, mock.Anything).Return(nil).Once()
		notify.On("Send", ctx, ownerID, "Property Rejected",
			`Your property "Sea View Villa" has been rejected. Please reviews guidelines.`,
			entity.NotificationError, "/seller/dashboard").Return(nil).Once()
		events.On("Publish", ctx, "property.rejected", mock.Anything).Once()

		_, err := uc.Update(ctx, admin, id, PropertyUpdate{ApprovalStatus: &rejected})

		require.NoError(t, err)
		notify.AssertExpectations(t)
	})

	t.Run("OwnerCannotSelfApprove", func(t *testing.T) {
		properties := new(MockPropertyRepo)
		notify := new(MockNotificationSender)
		events := new(MockEventPublisher)
		uc := newPropertyUC(properties, notify, events)
		id := primitive.NewObjectID()

		properties.On("FindByID", ctx, id).Return(&entity.Property{
			ID: id, AgentID: ownerID, ApprovalStatus: entity.ApprovalRejected,
		}, nil).Once()
		properties.On("Update", ctx, mock.MatchedBy(func(p *entity.Property) bool {
			return p.ApprovalStatus == entity.ApprovalRejected
		})).Return(nil).Once()

		property, err := uc.Update(ctx, owner, id, PropertyUpdate{ApprovalStatus: &approved})

		require.NoError(t, err)
		assert.Equal(t, entity.ApprovalRejected, property.ApprovalStatus)
		notify.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("OwnerMayResubmitToPending", func(t *testing.T) {
		properties := new(MockPropertyRepo)
		notify := new(MockNotificationSender)
		events := new(MockEventPublisher)
		uc := newPropertyUC(properties, notify, events)
		id := primitive.NewObjectID()

		properties.On("FindByID", ctx, id).Return(&entity.Property{
			ID: id, AgentID: ownerID, ApprovalStatus: entity.ApprovalRejected,
		}, nil).Once()
		properties.On("Update", ctx, mock.MatchedBy(func(p *entity.Property) bool {
			return p.ApprovalStatus == entity.ApprovalPending
		})).Return(nil).Once()

		property, err := uc.Update(ctx, owner, id, PropertyUpdate{ApprovalStatus: &pending})

		require.NoError(t, err)
		assert.Equal(t, entity.ApprovalPending, property.ApprovalStatus)
	})
}

func TestPropertyUsecase_Get_IncrementsViews(t *testing.T) {
	ctx := context.Background()
	properties := new(MockPropertyRepo)
	uc := newPropertyUC(properties, new(MockNotificationSender), new(MockEventPublisher))
	id := primitive.NewObjectID()

	properties.On("FindByIDOrSlug", ctx, "sea-view-villa").Return(&entity.Property{
		ID: id, Stats: entity.PropertyStats{Views: 7},
	}, nil).Once()
	properties.On("IncrementViews", ctx, id).Return(nil).Once()

	property, err := uc.Get(ctx, "sea-view-villa")

	require.NoError(t, err)
	assert.Equal(t, int64(8), property.Stats.Views)
	properties.AssertExpectations(t)
}

func TestPropertyUsecase_Publish(t *testing.T) {
	ctx := context.Background()
	ownerID := primitive.NewObjectID()
	owner := &entity.User{ID: ownerID, Name: "Kate", Role: entity.RoleAgent}
	properties := new(MockPropertyRepo)
	notify := new(MockNotificationSender)
	events := new(MockEventPublisher)
	uc := newPropertyUC(properties, notify, events)
	id := primitive.NewObjectID()

	properties.On("FindByID", ctx, id).Return(&entity.Property{
		ID: id, Title: "Sea View Villa", AgentID: ownerID, ApprovalStatus: entity.ApprovalRejected,
	}, nil).Once()
	properties.On("Update", ctx, mock.MatchedBy(func(p *entity.Property) bool {
		return p.ApprovalStatus == entity.ApprovalPending
	})).Return(nil).Once()
	notify.On("NotifyAdmins", ctx, "New Property Submission",
		`Kate has submitted "Sea View Villa" for approval.`,
		entity.NotificationInfo, "/admin/properties").Once()
	events.On("Publish", ctx, "property.submitted", mock.Anything).Once()

	property, err := uc.Publish(ctx, owner, id)

	require.NoError(t, err)
	assert.Equal(t, entity.ApprovalPending, property.ApprovalStatus)
	notify.AssertExpectations(t)
}

func TestPropertyUsecase_Stats_Guarded(t *testing.T) {
	ctx := context.Background()
	ownerID := primitive.NewObjectID()
	stranger := &entity.User{ID: primitive.NewObjectID(), Role: entity.RoleUser}
	properties := new(MockPropertyRepo)
	uc := newPropertyUC(properties, new(MockNotificationSender), new(MockEventPublisher))
	id := primitive.NewObjectID()

	properties.On("FindByID", ctx, id).Return(&entity.Property{ID: id, AgentID: ownerID}, nil).Once()

	_, err := uc.Stats(ctx, stranger, id)

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestMakeSlug(t *testing.T) {
	slugPattern := regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

	slug := makeSlug("Sea View Villa, 3BR!")
	assert.Regexp(t, slugPattern, slug)
	assert.Contains(t, slug, "sea-view-villa-3br-")

	// repeated titles must still differ
	assert.NotEqual(t, makeSlug("Cozy Flat"), makeSlug("Cozy Flat"))

	// degenerate title still yields a usable slug
	assert.Regexp(t, slugPattern, makeSlug("!!!"))
}
