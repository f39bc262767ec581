package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/Mathiyarasan2102/LuxeEstate-RealEstate-Website-Backend/internal/entity"
)

type UserUsecase struct {
	users      UserRepo
	properties PropertyRepo
	notifier   NotificationSender
	logger     *zap.Logger
}

func NewUserUsecase(users UserRepo, properties PropertyRepo, notifier NotificationSender, logger *zap.Logger) *UserUsecase {
	return &UserUsecase{
		users:      users,
		properties: properties,
		notifier:   notifier,
		logger:     logger.Named("UserUsecase"),
	}
}

func (uc *UserUsecase) Profile(ctx context.Context, userID primitive.ObjectID) (*entity.User, error) {
	return uc.users.FindByID(ctx, userID)
}

// AccountUpdate is the self-service profile change. Unlike the auth-route
// variant it takes the new password directly, without requiring the old
// one.
type AccountUpdate struct {
	Name                     string
	Password                 string
	ReceivePushNotification *bool
}

func (uc *UserUsecase) UpdateAccount(ctx context.Context, userID primitive.ObjectID, update AccountUpdate) (*entity.User, error) {
	user, err := uc.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if update.Name != "" {
		user.Name = update.Name
	}
	if update.ReceivePushNotification != nil {
		user.ReceivePushNotification = *update.ReceivePushNotification
	}
	if err := uc.users.Update(ctx, user); err != nil {
		return nil, err
	}
	if update.Password != "" {
		if err := uc.users.UpdatePassword(ctx, user.ID, update.Password); err != nil {
			return nil, err
		}
	}
	return user, nil
}

// ToggleWishlist adds the listing to the user's wishlist, or removes it
// when already present, keeping the listing's counter in step and never
// below zero.
func (uc *UserUsecase) ToggleWishlist(ctx context.Context, userID, propertyID primitive.ObjectID) ([]primitive.ObjectID, error) {
	user, err := uc.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	property, err := uc.properties.FindByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	if user.InWishlist(propertyID) {
		kept := make([]primitive.ObjectID, 0, len(user.Wishlist))
		for _, id := range user.Wishlist {
			if id != propertyID {
				kept = append(kept, id)
			}
		}
		user.Wishlist = kept
		if property.Stats.WishlistCount > 0 {
			property.Stats.WishlistCount--
		}
	} else {
		user.Wishlist = append(user.Wishlist, propertyID)
		property.Stats.WishlistCount++
	}

	if err := uc.users.Update(ctx, user); err != nil {
		return nil, err
	}
	if err := uc.properties.SetWishlistCount(ctx, propertyID, property.Stats.WishlistCount); err != nil {
		uc.logger.Warn("Failed to update wishlist counter", zap.String("propertyID", propertyID.Hex()), zap.Error(err))
	}
	return user.Wishlist, nil
}

// Wishlist returns the saved listings newest first. Appends go to the end
// of the stored array, so the stored order is reversed for display.
func (uc *UserUsecase) Wishlist(ctx context.Context, userID primitive.ObjectID) ([]*entity.Property, error) {
	user, err := uc.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	properties, err := uc.properties.FindByIDs(ctx, user.Wishlist)
	if err != nil {
		return nil, err
	}

	byID := make(map[primitive.ObjectID]*entity.Property, len(properties))
	for _, p := range properties {
		byID[p.ID] = p
	}
	ordered := make([]*entity.Property, 0, len(properties))
	for i := len(user.Wishlist) - 1; i >= 0; i-- {
		if p, ok := byID[user.Wishlist[i]]; ok {
			ordered = append(ordered, p)
		}
	}
	return ordered, nil
}

// ApplyForSeller marks the account as a pending applicant and fans out to
// every admin. Agents and admins cannot apply.
func (uc *UserUsecase) ApplyForSeller(ctx context.Context, userID primitive.ObjectID) (*entity.User, error) {
	user, err := uc.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Role == entity.RoleAgent || user.Role == entity.RoleAdmin {
		return nil, ErrAlreadyAgent
	}

	user.SellerApplicationStatus = entity.SellerApplicationPending
	if err := uc.users.Update(ctx, user); err != nil {
		return nil, err
	}

	uc.notifier.NotifyAdmins(ctx,
		"New Seller Application",
		user.Name+" has applied for a seller account.",
		entity.NotificationInfo,
		"/admin/dashboard")

	return user, nil
}

// RejectSeller records the rejection with a default reason when none was
// given and notifies the applicant exactly once.
func (uc *UserUsecase) RejectSeller(ctx context.Context, userID primitive.ObjectID, reason string) error {
	user, err := uc.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if reason == "" {
		reason = "No specific reason provided."
	}
	user.SellerApplicationStatus = entity.SellerApplicationRejected
	user.RejectionReason = reason
	if err := uc.users.Update(ctx, user); err != nil {
		return err
	}

	uc.notifier.Send(ctx, user.ID,
		"Application Rejected",
		"Your seller application was rejected. Reason: "+reason,
		entity.NotificationError,
		"/dashboard")

	return nil
}

func (uc *UserUsecase) ListUsers(ctx context.Context) ([]*entity.User, error) {
	return uc.users.List(ctx)
}

// DeleteUser soft-deletes an account. Admins cannot delete themselves.
func (uc *UserUsecase) DeleteUser(ctx context.Context, actorID, userID primitive.ObjectID) error {
	user, err := uc.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.ID == actorID {
		return ErrSelfDelete
	}
	return uc.users.SoftDelete(ctx, user.ID)
}

// UpdateRole changes an account's role. Promoting to agent clears any
// open seller application.
func (uc *UserUsecase) UpdateRole(ctx context.Context, userID primitive.ObjectID, role entity.Role) (*entity.User, error) {
	user, err := uc.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if role == entity.RoleAgent && user.Role != entity.RoleAgent {
		user.SellerApplicationStatus = entity.SellerApplicationNone
	}
	if role != "" {
		user.Role = role
	}
	if err := uc.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
