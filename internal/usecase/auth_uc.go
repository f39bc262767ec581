package usecase

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/Mathiyarasan2102/LuxeEstate-RealEstate-Website-Backend/internal/auth"
	"github.com/Mathiyarasan2102/LuxeEstate-RealEstate-Website-Backend/internal/entity"
	"github.com/Mathiyarasan2102/LuxeEstate-RealEstate-Website-Backend/internal/repository"
)

type AuthUsecase struct {
	users    UserRepo
	verifier auth.GoogleVerifier
	logger   *zap.Logger
}

func NewAuthUsecase(users UserRepo, verifier auth.GoogleVerifier, logger *zap.Logger) *AuthUsecase {
	return &AuthUsecase{
		users:    users,
		verifier: verifier,
		logger:   logger.Named("AuthUsecase"),
	}
}

// Register creates a local account. The stored role is always "user"
// regardless of what was requested; requesting "agent" instead opens a
// seller application in pending state.
func (uc *AuthUsecase) Register(ctx context.Context, name, email, password, requestedRole string) (*entity.User, error) {
	if name == "" || email == "" || password == "" {
		return nil, ErrAllFieldsRequired
	}

	if _, err := uc.users.FindByEmail(ctx, email); err == nil {
		return nil, ErrEmailExists
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, err
	}

	applicationStatus := entity.SellerApplicationNone
	if requestedRole == string(entity.RoleAgent) {
		applicationStatus = entity.SellerApplicationPending
	}

	user := &entity.User{
		Name:                    name,
		Email:                   email,
		Password:                password,
		Avatar:                  entity.DefaultAvatarURL,
		Role:                    entity.RoleUser,
		AuthProviders:           entity.AuthProviders{Local: true},
		ReceivePushNotification: true,
		SellerApplicationStatus: applicationStatus,
	}

	id, err := uc.users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailExists
		}
		return nil, err
	}

	uc.logger.Info("User registered", zap.String("userID", id.Hex()), zap.String("applicationStatus", string(applicationStatus)))
	return uc.users.FindByID(ctx, id)
}

func (uc *AuthUsecase) Login(ctx context.Context, email, password string) (*entity.User, error) {
	user, err := uc.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if user.IsDeleted {
		return nil, ErrAccountSuspended
	}

	if !user.MatchPassword(password) {
		return nil, ErrInvalidCredentials
	}

	// A Google-first account that later set a password gains the local
	// provider on first successful password login.
	if !user.AuthProviders.Local {
		user.AuthProviders.Local = true
		if err := uc.users.Update(ctx, user); err != nil {
			uc.logger.Warn("Failed to mark local auth provider", zap.String("userID", user.ID.Hex()), zap.Error(err))
		}
	}

	return user, nil
}

// GoogleLogin verifies the ID token and unifies identity by email: an
// existing account is linked to Google on first use, otherwise a new
// Google-only account is created.
func (uc *AuthUsecase) GoogleLogin(ctx context.Context, credential string) (*entity.User, error) {
	profile, err := uc.verifier.Verify(ctx, credential)
	if err != nil {
		uc.logger.Warn("Google token verification failed", zap.Error(err))
		return nil, auth.ErrInvalidGoogleToken
	}

	user, err := uc.users.FindByEmail(ctx, profile.Email)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return nil, err
	}

	if user != nil {
		if user.IsDeleted {
			return nil, ErrAccountSuspended
		}
		if user.GoogleID == "" {
			user.GoogleID = profile.GoogleID
			user.Avatar = profile.Picture
			user.AuthProviders.Google = true
			if err := uc.users.Update(ctx, user); err != nil {
				return nil, err
			}
		} else if profile.Picture != "" && user.Avatar != profile.Picture {
			// keep the avatar fresh on every Google sign-in
			user.Avatar = profile.Picture
			if err := uc.users.Update(ctx, user); err != nil {
				return nil, err
			}
		}
		return user, nil
	}

	created := &entity.User{
		Name:                    profile.Name,
		Email:                   profile.Email,
		GoogleID:                profile.GoogleID,
		Avatar:                  profile.Picture,
		Role:                    entity.RoleUser,
		AuthProviders:           entity.AuthProviders{Google: true},
		ReceivePushNotification: true,
		SellerApplicationStatus: entity.SellerApplicationNone,
	}
	id, err := uc.users.Create(ctx, created)
	if err != nil {
		return nil, err
	}
	uc.logger.Info("User created via Google sign-in", zap.String("userID", id.Hex()))
	return uc.users.FindByID(ctx, id)
}

// ProfileUpdate carries the optional fields of a profile change. Nil
// pointers leave the stored value untouched.
type ProfileUpdate struct {
	Name                    string
	Email                   string
	ReceivePushNotification *bool
	Password                string
	OldPassword             string
}

// UpdateProfile applies the authenticated profile update. Admin emails are
// immutable; a password change requires the matching current password.
func (uc *AuthUsecase) UpdateProfile(ctx context.Context, userID primitive.ObjectID, update ProfileUpdate) (*entity.User, error) {
	user, err := uc.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if update.Name != "" {
		user.Name = update.Name
	}
	if update.Email != "" && user.Role != entity.RoleAdmin {
		user.Email = update.Email
	}
	if update.ReceivePushNotification != nil {
		user.ReceivePushNotification = *update.ReceivePushNotification
	}

	if update.Password != "" {
		if update.OldPassword == "" {
			return nil, ErrCurrentPasswordMissing
		}
		if !user.MatchPassword(update.OldPassword) {
			return nil, ErrCurrentPasswordMismatch
		}
	}

	if err := uc.users.Update(ctx, user); err != nil {
		return nil, err
	}
	if update.Password != "" {
		if err := uc.users.UpdatePassword(ctx, user.ID, update.Password); err != nil {
			return nil, err
		}
	}

	return uc.users.FindByID(ctx, user.ID)
}
