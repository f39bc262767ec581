package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/Mathiyarasan2102/LuxeEstate-RealEstate-Website-Backend/internal/auth"
	"github.com/Mathiyarasan2102/LuxeEstate-RealEstate-Website-Backend/internal/entity"
	"github.com/Mathiyarasan2102/LuxeEstate-RealEstate-Website-Backend/internal/repository"
)

func hashFor(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestAuthUsecase_Register(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("RequestedAgentRoleIsDemotedWithPendingApplication", func(t *testing.T) {
		users := new(MockUserRepo)
		uc := NewAuthUsecase(users, nil, logger)
		id := primitive.NewObjectID()

		users.On("FindByEmail", ctx, "kate@example.com").Return(nil, repository.ErrUserNotFound).Once()
		users.On("Create", ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Role == entity.RoleUser &&
				u.SellerApplicationStatus == entity.SellerApplicationPending &&
				u.AuthProviders.Local && !u.AuthProviders.Google &&
				u.Avatar == entity.DefaultAvatarURL
		})).Return(id, nil).Once()
		users.On("FindByID", ctx, id).Return(&entity.User{
			ID:                      id,
			Role:                    entity.RoleUser,
			SellerApplicationStatus: entity.SellerApplicationPending,
		}, nil).Once()

		user, err := uc.Register(ctx, "Kate", "kate@example.com", "secret123", "agent")

		require.NoError(t, err)
		assert.Equal(t, entity.RoleUser, user.Role)
		assert.Equal(t, entity.SellerApplicationPending, user.SellerApplicationStatus)
		users.AssertExpectations(t)
	})

	t.Run("PlainRegistrationHasNoApplication", func(t *testing.T) {
		users := new(MockUserRepo)
		uc := NewAuthUsecase(users, nil, logger)
		id := primitive.NewObjectID()

		users.On("FindByEmail", ctx, "bob@example.com").Return(nil, repository.ErrUserNotFound).Once()
		users.On("Create", ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.SellerApplicationStatus == entity.SellerApplicationNone
		})).Return(id, nil).Once()
		users.On("FindByID", ctx, id).Return(&entity.User{ID: id, Role: entity.RoleUser}, nil).Once()

		_, err := uc.Register(ctx, "Bob", "bob@example.com", "secret123", "")

		require.NoError(t, err)
		users.AssertExpectations(t)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		users := new(MockUserRepo)
		uc := NewAuthUsecase(users, nil, logger)

		users.On("FindByEmail", ctx, "taken@example.com").Return(&entity.User{}, nil).Once()

		_, err := uc.Register(ctx, "Eve", "taken@example.com", "secret123", "")

		assert.ErrorIs(t, err, ErrEmailExists)
		users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("MissingFields", func(t *testing.T) {
		users := new(MockUserRepo)
		uc := NewAuthUsecase(users, nil, logger)

		_, err := uc.Register(ctx, "", "a@b.c", "pw", "")

		assert.ErrorIs(t, err, ErrAllFieldsRequired)
	})
}

func TestAuthUsecase_Login(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("SuspendedAccount", func(t *testing.T) {
		users := new(MockUserRepo)
		uc := NewAuthUsecase(users, nil, logger)

		users.On("FindByEmail", ctx, "gone@example.com").Return(&entity.User{
			IsDeleted: true,
			Password:  hashFor(t, "secret123"),
		}, nil).Once()

		_, err := uc.Login(ctx, "gone@example.com", "secret123")

		assert.ErrorIs(t, err, ErrAccountSuspended)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		users := new(MockUserRepo)
		uc := NewAuthUsecase(users, nil, logger)

		users.On("FindByEmail", ctx, "kate@example.com").Return(&entity.User{
			Password:      hashFor(t, "secret123"),
			AuthProviders: entity.AuthProviders{Local: true},
		}, nil).Once()

		_, err := uc.Login(ctx, "kate@example.com", "wrong")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("GoogleOnlyAccountNeverMatches", func(t *testing.T) {
		users := new(MockUserRepo)
		uc := NewAuthUsecase(users, nil, logger)

		users.On("FindByEmail", ctx, "g@example.com").Return(&entity.User{
			Password:      "",
			AuthProviders: entity.AuthProviders{Google: true},
		}, nil).Once()

		_, err := uc.Login(ctx, "g@example.com", "anything")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("MarksLocalProviderOnFirstPasswordLogin", func(t *testing.T) {
		users := new(MockUserRepo)
		uc := NewAuthUsecase(users, nil, logger)

		users.On("FindByEmail", ctx, "kate@example.com").Return(&entity.User{
			Password:      hashFor(t, "secret123"),
			AuthProviders: entity.AuthProviders{Google: true},
		}, nil).Once()
		users.On("Update", ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.AuthProviders.Local && u.AuthProviders.Google
		})).Return(nil).Once()

		user, err := uc.Login(ctx, "kate@example.com", "secret123")

		require.NoError(t, err)
		assert.True(t, user.AuthProviders.Local)
		users.AssertExpectations(t)
	})
}

func TestAuthUsecase_GoogleLogin(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("LinksExistingAccount", func(t *testing.T) {
		users := new(MockUserRepo)
		verifier := new(MockGoogleVerifier)
		uc := NewAuthUsecase(users, verifier, logger)

		verifier.On("Verify", ctx, "token").Return(&auth.GoogleProfile{
			GoogleID: "g-123",
			Email:    "kate@example.com",
			Name:     "Kate",
			Picture:  "https://lh3.example/kate.jpg",
		}, nil).Once()
		users.On("FindByEmail", ctx, "kate@example.com").Return(&entity.User{
			Email:         "kate@example.com",
			AuthProviders: entity.AuthProviders{Local: true},
		}, nil).Once()
		users.On("Update", ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.GoogleID == "g-123" && u.AuthProviders.Google && u.Avatar == "https://lh3.example/kate.jpg"
		})).Return(nil).Once()

		user, err := uc.GoogleLogin(ctx, "token")

		require.NoError(t, err)
		assert.Equal(t, "g-123", user.GoogleID)
		users.AssertExpectations(t)
	})

	t.Run("CreatesGoogleOnlyAccount", func(t *testing.T) {
		users := new(MockUserRepo)
		verifier := new(MockGoogleVerifier)
		uc := NewAuthUsecase(users, verifier, logger)
		id := primitive.NewObjectID()

		verifier.On("Verify", ctx, "token").Return(&auth.GoogleProfile{
			GoogleID: "g-456",
			Email:    "new@example.com",
			Name:     "New",
		}, nil).Once()
		users.On("FindByEmail", ctx, "new@example.com").Return(nil, repository.ErrUserNotFound).Once()
		users.On("Create", ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.GoogleID == "g-456" && !u.AuthProviders.Local && u.AuthProviders.Google && u.Role == entity.RoleUser
		})).Return(id, nil).Once()
		users.On("FindByID", ctx, id).Return(&entity.User{ID: id, GoogleID: "g-456"}, nil).Once()

		user, err := uc.GoogleLogin(ctx, "token")

		require.NoError(t, err)
		assert.Equal(t, id, user.ID)
		users.AssertExpectations(t)
	})

	t.Run("BadToken", func(t *testing.T) {
		users := new(MockUserRepo)
		verifier := new(MockGoogleVerifier)
		uc := NewAuthUsecase(users, verifier, logger)

		verifier.On("Verify", ctx, "bad").Return(nil, assert.AnError).Once()

		_, err := uc.GoogleLogin(ctx, "bad")

		assert.ErrorIs(t, err, auth.ErrInvalidGoogleToken)
	})
}

func TestAuthUsecase_UpdateProfile(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("AdminEmailIsImmutable", func(t *testing.T) {
		users := new(MockUserRepo)
		uc := NewAuthUsecase(users, nil, logger)
		id := primitive.NewObjectID()
		admin := &entity.User{ID: id, Role: entity.RoleAdmin, Email: "admin@example.com"}

		users.On("FindByID", ctx, id).Return(admin, nil).Twice()
		users.On("Update", ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Email == "admin@example.com"
		})).Return(nil).Once()

		_, err := uc.UpdateProfile(ctx, id, ProfileUpdate{Email: "evil@example.com"})

		require.NoError(t, err)
		users.AssertExpectations(t)
	})

	t.Run("PasswordChangeRequiresCurrentPassword", func(t *testing.T) {
		users := new(MockUserRepo)
		uc := NewAuthUsecase(users, nil, logger)
		id := primitive.NewObjectID()

		users.On("FindByID", ctx, id).Return(&entity.User{ID: id, Password: hashFor(t, "old")}, nil).Once()

		_, err := uc.UpdateProfile(ctx, id, ProfileUpdate{Password: "new"})

		assert.ErrorIs(t, err, ErrCurrentPasswordMissing)
	})

	t.Run("PasswordChangeRejectsWrongCurrentPassword", func(t *testing.T) {
		users := new(MockUserRepo)
		uc := NewAuthUsecase(users, nil, logger)
		id := primitive.NewObjectID()

		users.On("FindByID", ctx, id).Return(&entity.User{ID: id, Password: hashFor(t, "old")}, nil).Once()

		_, err := uc.UpdateProfile(ctx, id, ProfileUpdate{Password: "new", OldPassword: "nope"})

		assert.ErrorIs(t, err, ErrCurrentPasswordMismatch)
	})

	t.Run("PasswordChangeHappyPath", func(t *testing.T) {
		users := new(MockUserRepo)
		uc := NewAuthUsecase(users, nil, logger)
		id := primitive.NewObjectID()
		user := &entity.User{ID: id, Password: hashFor(t, "old")}

		users.On("FindByID", ctx, id).Return(user, nil).Twice()
		users.On("Update", ctx, user).Return(nil).Once()
		users.On("UpdatePassword", ctx, id, "new").Return(nil).Once()

		_, err := uc.UpdateProfile(ctx, id, ProfileUpdate{Password: "new", OldPassword: "old"})

		require.NoError(t, err)
		users.AssertExpectations(t)
	})
}
