package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Mathiyarasan2102/LuxeEstate-RealEstate-Website-Backend/internal/auth"
	"github.com/Mathiyarasan2102/LuxeEstate-RealEstate-Website-Backend/internal/entity"
)

type MockUserRepo struct{ mock.Mock }

func (m *MockUserRepo) Create(ctx context.Context, user *entity.User) (primitive.ObjectID, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}
func (m *MockUserRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}
func (m *MockUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}
func (m *MockUserRepo) Update(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) UpdatePassword(ctx context.Context, userID primitive.ObjectID, newPassword string) error {
	args := m.Called(ctx, userID, newPassword)
	return args.Error(0)
}
func (m *MockUserRepo) SoftDelete(ctx context.Context, userID primitive.ObjectID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}
func (m *MockUserRepo) List(ctx context.Context) ([]*entity.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.User), args.Error(1)
}

type MockPropertyRepo struct{ mock.Mock }

func (m *MockPropertyRepo) Create(ctx context.Context, property *entity.Property) (primitive.ObjectID, error) {
	args := m.Called(ctx, property)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}
func (m *MockPropertyRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Property, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Property), args.Error(1)
}
func (m *MockPropertyRepo) FindByIDOrSlug(ctx context.Context, idOrSlug string) (*entity.Property, error) {
	args := m.Called(ctx, idOrSlug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Property), args.Error(1)
}
func (m *MockPropertyRepo) Update(ctx context.Context, property *entity.Property) error {
	args := m.Called(ctx, property)
	return args.Error(0)
}
func (m *MockPropertyRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockPropertyRepo) IncrementViews(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockPropertyRepo) IncrementInquiries(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockPropertyRepo) SetWishlistCount(ctx context.Context, id primitive.ObjectID, count int64) error {
	args := m.Called(ctx, id, count)
	return args.Error(0)
}
func (m *MockPropertyRepo) FindPublic(ctx context.Context, filter entity.PropertyFilter) ([]*entity.Property, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*entity.Property), args.Get(1).(int64), args.Error(2)
}
func (m *MockPropertyRepo) FindByAgent(ctx context.Context, agentID primitive.ObjectID) ([]*entity.Property, error) {
	args := m.Called(ctx, agentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Property), args.Error(1)
}
func (m *MockPropertyRepo) FindAll(ctx context.Context) ([]*entity.Property, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Property), args.Error(1)
}
func (m *MockPropertyRepo) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*entity.Property, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Property), args.Error(1)
}

type MockInquiryRepo struct{ mock.Mock }

func (m *MockInquiryRepo) Create(ctx context.Context, inquiry *entity.Inquiry) (primitive.ObjectID, error) {
	args := m.Called(ctx, inquiry)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}
func (m *MockInquiryRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Inquiry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Inquiry), args.Error(1)
}
func (m *MockInquiryRepo) UpdateStatus(ctx context.Context, id primitive.ObjectID, status entity.InquiryStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockInquiryRepo) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]*entity.Inquiry, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Inquiry), args.Error(1)
}
func (m *MockInquiryRepo) FindByProperties(ctx context.Context, propertyIDs []primitive.ObjectID) ([]*entity.Inquiry, error) {
	args := m.Called(ctx, propertyIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Inquiry), args.Error(1)
}

type MockNotificationRepo struct{ mock.Mock }

func (m *MockNotificationRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Notification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Notification), args.Error(1)
}
func (m *MockNotificationRepo) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]*entity.Notification, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Notification), args.Error(1)
}
func (m *MockNotificationRepo) MarkRead(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockNotificationRepo) MarkAllRead(ctx context.Context, userID primitive.ObjectID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type MockContactRepo struct{ mock.Mock }

func (m *MockContactRepo) Create(ctx context.Context, contact *entity.ContactInquiry) (*entity.ContactInquiry, error) {
	args := m.Called(ctx, contact)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ContactInquiry), args.Error(1)
}
func (m *MockContactRepo) List(ctx context.Context) ([]*entity.ContactInquiry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.ContactInquiry), args.Error(1)
}
func (m *MockContactRepo) UpdateStatus(ctx context.Context, id primitive.ObjectID, status entity.ContactStatus, response string) (*entity.ContactInquiry, error) {
	args := m.Called(ctx, id, status, response)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ContactInquiry), args.Error(1)
}

type MockNotificationSender struct{ mock.Mock }

func (m *MockNotificationSender) Send(ctx context.Context, userID primitive.ObjectID, title, message string, typ entity.NotificationType, link string) *entity.Notification {
	args := m.Called(ctx, userID, title, message, typ, link)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*entity.Notification)
}
func (m *MockNotificationSender) NotifyAdmins(ctx context.Context, title, message string, typ entity.NotificationType, link string) {
	m.Called(ctx, title, message, typ, link)
}

type MockMailSender struct{ mock.Mock }

func (m *MockMailSender) Send(to, subject, body string) error {
	args := m.Called(to, subject, body)
	return args.Error(0)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, subject string, data interface{}) {
	m.Called(ctx, subject, data)
}

type MockImageStorage struct{ mock.Mock }

func (m *MockImageStorage) Upload(ctx context.Context, originalFileName string, data []byte) (string, error) {
	args := m.Called(ctx, originalFileName, data)
	return args.String(0), args.Error(1)
}

type MockGoogleVerifier struct{ mock.Mock }

func (m *MockGoogleVerifier) Verify(ctx context.Context, credential string) (*auth.GoogleProfile, error) {
	args := m.Called(ctx, credential)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.GoogleProfile), args.Error(1)
}
