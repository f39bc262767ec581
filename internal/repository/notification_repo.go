package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/Mathiyarasan2102/LuxeEstate-RealEstate-Website-Backend/internal/entity"
)

type notificationDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    primitive.ObjectID `bson:"user_id"`
	Title     string             `bson:"title"`
	Message   string             `bson:"message"`
	Type      string             `bson:"type"`
	Link      string             `bson:"link,omitempty"`
	IsRead    bool               `bson:"is_read"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (d *notificationDoc) toEntity() *entity.Notification {
	return &entity.Notification{
		ID:        d.ID,
		UserID:    d.UserID,
		Title:     d.Title,
		Message:   d.Message,
		Type:      entity.NotificationType(d.Type),
		Link:      d.Link,
		IsRead:    d.IsRead,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

type NotificationRepository struct {
	collection *mongo.Collection
	logger     *zap.Logger
}

func NewNotificationRepository(db *mongo.Database, logger *zap.Logger) *NotificationRepository {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collection := db.Collection("notifications")
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
	}
	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		logger.Warn("Failed to create indexes for notifications collection (may already exist)", zap.Error(err))
	}

	return &NotificationRepository{
		collection: collection,
		logger:     logger.Named("NotificationRepository"),
	}
}

func (r *NotificationRepository) Create(ctx context.Context, notification *entity.Notification) (*entity.Notification, error) {
	now := time.Now()
	doc := &notificationDoc{
		ID:        primitive.NewObjectID(),
		UserID:    notification.UserID,
		Title:     notification.Title,
		Message:   notification.Message,
		Type:      string(notification.Type),
		Link:      notification.Link,
		IsRead:    false,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if doc.Title == "" {
		doc.Title = "Notification"
	}
	if doc.Type == "" {
		doc.Type = string(entity.NotificationInfo)
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		r.logger.Error("Database error during notification creation", zap.String("userID", notification.UserID.Hex()), zap.Error(err))
		return nil, err
	}
	return doc.toEntity(), nil
}

func (r *NotificationRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Notification, error) {
	var doc notificationDoc
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotificationNotFound
		}
		r.logger.Error("Database error fetching notification", zap.String("notificationID", id.Hex()), zap.Error(err))
		return nil, err
	}
	return doc.toEntity(), nil
}

func (r *NotificationRepository) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]*entity.Notification, error) {
	findOptions := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, findOptions)
	if err != nil {
		r.logger.Error("Database error listing notifications", zap.String("userID", userID.Hex()), zap.Error(err))
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []*notificationDoc
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	notifications := make([]*entity.Notification, 0, len(docs))
	for _, doc := range docs {
		notifications = append(notifications, doc.toEntity())
	}
	return notifications, nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id primitive.ObjectID) error {
	update := bson.M{
		"$set": bson.M{
			"is_read":    true,
			"updated_at": time.Now(),
		},
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		r.logger.Error("Database error marking notification read", zap.String("notificationID", id.Hex()), zap.Error(err))
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID primitive.ObjectID) error {
	update := bson.M{
		"$set": bson.M{
			"is_read":    true,
			"updated_at": time.Now(),
		},
	}
	_, err := r.collection.UpdateMany(ctx, bson.M{"user_id": userID, "is_read": false}, update)
	if err != nil {
		r.logger.Error("Database error marking all notifications read", zap.String("userID", userID.Hex()), zap.Error(err))
	}
	return err
}
