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

type inquiryDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	PropertyID primitive.ObjectID `bson:"property_id"`
	UserID     primitive.ObjectID `bson:"user_id"`
	Message    string             `bson:"message"`
	Status     string             `bson:"status"`
	CreatedAt  time.Time          `bson:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at"`
}

func (d *inquiryDoc) toEntity() *entity.Inquiry {
	return &entity.Inquiry{
		ID:         d.ID,
		PropertyID: d.PropertyID,
		UserID:     d.UserID,
		Message:    d.Message,
		Status:     entity.InquiryStatus(d.Status),
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

type InquiryRepository struct {
	collection *mongo.Collection
	logger     *zap.Logger
}

func NewInquiryRepository(db *mongo.Database, logger *zap.Logger) *InquiryRepository {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collection := db.Collection("inquiries")
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "property_id", Value: 1}}},
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
	}
	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		logger.Warn("Failed to create indexes for inquiries collection (may already exist)", zap.Error(err))
	}

	return &InquiryRepository{
		collection: collection,
		logger:     logger.Named("InquiryRepository"),
	}
}

func (r *InquiryRepository) Create(ctx context.Context, inquiry *entity.Inquiry) (primitive.ObjectID, error) {
	now := time.Now()
	doc := &inquiryDoc{
		ID:         primitive.NewObjectID(),
		PropertyID: inquiry.PropertyID,
		UserID:     inquiry.UserID,
		Message:    inquiry.Message,
		Status:     string(inquiry.Status),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if doc.Status == "" {
		doc.Status = string(entity.InquiryPending)
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		r.logger.Error("Database error during inquiry creation", zap.String("propertyID", inquiry.PropertyID.Hex()), zap.Error(err))
		return primitive.NilObjectID, err
	}
	return doc.ID, nil
}

func (r *InquiryRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Inquiry, error) {
	var doc inquiryDoc
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrInquiryNotFound
		}
		r.logger.Error("Database error fetching inquiry", zap.String("inquiryID", id.Hex()), zap.Error(err))
		return nil, err
	}
	return doc.toEntity(), nil
}

func (r *InquiryRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status entity.InquiryStatus) error {
	update := bson.M{
		"$set": bson.M{
			"status":     string(status),
			"updated_at": time.Now(),
		},
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		r.logger.Error("Database error updating inquiry status", zap.String("inquiryID", id.Hex()), zap.Error(err))
		return err
	}
	if result.MatchedCount == 0 {
		return ErrInquiryNotFound
	}
	return nil
}

func (r *InquiryRepository) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]*entity.Inquiry, error) {
	return r.findSorted(ctx, bson.M{"user_id": userID})
}

// FindByProperties returns the inquiries across a set of properties, used
// for an agent's combined inbox.
func (r *InquiryRepository) FindByProperties(ctx context.Context, propertyIDs []primitive.ObjectID) ([]*entity.Inquiry, error) {
	if len(propertyIDs) == 0 {
		return []*entity.Inquiry{}, nil
	}
	return r.findSorted(ctx, bson.M{"property_id": bson.M{"$in": propertyIDs}})
}

func (r *InquiryRepository) findSorted(ctx context.Context, query bson.M) ([]*entity.Inquiry, error) {
	findOptions := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := r.collection.Find(ctx, query, findOptions)
	if err != nil {
		r.logger.Error("Database error listing inquiries", zap.Error(err))
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []*inquiryDoc
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	inquiries := make([]*entity.Inquiry, 0, len(docs))
	for _, doc := range docs {
		inquiries = append(inquiries, doc.toEntity())
	}
	return inquiries, nil
}
