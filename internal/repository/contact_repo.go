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

type contactDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Subject   string             `bson:"subject"`
	Message   string             `bson:"message"`
	Status    string             `bson:"status"`
	Response  string             `bson:"response,omitempty"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (d *contactDoc) toEntity() *entity.ContactInquiry {
	return &entity.ContactInquiry{
		ID:        d.ID,
		Name:      d.Name,
		Email:     d.Email,
		Subject:   d.Subject,
		Message:   d.Message,
		Status:    entity.ContactStatus(d.Status),
		Response:  d.Response,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

type ContactRepository struct {
	collection *mongo.Collection
	logger     *zap.Logger
}

func NewContactRepository(db *mongo.Database, logger *zap.Logger) *ContactRepository {
	return &ContactRepository{
		collection: db.Collection("contact_inquiries"),
		logger:     logger.Named("ContactRepository"),
	}
}

func (r *ContactRepository) Create(ctx context.Context, contact *entity.ContactInquiry) (*entity.ContactInquiry, error) {
	now := time.Now()
	doc := &contactDoc{
		ID:        primitive.NewObjectID(),
		Name:      contact.Name,
		Email:     contact.Email,
		Subject:   contact.Subject,
		Message:   contact.Message,
		Status:    string(entity.ContactNew),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		r.logger.Error("Database error during contact inquiry creation", zap.String("email", contact.Email), zap.Error(err))
		return nil, err
	}
	return doc.toEntity(), nil
}

func (r *ContactRepository) List(ctx context.Context) ([]*entity.ContactInquiry, error) {
	findOptions := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		r.logger.Error("Database error listing contact inquiries", zap.Error(err))
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []*contactDoc
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	contacts := make([]*entity.ContactInquiry, 0, len(docs))
	for _, doc := range docs {
		contacts = append(contacts, doc.toEntity())
	}
	return contacts, nil
}

func (r *ContactRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status entity.ContactStatus, response string) (*entity.ContactInquiry, error) {
	update := bson.M{
		"$set": bson.M{
			"status":     string(status),
			"response":   response,
			"updated_at": time.Now(),
		},
	}
	var doc contactDoc
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrContactNotFound
		}
		r.logger.Error("Database error updating contact inquiry", zap.String("contactID", id.Hex()), zap.Error(err))
		return nil, err
	}
	return doc.toEntity(), nil
}
