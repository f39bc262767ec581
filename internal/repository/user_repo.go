package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/Mathiyarasan2102/LuxeEstate-RealEstate-Website-Backend/internal/entity"
)

type authProvidersDoc struct {
	Local  bool `bson:"local"`
	Google bool `bson:"google"`
}

type userDoc struct {
	ID                      primitive.ObjectID   `bson:"_id,omitempty"`
	Name                    string               `bson:"name"`
	Email                   string               `bson:"email"`
	Password                string               `bson:"password,omitempty"`
	GoogleID                string               `bson:"google_id,omitempty"`
	Avatar                  string               `bson:"avatar"`
	Role                    string               `bson:"role"`
	AuthProviders           authProvidersDoc     `bson:"auth_providers"`
	ReceivePushNotification bool                 `bson:"receive_push_notifications"`
	Wishlist                []primitive.ObjectID `bson:"wishlist"`
	SellerApplicationStatus string               `bson:"seller_application_status"`
	IsDeleted               bool                 `bson:"is_deleted"`
	RejectionReason         string               `bson:"rejection_reason"`
	CreatedAt               time.Time            `bson:"created_at"`
	UpdatedAt               time.Time            `bson:"updated_at"`
}

func (d *userDoc) toEntity() *entity.User {
	return &entity.User{
		ID:                      d.ID,
		Name:                    d.Name,
		Email:                   d.Email,
		Password:                d.Password,
		GoogleID:                d.GoogleID,
		Avatar:                  d.Avatar,
		Role:                    entity.Role(d.Role),
		AuthProviders:           entity.AuthProviders{Local: d.AuthProviders.Local, Google: d.AuthProviders.Google},
		ReceivePushNotification: d.ReceivePushNotification,
		Wishlist:                d.Wishlist,
		SellerApplicationStatus: entity.SellerApplicationStatus(d.SellerApplicationStatus),
		IsDeleted:               d.IsDeleted,
		RejectionReason:         d.RejectionReason,
		CreatedAt:               d.CreatedAt,
		UpdatedAt:               d.UpdatedAt,
	}
}

func fromUserEntity(u *entity.User) *userDoc {
	return &userDoc{
		ID:                      u.ID,
		Name:                    u.Name,
		Email:                   strings.ToLower(u.Email),
		Password:                u.Password,
		GoogleID:                u.GoogleID,
		Avatar:                  u.Avatar,
		Role:                    string(u.Role),
		AuthProviders:           authProvidersDoc{Local: u.AuthProviders.Local, Google: u.AuthProviders.Google},
		ReceivePushNotification: u.ReceivePushNotification,
		Wishlist:                u.Wishlist,
		SellerApplicationStatus: string(u.SellerApplicationStatus),
		IsDeleted:               u.IsDeleted,
		RejectionReason:         u.RejectionReason,
		CreatedAt:               u.CreatedAt,
		UpdatedAt:               u.UpdatedAt,
	}
}

type UserRepository struct {
	collection *mongo.Collection
	logger     *zap.Logger
}

func NewUserRepository(db *mongo.Database, logger *zap.Logger) *UserRepository {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collection := db.Collection("users")
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "google_id", Value: 1}}, Options: options.Index().SetUnique(true).SetSparse(true)},
	}
	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		logger.Warn("Failed to create indexes for users collection (may already exist)", zap.Error(err))
	}

	return &UserRepository{
		collection: collection,
		logger:     logger.Named("UserRepository"),
	}
}

// Create hashes the password (when present) and inserts the user. Duplicate
// emails map to ErrDuplicateEmail.
func (r *UserRepository) Create(ctx context.Context, user *entity.User) (primitive.ObjectID, error) {
	doc := fromUserEntity(user)

	if user.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
		if err != nil {
			r.logger.Error("Failed to hash password during user creation", zap.String("email", user.Email), zap.Error(err))
			return primitive.NilObjectID, err
		}
		doc.Password = string(hashed)
	}

	if doc.ID.IsZero() {
		doc.ID = primitive.NewObjectID()
	}
	now := time.Now()
	doc.CreatedAt = now
	doc.UpdatedAt = now
	if doc.Wishlist == nil {
		doc.Wishlist = []primitive.ObjectID{}
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		if isDuplicateKey(err) {
			r.logger.Warn("Duplicate email during user creation", zap.String("email", user.Email))
			return primitive.NilObjectID, ErrDuplicateEmail
		}
		r.logger.Error("Database error during user creation", zap.String("email", user.Email), zap.Error(err))
		return primitive.NilObjectID, err
	}
	r.logger.Info("User created", zap.String("userID", doc.ID.Hex()))
	return doc.ID, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.User, error) {
	var doc userDoc
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		r.logger.Error("Database error fetching user by ID", zap.String("userID", id.Hex()), zap.Error(err))
		return nil, err
	}
	return doc.toEntity(), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var doc userDoc
	err := r.collection.FindOne(ctx, bson.M{"email": strings.ToLower(email)}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		r.logger.Error("Database error fetching user by email", zap.String("email", email), zap.Error(err))
		return nil, err
	}
	return doc.toEntity(), nil
}

// Update persists every mutable field except the password, which has its own
// method so the hash never travels through generic updates.
func (r *UserRepository) Update(ctx context.Context, user *entity.User) error {
	user.UpdatedAt = time.Now()
	doc := fromUserEntity(user)

	update := bson.M{
		"$set": bson.M{
			"name":                       doc.Name,
			"email":                      doc.Email,
			"google_id":                  doc.GoogleID,
			"avatar":                     doc.Avatar,
			"role":                       doc.Role,
			"auth_providers":             doc.AuthProviders,
			"receive_push_notifications": doc.ReceivePushNotification,
			"wishlist":                   doc.Wishlist,
			"seller_application_status":  doc.SellerApplicationStatus,
			"is_deleted":                 doc.IsDeleted,
			"rejection_reason":           doc.RejectionReason,
			"updated_at":                 doc.UpdatedAt,
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": doc.ID}, update)
	if err != nil {
		if isDuplicateKey(err) {
			r.logger.Warn("Duplicate email during user update", zap.String("userID", user.ID.Hex()), zap.String("email", user.Email))
			return ErrDuplicateEmail
		}
		r.logger.Error("Database error during user update", zap.String("userID", user.ID.Hex()), zap.Error(err))
		return err
	}
	if result.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, userID primitive.ObjectID, newPassword string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		r.logger.Error("Failed to hash new password", zap.String("userID", userID.Hex()), zap.Error(err))
		return err
	}
	update := bson.M{
		"$set": bson.M{
			"password":   string(hashed),
			"updated_at": time.Now(),
		},
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": userID}, update)
	if err != nil {
		r.logger.Error("Database error updating password", zap.String("userID", userID.Hex()), zap.Error(err))
		return err
	}
	if result.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}

// SoftDelete flags the account; the document is never removed.
func (r *UserRepository) SoftDelete(ctx context.Context, userID primitive.ObjectID) error {
	update := bson.M{
		"$set": bson.M{
			"is_deleted": true,
			"updated_at": time.Now(),
		},
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": userID}, update)
	if err != nil {
		r.logger.Error("Database error soft-deleting user", zap.String("userID", userID.Hex()), zap.Error(err))
		return err
	}
	if result.MatchedCount == 0 {
		return ErrUserNotFound
	}
	r.logger.Info("User soft-deleted", zap.String("userID", userID.Hex()))
	return nil
}

// List returns all accounts that are not soft-deleted, newest first.
func (r *UserRepository) List(ctx context.Context) ([]*entity.User, error) {
	findOptions := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := r.collection.Find(ctx, bson.M{"is_deleted": bson.M{"$ne": true}}, findOptions)
	if err != nil {
		r.logger.Error("Database error listing users", zap.Error(err))
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []*userDoc
	if err = cursor.All(ctx, &docs); err != nil {
		r.logger.Error("Error decoding listed users", zap.Error(err))
		return nil, err
	}

	users := make([]*entity.User, 0, len(docs))
	for _, doc := range docs {
		users = append(users, doc.toEntity())
	}
	return users, nil
}

// AdminIDs returns the ids of every admin account. Soft-deleted admins are
// intentionally not filtered out, matching the fan-out targets of the
// original system.
func (r *UserRepository) AdminIDs(ctx context.Context) ([]primitive.ObjectID, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"role": string(entity.RoleAdmin)})
	if err != nil {
		r.logger.Error("Database error fetching admin accounts", zap.Error(err))
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []*userDoc
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	ids := make([]primitive.ObjectID, 0, len(docs))
	for _, doc := range docs {
		ids = append(ids, doc.ID)
	}
	return ids, nil
}

// HasAdmin reports whether at least one admin account exists.
func (r *UserRepository) HasAdmin(ctx context.Context) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"role": string(entity.RoleAdmin)}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func isDuplicateKey(err error) bool {
	var writeException mongo.WriteException
	if errors.As(err, &writeException) {
		for _, writeError := range writeException.WriteErrors {
			if writeError.Code == 11000 {
				return true
			}
		}
	}
	return false
}
