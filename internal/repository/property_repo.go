package repository

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/Mathiyarasan2102/LuxeEstate-RealEstate-Website-Backend/internal/entity"
)

type locationDoc struct {
	Address string `bson:"address,omitempty"`
	City    string `bson:"city,omitempty"`
	State   string `bson:"state,omitempty"`
	Country string `bson:"country,omitempty"`
}

type propertyStatsDoc struct {
	Views         int64 `bson:"views"`
	Inquiries     int64 `bson:"inquiries"`
	WishlistCount int64 `bson:"wishlist_count"`
}

type propertyDoc struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Title          string             `bson:"title"`
	Description    string             `bson:"description"`
	Price          float64            `bson:"price"`
	Location       locationDoc        `bson:"location"`
	Bedrooms       int                `bson:"bedrooms"`
	Bathrooms      int                `bson:"bathrooms"`
	AreaSqft       float64            `bson:"area_sqft"`
	PropertyType   string             `bson:"property_type"`
	Amenities      []string           `bson:"amenities"`
	Images         []string           `bson:"images"`
	CoverImage     string             `bson:"cover_image"`
	Slug           string             `bson:"slug"`
	AgentID        primitive.ObjectID `bson:"agent_id"`
	ApprovalStatus string             `bson:"approval_status"`
	IsArchived     bool               `bson:"is_archived"`
	Stats          propertyStatsDoc   `bson:"stats"`
	CreatedAt      time.Time          `bson:"created_at"`
	UpdatedAt      time.Time          `bson:"updated_at"`
}

func (d *propertyDoc) toEntity() *entity.Property {
	return &entity.Property{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		Price:       d.Price,
		Location: entity.Location{
			Address: d.Location.Address,
			City:    d.Location.City,
			State:   d.Location.State,
			Country: d.Location.Country,
		},
		Bedrooms:       d.Bedrooms,
		Bathrooms:      d.Bathrooms,
		AreaSqft:       d.AreaSqft,
		PropertyType:   d.PropertyType,
		Amenities:      d.Amenities,
		Images:         d.Images,
		CoverImage:     d.CoverImage,
		Slug:           d.Slug,
		AgentID:        d.AgentID,
		ApprovalStatus: entity.ApprovalStatus(d.ApprovalStatus),
		IsArchived:     d.IsArchived,
		Stats: entity.PropertyStats{
			Views:         d.Stats.Views,
			Inquiries:     d.Stats.Inquiries,
			WishlistCount: d.Stats.WishlistCount,
		},
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func fromPropertyEntity(p *entity.Property) *propertyDoc {
	return &propertyDoc{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		Location: locationDoc{
			Address: p.Location.Address,
			City:    p.Location.City,
			State:   p.Location.State,
			Country: p.Location.Country,
		},
		Bedrooms:       p.Bedrooms,
		Bathrooms:      p.Bathrooms,
		AreaSqft:       p.AreaSqft,
		PropertyType:   p.PropertyType,
		Amenities:      p.Amenities,
		Images:         p.Images,
		CoverImage:     p.CoverImage,
		Slug:           p.Slug,
		AgentID:        p.AgentID,
		ApprovalStatus: string(p.ApprovalStatus),
		IsArchived:     p.IsArchived,
		Stats: propertyStatsDoc{
			Views:         p.Stats.Views,
			Inquiries:     p.Stats.Inquiries,
			WishlistCount: p.Stats.WishlistCount,
		},
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

type PropertyRepository struct {
	collection *mongo.Collection
	logger     *zap.Logger
}

func NewPropertyRepository(db *mongo.Database, logger *zap.Logger) *PropertyRepository {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collection := db.Collection("properties")
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "slug", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "agent_id", Value: 1}}},
		{Keys: bson.D{{Key: "approval_status", Value: 1}, {Key: "is_archived", Value: 1}}},
	}
	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		logger.Warn("Failed to create indexes for properties collection (may already exist)", zap.Error(err))
	}

	return &PropertyRepository{
		collection: collection,
		logger:     logger.Named("PropertyRepository"),
	}
}

func (r *PropertyRepository) Create(ctx context.Context, property *entity.Property) (primitive.ObjectID, error) {
	doc := fromPropertyEntity(property)
	if doc.ID.IsZero() {
		doc.ID = primitive.NewObjectID()
	}
	now := time.Now()
	doc.CreatedAt = now
	doc.UpdatedAt = now
	if doc.Amenities == nil {
		doc.Amenities = []string{}
	}
	if doc.Images == nil {
		doc.Images = []string{}
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		if isDuplicateKey(err) {
			r.logger.Warn("Duplicate slug during property creation", zap.String("slug", doc.Slug))
			return primitive.NilObjectID, ErrDuplicateSlug
		}
		r.logger.Error("Database error during property creation", zap.String("title", property.Title), zap.Error(err))
		return primitive.NilObjectID, err
	}
	r.logger.Info("Property created", zap.String("propertyID", doc.ID.Hex()), zap.String("agentID", doc.AgentID.Hex()))
	return doc.ID, nil
}

func (r *PropertyRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Property, error) {
	var doc propertyDoc
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrPropertyNotFound
		}
		r.logger.Error("Database error fetching property by ID", zap.String("propertyID", id.Hex()), zap.Error(err))
		return nil, err
	}
	return doc.toEntity(), nil
}

// FindByIDOrSlug resolves the public identifier: slug first, hex id second.
func (r *PropertyRepository) FindByIDOrSlug(ctx context.Context, idOrSlug string) (*entity.Property, error) {
	var doc propertyDoc
	err := r.collection.FindOne(ctx, bson.M{"slug": idOrSlug}).Decode(&doc)
	if err == nil {
		return doc.toEntity(), nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		r.logger.Error("Database error fetching property by slug", zap.String("slug", idOrSlug), zap.Error(err))
		return nil, err
	}

	id, idErr := primitive.ObjectIDFromHex(idOrSlug)
	if idErr != nil {
		return nil, ErrPropertyNotFound
	}
	return r.FindByID(ctx, id)
}

// Update persists mutable listing fields. AgentID is deliberately absent:
// ownership never changes after creation.
func (r *PropertyRepository) Update(ctx context.Context, property *entity.Property) error {
	property.UpdatedAt = time.Now()
	doc := fromPropertyEntity(property)

	update := bson.M{
		"$set": bson.M{
			"title":           doc.Title,
			"description":     doc.Description,
			"price":           doc.Price,
			"location":        doc.Location,
			"bedrooms":        doc.Bedrooms,
			"bathrooms":       doc.Bathrooms,
			"area_sqft":       doc.AreaSqft,
			"property_type":   doc.PropertyType,
			"amenities":       doc.Amenities,
			"images":          doc.Images,
			"cover_image":     doc.CoverImage,
			"approval_status": doc.ApprovalStatus,
			"is_archived":     doc.IsArchived,
			"updated_at":      doc.UpdatedAt,
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": doc.ID}, update)
	if err != nil {
		r.logger.Error("Database error during property update", zap.String("propertyID", property.ID.Hex()), zap.Error(err))
		return err
	}
	if result.MatchedCount == 0 {
		return ErrPropertyNotFound
	}
	return nil
}

func (r *PropertyRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		r.logger.Error("Database error deleting property", zap.String("propertyID", id.Hex()), zap.Error(err))
		return err
	}
	if result.DeletedCount == 0 {
		return ErrPropertyNotFound
	}
	r.logger.Info("Property deleted", zap.String("propertyID", id.Hex()))
	return nil
}

// IncrementViews bumps the view counter without a read-modify-write cycle.
func (r *PropertyRepository) IncrementViews(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"stats.views": 1}})
	if err != nil {
		r.logger.Error("Database error incrementing property views", zap.String("propertyID", id.Hex()), zap.Error(err))
	}
	return err
}

func (r *PropertyRepository) IncrementInquiries(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"stats.inquiries": 1}})
	if err != nil {
		r.logger.Error("Database error incrementing property inquiries", zap.String("propertyID", id.Hex()), zap.Error(err))
	}
	return err
}

// SetWishlistCount writes an absolute counter value computed by the caller,
// which also applies the floor at zero.
func (r *PropertyRepository) SetWishlistCount(ctx context.Context, id primitive.ObjectID, count int64) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"stats.wishlist_count": count}})
	if err != nil {
		r.logger.Error("Database error setting wishlist count", zap.String("propertyID", id.Hex()), zap.Error(err))
	}
	return err
}

// FindPublic lists approved, non-archived properties matching the filter,
// newest first, with the total match count for pagination.
func (r *PropertyRepository) FindPublic(ctx context.Context, filter entity.PropertyFilter) ([]*entity.Property, int64, error) {
	query := bson.M{
		"approval_status": string(entity.ApprovalApproved),
		"is_archived":     false,
	}

	if filter.Search != "" {
		pattern := "^" + regexp.QuoteMeta(filter.Search)
		query["$or"] = []bson.M{
			{"title": bson.M{"$regex": pattern, "$options": "i"}},
			{"location.city": bson.M{"$regex": pattern, "$options": "i"}},
			{"location.state": bson.M{"$regex": pattern, "$options": "i"}},
			{"location.country": bson.M{"$regex": pattern, "$options": "i"}},
		}
	}
	if filter.City != "" {
		query["location.city"] = bson.M{"$regex": "^" + regexp.QuoteMeta(filter.City), "$options": "i"}
	}
	if filter.PropertyType != "" {
		query["property_type"] = filter.PropertyType
	}
	if filter.MinPrice > 0 || filter.MaxPrice > 0 {
		price := bson.M{}
		if filter.MinPrice > 0 {
			price["$gte"] = filter.MinPrice
		}
		if filter.MaxPrice > 0 {
			price["$lte"] = filter.MaxPrice
		}
		query["price"] = price
	}
	if filter.Bedrooms > 0 {
		query["bedrooms"] = bson.M{"$gte": filter.Bedrooms}
	}
	if filter.Bathrooms > 0 {
		query["bathrooms"] = bson.M{"$gte": filter.Bathrooms}
	}

	total, err := r.collection.CountDocuments(ctx, query)
	if err != nil {
		r.logger.Error("Database error counting public properties", zap.Error(err))
		return nil, 0, err
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 12
	}

	findOptions := options.Find().
		SetSort(bson.M{"created_at": -1}).
		SetSkip((page - 1) * limit).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, query, findOptions)
	if err != nil {
		r.logger.Error("Database error listing public properties", zap.Error(err))
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var docs []*propertyDoc
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, 0, err
	}

	properties := make([]*entity.Property, 0, len(docs))
	for _, doc := range docs {
		properties = append(properties, doc.toEntity())
	}
	return properties, total, nil
}

func (r *PropertyRepository) FindByAgent(ctx context.Context, agentID primitive.ObjectID) ([]*entity.Property, error) {
	return r.findSorted(ctx, bson.M{"agent_id": agentID})
}

// FindAll returns every property regardless of status, for admin review.
func (r *PropertyRepository) FindAll(ctx context.Context) ([]*entity.Property, error) {
	return r.findSorted(ctx, bson.M{})
}

func (r *PropertyRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*entity.Property, error) {
	if len(ids) == 0 {
		return []*entity.Property{}, nil
	}
	return r.findSorted(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

func (r *PropertyRepository) findSorted(ctx context.Context, query bson.M) ([]*entity.Property, error) {
	findOptions := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := r.collection.Find(ctx, query, findOptions)
	if err != nil {
		r.logger.Error("Database error listing properties", zap.Error(err))
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []*propertyDoc
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	properties := make([]*entity.Property, 0, len(docs))
	for _, doc := range docs {
		properties = append(properties, doc.toEntity())
	}
	return properties, nil
}
