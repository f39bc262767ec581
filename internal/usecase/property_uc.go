package usecase

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/Mathiyarasan2102/LuxeEstate-RealEstate-Website-Backend/internal/adapter/messaging/nats"
	"github.com/Mathiyarasan2102/LuxeEstate-RealEstate-Website-Backend/internal/entity"
)

type PropertyUsecase struct {
	properties PropertyRepo
	notifier   NotificationSender
	events     EventPublisher
	storage    ImageStorage
	logger     *zap.Logger
}

func NewPropertyUsecase(properties PropertyRepo, notifier NotificationSender, events EventPublisher, storage ImageStorage, logger *zap.Logger) *PropertyUsecase {
	return &PropertyUsecase{
		properties: properties,
		notifier:   notifier,
		events:     events,
		storage:    storage,
		logger:     logger.Named("PropertyUsecase"),
	}
}

// PropertyInput is the client-supplied listing payload. Approval status is
// deliberately absent: whatever a request carries, a new listing starts at
// pending, and status transitions go through Update/Publish.
type PropertyInput struct {
	Title        string
	Description  string
	Price        float64
	Location     entity.Location
	Bedrooms     int
	Bathrooms    int
	AreaSqft     float64
	PropertyType string
	Amenities    []string
	Images       []string
	CoverImage   string
}

// PropertyUpdate adds the admin-controlled fields on top of the base input.
type PropertyUpdate struct {
	PropertyInput
	ApprovalStatus *entity.ApprovalStatus
	IsArchived     *bool
}

type propertyEvent struct {
	PropertyID string `json:"property_id"`
	AgentID    string `json:"agent_id"`
	Title      string `json:"title"`
	Status     string `json:"status"`
}

func (uc *PropertyUsecase) List(ctx context.Context, filter entity.PropertyFilter) ([]*entity.Property, int64, error) {
	return uc.properties.FindPublic(ctx, filter)
}

// Get resolves a listing by slug or id and bumps its view counter: reading
// a single listing is intentionally not idempotent.
func (uc *PropertyUsecase) Get(ctx context.Context, idOrSlug string) (*entity.Property, error) {
	property, err := uc.properties.FindByIDOrSlug(ctx, idOrSlug)
	if err != nil {
		return nil, err
	}
	if err := uc.properties.IncrementViews(ctx, property.ID); err == nil {
		property.Stats.Views++
	}
	return property, nil
}

func (uc *PropertyUsecase) Create(ctx context.Context, actor *entity.User, input PropertyInput) (*entity.Property, error) {
	property := &entity.Property{
		Title:          input.Title,
		Description:    input.Description,
		Price:          input.Price,
		Location:       input.Location,
		Bedrooms:       input.Bedrooms,
		Bathrooms:      input.Bathrooms,
		AreaSqft:       input.AreaSqft,
		PropertyType:   input.PropertyType,
		Amenities:      input.Amenities,
		Images:         input.Images,
		CoverImage:     input.CoverImage,
		Slug:           makeSlug(input.Title),
		AgentID:        actor.ID,
		ApprovalStatus: entity.ApprovalPending,
	}

	id, err := uc.properties.Create(ctx, property)
	if err != nil {
		return nil, err
	}
	property.ID = id

	uc.notifier.NotifyAdmins(ctx,
		"New Property Submission",
		fmt.Sprintf("%s has submitted %q for approval.", actor.Name, property.Title),
		entity.NotificationInfo,
		"/admin/dashboard?tab=listings")

	uc.events.Publish(ctx, nats.SubjectPropertyCreated, propertyEvent{
		PropertyID: id.Hex(),
		AgentID:    actor.ID.Hex(),
		Title:      property.Title,
		Status:     string(property.ApprovalStatus),
	})

	return uc.properties.FindByID(ctx, id)
}

// Update applies a listing change under the ownership guard. Only admins
// move listings to approved or rejected; owners may only re-submit to
// pending. An admin transition into approved or rejected notifies the
// owning agent exactly once per transition.
func (uc *PropertyUsecase) Update(ctx context.Context, actor *entity.User, id primitive.ObjectID, update PropertyUpdate) (*entity.Property, error) {
	property, err := uc.properties.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanManage(actor.ID, actor.Role, property.AgentID) {
		return nil, ErrForbidden
	}

	previousStatus := property.ApprovalStatus

	applyPropertyInput(property, update.PropertyInput)
	if update.IsArchived != nil {
		property.IsArchived = *update.IsArchived
	}
	if update.ApprovalStatus != nil {
		requested := *update.ApprovalStatus
		if actor.Role == entity.RoleAdmin || requested == entity.ApprovalPending {
			property.ApprovalStatus = requested
		}
	}

	if err := uc.properties.Update(ctx, property); err != nil {
		return nil, err
	}

	if actor.Role == entity.RoleAdmin && previousStatus != entity.ApprovalApproved && property.ApprovalStatus == entity.ApprovalApproved {
		uc.notifier.Send(ctx, property.AgentID,
			"Property Approved",
			fmt.Sprintf("Your property %q has been approved and is now live.", property.Title),
			entity.NotificationSuccess,
			"/properties/"+property.Slug)
		uc.events.Publish(ctx, nats.SubjectPropertyApproved, propertyEvent{
			PropertyID: property.ID.Hex(),
			AgentID:    property.AgentID.Hex(),
			Title:      property.Title,
			Status:     string(property.ApprovalStatus),
		})
	}

	if actor.Role == entity.RoleAdmin && previousStatus != entity.ApprovalRejected && property.ApprovalStatus == entity.ApprovalRejected {
		uc.notifier.Send(ctx, property.AgentID,
			"Property Rejected",
			fmt.Sprintf("Your property %q has been rejected. Please reviews guidelines.", property.Title),
			entity.NotificationError,
			"/seller/dashboard")
		uc.events.Publish(ctx, nats.SubjectPropertyRejected, propertyEvent{
			PropertyID: property.ID.Hex(),
			AgentID:    property.AgentID.Hex(),
			Title:      property.Title,
			Status:     string(property.ApprovalStatus),
		})
	}

	return property, nil
}

func (uc *PropertyUsecase) Delete(ctx context.Context, actor *entity.User, id primitive.ObjectID) error {
	property, err := uc.properties.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !CanManage(actor.ID, actor.Role, property.AgentID) {
		return ErrForbidden
	}

	if err := uc.properties.Delete(ctx, id); err != nil {
		return err
	}

	uc.events.Publish(ctx, nats.SubjectPropertyDeleted, propertyEvent{
		PropertyID: property.ID.Hex(),
		AgentID:    property.AgentID.Hex(),
		Title:      property.Title,
		Status:     string(property.ApprovalStatus),
	})
	return nil
}

// Publish re-submits a listing for approval and fans out to every admin.
func (uc *PropertyUsecase) Publish(ctx context.Context, actor *entity.User, id primitive.ObjectID) (*entity.Property, error) {
	property, err := uc.properties.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanManage(actor.ID, actor.Role, property.AgentID) {
		return nil, ErrForbidden
	}

	property.ApprovalStatus = entity.ApprovalPending
	if err := uc.properties.Update(ctx, property); err != nil {
		return nil, err
	}

	uc.notifier.NotifyAdmins(ctx,
		"New Property Submission",
		fmt.Sprintf("%s has submitted %q for approval.", actor.Name, property.Title),
		entity.NotificationInfo,
		"/admin/properties")

	uc.events.Publish(ctx, nats.SubjectPropertySubmitted, propertyEvent{
		PropertyID: property.ID.Hex(),
		AgentID:    property.AgentID.Hex(),
		Title:      property.Title,
		Status:     string(property.ApprovalStatus),
	})

	return property, nil
}

// Stats returns the listing counters, owner or admin only.
func (uc *PropertyUsecase) Stats(ctx context.Context, actor *entity.User, id primitive.ObjectID) (*entity.PropertyStats, error) {
	property, err := uc.properties.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanManage(actor.ID, actor.Role, property.AgentID) {
		return nil, ErrForbidden
	}
	stats := property.Stats
	return &stats, nil
}

func (uc *PropertyUsecase) AgentListings(ctx context.Context, agentID primitive.ObjectID) ([]*entity.Property, error) {
	return uc.properties.FindByAgent(ctx, agentID)
}

func (uc *PropertyUsecase) AdminListings(ctx context.Context) ([]*entity.Property, error) {
	return uc.properties.FindAll(ctx)
}

// UploadFile is one multipart image to store.
type UploadFile struct {
	Name string
	Data []byte
}

// UploadImages stores each file and returns the URLs in order. A provider
// error fails the whole batch; the unconfigured-provider placeholder path
// never errors.
func (uc *PropertyUsecase) UploadImages(ctx context.Context, files []UploadFile) ([]string, error) {
	urls := make([]string, 0, len(files))
	for _, file := range files {
		url, err := uc.storage.Upload(ctx, file.Name, file.Data)
		if err != nil {
			uc.logger.Error("Image batch upload failed", zap.String("filename", file.Name), zap.Error(err))
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}

func applyPropertyInput(property *entity.Property, input PropertyInput) {
	if input.Title != "" {
		property.Title = input.Title
	}
	if input.Description != "" {
		property.Description = input.Description
	}
	if input.Price > 0 {
		property.Price = input.Price
	}
	if input.Location != (entity.Location{}) {
		property.Location = input.Location
	}
	if input.Bedrooms > 0 {
		property.Bedrooms = input.Bedrooms
	}
	if input.Bathrooms > 0 {
		property.Bathrooms = input.Bathrooms
	}
	if input.AreaSqft > 0 {
		property.AreaSqft = input.AreaSqft
	}
	if input.PropertyType != "" {
		property.PropertyType = input.PropertyType
	}
	if input.Amenities != nil {
		property.Amenities = input.Amenities
	}
	if input.Images != nil {
		property.Images = input.Images
	}
	if input.CoverImage != "" {
		property.CoverImage = input.CoverImage
	}
}

// makeSlug builds a URL identifier from the title plus a short random
// suffix to keep the unique index happy for repeated titles.
func makeSlug(title string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteRune('-')
			lastDash = true
		}
	}
	slug := strings.Trim(b.String(), "-")
	suffix := strings.Split(uuid.New().String(), "-")[0]
	if slug == "" {
		return suffix
	}
	return slug + "-" + suffix
}
