package usecase

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/Mathiyarasan2102/LuxeEstate-RealEstate-Website-Backend/internal/entity"
)

type InquiryUsecase struct {
	inquiries  InquiryRepo
	properties PropertyRepo
	users      UserRepo
	notifier   NotificationSender
	mail       MailSender
	logger     *zap.Logger
}

func NewInquiryUsecase(inquiries InquiryRepo, properties PropertyRepo, users UserRepo, notifier NotificationSender, mail MailSender, logger *zap.Logger) *InquiryUsecase {
	return &InquiryUsecase{
		inquiries:  inquiries,
		properties: properties,
		users:      users,
		notifier:   notifier,
		mail:       mail,
		logger:     logger.Named("InquiryUsecase"),
	}
}

// InquiryView pairs an inquiry with the display fields of its author and
// listing, since the documents only hold ids.
type InquiryView struct {
	Inquiry  *entity.Inquiry
	Property *entity.Property
	User     *entity.User
}

func (uc *InquiryUsecase) Create(ctx context.Context, actor *entity.User, propertyID primitive.ObjectID, message string) (*InquiryView, error) {
	property, err := uc.properties.FindByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	inquiry := &entity.Inquiry{
		PropertyID: propertyID,
		UserID:     actor.ID,
		Message:    message,
	}
	id, err := uc.inquiries.Create(ctx, inquiry)
	if err != nil {
		return nil, err
	}
	inquiry.ID = id

	if err := uc.properties.IncrementInquiries(ctx, propertyID); err != nil {
		uc.logger.Warn("Failed to bump inquiry counter", zap.String("propertyID", propertyID.Hex()), zap.Error(err))
	}

	uc.notifier.Send(ctx, property.AgentID,
		"New Property Inquiry",
		fmt.Sprintf("New inquiry for %q: %s...", property.Title, truncate(message, 50)),
		entity.NotificationInfo,
		"/seller/dashboard?tab=inquiries")

	stored, err := uc.inquiries.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &InquiryView{Inquiry: stored, Property: property, User: actor}, nil
}

// AgentInbox lists inquiries against every listing the actor owns, newest
// first.
func (uc *InquiryUsecase) AgentInbox(ctx context.Context, actor *entity.User) ([]*InquiryView, error) {
	properties, err := uc.properties.FindByAgent(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	propertyIDs := make([]primitive.ObjectID, 0, len(properties))
	byID := make(map[primitive.ObjectID]*entity.Property, len(properties))
	for _, p := range properties {
		propertyIDs = append(propertyIDs, p.ID)
		byID[p.ID] = p
	}

	inquiries, err := uc.inquiries.FindByProperties(ctx, propertyIDs)
	if err != nil {
		return nil, err
	}
	return uc.buildViews(ctx, inquiries, byID)
}

func (uc *InquiryUsecase) MyInquiries(ctx context.Context, actor *entity.User) ([]*InquiryView, error) {
	inquiries, err := uc.inquiries.FindByUser(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	return uc.buildViews(ctx, inquiries, nil)
}

func (uc *InquiryUsecase) UpdateStatus(ctx context.Context, actor *entity.User, id primitive.ObjectID, status entity.InquiryStatus) (*InquiryView, error) {
	inquiry, err := uc.inquiries.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	property, err := uc.properties.FindByID(ctx, inquiry.PropertyID)
	if err != nil {
		return nil, err
	}
	if !CanManage(actor.ID, actor.Role, property.AgentID) {
		return nil, ErrForbidden
	}

	if status != "" {
		if err := uc.inquiries.UpdateStatus(ctx, id, status); err != nil {
			return nil, err
		}
		inquiry.Status = status

		uc.notifier.Send(ctx, inquiry.UserID,
			"Inquiry Update",
			fmt.Sprintf("Your inquiry for %s has been updated to %s.", property.Title, status),
			entity.NotificationInfo,
			"/dashboard?tab=inquiries")
	}

	author, err := uc.users.FindByID(ctx, inquiry.UserID)
	if err != nil {
		author = nil
	}
	return &InquiryView{Inquiry: inquiry, Property: property, User: author}, nil
}

// Reply emails the inquiry author on behalf of the listing owner. A
// delivery failure surfaces to the caller; on success a pending inquiry
// moves to reviewed and the author gets an in-app notification.
func (uc *InquiryUsecase) Reply(ctx context.Context, actor *entity.User, id primitive.ObjectID, subject, message string) error {
	inquiry, err := uc.inquiries.FindByID(ctx, id)
	if err != nil {
		return err
	}
	property, err := uc.properties.FindByID(ctx, inquiry.PropertyID)
	if err != nil {
		return err
	}
	if !CanManage(actor.ID, actor.Role, property.AgentID) {
		return ErrForbidden
	}

	author, err := uc.users.FindByID(ctx, inquiry.UserID)
	if err != nil || author.Email == "" {
		return ErrInquirerEmailMissing
	}

	if subject == "" {
		subject = "Re: Inquiry for " + property.Title
	}
	body := replyEmailBody(author.Name, property.Title, message)
	if err := uc.mail.Send(author.Email, subject, body); err != nil {
		uc.logger.Error("Inquiry reply email failed", zap.String("inquiryID", id.Hex()), zap.Error(err))
		return ErrEmailDeliveryFailed
	}

	if inquiry.Status == entity.InquiryPending {
		if err := uc.inquiries.UpdateStatus(ctx, id, entity.InquiryReviewed); err != nil {
			uc.logger.Warn("Failed to mark inquiry reviewed", zap.String("inquiryID", id.Hex()), zap.Error(err))
		}
	}

	uc.notifier.Send(ctx, author.ID,
		"New Reply Received",
		"New reply received for your inquiry on "+property.Title,
		entity.NotificationSuccess,
		"/dashboard?tab=inquiries")

	return nil
}

func (uc *InquiryUsecase) buildViews(ctx context.Context, inquiries []*entity.Inquiry, properties map[primitive.ObjectID]*entity.Property) ([]*InquiryView, error) {
	if properties == nil {
		propertyIDs := make([]primitive.ObjectID, 0, len(inquiries))
		seen := make(map[primitive.ObjectID]struct{}, len(inquiries))
		for _, inq := range inquiries {
			if _, ok := seen[inq.PropertyID]; !ok {
				seen[inq.PropertyID] = struct{}{}
				propertyIDs = append(propertyIDs, inq.PropertyID)
			}
		}
		found, err := uc.properties.FindByIDs(ctx, propertyIDs)
		if err != nil {
			return nil, err
		}
		properties = make(map[primitive.ObjectID]*entity.Property, len(found))
		for _, p := range found {
			properties[p.ID] = p
		}
	}

	views := make([]*InquiryView, 0, len(inquiries))
	for _, inq := range inquiries {
		view := &InquiryView{Inquiry: inq, Property: properties[inq.PropertyID]}
		if author, err := uc.users.FindByID(ctx, inq.UserID); err == nil {
			view.User = author
		}
		views = append(views, view)
	}
	return views, nil
}

func replyEmailBody(name, propertyTitle, message string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s,\n\n", name)
	fmt.Fprintf(&b, "You have received a reply regarding your inquiry for property: %s.\n\n", propertyTitle)
	b.WriteString("Message from Agent:\n")
	b.WriteString("----------------------------------------\n")
	b.WriteString(message)
	b.WriteString("\n----------------------------------------\n\n")
	b.WriteString("Best regards,\nLuxeEstate Team\n")
	return b.String()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
