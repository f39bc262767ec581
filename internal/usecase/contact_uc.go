package usecase

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/Mathiyarasan2102/LuxeEstate-RealEstate-Website-Backend/internal/entity"
)

type ContactUsecase struct {
	contacts   ContactRepo
	mail       MailSender
	adminEmail string
	logger     *zap.Logger
}

func NewContactUsecase(contacts ContactRepo, mail MailSender, adminEmail string, logger *zap.Logger) *ContactUsecase {
	return &ContactUsecase{
		contacts:   contacts,
		mail:       mail,
		adminEmail: adminEmail,
		logger:     logger.Named("ContactUsecase"),
	}
}

// Submit stores a public contact-form message and forwards it to the
// support mailbox. The forwarding email is best effort and never fails
// the submission.
func (uc *ContactUsecase) Submit(ctx context.Context, name, email, subject, message string) (*entity.ContactInquiry, error) {
	if name == "" || email == "" || subject == "" || message == "" {
		return nil, ErrAllFieldsRequired
	}

	inquiry, err := uc.contacts.Create(ctx, &entity.ContactInquiry{
		Name:    name,
		Email:   email,
		Subject: subject,
		Message: message,
	})
	if err != nil {
		return nil, err
	}

	if uc.adminEmail != "" {
		body := fmt.Sprintf("New message from %s (%s)\n\nSubject: %s\nMessage:\n%s\n", name, email, subject, message)
		if err := uc.mail.Send(uc.adminEmail, "New Contact Inquiry: "+subject, body); err != nil {
			uc.logger.Error("Failed to forward contact inquiry to support mailbox", zap.String("inquiryID", inquiry.ID.Hex()), zap.Error(err))
		}
	}

	return inquiry, nil
}

func (uc *ContactUsecase) List(ctx context.Context) ([]*entity.ContactInquiry, error) {
	return uc.contacts.List(ctx)
}

func (uc *ContactUsecase) UpdateStatus(ctx context.Context, id primitive.ObjectID, status entity.ContactStatus, response string) (*entity.ContactInquiry, error) {
	return uc.contacts.UpdateStatus(ctx, id, status, response)
}
