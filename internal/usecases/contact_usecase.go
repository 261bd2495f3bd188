package usecases

import (
	"context"
	"fmt"
	"html"

	"go.uber.org/zap"

	"sdp-site.backend/internal/domain/entities"
	"sdp-site.backend/internal/domain/repositories"
	"sdp-site.backend/pkg/logger"
	"sdp-site.backend/pkg/mail"
)

// ContactInboxLimit caps how many messages the admin inbox returns.
const ContactInboxLimit = 50

// ContactUsecase handles contact form submissions and the admin inbox
type ContactUsecase struct {
	contactRepo   repositories.ContactMessageRepository
	mailer        mail.Mailer
	notifyAddress string
}

// NewContactUsecase creates a new contact usecase
func NewContactUsecase(contactRepo repositories.ContactMessageRepository, mailer mail.Mailer, notifyAddress string) *ContactUsecase {
	return &ContactUsecase{
		contactRepo:   contactRepo,
		mailer:        mailer,
		notifyAddress: notifyAddress,
	}
}

// Submit stores a contact form submission and notifies the team inbox.
// Notification failures are logged, never surfaced to the visitor.
func (u *ContactUsecase) Submit(ctx context.Context, input *entities.ContactMessageInput) (*entities.ContactMessage, error) {
	msg := &entities.ContactMessage{
		Name:    input.Name,
		Email:   input.Email,
		Subject: input.Subject,
		Message: input.Message,
		Status:  entities.ContactStatusUnread,
	}

	if err := u.contactRepo.Create(ctx, msg); err != nil {
		return nil, err
	}

	if u.notifyAddress != "" {
		u.notify(ctx, msg)
	}

	return msg, nil
}

// Inbox returns the newest messages, capped at ContactInboxLimit.
func (u *ContactUsecase) Inbox(ctx context.Context) ([]*entities.ContactMessage, error) {
	return u.contactRepo.ListLatest(ctx, ContactInboxLimit)
}

// Delete removes a message from the inbox.
func (u *ContactUsecase) Delete(ctx context.Context, id uint) error {
	return u.contactRepo.Delete(ctx, id)
}

func (u *ContactUsecase) notify(ctx context.Context, msg *entities.ContactMessage) {
	subject := "New contact message: " + msg.Subject
	text := fmt.Sprintf("From: %s <%s>\n\n%s", msg.Name, msg.Email, msg.Message)
	htmlBody := fmt.Sprintf(
		"<p><strong>From:</strong> %s &lt;%s&gt;</p><p>%s</p>",
		html.EscapeString(msg.Name),
		html.EscapeString(msg.Email),
		html.EscapeString(msg.Message),
	)

	if err := u.mailer.Send(ctx, u.notifyAddress, subject, htmlBody, text); err != nil {
		logger.Error(ctx, "contact notification failed", zap.Error(err))
	}
}
