package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/pixelforge/agency-api/internal/core/domain"
	"github.com/pixelforge/agency-api/internal/core/ports"
)

// ContactService implements public lead capture and the admin inbox.
type ContactService struct {
	contacts ports.ContactRepository
	notifier ports.Notifier
	log      zerolog.Logger
}

func NewContactService(contacts ports.ContactRepository, notifier ports.Notifier, log zerolog.Logger) *ContactService {
	return &ContactService{contacts: contacts, notifier: notifier, log: log}
}

func (s *ContactService) Submit(ctx context.Context, input ports.SubmitContactInput) (*domain.Contact, error) {
	contact, err := s.contacts.Create(ctx, &domain.Contact{
		Name:      input.Name,
		Email:     input.Email,
		Company:   input.Company,
		Service:   input.Service,
		Message:   input.Message,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	s.notifier.NotifyAdmins(ctx,
		"New contact message",
		fmt.Sprintf("%s (%s) sent a message.", contact.Name, contact.Email),
		domain.NotificationInfo,
		"/admin/contacts",
	)
	s.log.Info().Str("contact_id", contact.ID).Msg("contact submitted")
	return contact, nil
}

func (s *ContactService) List(ctx context.Context) ([]*domain.Contact, error) {
	return s.contacts.ListAll(ctx)
}

func (s *ContactService) MarkRead(ctx context.Context, id string) error {
	return s.contacts.MarkRead(ctx, id)
}
