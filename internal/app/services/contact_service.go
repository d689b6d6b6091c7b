package services

import (
	"context"
	"strings"

	"github.com/uynm/backend/internal/app/models"
	"github.com/uynm/backend/internal/app/models/dto"
	"github.com/uynm/backend/internal/pkg/notify"
)

// ContactStore is the persistence surface the contact service needs
type ContactStore interface {
	Create(ctx context.Context, contact *models.ContactMessage) error
	GetAll(ctx context.Context) ([]*models.ContactMessage, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
}

// ContactService handles contact form submissions
type ContactService struct {
	contactRepo ContactStore
	notifier    notify.Notifier
}

// NewContactService creates a new contact service instance
func NewContactService(contactRepo ContactStore, notifier notify.Notifier) *ContactService {
	return &ContactService{
		contactRepo: contactRepo,
		notifier:    notifier,
	}
}

// Submit persists a contact message and fires the admin notification. The
// notification is queued after the row is committed; its outcome never
// affects the returned result.
func (s *ContactService) Submit(ctx context.Context, req *dto.CreateContactRequest) (*models.ContactMessage, error) {
	contact := &models.ContactMessage{
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Email:     req.Email,
		Subject:   strings.TrimSpace(req.Subject),
		Message:   strings.TrimSpace(req.Message),
		Status:    models.ContactStatusUnread,
	}

	if err := s.contactRepo.Create(ctx, contact); err != nil {
		return nil, err
	}

	s.notifier.Notify(notify.KindContact, notify.ContactData{
		FirstName: contact.FirstName,
		LastName:  contact.LastName,
		Email:     contact.Email,
		Subject:   contact.Subject,
		Message:   contact.Message,
	})

	return contact, nil
}

// List returns all contact messages, newest first
func (s *ContactService) List(ctx context.Context) ([]*models.ContactMessage, error) {
	return s.contactRepo.GetAll(ctx)
}

// UpdateStatus sets the status of a contact message. The status value is
// stored as given; the submission path alone constrains it to the known
// lifecycle states.
func (s *ContactService) UpdateStatus(ctx context.Context, id int64, status string) error {
	return s.contactRepo.UpdateStatus(ctx, id, status)
}
