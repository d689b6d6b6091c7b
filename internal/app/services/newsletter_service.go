package services

import (
	"context"

	"github.com/uynm/backend/internal/app/models"
	"github.com/uynm/backend/internal/pkg/apperrors"
	"github.com/uynm/backend/internal/pkg/dberrors"
	"github.com/uynm/backend/internal/pkg/notify"
	"github.com/uynm/backend/internal/pkg/validation"
)

// NewsletterStore is the persistence surface the newsletter service needs
type NewsletterStore interface {
	GetByEmail(ctx context.Context, email string) (*models.NewsletterSubscriber, error)
	Create(ctx context.Context, sub *models.NewsletterSubscriber) error
	Reactivate(ctx context.Context, email string) (bool, error)
	Deactivate(ctx context.Context, email string) error
	GetAll(ctx context.Context) ([]*models.NewsletterSubscriber, error)
}

// NewsletterService handles newsletter subscriptions
type NewsletterService struct {
	newsletterRepo NewsletterStore
	notifier       notify.Notifier
}

// NewNewsletterService creates a new newsletter service instance
func NewNewsletterService(newsletterRepo NewsletterStore, notifier notify.Notifier) *NewsletterService {
	return &NewsletterService{
		newsletterRepo: newsletterRepo,
		notifier:       notifier,
	}
}

// Subscribe activates a subscription for the address. A fresh address gets a
// new row, a lapsed one is reactivated, and an active one is a conflict. The
// reactivated flag tells the caller which of the two success paths ran. The
// email unique constraint breaks ties between concurrent first-time
// subscriptions.
func (s *NewsletterService) Subscribe(ctx context.Context, emailAddr string) (*models.NewsletterSubscriber, bool, error) {
	emailAddr = validation.NormalizeEmail(emailAddr)

	existing, err := s.newsletterRepo.GetByEmail(ctx, emailAddr)
	if err != nil {
		return nil, false, err
	}

	if existing != nil {
		if existing.IsActive {
			return nil, false, apperrors.ErrAlreadySubscribed
		}
		reactivated, err := s.newsletterRepo.Reactivate(ctx, emailAddr)
		if err != nil {
			return nil, false, err
		}
		if !reactivated {
			// Lost a race with another reactivation of the same address.
			return nil, false, apperrors.ErrAlreadySubscribed
		}
		sub, err := s.newsletterRepo.GetByEmail(ctx, emailAddr)
		if err != nil {
			return nil, false, err
		}
		s.notifySubscribed(emailAddr)
		return sub, true, nil
	}

	sub := &models.NewsletterSubscriber{Email: emailAddr}
	if err := s.newsletterRepo.Create(ctx, sub); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "newsletter_subscribers_email_key") {
			return nil, false, apperrors.ErrAlreadySubscribed
		}
		return nil, false, err
	}

	s.notifySubscribed(emailAddr)
	return sub, false, nil
}

func (s *NewsletterService) notifySubscribed(emailAddr string) {
	s.notifier.Notify(notify.KindNewsletter, notify.NewsletterData{Email: emailAddr})
}

// Unsubscribe deactivates a subscription. Unsubscribing an unknown or
// already inactive address succeeds quietly.
func (s *NewsletterService) Unsubscribe(ctx context.Context, emailAddr string) error {
	return s.newsletterRepo.Deactivate(ctx, validation.NormalizeEmail(emailAddr))
}

// ListSubscribers returns all subscriber rows with total and active counts
func (s *NewsletterService) ListSubscribers(ctx context.Context) ([]*models.NewsletterSubscriber, int, int, error) {
	subs, err := s.newsletterRepo.GetAll(ctx)
	if err != nil {
		return nil, 0, 0, err
	}

	active := 0
	for _, sub := range subs {
		if sub.IsActive {
			active++
		}
	}

	return subs, len(subs), active, nil
}
