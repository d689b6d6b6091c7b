package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uynm/backend/internal/app/models"
	"github.com/uynm/backend/internal/pkg/apperrors"
	"github.com/uynm/backend/internal/pkg/notify"
)

type fakeNewsletterStore struct {
	rows map[string]*models.NewsletterSubscriber
}

func newFakeNewsletterStore() *fakeNewsletterStore {
	return &fakeNewsletterStore{rows: make(map[string]*models.NewsletterSubscriber)}
}

func (f *fakeNewsletterStore) GetByEmail(_ context.Context, email string) (*models.NewsletterSubscriber, error) {
	if sub, ok := f.rows[email]; ok {
		copied := *sub
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeNewsletterStore) Create(_ context.Context, sub *models.NewsletterSubscriber) error {
	sub.ID = int64(len(f.rows) + 1)
	sub.IsActive = true
	sub.SubscribedAt = time.Now()
	copied := *sub
	f.rows[sub.Email] = &copied
	return nil
}

func (f *fakeNewsletterStore) Reactivate(_ context.Context, email string) (bool, error) {
	sub, ok := f.rows[email]
	if !ok || sub.IsActive {
		return false, nil
	}
	sub.IsActive = true
	sub.SubscribedAt = time.Now()
	return true, nil
}

func (f *fakeNewsletterStore) Deactivate(_ context.Context, email string) error {
	if sub, ok := f.rows[email]; ok {
		sub.IsActive = false
	}
	return nil
}

func (f *fakeNewsletterStore) GetAll(_ context.Context) ([]*models.NewsletterSubscriber, error) {
	var subs []*models.NewsletterSubscriber
	for _, sub := range f.rows {
		subs = append(subs, sub)
	}
	return subs, nil
}

type nopNotifier struct{ count int }

func (n *nopNotifier) Notify(notify.Kind, interface{}) { n.count++ }

func TestSubscribeNewAddress(t *testing.T) {
	store := newFakeNewsletterStore()
	notifier := &nopNotifier{}
	svc := NewNewsletterService(store, notifier)

	sub, reactivated, err := svc.Subscribe(context.Background(), "Reader@Example.com")
	require.NoError(t, err)
	assert.True(t, sub.IsActive)
	assert.False(t, reactivated)
	assert.Equal(t, "reader@example.com", sub.Email)
	assert.Equal(t, 1, notifier.count)
}

func TestSubscribeActiveAddressConflicts(t *testing.T) {
	store := newFakeNewsletterStore()
	svc := NewNewsletterService(store, &nopNotifier{})

	_, _, err := svc.Subscribe(context.Background(), "reader@example.com")
	require.NoError(t, err)

	_, _, err = svc.Subscribe(context.Background(), "reader@example.com")
	assert.ErrorIs(t, err, apperrors.ErrAlreadySubscribed)
}

func TestSubscribeReactivatesLapsedAddress(t *testing.T) {
	store := newFakeNewsletterStore()
	svc := NewNewsletterService(store, &nopNotifier{})

	_, _, err := svc.Subscribe(context.Background(), "reader@example.com")
	require.NoError(t, err)
	require.NoError(t, svc.Unsubscribe(context.Background(), "reader@example.com"))

	sub, reactivated, err := svc.Subscribe(context.Background(), "reader@example.com")
	require.NoError(t, err)
	assert.True(t, sub.IsActive)
	assert.True(t, reactivated)
}

func TestUnsubscribeIsIdempotent(t *testing.T) {
	store := newFakeNewsletterStore()
	svc := NewNewsletterService(store, &nopNotifier{})

	// Unknown address and repeated unsubscribes both succeed quietly.
	require.NoError(t, svc.Unsubscribe(context.Background(), "nobody@example.com"))

	_, _, err := svc.Subscribe(context.Background(), "reader@example.com")
	require.NoError(t, err)
	require.NoError(t, svc.Unsubscribe(context.Background(), "reader@example.com"))
	require.NoError(t, svc.Unsubscribe(context.Background(), "reader@example.com"))
}

func TestListSubscribersCounts(t *testing.T) {
	store := newFakeNewsletterStore()
	svc := NewNewsletterService(store, &nopNotifier{})

	_, _, err := svc.Subscribe(context.Background(), "a@example.com")
	require.NoError(t, err)
	_, _, err = svc.Subscribe(context.Background(), "b@example.com")
	require.NoError(t, err)
	require.NoError(t, svc.Unsubscribe(context.Background(), "b@example.com"))

	_, total, active, err := svc.ListSubscribers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Equal(t, 1, active)
}
