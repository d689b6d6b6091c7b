package models

import "time"

// NewsletterSubscriber defines a row in the 'newsletter_subscribers' table.
// At most one row exists per email; unsubscribing flips IsActive instead of
// deleting the row.
type NewsletterSubscriber struct {
	ID           int64     `json:"id" db:"id" example:"1"`
	Email        string    `json:"email" db:"email" example:"reader@example.com"`
	IsActive     bool      `json:"isActive" db:"is_active" example:"true"`
	SubscribedAt time.Time `json:"subscribedAt" db:"subscribed_at" example:"2024-01-01T10:00:00Z"`
}
