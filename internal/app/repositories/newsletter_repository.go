package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/uynm/backend/internal/app/models"
)

// NewsletterRepository handles database operations for newsletter subscribers
type NewsletterRepository struct {
	db *pgxpool.Pool
}

// NewNewsletterRepository creates a new newsletter repository
func NewNewsletterRepository(db *pgxpool.Pool) *NewsletterRepository {
	return &NewsletterRepository{
		db: db,
	}
}

// GetByEmail retrieves a subscriber row by email. Returns (nil, nil) when no
// row exists for the address.
func (r *NewsletterRepository) GetByEmail(ctx context.Context, email string) (*models.NewsletterSubscriber, error) {
	query := `
		SELECT id, email, is_active, subscribed_at
		FROM newsletter_subscribers
		WHERE email = $1
	`

	var sub models.NewsletterSubscriber
	err := r.db.QueryRow(ctx, query, email).Scan(
		&sub.ID,
		&sub.Email,
		&sub.IsActive,
		&sub.SubscribedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving subscriber: %w", err)
	}

	return &sub, nil
}

// Create inserts a new subscriber row. A unique violation on the email
// constraint bubbles up unchanged so the service layer can map it.
func (r *NewsletterRepository) Create(ctx context.Context, sub *models.NewsletterSubscriber) error {
	query := `
		INSERT INTO newsletter_subscribers (email, is_active)
		VALUES ($1, TRUE)
		RETURNING id, is_active, subscribed_at
	`

	return r.db.QueryRow(ctx, query, sub.Email).Scan(&sub.ID, &sub.IsActive, &sub.SubscribedAt)
}

// Reactivate flips an inactive subscription back on and refreshes its
// timestamp. Reports whether a row was actually updated.
func (r *NewsletterRepository) Reactivate(ctx context.Context, email string) (bool, error) {
	query := `
		UPDATE newsletter_subscribers
		SET is_active = TRUE, subscribed_at = CURRENT_TIMESTAMP
		WHERE email = $1 AND is_active = FALSE
	`

	tag, err := r.db.Exec(ctx, query, email)
	if err != nil {
		return false, fmt.Errorf("error reactivating subscription: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// Deactivate turns a subscription off. The operation is idempotent; it
// succeeds whether or not a matching active row exists.
func (r *NewsletterRepository) Deactivate(ctx context.Context, email string) error {
	query := `
		UPDATE newsletter_subscribers
		SET is_active = FALSE
		WHERE email = $1
	`

	if _, err := r.db.Exec(ctx, query, email); err != nil {
		return fmt.Errorf("error deactivating subscription: %w", err)
	}

	return nil
}

// GetAll retrieves all subscriber rows, newest first
func (r *NewsletterRepository) GetAll(ctx context.Context) ([]*models.NewsletterSubscriber, error) {
	query := `
		SELECT id, email, is_active, subscribed_at
		FROM newsletter_subscribers
		ORDER BY subscribed_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []*models.NewsletterSubscriber
	for rows.Next() {
		var sub models.NewsletterSubscriber
		if err := rows.Scan(&sub.ID, &sub.Email, &sub.IsActive, &sub.SubscribedAt); err != nil {
			return nil, err
		}
		subs = append(subs, &sub)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return subs, nil
}
