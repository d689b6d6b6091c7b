package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/uynm/backend/internal/app/models"
	"github.com/uynm/backend/internal/pkg/apperrors"
)

// ContactRepository handles database operations for contact messages
type ContactRepository struct {
	db *pgxpool.Pool
}

// NewContactRepository creates a new contact repository
func NewContactRepository(db *pgxpool.Pool) *ContactRepository {
	return &ContactRepository{
		db: db,
	}
}

// Create inserts a new contact message and fills in its generated fields
func (r *ContactRepository) Create(ctx context.Context, contact *models.ContactMessage) error {
	query := `
		INSERT INTO contacts (first_name, last_name, email, subject, message, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		contact.FirstName,
		contact.LastName,
		contact.Email,
		contact.Subject,
		contact.Message,
		contact.Status,
	).Scan(&contact.ID, &contact.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating contact message: %w", err)
	}

	return nil
}

// GetAll retrieves all contact messages, newest first
func (r *ContactRepository) GetAll(ctx context.Context) ([]*models.ContactMessage, error) {
	query := `
		SELECT id, first_name, last_name, email, subject, message, status, created_at
		FROM contacts
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contacts []*models.ContactMessage
	for rows.Next() {
		var contact models.ContactMessage
		if err := rows.Scan(
			&contact.ID,
			&contact.FirstName,
			&contact.LastName,
			&contact.Email,
			&contact.Subject,
			&contact.Message,
			&contact.Status,
			&contact.CreatedAt,
		); err != nil {
			return nil, err
		}
		contacts = append(contacts, &contact)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return contacts, nil
}

// GetByID retrieves a contact message by ID
func (r *ContactRepository) GetByID(ctx context.Context, id int64) (*models.ContactMessage, error) {
	query := `
		SELECT id, first_name, last_name, email, subject, message, status, created_at
		FROM contacts
		WHERE id = $1
	`

	var contact models.ContactMessage
	err := r.db.QueryRow(ctx, query, id).Scan(
		&contact.ID,
		&contact.FirstName,
		&contact.LastName,
		&contact.Email,
		&contact.Subject,
		&contact.Message,
		&contact.Status,
		&contact.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrContactNotFound
		}
		return nil, fmt.Errorf("error retrieving contact message: %w", err)
	}

	return &contact, nil
}

// UpdateStatus sets the status of a contact message
func (r *ContactRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	query := `
		UPDATE contacts
		SET status = $1
		WHERE id = $2
	`

	tag, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("error updating contact status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrContactNotFound
	}

	return nil
}
