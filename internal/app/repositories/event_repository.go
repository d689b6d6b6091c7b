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

// EventRepository handles database operations for events and registrations
type EventRepository struct {
	db *pgxpool.Pool
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{
		db: db,
	}
}

// Create inserts a new event and fills in its generated fields
func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	query := `
		INSERT INTO events (title, description, event_date, location, image_url, registration_link)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		event.Title,
		event.Description,
		event.EventDate,
		event.Location,
		event.ImageURL,
		event.RegistrationLink,
	).Scan(&event.ID, &event.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating event: %w", err)
	}

	return nil
}

// GetAll retrieves events ordered by date. When upcomingOnly is set, events
// whose date has already passed are excluded.
func (r *EventRepository) GetAll(ctx context.Context, upcomingOnly bool) ([]*models.Event, error) {
	query := `
		SELECT id, title, description, event_date, location, image_url, registration_link, created_at
		FROM events
	`
	if upcomingOnly {
		query += ` WHERE event_date >= CURRENT_TIMESTAMP`
	}
	query += ` ORDER BY event_date ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*models.Event
	for rows.Next() {
		var event models.Event
		if err := rows.Scan(
			&event.ID,
			&event.Title,
			&event.Description,
			&event.EventDate,
			&event.Location,
			&event.ImageURL,
			&event.RegistrationLink,
			&event.CreatedAt,
		); err != nil {
			return nil, err
		}
		events = append(events, &event)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

// GetByID retrieves an event by ID
func (r *EventRepository) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	query := `
		SELECT id, title, description, event_date, location, image_url, registration_link, created_at
		FROM events
		WHERE id = $1
	`

	var event models.Event
	err := r.db.QueryRow(ctx, query, id).Scan(
		&event.ID,
		&event.Title,
		&event.Description,
		&event.EventDate,
		&event.Location,
		&event.ImageURL,
		&event.RegistrationLink,
		&event.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("error retrieving event: %w", err)
	}

	return &event, nil
}

// Update replaces the mutable fields of an event
func (r *EventRepository) Update(ctx context.Context, event *models.Event) error {
	query := `
		UPDATE events
		SET title = $1, description = $2, event_date = $3, location = $4, image_url = $5, registration_link = $6
		WHERE id = $7
	`

	tag, err := r.db.Exec(ctx, query,
		event.Title,
		event.Description,
		event.EventDate,
		event.Location,
		event.ImageURL,
		event.RegistrationLink,
		event.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}

	return nil
}

// Delete removes an event. Registrations cascade with it.
func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}

	return nil
}

// Exists reports whether an event with the given ID exists
func (r *EventRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM events WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking event existence: %w", err)
	}
	return exists, nil
}

// CreateRegistration inserts an event registration. Unique and foreign key
// violations bubble up unchanged so the service layer can map them.
func (r *EventRepository) CreateRegistration(ctx context.Context, reg *models.EventRegistration) error {
	query := `
		INSERT INTO event_registrations (event_id, email, full_name, phone)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	return r.db.QueryRow(ctx, query,
		reg.EventID,
		reg.Email,
		reg.FullName,
		reg.Phone,
	).Scan(&reg.ID, &reg.CreatedAt)
}

// GetRegistrations retrieves all registrations for an event, newest first
func (r *EventRepository) GetRegistrations(ctx context.Context, eventID int64) ([]*models.EventRegistration, error) {
	query := `
		SELECT id, event_id, email, full_name, phone, created_at
		FROM event_registrations
		WHERE event_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var regs []*models.EventRegistration
	for rows.Next() {
		var reg models.EventRegistration
		if err := rows.Scan(
			&reg.ID,
			&reg.EventID,
			&reg.Email,
			&reg.FullName,
			&reg.Phone,
			&reg.CreatedAt,
		); err != nil {
			return nil, err
		}
		regs = append(regs, &reg)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return regs, nil
}
