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

// MemberRepository handles database operations for member profiles
type MemberRepository struct {
	db *pgxpool.Pool
}

// NewMemberRepository creates a new member repository
func NewMemberRepository(db *pgxpool.Pool) *MemberRepository {
	return &MemberRepository{
		db: db,
	}
}

// Create inserts a new member profile. A unique violation on the email
// constraint bubbles up unchanged so the service layer can map it.
func (r *MemberRepository) Create(ctx context.Context, member *models.MemberProfile) error {
	query := `
		INSERT INTO profiles (full_name, email, phone, location, involvement_track, reason)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	return r.db.QueryRow(ctx, query,
		member.FullName,
		member.Email,
		member.Phone,
		member.Location,
		member.InvolvementTrack,
		member.Reason,
	).Scan(&member.ID, &member.CreatedAt)
}

// GetAll retrieves member profiles, newest first. A non-empty track limits
// the result to that involvement track.
func (r *MemberRepository) GetAll(ctx context.Context, track models.InvolvementTrack) ([]*models.MemberProfile, error) {
	query := `
		SELECT id, full_name, email, phone, location, involvement_track, reason, created_at
		FROM profiles
	`
	var args []interface{}
	if track != "" {
		query += ` WHERE involvement_track = $1`
		args = append(args, track)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []*models.MemberProfile
	for rows.Next() {
		var member models.MemberProfile
		if err := rows.Scan(
			&member.ID,
			&member.FullName,
			&member.Email,
			&member.Phone,
			&member.Location,
			&member.InvolvementTrack,
			&member.Reason,
			&member.CreatedAt,
		); err != nil {
			return nil, err
		}
		members = append(members, &member)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return members, nil
}

// GetByID retrieves a member profile by ID
func (r *MemberRepository) GetByID(ctx context.Context, id int64) (*models.MemberProfile, error) {
	query := `
		SELECT id, full_name, email, phone, location, involvement_track, reason, created_at
		FROM profiles
		WHERE id = $1
	`

	var member models.MemberProfile
	err := r.db.QueryRow(ctx, query, id).Scan(
		&member.ID,
		&member.FullName,
		&member.Email,
		&member.Phone,
		&member.Location,
		&member.InvolvementTrack,
		&member.Reason,
		&member.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMemberNotFound
		}
		return nil, fmt.Errorf("error retrieving member: %w", err)
	}

	return &member, nil
}

// CountByTrack returns the number of profiles per involvement track
func (r *MemberRepository) CountByTrack(ctx context.Context) (map[models.InvolvementTrack]int, error) {
	query := `
		SELECT involvement_track, COUNT(*)
		FROM profiles
		GROUP BY involvement_track
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[models.InvolvementTrack]int)
	for rows.Next() {
		var track models.InvolvementTrack
		var count int
		if err := rows.Scan(&track, &count); err != nil {
			return nil, err
		}
		counts[track] = count
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}
