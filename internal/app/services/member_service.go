package services

import (
	"context"
	"strings"

	"github.com/uynm/backend/internal/app/models"
	"github.com/uynm/backend/internal/app/models/dto"
	"github.com/uynm/backend/internal/pkg/apperrors"
	"github.com/uynm/backend/internal/pkg/dberrors"
	"github.com/uynm/backend/internal/pkg/notify"
	"github.com/uynm/backend/internal/pkg/validation"
)

// MemberStore is the persistence surface the member service needs
type MemberStore interface {
	Create(ctx context.Context, member *models.MemberProfile) error
	GetAll(ctx context.Context, track models.InvolvementTrack) ([]*models.MemberProfile, error)
	GetByID(ctx context.Context, id int64) (*models.MemberProfile, error)
	CountByTrack(ctx context.Context) (map[models.InvolvementTrack]int, error)
}

// MemberService handles membership registrations
type MemberService struct {
	memberRepo MemberStore
	notifier   notify.Notifier
}

// NewMemberService creates a new member service instance
func NewMemberService(memberRepo MemberStore, notifier notify.Notifier) *MemberService {
	return &MemberService{
		memberRepo: memberRepo,
		notifier:   notifier,
	}
}

// Register persists a member profile and fires the admin notification.
// Duplicate emails surface as a conflict from the store's unique constraint,
// so concurrent identical submissions cannot both succeed.
func (s *MemberService) Register(ctx context.Context, req *dto.RegisterMemberRequest) (*models.MemberProfile, error) {
	member := &models.MemberProfile{
		FullName:         strings.TrimSpace(req.FullName),
		Email:            validation.NormalizeEmail(req.Email),
		Phone:            strings.TrimSpace(req.Phone),
		Location:         strings.TrimSpace(req.Location),
		InvolvementTrack: models.InvolvementTrack(req.InvolvementTrack),
		Reason:           strings.TrimSpace(req.Reason),
	}

	if err := s.memberRepo.Create(ctx, member); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "profiles_email_key") {
			return nil, apperrors.ErrMemberEmailExists
		}
		return nil, err
	}

	s.notifier.Notify(notify.KindMember, notify.MemberData{
		FullName:         member.FullName,
		Email:            member.Email,
		Phone:            member.Phone,
		Location:         member.Location,
		InvolvementTrack: string(member.InvolvementTrack),
		Reason:           member.Reason,
	})

	return member, nil
}

// List returns member profiles together with per-track counts. A non-empty
// track filters the rows; the counts always cover the whole table.
func (s *MemberService) List(ctx context.Context, track models.InvolvementTrack) ([]*models.MemberProfile, dto.MemberStats, error) {
	if track != "" && !track.IsValid() {
		return nil, dto.MemberStats{}, apperrors.NewBadRequestError("unknown involvement track: " + string(track))
	}

	members, err := s.memberRepo.GetAll(ctx, track)
	if err != nil {
		return nil, dto.MemberStats{}, err
	}

	counts, err := s.memberRepo.CountByTrack(ctx)
	if err != nil {
		return nil, dto.MemberStats{}, err
	}

	total := 0
	for _, count := range counts {
		total += count
	}

	stats := dto.MemberStats{
		Total:      total,
		Volunteers: counts[models.TrackVolunteer],
		Partners:   counts[models.TrackPartner],
		Members:    counts[models.TrackMember],
		Mentors:    counts[models.TrackMentor],
	}

	return members, stats, nil
}

// Get returns a single member profile
func (s *MemberService) Get(ctx context.Context, id int64) (*models.MemberProfile, error) {
	return s.memberRepo.GetByID(ctx, id)
}
