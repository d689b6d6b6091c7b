package services

import (
	"context"
	"strings"

	"github.com/uynm/backend/internal/app/models"
	"github.com/uynm/backend/internal/app/models/dto"
	"github.com/uynm/backend/internal/pkg/apperrors"
	"github.com/uynm/backend/internal/pkg/dberrors"
	"github.com/uynm/backend/internal/pkg/validation"
)

// EventStore is the persistence surface the event service needs
type EventStore interface {
	Create(ctx context.Context, event *models.Event) error
	GetAll(ctx context.Context, upcomingOnly bool) ([]*models.Event, error)
	GetByID(ctx context.Context, id int64) (*models.Event, error)
	Update(ctx context.Context, event *models.Event) error
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
	CreateRegistration(ctx context.Context, reg *models.EventRegistration) error
	GetRegistrations(ctx context.Context, eventID int64) ([]*models.EventRegistration, error)
}

// EventService handles events and event registrations
type EventService struct {
	eventRepo EventStore
}

// NewEventService creates a new event service instance
func NewEventService(eventRepo EventStore) *EventService {
	return &EventService{
		eventRepo: eventRepo,
	}
}

// Create stores a new event
func (s *EventService) Create(ctx context.Context, req *dto.CreateEventRequest) (*models.Event, error) {
	event := &models.Event{
		Title:            req.Title,
		Description:      req.Description,
		EventDate:        req.EventDate,
		Location:         req.Location,
		ImageURL:         req.ImageURL,
		RegistrationLink: req.RegistrationLink,
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}

	return event, nil
}

// List returns events ordered by date, optionally limited to upcoming ones
func (s *EventService) List(ctx context.Context, upcomingOnly bool) ([]*models.Event, error) {
	return s.eventRepo.GetAll(ctx, upcomingOnly)
}

// Get returns a single event
func (s *EventService) Get(ctx context.Context, id int64) (*models.Event, error) {
	return s.eventRepo.GetByID(ctx, id)
}

// Update replaces an event's fields
func (s *EventService) Update(ctx context.Context, id int64, req *dto.UpdateEventRequest) (*models.Event, error) {
	event := &models.Event{
		ID:               id,
		Title:            req.Title,
		Description:      req.Description,
		EventDate:        req.EventDate,
		Location:         req.Location,
		ImageURL:         req.ImageURL,
		RegistrationLink: req.RegistrationLink,
	}

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, err
	}

	return s.eventRepo.GetByID(ctx, id)
}

// Delete removes an event and its registrations
func (s *EventService) Delete(ctx context.Context, id int64) error {
	return s.eventRepo.Delete(ctx, id)
}

// Register records an attendee for an event and returns the registration
// along with the event itself. An unknown event is not found; a repeated
// (event, email) pair surfaces as a conflict from the store's unique
// constraint.
func (s *EventService) Register(ctx context.Context, eventID int64, req *dto.RegisterForEventRequest) (*models.EventRegistration, *models.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, nil, err
	}

	reg := &models.EventRegistration{
		EventID:  eventID,
		Email:    validation.NormalizeEmail(req.Email),
		FullName: strings.TrimSpace(req.FullName),
		Phone:    strings.TrimSpace(req.Phone),
	}

	if err := s.eventRepo.CreateRegistration(ctx, reg); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "event_registrations_event_id_email_key") {
			return nil, nil, apperrors.ErrAlreadyRegistered
		}
		// The event may have been deleted between the lookup and the insert.
		if dberrors.IsForeignKeyViolation(err) {
			return nil, nil, apperrors.ErrEventNotFound
		}
		return nil, nil, err
	}

	return reg, event, nil
}

// ListRegistrations returns the registrations for an event
func (s *EventService) ListRegistrations(ctx context.Context, eventID int64) ([]*models.EventRegistration, error) {
	exists, err := s.eventRepo.Exists(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.ErrEventNotFound
	}

	return s.eventRepo.GetRegistrations(ctx, eventID)
}
