package dto

import "time"

// CreateEventRequest represents an event creation request. EventDate must be
// an RFC 3339 timestamp.
type CreateEventRequest struct {
	Title            string    `json:"title" binding:"required,notblank"`
	Description      string    `json:"description"`
	EventDate        time.Time `json:"eventDate" binding:"required"`
	Location         string    `json:"location" binding:"required,notblank"`
	ImageURL         string    `json:"imageUrl"`
	RegistrationLink string    `json:"registrationLink"`
}

// UpdateEventRequest represents an event update request
type UpdateEventRequest struct {
	Title            string    `json:"title" binding:"required,notblank"`
	Description      string    `json:"description"`
	EventDate        time.Time `json:"eventDate" binding:"required"`
	Location         string    `json:"location" binding:"required,notblank"`
	ImageURL         string    `json:"imageUrl"`
	RegistrationLink string    `json:"registrationLink"`
}

// RegisterForEventRequest represents an event registration submission
type RegisterForEventRequest struct {
	Email    string `json:"email" binding:"required,email"`
	FullName string `json:"fullName" binding:"required,notblank"`
	Phone    string `json:"phone"`
}
