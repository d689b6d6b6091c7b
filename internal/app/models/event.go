package models

import "time"

// Event defines an organization event based on the 'events' table
type Event struct {
	ID               int64     `json:"id" db:"id" example:"1"`
	Title            string    `json:"title" db:"title" example:"Youth Summit 2024"`
	Description      string    `json:"description,omitempty" db:"description"`
	EventDate        time.Time `json:"eventDate" db:"event_date" example:"2024-06-15T09:00:00Z"`
	Location         string    `json:"location" db:"location" example:"Abuja"`
	ImageURL         string    `json:"imageUrl,omitempty" db:"image_url"`
	RegistrationLink string    `json:"registrationLink,omitempty" db:"registration_link"`
	CreatedAt        time.Time `json:"createdAt" db:"created_at"`
}

// EventRegistration defines a registration for an event based on the
// 'event_registrations' table. The (event_id, email) pair is unique.
type EventRegistration struct {
	ID        int64     `json:"id" db:"id" example:"1"`
	EventID   int64     `json:"eventId" db:"event_id" example:"1"`
	Email     string    `json:"email" db:"email" example:"ada@example.com"`
	FullName  string    `json:"fullName" db:"full_name" example:"Ada Lovelace"`
	Phone     string    `json:"phone,omitempty" db:"phone"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
