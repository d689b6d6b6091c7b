package models

import "time"

// ContactStatus defines the lifecycle state of a contact message
type ContactStatus string

const (
	ContactStatusUnread   ContactStatus = "unread"
	ContactStatusRead     ContactStatus = "read"
	ContactStatusArchived ContactStatus = "archived"
)

// ContactMessage defines a contact form submission based on the 'contacts' table
type ContactMessage struct {
	ID        int64         `json:"id" db:"id" example:"1"`
	FirstName string        `json:"firstName" db:"first_name" example:"Ada"`
	LastName  string        `json:"lastName" db:"last_name" example:"Lovelace"`
	Email     string        `json:"email" db:"email" example:"ada@example.com"`
	Subject   string        `json:"subject" db:"subject" example:"Volunteering"`
	Message   string        `json:"message" db:"message"`
	Status    ContactStatus `json:"status" db:"status" example:"unread"`
	CreatedAt time.Time     `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"`
}
