package dto

// CreateContactRequest represents a contact form submission
type CreateContactRequest struct {
	FirstName string `json:"firstName" binding:"required,notblank"`
	LastName  string `json:"lastName" binding:"required,notblank"`
	Email     string `json:"email" binding:"required,email"`
	Subject   string `json:"subject" binding:"required,notblank"`
	Message   string `json:"message" binding:"required,trimmin=10"`
}

// UpdateContactStatusRequest mutates a contact message's status. The status
// value is accepted as-is; the create path defaults to "unread" but no
// enumeration is enforced here (known gap carried over from the original
// behavior).
type UpdateContactStatusRequest struct {
	Status string `json:"status" binding:"required,notblank"`
}

// ContactCreatedData is returned after a successful contact submission
type ContactCreatedData struct {
	ID     int64  `json:"id"`
	Status string `json:"status" example:"unread"`
}
