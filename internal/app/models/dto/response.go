package dto

import "time"

// APIResponse is the uniform envelope returned by every endpoint
type APIResponse struct {
	Success   bool          `json:"success" example:"true"`
	Message   string        `json:"message,omitempty" example:"Operation completed successfully"`
	Data      interface{}   `json:"data,omitempty"`
	Error     *ErrorDetail  `json:"error,omitempty"`
	Errors    []ErrorDetail `json:"errors,omitempty"`
	Timestamp time.Time     `json:"timestamp" example:"2025-04-23T12:01:05.123Z"`
}

// NewSuccessResponse creates a success envelope with data and a message
func NewSuccessResponse(data interface{}, message string) APIResponse {
	return APIResponse{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now(),
	}
}

// NewMessageResponse creates a success envelope carrying only a message
func NewMessageResponse(message string) APIResponse {
	return APIResponse{
		Success:   true,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// NewErrorResponse creates an error envelope with a single error detail
func NewErrorResponse(errorDetail *ErrorDetail) APIResponse {
	return APIResponse{
		Success:   false,
		Message:   errorDetail.Message,
		Error:     errorDetail,
		Timestamp: time.Now(),
	}
}

// NewValidationErrorResponse creates an error envelope carrying the full
// ordered list of field-level violations
func NewValidationErrorResponse(details []ErrorDetail) APIResponse {
	return APIResponse{
		Success:   false,
		Message:   "Validation failed",
		Errors:    details,
		Timestamp: time.Now(),
	}
}
