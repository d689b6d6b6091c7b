package dto

// SubscribeRequest represents a newsletter subscription submission
type SubscribeRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// UnsubscribeRequest represents a newsletter unsubscribe submission
type UnsubscribeRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// SubscriberListData combines subscriber rows with their counts
type SubscriberListData struct {
	Subscribers interface{} `json:"subscribers"`
	Total       int         `json:"total"`
	Active      int         `json:"active"`
}
