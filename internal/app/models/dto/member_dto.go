package dto

// RegisterMemberRequest represents a membership registration submission
type RegisterMemberRequest struct {
	FullName         string `json:"fullName" binding:"required,notblank"`
	Email            string `json:"email" binding:"required,email"`
	Phone            string `json:"phone" binding:"required,notblank"`
	InvolvementTrack string `json:"involvementTrack" binding:"required,oneof=volunteer partner member mentor"`
	Location         string `json:"location" binding:"required,notblank"`
	Reason           string `json:"reason"`
}

// MemberRegisteredData is returned after a successful member registration
type MemberRegisteredData struct {
	ID       int64  `json:"id"`
	FullName string `json:"fullName"`
	Track    string `json:"track" example:"mentor"`
}

// MemberStats carries aggregate counts per involvement track
type MemberStats struct {
	Total      int `json:"total"`
	Volunteers int `json:"volunteers"`
	Partners   int `json:"partners"`
	Members    int `json:"members"`
	Mentors    int `json:"mentors"`
}

// MemberListData combines the member rows with their aggregate counts
type MemberListData struct {
	Members interface{} `json:"members"`
	Stats   MemberStats `json:"stats"`
}
