package models

import "time"

// InvolvementTrack defines the engagement category a member registers under
type InvolvementTrack string

const (
	TrackVolunteer InvolvementTrack = "volunteer"
	TrackPartner   InvolvementTrack = "partner"
	TrackMember    InvolvementTrack = "member"
	TrackMentor    InvolvementTrack = "mentor"
)

// AllTracks lists every valid involvement track in a stable order
var AllTracks = []InvolvementTrack{TrackVolunteer, TrackPartner, TrackMember, TrackMentor}

// IsValid reports whether the track is one of the known values
func (t InvolvementTrack) IsValid() bool {
	switch t {
	case TrackVolunteer, TrackPartner, TrackMember, TrackMentor:
		return true
	}
	return false
}

// MemberProfile defines a member registration based on the 'profiles' table.
// Email is globally unique among profiles.
type MemberProfile struct {
	ID               int64            `json:"id" db:"id" example:"1"`
	FullName         string           `json:"fullName" db:"full_name" example:"Ada Lovelace"`
	Email            string           `json:"email" db:"email" example:"ada@example.com"`
	Phone            string           `json:"phone" db:"phone" example:"0800"`
	Location         string           `json:"location" db:"location" example:"Lagos"`
	InvolvementTrack InvolvementTrack `json:"involvementTrack" db:"involvement_track" example:"mentor"`
	Reason           string           `json:"reason,omitempty" db:"reason"`
	CreatedAt        time.Time        `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"`
}
