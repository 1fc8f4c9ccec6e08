package competitions

import "time"

// Error messages returned by the competition endpoints.
const (
	ErrInvalidRequest = "Invalid request data"
)

// CreateCompetitionRequest is the payload for creating a competition.
// InviteCode is optional; a unique one is generated when omitted.
type CreateCompetitionRequest struct {
	Name       string    `json:"name" binding:"required"`
	Organizer  string    `json:"organizer" binding:"required"`
	InviteCode string    `json:"invite_code"`
	StartDate  time.Time `json:"start_date" binding:"required"`
	EndDate    time.Time `json:"end_date" binding:"required"`
}

// UpdateCompetitionRequest is a partial update; omitted fields keep their
// value.
type UpdateCompetitionRequest struct {
	Name       *string    `json:"name"`
	Organizer  *string    `json:"organizer"`
	InviteCode *string    `json:"invite_code"`
	StartDate  *time.Time `json:"start_date"`
	EndDate    *time.Time `json:"end_date"`
}
