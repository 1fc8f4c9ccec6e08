package teams

// Error messages returned by the team endpoints.
const (
	ErrInvalidRequest = "Invalid request data"
)

// CreateTeamRequest is the payload for creating a team. Competition and
// Creator must reference existing rows.
type CreateTeamRequest struct {
	Name          string `json:"name" binding:"required"`
	CompetitionID string `json:"competition" binding:"required"`
	CreatorID     string `json:"creator" binding:"required"`
	Score         int    `json:"score"`
}

// UpdateTeamRequest is a partial update; omitted fields keep their value.
type UpdateTeamRequest struct {
	Name          *string `json:"name"`
	CompetitionID *string `json:"competition"`
	CreatorID     *string `json:"creator"`
	Score         *int    `json:"score"`
}
