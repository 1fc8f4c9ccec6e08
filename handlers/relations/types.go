package relations

// Error messages returned by the relation endpoints.
const (
	ErrInvalidRequest = "Invalid request data"
)

// UserCompetitionRequest links a user and a competition.
type UserCompetitionRequest struct {
	UserID        string `json:"user_id" binding:"required"`
	CompetitionID string `json:"competition_id" binding:"required"`
}

// UserTeamRequest links a user and a team.
type UserTeamRequest struct {
	UserID string `json:"user_id" binding:"required"`
	TeamID string `json:"team_id" binding:"required"`
}

// TeamCompetitionRequest links a team and a competition.
type TeamCompetitionRequest struct {
	TeamID        string `json:"team_id" binding:"required"`
	CompetitionID string `json:"competition_id" binding:"required"`
}

// ExerciseTagRequest links an exercise and a tag.
type ExerciseTagRequest struct {
	ExerciseID string `json:"exercise_id" binding:"required"`
	TagID      string `json:"tag_id" binding:"required"`
}

// ExerciseCompetitionRequest links an exercise and a competition.
type ExerciseCompetitionRequest struct {
	ExerciseID    string `json:"exercise_id" binding:"required"`
	CompetitionID string `json:"competition_id" binding:"required"`
}

// ContainerCompetitionRequest links a container and a competition.
type ContainerCompetitionRequest struct {
	ContainerID   string `json:"container_id" binding:"required"`
	CompetitionID string `json:"competition_id" binding:"required"`
}
