package models

// Relation rows link two entities and may exist at most once per pair.
// Each uses a composite primary key, so the database rejects a duplicate
// pair even if two requests pass the application-level check concurrently.

// UserCompetition enrolls a user in a competition.
type UserCompetition struct {
	UserID        string `gorm:"type:uuid;primaryKey;column:user_id" json:"user_id"`
	CompetitionID string `gorm:"type:uuid;primaryKey;column:competition_id" json:"competition_id"`
}

// UserTeam places a user on a team.
type UserTeam struct {
	UserID string `gorm:"type:uuid;primaryKey;column:user_id" json:"user_id"`
	TeamID string `gorm:"type:uuid;primaryKey;column:team_id" json:"team_id"`
}

// TeamCompetition enrolls a team in a competition.
type TeamCompetition struct {
	TeamID        string `gorm:"type:uuid;primaryKey;column:team_id" json:"team_id"`
	CompetitionID string `gorm:"type:uuid;primaryKey;column:competition_id" json:"competition_id"`
}

// ExerciseTag labels an exercise with a tag.
type ExerciseTag struct {
	ExerciseID string `gorm:"type:uuid;primaryKey;column:exercise_id" json:"exercise_id"`
	TagID      string `gorm:"type:uuid;primaryKey;column:tag_id" json:"tag_id"`
}

// ExerciseCompetition attaches an exercise to a competition.
type ExerciseCompetition struct {
	ExerciseID    string `gorm:"type:uuid;primaryKey;column:exercise_id" json:"exercise_id"`
	CompetitionID string `gorm:"type:uuid;primaryKey;column:competition_id" json:"competition_id"`
}

// ContainerCompetition attaches a container to a competition.
type ContainerCompetition struct {
	ContainerID   string `gorm:"type:uuid;primaryKey;column:container_id" json:"container_id"`
	CompetitionID string `gorm:"type:uuid;primaryKey;column:competition_id" json:"competition_id"`
}
