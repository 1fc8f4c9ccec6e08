package services

import (
	"time"

	"lycosidae/errs"
	"lycosidae/metrics"
	"lycosidae/models"

	"gorm.io/gorm"
)

// CreateTeamInput carries the fields accepted at creation. Both references
// must point at existing rows.
type CreateTeamInput struct {
	Name          string
	CompetitionID string
	CreatorID     string
	Score         int
}

// UpdateTeamInput carries a partial update; nil fields are left untouched.
type UpdateTeamInput struct {
	Name          *string
	CompetitionID *string
	CreatorID     *string
	Score         *int
}

// CreateTeam validates the referenced competition and creator and inserts a
// new team.
func CreateTeam(db *gorm.DB, in CreateTeamInput) (*models.Team, error) {
	if in.Name == "" {
		return nil, errs.InvalidField("name is required")
	}
	if in.CompetitionID == "" || in.CreatorID == "" {
		return nil, errs.InvalidField("competition and creator are required")
	}
	if in.Score < 0 {
		return nil, errs.InvalidField("score must not be negative")
	}

	ok, err := entityExists(db, &models.Competition{}, in.CompetitionID)
	if err != nil {
		return nil, dbError("teams.create", err, "competition_id", in.CompetitionID)
	}
	if !ok {
		return nil, errs.MissingReference("competition not found")
	}
	ok, err = entityExists(db, &models.User{}, in.CreatorID)
	if err != nil {
		return nil, dbError("teams.create", err, "creator_id", in.CreatorID)
	}
	if !ok {
		return nil, errs.MissingReference("creator not found")
	}

	team := &models.Team{
		Name:          in.Name,
		CompetitionID: in.CompetitionID,
		CreatorID:     in.CreatorID,
		Score:         in.Score,
	}
	defer metrics.RecordDBOperation("create", "teams", time.Now())
	if err := db.Create(team).Error; err != nil {
		return nil, dbError("teams.create", err, "name", in.Name)
	}
	return team, nil
}

// GetTeam looks up a team by id.
func GetTeam(db *gorm.DB, id string) (*models.Team, error) {
	var team models.Team
	if err := db.Where("id = ?", id).First(&team).Error; err != nil {
		if isNotFound(err) {
			return nil, errs.NotFound("team not found")
		}
		return nil, dbError("teams.get", err, "id", id)
	}
	return &team, nil
}

// UpdateTeam applies a partial update. Changed references are re-checked
// before the write.
func UpdateTeam(db *gorm.DB, id string, in UpdateTeamInput) (*models.Team, error) {
	team, err := GetTeam(db, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, errs.InvalidField("name must not be empty")
		}
		updates["name"] = *in.Name
	}
	if in.CompetitionID != nil && *in.CompetitionID != team.CompetitionID {
		ok, err := entityExists(db, &models.Competition{}, *in.CompetitionID)
		if err != nil {
			return nil, dbError("teams.update", err, "id", id)
		}
		if !ok {
			return nil, errs.MissingReference("competition not found")
		}
		updates["competition_id"] = *in.CompetitionID
	}
	if in.CreatorID != nil && *in.CreatorID != team.CreatorID {
		ok, err := entityExists(db, &models.User{}, *in.CreatorID)
		if err != nil {
			return nil, dbError("teams.update", err, "id", id)
		}
		if !ok {
			return nil, errs.MissingReference("creator not found")
		}
		updates["creator_id"] = *in.CreatorID
	}
	if in.Score != nil {
		if *in.Score < 0 {
			return nil, errs.InvalidField("score must not be negative")
		}
		updates["score"] = *in.Score
	}

	if len(updates) == 0 {
		return team, nil
	}
	defer metrics.RecordDBOperation("update", "teams", time.Now())
	if err := db.Model(team).Updates(updates).Error; err != nil {
		return nil, dbError("teams.update", err, "id", id)
	}
	return GetTeam(db, id)
}

// DeleteTeam removes a team together with its relation rows.
func DeleteTeam(db *gorm.DB, id string) error {
	team, err := GetTeam(db, id)
	if err != nil {
		return err
	}

	defer metrics.RecordDBOperation("delete", "teams", time.Now())
	txErr := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("team_id = ?", id).Delete(&models.UserTeam{}).Error; err != nil {
			return err
		}
		if err := tx.Where("team_id = ?", id).Delete(&models.TeamCompetition{}).Error; err != nil {
			return err
		}
		return tx.Delete(team).Error
	})
	if txErr != nil {
		return dbError("teams.delete", txErr, "id", id)
	}
	return nil
}
