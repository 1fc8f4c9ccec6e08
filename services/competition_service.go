package services

import (
	"time"

	"lycosidae/errs"
	"lycosidae/metrics"
	"lycosidae/models"
	"lycosidae/utils"

	"gorm.io/gorm"
)

const inviteCodeLength = 10

// CreateCompetitionInput carries the fields accepted at creation. When
// InviteCode is empty a unique one is generated server-side.
type CreateCompetitionInput struct {
	Name       string
	Organizer  string
	InviteCode string
	StartDate  time.Time
	EndDate    time.Time
}

// UpdateCompetitionInput carries a partial update; nil fields are left
// untouched.
type UpdateCompetitionInput struct {
	Name       *string
	Organizer  *string
	InviteCode *string
	StartDate  *time.Time
	EndDate    *time.Time
}

// CreateCompetition validates and inserts a new competition.
func CreateCompetition(db *gorm.DB, in CreateCompetitionInput) (*models.Competition, error) {
	if in.Name == "" || in.Organizer == "" {
		return nil, errs.InvalidField("name and organizer are required")
	}
	if in.StartDate.IsZero() || in.EndDate.IsZero() {
		return nil, errs.InvalidField("start_date and end_date are required")
	}
	if in.EndDate.Before(in.StartDate) {
		return nil, errs.InvalidField("start_date must not be after end_date")
	}

	code := in.InviteCode
	if code == "" {
		var err error
		code, err = generateUniqueInviteCode(db)
		if err != nil {
			return nil, dbError("competitions.create", err)
		}
	} else {
		var count int64
		if err := db.Model(&models.Competition{}).Where("invite_code = ?", code).Count(&count).Error; err != nil {
			return nil, dbError("competitions.create", err, "invite_code", code)
		}
		if count > 0 {
			return nil, errs.DuplicateEntity("invite code already in use")
		}
	}

	competition := &models.Competition{
		Name:       in.Name,
		Organizer:  in.Organizer,
		InviteCode: code,
		StartDate:  in.StartDate,
		EndDate:    in.EndDate,
	}
	defer metrics.RecordDBOperation("create", "competitions", time.Now())
	if err := db.Create(competition).Error; err != nil {
		if isDuplicatedKey(err) {
			return nil, errs.DuplicateEntity("invite code already in use")
		}
		return nil, dbError("competitions.create", err, "name", in.Name)
	}
	return competition, nil
}

func generateUniqueInviteCode(db *gorm.DB) (string, error) {
	for {
		code := utils.GenerateInviteCode(inviteCodeLength)
		var count int64
		if err := db.Model(&models.Competition{}).Where("invite_code = ?", code).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return code, nil
		}
	}
}

// GetCompetition looks up a competition by id.
func GetCompetition(db *gorm.DB, id string) (*models.Competition, error) {
	var competition models.Competition
	if err := db.Where("id = ?", id).First(&competition).Error; err != nil {
		if isNotFound(err) {
			return nil, errs.NotFound("competition not found")
		}
		return nil, dbError("competitions.get", err, "id", id)
	}
	return &competition, nil
}

// GetCompetitionByInviteCode looks up a competition by its invite code.
func GetCompetitionByInviteCode(db *gorm.DB, code string) (*models.Competition, error) {
	var competition models.Competition
	if err := db.Where("invite_code = ?", code).First(&competition).Error; err != nil {
		if isNotFound(err) {
			return nil, errs.NotFound("competition not found")
		}
		return nil, dbError("competitions.get_by_invite", err, "invite_code", code)
	}
	return &competition, nil
}

// UpdateCompetition applies a partial update. Date ordering is validated
// against the values the row would hold after the update.
func UpdateCompetition(db *gorm.DB, id string, in UpdateCompetitionInput) (*models.Competition, error) {
	competition, err := GetCompetition(db, id)
	if err != nil {
		return nil, err
	}

	start, end := competition.StartDate, competition.EndDate
	if in.StartDate != nil {
		start = *in.StartDate
	}
	if in.EndDate != nil {
		end = *in.EndDate
	}
	if end.Before(start) {
		return nil, errs.InvalidField("start_date must not be after end_date")
	}

	updates := map[string]interface{}{}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, errs.InvalidField("name must not be empty")
		}
		updates["name"] = *in.Name
	}
	if in.Organizer != nil {
		if *in.Organizer == "" {
			return nil, errs.InvalidField("organizer must not be empty")
		}
		updates["organizer"] = *in.Organizer
	}
	if in.InviteCode != nil && *in.InviteCode != competition.InviteCode {
		if *in.InviteCode == "" {
			return nil, errs.InvalidField("invite_code must not be empty")
		}
		var count int64
		if err := db.Model(&models.Competition{}).Where("invite_code = ? AND id <> ?", *in.InviteCode, id).Count(&count).Error; err != nil {
			return nil, dbError("competitions.update", err, "id", id)
		}
		if count > 0 {
			return nil, errs.DuplicateEntity("invite code already in use")
		}
		updates["invite_code"] = *in.InviteCode
	}
	if in.StartDate != nil {
		updates["start_date"] = *in.StartDate
	}
	if in.EndDate != nil {
		updates["end_date"] = *in.EndDate
	}

	if len(updates) == 0 {
		return competition, nil
	}
	defer metrics.RecordDBOperation("update", "competitions", time.Now())
	if err := db.Model(competition).Updates(updates).Error; err != nil {
		if isDuplicatedKey(err) {
			return nil, errs.DuplicateEntity("invite code already in use")
		}
		return nil, dbError("competitions.update", err, "id", id)
	}
	return GetCompetition(db, id)
}

// DeleteCompetition removes a competition together with its relation rows
// and the teams registered to it (delete cascades, see DESIGN.md).
func DeleteCompetition(db *gorm.DB, id string) error {
	competition, err := GetCompetition(db, id)
	if err != nil {
		return err
	}

	defer metrics.RecordDBOperation("delete", "competitions", time.Now())
	txErr := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("competition_id = ?", id).Delete(&models.UserCompetition{}).Error; err != nil {
			return err
		}
		if err := tx.Where("competition_id = ?", id).Delete(&models.TeamCompetition{}).Error; err != nil {
			return err
		}
		if err := tx.Where("competition_id = ?", id).Delete(&models.ExerciseCompetition{}).Error; err != nil {
			return err
		}
		if err := tx.Where("competition_id = ?", id).Delete(&models.ContainerCompetition{}).Error; err != nil {
			return err
		}

		var teamIDs []string
		if err := tx.Model(&models.Team{}).Where("competition_id = ?", id).Pluck("id", &teamIDs).Error; err != nil {
			return err
		}
		if len(teamIDs) > 0 {
			if err := tx.Where("team_id IN ?", teamIDs).Delete(&models.UserTeam{}).Error; err != nil {
				return err
			}
			if err := tx.Where("team_id IN ?", teamIDs).Delete(&models.TeamCompetition{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", teamIDs).Delete(&models.Team{}).Error; err != nil {
				return err
			}
		}

		return tx.Delete(competition).Error
	})
	if txErr != nil {
		return dbError("competitions.delete", txErr, "id", id)
	}
	return nil
}
