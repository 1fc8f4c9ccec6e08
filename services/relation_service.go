package services

import (
	"time"

	"lycosidae/errs"
	"lycosidae/metrics"
	"lycosidae/models"

	"gorm.io/gorm"
)

func relationExists(db *gorm.DB, model interface{}, query string, args ...interface{}) (bool, error) {
	var count int64
	if err := db.Model(model).Where(query, args...).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// AddUserToCompetition enrolls a user in a competition.
func AddUserToCompetition(db *gorm.DB, userID, competitionID string) (*models.UserCompetition, error) {
	ok, err := entityExists(db, &models.User{}, userID)
	if err != nil {
		return nil, dbError("user_competitions.create", err, "user_id", userID)
	}
	if !ok {
		return nil, errs.MissingReference("user not found")
	}
	ok, err = entityExists(db, &models.Competition{}, competitionID)
	if err != nil {
		return nil, dbError("user_competitions.create", err, "competition_id", competitionID)
	}
	if !ok {
		return nil, errs.MissingReference("competition not found")
	}

	ok, err = relationExists(db, &models.UserCompetition{}, "user_id = ? AND competition_id = ?", userID, competitionID)
	if err != nil {
		return nil, dbError("user_competitions.create", err)
	}
	if ok {
		return nil, errs.DuplicateRelation("user already in competition")
	}

	relation := &models.UserCompetition{UserID: userID, CompetitionID: competitionID}
	defer metrics.RecordDBOperation("create", "user_competitions", time.Now())
	if err := db.Create(relation).Error; err != nil {
		if isDuplicatedKey(err) {
			return nil, errs.DuplicateRelation("user already in competition")
		}
		return nil, dbError("user_competitions.create", err)
	}
	return relation, nil
}

// RemoveUserFromCompetition deletes the enrollment of a user in a
// competition.
func RemoveUserFromCompetition(db *gorm.DB, userID, competitionID string) error {
	defer metrics.RecordDBOperation("delete", "user_competitions", time.Now())
	res := db.Where("user_id = ? AND competition_id = ?", userID, competitionID).Delete(&models.UserCompetition{})
	if res.Error != nil {
		return dbError("user_competitions.delete", res.Error)
	}
	if res.RowsAffected == 0 {
		return errs.NotFound("relation not found")
	}
	return nil
}

// AddUserToTeam places a user on a team.
func AddUserToTeam(db *gorm.DB, userID, teamID string) (*models.UserTeam, error) {
	ok, err := entityExists(db, &models.User{}, userID)
	if err != nil {
		return nil, dbError("user_teams.create", err, "user_id", userID)
	}
	if !ok {
		return nil, errs.MissingReference("user not found")
	}
	ok, err = entityExists(db, &models.Team{}, teamID)
	if err != nil {
		return nil, dbError("user_teams.create", err, "team_id", teamID)
	}
	if !ok {
		return nil, errs.MissingReference("team not found")
	}

	ok, err = relationExists(db, &models.UserTeam{}, "user_id = ? AND team_id = ?", userID, teamID)
	if err != nil {
		return nil, dbError("user_teams.create", err)
	}
	if ok {
		return nil, errs.DuplicateRelation("user already on team")
	}

	relation := &models.UserTeam{UserID: userID, TeamID: teamID}
	defer metrics.RecordDBOperation("create", "user_teams", time.Now())
	if err := db.Create(relation).Error; err != nil {
		if isDuplicatedKey(err) {
			return nil, errs.DuplicateRelation("user already on team")
		}
		return nil, dbError("user_teams.create", err)
	}
	return relation, nil
}

// RemoveUserFromTeam deletes the membership of a user on a team.
func RemoveUserFromTeam(db *gorm.DB, userID, teamID string) error {
	defer metrics.RecordDBOperation("delete", "user_teams", time.Now())
	res := db.Where("user_id = ? AND team_id = ?", userID, teamID).Delete(&models.UserTeam{})
	if res.Error != nil {
		return dbError("user_teams.delete", res.Error)
	}
	if res.RowsAffected == 0 {
		return errs.NotFound("relation not found")
	}
	return nil
}

// AddTeamToCompetition enrolls a team in a competition.
func AddTeamToCompetition(db *gorm.DB, teamID, competitionID string) (*models.TeamCompetition, error) {
	ok, err := entityExists(db, &models.Team{}, teamID)
	if err != nil {
		return nil, dbError("team_competitions.create", err, "team_id", teamID)
	}
	if !ok {
		return nil, errs.MissingReference("team not found")
	}
	ok, err = entityExists(db, &models.Competition{}, competitionID)
	if err != nil {
		return nil, dbError("team_competitions.create", err, "competition_id", competitionID)
	}
	if !ok {
		return nil, errs.MissingReference("competition not found")
	}

	ok, err = relationExists(db, &models.TeamCompetition{}, "team_id = ? AND competition_id = ?", teamID, competitionID)
	if err != nil {
		return nil, dbError("team_competitions.create", err)
	}
	if ok {
		return nil, errs.DuplicateRelation("team already in competition")
	}

	relation := &models.TeamCompetition{TeamID: teamID, CompetitionID: competitionID}
	defer metrics.RecordDBOperation("create", "team_competitions", time.Now())
	if err := db.Create(relation).Error; err != nil {
		if isDuplicatedKey(err) {
			return nil, errs.DuplicateRelation("team already in competition")
		}
		return nil, dbError("team_competitions.create", err)
	}
	return relation, nil
}

// RemoveTeamFromCompetition deletes the enrollment of a team in a
// competition.
func RemoveTeamFromCompetition(db *gorm.DB, teamID, competitionID string) error {
	defer metrics.RecordDBOperation("delete", "team_competitions", time.Now())
	res := db.Where("team_id = ? AND competition_id = ?", teamID, competitionID).Delete(&models.TeamCompetition{})
	if res.Error != nil {
		return dbError("team_competitions.delete", res.Error)
	}
	if res.RowsAffected == 0 {
		return errs.NotFound("relation not found")
	}
	return nil
}

// AddTagToExercise labels an exercise with a tag.
func AddTagToExercise(db *gorm.DB, exerciseID, tagID string) (*models.ExerciseTag, error) {
	ok, err := entityExists(db, &models.Exercise{}, exerciseID)
	if err != nil {
		return nil, dbError("exercise_tags.create", err, "exercise_id", exerciseID)
	}
	if !ok {
		return nil, errs.MissingReference("exercise not found")
	}
	ok, err = entityExists(db, &models.Tag{}, tagID)
	if err != nil {
		return nil, dbError("exercise_tags.create", err, "tag_id", tagID)
	}
	if !ok {
		return nil, errs.MissingReference("tag not found")
	}

	ok, err = relationExists(db, &models.ExerciseTag{}, "exercise_id = ? AND tag_id = ?", exerciseID, tagID)
	if err != nil {
		return nil, dbError("exercise_tags.create", err)
	}
	if ok {
		return nil, errs.DuplicateRelation("exercise already has tag")
	}

	relation := &models.ExerciseTag{ExerciseID: exerciseID, TagID: tagID}
	defer metrics.RecordDBOperation("create", "exercise_tags", time.Now())
	if err := db.Create(relation).Error; err != nil {
		if isDuplicatedKey(err) {
			return nil, errs.DuplicateRelation("exercise already has tag")
		}
		return nil, dbError("exercise_tags.create", err)
	}
	return relation, nil
}

// RemoveTagFromExercise deletes a tag label from an exercise.
func RemoveTagFromExercise(db *gorm.DB, exerciseID, tagID string) error {
	defer metrics.RecordDBOperation("delete", "exercise_tags", time.Now())
	res := db.Where("exercise_id = ? AND tag_id = ?", exerciseID, tagID).Delete(&models.ExerciseTag{})
	if res.Error != nil {
		return dbError("exercise_tags.delete", res.Error)
	}
	if res.RowsAffected == 0 {
		return errs.NotFound("relation not found")
	}
	return nil
}

// AddExerciseToCompetition attaches an exercise to a competition.
func AddExerciseToCompetition(db *gorm.DB, exerciseID, competitionID string) (*models.ExerciseCompetition, error) {
	ok, err := entityExists(db, &models.Exercise{}, exerciseID)
	if err != nil {
		return nil, dbError("exercise_competitions.create", err, "exercise_id", exerciseID)
	}
	if !ok {
		return nil, errs.MissingReference("exercise not found")
	}
	ok, err = entityExists(db, &models.Competition{}, competitionID)
	if err != nil {
		return nil, dbError("exercise_competitions.create", err, "competition_id", competitionID)
	}
	if !ok {
		return nil, errs.MissingReference("competition not found")
	}

	ok, err = relationExists(db, &models.ExerciseCompetition{}, "exercise_id = ? AND competition_id = ?", exerciseID, competitionID)
	if err != nil {
		return nil, dbError("exercise_competitions.create", err)
	}
	if ok {
		return nil, errs.DuplicateRelation("exercise already in competition")
	}

	relation := &models.ExerciseCompetition{ExerciseID: exerciseID, CompetitionID: competitionID}
	defer metrics.RecordDBOperation("create", "exercise_competitions", time.Now())
	if err := db.Create(relation).Error; err != nil {
		if isDuplicatedKey(err) {
			return nil, errs.DuplicateRelation("exercise already in competition")
		}
		return nil, dbError("exercise_competitions.create", err)
	}
	return relation, nil
}

// RemoveExerciseFromCompetition detaches an exercise from a competition.
func RemoveExerciseFromCompetition(db *gorm.DB, exerciseID, competitionID string) error {
	defer metrics.RecordDBOperation("delete", "exercise_competitions", time.Now())
	res := db.Where("exercise_id = ? AND competition_id = ?", exerciseID, competitionID).Delete(&models.ExerciseCompetition{})
	if res.Error != nil {
		return dbError("exercise_competitions.delete", res.Error)
	}
	if res.RowsAffected == 0 {
		return errs.NotFound("relation not found")
	}
	return nil
}

// AddContainerToCompetition attaches a container to a competition.
func AddContainerToCompetition(db *gorm.DB, containerID, competitionID string) (*models.ContainerCompetition, error) {
	ok, err := entityExists(db, &models.Container{}, containerID)
	if err != nil {
		return nil, dbError("container_competitions.create", err, "container_id", containerID)
	}
	if !ok {
		return nil, errs.MissingReference("container not found")
	}
	ok, err = entityExists(db, &models.Competition{}, competitionID)
	if err != nil {
		return nil, dbError("container_competitions.create", err, "competition_id", competitionID)
	}
	if !ok {
		return nil, errs.MissingReference("competition not found")
	}

	ok, err = relationExists(db, &models.ContainerCompetition{}, "container_id = ? AND competition_id = ?", containerID, competitionID)
	if err != nil {
		return nil, dbError("container_competitions.create", err)
	}
	if ok {
		return nil, errs.DuplicateRelation("container already in competition")
	}

	relation := &models.ContainerCompetition{ContainerID: containerID, CompetitionID: competitionID}
	defer metrics.RecordDBOperation("create", "container_competitions", time.Now())
	if err := db.Create(relation).Error; err != nil {
		if isDuplicatedKey(err) {
			return nil, errs.DuplicateRelation("container already in competition")
		}
		return nil, dbError("container_competitions.create", err)
	}
	return relation, nil
}

// RemoveContainerFromCompetition detaches a container from a competition.
func RemoveContainerFromCompetition(db *gorm.DB, containerID, competitionID string) error {
	defer metrics.RecordDBOperation("delete", "container_competitions", time.Now())
	res := db.Where("container_id = ? AND competition_id = ?", containerID, competitionID).Delete(&models.ContainerCompetition{})
	if res.Error != nil {
		return dbError("container_competitions.delete", res.Error)
	}
	if res.RowsAffected == 0 {
		return errs.NotFound("relation not found")
	}
	return nil
}
