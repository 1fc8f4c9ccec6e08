package services

import (
	"time"

	"lycosidae/errs"
	"lycosidae/metrics"
	"lycosidae/models"

	"gorm.io/gorm"
)

// CreateExerciseInput carries the fields accepted at creation.
type CreateExerciseInput struct {
	Link       string
	Name       string
	Score      int
	Difficulty string
}

// UpdateExerciseInput carries a partial update; nil fields are left
// untouched.
type UpdateExerciseInput struct {
	Link       *string
	Name       *string
	Score      *int
	Difficulty *string
}

func validDifficulty(d string) bool {
	switch d {
	case models.DifficultyEasy, models.DifficultyMedium, models.DifficultyHard:
		return true
	}
	return false
}

// CreateExercise validates and inserts a new exercise.
func CreateExercise(db *gorm.DB, in CreateExerciseInput) (*models.Exercise, error) {
	if in.Link == "" || in.Name == "" {
		return nil, errs.InvalidField("link and name are required")
	}
	if in.Score < 0 {
		return nil, errs.InvalidField("score must not be negative")
	}
	if !validDifficulty(in.Difficulty) {
		return nil, errs.InvalidField("difficulty must be one of easy, medium, hard")
	}

	exercise := &models.Exercise{
		Link:       in.Link,
		Name:       in.Name,
		Score:      in.Score,
		Difficulty: in.Difficulty,
	}
	defer metrics.RecordDBOperation("create", "exercises", time.Now())
	if err := db.Create(exercise).Error; err != nil {
		return nil, dbError("exercises.create", err, "name", in.Name)
	}
	return exercise, nil
}

// GetExercise looks up an exercise by id.
func GetExercise(db *gorm.DB, id string) (*models.Exercise, error) {
	var exercise models.Exercise
	if err := db.Where("id = ?", id).First(&exercise).Error; err != nil {
		if isNotFound(err) {
			return nil, errs.NotFound("exercise not found")
		}
		return nil, dbError("exercises.get", err, "id", id)
	}
	return &exercise, nil
}

// UpdateExercise applies a partial update.
func UpdateExercise(db *gorm.DB, id string, in UpdateExerciseInput) (*models.Exercise, error) {
	exercise, err := GetExercise(db, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if in.Link != nil {
		if *in.Link == "" {
			return nil, errs.InvalidField("link must not be empty")
		}
		updates["link"] = *in.Link
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, errs.InvalidField("name must not be empty")
		}
		updates["name"] = *in.Name
	}
	if in.Score != nil {
		if *in.Score < 0 {
			return nil, errs.InvalidField("score must not be negative")
		}
		updates["score"] = *in.Score
	}
	if in.Difficulty != nil {
		if !validDifficulty(*in.Difficulty) {
			return nil, errs.InvalidField("difficulty must be one of easy, medium, hard")
		}
		updates["difficulty"] = *in.Difficulty
	}

	if len(updates) == 0 {
		return exercise, nil
	}
	defer metrics.RecordDBOperation("update", "exercises", time.Now())
	if err := db.Model(exercise).Updates(updates).Error; err != nil {
		return nil, dbError("exercises.update", err, "id", id)
	}
	return GetExercise(db, id)
}

// DeleteExercise removes an exercise together with its relation rows.
func DeleteExercise(db *gorm.DB, id string) error {
	exercise, err := GetExercise(db, id)
	if err != nil {
		return err
	}

	defer metrics.RecordDBOperation("delete", "exercises", time.Now())
	txErr := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("exercise_id = ?", id).Delete(&models.ExerciseTag{}).Error; err != nil {
			return err
		}
		if err := tx.Where("exercise_id = ?", id).Delete(&models.ExerciseCompetition{}).Error; err != nil {
			return err
		}
		return tx.Delete(exercise).Error
	})
	if txErr != nil {
		return dbError("exercises.delete", txErr, "id", id)
	}
	return nil
}
