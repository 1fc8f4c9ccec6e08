package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lycosidae/errs"
	"lycosidae/models"
)

func TestCreateExercise_RoundTrip(t *testing.T) {
	resetTables(t)

	created, err := CreateExercise(testDB, CreateExerciseInput{
		Link:       "https://challenges.example.com/web-1",
		Name:       "SQLi warmup",
		Score:      50,
		Difficulty: models.DifficultyEasy,
	})
	require.NoError(t, err)

	got, err := GetExercise(testDB, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "SQLi warmup", got.Name)
	assert.Equal(t, 50, got.Score)
	assert.Equal(t, models.DifficultyEasy, got.Difficulty)
}

func TestCreateExercise_InvalidDifficulty(t *testing.T) {
	resetTables(t)

	_, err := CreateExercise(testDB, CreateExerciseInput{
		Link:       "https://challenges.example.com/web-2",
		Name:       "Broken",
		Score:      10,
		Difficulty: "impossible",
	})
	require.Error(t, err)
	e, ok := err.(*errs.Error)
	require.True(t, ok)
	assert.Equal(t, errs.CodeInvalidField, e.Code)
}

func TestCreateExercise_NegativeScore(t *testing.T) {
	resetTables(t)

	_, err := CreateExercise(testDB, CreateExerciseInput{
		Link:       "https://challenges.example.com/web-3",
		Name:       "Negative",
		Score:      -1,
		Difficulty: models.DifficultyHard,
	})
	require.Error(t, err)
	e, ok := err.(*errs.Error)
	require.True(t, ok)
	assert.Equal(t, errs.CodeInvalidField, e.Code)
}

func TestUpdateExercise_Partial(t *testing.T) {
	resetTables(t)
	exercise := mustExercise(t)

	score := 250
	updated, err := UpdateExercise(testDB, exercise.ID, UpdateExerciseInput{Score: &score})
	require.NoError(t, err)
	assert.Equal(t, 250, updated.Score)
	assert.Equal(t, exercise.Name, updated.Name)
	assert.Equal(t, exercise.Difficulty, updated.Difficulty)
}

func TestDeleteExercise_CascadesRelations(t *testing.T) {
	resetTables(t)
	exercise := mustExercise(t)
	tag := mustTag(t)
	competition := mustCompetition(t)

	_, err := AddTagToExercise(testDB, exercise.ID, tag.ID)
	require.NoError(t, err)
	_, err = AddExerciseToCompetition(testDB, exercise.ID, competition.ID)
	require.NoError(t, err)

	require.NoError(t, DeleteExercise(testDB, exercise.ID))

	_, err = GetExercise(testDB, exercise.ID)
	require.Error(t, err)
	assert.EqualValues(t, 0, countRows(t, &models.ExerciseTag{}, "exercise_id = ?", exercise.ID))
	assert.EqualValues(t, 0, countRows(t, &models.ExerciseCompetition{}, "exercise_id = ?", exercise.ID))

	// The tag and competition survive.
	_, err = GetTag(testDB, tag.ID)
	assert.NoError(t, err)
	_, err = GetCompetition(testDB, competition.ID)
	assert.NoError(t, err)
}
