package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lycosidae/errs"
	"lycosidae/models"
)

func TestCreateTag_EmptyType(t *testing.T) {
	resetTables(t)

	_, err := CreateTag(testDB, "")
	require.Error(t, err)
	e, ok := err.(*errs.Error)
	require.True(t, ok)
	assert.Equal(t, errs.CodeInvalidField, e.Code)
}

func TestGetTagByType(t *testing.T) {
	resetTables(t)

	created, err := CreateTag(testDB, "pwn")
	require.NoError(t, err)

	got, err := GetTagByType(testDB, "pwn")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = GetTagByType(testDB, "crypto")
	require.Error(t, err)
	e, ok := err.(*errs.Error)
	require.True(t, ok)
	assert.Equal(t, errs.CodeNotFound, e.Code)
}

func TestUpdateTag(t *testing.T) {
	resetTables(t)
	tag := mustTag(t)

	updated, err := UpdateTag(testDB, tag.ID, "forensics")
	require.NoError(t, err)
	assert.Equal(t, "forensics", updated.Type)

	_, err = UpdateTag(testDB, tag.ID, "")
	require.Error(t, err)
}

func TestDeleteTag_CascadesLabels(t *testing.T) {
	resetTables(t)
	tag := mustTag(t)
	exercise := mustExercise(t)

	_, err := AddTagToExercise(testDB, exercise.ID, tag.ID)
	require.NoError(t, err)

	require.NoError(t, DeleteTag(testDB, tag.ID))

	_, err = GetTag(testDB, tag.ID)
	require.Error(t, err)
	assert.EqualValues(t, 0, countRows(t, &models.ExerciseTag{}, "tag_id = ?", tag.ID))

	_, err = GetExercise(testDB, exercise.ID)
	assert.NoError(t, err)
}
