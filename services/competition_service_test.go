package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lycosidae/errs"
	"lycosidae/models"
)

func TestCreateCompetition_GeneratesInviteCode(t *testing.T) {
	resetTables(t)

	competition, err := CreateCompetition(testDB, CreateCompetitionInput{
		Name:      "Spring CTF",
		Organizer: "lycosidae",
		StartDate: time.Now().Add(time.Hour),
		EndDate:   time.Now().Add(24 * time.Hour),
	})
	require.NoError(t, err)
	assert.Len(t, competition.InviteCode, inviteCodeLength)
}

func TestCreateCompetition_KeepsProvidedInviteCode(t *testing.T) {
	resetTables(t)

	competition, err := CreateCompetition(testDB, CreateCompetitionInput{
		Name:       "Autumn CTF",
		Organizer:  "lycosidae",
		InviteCode: "FALL2026",
		StartDate:  time.Now().Add(time.Hour),
		EndDate:    time.Now().Add(24 * time.Hour),
	})
	require.NoError(t, err)
	assert.Equal(t, "FALL2026", competition.InviteCode)
}

func TestCreateCompetition_DuplicateInviteCode(t *testing.T) {
	resetTables(t)

	in := CreateCompetitionInput{
		Name:       "First",
		Organizer:  "lycosidae",
		InviteCode: "SAME",
		StartDate:  time.Now().Add(time.Hour),
		EndDate:    time.Now().Add(24 * time.Hour),
	}
	_, err := CreateCompetition(testDB, in)
	require.NoError(t, err)

	in.Name = "Second"
	_, err = CreateCompetition(testDB, in)
	require.Error(t, err)
	e, ok := err.(*errs.Error)
	require.True(t, ok)
	assert.Equal(t, errs.CodeDuplicateEntity, e.Code)
	assert.EqualValues(t, 1, countRows(t, &models.Competition{}, "invite_code = ?", "SAME"))
}

func TestCreateCompetition_DatesOutOfOrder(t *testing.T) {
	resetTables(t)

	_, err := CreateCompetition(testDB, CreateCompetitionInput{
		Name:      "Backwards",
		Organizer: "lycosidae",
		StartDate: time.Now().Add(24 * time.Hour),
		EndDate:   time.Now().Add(time.Hour),
	})
	require.Error(t, err)
	e, ok := err.(*errs.Error)
	require.True(t, ok)
	assert.Equal(t, errs.CodeInvalidField, e.Code)
}

func TestGetCompetitionByInviteCode(t *testing.T) {
	resetTables(t)
	competition := mustCompetition(t)

	got, err := GetCompetitionByInviteCode(testDB, competition.InviteCode)
	require.NoError(t, err)
	assert.Equal(t, competition.ID, got.ID)

	_, err = GetCompetitionByInviteCode(testDB, "NOPE")
	require.Error(t, err)
	e, ok := err.(*errs.Error)
	require.True(t, ok)
	assert.Equal(t, errs.CodeNotFound, e.Code)
}

func TestUpdateCompetition_Partial(t *testing.T) {
	resetTables(t)
	competition := mustCompetition(t)

	name := "Renamed CTF"
	updated, err := UpdateCompetition(testDB, competition.ID, UpdateCompetitionInput{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, name, updated.Name)
	assert.Equal(t, competition.Organizer, updated.Organizer)
	assert.Equal(t, competition.InviteCode, updated.InviteCode)
}

func TestUpdateCompetition_RejectsInvertedDates(t *testing.T) {
	resetTables(t)
	competition := mustCompetition(t)

	// Moving start past the existing end must fail.
	start := competition.EndDate.Add(time.Hour)
	_, err := UpdateCompetition(testDB, competition.ID, UpdateCompetitionInput{StartDate: &start})
	require.Error(t, err)
	e, ok := err.(*errs.Error)
	require.True(t, ok)
	assert.Equal(t, errs.CodeInvalidField, e.Code)
}

func TestDeleteCompetition_CascadesTeamsAndRelations(t *testing.T) {
	resetTables(t)
	user := mustUser(t)
	competition := mustCompetition(t)
	team := mustTeam(t, competition.ID, user.ID)
	exercise := mustExercise(t)

	_, err := AddUserToCompetition(testDB, user.ID, competition.ID)
	require.NoError(t, err)
	_, err = AddTeamToCompetition(testDB, team.ID, competition.ID)
	require.NoError(t, err)
	_, err = AddExerciseToCompetition(testDB, exercise.ID, competition.ID)
	require.NoError(t, err)

	require.NoError(t, DeleteCompetition(testDB, competition.ID))

	_, err = GetCompetition(testDB, competition.ID)
	require.Error(t, err)
	_, err = GetTeam(testDB, team.ID)
	require.Error(t, err)

	assert.EqualValues(t, 0, countRows(t, &models.UserCompetition{}, "competition_id = ?", competition.ID))
	assert.EqualValues(t, 0, countRows(t, &models.TeamCompetition{}, "competition_id = ?", competition.ID))
	assert.EqualValues(t, 0, countRows(t, &models.ExerciseCompetition{}, "competition_id = ?", competition.ID))

	// Referenced entities survive.
	_, err = GetUser(testDB, user.ID)
	assert.NoError(t, err)
	_, err = GetExercise(testDB, exercise.ID)
	assert.NoError(t, err)
}
