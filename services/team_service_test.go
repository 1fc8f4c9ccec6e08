package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lycosidae/errs"
	"lycosidae/models"
)

func TestCreateTeam_RoundTrip(t *testing.T) {
	resetTables(t)
	user := mustUser(t)
	competition := mustCompetition(t)

	created, err := CreateTeam(testDB, CreateTeamInput{
		Name:          "Wolf Spiders",
		CompetitionID: competition.ID,
		CreatorID:     user.ID,
	})
	require.NoError(t, err)

	got, err := GetTeam(testDB, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Wolf Spiders", got.Name)
	assert.Equal(t, competition.ID, got.CompetitionID)
	assert.Equal(t, user.ID, got.CreatorID)
	assert.Equal(t, 0, got.Score)
}

func TestCreateTeam_MissingCompetition(t *testing.T) {
	resetTables(t)
	user := mustUser(t)

	_, err := CreateTeam(testDB, CreateTeamInput{
		Name:          "Orphans",
		CompetitionID: "00000000-0000-0000-0000-000000000000",
		CreatorID:     user.ID,
	})
	require.Error(t, err)
	e, ok := err.(*errs.Error)
	require.True(t, ok)
	assert.Equal(t, errs.CodeMissingReference, e.Code)

	// Nothing persisted.
	assert.EqualValues(t, 0, countRows(t, &models.Team{}, "name = ?", "Orphans"))
}

func TestCreateTeam_MissingCreator(t *testing.T) {
	resetTables(t)
	competition := mustCompetition(t)

	_, err := CreateTeam(testDB, CreateTeamInput{
		Name:          "Ghosts",
		CompetitionID: competition.ID,
		CreatorID:     "00000000-0000-0000-0000-000000000000",
	})
	require.Error(t, err)
	e, ok := err.(*errs.Error)
	require.True(t, ok)
	assert.Equal(t, errs.CodeMissingReference, e.Code)
}

func TestUpdateTeam_Partial(t *testing.T) {
	resetTables(t)
	user := mustUser(t)
	competition := mustCompetition(t)
	team := mustTeam(t, competition.ID, user.ID)

	score := 1337
	updated, err := UpdateTeam(testDB, team.ID, UpdateTeamInput{Score: &score})
	require.NoError(t, err)
	assert.Equal(t, 1337, updated.Score)
	assert.Equal(t, team.Name, updated.Name)

	missing := "00000000-0000-0000-0000-000000000000"
	_, err = UpdateTeam(testDB, team.ID, UpdateTeamInput{CompetitionID: &missing})
	require.Error(t, err)
	e, ok := err.(*errs.Error)
	require.True(t, ok)
	assert.Equal(t, errs.CodeMissingReference, e.Code)
}

func TestDeleteTeam_CascadesRelations(t *testing.T) {
	resetTables(t)
	user := mustUser(t)
	competition := mustCompetition(t)
	team := mustTeam(t, competition.ID, user.ID)

	_, err := AddUserToTeam(testDB, user.ID, team.ID)
	require.NoError(t, err)
	_, err = AddTeamToCompetition(testDB, team.ID, competition.ID)
	require.NoError(t, err)

	require.NoError(t, DeleteTeam(testDB, team.ID))

	_, err = GetTeam(testDB, team.ID)
	require.Error(t, err)
	assert.EqualValues(t, 0, countRows(t, &models.UserTeam{}, "team_id = ?", team.ID))
	assert.EqualValues(t, 0, countRows(t, &models.TeamCompetition{}, "team_id = ?", team.ID))
}
