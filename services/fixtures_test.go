package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"lycosidae/models"
)

var fixtureSeq int

func nextSeq() int {
	fixtureSeq++
	return fixtureSeq
}

func mustUser(t *testing.T) *models.User {
	t.Helper()
	n := nextSeq()
	user, err := CreateUser(testDB, CreateUserInput{
		Username: fmt.Sprintf("player%d", n),
		Email:    fmt.Sprintf("player%d@example.com", n),
		Password: "hunter22",
	})
	require.NoError(t, err)
	return user
}

func mustCompetition(t *testing.T) *models.Competition {
	t.Helper()
	n := nextSeq()
	competition, err := CreateCompetition(testDB, CreateCompetitionInput{
		Name:      fmt.Sprintf("CTF %d", n),
		Organizer: "lycosidae",
		StartDate: time.Now().Add(time.Hour),
		EndDate:   time.Now().Add(48 * time.Hour),
	})
	require.NoError(t, err)
	return competition
}

func mustExercise(t *testing.T) *models.Exercise {
	t.Helper()
	n := nextSeq()
	exercise, err := CreateExercise(testDB, CreateExerciseInput{
		Link:       fmt.Sprintf("https://challenges.example.com/%d", n),
		Name:       fmt.Sprintf("Challenge %d", n),
		Score:      100,
		Difficulty: models.DifficultyMedium,
	})
	require.NoError(t, err)
	return exercise
}

func mustTag(t *testing.T) *models.Tag {
	t.Helper()
	tag, err := CreateTag(testDB, fmt.Sprintf("category-%d", nextSeq()))
	require.NoError(t, err)
	return tag
}

func mustTeam(t *testing.T, competitionID, creatorID string) *models.Team {
	t.Helper()
	team, err := CreateTeam(testDB, CreateTeamInput{
		Name:          fmt.Sprintf("Team %d", nextSeq()),
		CompetitionID: competitionID,
		CreatorID:     creatorID,
	})
	require.NoError(t, err)
	return team
}

func mustContainer(t *testing.T) *models.Container {
	t.Helper()
	container, err := CreateContainer(testDB, time.Now().Add(2*time.Hour))
	require.NoError(t, err)
	return container
}

func countRows(t *testing.T, model interface{}, query string, args ...interface{}) int64 {
	t.Helper()
	var count int64
	require.NoError(t, testDB.Model(model).Where(query, args...).Count(&count).Error)
	return count
}
