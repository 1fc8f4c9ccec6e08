package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lycosidae/errs"
	"lycosidae/models"
	"lycosidae/utils"
)

func TestCreateUser_RoundTrip(t *testing.T) {
	resetTables(t)

	created, err := CreateUser(testDB, CreateUserInput{
		Username:    "alice",
		Email:       "alice@example.com",
		Password:    "s3cret",
		PhoneNumber: "+33600000001",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	got, err := GetUser(testDB, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)
	assert.Equal(t, "alice@example.com", got.Email)
	assert.Equal(t, "+33600000001", got.PhoneNumber)
}

func TestCreateUser_StoresHashedPassword(t *testing.T) {
	resetTables(t)

	created, err := CreateUser(testDB, CreateUserInput{
		Username: "bob",
		Email:    "bob@example.com",
		Password: "plaintext",
	})
	require.NoError(t, err)

	assert.NotEqual(t, "plaintext", created.Password)
	assert.True(t, utils.CheckPassword(created.Password, "plaintext"))
	assert.False(t, utils.CheckPassword(created.Password, "wrong"))
}

func TestCreateUser_MissingFields(t *testing.T) {
	resetTables(t)

	_, err := CreateUser(testDB, CreateUserInput{Username: "carol"})
	require.Error(t, err)
	e, ok := err.(*errs.Error)
	require.True(t, ok)
	assert.Equal(t, errs.CodeInvalidField, e.Code)
}

func TestCreateUser_DuplicateUsername(t *testing.T) {
	resetTables(t)

	_, err := CreateUser(testDB, CreateUserInput{Username: "dave", Email: "dave@example.com", Password: "pw"})
	require.NoError(t, err)

	_, err = CreateUser(testDB, CreateUserInput{Username: "dave", Email: "other@example.com", Password: "pw"})
	require.Error(t, err)
	e, ok := err.(*errs.Error)
	require.True(t, ok)
	assert.Equal(t, errs.CodeDuplicateEntity, e.Code)

	// Only the first row should exist.
	assert.EqualValues(t, 1, countRows(t, &models.User{}, "username = ?", "dave"))
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	resetTables(t)

	_, err := CreateUser(testDB, CreateUserInput{Username: "erin", Email: "erin@example.com", Password: "pw"})
	require.NoError(t, err)

	_, err = CreateUser(testDB, CreateUserInput{Username: "erin2", Email: "erin@example.com", Password: "pw"})
	require.Error(t, err)
	e, ok := err.(*errs.Error)
	require.True(t, ok)
	assert.Equal(t, errs.CodeDuplicateEntity, e.Code)
}

func TestGetUser_NotFound(t *testing.T) {
	resetTables(t)

	_, err := GetUser(testDB, "00000000-0000-0000-0000-000000000000")
	require.Error(t, err)
	e, ok := err.(*errs.Error)
	require.True(t, ok)
	assert.Equal(t, errs.CodeNotFound, e.Code)
}

func TestUpdateUser_Partial(t *testing.T) {
	resetTables(t)
	user := mustUser(t)

	phone := "+33611111111"
	updated, err := UpdateUser(testDB, user.ID, UpdateUserInput{PhoneNumber: &phone})
	require.NoError(t, err)

	assert.Equal(t, phone, updated.PhoneNumber)
	// Untouched fields keep their values.
	assert.Equal(t, user.Username, updated.Username)
	assert.Equal(t, user.Email, updated.Email)
}

func TestUpdateUser_DuplicateUsername(t *testing.T) {
	resetTables(t)
	first := mustUser(t)
	second := mustUser(t)

	_, err := UpdateUser(testDB, second.ID, UpdateUserInput{Username: &first.Username})
	require.Error(t, err)
	e, ok := err.(*errs.Error)
	require.True(t, ok)
	assert.Equal(t, errs.CodeDuplicateEntity, e.Code)
}

func TestDeleteUser_CascadesRelations(t *testing.T) {
	resetTables(t)
	user := mustUser(t)
	competition := mustCompetition(t)
	team := mustTeam(t, competition.ID, user.ID)

	_, err := AddUserToCompetition(testDB, user.ID, competition.ID)
	require.NoError(t, err)
	_, err = AddUserToTeam(testDB, user.ID, team.ID)
	require.NoError(t, err)

	require.NoError(t, DeleteUser(testDB, user.ID))

	_, err = GetUser(testDB, user.ID)
	require.Error(t, err)

	// Memberships and the created team are gone with the user.
	assert.EqualValues(t, 0, countRows(t, &models.UserCompetition{}, "user_id = ?", user.ID))
	assert.EqualValues(t, 0, countRows(t, &models.UserTeam{}, "user_id = ?", user.ID))
	_, err = GetTeam(testDB, team.ID)
	require.Error(t, err)

	// The competition itself survives.
	_, err = GetCompetition(testDB, competition.ID)
	assert.NoError(t, err)
}
