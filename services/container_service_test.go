package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lycosidae/errs"
	"lycosidae/models"
)

func TestCreateContainer_RoundTrip(t *testing.T) {
	resetTables(t)

	deadline := time.Now().Add(4 * time.Hour).Truncate(time.Second)
	created, err := CreateContainer(testDB, deadline)
	require.NoError(t, err)

	got, err := GetContainer(testDB, created.ID)
	require.NoError(t, err)
	assert.True(t, got.Deadline.Equal(deadline))
}

func TestCreateContainer_PastDeadline(t *testing.T) {
	resetTables(t)

	_, err := CreateContainer(testDB, time.Now().Add(-time.Hour))
	require.Error(t, err)
	e, ok := err.(*errs.Error)
	require.True(t, ok)
	assert.Equal(t, errs.CodeInvalidField, e.Code)
}

func TestUpdateContainer(t *testing.T) {
	resetTables(t)
	container := mustContainer(t)

	deadline := time.Now().Add(8 * time.Hour).Truncate(time.Second)
	updated, err := UpdateContainer(testDB, container.ID, deadline)
	require.NoError(t, err)
	assert.True(t, updated.Deadline.Equal(deadline))

	_, err = UpdateContainer(testDB, container.ID, time.Now().Add(-time.Minute))
	require.Error(t, err)
}

func TestDeleteContainer_CascadesRelations(t *testing.T) {
	resetTables(t)
	container := mustContainer(t)
	competition := mustCompetition(t)

	_, err := AddContainerToCompetition(testDB, container.ID, competition.ID)
	require.NoError(t, err)

	require.NoError(t, DeleteContainer(testDB, container.ID))

	_, err = GetContainer(testDB, container.ID)
	require.Error(t, err)
	assert.EqualValues(t, 0, countRows(t, &models.ContainerCompetition{}, "container_id = ?", container.ID))
}
