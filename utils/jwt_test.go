package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lycosidae/models"
)

func TestJWTManager_RoundTrip(t *testing.T) {
	jm := NewJWTManager("test-secret", time.Hour)
	user := &models.User{ID: "11111111-1111-1111-1111-111111111111", Username: "alice", Email: "alice@example.com"}

	token, err := jm.GenerateToken(user)
	require.NoError(t, err)

	claims, err := jm.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "alice@example.com", claims.Email)
}

func TestJWTManager_RejectsWrongSecret(t *testing.T) {
	jm := NewJWTManager("test-secret", time.Hour)
	other := NewJWTManager("other-secret", time.Hour)

	token, err := jm.GenerateToken(&models.User{ID: "id", Username: "bob"})
	require.NoError(t, err)

	_, err = other.ParseToken(token)
	assert.Error(t, err)
}

func TestJWTManager_RejectsExpiredToken(t *testing.T) {
	jm := NewJWTManager("test-secret", -time.Minute)

	token, err := jm.GenerateToken(&models.User{ID: "id", Username: "carol"})
	require.NoError(t, err)

	_, err = jm.ParseToken(token)
	assert.Error(t, err)
}
