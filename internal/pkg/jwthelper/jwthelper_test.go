package jwthelper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "test-signing-key"

func TestSessionTokenRoundTrip(t *testing.T) {
	token, err := GenerateSessionToken(testKey, "admin@example.com", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseSessionToken(testKey, token)
	require.NoError(t, err)

	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Equal(t, "admin@example.com", claims.Subject)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestParseSessionTokenWrongKey(t *testing.T) {
	token, err := GenerateSessionToken(testKey, "admin@example.com", time.Hour)
	require.NoError(t, err)

	_, err = ParseSessionToken("another-key", token)

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseSessionTokenExpired(t *testing.T) {
	token, err := GenerateSessionToken(testKey, "admin@example.com", -time.Minute)
	require.NoError(t, err)

	_, err = ParseSessionToken(testKey, token)

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseSessionTokenGarbage(t *testing.T) {
	_, err := ParseSessionToken(testKey, "not.a.token")

	assert.ErrorIs(t, err, ErrInvalidToken)
}
