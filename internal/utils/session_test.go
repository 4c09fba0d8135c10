package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestSessionTokenRoundTrip(t *testing.T) {
	tok, err := NewSessionToken(testSecret, 42, 8)
	require.NoError(t, err)
	require.NotEmpty(t, tok.Token)
	assert.WithinDuration(t, time.Now().UTC().Add(8*time.Hour), tok.Exp, time.Minute)

	id, err := ParseSessionToken(testSecret, tok.Token)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), id)
}

func TestParseSessionTokenWrongSecret(t *testing.T) {
	tok, err := NewSessionToken(testSecret, 7, 1)
	require.NoError(t, err)

	_, err = ParseSessionToken("other-secret", tok.Token)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestParseSessionTokenExpired(t *testing.T) {
	claims := jwt.MapClaims{
		"sub": uint64(7),
		"exp": time.Now().UTC().Add(-time.Hour).Unix(),
		"iat": time.Now().UTC().Add(-2 * time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = ParseSessionToken(testSecret, signed)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestParseSessionTokenGarbage(t *testing.T) {
	for _, raw := range []string{"", "not-a-jwt", "a.b.c"} {
		_, err := ParseSessionToken(testSecret, raw)
		assert.ErrorIs(t, err, ErrInvalidSession)
	}
}

func TestParseSessionTokenMissingSubject(t *testing.T) {
	claims := jwt.MapClaims{
		"exp": time.Now().UTC().Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = ParseSessionToken(testSecret, signed)
	assert.ErrorIs(t, err, ErrInvalidSession)
}
