package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := NewService("test-secret", 60)

	token, err := svc.GenerateToken("sess-1", "ana@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	sessionID, email, err := svc.ParseSessionContext(token)
	require.NoError(t, err)
	require.Equal(t, "sess-1", sessionID)
	require.Equal(t, "ana@example.com", email)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	token, err := NewService("secret-a", 60).GenerateToken("sess-1", "ana@example.com")
	require.NoError(t, err)

	_, err = NewService("secret-b", 60).ParseToken(token)
	require.Error(t, err)
}

func TestParseRejectsExpired(t *testing.T) {
	token, err := NewService("secret", -1).GenerateToken("sess-1", "ana@example.com")
	require.NoError(t, err)

	_, err = NewService("secret", -1).ParseToken(token)
	require.Error(t, err)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := NewService("secret", 60).ParseToken("not-a-jwt")
	require.Error(t, err)
}
