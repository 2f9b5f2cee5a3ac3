package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripmates/messaging/pkg/internal/auth"
)

func TestTokenRoundTrip(t *testing.T) {
	raw, err := auth.NewToken(auth.Claims{
		Name:   "alice",
		Nick:   "Alice",
		Role:   "Security",
		Avatar: "avatars/alice.png",
	}, "top-secret")
	require.NoError(t, err)

	claims, err := auth.ParseTokenWithSecret(raw, "top-secret")
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Name)
	assert.Equal(t, "Security", claims.Role)
	assert.False(t, claims.IsAdmin)
}

func TestTokenRejectsWrongSecret(t *testing.T) {
	raw, err := auth.NewToken(auth.Claims{Name: "alice"}, "top-secret")
	require.NoError(t, err)

	_, err = auth.ParseTokenWithSecret(raw, "other-secret")
	assert.Error(t, err)
}
