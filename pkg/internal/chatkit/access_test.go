package chatkit_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tripmates/messaging/pkg/internal/chatkit"
)

func TestRoleMatchIsCaseSensitive(t *testing.T) {
	assert.False(t, chatkit.RoleMatches("Security", "security"))
	assert.True(t, chatkit.RoleMatches("Security", "Security"))
}

func TestGrantsRoleAccess(t *testing.T) {
	g := chatkit.GrantsFor("Logistics", false)

	assert.True(t, g.CanAccessRole("Logistics"))
	assert.False(t, g.CanAccessRole("logistics"))
	assert.False(t, g.CanAccessRole("Security"))
}

func TestAdminEscalation(t *testing.T) {
	g := chatkit.GrantsFor("Logistics", true)

	assert.True(t, g.Has(chatkit.CapabilityAdmin))
	assert.True(t, g.CanAccessRole("Security"), "admins see every role channel")
}

func TestAvatarKnownNames(t *testing.T) {
	assert.Equal(t, "avatars/bot.png", chatkit.ResolveAvatar("TripMate Bot"))
	assert.Equal(t, "avatars/bot.png", chatkit.ResolveAvatar("  TripMate Bot  "))
}

func TestAvatarFallbackIsDeterministic(t *testing.T) {
	first := chatkit.ResolveAvatar("Marisol Vega")
	assert.Equal(t, first, chatkit.ResolveAvatar("Marisol Vega"))
	assert.NotEmpty(t, first)
}

func TestAvatarFallbackNeverPanics(t *testing.T) {
	names := []string{
		"",
		"ÿ",
		strings.Repeat("￿", 64),
		strings.Repeat("overflow the accumulator ", 40),
	}
	for _, name := range names {
		assert.NotPanics(t, func() {
			assert.NotEmpty(t, chatkit.ResolveAvatar(name), "name=%q", name)
		})
	}
}
