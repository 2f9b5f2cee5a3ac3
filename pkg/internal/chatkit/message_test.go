package chatkit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripmates/messaging/pkg/internal/chatkit"
)

func TestComposeRejectsInvalidSplitCount(t *testing.T) {
	for _, split := range []int{0, -1, -10} {
		_, err := chatkit.Compose("", alice, nil, chatkit.SendOptions{Payment: &chatkit.PaymentDetail{
			Description: "Hostel",
			Currency:    "EUR",
			Amount:      120,
			SplitCount:  split,
			Method:      "PayPal",
		}})
		assert.ErrorIs(t, err, chatkit.ErrInvalidSplitCount, "split=%d", split)
		assert.True(t, chatkit.IsRejection(err))
	}
}

func TestPerPersonRoundsToCents(t *testing.T) {
	detail := chatkit.PaymentDetail{Amount: 100, SplitCount: 3}
	assert.InDelta(t, 33.33, detail.PerPerson(), 1e-9)

	detail = chatkit.PaymentDetail{Amount: 0.10, SplitCount: 3}
	assert.InDelta(t, 0.03, detail.PerPerson(), 1e-9)
}

func TestComposeGeneratesUniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for range 64 {
		msg, err := chatkit.Compose("same millisecond", alice, nil, chatkit.SendOptions{})
		require.NoError(t, err)
		assert.False(t, seen[msg.ID], "duplicate message id %s", msg.ID)
		seen[msg.ID] = true
	}
}

func TestComposeBroadcastKind(t *testing.T) {
	msg, err := chatkit.Compose("bus leaves at 9", alice, nil, chatkit.SendOptions{Broadcast: true})
	require.NoError(t, err)
	assert.Equal(t, chatkit.KindBroadcast, msg.Kind)
}

func TestComposeKeepsReplySnapshot(t *testing.T) {
	reply := &chatkit.ReplyRef{ID: "m9", Excerpt: "which terminal?", SenderName: "Noor"}
	msg, err := chatkit.Compose("terminal 2", alice, reply, chatkit.SendOptions{})
	require.NoError(t, err)
	require.NotNil(t, msg.ReplyTo)
	assert.Equal(t, *reply, *msg.ReplyTo)
}
