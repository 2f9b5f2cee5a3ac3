package chatkit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tripmates/messaging/pkg/internal/chatkit"
)

func TestFreshReactionToggle(t *testing.T) {
	ledger := chatkit.Ledger{}

	ledger = ledger.Toggle("m1", chatkit.ReactionLike)
	assert.Equal(t, chatkit.ReactionMark{Count: 1, Reacted: true}, ledger.Mark("m1", chatkit.ReactionLike))

	ledger = ledger.Toggle("m1", chatkit.ReactionLike)
	assert.Equal(t, chatkit.ReactionMark{Count: 0, Reacted: false}, ledger.Mark("m1", chatkit.ReactionLike))
}

func TestDoubleToggleIsIdentity(t *testing.T) {
	start := chatkit.Ledger{}
	start = start.Toggle("m1", chatkit.ReactionLove)
	start = start.Toggle("m2", chatkit.ReactionQuestion)

	end := start.Toggle("m1", chatkit.ReactionDislike).Toggle("m1", chatkit.ReactionDislike)

	for _, kind := range []chatkit.ReactionKind{
		chatkit.ReactionLike, chatkit.ReactionLove, chatkit.ReactionDislike, chatkit.ReactionQuestion,
	} {
		assert.Equal(t, start.Mark("m1", kind), end.Mark("m1", kind))
		assert.Equal(t, start.Mark("m2", kind), end.Mark("m2", kind))
	}
}

func TestToggleDoesNotMutateReceiver(t *testing.T) {
	ledger := chatkit.Ledger{}.Toggle("m1", chatkit.ReactionLike)
	_ = ledger.Toggle("m1", chatkit.ReactionLike)

	assert.Equal(t, chatkit.ReactionMark{Count: 1, Reacted: true}, ledger.Mark("m1", chatkit.ReactionLike))
}

func TestToggleKindsAreIndependent(t *testing.T) {
	ledger := chatkit.Ledger{}
	ledger = ledger.Toggle("m1", chatkit.ReactionLike)
	ledger = ledger.Toggle("m1", chatkit.ReactionLove)

	assert.Equal(t, 1, ledger.Mark("m1", chatkit.ReactionLike).Count)
	assert.Equal(t, 1, ledger.Mark("m1", chatkit.ReactionLove).Count)
	assert.Equal(t, 0, ledger.Mark("m1", chatkit.ReactionDislike).Count)
}

func TestIsValidReaction(t *testing.T) {
	assert.True(t, chatkit.IsValidReaction(chatkit.ReactionQuestion))
	assert.False(t, chatkit.IsValidReaction("thumbsdown"))
}
