package chatkit

// ReactionKind enumerates the reactions a viewer can leave on a message.
type ReactionKind = string

const (
	ReactionLike     = ReactionKind("like")
	ReactionLove     = ReactionKind("love")
	ReactionDislike  = ReactionKind("dislike")
	ReactionQuestion = ReactionKind("question")
)

func IsValidReaction(kind ReactionKind) bool {
	switch kind {
	case ReactionLike, ReactionLove, ReactionDislike, ReactionQuestion:
		return true
	}
	return false
}

// ReactionMark is one viewer's view of a single reaction counter.
type ReactionMark struct {
	Count   int  `json:"count"`
	Reacted bool `json:"reacted"`
}

type reactionKey struct {
	MessageID string
	Kind      ReactionKind
}

// Ledger holds per-message reaction counters for one viewer. Entries are
// created lazily on the first toggle and never removed individually.
type Ledger map[reactionKey]ReactionMark

// Mark returns the current counter for a (message, kind) pair, defaulting
// to the zero mark when no entry exists yet.
func (l Ledger) Mark(messageID string, kind ReactionKind) ReactionMark {
	return l[reactionKey{messageID, kind}]
}

// Toggle flips the viewer's reaction and adjusts the counter by exactly one.
// The receiver is left untouched; a new ledger is returned so concurrent
// readers never observe a half-applied update. Counters below zero can only
// come from corrupted input and are clamped back to zero.
func (l Ledger) Toggle(messageID string, kind ReactionKind) Ledger {
	next := make(Ledger, len(l)+1)
	for k, v := range l {
		next[k] = v
	}

	key := reactionKey{messageID, kind}
	mark := next[key]
	if mark.Reacted {
		mark.Reacted = false
		mark.Count--
	} else {
		mark.Reacted = true
		mark.Count++
	}
	if mark.Count < 0 {
		mark.Count = 0
	}
	next[key] = mark
	return next
}
