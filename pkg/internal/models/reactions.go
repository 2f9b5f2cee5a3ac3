package models

import "github.com/tripmates/messaging/pkg/internal/chatkit"

// Reaction is one member's mark on one message. The unique index makes a
// repeated toggle a removal instead of a duplicate row.
type Reaction struct {
	BaseModel

	Kind chatkit.ReactionKind `json:"kind" gorm:"uniqueIndex:idx_reaction_once"`

	Message   Message       `json:"message"`
	Member    ChannelMember `json:"member"`
	MessageID uint          `json:"message_id" gorm:"uniqueIndex:idx_reaction_once"`
	MemberID  uint          `json:"member_id" gorm:"uniqueIndex:idx_reaction_once"`
}

// ReactionView is the aggregated counter for one reaction kind on one
// message, from a single viewer's perspective.
type ReactionView struct {
	Kind    chatkit.ReactionKind `json:"kind"`
	Count   int                  `json:"count"`
	Reacted bool                 `json:"reacted"`
}
