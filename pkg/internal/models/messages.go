package models

import (
	"gorm.io/datatypes"

	"github.com/tripmates/messaging/pkg/internal/chatkit"
)

type Message struct {
	BaseModel

	Uuid string            `json:"uuid" gorm:"uniqueIndex"`
	Kind chatkit.Kind      `json:"kind"`
	Body datatypes.JSONMap `json:"body"`

	// ReplySnapshot is a denormalized copy of the quoted message, frozen at
	// send time. Deleting the original leaves the snapshot untouched.
	ReplySnapshot datatypes.JSONMap `json:"reply_snapshot"`

	Channel   Channel       `json:"channel"`
	Sender    ChannelMember `json:"sender"`
	ChannelID uint          `json:"channel_id"`
	SenderID  uint          `json:"sender_id"`
}

// MessageBody is the typed shape stored in Message.Body.
type MessageBody struct {
	Text     string                 `json:"text,omitempty"`
	Links    []string               `json:"links,omitempty"`
	Mentions []uint                 `json:"mentions,omitempty"`
	Payment  *chatkit.PaymentDetail `json:"payment,omitempty"`
}
