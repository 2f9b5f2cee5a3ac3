package models

import "time"

type Notification struct {
	BaseModel

	Topic  string `json:"topic"`
	Title  string `json:"title"`
	Body   string `json:"body"`
	Avatar string `json:"avatar"`

	AccountID uint       `json:"account_id"`
	ChannelID uint       `json:"channel_id"`
	MessageID uint       `json:"message_id"`
	ReadAt    *time.Time `json:"read_at"`
}
