package models

import "fmt"

type ChannelType = uint8

const (
	ChannelTypeCommon = ChannelType(iota)
	ChannelTypeRole
)

type Channel struct {
	BaseModel

	Alias       string          `json:"alias"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Type        ChannelType     `json:"type"`
	RoleName    string          `json:"role_name"`
	Members     []ChannelMember `json:"members"`
	Messages    []Message       `json:"messages"`
	AccountID   uint            `json:"account_id"`
	IsPublic    bool            `json:"is_public"`

	// DisablePayments marks scopes where bill-split sends are not allowed,
	// e.g. single-event channels. Policy only, not a security boundary.
	DisablePayments bool `json:"disable_payments"`

	Trip   *Trip `json:"trip"`
	TripID *uint `json:"trip_id"`
}

func (v Channel) DisplayText() string {
	if v.Type == ChannelTypeRole {
		return fmt.Sprintf("%s (%s)", v.Name, v.RoleName)
	}
	if v.Trip != nil {
		return fmt.Sprintf("%s, %s", v.Name, v.Trip.Name)
	}
	return v.Name
}

type NotifyLevel = int8

const (
	NotifyLevelAll = NotifyLevel(iota)
	NotifyLevelMentioned
	NotifyLevelNone
)

type ChannelMember struct {
	BaseModel

	Nick       string      `json:"nick"`
	Avatar     string      `json:"avatar"`
	Notify     NotifyLevel `json:"notify"`
	PowerLevel int         `json:"power_level"`

	ChannelID uint    `json:"channel_id"`
	AccountID uint    `json:"account_id"`
	Channel   Channel `json:"channel"`
	Account   Account `json:"account"`

	Messages []Message `json:"messages" gorm:"foreignKey:SenderID"`
}
