package models

// Trip scopes a group journey: one roster of travelers, many channels.
type Trip struct {
	BaseModel

	Alias       string `json:"alias" gorm:"uniqueIndex"`
	Name        string `json:"name"`
	Description string `json:"description"`
	AccountID   uint   `json:"account_id"`

	Channels []Channel `json:"channels"`
}
