package models

// Account profiles are carried inside the access token and mirrored here
// for database relations. The role label drives role channel visibility.
type Account struct {
	BaseModel

	Name    string `json:"name" gorm:"uniqueIndex"`
	Nick    string `json:"nick"`
	Avatar  string `json:"avatar"`
	Role    string `json:"role"`
	IsAdmin bool   `json:"is_admin"`

	Channels []ChannelMember `json:"channels" gorm:"foreignKey:AccountID"`
}
