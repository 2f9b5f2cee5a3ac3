package models

import jsoniter "github.com/json-iterator/go"

// UnifiedCommand is the frame exchanged over the websocket gateway.
type UnifiedCommand struct {
	Action  string `json:"w"`
	Message string `json:"m"`
	Payload any    `json:"p"`
}

func UnifiedCommandFromError(err error) UnifiedCommand {
	return UnifiedCommand{
		Action:  "error",
		Message: err.Error(),
	}
}

func (v UnifiedCommand) Marshal() []byte {
	data, _ := jsoniter.Marshal(v)
	return data
}
