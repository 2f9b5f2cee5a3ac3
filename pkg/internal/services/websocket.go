package services

import (
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/samber/lo"

	"github.com/tripmates/messaging/pkg/internal/chatkit"
	"github.com/tripmates/messaging/pkg/internal/models"
)

var wsConn = make(map[uint][]*websocket.Conn)
var wsLock sync.Mutex

func ClientRegister(user models.Account, conn *websocket.Conn) {
	wsLock.Lock()
	defer wsLock.Unlock()
	wsConn[user.ID] = append(wsConn[user.ID], conn)
}

func ClientUnregister(user models.Account, conn *websocket.Conn) {
	wsLock.Lock()
	defer wsLock.Unlock()
	wsConn[user.ID] = lo.Filter(wsConn[user.ID], func(item *websocket.Conn, index int) bool {
		return item != conn
	})
}

func CheckOnline(userId uint) bool {
	wsLock.Lock()
	defer wsLock.Unlock()
	return len(wsConn[userId]) > 0
}

func PushCommand(userId uint, task models.UnifiedCommand) {
	wsLock.Lock()
	conns := wsConn[userId]
	wsLock.Unlock()

	for _, conn := range conns {
		_ = conn.WriteMessage(websocket.TextMessage, task.Marshal())
	}
}

func PushCommandBatch(userId []uint, task models.UnifiedCommand) {
	for _, id := range userId {
		PushCommand(id, task)
	}
}

// DealCommand dispatches one inbound gateway frame. Errors go back to the
// sender as error frames, never as closed connections.
func DealCommand(task models.UnifiedCommand, user models.Account, clientId string) *models.UnifiedCommand {
	switch task.Action {
	case "messages.send":
		var req struct {
			Channel string `json:"channel"`
			Text    string `json:"text"`
		}
		models.FitStruct(task.Payload, &req)

		channel, member, err := GetChannelIdentity(req.Channel, user)
		if err != nil {
			return lo.ToPtr(models.UnifiedCommandFromError(err))
		}

		session := GetComposerSession(channel, member)
		session.SetText(req.Text)
		if _, err = SendDraft(channel, member, chatkit.SendOptions{}); err != nil {
			return lo.ToPtr(models.UnifiedCommandFromError(err))
		}
		return nil
	case "messages.history":
		var req struct {
			Channel string `json:"channel"`
			Take    int    `json:"take"`
		}
		models.FitStruct(task.Payload, &req)
		if req.Take <= 0 {
			req.Take = 50
		}

		channel, member, err := GetChannelIdentity(req.Channel, user)
		if err != nil {
			return lo.ToPtr(models.UnifiedCommandFromError(err))
		}

		messages, err := ListMessage(channel, chatkit.FilterAll, req.Take, 0)
		if err != nil {
			return lo.ToPtr(models.UnifiedCommandFromError(err))
		}

		// The viewer's active filter is applied over the loaded window.
		session := GetComposerSession(channel, member)
		views := lo.Map(messages, func(item models.Message, index int) chatkit.Message {
			return ToComposedView(item)
		})

		return &models.UnifiedCommand{
			Action:  "messages.history",
			Payload: chatkit.FilterMessages(views, session.Filter()),
		}
	case "channels.subscribe":
		var req struct {
			Channel string `json:"channel"`
		}
		models.FitStruct(task.Payload, &req)

		channel, _, err := GetChannelIdentity(req.Channel, user)
		if err != nil {
			return lo.ToPtr(models.UnifiedCommandFromError(err))
		}

		SubscribeChannel(user.ID, channel.ID, clientId)
		return nil
	case "channels.unsubscribe":
		var req struct {
			Channel string `json:"channel"`
		}
		models.FitStruct(task.Payload, &req)

		channel, _, err := GetChannelIdentity(req.Channel, user)
		if err != nil {
			return lo.ToPtr(models.UnifiedCommandFromError(err))
		}

		UnsubscribeChannel(user.ID, channel.ID)
		return nil
	default:
		return &models.UnifiedCommand{
			Action:  "error",
			Message: "command not found",
		}
	}
}
