package services

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/tripmates/messaging/pkg/internal/database"
	"github.com/tripmates/messaging/pkg/internal/models"
)

// PickNotifiable selects who should hear about a message: never the sender,
// nobody muted, and mention-only members just when the mention list names
// them.
func PickNotifiable(members []models.ChannelMember, senderId uint, mentions []uint) []models.ChannelMember {
	return lo.Filter(members, func(member models.ChannelMember, index int) bool {
		if member.ID == senderId {
			return false
		}
		switch member.Notify {
		case models.NotifyLevelNone:
			return false
		case models.NotifyLevelMentioned:
			return lo.Contains(mentions, member.AccountID)
		default:
			return true
		}
	})
}

// NotifyMessage fans a new message out as notifications. Subscribed users
// already saw it over the websocket and are skipped. Failures are logged
// and swallowed; the sender never hears about them.
func NotifyMessage(members []models.ChannelMember, channel models.Channel, message models.Message) {
	body := DecodeMessageBody(message)

	displayText := body.Text
	if len(displayText) == 0 {
		displayText = "New message"
	}

	for _, member := range PickNotifiable(members, message.SenderID, body.Mentions) {
		if CheckSubscribed(member.AccountID, channel.ID) {
			continue
		}

		notification := models.Notification{
			Topic:     "messaging.message",
			Title:     fmt.Sprintf("%s in %s", message.Sender.Nick, channel.DisplayText()),
			Body:      displayText,
			Avatar:    message.Sender.Avatar,
			AccountID: member.AccountID,
			ChannelID: channel.ID,
			MessageID: message.ID,
		}

		if err := database.C.Save(&notification).Error; err != nil {
			log.Warn().Err(err).Uint("account", member.AccountID).Msg("An error occurred when saving notification...")
			continue
		}

		PushCommand(member.AccountID, models.UnifiedCommand{
			Action:  "notifications.new",
			Payload: notification,
		})
	}
}

func ListNotification(user models.Account, take int, offset int) ([]models.Notification, error) {
	if take > 100 {
		take = 100
	}

	var notifications []models.Notification
	if err := database.C.
		Where(models.Notification{AccountID: user.ID}).
		Order("created_at DESC").
		Limit(take).Offset(offset).
		Find(&notifications).Error; err != nil {
		return notifications, err
	}
	return notifications, nil
}

func MarkNotificationAllRead(user models.Account) (int64, error) {
	tx := database.C.Model(&models.Notification{}).
		Where("account_id = ? AND read_at IS NULL", user.ID).
		Update("read_at", time.Now())
	return tx.RowsAffected, tx.Error
}
