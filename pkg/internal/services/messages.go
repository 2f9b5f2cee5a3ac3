package services

import (
	"github.com/samber/lo"

	"github.com/tripmates/messaging/pkg/internal/chatkit"
	"github.com/tripmates/messaging/pkg/internal/database"
	"github.com/tripmates/messaging/pkg/internal/models"
)

func EncodeMessageBody(body models.MessageBody) map[string]any {
	var parsed map[string]any
	models.FitStruct(body, &parsed)
	return parsed
}

func DecodeMessageBody(message models.Message) models.MessageBody {
	var body models.MessageBody
	models.FitStruct(message.Body, &body)
	return body
}

// NewMessage persists a composed message and fans it out: a push to every
// member's live connections, notifications for everyone else, and the
// best-effort content parse in the background.
func NewMessage(composed chatkit.Message, channel models.Channel, sender models.ChannelMember) (models.Message, error) {
	message := models.Message{
		Uuid: composed.ID,
		Kind: composed.Kind,
		Body: EncodeMessageBody(models.MessageBody{
			Text:    composed.Text,
			Payment: composed.Payment,
		}),
		Channel:   channel,
		Sender:    sender,
		ChannelID: channel.ID,
		SenderID:  sender.ID,
	}
	if composed.ReplyTo != nil {
		models.FitStruct(composed.ReplyTo, &message.ReplySnapshot)
	}

	if err := database.C.Save(&message).Error; err != nil {
		return message, err
	}

	var members []models.ChannelMember
	if err := database.C.Where(models.ChannelMember{
		ChannelID: channel.ID,
	}).Preload("Account").Find(&members).Error; err != nil {
		// Couldn't load the roster, skip fan-out
		return message, nil
	}

	idxList := lo.Map(members, func(item models.ChannelMember, index int) uint {
		return item.AccountID
	})
	PushCommandBatch(idxList, models.UnifiedCommand{
		Action:  "messages.new",
		Payload: message,
	})

	NotifyMessage(members, channel, message)

	go ParseMessageContent(message.ID)

	return message, nil
}

// ToComposedView reprojects a stored row into the composer-facing shape,
// reply snapshot included.
func ToComposedView(message models.Message) chatkit.Message {
	body := DecodeMessageBody(message)

	view := chatkit.Message{
		ID:   message.Uuid,
		Text: body.Text,
		Kind: message.Kind,
		Sender: chatkit.Sender{
			ID:     message.SenderID,
			Name:   message.Sender.Nick,
			Avatar: message.Sender.Avatar,
		},
		Payment:   body.Payment,
		CreatedAt: message.CreatedAt,
	}
	if message.ReplySnapshot != nil {
		var ref chatkit.ReplyRef
		models.FitStruct(message.ReplySnapshot, &ref)
		view.ReplyTo = &ref
	}

	return view
}

// KindForFilter maps a viewer filter onto the kind discriminator. The
// second return is false for filters that match everything. Count and list
// queries both go through this mapping so their scopes can never diverge.
func KindForFilter(filter chatkit.Filter) (chatkit.Kind, bool) {
	switch filter {
	case chatkit.FilterBroadcast:
		return chatkit.KindBroadcast, true
	case chatkit.FilterPayments:
		return chatkit.KindPayment, true
	default:
		return "", false
	}
}

func CountMessage(channel models.Channel, filter chatkit.Filter) int64 {
	tx := database.C.
		Where(models.Message{ChannelID: channel.ID}).
		Model(&models.Message{})
	if kind, ok := KindForFilter(filter); ok {
		tx = tx.Where("kind = ?", kind)
	}

	var count int64
	if err := tx.Count(&count).Error; err != nil {
		return 0
	}
	return count
}

// ListMessage pages through a channel's history, newest first. The filter
// works off the kind discriminator alone.
func ListMessage(channel models.Channel, filter chatkit.Filter, take int, offset int) ([]models.Message, error) {
	if take > 100 {
		take = 100
	}

	tx := database.C.
		Where(models.Message{ChannelID: channel.ID}).
		Order("created_at DESC").
		Preload("Sender").
		Preload("Sender.Account")
	if kind, ok := KindForFilter(filter); ok {
		tx = tx.Where("kind = ?", kind)
	}

	var messages []models.Message
	if err := tx.Limit(take).Offset(offset).Find(&messages).Error; err != nil {
		return messages, err
	}
	return messages, nil
}

func GetMessage(channel models.Channel, id uint) (models.Message, error) {
	var message models.Message
	if err := database.C.
		Where(models.Message{
			BaseModel: models.BaseModel{ID: id},
			ChannelID: channel.ID,
		}).
		Preload("Sender").
		Preload("Sender.Account").
		First(&message).Error; err != nil {
		return message, err
	}
	return message, nil
}

func GetMessageWithPrincipal(channel models.Channel, member models.ChannelMember, id uint) (models.Message, error) {
	var message models.Message
	if err := database.C.Where(models.Message{
		BaseModel: models.BaseModel{ID: id},
		ChannelID: channel.ID,
		SenderID:  member.ID,
	}).First(&message).Error; err != nil {
		return message, err
	}
	return message, nil
}

// DeleteMessage removes a message. Reply snapshots pointing at it stay as
// they were taken; they are copies, not references.
func DeleteMessage(message models.Message) (models.Message, error) {
	if err := database.C.Delete(&message).Error; err != nil {
		return message, err
	}

	var members []models.ChannelMember
	if err := database.C.Where(models.ChannelMember{
		ChannelID: message.ChannelID,
	}).Find(&members).Error; err == nil {
		idxList := lo.Map(members, func(item models.ChannelMember, index int) uint {
			return item.AccountID
		})
		PushCommandBatch(idxList, models.UnifiedCommand{
			Action:  "messages.delete",
			Payload: message.ID,
		})
	}

	return message, nil
}
