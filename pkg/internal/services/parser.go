package services

import (
	"regexp"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/tripmates/messaging/pkg/internal/database"
	"github.com/tripmates/messaging/pkg/internal/models"
)

var (
	linkPattern    = regexp.MustCompile(`https?://[^\s]+`)
	mentionPattern = regexp.MustCompile(`@([A-Za-z0-9_]+)`)
)

func ExtractLinks(text string) []string {
	return linkPattern.FindAllString(text, -1)
}

func ExtractMentionNames(text string) []string {
	matches := mentionPattern.FindAllStringSubmatch(text, -1)
	return lo.Uniq(lo.Map(matches, func(item []string, index int) string {
		return item[1]
	}))
}

// ParseMessageContent enriches a stored message with the links and mentions
// found in its text. Best effort and fire-and-forget: failures are logged,
// never retried, and never surface to the sender.
func ParseMessageContent(messageId uint) {
	var message models.Message
	if err := database.C.Where(models.Message{
		BaseModel: models.BaseModel{ID: messageId},
	}).First(&message).Error; err != nil {
		log.Warn().Err(err).Uint("message", messageId).Msg("An error occurred when parsing message content...")
		return
	}

	body := DecodeMessageBody(message)
	if len(body.Text) == 0 {
		return
	}

	body.Links = ExtractLinks(body.Text)
	for _, name := range ExtractMentionNames(body.Text) {
		if account, err := GetAccountWithName(name); err == nil {
			body.Mentions = append(body.Mentions, account.ID)
		}
	}

	if len(body.Links) == 0 && len(body.Mentions) == 0 {
		return
	}

	message.Body = EncodeMessageBody(body)
	if err := database.C.Save(&message).Error; err != nil {
		log.Warn().Err(err).Uint("message", messageId).Msg("An error occurred when saving parsed message content...")
	}
}
