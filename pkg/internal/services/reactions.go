package services

import (
	"errors"
	"fmt"

	"github.com/samber/lo"
	"gorm.io/gorm"

	"github.com/tripmates/messaging/pkg/internal/chatkit"
	"github.com/tripmates/messaging/pkg/internal/database"
	"github.com/tripmates/messaging/pkg/internal/models"
)

// ToggleReaction flips one member's mark on a message: the first call adds
// the row, a repeated call removes it. The returned view reflects the state
// after the flip.
func ToggleReaction(message models.Message, member models.ChannelMember, kind chatkit.ReactionKind) (models.ReactionView, error) {
	if !chatkit.IsValidReaction(kind) {
		return models.ReactionView{}, fmt.Errorf("unknown reaction kind: %s", kind)
	}

	var reaction models.Reaction
	err := database.C.Where(models.Reaction{
		MessageID: message.ID,
		MemberID:  member.ID,
		Kind:      kind,
	}).First(&reaction).Error

	reacted := false
	if errors.Is(err, gorm.ErrRecordNotFound) {
		reaction = models.Reaction{
			MessageID: message.ID,
			MemberID:  member.ID,
			Kind:      kind,
		}
		if err := database.C.Save(&reaction).Error; err != nil {
			return models.ReactionView{}, err
		}
		reacted = true
	} else if err != nil {
		return models.ReactionView{}, err
	} else {
		// Hard delete so the unique index accepts a future re-toggle.
		if err := database.C.Unscoped().Delete(&reaction).Error; err != nil {
			return models.ReactionView{}, err
		}
	}

	count, err := CountReaction(message.ID, kind)
	if err != nil {
		return models.ReactionView{}, err
	}

	view := models.ReactionView{Kind: kind, Count: count, Reacted: reacted}

	var members []models.ChannelMember
	if err := database.C.Where(models.ChannelMember{
		ChannelID: message.ChannelID,
	}).Find(&members).Error; err == nil {
		idxList := lo.Map(members, func(item models.ChannelMember, index int) uint {
			return item.AccountID
		})
		PushCommandBatch(idxList, models.UnifiedCommand{
			Action: "reactions.update",
			Payload: map[string]any{
				"message_id": message.ID,
				"kind":       kind,
				"count":      count,
			},
		})
	}

	return view, nil
}

func CountReaction(messageId uint, kind chatkit.ReactionKind) (int, error) {
	var count int64
	if err := database.C.Model(&models.Reaction{}).
		Where(models.Reaction{MessageID: messageId, Kind: kind}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}

// ListReactionViews aggregates a message's counters from the viewer's
// perspective, one entry per kind that has at least one mark.
func ListReactionViews(message models.Message, viewer models.ChannelMember) ([]models.ReactionView, error) {
	var reactions []models.Reaction
	if err := database.C.Where(models.Reaction{
		MessageID: message.ID,
	}).Find(&reactions).Error; err != nil {
		return nil, err
	}

	grouped := lo.GroupBy(reactions, func(item models.Reaction) chatkit.ReactionKind {
		return item.Kind
	})

	views := make([]models.ReactionView, 0, len(grouped))
	for _, kind := range []chatkit.ReactionKind{
		chatkit.ReactionLike, chatkit.ReactionLove, chatkit.ReactionDislike, chatkit.ReactionQuestion,
	} {
		rows, ok := grouped[kind]
		if !ok {
			continue
		}
		views = append(views, models.ReactionView{
			Kind:  kind,
			Count: len(rows),
			Reacted: lo.ContainsBy(rows, func(item models.Reaction) bool {
				return item.MemberID == viewer.ID
			}),
		})
	}

	return views, nil
}
