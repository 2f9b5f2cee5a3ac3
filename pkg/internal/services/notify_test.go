package services_test

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"

	"github.com/tripmates/messaging/pkg/internal/models"
	"github.com/tripmates/messaging/pkg/internal/services"
)

func member(id uint, accountId uint, notify models.NotifyLevel) models.ChannelMember {
	return models.ChannelMember{
		BaseModel: models.BaseModel{ID: id},
		AccountID: accountId,
		Notify:    notify,
	}
}

func TestPickNotifiableSkipsSender(t *testing.T) {
	members := []models.ChannelMember{
		member(1, 10, models.NotifyLevelAll),
		member(2, 20, models.NotifyLevelAll),
	}

	got := services.PickNotifiable(members, 1, nil)
	assert.Equal(t, []uint{20}, lo.Map(got, func(m models.ChannelMember, _ int) uint {
		return m.AccountID
	}))
}

func TestPickNotifiableHonorsMuted(t *testing.T) {
	members := []models.ChannelMember{
		member(1, 10, models.NotifyLevelNone),
		member(2, 20, models.NotifyLevelAll),
	}

	got := services.PickNotifiable(members, 99, nil)
	assert.Len(t, got, 1)
	assert.Equal(t, uint(20), got[0].AccountID)
}

func TestPickNotifiableMentionedOnly(t *testing.T) {
	members := []models.ChannelMember{
		member(1, 10, models.NotifyLevelMentioned),
		member(2, 20, models.NotifyLevelMentioned),
	}

	got := services.PickNotifiable(members, 99, []uint{20})
	assert.Len(t, got, 1)
	assert.Equal(t, uint(20), got[0].AccountID)

	assert.Empty(t, services.PickNotifiable(members, 99, nil))
}
