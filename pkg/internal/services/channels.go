package services

import (
	"context"
	"fmt"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/marshaler"
	"github.com/eko/gocache/lib/v4/store"
	"github.com/rs/zerolog/log"

	localCache "github.com/tripmates/messaging/pkg/internal/cache"
	"github.com/tripmates/messaging/pkg/internal/chatkit"
	"github.com/tripmates/messaging/pkg/internal/database"
	"github.com/tripmates/messaging/pkg/internal/models"
)

// Role channel creation is advised against below this roster size, but the
// threshold is advisory only and never blocks the call.
const RoleChannelAdvisedMembers = 3

type channelIdentityCacheEntry struct {
	Channel models.Channel
	Member  models.ChannelMember
}

func GetChannelIdentityCacheKey(alias string, user uint) string {
	return fmt.Sprintf("channel-identity-%s#%d", alias, user)
}

func CacheChannelIdentity(channel models.Channel, member models.ChannelMember, user uint) {
	cacheManager := cache.New[any](localCache.S)
	marshal := marshaler.New(cacheManager)
	contx := context.Background()

	_ = marshal.Set(
		contx,
		GetChannelIdentityCacheKey(channel.Alias, user),
		channelIdentityCacheEntry{channel, member},
		store.WithTags([]string{"channel-identity", fmt.Sprintf("channel#%d", channel.ID), fmt.Sprintf("user#%d", user)}),
	)
}

func FlushChannelIdentityCache(channelId uint, user uint) {
	cacheManager := cache.New[any](localCache.S)
	contx := context.Background()

	_ = cacheManager.Invalidate(
		contx,
		store.WithInvalidateTags([]string{fmt.Sprintf("channel#%d", channelId), fmt.Sprintf("user#%d", user)}),
	)
}

// GetChannelIdentity resolves a channel alias plus the caller's membership
// in one go, backed by the identity cache on the hot read path.
func GetChannelIdentity(alias string, user models.Account) (models.Channel, models.ChannelMember, error) {
	cacheManager := cache.New[any](localCache.S)
	marshal := marshaler.New(cacheManager)
	contx := context.Background()

	if val, err := marshal.Get(contx, GetChannelIdentityCacheKey(alias, user.ID), new(channelIdentityCacheEntry)); err == nil {
		entry := val.(*channelIdentityCacheEntry)
		return entry.Channel, entry.Member, nil
	}

	channel, err := GetChannelWithAlias(alias)
	if err != nil {
		return channel, models.ChannelMember{}, err
	}

	member, err := GetChannelMember(user, channel.ID)
	if err != nil {
		return channel, member, fmt.Errorf("channel member not found: %v", err)
	}

	CacheChannelIdentity(channel, member, user.ID)

	return channel, member, nil
}

func GetChannelWithAlias(alias string, tripId ...uint) (models.Channel, error) {
	var channel models.Channel
	tx := database.C.Where(models.Channel{Alias: alias}).Preload("Trip")
	if len(tripId) > 0 {
		tx = tx.Where("trip_id = ?", tripId[0])
	}
	if err := tx.First(&channel).Error; err != nil {
		return channel, err
	}
	return channel, nil
}

func ListChannel(tripId ...uint) ([]models.Channel, error) {
	var channels []models.Channel
	tx := database.C.Preload("Trip")
	if len(tripId) > 0 {
		tx = tx.Where("trip_id = ?", tripId[0])
	}
	if err := tx.Find(&channels).Error; err != nil {
		return channels, err
	}
	return channels, nil
}

func ListOwnedChannel(user models.Account) ([]models.Channel, error) {
	var channels []models.Channel
	if err := database.C.Where(models.Channel{AccountID: user.ID}).Find(&channels).Error; err != nil {
		return channels, err
	}
	return channels, nil
}

func ListAvailableChannel(user models.Account) ([]models.Channel, error) {
	var channels []models.Channel
	if err := database.C.
		Joins("JOIN channel_members ON channel_members.channel_id = channels.id").
		Where("channel_members.account_id = ? AND channel_members.deleted_at IS NULL", user.ID).
		Find(&channels).Error; err != nil {
		return channels, err
	}
	return channels, nil
}

// CheckChannelVisible gates role-scoped channels with the caller's grant
// set. Common channels are always visible.
func CheckChannelVisible(channel models.Channel, user models.Account) bool {
	if channel.Type != models.ChannelTypeRole {
		return true
	}
	return chatkit.GrantsFor(user.Role, user.IsAdmin).CanAccessRole(channel.RoleName)
}

func NewChannel(channel models.Channel, founder models.Account) (models.Channel, error) {
	if channel.Type == models.ChannelTypeRole {
		var peers int64
		database.C.Model(&models.Account{}).Where("role = ?", channel.RoleName).Count(&peers)
		if peers < RoleChannelAdvisedMembers {
			log.Warn().
				Str("role", channel.RoleName).
				Int64("peers", peers).
				Msg("Creating a role channel below the advised member count...")
		}
	}

	if err := database.C.Save(&channel).Error; err != nil {
		return channel, err
	}

	avatar := founder.Avatar
	if len(avatar) == 0 {
		avatar = chatkit.ResolveAvatar(founder.Nick)
	}

	member := models.ChannelMember{
		ChannelID:  channel.ID,
		AccountID:  founder.ID,
		Nick:       founder.Nick,
		Avatar:     avatar,
		PowerLevel: 100,
	}
	if err := database.C.Save(&member).Error; err != nil {
		return channel, err
	}

	return channel, nil
}

func EditChannel(channel models.Channel) (models.Channel, error) {
	if err := database.C.Save(&channel).Error; err != nil {
		return channel, err
	}

	cacheManager := cache.New[any](localCache.S)
	_ = cacheManager.Invalidate(
		context.Background(),
		store.WithInvalidateTags([]string{fmt.Sprintf("channel#%d", channel.ID)}),
	)

	return channel, nil
}

func DeleteChannel(channel models.Channel) error {
	if err := database.C.Delete(&channel).Error; err != nil {
		return err
	}

	database.C.Where(models.ChannelMember{ChannelID: channel.ID}).Delete(&models.ChannelMember{})
	UnsubscribeAllWithChannels(channel.ID)

	cacheManager := cache.New[any](localCache.S)
	_ = cacheManager.Invalidate(
		context.Background(),
		store.WithInvalidateTags([]string{fmt.Sprintf("channel#%d", channel.ID)}),
	)

	return nil
}
