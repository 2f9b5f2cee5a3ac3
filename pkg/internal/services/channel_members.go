package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/tripmates/messaging/pkg/internal/chatkit"
	"github.com/tripmates/messaging/pkg/internal/database"
	"github.com/tripmates/messaging/pkg/internal/models"
)

func CountChannelMember(channelId uint) (int64, error) {
	var count int64
	if err := database.C.Where(&models.ChannelMember{
		ChannelID: channelId,
	}).Model(&models.ChannelMember{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func ListChannelMember(channelId uint, take int, offset int) ([]models.ChannelMember, error) {
	var members []models.ChannelMember
	if err := database.C.
		Limit(take).Offset(offset).
		Where(&models.ChannelMember{ChannelID: channelId}).
		Preload("Account").
		Find(&members).Error; err != nil {
		return members, err
	}
	return members, nil
}

func GetChannelMember(user models.Account, channelId uint) (models.ChannelMember, error) {
	var member models.ChannelMember
	if err := database.C.
		Where(&models.ChannelMember{AccountID: user.ID, ChannelID: channelId}).
		Preload("Account").
		First(&member).Error; err != nil {
		return member, err
	}
	return member, nil
}

// AddChannelMember joins a user into a channel. Role-scoped channels check
// the joiner's grant set first; the role label must match exactly, no case
// folding. Joining twice is a no-op.
func AddChannelMember(user models.Account, target models.Channel) (models.ChannelMember, error) {
	var member models.ChannelMember
	if err := database.C.Where(&models.ChannelMember{
		AccountID: user.ID,
		ChannelID: target.ID,
	}).First(&member).Error; err == nil || !errors.Is(err, gorm.ErrRecordNotFound) {
		return member, err
	}

	if target.Type == models.ChannelTypeRole {
		if !chatkit.GrantsFor(user.Role, user.IsAdmin).CanAccessRole(target.RoleName) {
			return member, fmt.Errorf("you need the %s role to join this channel", target.RoleName)
		}
	}

	avatar := user.Avatar
	if len(avatar) == 0 {
		avatar = chatkit.ResolveAvatar(user.Nick)
	}

	member = models.ChannelMember{
		ChannelID: target.ID,
		AccountID: user.ID,
		Nick:      user.Nick,
		Avatar:    avatar,
	}

	if err := database.C.Save(&member).Error; err != nil {
		return member, err
	}

	FlushChannelIdentityCache(target.ID, user.ID)

	return member, nil
}

func EditChannelMember(membership models.ChannelMember) (models.ChannelMember, error) {
	if err := database.C.Save(&membership).Error; err != nil {
		return membership, err
	}

	FlushChannelIdentityCache(membership.ChannelID, membership.AccountID)

	return membership, nil
}

func RemoveChannelMember(member models.ChannelMember, target models.Channel) error {
	if err := database.C.Delete(&member).Error; err != nil {
		return err
	}

	UnsubscribeChannel(member.AccountID, target.ID)
	FlushChannelIdentityCache(target.ID, member.AccountID)

	return nil
}
