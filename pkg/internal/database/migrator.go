package database

import (
	"github.com/tripmates/messaging/pkg/internal/models"
	"gorm.io/gorm"
)

var AutoMaintainRange = []any{
	&models.Account{},
	&models.Trip{},
	&models.Channel{},
	&models.ChannelMember{},
	&models.Message{},
	&models.Reaction{},
	&models.Notification{},
}

func RunMigration(source *gorm.DB) error {
	if err := source.AutoMigrate(AutoMaintainRange...); err != nil {
		return err
	}

	return nil
}
