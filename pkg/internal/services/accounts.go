package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/tripmates/messaging/pkg/internal/chatkit"
	"github.com/tripmates/messaging/pkg/internal/database"
	"github.com/tripmates/messaging/pkg/internal/models"
)

// UpsertAccount refreshes the local mirror of a profile carried in the
// access token. Accounts without an uploaded avatar get a deterministic
// default resolved from their nick.
func UpsertAccount(in models.Account) (models.Account, error) {
	if len(in.Avatar) == 0 {
		in.Avatar = chatkit.ResolveAvatar(in.Nick)
	}

	var account models.Account
	err := database.C.Where(models.Account{Name: in.Name}).First(&account).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		account = in
		return account, database.C.Save(&account).Error
	} else if err != nil {
		return account, err
	}

	account.Nick = in.Nick
	account.Avatar = in.Avatar
	account.Role = in.Role
	account.IsAdmin = in.IsAdmin
	return account, database.C.Save(&account).Error
}

func GetAccount(id uint) (models.Account, error) {
	var account models.Account
	if err := database.C.Where(models.Account{
		BaseModel: models.BaseModel{ID: id},
	}).First(&account).Error; err != nil {
		return account, err
	}
	return account, nil
}

func GetAccountWithName(name string) (models.Account, error) {
	var account models.Account
	if err := database.C.Where(models.Account{Name: name}).First(&account).Error; err != nil {
		return account, err
	}
	return account, nil
}
