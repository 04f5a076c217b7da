package services

import (
	"errors"
	"fmt"

	"github.com/emberlight/chronicle/pkg/internal/models"
	"gorm.io/gorm"
)

func GetAccountWithID(tx *gorm.DB, id uint) (models.Account, error) {
	var account models.Account
	if err := tx.Where("id = ?", id).First(&account).Error; err != nil {
		return account, fmt.Errorf("unable to get account by id: %v", err)
	}
	return account, nil
}

func GetAccountWithName(tx *gorm.DB, name string) (models.Account, error) {
	var account models.Account
	if err := tx.Where("name = ?", name).First(&account).Error; err != nil {
		return account, err
	}
	return account, nil
}

// EnsureAccount upserts the local projection of an identity from verified
// token claims. Profile fields follow whatever the identity provider says.
func EnsureAccount(tx *gorm.DB, name, nick, avatar string) (models.Account, error) {
	var account models.Account
	if err := tx.Where("name = ?", name).First(&account).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return account, err
		}
		account = models.Account{
			Name:   name,
			Nick:   nick,
			Avatar: avatar,
		}
		return account, tx.Save(&account).Error
	}

	if account.Nick != nick || account.Avatar != avatar {
		account.Nick = nick
		account.Avatar = avatar
		return account, tx.Save(&account).Error
	}

	return account, nil
}
