package services

import (
	"errors"
	"fmt"

	"github.com/emberlight/chronicle/pkg/internal/models"
	"gorm.io/gorm"
)

func GetFollow(tx *gorm.DB, user models.Account, author models.Account) (*models.Follow, error) {
	var follow models.Follow
	if err := tx.Where("user_id = ? AND author_id = ?", user.ID, author.ID).First(&follow).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("unable to get follow edge: %v", err)
	}
	return &follow, nil
}

func IsFollowing(tx *gorm.DB, user models.Account, author models.Account) (bool, error) {
	follow, err := GetFollow(tx, user, author)
	if err != nil {
		return false, err
	}
	return follow != nil, nil
}

// FollowAuthor is idempotent: following yourself or an already followed
// author silently leaves the edges untouched.
func FollowAuthor(tx *gorm.DB, user models.Account, author models.Account) (models.Follow, error) {
	var follow models.Follow
	if user.ID == author.ID {
		return follow, nil
	}

	if existing, err := GetFollow(tx, user, author); err != nil {
		return follow, err
	} else if existing != nil {
		return *existing, nil
	}

	follow = models.Follow{
		UserID:   user.ID,
		AuthorID: author.ID,
	}

	err := tx.Save(&follow).Error
	return follow, err
}

// UnfollowAuthor removes the exact (user, author) edge. An earlier revision
// looked the edge up by author alone, which deleted another follower's edge
// when an author had several.
func UnfollowAuthor(tx *gorm.DB, user models.Account, author models.Account) error {
	var follow models.Follow
	if err := tx.Where("user_id = ? AND author_id = ?", user.ID, author.ID).First(&follow).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("follow edge does not exist")
		}
		return fmt.Errorf("unable to check follow edge exists or not: %v", err)
	}

	return tx.Delete(&follow).Error
}
