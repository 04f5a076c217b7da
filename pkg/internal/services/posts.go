package services

import (
	"fmt"
	"time"

	"github.com/emberlight/chronicle/pkg/internal/models"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func PreloadPostGeneral(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("Author").
		Preload("Group")
}

func FilterPostWithGroup(tx *gorm.DB, group models.Group) *gorm.DB {
	return tx.Where("group_id = ?", group.ID)
}

func FilterPostWithAuthor(tx *gorm.DB, author models.Account) *gorm.DB {
	return tx.Where("author_id = ?", author.ID)
}

// FilterPostWithFollowed narrows the feed down to posts whose author appears
// in the user's outbound follow edges. A user following nobody gets an empty
// feed rather than an error.
func FilterPostWithFollowed(tx *gorm.DB, user models.Account) *gorm.DB {
	followed := tx.Session(&gorm.Session{NewDB: true}).
		Model(&models.Follow{}).
		Select("author_id").
		Where("user_id = ?", user.ID)
	return tx.Where("author_id IN (?)", followed)
}

func GetPost(tx *gorm.DB, id uint) (models.Post, error) {
	var item models.Post
	if err := PreloadPostGeneral(tx).
		Where("id = ?", id).
		First(&item).Error; err != nil {
		return item, err
	}

	return item, nil
}

func CountPost(tx *gorm.DB) (int64, error) {
	var count int64
	if err := tx.Model(&models.Post{}).Count(&count).Error; err != nil {
		return count, err
	}

	return count, nil
}

func ListPost(tx *gorm.DB, take int, offset int, order any) ([]models.Post, error) {
	if take > 100 {
		take = 100
	}

	var items []models.Post
	if err := PreloadPostGeneral(tx).
		Limit(take).Offset(offset).
		Order(order).
		Find(&items).Error; err != nil {
		return items, err
	}

	return items, nil
}

func NewPost(tx *gorm.DB, author models.Account, item models.Post) (models.Post, error) {
	item.AuthorID = author.ID
	item.Language = DetectLanguage(item.Text)

	start := time.Now()
	if err := tx.Save(&item).Error; err != nil {
		return item, err
	}

	log.Debug().Uint("id", item.ID).Dur("elapsed", time.Since(start)).Msg("The post is posted.")
	return item, nil
}

// EditPost persists the columns only. Items usually arrive preloaded, and
// saving the stale Group association would write the old foreign key back
// after the caller detached it.
func EditPost(tx *gorm.DB, item models.Post) (models.Post, error) {
	item.Language = DetectLanguage(item.Text)

	err := tx.Omit(clause.Associations).Save(&item).Error

	return item, err
}

// DeletePost removes the post together with its comments; comments never
// outlive the post they belong to.
func DeletePost(tx *gorm.DB, item models.Post) error {
	return tx.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", item.ID).Delete(&models.Comment{}).Error; err != nil {
			return fmt.Errorf("unable to delete post comments: %v", err)
		}
		return tx.Delete(&item).Error
	})
}
