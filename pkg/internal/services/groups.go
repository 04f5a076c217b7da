package services

import (
	"fmt"

	"github.com/emberlight/chronicle/pkg/internal/models"
	"gorm.io/gorm"
)

func ListGroup(tx *gorm.DB, take int, offset int) ([]models.Group, error) {
	var groups []models.Group
	err := tx.Offset(offset).Limit(take).Order("title ASC").Find(&groups).Error

	return groups, err
}

func GetGroup(tx *gorm.DB, slug string) (models.Group, error) {
	var group models.Group
	if err := tx.Where("slug = ?", slug).First(&group).Error; err != nil {
		return group, err
	}
	return group, nil
}

func NewGroup(tx *gorm.DB, slug, title, description string) (models.Group, error) {
	group := models.Group{
		Slug:        slug,
		Title:       title,
		Description: description,
	}

	err := tx.Save(&group).Error

	return group, err
}

func EditGroup(tx *gorm.DB, group models.Group, title, description string) (models.Group, error) {
	group.Title = title
	group.Description = description

	err := tx.Save(&group).Error

	return group, err
}

// DeleteGroup orphans the group's posts instead of deleting them; their
// group reference is nulled in the same transaction.
func DeleteGroup(tx *gorm.DB, group models.Group) error {
	return tx.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Post{}).
			Where("group_id = ?", group.ID).
			Update("group_id", nil).Error; err != nil {
			return fmt.Errorf("unable to detach group posts: %v", err)
		}
		return tx.Delete(&group).Error
	})
}
