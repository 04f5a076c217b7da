package services

import (
	"github.com/emberlight/chronicle/pkg/internal/models"
	"gorm.io/gorm"
)

// ListComments returns a post's comments in the order they were written.
// The original system ordered them lexicographically by text; that looked
// unintended and was not kept.
func ListComments(tx *gorm.DB, post models.Post) ([]models.Comment, error) {
	var comments []models.Comment
	if err := tx.
		Preload("Author").
		Where("post_id = ?", post.ID).
		Order("created_at ASC, id ASC").
		Find(&comments).Error; err != nil {
		return comments, err
	}

	return comments, nil
}

func CountComments(tx *gorm.DB, post models.Post) (int64, error) {
	var count int64
	err := tx.Model(&models.Comment{}).Where("post_id = ?", post.ID).Count(&count).Error
	return count, err
}

func NewComment(tx *gorm.DB, author models.Account, post models.Post, text string) (models.Comment, error) {
	comment := models.Comment{
		Text:     text,
		PostID:   post.ID,
		AuthorID: author.ID,
	}

	err := tx.Save(&comment).Error

	return comment, err
}
