package models

// Comment is immutable once created and only disappears as a cascade of its
// post or author being deleted.
type Comment struct {
	BaseModel

	Text string `json:"text" gorm:"type:text"`

	PostID uint `json:"post_id"`
	Post   Post `json:"-" gorm:"constraint:OnDelete:CASCADE"`

	AuthorID uint    `json:"author_id"`
	Author   Account `json:"author" gorm:"constraint:OnDelete:CASCADE"`
}
