package models

// Follow is a directed edge meaning user receives author's posts in their
// personal feed. Duplicate and self edges are rejected in the service layer,
// not by a database constraint.
type Follow struct {
	BaseModel

	UserID uint    `json:"user_id" gorm:"index"`
	User   Account `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`

	AuthorID uint    `json:"author_id" gorm:"index"`
	Author   Account `json:"author" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
}
