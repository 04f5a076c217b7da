package models

import "gorm.io/datatypes"

// PostImage describes an uploaded attachment. The binary itself lives under
// the uploads content path, keyed by filename.
type PostImage struct {
	Path     string `json:"path"`
	MimeType string `json:"mimetype"`
	Size     int64  `json:"size"`
}

type Post struct {
	BaseModel

	Text     string                         `json:"text" gorm:"type:text"`
	Language string                         `json:"language"`
	Image    *datatypes.JSONType[PostImage] `json:"image"`

	AuthorID uint    `json:"author_id"`
	Author   Account `json:"author" gorm:"constraint:OnDelete:CASCADE"`

	// Deleting a group leaves its posts in place with a null reference.
	GroupID *uint  `json:"group_id"`
	Group   *Group `json:"group,omitempty" gorm:"constraint:OnDelete:SET NULL"`

	Comments []Comment `json:"comments,omitempty" gorm:"foreignKey:PostID"`
}
