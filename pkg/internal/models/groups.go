package models

type Group struct {
	BaseModel

	Slug        string `json:"slug" gorm:"uniqueIndex" validate:"lowercase"`
	Title       string `json:"title" gorm:"size:200"`
	Description string `json:"description"`

	Posts []Post `json:"posts,omitempty" gorm:"foreignKey:GroupID"`
}
