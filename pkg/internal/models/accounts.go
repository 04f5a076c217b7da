package models

// Account is the local projection of an identity managed by the external
// identity provider. Rows are upserted from verified token claims, never
// from user-submitted forms.
type Account struct {
	BaseModel

	Name   string `json:"name" gorm:"uniqueIndex"`
	Nick   string `json:"nick"`
	Avatar string `json:"avatar"`

	Posts []Post `json:"posts,omitempty" gorm:"foreignKey:AuthorID"`
}
