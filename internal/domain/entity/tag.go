package entity

// Tag labels posts; read-only in this service.
type Tag struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;not null" json:"name"`

	Posts []Post `gorm:"many2many:post_tags" json:"posts,omitempty"`
}
