package entity

import "time"

// Category groups posts. Slug is derived from Name and unique; the FK on
// posts is RESTRICT, so deleting a category that still owns posts fails at
// the store and surfaces as a domain conflict.
type Category struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Slug        string    `gorm:"uniqueIndex;not null" json:"slug"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	Posts []Post `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"posts,omitempty"`
}
