package entity

import "time"

// Post is the central aggregate. Slug is derived from Title and unique.
// Views only ever grows, incremented atomically by the store on the
// get-by-slug read path.
type Post struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Title         string    `gorm:"not null" json:"title"`
	Slug          string    `gorm:"uniqueIndex;not null" json:"slug"`
	Content       string    `gorm:"type:text;not null" json:"content"`
	Excerpt       string    `gorm:"type:text" json:"excerpt"`
	Published     bool      `gorm:"not null;default:false" json:"published"`
	FeaturedImage string    `json:"featuredImage"`
	Views         uint      `gorm:"not null;default:0" json:"views"`
	AuthorID      uint      `gorm:"not null;index" json:"authorId"`
	CategoryID    uint      `gorm:"not null;index" json:"categoryId"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`

	Author   *User     `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Comments []Comment `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"comments,omitempty"`
	Tags     []Tag     `gorm:"many2many:post_tags;constraint:OnDelete:CASCADE" json:"tags,omitempty"`
}
