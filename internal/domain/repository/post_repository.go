package repository

import "github.com/inkpress/inkpress/internal/domain/entity"

// PostRepository defines post persistence. IncrementViews must be atomic in
// the store; concurrent readers may not lose updates.
type PostRepository interface {
	FindAll() ([]entity.Post, error)
	FindPublished() ([]entity.Post, error)
	FindByID(id uint) (*entity.Post, error)
	FindBySlug(slug string) (*entity.Post, error)
	FindByAuthor(authorID uint) ([]entity.Post, error)
	FindByCategory(categoryID uint) ([]entity.Post, error)
	Create(p *entity.Post) error
	Update(p *entity.Post) error
	Delete(id uint) error
	IncrementViews(id uint) error
}
