package repository

import "github.com/inkpress/inkpress/internal/domain/entity"

type CategoryRepository interface {
	FindAll() ([]entity.Category, error)
	FindByID(id uint) (*entity.Category, error)
	FindBySlug(slug string) (*entity.Category, error)
	Create(c *entity.Category) error
	Update(c *entity.Category) error
	Delete(id uint) error
}
