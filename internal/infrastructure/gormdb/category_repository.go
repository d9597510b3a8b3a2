package gormdb

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/inkpress/inkpress/internal/domain/entity"
	"github.com/inkpress/inkpress/internal/domain/repository"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) FindAll() ([]entity.Category, error) {
	var cats []entity.Category
	if err := r.db.Find(&cats).Error; err != nil {
		return nil, translate(err)
	}
	return cats, nil
}

func (r *CategoryRepository) FindByID(id uint) (*entity.Category, error) {
	c := &entity.Category{}
	if err := r.db.First(c, id).Error; err != nil {
		return nil, translate(err)
	}
	return c, nil
}

func (r *CategoryRepository) FindBySlug(slug string) (*entity.Category, error) {
	c := &entity.Category{}
	if err := r.db.Where("slug = ?", slug).First(c).Error; err != nil {
		return nil, translate(err)
	}
	return c, nil
}

func (r *CategoryRepository) Create(c *entity.Category) error {
	return translate(r.db.Create(c).Error)
}

func (r *CategoryRepository) Update(c *entity.Category) error {
	return translate(r.db.Omit(clause.Associations).Save(c).Error)
}

// Delete relies on the RESTRICT constraint: the store rejects the delete when
// posts still reference the category, which translate surfaces as ErrRestricted.
func (r *CategoryRepository) Delete(id uint) error {
	res := r.db.Delete(&entity.Category{}, id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.CategoryRepository = (*CategoryRepository)(nil)
