package application

import (
	"errors"

	"github.com/inkpress/inkpress/internal/domain/entity"
	repo "github.com/inkpress/inkpress/internal/domain/repository"
	"github.com/inkpress/inkpress/pkg/apperror"
	"github.com/inkpress/inkpress/pkg/slug"
)

type CategoryService struct {
	Categories repo.CategoryRepository
}

func NewCategoryService(categories repo.CategoryRepository) *CategoryService {
	return &CategoryService{Categories: categories}
}

func (s *CategoryService) List() ([]entity.Category, error) {
	return s.Categories.FindAll()
}

func (s *CategoryService) Get(id uint) (*entity.Category, error) {
	c, err := s.Categories.FindByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, apperror.NotFound("category not found")
		}
		return nil, err
	}
	return c, nil
}

func (s *CategoryService) GetBySlug(sl string) (*entity.Category, error) {
	c, err := s.Categories.FindBySlug(sl)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, apperror.NotFound("category not found")
		}
		return nil, err
	}
	return c, nil
}

type CreateCategoryInput struct {
	Name        string
	Description string
}

func (s *CategoryService) Create(in CreateCategoryInput) (*entity.Category, error) {
	sl := slug.Make(in.Name)
	if _, err := s.Categories.FindBySlug(sl); err == nil {
		return nil, apperror.Conflict("a category with a similar name already exists")
	} else if !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}
	c := &entity.Category{Name: in.Name, Slug: sl, Description: in.Description}
	if err := s.Categories.Create(c); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			// the slug pre-check is advisory; the unique index decides
			return nil, apperror.Conflict("a category with a similar name already exists")
		}
		return nil, err
	}
	return c, nil
}

type UpdateCategoryInput struct {
	Name        *string
	Description *string
}

func (s *CategoryService) Update(id uint, in UpdateCategoryInput) (*entity.Category, error) {
	c, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		c.Name = *in.Name
		// regenerate the slug only when the derived value actually changes
		if newSlug := slug.Make(*in.Name); newSlug != c.Slug {
			other, err := s.Categories.FindBySlug(newSlug)
			if err == nil && other.ID != id {
				return nil, apperror.Conflict("a category with a similar name already exists")
			}
			if err != nil && !errors.Is(err, repo.ErrNotFound) {
				return nil, err
			}
			c.Slug = newSlug
		}
	}
	if in.Description != nil {
		c.Description = *in.Description
	}
	if err := s.Categories.Update(c); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, apperror.Conflict("a category with a similar name already exists")
		}
		return nil, err
	}
	return c, nil
}

// Delete is not pre-checked against child posts: the store's RESTRICT
// constraint is the source of truth and its rejection maps to Conflict.
func (s *CategoryService) Delete(id uint) error {
	err := s.Categories.Delete(id)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repo.ErrNotFound):
		return apperror.NotFound("category not found")
	case errors.Is(err, repo.ErrRestricted):
		return apperror.Conflict("cannot delete this category because it has associated posts")
	default:
		return err
	}
}
