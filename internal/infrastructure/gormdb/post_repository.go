package gormdb

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/inkpress/inkpress/internal/domain/entity"
	"github.com/inkpress/inkpress/internal/domain/repository"
)

type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

// withRelations preloads what list reads include; single-post reads add the
// comment thread on top.
func (r *PostRepository) withRelations() *gorm.DB {
	return r.db.Preload("Author").Preload("Category").Preload("Tags")
}

func (r *PostRepository) FindAll() ([]entity.Post, error) {
	var posts []entity.Post
	if err := r.withRelations().Find(&posts).Error; err != nil {
		return nil, translate(err)
	}
	return posts, nil
}

func (r *PostRepository) FindPublished() ([]entity.Post, error) {
	var posts []entity.Post
	err := r.withRelations().
		Where("published = ?", true).
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, translate(err)
	}
	return posts, nil
}

func (r *PostRepository) FindByID(id uint) (*entity.Post, error) {
	p := &entity.Post{}
	err := r.withRelations().Preload("Comments.User").First(p, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return p, nil
}

func (r *PostRepository) FindBySlug(slug string) (*entity.Post, error) {
	p := &entity.Post{}
	err := r.withRelations().Preload("Comments.User").Where("slug = ?", slug).First(p).Error
	if err != nil {
		return nil, translate(err)
	}
	return p, nil
}

func (r *PostRepository) FindByAuthor(authorID uint) ([]entity.Post, error) {
	var posts []entity.Post
	if err := r.withRelations().Where("author_id = ?", authorID).Find(&posts).Error; err != nil {
		return nil, translate(err)
	}
	return posts, nil
}

func (r *PostRepository) FindByCategory(categoryID uint) ([]entity.Post, error) {
	var posts []entity.Post
	if err := r.withRelations().Where("category_id = ?", categoryID).Find(&posts).Error; err != nil {
		return nil, translate(err)
	}
	return posts, nil
}

func (r *PostRepository) Create(p *entity.Post) error {
	return translate(r.db.Omit(clause.Associations).Create(p).Error)
}

// Update writes the post row only; preloaded associations must never be
// upserted as a side effect. The views column is owned by IncrementViews, so
// it is omitted here too: saving a stale snapshot must not roll the counter
// back.
func (r *PostRepository) Update(p *entity.Post) error {
	return translate(r.db.Omit(clause.Associations, "views").Save(p).Error)
}

func (r *PostRepository) Delete(id uint) error {
	res := r.db.Delete(&entity.Post{}, id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// IncrementViews bumps the counter in a single UPDATE expression; the store's
// atomicity is what makes concurrent reads lose no increments.
func (r *PostRepository) IncrementViews(id uint) error {
	return translate(r.db.Model(&entity.Post{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1)).Error)
}

var _ repository.PostRepository = (*PostRepository)(nil)
