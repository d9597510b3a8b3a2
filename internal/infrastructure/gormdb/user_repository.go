package gormdb

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/inkpress/inkpress/internal/domain/entity"
	"github.com/inkpress/inkpress/internal/domain/repository"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindAll() ([]entity.User, error) {
	var users []entity.User
	if err := r.db.Find(&users).Error; err != nil {
		return nil, translate(err)
	}
	return users, nil
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	u := &entity.User{}
	if err := r.db.First(u, id).Error; err != nil {
		return nil, translate(err)
	}
	return u, nil
}

func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	u := &entity.User{}
	if err := r.db.Where("email = ?", email).First(u).Error; err != nil {
		return nil, translate(err)
	}
	return u, nil
}

func (r *UserRepository) Create(u *entity.User) error {
	return translate(r.db.Create(u).Error)
}

func (r *UserRepository) Update(u *entity.User) error {
	return translate(r.db.Omit(clause.Associations).Save(u).Error)
}

func (r *UserRepository) Delete(id uint) error {
	res := r.db.Delete(&entity.User{}, id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
