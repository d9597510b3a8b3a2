package repository

import "github.com/inkpress/inkpress/internal/domain/entity"

// UserRepository defines user persistence. FindByEmail is the only read that
// returns the password hash; it exists for credential checks.
type UserRepository interface {
	FindAll() ([]entity.User, error)
	FindByID(id uint) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	Create(u *entity.User) error
	Update(u *entity.User) error
	Delete(id uint) error
}
