package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/inkpress/inkpress/internal/domain/entity"
	repo "github.com/inkpress/inkpress/internal/domain/repository"
	"github.com/inkpress/inkpress/pkg/apperror"
	"github.com/inkpress/inkpress/pkg/helpers"
)

type UserService struct {
	Users     repo.UserRepository
	GCS       *storage.Client
	GCSBucket string
	Logger    *logrus.Logger
}

func NewUserService(users repo.UserRepository, gcs *storage.Client, gcsBucket string, logger *logrus.Logger) *UserService {
	return &UserService{Users: users, GCS: gcs, GCSBucket: gcsBucket, Logger: logger}
}

func (s *UserService) List() ([]entity.User, error) {
	return s.Users.FindAll()
}

func (s *UserService) Get(id uint) (*entity.User, error) {
	u, err := s.Users.FindByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, apperror.NotFound("user not found")
		}
		return nil, err
	}
	return u, nil
}

// UpdateUserInput uses pointer fields so absent and zero-valued payload
// fields can be told apart.
type UpdateUserInput struct {
	Name     *string
	Email    *string
	Bio      *string
	Avatar   *string
	Password *string
}

func (s *UserService) Update(id uint, in UpdateUserInput) (*entity.User, error) {
	u, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		u.Name = *in.Name
	}
	if in.Email != nil {
		u.Email = *in.Email
	}
	if in.Bio != nil {
		u.Bio = *in.Bio
	}
	if in.Avatar != nil {
		u.Avatar = *in.Avatar
	}
	if in.Password != nil {
		hash, err := helpers.HashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		u.Password = hash
	}
	if err := s.Users.Update(u); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, apperror.Conflict("a user with this email already exists")
		}
		return nil, err
	}
	return u, nil
}

func (s *UserService) Delete(id uint) error {
	err := s.Users.Delete(id)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repo.ErrNotFound):
		return apperror.NotFound("user not found")
	case errors.Is(err, repo.ErrRestricted):
		return apperror.Conflict("cannot delete a user who still has posts")
	default:
		return err
	}
}

// UploadAvatar stores the image in GCS and points the user's avatar at its
// public URL.
func (s *UserService) UploadAvatar(ctx context.Context, id uint, r io.Reader, filename, contentType string) (string, error) {
	u, err := s.Get(id)
	if err != nil {
		return "", err
	}
	if s.GCS == nil || s.GCSBucket == "" {
		return "", apperror.ServerConfig("object storage is not configured")
	}
	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := fmt.Sprintf("avatars/%d/%s%s", u.ID, uuid.NewString(), ext)
	url, err := helpers.UploadObject(ctx, s.GCS, s.GCSBucket, objectPath, contentType, r)
	if err != nil {
		return "", err
	}
	u.Avatar = url
	if err := s.Users.Update(u); err != nil {
		return "", err
	}
	return url, nil
}
