package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/inkpress/inkpress/internal/domain/entity"
	repo "github.com/inkpress/inkpress/internal/domain/repository"
	"github.com/inkpress/inkpress/pkg/apperror"
	"github.com/inkpress/inkpress/pkg/helpers"
	"github.com/inkpress/inkpress/pkg/mailer"
)

// AuthService handles registration and login. Login failures are one
// undifferentiated Unauthorized: unknown email and wrong password must be
// indistinguishable to the caller.
type AuthService struct {
	Users  repo.UserRepository
	JWT    *helpers.JWTManager
	Queue  *helpers.QueuePublisher
	Logger *logrus.Logger
}

func NewAuthService(users repo.UserRepository, jwt *helpers.JWTManager, queue *helpers.QueuePublisher, logger *logrus.Logger) *AuthService {
	return &AuthService{Users: users, JWT: jwt, Queue: queue, Logger: logger}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// AuthResult pairs the account with a freshly issued token.
type AuthResult struct {
	User      *entity.User
	Token     string
	ExpiresAt time.Time
}

func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	if _, err := s.Users.FindByEmail(in.Email); err == nil {
		return nil, apperror.Conflict("a user with this email already exists")
	} else if !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	u := &entity.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: hash,
		Role:     entity.RoleUser,
	}
	if err := s.Users.Create(u); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			// lost the race against a concurrent registration; the unique
			// index on email is the actual guarantee
			return nil, apperror.Conflict("a user with this email already exists")
		}
		return nil, err
	}

	token, exp, err := s.JWT.Generate(u.ID, u.Email, string(u.Role))
	if err != nil {
		return nil, err
	}

	s.enqueueWelcome(ctx, u)
	return &AuthResult{User: u, Token: token, ExpiresAt: exp}, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	u, err := s.Users.FindByEmail(email)
	if err != nil {
		return nil, apperror.Unauthorized("invalid email or password")
	}
	if !helpers.CheckPassword(u.Password, password) {
		return nil, apperror.Unauthorized("invalid email or password")
	}

	token, exp, err := s.JWT.Generate(u.ID, u.Email, string(u.Role))
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: u, Token: token, ExpiresAt: exp}, nil
}

// enqueueWelcome publishes the welcome email job. Best-effort: a broken
// broker never fails a registration.
func (s *AuthService) enqueueWelcome(ctx context.Context, u *entity.User) {
	if s.Queue == nil {
		return
	}
	if err := s.Queue.PublishJSON(ctx, mailer.WelcomeEmail(u.Email, u.Name)); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Warn("failed to enqueue welcome email")
	}
}
