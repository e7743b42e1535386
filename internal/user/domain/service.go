// Package domain defines the business logic for the user service.
package domain

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrEmailExists indicates a registration reused an existing email.
	ErrEmailExists = errors.New("email already exists")
	// ErrUserNotFound is returned when a user cannot be located.
	ErrUserNotFound = errors.New("user not found")
)

// Repository captures persistence operations for users.
type Repository interface {
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByID(ctx context.Context, id string) (bool, error)
	Create(ctx context.Context, user User) error
	Get(ctx context.Context, id string) (*User, error)
}

// Service orchestrates user workflows.
type Service struct {
	repo Repository
}

// NewService constructs a Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// RegisterInput captures the payload from the API layer.
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// Register persists a new user unless the email is already taken.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*Profile, error) {
	exists, err := s.repo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := User{
		ID:           uuid.NewString(),
		Email:        input.Email,
		PasswordHash: string(hash),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	profile := user.ToProfile()
	return &profile, nil
}

// GetProfile fetches the projection for a user id.
func (s *Service) GetProfile(ctx context.Context, id string) (*Profile, error) {
	user, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	profile := user.ToProfile()
	return &profile, nil
}

// Exists reports whether a user id resolves to an account. The activity
// service calls this before accepting a write.
func (s *Service) Exists(ctx context.Context, id string) (bool, error) {
	return s.repo.ExistsByID(ctx, id)
}
