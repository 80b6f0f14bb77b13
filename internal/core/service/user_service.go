package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/notesapp/notes-api/internal/core/domain"
	"github.com/notesapp/notes-api/internal/core/ports"
)

// UserService implements account signup and the public projection.
type UserService struct {
	users ports.UserRepository
	auth  ports.AuthService
}

func NewUserService(users ports.UserRepository, auth ports.AuthService) *UserService {
	return &UserService{users: users, auth: auth}
}

func (s *UserService) Signup(ctx context.Context, input ports.SignupInput) (*domain.User, error) {
	exists, err := s.users.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrUserExists
	}

	hash, err := s.auth.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.GetInfo(user), nil
}

// GetInfo returns the public projection of a user: same fields, hash blanked
// so it cannot reach a response even through reflection-based encoders.
func (s *UserService) GetInfo(user *domain.User) *domain.User {
	public := *user
	public.PasswordHash = ""
	return &public
}
