package ports

import (
	"context"

	"github.com/notesapp/notes-api/internal/core/domain"
)

type SignupInput struct {
	Name     string
	Email    string
	Password string
}

// UserService handles account creation and the public user projection.
type UserService interface {
	Signup(ctx context.Context, input SignupInput) (*domain.User, error)
	GetInfo(user *domain.User) *domain.User
}
