package ports

import (
	"context"

	"github.com/notesapp/notes-api/internal/core/domain"
)

// UserRepository defines the persistence operations for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// Delete removes the account; the schema cascades the delete to the
	// user's notes.
	Delete(ctx context.Context, id string) error
}
