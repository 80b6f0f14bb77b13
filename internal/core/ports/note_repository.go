package ports

import (
	"context"

	"github.com/notesapp/notes-api/internal/core/domain"
)

// NoteRepository defines the persistence operations for notes.
type NoteRepository interface {
	Create(ctx context.Context, note *domain.Note) error
	FindByID(ctx context.Context, id string) (*domain.Note, error)
	// FindByUserID returns the user's notes ordered newest-first.
	FindByUserID(ctx context.Context, userID string) ([]domain.Note, error)
	Update(ctx context.Context, id, title, content string) error
	Delete(ctx context.Context, id string) error
	// BelongsTo reports whether the note exists and is owned by userID.
	BelongsTo(ctx context.Context, noteID, userID string) (bool, error)
}
