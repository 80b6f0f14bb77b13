package ports

import (
	"context"

	"github.com/notesapp/notes-api/internal/core/domain"
)

type CreateNoteInput struct {
	Title   string
	Content string
}

// UpdateNoteInput is a partial patch: nil fields are left untouched.
type UpdateNoteInput struct {
	Title   *string
	Content *string
}

// NoteService implements ownership-checked note CRUD. Every operation that
// takes an id fails with domain.ErrNoteNotFound when the note is absent and
// domain.ErrNoteForbidden when it belongs to a different user.
type NoteService interface {
	Create(ctx context.Context, input CreateNoteInput, owner *domain.User) (*domain.Note, error)
	List(ctx context.Context, owner *domain.User) ([]domain.Note, error)
	Get(ctx context.Context, id string, owner *domain.User) (*domain.Note, error)
	Update(ctx context.Context, id string, input UpdateNoteInput, owner *domain.User) (*domain.Note, error)
	Delete(ctx context.Context, id string, owner *domain.User) error
}
