package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/notesapp/notes-api/internal/core/domain"
	"github.com/notesapp/notes-api/internal/core/ports"
)

// NoteService implements note CRUD with per-row ownership checks.
type NoteService struct {
	notes  ports.NoteRepository
	logger zerolog.Logger
}

func NewNoteService(notes ports.NoteRepository, logger zerolog.Logger) *NoteService {
	return &NoteService{notes: notes, logger: logger}
}

func (s *NoteService) Create(ctx context.Context, input ports.CreateNoteInput, owner *domain.User) (*domain.Note, error) {
	now := time.Now().UTC()
	note := &domain.Note{
		ID:        uuid.NewString(),
		UserID:    owner.ID,
		Title:     input.Title,
		Content:   input.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.notes.Create(ctx, note); err != nil {
		return nil, err
	}

	s.logger.Debug().Str("note_id", note.ID).Str("user_id", owner.ID).Msg("note created")
	return note, nil
}

func (s *NoteService) List(ctx context.Context, owner *domain.User) ([]domain.Note, error) {
	return s.notes.FindByUserID(ctx, owner.ID)
}

func (s *NoteService) Get(ctx context.Context, id string, owner *domain.User) (*domain.Note, error) {
	return s.fetchOwned(ctx, id, owner)
}

// Update overwrites only the fields present in the patch, then re-reads the
// row so the response reflects the stored state. Concurrent updates by the
// same owner are last-write-wins.
func (s *NoteService) Update(ctx context.Context, id string, input ports.UpdateNoteInput, owner *domain.User) (*domain.Note, error) {
	note, err := s.fetchOwned(ctx, id, owner)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		note.Title = *input.Title
	}
	if input.Content != nil {
		note.Content = *input.Content
	}

	if err := s.notes.Update(ctx, id, note.Title, note.Content); err != nil {
		return nil, err
	}

	return s.notes.FindByID(ctx, id)
}

func (s *NoteService) Delete(ctx context.Context, id string, owner *domain.User) error {
	if _, err := s.fetchOwned(ctx, id, owner); err != nil {
		return err
	}

	// Re-verify ownership against the store at delete time.
	owned, err := s.notes.BelongsTo(ctx, id, owner.ID)
	if err != nil {
		return err
	}
	if !owned {
		return domain.ErrNoteForbidden
	}

	s.logger.Info().Str("note_id", id).Str("user_id", owner.ID).Msg("note deleted")
	return s.notes.Delete(ctx, id)
}

// fetchOwned loads the note and enforces the existence/ownership split:
// absent notes are ErrNoteNotFound, someone else's are ErrNoteForbidden.
func (s *NoteService) fetchOwned(ctx context.Context, id string, owner *domain.User) (*domain.Note, error) {
	note, err := s.notes.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if note.UserID != owner.ID {
		return nil, domain.ErrNoteForbidden
	}

	return note, nil
}
