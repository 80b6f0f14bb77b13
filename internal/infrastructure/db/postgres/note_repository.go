package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/notesapp/notes-api/internal/core/domain"
)

// NoteRepository persists notes in the notes table.
type NoteRepository struct {
	db *sql.DB
}

func NewNoteRepository(db *sql.DB) *NoteRepository {
	return &NoteRepository{db: db}
}

func (r *NoteRepository) Create(ctx context.Context, note *domain.Note) error {
	query := `
		INSERT INTO notes (note_id, user_id, note_title, note_content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.ExecContext(ctx, query,
		note.ID, note.UserID, note.Title, note.Content, note.CreatedAt, note.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert note: %w", err)
	}

	return nil
}

func (r *NoteRepository) FindByID(ctx context.Context, id string) (*domain.Note, error) {
	query := `
		SELECT note_id, user_id, note_title, note_content, created_at, updated_at
		FROM notes
		WHERE note_id = $1`

	note := &domain.Note{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&note.ID, &note.UserID, &note.Title, &note.Content, &note.CreatedAt, &note.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNoteNotFound
		}
		return nil, fmt.Errorf("scan note: %w", err)
	}

	return note, nil
}

func (r *NoteRepository) FindByUserID(ctx context.Context, userID string) ([]domain.Note, error) {
	query := `
		SELECT note_id, user_id, note_title, note_content, created_at, updated_at
		FROM notes
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer rows.Close()

	notes := []domain.Note{}
	for rows.Next() {
		var note domain.Note
		if err := rows.Scan(&note.ID, &note.UserID, &note.Title, &note.Content,
			&note.CreatedAt, &note.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}

	return notes, nil
}

func (r *NoteRepository) Update(ctx context.Context, id, title, content string) error {
	query := `
		UPDATE notes
		SET note_title = $2, note_content = $3, updated_at = $4
		WHERE note_id = $1`

	res, err := r.db.ExecContext(ctx, query, id, title, content, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("update note: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNoteNotFound
	}

	return nil
}

func (r *NoteRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM notes WHERE note_id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNoteNotFound
	}

	return nil
}

func (r *NoteRepository) BelongsTo(ctx context.Context, noteID, userID string) (bool, error) {
	var owned bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM notes WHERE note_id = $1 AND user_id = $2)`,
		noteID, userID).Scan(&owned)
	if err != nil {
		return false, fmt.Errorf("note ownership: %w", err)
	}
	return owned, nil
}
