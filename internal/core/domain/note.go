package domain

import (
	"errors"
	"time"
)

var ErrNoteNotFound = errors.New("note not found")

// ErrNoteForbidden is returned when a note exists but belongs to someone
// else. Kept distinct from ErrNoteNotFound so the API can report 403 vs
// 404 the way the contract documents it.
var ErrNoteForbidden = errors.New("not authorized to access this note")

// Note is a single piece of user content. Content may be empty; Title may not.
type Note struct {
	ID        string    `json:"note_id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"note_title"`
	Content   string    `json:"note_content"`
	CreatedAt time.Time `json:"created_on"`
	UpdatedAt time.Time `json:"last_update"`
}
