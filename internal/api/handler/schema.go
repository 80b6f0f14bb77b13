package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type signupRequest struct {
	UserName  string `json:"user_name"  validate:"required,max=255"`
	UserEmail string `json:"user_email" validate:"required,email"`
	Password  string `json:"password"   validate:"required,min=1"`
}

type signinRequest struct {
	UserEmail string `json:"user_email" validate:"required,email"`
	Password  string `json:"password"   validate:"required"`
}

type createNoteRequest struct {
	NoteTitle   string `json:"note_title" validate:"required,max=255"`
	NoteContent string `json:"note_content"`
}

// updateNoteRequest is a partial patch; absent fields keep their stored value.
type updateNoteRequest struct {
	NoteTitle   *string `json:"note_title"   validate:"omitempty,max=255"`
	NoteContent *string `json:"note_content"`
}

// --- Response types ---
// Owned by the transport layer so the JSON contract is not coupled to
// internal service changes.

type userResponse struct {
	UserID     string    `json:"user_id"`
	UserName   string    `json:"user_name"`
	UserEmail  string    `json:"user_email"`
	CreatedOn  time.Time `json:"created_on"`
	LastUpdate time.Time `json:"last_update"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type noteResponse struct {
	NoteID      string    `json:"note_id"`
	UserID      string    `json:"user_id"`
	NoteTitle   string    `json:"note_title"`
	NoteContent string    `json:"note_content"`
	CreatedOn   time.Time `json:"created_on"`
	LastUpdate  time.Time `json:"last_update"`
}

type messageResponse struct {
	Message string `json:"message"`
}
