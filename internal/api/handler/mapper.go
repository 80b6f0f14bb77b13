package handler

import "github.com/notesapp/notes-api/internal/core/domain"

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		UserID:     u.ID,
		UserName:   u.Name,
		UserEmail:  u.Email,
		CreatedOn:  u.CreatedAt,
		LastUpdate: u.UpdatedAt,
	}
}

func toNoteResponse(n *domain.Note) noteResponse {
	return noteResponse{
		NoteID:      n.ID,
		UserID:      n.UserID,
		NoteTitle:   n.Title,
		NoteContent: n.Content,
		CreatedOn:   n.CreatedAt,
		LastUpdate:  n.UpdatedAt,
	}
}

func toNoteListResponse(notes []domain.Note) []noteResponse {
	out := make([]noteResponse, 0, len(notes))
	for i := range notes {
		out = append(out, toNoteResponse(&notes[i]))
	}
	return out
}
