package service

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/notesapp/notes-api/internal/core/domain"
	"github.com/notesapp/notes-api/internal/core/ports"
	"github.com/notesapp/notes-api/pkg/logger"
)

type stubNoteRepo struct {
	notes map[string]*domain.Note
}

func newStubNoteRepo() *stubNoteRepo {
	return &stubNoteRepo{notes: make(map[string]*domain.Note)}
}

func cloneNote(n *domain.Note) *domain.Note {
	clone := *n
	return &clone
}

func (r *stubNoteRepo) Create(_ context.Context, note *domain.Note) error {
	r.notes[note.ID] = cloneNote(note)
	return nil
}

func (r *stubNoteRepo) FindByID(_ context.Context, id string) (*domain.Note, error) {
	if n, ok := r.notes[id]; ok {
		return cloneNote(n), nil
	}
	return nil, domain.ErrNoteNotFound
}

func (r *stubNoteRepo) FindByUserID(_ context.Context, userID string) ([]domain.Note, error) {
	var out []domain.Note
	for _, n := range r.notes {
		if n.UserID == userID {
			out = append(out, *n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *stubNoteRepo) Update(_ context.Context, id, title, content string) error {
	n, ok := r.notes[id]
	if !ok {
		return domain.ErrNoteNotFound
	}
	n.Title = title
	n.Content = content
	n.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *stubNoteRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.notes[id]; !ok {
		return domain.ErrNoteNotFound
	}
	delete(r.notes, id)
	return nil
}

func (r *stubNoteRepo) BelongsTo(_ context.Context, noteID, userID string) (bool, error) {
	n, ok := r.notes[noteID]
	return ok && n.UserID == userID, nil
}

var (
	ann = &domain.User{ID: "user-ann", Name: "Ann", Email: "ann@x.com"}
	bob = &domain.User{ID: "user-bob", Name: "Bob", Email: "bob@x.com"}
)

func newNoteService() (*NoteService, *stubNoteRepo) {
	repo := newStubNoteRepo()
	return NewNoteService(repo, logger.Get()), repo
}

func strPtr(s string) *string { return &s }

func TestNoteService_Create(t *testing.T) {
	svc, repo := newNoteService()

	note, err := svc.Create(context.Background(), ports.CreateNoteInput{Title: "T", Content: "C"}, ann)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if note.ID == "" {
		t.Fatalf("expected generated id")
	}
	if note.UserID != ann.ID {
		t.Fatalf("owner not stamped: %q", note.UserID)
	}
	if note.CreatedAt.IsZero() || !note.CreatedAt.Equal(note.UpdatedAt) {
		t.Fatalf("expected both timestamps stamped to now: %v %v", note.CreatedAt, note.UpdatedAt)
	}
	if _, ok := repo.notes[note.ID]; !ok {
		t.Fatalf("note not persisted")
	}
}

func TestNoteService_Create_EmptyContent(t *testing.T) {
	svc, _ := newNoteService()

	note, err := svc.Create(context.Background(), ports.CreateNoteInput{Title: "only title"}, ann)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if note.Content != "" {
		t.Fatalf("expected empty content, got %q", note.Content)
	}
}

func TestNoteService_List_NewestFirst(t *testing.T) {
	svc, repo := newNoteService()

	base := time.Now().UTC()
	for i, title := range []string{"first", "second", "third"} {
		repo.notes[title] = &domain.Note{
			ID:        title,
			UserID:    ann.ID,
			Title:     title,
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}
	}
	repo.notes["other"] = &domain.Note{ID: "other", UserID: bob.ID, CreatedAt: base.Add(time.Hour)}

	notes, err := svc.List(context.Background(), ann)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(notes) != 3 {
		t.Fatalf("expected 3 notes, got %d", len(notes))
	}
	for i, want := range []string{"third", "second", "first"} {
		if notes[i].ID != want {
			t.Fatalf("position %d: expected %q, got %q", i, want, notes[i].ID)
		}
	}
}

func TestNoteService_Get_OwnershipChecks(t *testing.T) {
	svc, _ := newNoteService()

	created, _ := svc.Create(context.Background(), ports.CreateNoteInput{Title: "T"}, ann)

	if note, err := svc.Get(context.Background(), created.ID, ann); err != nil || note.Title != "T" {
		t.Fatalf("owner get failed: %v", err)
	}
	if _, err := svc.Get(context.Background(), created.ID, bob); !errors.Is(err, domain.ErrNoteForbidden) {
		t.Fatalf("expected ErrNoteForbidden for other user, got %v", err)
	}
	if _, err := svc.Get(context.Background(), "missing", ann); !errors.Is(err, domain.ErrNoteNotFound) {
		t.Fatalf("expected ErrNoteNotFound, got %v", err)
	}
}

func TestNoteService_Update_PartialPatch(t *testing.T) {
	svc, _ := newNoteService()

	created, _ := svc.Create(context.Background(), ports.CreateNoteInput{Title: "T", Content: "C"}, ann)

	updated, err := svc.Update(context.Background(), created.ID, ports.UpdateNoteInput{Title: strPtr("T2")}, ann)
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if updated.Title != "T2" {
		t.Fatalf("title not updated: %q", updated.Title)
	}
	if updated.Content != "C" {
		t.Fatalf("absent field overwritten: %q", updated.Content)
	}

	updated, err = svc.Update(context.Background(), created.ID, ports.UpdateNoteInput{Content: strPtr("")}, ann)
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if updated.Content != "" {
		t.Fatalf("explicit empty content not applied: %q", updated.Content)
	}
	if updated.Title != "T2" {
		t.Fatalf("title lost on content-only patch: %q", updated.Title)
	}
}

func TestNoteService_Update_OwnershipChecks(t *testing.T) {
	svc, _ := newNoteService()

	created, _ := svc.Create(context.Background(), ports.CreateNoteInput{Title: "T"}, ann)

	if _, err := svc.Update(context.Background(), created.ID, ports.UpdateNoteInput{Title: strPtr("X")}, bob); !errors.Is(err, domain.ErrNoteForbidden) {
		t.Fatalf("expected ErrNoteForbidden, got %v", err)
	}
	if _, err := svc.Update(context.Background(), "missing", ports.UpdateNoteInput{Title: strPtr("X")}, ann); !errors.Is(err, domain.ErrNoteNotFound) {
		t.Fatalf("expected ErrNoteNotFound, got %v", err)
	}

	got, _ := svc.Get(context.Background(), created.ID, ann)
	if got.Title != "T" {
		t.Fatalf("forbidden update changed the note: %q", got.Title)
	}
}

func TestNoteService_Delete(t *testing.T) {
	svc, repo := newNoteService()

	created, _ := svc.Create(context.Background(), ports.CreateNoteInput{Title: "T"}, ann)

	if err := svc.Delete(context.Background(), created.ID, bob); !errors.Is(err, domain.ErrNoteForbidden) {
		t.Fatalf("expected ErrNoteForbidden, got %v", err)
	}
	if err := svc.Delete(context.Background(), "missing", ann); !errors.Is(err, domain.ErrNoteNotFound) {
		t.Fatalf("expected ErrNoteNotFound, got %v", err)
	}

	if err := svc.Delete(context.Background(), created.ID, ann); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if _, ok := repo.notes[created.ID]; ok {
		t.Fatalf("note still present after delete")
	}
}
