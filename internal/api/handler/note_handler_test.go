package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/notesapp/notes-api/internal/core/domain"
	"github.com/notesapp/notes-api/internal/core/ports"
)

type stubNoteService struct {
	createFn func(ctx context.Context, input ports.CreateNoteInput, owner *domain.User) (*domain.Note, error)
	listFn   func(ctx context.Context, owner *domain.User) ([]domain.Note, error)
	getFn    func(ctx context.Context, id string, owner *domain.User) (*domain.Note, error)
	updateFn func(ctx context.Context, id string, input ports.UpdateNoteInput, owner *domain.User) (*domain.Note, error)
	deleteFn func(ctx context.Context, id string, owner *domain.User) error
}

func (s *stubNoteService) Create(ctx context.Context, input ports.CreateNoteInput, owner *domain.User) (*domain.Note, error) {
	return s.createFn(ctx, input, owner)
}
func (s *stubNoteService) List(ctx context.Context, owner *domain.User) ([]domain.Note, error) {
	return s.listFn(ctx, owner)
}
func (s *stubNoteService) Get(ctx context.Context, id string, owner *domain.User) (*domain.Note, error) {
	return s.getFn(ctx, id, owner)
}
func (s *stubNoteService) Update(ctx context.Context, id string, input ports.UpdateNoteInput, owner *domain.User) (*domain.Note, error) {
	return s.updateFn(ctx, id, input, owner)
}
func (s *stubNoteService) Delete(ctx context.Context, id string, owner *domain.User) error {
	return s.deleteFn(ctx, id, owner)
}

var testUser = &domain.User{ID: "u1", Name: "Ann", Email: "ann@x.com"}

func TestNoteHandler_Create(t *testing.T) {
	svc := &stubNoteService{
		createFn: func(ctx context.Context, input ports.CreateNoteInput, owner *domain.User) (*domain.Note, error) {
			if input.Title != "T" || input.Content != "C" || owner.ID != "u1" {
				t.Fatalf("unexpected args: %+v owner=%s", input, owner.ID)
			}
			now := time.Now().UTC()
			return &domain.Note{ID: "n1", UserID: owner.ID, Title: input.Title,
				Content: input.Content, CreatedAt: now, UpdatedAt: now}, nil
		},
	}
	h := NewNoteHandler(svc)

	c, rec := newTestContext(t, http.MethodPost, "/notes", `{"note_title":"T","note_content":"C"}`)
	c.Set("current_user", testUser)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["note_id"] != "n1" || resp["user_id"] != "u1" || resp["note_title"] != "T" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestNoteHandler_Create_MissingTitle(t *testing.T) {
	h := NewNoteHandler(&stubNoteService{
		createFn: func(ctx context.Context, input ports.CreateNoteInput, owner *domain.User) (*domain.Note, error) {
			t.Fatalf("service reached with invalid input")
			return nil, nil
		},
	})

	c, _ := newTestContext(t, http.MethodPost, "/notes", `{"note_content":"C"}`)
	c.Set("current_user", testUser)

	err := h.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestNoteHandler_Create_NoAuth(t *testing.T) {
	h := NewNoteHandler(&stubNoteService{})

	c, _ := newTestContext(t, http.MethodPost, "/notes", `{"note_title":"T"}`)
	err := h.Create(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestNoteHandler_List(t *testing.T) {
	svc := &stubNoteService{
		listFn: func(ctx context.Context, owner *domain.User) ([]domain.Note, error) {
			return []domain.Note{
				{ID: "n2", UserID: owner.ID, Title: "newer"},
				{ID: "n1", UserID: owner.ID, Title: "older"},
			}, nil
		},
	}
	h := NewNoteHandler(svc)

	c, rec := newTestContext(t, http.MethodGet, "/notes", "")
	c.Set("current_user", testUser)

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 2 || resp[0]["note_id"] != "n2" || resp[1]["note_id"] != "n1" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestNoteHandler_List_Empty(t *testing.T) {
	h := NewNoteHandler(&stubNoteService{
		listFn: func(ctx context.Context, owner *domain.User) ([]domain.Note, error) {
			return []domain.Note{}, nil
		},
	})

	c, rec := newTestContext(t, http.MethodGet, "/notes", "")
	c.Set("current_user", testUser)

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if got := rec.Body.String(); got != "[]\n" {
		t.Fatalf("expected empty json array, got %q", got)
	}
}

func TestNoteHandler_Get_Errors(t *testing.T) {
	for _, tc := range []struct {
		name string
		err  error
	}{
		{"not found", domain.ErrNoteNotFound},
		{"forbidden", domain.ErrNoteForbidden},
	} {
		h := NewNoteHandler(&stubNoteService{
			getFn: func(ctx context.Context, id string, owner *domain.User) (*domain.Note, error) {
				return nil, tc.err
			},
		})

		c, _ := newTestContext(t, http.MethodGet, "/notes/n1", "")
		c.SetParamNames("id")
		c.SetParamValues("n1")
		c.Set("current_user", testUser)

		if err := h.Get(c); !errors.Is(err, tc.err) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.err, err)
		}
	}
}

func TestNoteHandler_Update(t *testing.T) {
	svc := &stubNoteService{
		updateFn: func(ctx context.Context, id string, input ports.UpdateNoteInput, owner *domain.User) (*domain.Note, error) {
			if id != "n1" {
				t.Fatalf("unexpected id: %q", id)
			}
			if input.Title == nil || *input.Title != "T2" {
				t.Fatalf("title patch not passed through: %+v", input)
			}
			if input.Content != nil {
				t.Fatalf("absent content should stay nil: %+v", input)
			}
			return &domain.Note{ID: id, UserID: owner.ID, Title: *input.Title}, nil
		},
	}
	h := NewNoteHandler(svc)

	c, rec := newTestContext(t, http.MethodPut, "/notes/n1", `{"note_title":"T2"}`)
	c.SetParamNames("id")
	c.SetParamValues("n1")
	c.Set("current_user", testUser)

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestNoteHandler_Delete(t *testing.T) {
	deleted := ""
	svc := &stubNoteService{
		deleteFn: func(ctx context.Context, id string, owner *domain.User) error {
			deleted = id
			return nil
		},
	}
	h := NewNoteHandler(svc)

	c, rec := newTestContext(t, http.MethodDelete, "/notes/n1", "")
	c.SetParamNames("id")
	c.SetParamValues("n1")
	c.Set("current_user", testUser)

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if deleted != "n1" {
		t.Fatalf("service not called with note id")
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Note deleted successfully" {
		t.Fatalf("unexpected message: %q", resp["message"])
	}
}
