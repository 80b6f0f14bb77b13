package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/notesapp/notes-api/internal/api/metrics"
	"github.com/notesapp/notes-api/internal/api/middleware"
	"github.com/notesapp/notes-api/internal/core/domain"
	"github.com/notesapp/notes-api/internal/core/ports"
)

// NoteHandler handles HTTP requests for note operations. All routes run
// behind the Auth middleware, so a resolved user is always in context.
type NoteHandler struct {
	service ports.NoteService
}

func NewNoteHandler(service ports.NoteService) *NoteHandler {
	return &NoteHandler{service: service}
}

// Create handles POST /notes.
//
// @Summary      Create a new note
// @Tags         notes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createNoteRequest  true  "Note details"
// @Success      200   {object}  noteResponse
// @Failure      401   {object}  errorResponse
// @Router       /notes [post]
func (h *NoteHandler) Create(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}

	var req createNoteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	note, err := h.service.Create(c.Request().Context(), ports.CreateNoteInput{
		Title:   req.NoteTitle,
		Content: req.NoteContent,
	}, user)
	if err != nil {
		metrics.NoteOperationsTotal.WithLabelValues("create", "error").Inc()
		return err
	}

	metrics.NoteOperationsTotal.WithLabelValues("create", "ok").Inc()
	return c.JSON(http.StatusOK, toNoteResponse(note))
}

// List handles GET /notes. Notes come back newest-first.
//
// @Summary      Get all notes for the current user
// @Tags         notes
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   noteResponse
// @Failure      401  {object}  errorResponse
// @Router       /notes [get]
func (h *NoteHandler) List(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}

	notes, err := h.service.List(c.Request().Context(), user)
	if err != nil {
		metrics.NoteOperationsTotal.WithLabelValues("list", "error").Inc()
		return err
	}

	metrics.NoteOperationsTotal.WithLabelValues("list", "ok").Inc()
	return c.JSON(http.StatusOK, toNoteListResponse(notes))
}

// Get handles GET /notes/:id.
//
// @Summary      Get a specific note by ID
// @Tags         notes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Note ID"
// @Success      200  {object}  noteResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /notes/{id} [get]
func (h *NoteHandler) Get(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}

	note, err := h.service.Get(c.Request().Context(), c.Param("id"), user)
	if err != nil {
		metrics.NoteOperationsTotal.WithLabelValues("get", opResult(err)).Inc()
		return err
	}

	metrics.NoteOperationsTotal.WithLabelValues("get", "ok").Inc()
	return c.JSON(http.StatusOK, toNoteResponse(note))
}

// Update handles PUT /notes/:id. Only fields present in the body change.
//
// @Summary      Update an existing note
// @Tags         notes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Note ID"
// @Param        body  body      updateNoteRequest  true  "Fields to update"
// @Success      200   {object}  noteResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /notes/{id} [put]
func (h *NoteHandler) Update(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}

	var req updateNoteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	note, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateNoteInput{
		Title:   req.NoteTitle,
		Content: req.NoteContent,
	}, user)
	if err != nil {
		metrics.NoteOperationsTotal.WithLabelValues("update", opResult(err)).Inc()
		return err
	}

	metrics.NoteOperationsTotal.WithLabelValues("update", "ok").Inc()
	return c.JSON(http.StatusOK, toNoteResponse(note))
}

// Delete handles DELETE /notes/:id.
//
// @Summary      Delete a note
// @Tags         notes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Note ID"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /notes/{id} [delete]
func (h *NoteHandler) Delete(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), user); err != nil {
		metrics.NoteOperationsTotal.WithLabelValues("delete", opResult(err)).Inc()
		return err
	}

	metrics.NoteOperationsTotal.WithLabelValues("delete", "ok").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Note deleted successfully"})
}

func opResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrNoteNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrNoteForbidden):
		return "forbidden"
	default:
		return "error"
	}
}
