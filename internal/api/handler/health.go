package handler

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// HealthHandler serves the root banner and the health-check endpoint used by
// load balancers and monitoring.
type HealthHandler struct {
	db *sql.DB
}

func NewHealthHandler(db *sql.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

type rootResponse struct {
	Message  string `json:"message"`
	Version  string `json:"version"`
	Database string `json:"database"`
}

type healthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Timestamp string `json:"timestamp"`
}

// Root handles GET / — basic API information.
func (h *HealthHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, rootResponse{
		Message:  "Notes API is running",
		Version:  "1.0.0",
		Database: "PostgreSQL",
	})
}

// Check handles GET /health. Always 200; the database field reports
// connectivity so monitors can alert without the route itself failing.
func (h *HealthHandler) Check(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
	defer cancel()

	dbStatus := "connected"
	if err := h.db.PingContext(ctx); err != nil {
		dbStatus = "disconnected"
	}

	return c.JSON(http.StatusOK, healthResponse{
		Status:    "healthy",
		Database:  dbStatus,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
