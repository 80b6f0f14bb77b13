package api

import (
	"database/sql"
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/notesapp/notes-api/internal/api/handler"
	"github.com/notesapp/notes-api/internal/api/middleware"
	"github.com/notesapp/notes-api/internal/core/ports"
)

// Dependencies carries everything the router needs, constructed once by the
// composition root and injected here.
type Dependencies struct {
	DB          *sql.DB
	Users       ports.UserRepository
	AuthService ports.AuthService
	UserService ports.UserService
	NoteService ports.NoteService
	CORSOrigins []string
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogStatus: true,
		LogMethod: true,
		LogURI:    true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			log.Info().
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Err(v.Error).
				Msg("request")
			return nil
		},
	}))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: deps.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{"*"},
	}))
	e.Use(echoprometheus.NewMiddleware("notes"))

	authMiddleware := middleware.Auth(deps.AuthService, deps.Users)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.AuthService, deps.UserService)
	noteHandler := handler.NewNoteHandler(deps.NoteService)
	healthHandler := handler.NewHealthHandler(deps.DB)

	// --- Auth routes ---
	e.POST("/auth/signup", authHandler.Signup)
	e.POST("/auth/signin", authHandler.Signin)
	e.GET("/auth/me", authHandler.Me, authMiddleware)

	// --- Note routes (all protected) ---
	notes := e.Group("/notes", authMiddleware)
	notes.POST("", noteHandler.Create)
	notes.GET("", noteHandler.List)
	notes.GET("/:id", noteHandler.Get)
	notes.PUT("/:id", noteHandler.Update)
	notes.DELETE("/:id", noteHandler.Delete)

	// --- Operational surface (no auth required) ---
	e.GET("/", healthHandler.Root)
	e.GET("/health", healthHandler.Check)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
