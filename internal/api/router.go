package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/drophunt/internal/api/apierr"
	"github.com/mcoot/drophunt/internal/api/handler"
	"github.com/mcoot/drophunt/internal/api/middleware"
	"github.com/mcoot/drophunt/internal/api/response"
	"github.com/mcoot/drophunt/internal/dependencies/clock"
	sharedmw "github.com/mcoot/drophunt/internal/middleware"
	"github.com/mcoot/drophunt/internal/services/auth"
	"github.com/mcoot/drophunt/internal/services/puzzle"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger        *slog.Logger
	Clock         clock.Clock
	AuthService   *auth.Service
	PuzzleManager *puzzle.Manager
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()
	Register(r, cfg)
	return r
}

// Register mounts the API routes under /api/v1 on r
func Register(r *mux.Router, cfg RouterConfig) {
	// Create handlers
	playerHandler := handler.NewPlayerHandler(cfg.AuthService)
	puzzleHandler := handler.NewPuzzleHandler(cfg.PuzzleManager, cfg.Clock, cfg.Logger)

	// Create middleware
	authMiddleware := middleware.Auth(cfg.AuthService)
	loggingMiddleware := sharedmw.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)
	api.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apierr.WriteError(w, apierr.NewNotFoundError("Route not found"))
	})

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	// Player routes (no auth required for creating players)
	api.HandleFunc("/players/guest", playerHandler.CreateGuest).Methods(http.MethodPost)

	// Protected player routes
	playerProtected := api.PathPrefix("/players").Subrouter()
	playerProtected.Use(authMiddleware)
	playerProtected.HandleFunc("/me", playerHandler.GetMe).Methods(http.MethodGet)
	playerProtected.HandleFunc("/me/profile", playerHandler.SetProfile).Methods(http.MethodPut)

	// Puzzle routes (all require auth)
	puzzles := api.PathPrefix("/puzzle").Subrouter()
	puzzles.Use(authMiddleware)
	puzzles.HandleFunc("/today", puzzleHandler.Today).Methods(http.MethodGet)
	puzzles.HandleFunc("/today/reveal", puzzleHandler.Reveal).Methods(http.MethodPost)
	puzzles.HandleFunc("/today/guess", puzzleHandler.Guess).Methods(http.MethodPost)
	puzzles.HandleFunc("/today/product", puzzleHandler.AmendProduct).Methods(http.MethodPatch)
	puzzles.HandleFunc("/data", puzzleHandler.Reset).Methods(http.MethodDelete)
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.HealthResponse{Status: "ok"})
}
