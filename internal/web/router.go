package web

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/drophunt/internal/dependencies/clock"
	"github.com/mcoot/drophunt/internal/middleware"
	"github.com/mcoot/drophunt/internal/services/auth"
	"github.com/mcoot/drophunt/internal/services/puzzle"
	"github.com/mcoot/drophunt/internal/web/handler"
	webmw "github.com/mcoot/drophunt/internal/web/middleware"
)

// RouterConfig holds configuration for the web router
type RouterConfig struct {
	Logger        *slog.Logger
	Clock         clock.Clock
	AuthService   *auth.Service
	PuzzleManager *puzzle.Manager
	StaticDir     string // Path to static files directory
}

// NewRouter creates a new web router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()
	r.Use(webmw.Recovery(cfg.Logger))
	r.Use(middleware.Logging(cfg.Logger))
	Register(r, cfg)
	return r
}

// Register mounts the web routes on r. Global middleware is left to the
// caller so the API and web pages can share one router.
func Register(r *mux.Router, cfg RouterConfig) {
	guestMiddleware := webmw.Guest(cfg.AuthService, cfg.Logger)
	optionalSessionMiddleware := webmw.OptionalSession(cfg.AuthService)

	puzzleHandler := handler.NewPuzzleHandler(cfg.PuzzleManager, cfg.Clock, cfg.Logger)
	authHandler := handler.NewAuthHandler(cfg.AuthService, cfg.PuzzleManager)

	// Static files
	if cfg.StaticDir != "" {
		staticHandler := http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir)))
		r.PathPrefix("/static/").Handler(staticHandler)
	}

	// Auth actions
	authRoutes := r.PathPrefix("/auth").Subrouter()
	authRoutes.Use(optionalSessionMiddleware)
	authRoutes.HandleFunc("/guest", authHandler.CreateGuest).Methods(http.MethodPost)
	authRoutes.HandleFunc("/logout", authHandler.Logout).Methods(http.MethodPost)

	// Puzzle page; a guest player is created on first visit
	page := r.NewRoute().Subrouter()
	page.Use(guestMiddleware)
	page.Handle("/", webmw.Flash()(http.HandlerFunc(puzzleHandler.Home))).Methods(http.MethodGet)
	page.HandleFunc("/reveal", puzzleHandler.Reveal).Methods(http.MethodPost)
	page.HandleFunc("/guess", puzzleHandler.Guess).Methods(http.MethodPost)
	page.HandleFunc("/reset", puzzleHandler.Reset).Methods(http.MethodPost)
}
