package factory

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/mcoot/drophunt/internal/dependencies/clock"
	"github.com/mcoot/drophunt/internal/dependencies/random"
	"github.com/mcoot/drophunt/internal/services/auth"
	"github.com/mcoot/drophunt/internal/services/catalog"
	"github.com/mcoot/drophunt/internal/services/clues"
	"github.com/mcoot/drophunt/internal/services/puzzle"
	"github.com/mcoot/drophunt/internal/storage"
	"github.com/mcoot/drophunt/internal/storage/memory"
	redisstorage "github.com/mcoot/drophunt/internal/storage/redis"
	sqlitestorage "github.com/mcoot/drophunt/internal/storage/sqlite"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
	StorageTypeSQLite = "sqlite"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.KV

	// External dependencies
	Clock   clock.Clock
	Random  random.Random
	Catalog catalog.Provider
	// CatalogFile is set when the catalog is loaded from disk, so the caller
	// can watch it for changes
	CatalogFile *catalog.File

	// Services
	ClueService   *clues.Service
	PuzzleManager *puzzle.Manager
	AuthService   *auth.Service
}

// Config holds configuration for the application factory
type Config struct {
	// AuthConfig holds configuration for the auth service (optional)
	// If zero value, defaults to auth.DefaultConfig()
	AuthConfig auth.Config
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory", "redis" or "sqlite")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// SQLiteConfig holds database settings (optional if StorageType is "sqlite")
	SQLiteConfig *sqlitestorage.Config
	// CatalogPath is a YAML or JSON catalog file (optional)
	// If empty, the built-in demo catalog is used
	CatalogPath string
	// MatchMode selects guess matching; defaults to puzzle.MatchLoose
	MatchMode puzzle.MatchMode
	// DeterministicClues fixes the clue order per day and product
	DeterministicClues bool
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	store, err := newStorage(cfg)
	if err != nil {
		return nil, err
	}

	var provider catalog.Provider = catalog.Demo()
	var file *catalog.File
	if cfg.CatalogPath != "" {
		file, err = catalog.NewFile(cfg.CatalogPath, logger)
		if err != nil {
			closeStorage(store)
			return nil, err
		}
		provider = file
	}

	// Create external dependencies
	clk := clock.New()
	rnd := random.New()

	// Use default auth config if not provided
	authCfg := cfg.AuthConfig
	if authCfg.SessionDuration == 0 {
		authCfg = auth.DefaultConfig()
	}

	clueCfg := clues.DefaultConfig()
	clueCfg.Deterministic = cfg.DeterministicClues

	app := newWithDependencies(store, provider, clk, rnd, authCfg, clueCfg, puzzle.Config{MatchMode: cfg.MatchMode}, logger)
	app.CatalogFile = file
	return app, nil
}

func newStorage(cfg Config) (storage.KV, error) {
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		return memory.New(), nil
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		return redisstorage.New(*cfg.RedisConfig)
	case StorageTypeSQLite:
		sqliteCfg := sqlitestorage.DefaultConfig()
		if cfg.SQLiteConfig != nil {
			sqliteCfg = *cfg.SQLiteConfig
		}
		return sqlitestorage.New(sqliteCfg)
	default:
		return nil, fmt.Errorf("invalid StorageType %q: must be 'memory', 'redis' or 'sqlite'", storageType)
	}
}

func closeStorage(store storage.KV) {
	if c, ok := store.(storage.Closer); ok {
		_ = c.Close()
	}
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.KV,
	provider catalog.Provider,
	clk clock.Clock,
	rnd random.Random,
	authCfg auth.Config,
	clueCfg clues.Config,
	puzzleCfg puzzle.Config,
	logger *slog.Logger,
) *App {
	clueService := clues.New(rnd, clueCfg, logger)
	puzzleManager := puzzle.NewManager(store, provider, clk, clueService, puzzleCfg, logger)
	authService := auth.New(store, clk, authCfg)

	return &App{
		Storage:       store,
		Clock:         clk,
		Random:        rnd,
		Catalog:       provider,
		ClueService:   clueService,
		PuzzleManager: puzzleManager,
		AuthService:   authService,
	}
}

// Close releases storage resources
func (a *App) Close() error {
	if c, ok := a.Storage.(storage.Closer); ok {
		return c.Close()
	}
	return nil
}
