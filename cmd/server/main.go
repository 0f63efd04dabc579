package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/sync/errgroup"

	"github.com/mcoot/drophunt/internal/api"
	"github.com/mcoot/drophunt/internal/factory"
	"github.com/mcoot/drophunt/internal/services/puzzle"
	redisstorage "github.com/mcoot/drophunt/internal/storage/redis"
	sqlitestorage "github.com/mcoot/drophunt/internal/storage/sqlite"
	"github.com/mcoot/drophunt/internal/web"
)

const sessionCleanInterval = 10 * time.Minute

func main() {
	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(os.Getenv("LOG_LEVEL")),
	}))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("server exited", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("server stopped")
}

func run(logger *slog.Logger) error {
	cfg, err := configFromEnv(logger)
	if err != nil {
		return err
	}

	// Create application factory
	app, err := factory.New(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Warn("failed to close storage", slog.String("error", err.Error()))
		}
	}()

	// API routes carry their own middleware; everything else is the web UI
	r := mux.NewRouter()
	api.Register(r, api.RouterConfig{
		Logger:        logger,
		Clock:         app.Clock,
		AuthService:   app.AuthService,
		PuzzleManager: app.PuzzleManager,
	})
	r.PathPrefix("/").Handler(web.NewRouter(web.RouterConfig{
		Logger:        logger,
		Clock:         app.Clock,
		AuthService:   app.AuthService,
		PuzzleManager: app.PuzzleManager,
		StaticDir:     findStaticDir(),
	}))

	// Create server
	serverConfig := api.DefaultServerConfig()
	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return err
		}
		serverConfig.Port = p
	}
	server := api.NewServer(r, serverConfig, logger)

	// Handle graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return server.Run(ctx)
	})

	g.Go(func() error {
		ticker := time.NewTicker(sessionCleanInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				for _, playerID := range app.AuthService.CleanExpiredSessions() {
					app.PuzzleManager.Forget(playerID)
				}
			}
		}
	})

	if app.CatalogFile != nil && envBool("CATALOG_WATCH") {
		g.Go(func() error {
			return app.CatalogFile.Watch(ctx, func() {
				logger.Info("catalog reloaded", slog.String("path", app.CatalogFile.Path()))
			})
		})
	}

	return g.Wait()
}

// configFromEnv builds the factory config from environment variables
func configFromEnv(logger *slog.Logger) (factory.Config, error) {
	cfg := factory.Config{
		Logger:             logger,
		StorageType:        os.Getenv("STORAGE_TYPE"),
		CatalogPath:        os.Getenv("CATALOG_PATH"),
		DeterministicClues: envBool("DETERMINISTIC_CLUES"),
	}

	mode, err := puzzle.ParseMatchMode(os.Getenv("MATCH_MODE"))
	if err != nil {
		return cfg, err
	}
	cfg.MatchMode = mode

	switch cfg.StorageType {
	case factory.StorageTypeRedis:
		redisCfg := redisstorage.DefaultConfig()
		if url := os.Getenv("REDIS_URL"); url != "" {
			redisCfg.URL = url
		}
		cfg.RedisConfig = &redisCfg
	case factory.StorageTypeSQLite:
		sqliteCfg := sqlitestorage.DefaultConfig()
		if path := os.Getenv("SQLITE_PATH"); path != "" {
			sqliteCfg.Path = path
		}
		cfg.SQLiteConfig = &sqliteCfg
	}

	return cfg, nil
}

func envBool(key string) bool {
	v, _ := strconv.ParseBool(os.Getenv(key))
	return v
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return level
}

// findStaticDir looks for the static files directory
func findStaticDir() string {
	// Try common locations
	candidates := []string{
		"internal/web/static",
		filepath.Join(os.Getenv("PWD"), "internal/web/static"),
	}

	for _, dir := range candidates {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}

	return ""
}
