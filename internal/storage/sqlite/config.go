package sqlite

import "time"

// Config holds SQLite settings
type Config struct {
	// Path is the database file path; ":memory:" keeps the database in process
	Path string

	// BusyTimeout is how long a writer waits on a locked database
	BusyTimeout time.Duration
}

// DefaultConfig returns sensible defaults for SQLite configuration
func DefaultConfig() Config {
	return Config{
		Path:        "drophunt.db",
		BusyTimeout: 5 * time.Second,
	}
}
