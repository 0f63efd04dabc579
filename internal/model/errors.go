package model

import "errors"

// Common errors used across the application
var (
	// Storage errors
	ErrKeyNotFound = errors.New("key not found")

	// Catalog errors
	ErrNoProductAvailable = errors.New("no product available")
	ErrInvalidRecord      = errors.New("invalid catalog record")

	// Puzzle errors
	ErrSessionNotInitialized = errors.New("puzzle session not initialized")
	ErrCorruptRecord         = errors.New("persisted record is corrupt")

	// Player errors
	ErrPlayerNotFound = errors.New("player not found")
)
