package factory

import (
	"io"
	"log/slog"
	"time"

	"github.com/mcoot/drophunt/internal/dependencies/mocks"
	"github.com/mcoot/drophunt/internal/services/auth"
	"github.com/mcoot/drophunt/internal/services/catalog"
	"github.com/mcoot/drophunt/internal/services/clues"
	"github.com/mcoot/drophunt/internal/services/puzzle"
	"github.com/mcoot/drophunt/internal/storage/memory"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock   *mocks.MockClock
	MockRandom  *mocks.MockRandom
	MemoryStore *memory.Storage
}

// NewTestApp creates an App configured for testing with mocked dependencies
// and the demo catalog
func NewTestApp() *TestApp {
	return NewTestAppWithCatalog(catalog.Demo())
}

// NewTestAppWithCatalog creates a test App serving provider
func NewTestAppWithCatalog(provider catalog.Provider) *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	app := newWithDependencies(store, provider, mockClock, mockRandom, auth.DefaultConfig(), clues.DefaultConfig(), puzzle.Config{}, logger)

	return &TestApp{
		App:         app,
		MockClock:   mockClock,
		MockRandom:  mockRandom,
		MemoryStore: store,
	}
}
