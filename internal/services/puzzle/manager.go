package puzzle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/mcoot/drophunt/internal/dependencies/clock"
	"github.com/mcoot/drophunt/internal/model"
	"github.com/mcoot/drophunt/internal/services/catalog"
	"github.com/mcoot/drophunt/internal/services/clues"
	"github.com/mcoot/drophunt/internal/services/dateseed"
	"github.com/mcoot/drophunt/internal/storage"
)

// Manager holds each player's session for the current day
type Manager struct {
	kv      storage.KV
	catalog catalog.Provider
	clock   clock.Clock
	dates   *dateseed.Service
	clues   *clues.Service
	cfg     Config
	logger  *slog.Logger

	mu      sync.Mutex
	players map[model.PlayerID]*playerSession
}

type playerSession struct {
	mu      sync.Mutex
	session *Session
}

// NewManager creates a new Manager
func NewManager(
	kv storage.KV,
	provider catalog.Provider,
	clock clock.Clock,
	clueService *clues.Service,
	cfg Config,
	logger *slog.Logger,
) *Manager {
	return &Manager{
		kv:      kv,
		catalog: provider,
		clock:   clock,
		dates:   dateseed.New(clock),
		clues:   clueService,
		cfg:     cfg,
		logger:  logger,
		players: make(map[model.PlayerID]*playerSession),
	}
}

// PlayerKV returns the key-value namespace holding playerID's puzzle records
func PlayerKV(kv storage.KV, playerID model.PlayerID) storage.KV {
	return storage.NewScoped(kv, fmt.Sprintf("player:%s:", playerID))
}

// Do runs fn with playerID's session for today, holding the player's lock.
//
// A new session is created and initialized on first use, when the day has
// changed, and after a reset. profile personalizes the clues of a newly
// created session and is otherwise ignored.
func (m *Manager) Do(ctx context.Context, playerID model.PlayerID, profile *model.UserProfile, fn func(*Session) error) error {
	entry := m.entry(playerID)
	entry.mu.Lock()
	defer entry.mu.Unlock()

	seed := m.dates.Today()
	if entry.session == nil ||
		entry.session.Seed() != seed ||
		entry.session.Status() == model.SessionStatusUninitialized {
		session, err := m.newSession(ctx, playerID, seed, profile)
		if err != nil {
			return err
		}
		entry.session = session
	}

	return fn(entry.session)
}

// Forget drops playerID's in-memory session. Persisted records are untouched.
func (m *Manager) Forget(playerID model.PlayerID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.players, playerID)
}

// Active returns how many players currently hold an in-memory session
func (m *Manager) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.players)
}

func (m *Manager) entry(playerID model.PlayerID) *playerSession {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, ok := m.players[playerID]
	if !ok {
		entry = &playerSession{}
		m.players[playerID] = entry
	}
	return entry
}

func (m *Manager) newSession(ctx context.Context, playerID model.PlayerID, seed string, profile *model.UserProfile) (*Session, error) {
	records, err := m.catalog.Records(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	products := catalog.Products(records, m.logger)

	product, err := catalog.Select(seed, products)
	if err != nil && !errors.Is(err, model.ErrNoProductAvailable) {
		return nil, err
	}

	session := NewSession(
		seed,
		PlayerKV(m.kv, playerID),
		m.clock,
		m.clues,
		products,
		m.cfg,
		m.logger.With(slog.String("player_id", string(playerID))),
	)
	if err := session.Initialize(ctx, product, profile); err != nil {
		return nil, err
	}
	return session, nil
}
