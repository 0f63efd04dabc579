package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/mcoot/drophunt/internal/dependencies/clock"
	"github.com/mcoot/drophunt/internal/model"
	"github.com/mcoot/drophunt/internal/storage"
)

// Errors
var (
	ErrInvalidSession = errors.New("invalid or expired session")
	ErrInvalidProfile = errors.New("invalid profile")
)

const maxDisplayNameLength = 50

// Session represents an authenticated session
type Session struct {
	Token     string
	PlayerID  model.PlayerID
	Player    model.Player
	Profile   *model.UserProfile
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Service handles guest players and session management
type Service struct {
	kv       storage.KV
	clock    clock.Clock
	validate *validator.Validate

	mu       sync.RWMutex
	sessions map[string]*Session

	sessionDuration time.Duration
}

// Config holds configuration for the auth service
type Config struct {
	SessionDuration time.Duration
}

// DefaultConfig returns default auth configuration
func DefaultConfig() Config {
	return Config{
		SessionDuration: 24 * time.Hour,
	}
}

// New creates a new AuthService
func New(kv storage.KV, clock clock.Clock, cfg Config) *Service {
	if cfg.SessionDuration == 0 {
		cfg.SessionDuration = DefaultConfig().SessionDuration
	}
	return &Service{
		kv:              kv,
		clock:           clock,
		validate:        validator.New(),
		sessions:        make(map[string]*Session),
		sessionDuration: cfg.SessionDuration,
	}
}

func playerKey(id model.PlayerID) string {
	return "player:" + string(id)
}

// CreateGuestPlayer creates an anonymous player and session
func (s *Service) CreateGuestPlayer(ctx context.Context, displayName string) (*Session, error) {
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		displayName = "Guest"
	}
	if len([]rune(displayName)) > maxDisplayNameLength {
		displayName = string([]rune(displayName)[:maxDisplayNameLength])
	}

	player := &model.Player{
		ID:          model.PlayerID(uuid.NewString()),
		DisplayName: displayName,
		CreatedAt:   s.clock.Now(),
	}

	data, err := json.Marshal(player)
	if err != nil {
		return nil, err
	}
	if err := s.kv.Set(ctx, playerKey(player.ID), string(data)); err != nil {
		return nil, fmt.Errorf("save player: %w", err)
	}

	return s.createSession(player), nil
}

// GetPlayer loads a stored player record
func (s *Service) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	raw, err := s.kv.Get(ctx, playerKey(id))
	if errors.Is(err, model.ErrKeyNotFound) {
		return nil, model.ErrPlayerNotFound
	}
	if err != nil {
		return nil, err
	}
	var player model.Player
	if err := json.Unmarshal([]byte(raw), &player); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrCorruptRecord, err)
	}
	return &player, nil
}

// ValidateSession checks if a session token is valid and returns the session
func (s *Service) ValidateSession(token string) (*Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[token]
	var c Session
	if ok {
		c = *session
	}
	s.mu.RUnlock()

	if !ok {
		return nil, ErrInvalidSession
	}

	if s.clock.Now().After(c.ExpiresAt) {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return nil, ErrInvalidSession
	}

	return &c, nil
}

// SetProfile attaches a personalization profile to a session.
// The profile is held in memory only.
func (s *Service) SetProfile(token string, profile *model.UserProfile) error {
	if profile != nil {
		if err := s.validate.Struct(profile); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidProfile, err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[token]
	if !ok {
		return ErrInvalidSession
	}
	session.Profile = profile
	return nil
}

// InvalidateSession removes a session
func (s *Service) InvalidateSession(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

// createSession creates a new session for a player
func (s *Service) createSession(player *model.Player) *Session {
	token := generateToken("sess_")
	now := s.clock.Now()

	session := &Session{
		Token:     token,
		PlayerID:  player.ID,
		Player:    *player,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionDuration),
	}

	s.mu.Lock()
	s.sessions[token] = session
	s.mu.Unlock()

	c := *session
	return &c
}

// generateToken generates a random token with a prefix
func generateToken(prefix string) string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return prefix + base64.RawURLEncoding.EncodeToString(b)
}

// CleanExpiredSessions removes expired sessions (call periodically) and
// returns the players left without any live session
func (s *Service) CleanExpiredSessions() []model.PlayerID {
	now := s.clock.Now()
	s.mu.Lock()
	defer s.mu.Unlock()

	expired := make(map[model.PlayerID]struct{})
	for token, session := range s.sessions {
		if now.After(session.ExpiresAt) {
			expired[session.PlayerID] = struct{}{}
			delete(s.sessions, token)
		}
	}
	for _, session := range s.sessions {
		delete(expired, session.PlayerID)
	}

	players := make([]model.PlayerID, 0, len(expired))
	for id := range expired {
		players = append(players, id)
	}
	return players
}
