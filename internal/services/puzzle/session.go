// Package puzzle implements the daily puzzle state machine.
//
// A Session covers one player and one day. It is created with the day's seed,
// initialized with the day's product, and then driven by reveal and guess
// calls until the product is guessed. A Session is not safe for concurrent
// use; Manager serializes access per player.
package puzzle

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mcoot/drophunt/internal/dependencies/clock"
	"github.com/mcoot/drophunt/internal/model"
	"github.com/mcoot/drophunt/internal/services/clues"
	"github.com/mcoot/drophunt/internal/services/dateseed"
	"github.com/mcoot/drophunt/internal/services/scoring"
	"github.com/mcoot/drophunt/internal/storage"
)

// MinRevealCap is the reveal count a session may always reach, even when it
// has fewer clues than that. Callers must not display past the clue list;
// VisibleClues does this.
const MinRevealCap = 5

// Config holds per-session behaviour switches
type Config struct {
	MatchMode MatchMode
}

// Session is one player's puzzle for one day
type Session struct {
	seed       string
	store      *StatsStore
	clock      clock.Clock
	clues      *clues.Service
	candidates []model.Product
	cfg        Config
	logger     *slog.Logger

	status model.SessionStatus
	state  model.GameState
	list   []model.Clue
	stats  *model.DailyStats
}

// NewSession creates an uninitialized session for the day named by seed.
// candidates is the catalog snapshot the player guesses from.
func NewSession(
	seed string,
	kv storage.KV,
	clock clock.Clock,
	clueService *clues.Service,
	candidates []*model.Product,
	cfg Config,
	logger *slog.Logger,
) *Session {
	if cfg.MatchMode == "" {
		cfg.MatchMode = MatchLoose
	}
	snapshot := make([]model.Product, 0, len(candidates))
	for _, p := range candidates {
		snapshot = append(snapshot, *p.Clone())
	}
	return &Session{
		seed:       seed,
		store:      NewStatsStore(kv),
		clock:      clock,
		clues:      clueService,
		candidates: snapshot,
		cfg:        cfg,
		logger:     logger.With(slog.String("seed", seed)),
		status:     model.SessionStatusUninitialized,
		state:      model.GameState{StartTime: clock.Now()},
	}
}

// Initialize starts the session with product. If the stored daily stats show
// today was already played the session becomes AlreadyPlayed, restoring the
// stored snapshot when it is for the same day and product. A nil product
// leaves the session with nothing to play.
//
// A corrupt stored record is logged and treated as absent. Any other storage
// error is returned and leaves the session uninitialized.
func (s *Session) Initialize(ctx context.Context, product *model.Product, profile *model.UserProfile) error {
	stats, err := s.store.LoadStats(ctx)
	if errors.Is(err, model.ErrCorruptRecord) {
		s.logger.Warn("ignoring corrupt daily stats", slog.String("error", err.Error()))
		stats, err = nil, nil
	}
	if err != nil {
		return err
	}
	s.stats = stats
	now := s.clock.Now()

	if stats != nil && stats.Date == s.seed && stats.Played {
		s.status = model.SessionStatusAlreadyPlayed
		s.state = model.GameState{CurrentProduct: product.Clone(), StartTime: now}
		s.list = nil

		snap, err := s.store.LoadSnapshot(ctx)
		if err != nil {
			s.logger.Warn("could not load session snapshot", slog.String("error", err.Error()))
		} else if restorable(snap, s.seed, product) {
			s.state = snap.GameState
			s.list = snap.Clues
		}

		s.logger.Info("puzzle already played", slog.Bool("restored", s.list != nil))
		return nil
	}

	if product == nil {
		s.status = model.SessionStatusNoProduct
		s.state = model.GameState{StartTime: now}
		s.list = nil
		s.logger.Info("no product available")
		return nil
	}

	s.list = s.clues.Generate(s.seed, product, profile)
	s.state = model.GameState{
		CurrentProduct: product.Clone(),
		CluesRevealed:  1,
		StartTime:      now,
	}
	s.status = model.SessionStatusReady

	s.logger.Info("puzzle initialized",
		slog.String("product_id", string(product.ID)),
		slog.Int("clues", len(s.list)),
	)
	return nil
}

func restorable(snap *model.SessionSnapshot, seed string, product *model.Product) bool {
	if snap == nil || product == nil || snap.GameState.CurrentProduct == nil {
		return false
	}
	return snap.Seed == seed && snap.GameState.CurrentProduct.ID == product.ID
}

// playable reports whether reveals and guesses may change the state
func (s *Session) playable() bool {
	return s.status == model.SessionStatusReady && s.state.CurrentProduct != nil && !s.state.IsGameWon
}

// RevealCap is the highest value CluesRevealed can reach
func (s *Session) RevealCap() int {
	return max(len(s.list), MinRevealCap)
}

// RevealNextClue reveals one more clue and counts it as an attempt. It does
// nothing once the game is won or the reveal cap is reached.
func (s *Session) RevealNextClue() {
	if !s.playable() || s.state.CluesRevealed >= s.RevealCap() {
		return
	}
	s.state.CluesRevealed++
	s.state.Attempts++
}

// MakeGuess checks guess against the current product.
//
// A wrong guess counts an attempt and returns false. A correct guess wins the
// game, scores it and persists the daily stats and snapshot. The win is
// applied in memory before persisting and is kept if persisting fails; the
// persistence error is returned alongside true.
func (s *Session) MakeGuess(ctx context.Context, guess model.ProductID) (bool, error) {
	if !s.playable() {
		return false, nil
	}

	if !Matches(s.state.CurrentProduct, guess, s.cfg.MatchMode) {
		s.state.Attempts++
		s.logger.Debug("wrong guess",
			slog.String("guess", string(guess)),
			slog.Int("attempts", s.state.Attempts),
		)
		return false, nil
	}

	now := s.clock.Now()
	elapsed := s.state.ElapsedSeconds(now)
	score := scoring.CalculateScore(s.state.CluesRevealed, elapsed)
	s.state.IsGameWon = true
	s.state.EndTime = &now
	s.state.Score = &score
	s.status = model.SessionStatusWon

	yesterday, err := dateseed.PreviousSeed(s.seed)
	if err != nil {
		yesterday = ""
	}
	stats := &model.DailyStats{
		Date:        s.seed,
		Played:      true,
		Won:         true,
		Attempts:    s.state.Attempts,
		TimeToSolve: &elapsed,
		Score:       &score,
		Streak:      NextStreak(s.stats, yesterday),
	}
	s.stats = stats

	s.logger.Info("puzzle solved",
		slog.String("product_id", string(s.state.CurrentProduct.ID)),
		slog.Int("score", score),
		slog.Int("clues_revealed", s.state.CluesRevealed),
		slog.Int("attempts", s.state.Attempts),
		slog.Int("seconds", elapsed),
		slog.Int("streak", stats.Streak),
	)

	return true, errors.Join(
		s.store.SaveStats(ctx, stats),
		s.saveSnapshot(ctx),
	)
}

func (s *Session) saveSnapshot(ctx context.Context) error {
	state := s.state
	state.CurrentProduct = s.state.CurrentProduct.Clone()
	return s.store.SaveSnapshot(ctx, &model.SessionSnapshot{
		Seed:      s.seed,
		GameState: state,
		Clues:     append([]model.Clue(nil), s.list...),
	})
}

// AmendProduct patches the current product's image and canonical ID without
// touching reveal or win state. It returns false when there is no product.
// A won game re-persists its snapshot so a restart shows the amended product.
func (s *Session) AmendProduct(ctx context.Context, patch model.ProductPatch) (bool, error) {
	p := s.state.CurrentProduct
	if p == nil {
		return false, nil
	}
	if patch.Image != nil {
		p.Image = *patch.Image
	}
	if patch.CanonicalID != nil {
		p.CanonicalID = *patch.CanonicalID
	}
	if s.status == model.SessionStatusWon {
		return true, s.saveSnapshot(ctx)
	}
	return true, nil
}

// ResetAll removes the stored daily stats and snapshot, for every day, and
// returns the session to its uninitialized state. The in-memory reset happens
// even if removal fails.
func (s *Session) ResetAll(ctx context.Context) error {
	err := s.store.Clear(ctx)

	s.status = model.SessionStatusUninitialized
	s.state = model.GameState{StartTime: s.clock.Now()}
	s.list = nil
	s.stats = nil

	s.logger.Info("puzzle data reset")
	return err
}

// Seed returns the day this session is for
func (s *Session) Seed() string {
	return s.seed
}

// Status returns the session phase
func (s *Session) Status() model.SessionStatus {
	return s.status
}

// AlreadyPlayed reports whether the day was finished before this session
// was initialized
func (s *Session) AlreadyPlayed() bool {
	return s.status == model.SessionStatusAlreadyPlayed
}

// State returns a copy of the game state
func (s *Session) State() model.GameState {
	state := s.state
	state.CurrentProduct = s.state.CurrentProduct.Clone()
	return state
}

// Clues returns a copy of the full clue list, including unrevealed clues
func (s *Session) Clues() []model.Clue {
	return append([]model.Clue(nil), s.list...)
}

// VisibleClues returns the revealed clues, never more than the list holds
func (s *Session) VisibleClues() []model.Clue {
	n := min(s.state.CluesRevealed, len(s.list))
	return append([]model.Clue(nil), s.list[:n]...)
}

// Stats returns a copy of the latest daily stats, or nil if none exist
func (s *Session) Stats() *model.DailyStats {
	if s.stats == nil {
		return nil
	}
	c := *s.stats
	return &c
}

// Candidates returns the products the player can guess from
func (s *Session) Candidates() []model.Product {
	out := make([]model.Product, 0, len(s.candidates))
	for i := range s.candidates {
		out = append(out, *s.candidates[i].Clone())
	}
	return out
}
