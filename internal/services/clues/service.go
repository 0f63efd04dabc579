package clues

import (
	"fmt"
	"log/slog"

	"github.com/mcoot/drophunt/internal/dependencies/random"
	"github.com/mcoot/drophunt/internal/model"
)

// Config controls clue selection
type Config struct {
	// MaxClues is the number of clues kept after shuffling
	MaxClues int
	// MinClues is the length filler clues pad up to
	MinClues int
	// Deterministic derives the shuffle from the day seed and product ID
	// instead of the injected random source, so a restarted session shows
	// the same clues in the same order
	Deterministic bool
}

// DefaultConfig returns the standard clue limits with random shuffling
func DefaultConfig() Config {
	return Config{
		MaxClues: 5,
		MinClues: 3,
	}
}

// Service generates the clue list for a day's product
type Service struct {
	random random.Random
	cfg    Config
	logger *slog.Logger
}

// New creates a new clue Service
func New(rnd random.Random, cfg Config, logger *slog.Logger) *Service {
	def := DefaultConfig()
	if cfg.MaxClues <= 0 {
		cfg.MaxClues = def.MaxClues
	}
	if cfg.MinClues <= 0 {
		cfg.MinClues = def.MinClues
	}
	if cfg.MinClues > cfg.MaxClues {
		cfg.MinClues = cfg.MaxClues
	}
	return &Service{
		random: rnd,
		cfg:    cfg,
		logger: logger,
	}
}

// MaxClues returns the configured clue cap
func (s *Service) MaxClues() int {
	return s.cfg.MaxClues
}

// Generate returns between MinClues and MaxClues clues for product: the
// candidates shuffled and truncated, then padded with generic filler.
// The order carries no difficulty progression.
func (s *Service) Generate(seed string, product *model.Product, profile *model.UserProfile) []model.Clue {
	candidates := Candidates(product, profile)

	rnd := s.random
	if s.cfg.Deterministic {
		rnd = random.NewSeeded(seed + ":" + string(product.ID))
	}
	random.Shuffle(rnd, len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	selected := candidates
	if len(selected) > s.cfg.MaxClues {
		selected = selected[:s.cfg.MaxClues]
	}

	for id := firstFillerID; len(selected) < s.cfg.MinClues; id++ {
		n := len(selected) + 1
		selected = append(selected, model.Clue{
			ID:         id,
			Text:       fmt.Sprintf("Hint %d: This is a special item in the catalog", n),
			Type:       model.ClueTypeFeature,
			Difficulty: model.DifficultyMedium,
		})
	}

	s.logger.Debug("clues generated",
		slog.String("seed", seed),
		slog.String("product_id", string(product.ID)),
		slog.Int("candidates", len(candidates)),
		slog.Int("selected", len(selected)),
	)

	return selected
}
