package response

import (
	"time"

	"github.com/mcoot/drophunt/internal/model"
	"github.com/mcoot/drophunt/internal/services/auth"
	"github.com/mcoot/drophunt/internal/services/puzzle"
	"github.com/mcoot/drophunt/internal/services/scoring"
)

// Player represents a player in API responses
type Player struct {
	ID          string             `json:"id"`
	DisplayName string             `json:"display_name"`
	CreatedAt   time.Time          `json:"created_at"`
	Profile     *model.UserProfile `json:"profile,omitempty"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	return Player{
		ID:          string(p.ID),
		DisplayName: p.DisplayName,
		CreatedAt:   p.CreatedAt,
	}
}

// PlayerFromSession converts a session's player, including its profile
func PlayerFromSession(s *auth.Session) Player {
	p := PlayerFromModel(&s.Player)
	p.Profile = s.Profile
	return p
}

// AuthResponse is the response for authentication endpoints
type AuthResponse struct {
	Player       Player `json:"player"`
	SessionToken string `json:"session_token"`
}

// AuthResponseFromSession creates an AuthResponse from a session
func AuthResponseFromSession(s *auth.Session) AuthResponse {
	return AuthResponse{
		Player:       PlayerFromModel(&s.Player),
		SessionToken: s.Token,
	}
}

// Clue represents a revealed clue
type Clue struct {
	ID         int    `json:"id"`
	Text       string `json:"text"`
	Type       string `json:"type"`
	Difficulty string `json:"difficulty"`
}

// ClueFromModel converts a model.Clue
func ClueFromModel(c model.Clue) Clue {
	return Clue{
		ID:         c.ID,
		Text:       c.Text,
		Type:       string(c.Type),
		Difficulty: string(c.Difficulty),
	}
}

// Candidate is a product the player can guess
type Candidate struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Vendor string `json:"vendor"`
	Image  string `json:"image"`
}

// Product is the full product, shown once the puzzle is solved
type Product struct {
	ID          string   `json:"id"`
	CanonicalID string   `json:"canonical_id,omitempty"`
	Title       string   `json:"title"`
	Vendor      string   `json:"vendor"`
	Image       string   `json:"image"`
	Price       string   `json:"price"`
	Description string   `json:"description,omitempty"`
	Category    string   `json:"category,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Rating      *float64 `json:"rating,omitempty"`
}

// ProductFromModel converts a model.Product
func ProductFromModel(p *model.Product) *Product {
	if p == nil {
		return nil
	}
	return &Product{
		ID:          string(p.ID),
		CanonicalID: string(p.CanonicalID),
		Title:       p.Title,
		Vendor:      p.Vendor,
		Image:       p.Image,
		Price:       p.Price,
		Description: p.Description,
		Category:    p.Category,
		Tags:        p.Tags,
		Rating:      p.Rating,
	}
}

// Stats is the player's stored daily record
type Stats struct {
	Date        string `json:"date"`
	Played      bool   `json:"played"`
	Won         bool   `json:"won"`
	Attempts    int    `json:"attempts"`
	TimeToSolve *int   `json:"time_to_solve,omitempty"`
	Score       *int   `json:"score,omitempty"`
	Streak      int    `json:"streak"`
}

// StatsFromModel converts model.DailyStats
func StatsFromModel(s *model.DailyStats) *Stats {
	if s == nil {
		return nil
	}
	return &Stats{
		Date:        s.Date,
		Played:      s.Played,
		Won:         s.Won,
		Attempts:    s.Attempts,
		TimeToSolve: s.TimeToSolve,
		Score:       s.Score,
		Streak:      s.Streak,
	}
}

// Puzzle is the player's view of today's puzzle. The product is only
// included once it has been guessed.
type Puzzle struct {
	Seed           string      `json:"seed"`
	Status         string      `json:"status"`
	CluesRevealed  int         `json:"clues_revealed"`
	TotalClues     int         `json:"total_clues"`
	RevealCap      int         `json:"reveal_cap"`
	Attempts       int         `json:"attempts"`
	IsGameWon      bool        `json:"is_game_won"`
	ElapsedSeconds int         `json:"elapsed_seconds"`
	Elapsed        string      `json:"elapsed"`
	Score          *int        `json:"score,omitempty"`
	Clues          []Clue      `json:"clues"`
	Candidates     []Candidate `json:"candidates"`
	Product        *Product    `json:"product,omitempty"`
	Stats          *Stats      `json:"stats,omitempty"`
}

// PuzzleFromSession builds the player's view of a session at now
func PuzzleFromSession(s *puzzle.Session, now time.Time) Puzzle {
	state := s.State()
	elapsed := state.ElapsedSeconds(now)

	p := Puzzle{
		Seed:           s.Seed(),
		Status:         string(s.Status()),
		CluesRevealed:  state.CluesRevealed,
		TotalClues:     len(s.Clues()),
		RevealCap:      s.RevealCap(),
		Attempts:       state.Attempts,
		IsGameWon:      state.IsGameWon,
		ElapsedSeconds: elapsed,
		Elapsed:        scoring.FormatTime(elapsed),
		Score:          state.Score,
		Clues:          make([]Clue, 0),
		Candidates:     make([]Candidate, 0),
		Stats:          StatsFromModel(s.Stats()),
	}
	for _, c := range s.VisibleClues() {
		p.Clues = append(p.Clues, ClueFromModel(c))
	}
	for _, c := range s.Candidates() {
		p.Candidates = append(p.Candidates, Candidate{
			ID:     string(c.ID),
			Title:  c.Title,
			Vendor: c.Vendor,
			Image:  c.Image,
		})
	}
	if state.IsGameWon {
		p.Product = ProductFromModel(state.CurrentProduct)
	}
	return p
}

// GuessResponse is the response for a guess
type GuessResponse struct {
	Correct bool   `json:"correct"`
	Puzzle  Puzzle `json:"puzzle"`
}

// HealthResponse is the response for the health endpoint
type HealthResponse struct {
	Status string `json:"status"`
}
