package model

import "time"

// SessionStatus is the externally visible phase of a puzzle session
type SessionStatus string

const (
	SessionStatusUninitialized SessionStatus = "uninitialized" // No Initialize call yet, or after a full reset
	SessionStatusNoProduct     SessionStatus = "no_product"    // Catalog had nothing to offer today
	SessionStatusReady         SessionStatus = "ready"         // Accepting reveals and guesses
	SessionStatusWon           SessionStatus = "won"           // Correct guess made this session
	SessionStatusAlreadyPlayed SessionStatus = "already_played"
)

// GameState is the mutable state of a puzzle session.
//
// Invariant: IsGameWon implies EndTime and Score are set and CluesRevealed no
// longer changes.
type GameState struct {
	CurrentProduct *Product   `json:"currentProduct"`
	CluesRevealed  int        `json:"cluesRevealed"`
	IsGameWon      bool       `json:"isGameWon"`
	Attempts       int        `json:"attempts"`
	StartTime      time.Time  `json:"startTime"`
	EndTime        *time.Time `json:"endTime,omitempty"`
	Score          *int       `json:"score,omitempty"`
}

// ElapsedSeconds returns the whole seconds between StartTime and EndTime,
// or between StartTime and now if the game is not finished
func (g *GameState) ElapsedSeconds(now time.Time) int {
	end := now
	if g.EndTime != nil {
		end = *g.EndTime
	}
	secs := int(end.Sub(g.StartTime) / time.Second)
	if secs < 0 {
		return 0
	}
	return secs
}

// SessionSnapshot is the persisted form of a session, written when the
// player wins so a restart on the same day shows the same result
type SessionSnapshot struct {
	Seed      string    `json:"seed"`
	GameState GameState `json:"gameState"`
	Clues     []Clue    `json:"clues"`
}
