package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Fprintln(o.w, string(data))
	} else {
		fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Player:
		o.printPlayer(v)
	case AuthResult:
		o.printAuthResult(v)
	case Puzzle:
		o.printPuzzle(v)
	case GuessResult:
		o.printGuessResult(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Profile is the personalization profile (matches API)
type Profile struct {
	FavoriteCategories []string `json:"favorite_categories,omitempty"`
	PurchaseHistory    []string `json:"purchase_history,omitempty"`
	PreferredBrands    []string `json:"preferred_brands,omitempty"`
	IsEcoConscious     bool     `json:"is_eco_conscious,omitempty"`
	StylePreference    string   `json:"style_preference,omitempty"`
}

// Player response type (matches API)
type Player struct {
	ID          string   `json:"id"`
	DisplayName string   `json:"display_name"`
	Profile     *Profile `json:"profile,omitempty"`
}

// AuthResult combines player and token
type AuthResult struct {
	Player       Player `json:"player"`
	SessionToken string `json:"session_token"`
}

// Clue response type
type Clue struct {
	ID         int    `json:"id"`
	Text       string `json:"text"`
	Type       string `json:"type"`
	Difficulty string `json:"difficulty"`
}

// Candidate response type
type Candidate struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Vendor string `json:"vendor"`
	Image  string `json:"image"`
}

// Product response type, present once the puzzle is solved
type Product struct {
	ID          string `json:"id"`
	CanonicalID string `json:"canonical_id,omitempty"`
	Title       string `json:"title"`
	Vendor      string `json:"vendor"`
	Image       string `json:"image"`
	Price       string `json:"price"`
}

// Stats response type
type Stats struct {
	Date        string `json:"date"`
	Played      bool   `json:"played"`
	Won         bool   `json:"won"`
	Attempts    int    `json:"attempts"`
	TimeToSolve *int   `json:"time_to_solve,omitempty"`
	Score       *int   `json:"score,omitempty"`
	Streak      int    `json:"streak"`
}

// Puzzle response type
type Puzzle struct {
	Seed          string      `json:"seed"`
	Status        string      `json:"status"`
	CluesRevealed int         `json:"clues_revealed"`
	TotalClues    int         `json:"total_clues"`
	RevealCap     int         `json:"reveal_cap"`
	Attempts      int         `json:"attempts"`
	IsGameWon     bool        `json:"is_game_won"`
	Elapsed       string      `json:"elapsed"`
	Score         *int        `json:"score,omitempty"`
	Clues         []Clue      `json:"clues"`
	Candidates    []Candidate `json:"candidates"`
	Product       *Product    `json:"product,omitempty"`
	Stats         *Stats      `json:"stats,omitempty"`
}

// GuessResult response type
type GuessResult struct {
	Correct bool   `json:"correct"`
	Puzzle  Puzzle `json:"puzzle"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printPlayer(p Player) {
	fmt.Fprintf(o.w, "Player: %s (%s)\n", p.DisplayName, p.ID)
	if p.Profile != nil {
		if len(p.Profile.FavoriteCategories) > 0 {
			fmt.Fprintf(o.w, "Favorites: %s\n", strings.Join(p.Profile.FavoriteCategories, ", "))
		}
		if p.Profile.StylePreference != "" {
			fmt.Fprintf(o.w, "Style: %s\n", p.Profile.StylePreference)
		}
	}
}

func (o *Output) printAuthResult(a AuthResult) {
	o.printPlayer(a.Player)
	fmt.Fprintf(o.w, "Token: %s\n", a.SessionToken)
}

func (o *Output) printPuzzle(p Puzzle) {
	fmt.Fprintf(o.w, "Puzzle: %s\n", p.Seed)
	fmt.Fprintf(o.w, "Status: %s\n", p.Status)

	if p.Status == "no_product" {
		fmt.Fprintln(o.w, "No product to hunt today.")
		return
	}

	fmt.Fprintf(o.w, "Clues: %d/%d\n", min(p.CluesRevealed, p.TotalClues), p.TotalClues)
	fmt.Fprintf(o.w, "Attempts: %d\n", p.Attempts)
	fmt.Fprintf(o.w, "Time: %s\n", p.Elapsed)

	if len(p.Clues) > 0 {
		fmt.Fprintln(o.w, "\nClues:")
		for i, c := range p.Clues {
			fmt.Fprintf(o.w, "  %d. %s\n", i+1, c.Text)
		}
	}

	if p.Product != nil {
		fmt.Fprintf(o.w, "\nSolved: %s by %s (%s)\n", p.Product.Title, p.Product.Vendor, p.Product.ID)
		if p.Score != nil {
			fmt.Fprintf(o.w, "Score: %d\n", *p.Score)
		}
	} else if len(p.Candidates) > 0 {
		fmt.Fprintln(o.w, "\nCandidates:")
		for _, c := range p.Candidates {
			fmt.Fprintf(o.w, "  - %s: %s by %s\n", c.ID, c.Title, c.Vendor)
		}
	}

	if p.Stats != nil {
		fmt.Fprintf(o.w, "\nStreak: %d\n", p.Stats.Streak)
	}
}

func (o *Output) printGuessResult(g GuessResult) {
	if g.Correct {
		fmt.Fprintln(o.w, "Correct!")
	} else {
		fmt.Fprintln(o.w, "Not quite.")
	}
	o.printPuzzle(g.Puzzle)
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Fprintf(o.w, "Status: %s\n", h.Status)
}
