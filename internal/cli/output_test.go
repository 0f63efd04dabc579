package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintPuzzleText(t *testing.T) {
	var buf bytes.Buffer
	out := NewOutput("text", &buf)

	out.Print(Puzzle{
		Seed:          "2024-3-15",
		Status:        "ready",
		CluesRevealed: 2,
		TotalClues:    5,
		Attempts:      1,
		Elapsed:       "0:42",
		Clues:         []Clue{{Text: "This item belongs to the Kitchen category"}, {Text: "Priced in the $15-$30 range"}},
		Candidates:    []Candidate{{ID: "prod_3", Title: "Bamboo Water Bottle", Vendor: "GreenLife"}},
	})

	text := buf.String()
	assert.Contains(t, text, "Puzzle: 2024-3-15")
	assert.Contains(t, text, "Clues: 2/5")
	assert.Contains(t, text, "  2. Priced in the $15-$30 range")
	assert.Contains(t, text, "  - prod_3: Bamboo Water Bottle by GreenLife")
	assert.NotContains(t, text, "Solved")
}

func TestPrintSolvedPuzzle(t *testing.T) {
	var buf bytes.Buffer
	out := NewOutput("text", &buf)
	score := 791

	out.Print(GuessResult{
		Correct: true,
		Puzzle: Puzzle{
			Status:  "won",
			Score:   &score,
			Product: &Product{ID: "prod_3", Title: "Bamboo Water Bottle", Vendor: "GreenLife"},
			Stats:   &Stats{Streak: 3},
		},
	})

	text := buf.String()
	assert.Contains(t, text, "Correct!")
	assert.Contains(t, text, "Solved: Bamboo Water Bottle by GreenLife (prod_3)")
	assert.Contains(t, text, "Score: 791")
	assert.Contains(t, text, "Streak: 3")
	assert.NotContains(t, text, "Candidates")
}

func TestPrintNoProduct(t *testing.T) {
	var buf bytes.Buffer
	NewOutput("text", &buf).Print(Puzzle{Seed: "2024-3-15", Status: "no_product"})

	assert.Contains(t, buf.String(), "No product to hunt today.")
	assert.NotContains(t, buf.String(), "Clues:")
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	NewOutput("json", &buf).PrintMessage("Puzzle data reset")

	var msg map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &msg))
	assert.Equal(t, "Puzzle data reset", msg["message"])
}

func TestClientSendsTokenAndDecodesErrors(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"code":"UNAUTHORIZED","message":"Invalid or expired session"}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", "sess_abc")
	err := c.Get("/api/v1/puzzle/today", nil)

	require.Error(t, err)
	assert.Equal(t, "Invalid or expired session (UNAUTHORIZED)", err.Error())
	assert.Equal(t, "Bearer sess_abc", gotAuth)
}
