package e2e_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/drophunt/internal/api"
	"github.com/mcoot/drophunt/internal/factory"
	"github.com/mcoot/drophunt/internal/web"
)

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath string
	serverURL  string
	tokenFile  string
}

func newCLIRunner(t *testing.T, serverURL string) *cliRunner {
	t.Helper()

	// Find project root (where go.mod is)
	projectRoot := findProjectRoot(t)

	// Build the CLI binary
	binaryPath := filepath.Join(t.TempDir(), "drophunt-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/drophunt")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	return &cliRunner{
		binaryPath: binaryPath,
		serverURL:  serverURL,
		tokenFile:  filepath.Join(t.TempDir(), "token"),
	}
}

func (r *cliRunner) run(args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--token-file", r.tokenFile,
		"--output", "json",
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func (r *cliRunner) runWithToken(token string, args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--token", token,
		"--output", "json",
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}

// testServer manages a real HTTP server for e2e tests
type testServer struct {
	addr     string
	shutdown func()
}

func startTestServer(t *testing.T) *testServer {
	t.Helper()

	// Find a free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	// Create application with the demo catalog
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	app, err := factory.New(factory.Config{Logger: logger})
	require.NoError(t, err)

	r := mux.NewRouter()
	api.Register(r, api.RouterConfig{
		Logger:        logger,
		Clock:         app.Clock,
		AuthService:   app.AuthService,
		PuzzleManager: app.PuzzleManager,
	})
	r.PathPrefix("/").Handler(web.NewRouter(web.RouterConfig{
		Logger:        logger,
		Clock:         app.Clock,
		AuthService:   app.AuthService,
		PuzzleManager: app.PuzzleManager,
	}))

	server := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	// Start server
	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			t.Logf("server error: %v", err)
		}
	}()

	// Wait for server to be ready
	serverURL := "http://" + addr
	waitForServer(t, serverURL+"/api/v1/health")

	return &testServer{
		addr: serverURL,
		shutdown: func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = server.Shutdown(ctx)
		},
	}
}

func waitForServer(t *testing.T, url string) {
	t.Helper()

	client := &http.Client{Timeout: 100 * time.Millisecond}
	deadline := time.Now().Add(5 * time.Second)

	for time.Now().Before(deadline) {
		resp, err := client.Get(url)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(50 * time.Millisecond)
	}

	t.Fatal("server did not become ready in time")
}

// Response types for JSON parsing
type authResponse struct {
	Player struct {
		ID          string `json:"id"`
		DisplayName string `json:"display_name"`
	} `json:"player"`
	SessionToken string `json:"session_token"`
}

type puzzleResponse struct {
	Seed          string `json:"seed"`
	Status        string `json:"status"`
	CluesRevealed int    `json:"clues_revealed"`
	Attempts      int    `json:"attempts"`
	IsGameWon     bool   `json:"is_game_won"`
	Score         *int   `json:"score"`
	Clues         []struct {
		Text string `json:"text"`
	} `json:"clues"`
	Candidates []struct {
		ID string `json:"id"`
	} `json:"candidates"`
	Product *struct {
		ID    string `json:"id"`
		Image string `json:"image"`
	} `json:"product"`
}

type guessResponse struct {
	Correct bool           `json:"correct"`
	Puzzle  puzzleResponse `json:"puzzle"`
}

type healthResponse struct {
	Status string `json:"status"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// Tests

func TestCLI_HealthCheck(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("health")
	require.NoError(t, err, "output: %s", output)

	var resp healthResponse
	require.NoError(t, json.Unmarshal([]byte(output), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestCLI_PlayerCommands(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	// Create guest
	output, err := cli.run("player", "guest", "--name", "Alice")
	require.NoError(t, err, "output: %s", output)

	var authResp authResponse
	require.NoError(t, json.Unmarshal([]byte(output), &authResp))
	assert.Equal(t, "Alice", authResp.Player.DisplayName)
	assert.NotEmpty(t, authResp.SessionToken)

	// Get me (token should be saved in token file)
	output, err = cli.run("player", "me")
	require.NoError(t, err, "output: %s", output)

	var player struct {
		ID          string `json:"id"`
		DisplayName string `json:"display_name"`
	}
	require.NoError(t, json.Unmarshal([]byte(output), &player))
	assert.Equal(t, "Alice", player.DisplayName)
	assert.Equal(t, authResp.Player.ID, player.ID)

	// Set a profile
	output, err = cli.run("player", "profile", "--favorite", "Kitchen", "--style", "casual")
	require.NoError(t, err, "output: %s", output)

	var withProfile struct {
		Profile struct {
			FavoriteCategories []string `json:"favorite_categories"`
			StylePreference    string   `json:"style_preference"`
		} `json:"profile"`
	}
	require.NoError(t, json.Unmarshal([]byte(output), &withProfile))
	assert.Equal(t, []string{"Kitchen"}, withProfile.Profile.FavoriteCategories)
	assert.Equal(t, "casual", withProfile.Profile.StylePreference)

	// An unknown style is rejected
	output, err = cli.run("player", "profile", "--style", "grunge")
	require.Error(t, err)
	assert.Contains(t, output, "INVALID_PROFILE")
}

func TestCLI_DailyPuzzleFlow(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("player", "guest", "--name", "Alice")
	require.NoError(t, err, "output: %s", output)

	// Show today's puzzle
	output, err = cli.run("puzzle", "show")
	require.NoError(t, err, "output: %s", output)

	var puzzle puzzleResponse
	require.NoError(t, json.Unmarshal([]byte(output), &puzzle))
	assert.Equal(t, "ready", puzzle.Status)
	assert.Equal(t, 1, puzzle.CluesRevealed)
	assert.Len(t, puzzle.Clues, 1)
	require.NotEmpty(t, puzzle.Candidates)
	assert.Nil(t, puzzle.Product)

	// Reveal a clue
	output, err = cli.run("puzzle", "reveal")
	require.NoError(t, err, "output: %s", output)
	require.NoError(t, json.Unmarshal([]byte(output), &puzzle))
	assert.Equal(t, 2, puzzle.CluesRevealed)
	assert.Equal(t, 1, puzzle.Attempts)

	// Guess every candidate until one is right
	var won *guessResponse
	for _, c := range puzzle.Candidates {
		output, err = cli.run("puzzle", "guess", c.ID)
		require.NoError(t, err, "output: %s", output)

		var resp guessResponse
		require.NoError(t, json.Unmarshal([]byte(output), &resp))
		if resp.Correct {
			won = &resp
			break
		}
	}
	require.NotNil(t, won, "one of the candidates is today's product")
	assert.True(t, won.Puzzle.IsGameWon)
	require.NotNil(t, won.Puzzle.Score)
	require.NotNil(t, won.Puzzle.Product)

	// Amend the product image
	output, err = cli.run("puzzle", "amend", "--image", "https://cdn.example.com/new.jpg")
	require.NoError(t, err, "output: %s", output)
	require.NoError(t, json.Unmarshal([]byte(output), &puzzle))
	require.NotNil(t, puzzle.Product)
	assert.Equal(t, "https://cdn.example.com/new.jpg", puzzle.Product.Image)

	// Reset wipes the win
	output, err = cli.run("puzzle", "reset")
	require.NoError(t, err, "output: %s", output)

	var msg messageResponse
	require.NoError(t, json.Unmarshal([]byte(output), &msg))
	assert.Equal(t, "Puzzle data reset", msg.Message)

	output, err = cli.run("puzzle", "show")
	require.NoError(t, err, "output: %s", output)
	require.NoError(t, json.Unmarshal([]byte(output), &puzzle))
	assert.False(t, puzzle.IsGameWon)
	assert.Equal(t, "ready", puzzle.Status)
}

func TestCLI_Unauthorized(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.runWithToken("sess_invalid", "puzzle", "show")
	require.Error(t, err)
	assert.Contains(t, output, "UNAUTHORIZED")
}
