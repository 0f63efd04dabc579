package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/mcoot/drophunt/internal/api/apierr"
	"github.com/mcoot/drophunt/internal/api/response"
	"github.com/mcoot/drophunt/internal/dependencies/clock"
	"github.com/mcoot/drophunt/internal/model"
	"github.com/mcoot/drophunt/internal/services/puzzle"
	"github.com/mcoot/drophunt/internal/web/middleware"
	"github.com/mcoot/drophunt/internal/web/templates/layout"
	"github.com/mcoot/drophunt/internal/web/templates/pages"
)

// PuzzleHandler serves the daily puzzle page and its form actions
type PuzzleHandler struct {
	manager *puzzle.Manager
	clock   clock.Clock
	logger  *slog.Logger
}

// NewPuzzleHandler creates a new PuzzleHandler
func NewPuzzleHandler(manager *puzzle.Manager, clock clock.Clock, logger *slog.Logger) *PuzzleHandler {
	return &PuzzleHandler{
		manager: manager,
		clock:   clock,
		logger:  logger,
	}
}

// Home renders today's puzzle
func (h *PuzzleHandler) Home(w http.ResponseWriter, r *http.Request) {
	session := middleware.GetSession(r.Context())

	var data pages.PuzzleData
	err := h.manager.Do(r.Context(), session.PlayerID, session.Profile, func(s *puzzle.Session) error {
		data = pages.PuzzleData{
			PageData: layout.PageData{
				Title:  "Today's drop",
				Flash:  middleware.GetFlash(r.Context()),
				Player: &session.Player,
			},
			Puzzle: response.PuzzleFromSession(s, h.clock.Now()),
		}
		return nil
	})
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pages.Puzzle(data).Render(r.Context(), w); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// Reveal reveals the next clue
func (h *PuzzleHandler) Reveal(w http.ResponseWriter, r *http.Request) {
	h.act(w, r, func(s *puzzle.Session) error {
		s.RevealNextClue()
		return nil
	})
}

// Guess submits the chosen candidate
func (h *PuzzleHandler) Guess(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		middleware.SetFlash(w, "error", "Invalid form data")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	guess := strings.TrimSpace(r.FormValue("product_id"))
	if guess == "" {
		middleware.SetFlash(w, "error", "Pick a product to guess")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	h.act(w, r, func(s *puzzle.Session) error {
		if s.Status() != model.SessionStatusReady {
			return nil
		}
		correct, err := s.MakeGuess(r.Context(), model.ProductID(guess))
		if correct {
			middleware.SetFlash(w, "success", "You found today's drop!")
		} else {
			middleware.SetFlash(w, "error", "Not quite. Try another clue.")
		}
		return err
	})
}

// Reset clears the player's stored puzzle data
func (h *PuzzleHandler) Reset(w http.ResponseWriter, r *http.Request) {
	h.act(w, r, func(s *puzzle.Session) error {
		middleware.SetFlash(w, "info", "Your puzzle data has been reset")
		return s.ResetAll(r.Context())
	})
}

// act runs fn against the player's session and redirects back to the
// puzzle. Errors from fn are persistence failures and are only logged.
func (h *PuzzleHandler) act(w http.ResponseWriter, r *http.Request, fn func(*puzzle.Session) error) {
	session := middleware.GetSession(r.Context())

	err := h.manager.Do(r.Context(), session.PlayerID, session.Profile, func(s *puzzle.Session) error {
		if err := fn(s); err != nil {
			h.logger.Error("puzzle persistence failed",
				slog.String("player_id", string(session.PlayerID)),
				slog.String("path", r.URL.Path),
				slog.String("error", err.Error()),
			)
		}
		return nil
	})
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *PuzzleHandler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Error("failed to load puzzle", slog.String("error", err.Error()))

	data := layout.PageData{Title: "Error"}
	if session := middleware.GetSession(r.Context()); session != nil {
		data.Player = &session.Player
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(apierr.Status(err))
	_ = pages.Error(data, "Today's puzzle could not be loaded.").Render(r.Context(), w)
}
