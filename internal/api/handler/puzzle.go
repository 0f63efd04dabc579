package handler

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/drophunt/internal/api/middleware"
	"github.com/mcoot/drophunt/internal/api/request"
	"github.com/mcoot/drophunt/internal/api/response"
	"github.com/mcoot/drophunt/internal/dependencies/clock"
	"github.com/mcoot/drophunt/internal/model"
	"github.com/mcoot/drophunt/internal/services/puzzle"
)

// PuzzleHandler handles the daily puzzle endpoints
type PuzzleHandler struct {
	manager *puzzle.Manager
	clock   clock.Clock
	logger  *slog.Logger
}

// NewPuzzleHandler creates a new puzzle handler
func NewPuzzleHandler(manager *puzzle.Manager, clock clock.Clock, logger *slog.Logger) *PuzzleHandler {
	return &PuzzleHandler{
		manager: manager,
		clock:   clock,
		logger:  logger,
	}
}

// do runs fn against the caller's session. Errors from fn are treated as
// persistence failures: they are logged and the response is still written.
func (h *PuzzleHandler) do(w http.ResponseWriter, r *http.Request, fn func(*puzzle.Session) error, respond func(*puzzle.Session)) {
	session := middleware.MustGetSession(r.Context())

	err := h.manager.Do(r.Context(), session.PlayerID, session.Profile, func(s *puzzle.Session) error {
		if err := fn(s); err != nil {
			h.logger.Error("puzzle persistence failed",
				slog.String("player_id", string(session.PlayerID)),
				slog.String("path", r.URL.Path),
				slog.String("error", err.Error()),
			)
		}
		respond(s)
		return nil
	})
	if err != nil {
		h.logger.Error("failed to load puzzle",
			slog.String("player_id", string(session.PlayerID)),
			slog.String("error", err.Error()),
		)
		WriteError(w, err)
	}
}

func (h *PuzzleHandler) writePuzzle(w http.ResponseWriter) func(*puzzle.Session) {
	return func(s *puzzle.Session) {
		response.JSON(w, http.StatusOK, response.PuzzleFromSession(s, h.clock.Now()))
	}
}

func noop(*puzzle.Session) error { return nil }

// Today handles GET /api/v1/puzzle/today
func (h *PuzzleHandler) Today(w http.ResponseWriter, r *http.Request) {
	h.do(w, r, noop, h.writePuzzle(w))
}

// Reveal handles POST /api/v1/puzzle/today/reveal
func (h *PuzzleHandler) Reveal(w http.ResponseWriter, r *http.Request) {
	h.do(w, r, func(s *puzzle.Session) error {
		s.RevealNextClue()
		return nil
	}, h.writePuzzle(w))
}

// Guess handles POST /api/v1/puzzle/today/guess
func (h *PuzzleHandler) Guess(w http.ResponseWriter, r *http.Request) {
	var req request.GuessRequest
	if err := request.Decode(r, &req); err != nil {
		WriteError(w, NewInvalidRequestError(err.Error()))
		return
	}

	var correct bool
	h.do(w, r, func(s *puzzle.Session) error {
		var err error
		correct, err = s.MakeGuess(r.Context(), model.ProductID(req.ProductID))
		return err
	}, func(s *puzzle.Session) {
		response.JSON(w, http.StatusOK, response.GuessResponse{
			Correct: correct,
			Puzzle:  response.PuzzleFromSession(s, h.clock.Now()),
		})
	})
}

// AmendProduct handles PATCH /api/v1/puzzle/today/product
func (h *PuzzleHandler) AmendProduct(w http.ResponseWriter, r *http.Request) {
	var req request.AmendProductRequest
	if err := request.Decode(r, &req); err != nil {
		WriteError(w, NewInvalidRequestError(err.Error()))
		return
	}

	patch := model.ProductPatch{Image: req.Image}
	if req.CanonicalID != nil {
		id := model.ProductID(*req.CanonicalID)
		patch.CanonicalID = &id
	}

	var amended bool
	h.do(w, r, func(s *puzzle.Session) error {
		var err error
		amended, err = s.AmendProduct(r.Context(), patch)
		return err
	}, func(s *puzzle.Session) {
		if !amended {
			WriteError(w, model.ErrNoProductAvailable)
			return
		}
		response.JSON(w, http.StatusOK, response.PuzzleFromSession(s, h.clock.Now()))
	})
}

// Reset handles DELETE /api/v1/puzzle/data
func (h *PuzzleHandler) Reset(w http.ResponseWriter, r *http.Request) {
	h.do(w, r, func(s *puzzle.Session) error {
		return s.ResetAll(r.Context())
	}, func(*puzzle.Session) {
		response.NoContent(w)
	})
}
