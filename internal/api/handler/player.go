package handler

import (
	"net/http"

	"github.com/mcoot/drophunt/internal/api/middleware"
	"github.com/mcoot/drophunt/internal/api/request"
	"github.com/mcoot/drophunt/internal/api/response"
	"github.com/mcoot/drophunt/internal/model"
	"github.com/mcoot/drophunt/internal/services/auth"
)

// PlayerHandler handles player-related endpoints
type PlayerHandler struct {
	authService *auth.Service
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(authService *auth.Service) *PlayerHandler {
	return &PlayerHandler{
		authService: authService,
	}
}

// CreateGuest handles POST /api/v1/players/guest
func (h *PlayerHandler) CreateGuest(w http.ResponseWriter, r *http.Request) {
	var req request.CreateGuestRequest
	if err := request.Decode(r, &req); err != nil {
		WriteError(w, NewInvalidRequestError(err.Error()))
		return
	}

	session, err := h.authService.CreateGuestPlayer(r.Context(), req.DisplayName)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.AuthResponseFromSession(session))
}

// GetMe handles GET /api/v1/players/me
func (h *PlayerHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	session := middleware.MustGetSession(r.Context())
	response.JSON(w, http.StatusOK, response.PlayerFromSession(session))
}

// SetProfile handles PUT /api/v1/players/me/profile
func (h *PlayerHandler) SetProfile(w http.ResponseWriter, r *http.Request) {
	session := middleware.MustGetSession(r.Context())

	var req request.ProfileRequest
	if err := request.Decode(r, &req); err != nil {
		WriteError(w, NewInvalidRequestError(err.Error()))
		return
	}

	profile := &model.UserProfile{
		FavoriteCategories: req.FavoriteCategories,
		PurchaseHistory:    req.PurchaseHistory,
		PreferredBrands:    req.PreferredBrands,
		IsEcoConscious:     req.IsEcoConscious,
		StylePreference:    model.StylePreference(req.StylePreference),
	}
	if err := h.authService.SetProfile(session.Token, profile); err != nil {
		WriteError(w, err)
		return
	}

	session.Profile = profile
	response.JSON(w, http.StatusOK, response.PlayerFromSession(session))
}
