package handler

import (
	"net/http"
	"strings"

	"github.com/mcoot/drophunt/internal/services/auth"
	"github.com/mcoot/drophunt/internal/services/puzzle"
	"github.com/mcoot/drophunt/internal/web/middleware"
)

// AuthHandler handles guest identity actions
type AuthHandler struct {
	authService *auth.Service
	manager     *puzzle.Manager
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *auth.Service, manager *puzzle.Manager) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		manager:     manager,
	}
}

// CreateGuest starts a new named guest player and replaces the session cookie
func (h *AuthHandler) CreateGuest(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		middleware.SetFlash(w, "error", "Invalid form data")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	displayName := strings.TrimSpace(r.FormValue("display_name"))
	session, err := h.authService.CreateGuestPlayer(r.Context(), displayName)
	if err != nil {
		middleware.SetFlash(w, "error", "Failed to create guest player")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	middleware.SetSessionCookie(w, session.Token)
	middleware.SetFlash(w, "success", "Welcome, "+session.Player.DisplayName+"!")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Logout ends the current session; the next visit starts a fresh guest
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if session := middleware.GetSession(r.Context()); session != nil {
		h.authService.InvalidateSession(session.Token)
		h.manager.Forget(session.PlayerID)
	}
	middleware.ClearSessionCookie(w)

	middleware.SetFlash(w, "info", "You have been logged out")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
