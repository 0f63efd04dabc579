package middleware

import (
	"context"
	"log/slog"
	"net/http"

	apimw "github.com/mcoot/drophunt/internal/api/middleware"
	"github.com/mcoot/drophunt/internal/services/auth"
)

type contextKey string

const (
	sessionContextKey contextKey = "session"
)

// GetSession retrieves the player's session from the request context
// Returns nil if Guest has not run
func GetSession(ctx context.Context) *auth.Session {
	session, _ := ctx.Value(sessionContextKey).(*auth.Session)
	return session
}

// Guest returns middleware that resolves the session cookie, creating a
// guest player and cookie when the request carries no valid session
func Guest(authService *auth.Service, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session := sessionFromRequest(r, authService)
			if session == nil {
				var err error
				session, err = authService.CreateGuestPlayer(r.Context(), "")
				if err != nil {
					logger.Error("failed to create guest player", slog.String("error", err.Error()))
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
					return
				}
				SetSessionCookie(w, session.Token)
			}

			ctx := context.WithValue(r.Context(), sessionContextKey, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalSession returns middleware that resolves the session cookie if
// present but never creates a player
func OptionalSession(authService *auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if session := sessionFromRequest(r, authService); session != nil {
				r = r.WithContext(context.WithValue(r.Context(), sessionContextKey, session))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// SetSessionCookie stores token in the browser session cookie
func SetSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     apimw.SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   86400, // matches the default session lifetime
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie removes the browser session cookie
func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     apimw.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func sessionFromRequest(r *http.Request, authService *auth.Service) *auth.Session {
	token := apimw.ExtractToken(r)
	if token == "" {
		return nil
	}

	session, err := authService.ValidateSession(token)
	if err != nil {
		return nil
	}
	return session
}
