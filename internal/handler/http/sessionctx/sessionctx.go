// Package sessionctx provides middleware that binds each request to a
// user session via a cookie, and context accessors for handlers.
package sessionctx

import (
	"context"
	"net/http"

	"tasktamer/internal/session"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const (
	// SessionKey is the context key for storing the resolved session.
	SessionKey contextKey = "session"
	// CookieName is the name of the session ID cookie.
	CookieName = "tasktamer_session"
)

// FromContext retrieves the session from the context.
// Returns nil if the request did not pass through Middleware.
func FromContext(ctx context.Context) *session.Session {
	if s, ok := ctx.Value(SessionKey).(*session.Session); ok {
		return s
	}
	return nil
}

// WithSession adds a session to the context.
func WithSession(ctx context.Context, s *session.Session) context.Context {
	return context.WithValue(ctx, SessionKey, s)
}

// Middleware resolves the request's session from the session cookie,
// creating a new session (and setting the cookie) when the cookie is
// missing, unknown, or expired. The resolved session is placed in the
// request context for handlers.
func Middleware(store *session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var id string
			if cookie, err := r.Cookie(CookieName); err == nil {
				id = cookie.Value
			}

			sess, resolvedID := store.GetOrCreate(id)
			if resolvedID != id {
				http.SetCookie(w, &http.Cookie{
					Name:     CookieName,
					Value:    resolvedID,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := WithSession(r.Context(), sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
