package middleware

import (
	"context"
	"net/http"

	"worklog/session"
)

type contextKey string

const IdentityContextKey contextKey = "identity"

// RequireSession loads the signed-in identity into the request context.
// Without a usable session the request is sent to the login page; an
// unreadable cookie is cleared on the way.
func RequireSession(sessions *session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, err := sessions.Load(r)
			if err != nil {
				if _, cerr := r.Cookie(session.CookieName); cerr == nil {
					sessions.Clear(w)
				}
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}

			ctx := WithIdentity(r.Context(), identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func WithIdentity(ctx context.Context, identity *session.Identity) context.Context {
	return context.WithValue(ctx, IdentityContextKey, identity)
}

func GetIdentityFromContext(ctx context.Context) *session.Identity {
	identity, ok := ctx.Value(IdentityContextKey).(*session.Identity)
	if !ok {
		return nil
	}
	return identity
}
