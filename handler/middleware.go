package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/phbpx/hotel/auth"
)

const tokenCookie = "token"

var (
	errNotAuthenticated = errors.New("please log in")
	errAdminRequired    = errors.New("admin access required")
)

type Authenticator struct {
	tokens *auth.Tokens
}

func NewAuthenticator(tokens *auth.Tokens) *Authenticator {
	return &Authenticator{tokens: tokens}
}

// RequireAuth resolves the caller from the session cookie or a bearer
// token and stores the identity in the request context.
func (a *Authenticator) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		raw := bearerToken(r)
		if raw == "" {
			respondErr(r.Context(), rw, http.StatusUnauthorized, errNotAuthenticated)
			return
		}

		id, err := a.tokens.Parse(raw)
		if err != nil {
			respondErr(r.Context(), rw, http.StatusUnauthorized, err)
			return
		}

		next.ServeHTTP(rw, r.WithContext(auth.WithIdentity(r.Context(), id)))
	})
}

func (a *Authenticator) RequireAdmin(next http.Handler) http.Handler {
	return a.RequireAuth(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		if id, _ := auth.FromContext(r.Context()); !id.IsAdmin() {
			respondErr(r.Context(), rw, http.StatusForbidden, errAdminRequired)
			return
		}
		next.ServeHTTP(rw, r)
	}))
}

// bearerToken prefers a non-empty Authorization bearer value and falls
// back to the session cookie.
func bearerToken(r *http.Request) string {
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		if tok := strings.TrimSpace(strings.TrimPrefix(h, "Bearer ")); tok != "" {
			return tok
		}
	}
	if c, err := r.Cookie(tokenCookie); err == nil {
		return c.Value
	}
	return ""
}
