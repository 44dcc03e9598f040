// internal/app/system/auth/auth.go

// Package auth carries the authenticated user through request context.
//
// The API is token-based: clients send "Authorization: Bearer <jwt>" on every
// call, LoadTokenUser verifies the token and injects a TokenUser, and the
// request-gating middlewares (RequireSignedIn, RequireRole) answer with the
// API's JSON error envelope. There is no server-side session state.
package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/Sajid788/Volunteer-Hours-Tracker/internal/app/system/apperr"
	"go.uber.org/zap"
)

// TokenUser is the identity extracted from a verified bearer token and
// injected into r.Context().
type TokenUser struct {
	ID   string
	Name string
	Role string
}

type ctxKey string

const currentUserKey ctxKey = "currentUser"

// CurrentUser returns the user and a "found?" flag.
func CurrentUser(r *http.Request) (*TokenUser, bool) {
	u, ok := r.Context().Value(currentUserKey).(*TokenUser)
	return u, ok
}

// Middleware verifies bearer tokens and gates routes.
type Middleware struct {
	tokens *TokenManager
	log    *zap.Logger
}

// NewMiddleware builds the auth middleware around a TokenManager.
func NewMiddleware(tokens *TokenManager, logger *zap.Logger) *Middleware {
	return &Middleware{tokens: tokens, log: logger}
}

// LoadTokenUser injects the user into context when a valid bearer token is
// present. Invalid or absent tokens are not an error here; protected routes
// enforce presence via RequireSignedIn.
func (m *Middleware) LoadTokenUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := bearerToken(r)
		if raw == "" {
			next.ServeHTTP(w, r)
			return
		}
		claims, err := m.tokens.Verify(raw)
		if err != nil {
			m.log.Debug("bearer token rejected", zap.Error(err))
			next.ServeHTTP(w, r)
			return
		}
		u := &TokenUser{
			ID:   claims.Subject,
			Name: claims.Name,
			Role: claims.Role,
		}
		next.ServeHTTP(w, withUser(r, u))
	})
}

// RequireSignedIn ensures there is a user in context (set by LoadTokenUser).
// If not signed in, responds 401 with the JSON error envelope.
func (m *Middleware) RequireSignedIn(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := CurrentUser(r); !ok {
			apperr.WriteJSON(w, http.StatusUnauthorized, "Not authorized to access this route")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRole ensures the signed-in user has one of the allowed roles.
// Handlers behind this middleware still re-check ownership and record state;
// this only gates the coarse role.
func (m *Middleware) RequireRole(allowed ...string) func(http.Handler) http.Handler {
	set := make(map[string]struct{}, len(allowed))
	for _, role := range allowed {
		set[strings.ToLower(strings.TrimSpace(role))] = struct{}{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u, ok := CurrentUser(r)
			if !ok {
				apperr.WriteJSON(w, http.StatusUnauthorized, "Not authorized to access this route")
				return
			}
			if _, has := set[strings.ToLower(u.Role)]; !has {
				apperr.WriteJSON(w, http.StatusUnauthorized,
					"User role "+u.Role+" is not authorized to access this route")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// WithTestUser injects a user into the request context directly.
// For handler tests only; bypasses token verification.
func WithTestUser(r *http.Request, u *TokenUser) *http.Request {
	return withUser(r, u)
}

// helpers

func withUser(r *http.Request, u *TokenUser) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), currentUserKey, u))
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
