// Package auth is the gateway between bearer credentials and the rest of the
// system: it resolves a request to a principal {id, role} and gates endpoints
// by role. Everything past this package trusts the principal it produces.
package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/buildzy/be-workforce/pkg/jwt"
)

// Role is the authorization level attached to an identity.
type Role string

const (
	RoleAdmin         Role = "admin"
	RoleSubcontractor Role = "subcontractor"
)

// Principal is the authenticated actor attached to a request.
type Principal struct {
	ID       string
	Username string
	Role     Role
}

type contextKey struct{}

// FromContext extracts the principal placed by Authenticate.
func FromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(contextKey{}).(Principal)
	return p, ok
}

// WithPrincipal returns a context carrying the given principal. Exposed for tests.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, contextKey{}, p)
}

// Gateway verifies bearer tokens and enforces per-endpoint role gates.
type Gateway struct {
	tokens *jwt.Manager
	log    zerolog.Logger
}

func NewGateway(tokens *jwt.Manager, log zerolog.Logger) *Gateway {
	return &Gateway{tokens: tokens, log: log}
}

// Authenticate rejects requests without a valid bearer token and attaches the
// resolved principal to the request context.
func (g *Gateway) Authenticate(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			writeDenied(w, http.StatusUnauthorized, "Missing or invalid authorization header")
			return
		}

		claims, err := g.tokens.ValidateToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			g.log.Warn().Err(err).Str("path", r.URL.Path).Msg("Token rejected")
			writeDenied(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		principal := Principal{
			ID:       claims.UserID,
			Username: claims.Username,
			Role:     Role(claims.Role),
		}

		next(w, r.WithContext(WithPrincipal(r.Context(), principal)))
	}
}

// RequireRole rejects authenticated requests whose principal's role is not in
// the allowed set. Must run after Authenticate.
func (g *Gateway) RequireRole(roles ...Role) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			principal, ok := FromContext(r.Context())
			if !ok {
				writeDenied(w, http.StatusUnauthorized, "Missing or invalid authorization header")
				return
			}

			for _, role := range roles {
				if principal.Role == role {
					next(w, r)
					return
				}
			}

			g.log.Warn().
				Str("user_id", principal.ID).
				Str("role", string(principal.Role)).
				Str("path", r.URL.Path).
				Msg("Role gate rejected request")
			writeDenied(w, http.StatusForbidden, "Insufficient permissions")
		}
	}
}

func writeDenied(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"message": message,
	})
}
