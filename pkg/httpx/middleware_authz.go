package httpx

import (
	"context"
	"net/http"
	"slices"

	"github.com/aussiebroadwan/pitchdeck/pkg/slogx"
)

// RequireRole lets the request through only when the authenticated role is
// one of roles. It must run after AuthnMiddleware.
func RequireRole(roles ...string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !slices.Contains(roles, RoleFromContext(r.Context())) {
				WriteError(w, http.StatusForbidden, "Access denied")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RoleLookup returns the role currently stored for userID, or "" when the
// user no longer exists or may not sign in.
type RoleLookup func(ctx context.Context, userID string) (string, error)

// RequireCurrentRole is RequireRole followed by the same check against the
// stored role, so tokens minted before a role change stop working.
func RequireCurrentRole(lookup RoleLookup, roles ...string) Middleware {
	return func(next http.Handler) http.Handler {
		stored := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, err := lookup(r.Context(), UserIDFromContext(r.Context()))
			if err != nil {
				slogx.FromContext(r.Context()).Error("role lookup failed", "err", err)
				WriteError(w, http.StatusInternalServerError, "Internal Server Error")
				return
			}
			if !slices.Contains(roles, role) {
				WriteError(w, http.StatusForbidden, "Access denied")
				return
			}
			next.ServeHTTP(w, r)
		})
		return RequireRole(roles...)(stored)
	}
}
