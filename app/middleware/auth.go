package middleware

import (
	"context"
	"net/http"
	"strings"

	jwtutil "repairdesk/app/jwt"
)

type ctxKey int

const ClaimsKey ctxKey = 1

// Revoker reports whether a bearer token has been logged out.
type Revoker interface {
	IsRevoked(ctx context.Context, token string) bool
}

type Auth struct {
	Signer  *jwtutil.Signer
	Revoked Revoker
}

// RequireAuth gates every /api resource route. A missing bearer token is 401,
// a token that fails verification (or was logged out) is 403.
func (a *Auth) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authz := r.Header.Get("Authorization")
		if !strings.HasPrefix(authz, "Bearer ") {
			writeAuthError(w, http.StatusUnauthorized, "Token required")
			return
		}
		token := strings.TrimPrefix(authz, "Bearer ")
		claims, err := a.Signer.Parse(token)
		if err != nil || (a.Revoked != nil && a.Revoked.IsRevoked(r.Context(), token)) {
			writeAuthError(w, http.StatusForbidden, "Invalid token")
			return
		}
		ctx := context.WithValue(r.Context(), ClaimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func writeAuthError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(`{"error":"` + msg + `"}`))
}
