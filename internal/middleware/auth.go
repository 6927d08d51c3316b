package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/baharkarakas/fitgroups-api/internal/api/httpx"
	"github.com/baharkarakas/fitgroups-api/internal/auth"
)

type claimsKey struct{}

func ClaimsFrom(ctx context.Context) (*auth.Claims, bool) {
	c, ok := ctx.Value(claimsKey{}).(*auth.Claims)
	return c, ok
}

func WithClaims(ctx context.Context, c *auth.Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, c)
}

// Auth requires a valid "Authorization: Bearer <jwt>" header and stores the
// parsed claims in the request context.
func Auth(tm *auth.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ah := r.Header.Get("Authorization")
			if len(ah) < len("Bearer ") || !strings.EqualFold(ah[:len("Bearer ")], "bearer ") {
				httpx.WriteError(w, http.StatusUnauthorized, "unauthorized", "missing bearer token", nil)
				return
			}
			token := strings.TrimSpace(ah[len("Bearer "):])

			claims, err := tm.Parse(token)
			if err != nil {
				msg := "invalid access token"
				if errors.Is(err, auth.ErrExpiredToken) {
					msg = "access token expired"
				}
				httpx.WriteError(w, http.StatusUnauthorized, "unauthorized", msg, nil)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}
