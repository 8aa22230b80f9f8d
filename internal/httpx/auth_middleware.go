package httpx

import (
	"context"
	"net/http"
	"strings"

	"bookreview/internal/platform/crypto"
)

// TokenCookie is the cookie login sets alongside returning the token.
const TokenCookie = "token"

// BlacklistRepository reports whether a token id was revoked by logout.
type BlacklistRepository interface {
	IsBlacklisted(ctx context.Context, jti string) (bool, error)
}

func bearerToken(r *http.Request) string {
	if authHeader := r.Header.Get("Authorization"); strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	if c, err := r.Cookie(TokenCookie); err == nil {
		return c.Value
	}
	return ""
}

func AuthMiddleware(secret string, blacklistRepo BlacklistRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Access token required", nil)
				return
			}

			claims, err := crypto.ParseToken(secret, token)
			if err != nil {
				JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid token", nil)
				return
			}

			if blacklistRepo != nil {
				isBlacklisted, err := blacklistRepo.IsBlacklisted(r.Context(), claims.ID)
				if err != nil || isBlacklisted {
					JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid token", nil)
					return
				}
			}

			if rw, ok := w.(*responseWriter); ok {
				rw.userID = claims.Sub
			}

			ctx := ContextWithUser(r.Context(), claims.Sub, claims.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
