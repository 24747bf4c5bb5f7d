package middleware

import (
	"context"
	"net/http"

	"github.com/sweephq/sweeper/internal/config"
)

type CtxKey int

const (
	CtxPlayerClaims CtxKey = iota
	CtxRequestId
)

// Auth parses the split auth cookies into player claims on the
// request context. Requests with no or invalid cookies pass through
// anonymously with the cookies cleared.
func Auth(cookies *config.Cookies, jwt *config.JWT) Middleware {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := cookies.Token(r)
			if err != nil {
				h.ServeHTTP(w, r)
				return
			}
			claims, err := jwt.ParsePlayerClaims(token)
			if err != nil {
				cookies.Clear(w)
				h.ServeHTTP(w, r)
				return
			}
			ctx := context.WithValue(r.Context(), CtxPlayerClaims, claims)
			h.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// PlayerClaims extracts claims placed on the context by Auth.
func PlayerClaims(ctx context.Context) (*config.PlayerClaims, bool) {
	claims, ok := ctx.Value(CtxPlayerClaims).(*config.PlayerClaims)
	return claims, ok
}
