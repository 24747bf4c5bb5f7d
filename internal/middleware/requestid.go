package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// RequestId tags every request with a uuid, exposed both on the
// context and in the X-Request-Id response header.
func RequestId() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := uuid.NewString()
			w.Header().Set("X-Request-Id", id)
			ctx := context.WithValue(r.Context(), CtxRequestId, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func RequestIdFrom(ctx context.Context) string {
	id, _ := ctx.Value(CtxRequestId).(string)
	return id
}
