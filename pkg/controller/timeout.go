package controller

import (
	"context"
	"net/http"
	"time"
)

// WithTimeout bounds the context of every request to d. Handlers observe the
// deadline through r.Context(). A non-positive d disables the bound.
func WithTimeout(d time.Duration, next http.Handler) http.Handler {
	if d <= 0 {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), d)
		defer cancel()

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
