// Package requesttime pins one "now" per request so the cooldown filter and
// the audit stamp agree on the same instant.
package requesttime

import (
	"net/http"
	"time"

	"github.com/tfalohun/olera-sub001/pkg/requestcontext"
)

// Middleware pins the wall clock.
func Middleware(next http.Handler) http.Handler {
	return New(time.Now)(next)
}

// New pins the time reported by clock. The value is truncated to
// microseconds to match what Postgres stores.
func New(clock func() time.Time) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			now := clock().UTC().Truncate(time.Microsecond)
			next.ServeHTTP(w, r.WithContext(requestcontext.WithTime(r.Context(), now)))
		})
	}
}
