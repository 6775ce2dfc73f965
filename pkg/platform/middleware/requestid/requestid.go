// Package requestid copies chi's request id into requestcontext so services
// and stores can log it without importing chi.
package requestid

import (
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/tfalohun/olera-sub001/pkg/requestcontext"
)

// Middleware must run after chi's middleware.RequestID.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := requestcontext.WithRequestID(r.Context(), chimw.GetReqID(r.Context()))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
