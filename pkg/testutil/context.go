package testutil

import (
	"net/http"
	"time"

	id "github.com/tfalohun/olera-sub001/pkg/domain"
	"github.com/tfalohun/olera-sub001/pkg/requestcontext"
)

// WithUserID adds a user ID to the request context, the way the auth
// middleware does for authenticated requests. Invalid UUIDs are ignored.
func WithUserID(req *http.Request, userID string) *http.Request {
	parsed, err := id.ParseUserID(userID)
	if err != nil {
		return req
	}
	return req.WithContext(requestcontext.WithUserID(req.Context(), parsed))
}

// WithRequestTime pins the request-scoped clock.
func WithRequestTime(req *http.Request, now time.Time) *http.Request {
	return req.WithContext(requestcontext.WithTime(req.Context(), now))
}
