// Package requestcontext carries request-scoped values (the authenticated
// seeker, the request id and the pinned request time) through
// context.Context so services never import net/http.
//
// Tests pin the clock the same way the middleware does:
//
//	ctx = requestcontext.WithTime(ctx, fixedTime)
package requestcontext

import (
	"context"
	"time"

	id "github.com/tfalohun/olera-sub001/pkg/domain"
)

type key int

const (
	keyUserID key = iota
	keyRequestID
	keyRequestTime
)

func value[T any](ctx context.Context, k key) (T, bool) {
	v, ok := ctx.Value(k).(T)
	return v, ok
}

// UserID returns the authenticated seeker, or the nil ID for anonymous
// requests.
func UserID(ctx context.Context) id.UserID {
	v, _ := value[id.UserID](ctx, keyUserID)
	return v
}

func WithUserID(ctx context.Context, userID id.UserID) context.Context {
	return context.WithValue(ctx, keyUserID, userID)
}

// RequestID returns "" outside an HTTP request.
func RequestID(ctx context.Context) string {
	v, _ := value[string](ctx, keyRequestID)
	return v
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, keyRequestID, requestID)
}

// Now returns the pinned request time, falling back to the wall clock.
// Dismissal cooldowns are measured against it.
func Now(ctx context.Context) time.Time {
	if t, ok := value[time.Time](ctx, keyRequestTime); ok {
		return t
	}
	return time.Now()
}

func WithTime(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, keyRequestTime, t)
}
