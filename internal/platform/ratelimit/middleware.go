package ratelimit

import (
	"context"
	"log/slog"
	"math"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/tfalohun/olera-sub001/pkg/platform/httputil"
)

// Limiter throttles requests by client address. A nil *Limiter passes
// every request through.
type Limiter struct {
	window   *Window
	logger   *slog.Logger
	rejected prometheus.Counter
}

// New returns nil when limit is not positive, which disables throttling.
func New(limit int, window time.Duration, reg prometheus.Registerer, logger *slog.Logger) *Limiter {
	if limit <= 0 || window <= 0 {
		if logger != nil {
			logger.Info("rate limiting disabled")
		}
		return nil
	}
	return &Limiter{
		window: NewWindow(limit, window),
		logger: logger,
		rejected: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "olera_ratelimit_rejected_total",
			Help: "Requests rejected by the per-client rate limiter",
		}),
	}
}

// Handler enforces the limit on next.
func (l *Limiter) Handler(next http.Handler) http.Handler {
	if l == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		res := l.window.Allow(clientKey(r))
		setHeaders(w, res)
		if res.Allowed {
			next.ServeHTTP(w, r)
			return
		}

		l.rejected.Inc()
		if l.logger != nil {
			l.logger.WarnContext(r.Context(), "rate limit exceeded", "path", r.URL.Path)
		}
		retry := retrySeconds(res.RetryAfter)
		w.Header().Set("Retry-After", strconv.Itoa(retry))
		httputil.WriteJSON(w, http.StatusTooManyRequests, map[string]any{
			"error":             "rate_limit_exceeded",
			"error_description": "too many requests, try again later",
			"retry_after":       retry,
		})
	})
}

// RunSweeper evicts idle keys every interval until ctx is done.
func (l *Limiter) RunSweeper(ctx context.Context, interval time.Duration) {
	if l == nil {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.window.Sweep()
		}
	}
}

// clientKey expects chi's RealIP to have already rewritten RemoteAddr.
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func setHeaders(w http.ResponseWriter, res Result) {
	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(res.Limit))
	w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))
	w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(res.ResetAt.Unix(), 10))
}

func retrySeconds(d time.Duration) int {
	s := int(math.Ceil(d.Seconds()))
	if s < 1 {
		return 1
	}
	return s
}
