// Package ratelimit throttles anonymous traffic per client address with an
// in-process sliding window.
package ratelimit

import (
	"sync"
	"time"
)

// Result describes the outcome of a single Allow call.
type Result struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetAt    time.Time
	RetryAfter time.Duration
}

// Window is a sliding-window counter keyed by an arbitrary string.
// It is safe for concurrent use.
type Window struct {
	mu      sync.Mutex
	limit   int
	window  time.Duration
	now     func() time.Time
	entries map[string][]time.Time
}

// NewWindow allows limit hits per key within window.
func NewWindow(limit int, window time.Duration) *Window {
	return &Window{
		limit:   limit,
		window:  window,
		now:     time.Now,
		entries: make(map[string][]time.Time),
	}
}

// Allow records a hit for key when the key is under its limit.
func (w *Window) Allow(key string) Result {
	w.mu.Lock()
	defer w.mu.Unlock()

	now := w.now()
	hits := prune(w.entries[key], now.Add(-w.window))

	if len(hits) >= w.limit {
		w.entries[key] = hits
		reset := hits[0].Add(w.window)
		return Result{
			Allowed:    false,
			Limit:      w.limit,
			ResetAt:    reset,
			RetryAfter: reset.Sub(now),
		}
	}

	hits = append(hits, now)
	w.entries[key] = hits
	return Result{
		Allowed:   true,
		Limit:     w.limit,
		Remaining: w.limit - len(hits),
		ResetAt:   hits[0].Add(w.window),
	}
}

// Sweep drops keys whose hits have all expired.
func (w *Window) Sweep() {
	w.mu.Lock()
	defer w.mu.Unlock()

	cutoff := w.now().Add(-w.window)
	for key, hits := range w.entries {
		if hits = prune(hits, cutoff); len(hits) == 0 {
			delete(w.entries, key)
		} else {
			w.entries[key] = hits
		}
	}
}

func (w *Window) size() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.entries)
}

// prune drops hits at or before cutoff. hits is kept in arrival order.
func prune(hits []time.Time, cutoff time.Time) []time.Time {
	i := 0
	for ; i < len(hits); i++ {
		if hits[i].After(cutoff) {
			break
		}
	}
	return hits[i:]
}
