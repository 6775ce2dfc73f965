// Package memory is an in-process audit sink for local runs and tests.
package memory

import (
	"context"
	"slices"
	"sync"

	id "github.com/tfalohun/olera-sub001/pkg/domain"
	audit "github.com/tfalohun/olera-sub001/pkg/platform/audit"
)

// InMemoryStore is an append-only event log kept in arrival order.
type InMemoryStore struct {
	mu  sync.RWMutex
	log []audit.Event
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{}
}

func (s *InMemoryStore) Append(_ context.Context, event audit.Event) error {
	s.mu.Lock()
	s.log = append(s.log, event)
	s.mu.Unlock()
	return nil
}

// ListByUser returns the events of one user. The zero ID selects anonymous
// events.
func (s *InMemoryStore) ListByUser(_ context.Context, userID id.UserID) ([]audit.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []audit.Event{}
	for _, e := range s.log {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

// ListAll returns a copy of the whole log.
func (s *InMemoryStore) ListAll(_ context.Context) ([]audit.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.log), nil
}
