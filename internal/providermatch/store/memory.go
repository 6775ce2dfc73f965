package store

import (
	"context"
	"slices"
	"sync"

	"github.com/tfalohun/olera-sub001/internal/providermatch"
	"github.com/tfalohun/olera-sub001/internal/providermatch/models"
	id "github.com/tfalohun/olera-sub001/pkg/domain"
)

// InMemoryStore serves requester profiles, relationship history and the
// provider catalog from memory.
type InMemoryStore struct {
	mu            sync.RWMutex
	requesters    map[id.UserID]models.Requester
	relationships map[id.UserID][]models.Relationship
	candidates    []models.Candidate
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		requesters:    make(map[id.UserID]models.Requester),
		relationships: make(map[id.UserID][]models.Relationship),
	}
}

func (s *InMemoryStore) PutRequester(r models.Requester) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requesters[r.UserID] = r
}

func (s *InMemoryStore) AddRelationship(userID id.UserID, rel models.Relationship) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.relationships[userID] = append(s.relationships[userID], rel)
}

func (s *InMemoryStore) AddCandidates(candidates ...models.Candidate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.candidates = append(s.candidates, candidates...)
}

func (s *InMemoryStore) FindRequester(_ context.Context, userID id.UserID) (*models.Requester, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.requesters[userID]
	if !ok {
		return nil, nil
	}
	r.CareNeeds = slices.Clone(r.CareNeeds)
	return &r, nil
}

func (s *InMemoryStore) ListRelationships(_ context.Context, userID id.UserID) ([]models.Relationship, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.relationships[userID]), nil
}

func (s *InMemoryStore) SearchCandidates(_ context.Context, q models.Query) (models.Page, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return providermatch.ApplyQuery(s.candidates, q), nil
}
