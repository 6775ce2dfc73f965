package store

import (
	"context"
	"slices"
	"sync"

	"github.com/tfalohun/olera-sub001/internal/eligibility/models"
	"github.com/tfalohun/olera-sub001/pkg/region"
)

// InMemoryCatalog serves programs and support offices from memory in
// insertion order. It backs local development and handler tests.
type InMemoryCatalog struct {
	mu        sync.RWMutex
	programs  []models.Program
	resources []models.LocalResource
}

func NewInMemoryCatalog() *InMemoryCatalog {
	return &InMemoryCatalog{}
}

// AddPrograms appends programs. A program with an empty Region belongs to
// the nationwide baseline.
func (s *InMemoryCatalog) AddPrograms(programs ...models.Program) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.programs = append(s.programs, programs...)
}

func (s *InMemoryCatalog) AddLocalResources(resources ...models.LocalResource) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resources = append(s.resources, resources...)
}

func (s *InMemoryCatalog) ListBaselinePrograms(_ context.Context) ([]models.Program, error) {
	return s.filterPrograms(""), nil
}

func (s *InMemoryCatalog) ListRegionPrograms(_ context.Context, code region.Code) ([]models.Program, error) {
	if code.IsZero() {
		return []models.Program{}, nil
	}
	return s.filterPrograms(code), nil
}

func (s *InMemoryCatalog) ListLocalResources(_ context.Context, code region.Code) ([]models.LocalResource, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.LocalResource{}
	for _, r := range s.resources {
		if r.Region == code {
			r.Counties = slices.Clone(r.Counties)
			r.ZIPCodes = slices.Clone(r.ZIPCodes)
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *InMemoryCatalog) filterPrograms(code region.Code) []models.Program {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Program{}
	for _, p := range s.programs {
		if p.Region == code {
			p.RelatedBenefits = slices.Clone(p.RelatedBenefits)
			out = append(out, p)
		}
	}
	return out
}
