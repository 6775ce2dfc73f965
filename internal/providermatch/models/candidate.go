package models

import (
	"time"

	"github.com/tfalohun/olera-sub001/pkg/region"
)

// CandidateID identifies a provider in the external catalog.
type CandidateID string

// Candidate is a read-only provider record. Category is the provider's
// primary label; Categories holds every label it serves and drives
// relevance filtering.
type Candidate struct {
	ID           CandidateID
	Name         string
	Category     string
	Region       region.Code
	Locality     string
	Categories   []string
	QualityScore *float64
}

// HasAnyCategory reports whether the candidate serves at least one of labels.
func (c Candidate) HasAnyCategory(labels []string) bool {
	for _, want := range labels {
		for _, have := range c.Categories {
			if have == want {
				return true
			}
		}
	}
	return false
}

// RelationshipKind is the kind of prior action a requester took on a
// candidate.
type RelationshipKind string

const (
	// RelationshipActive is an outstanding engagement such as an open inquiry.
	RelationshipActive RelationshipKind = "active"
	// RelationshipDismissed hides the candidate for the cooldown window.
	RelationshipDismissed RelationshipKind = "dismissed"
)

// Relationship is one entry of a requester's history with a candidate.
type Relationship struct {
	CandidateID CandidateID
	Kind        RelationshipKind
	CreatedAt   time.Time
}
