package models

import (
	"time"

	"github.com/tfalohun/olera-sub001/pkg/region"
)

// Tier is a coarse label derived from a match score.
type Tier string

const (
	TierTopMatch       Tier = "Top Match"
	TierGoodFit        Tier = "Good Fit"
	TierWorthExploring Tier = "Worth Exploring"
)

// Match is a scored program for one request. It is never stored.
type Match struct {
	Program Program
	Score   int
	Reasons []string
	Tier    Tier
}

// MatchResult is everything an eligibility request returns.
type MatchResult struct {
	Region           region.Code
	BaselinePrograms []Program
	RegionPrograms   []Program
	LocalResource    *LocalResource
	Matches          []Match
	EvaluatedAt      time.Time
}

// Catalog holds the three independent fetches an eligibility request needs.
type Catalog struct {
	Baseline  []Program
	Regional  []Program
	Resources []LocalResource
	FetchedAt time.Time
	Latencies CatalogLatencies
}

// CatalogLatencies records per-source fetch durations.
type CatalogLatencies struct {
	Baseline  time.Duration
	Regional  time.Duration
	Resources time.Duration
}
