package models

import "github.com/tfalohun/olera-sub001/pkg/region"

// Query is one search pass against the candidate catalog. An empty
// Categories slice means no category filter.
type Query struct {
	Region            region.Code
	Categories        []string
	Exclude           map[CandidateID]struct{}
	Sort              SortMode
	RequesterLocality string
	Offset            int
	Limit             int
}

// WithoutCategories returns a copy of q with the category filter removed.
func (q Query) WithoutCategories() Query {
	q.Categories = nil
	return q
}

// Page is one window of a search pass. Total counts every candidate the
// pass matched before pagination.
type Page struct {
	Candidates []Candidate
	Total      int
}

// Result is the merged outcome of the strict and broad passes.
type Result struct {
	Candidates []Candidate
	Total      int
	// Broadened is true when the category filter had to be dropped.
	Broadened bool
	// Excluded counts the candidate IDs hidden by prior relationships.
	Excluded int
}
