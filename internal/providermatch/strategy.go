package providermatch

import (
	"context"
	"fmt"

	"github.com/tfalohun/olera-sub001/internal/providermatch/models"
)

// MinStrictResults is the strict-pass size below which the search drops
// the category filter and runs again.
const MinStrictResults = 5

// SearchFunc runs one search pass. Repositories implement it; ApplyQuery is
// the in-memory version.
type SearchFunc func(ctx context.Context, q models.Query) (models.Page, error)

// Strategy runs the strict pass and, when it comes back short, the broad
// pass.
type Strategy struct {
	MinStrictResults int
}

// FindMatches runs the two-pass search with the default threshold.
func FindMatches(ctx context.Context, search SearchFunc, q models.Query) (models.Result, error) {
	return Strategy{MinStrictResults: MinStrictResults}.FindMatches(ctx, search, q)
}

// FindMatches returns strict results first, then broad results that were not
// already present, truncated to q.Limit. When the broad pass ran, Total is the
// larger of the two pass totals.
func (s Strategy) FindMatches(ctx context.Context, search SearchFunc, q models.Query) (models.Result, error) {
	threshold := s.MinStrictResults
	if threshold <= 0 {
		threshold = MinStrictResults
	}

	strict, err := search(ctx, q)
	if err != nil {
		return models.Result{}, fmt.Errorf("strict search: %w", err)
	}
	result := models.Result{
		Candidates: nonNil(strict.Candidates),
		Total:      strict.Total,
	}

	// Without a category filter the broad pass would repeat the strict one.
	if len(strict.Candidates) >= threshold || len(q.Categories) == 0 {
		return result, nil
	}

	broad, err := search(ctx, q.WithoutCategories())
	if err != nil {
		return models.Result{}, fmt.Errorf("broad search: %w", err)
	}

	result.Candidates = mergeCandidates(strict.Candidates, broad.Candidates, q.Limit)
	result.Total = max(strict.Total, broad.Total)
	result.Broadened = true
	return result, nil
}

func mergeCandidates(strict, broad []models.Candidate, limit int) []models.Candidate {
	merged := make([]models.Candidate, 0, len(strict)+len(broad))
	seen := make(map[models.CandidateID]struct{}, len(strict))
	for _, c := range strict {
		seen[c.ID] = struct{}{}
		merged = append(merged, c)
	}
	for _, c := range broad {
		if _, dup := seen[c.ID]; dup {
			continue
		}
		seen[c.ID] = struct{}{}
		merged = append(merged, c)
	}
	if limit > 0 && len(merged) > limit {
		merged = merged[:limit]
	}
	return merged
}

// ApplyQuery runs q against an in-memory candidate list: region filter,
// category overlap, exclusions, sort, then the offset/limit window.
func ApplyQuery(candidates []models.Candidate, q models.Query) models.Page {
	matched := make([]models.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if c.Region != q.Region {
			continue
		}
		if len(q.Categories) > 0 && !c.HasAnyCategory(q.Categories) {
			continue
		}
		if _, hidden := q.Exclude[c.ID]; hidden {
			continue
		}
		matched = append(matched, c)
	}

	SortCandidates(matched, q.Sort, q.RequesterLocality)

	offset := max(q.Offset, 0)
	page := models.Page{Total: len(matched), Candidates: []models.Candidate{}}
	if offset >= len(matched) {
		return page
	}
	end := len(matched)
	if q.Limit > 0 && offset+q.Limit < end {
		end = offset + q.Limit
	}
	page.Candidates = matched[offset:end]
	return page
}

func nonNil(c []models.Candidate) []models.Candidate {
	if c == nil {
		return []models.Candidate{}
	}
	return c
}
