package providermatch

import (
	"sort"
	"strings"

	"github.com/tfalohun/olera-sub001/internal/providermatch/models"
)

// SortCandidates orders candidates in place for mode.
//
// Neither "closest" nor "relevance" has a real signal behind it: closest
// orders by locality name when the requester's locality is known, and
// relevance falls back to the highest-rated order.
func SortCandidates(candidates []models.Candidate, mode models.SortMode, requesterLocality string) {
	byLocality := mode == models.SortClosest && strings.TrimSpace(requesterLocality) != ""

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if byLocality {
			la, lb := strings.ToLower(a.Locality), strings.ToLower(b.Locality)
			if la != lb {
				return la < lb
			}
		}
		if c := compareQuality(a.QualityScore, b.QualityScore); c != 0 {
			return c > 0
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.ID < b.ID
	})
}

// compareQuality returns >0 when a ranks ahead of b. Missing scores rank last.
func compareQuality(a, b *float64) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	case *a > *b:
		return 1
	case *a < *b:
		return -1
	}
	return 0
}
