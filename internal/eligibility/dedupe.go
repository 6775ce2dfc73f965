package eligibility

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/tfalohun/olera-sub001/internal/eligibility/models"
)

// DedupePrograms concatenates program lists in priority order and keeps the
// first program for each display name. Names compare after Unicode
// normalization, case folding and trimming.
func DedupePrograms(lists ...[]models.Program) []models.Program {
	seen := make(map[string]struct{})
	var out []models.Program
	for _, list := range lists {
		for _, p := range list {
			key := normalizeName(p.Name)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, p)
		}
	}
	return out
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(norm.NFKC.String(name)))
}
