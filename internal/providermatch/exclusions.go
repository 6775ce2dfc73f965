package providermatch

import (
	"time"

	"github.com/tfalohun/olera-sub001/internal/providermatch/models"
)

// ComputeExclusions returns the candidates to hide from a requester. Active
// relationships always hide the candidate. A dismissal hides it while the
// dismissal is at most cooldownDays old, boundary included; after that the
// candidate shows up again without any write-back.
func ComputeExclusions(rels []models.Relationship, cooldownDays int, now time.Time) map[models.CandidateID]struct{} {
	excluded := make(map[models.CandidateID]struct{}, len(rels))
	window := time.Duration(cooldownDays) * 24 * time.Hour

	for _, rel := range rels {
		switch rel.Kind {
		case models.RelationshipActive:
			excluded[rel.CandidateID] = struct{}{}
		case models.RelationshipDismissed:
			if now.Sub(rel.CreatedAt) <= window {
				excluded[rel.CandidateID] = struct{}{}
			}
		}
	}
	return excluded
}
