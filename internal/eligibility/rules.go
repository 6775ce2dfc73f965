package eligibility

import (
	"sort"

	"github.com/tfalohun/olera-sub001/internal/eligibility/models"
)

const (
	maxScore = 100

	ageBoost         = 10
	incomeBoost      = 15
	medicaidBoost    = 10
	medicareBoost    = 5
	categoryBoost    = 25
	topMatchFloor    = 80
	goodFitFloor     = 60
	maxRankedMatches = 20
)

const (
	ReasonMeetsAge      = "Meets age requirement"
	ReasonWithinIncome  = "Within income guidelines"
	ReasonHasMedicaid   = "Has Medicaid"
	ReasonMatchesNeeds  = "Matches your care needs"
	ReasonMayBeEligible = "May be eligible"
)

// Score evaluates one program against an answer set.
// Returns nil when a hard requirement rules the program out.
// This is pure domain logic - no I/O, no side effects.
//
// Rule order:
//  1. Age below the program minimum (hard fail, only when age is known)
//  2. Medicaid required but not confirmed (hard fail)
//  3. Soft boosts: age, income, Medicaid, category relevance
//
// Veteran and disability requirements are informational and never checked.
func Score(p models.Program, a models.AnswerSet, relevant map[models.Category]struct{}) *models.Match {
	if a.Age != nil && p.MinAge != nil && *a.Age < *p.MinAge {
		return nil
	}
	if p.RequiresMedicaid && !a.BenefitStatus.HoldsMedicaid() {
		return nil
	}

	score := p.PriorityScore
	var reasons []string

	if a.Age != nil && p.MinAge != nil {
		score += ageBoost
		reasons = append(reasons, ReasonMeetsAge)
	}

	if income, ok := a.Income.EstimatedMonthly(); ok && p.MaxIncomeSingle != nil && income <= *p.MaxIncomeSingle {
		score += incomeBoost
		reasons = append(reasons, ReasonWithinIncome)
	}

	if a.BenefitStatus.HoldsMedicaid() && p.ExpectsMedicaid() {
		score += medicaidBoost
		reasons = append(reasons, ReasonHasMedicaid)
		// Dual eligibility carries no reason of its own.
		if p.References(models.BenefitMedicare) {
			score += medicareBoost
		}
	}

	if _, ok := relevant[p.Category]; ok {
		score += categoryBoost
		reasons = append(reasons, ReasonMatchesNeeds)
	}

	if score > maxScore {
		score = maxScore
	}
	if score < 0 {
		score = 0
	}
	if len(reasons) == 0 {
		reasons = []string{ReasonMayBeEligible}
	}

	return &models.Match{
		Program: p,
		Score:   score,
		Reasons: reasons,
		Tier:    TierFor(score),
	}
}

// TierFor derives the display tier from a score.
func TierFor(score int) models.Tier {
	switch {
	case score >= topMatchFloor:
		return models.TierTopMatch
	case score >= goodFitFloor:
		return models.TierGoodFit
	default:
		return models.TierWorthExploring
	}
}

// Rank scores every program, drops disqualified ones and orders the rest
// best first. Equal scores keep catalog order. The result holds at most 20
// matches.
func Rank(programs []models.Program, a models.AnswerSet) []models.Match {
	relevant := MapNeeds(a.Needs)

	matches := make([]models.Match, 0, len(programs))
	for _, p := range programs {
		if m := Score(p, a, relevant); m != nil {
			matches = append(matches, *m)
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if len(matches) > maxRankedMatches {
		matches = matches[:maxRankedMatches]
	}
	return matches
}
