package handler

import (
	"time"

	"github.com/tfalohun/olera-sub001/internal/eligibility/models"
)

// MatchResponse is the HTTP response for POST /eligibility/match.
type MatchResponse struct {
	Region           string                 `json:"region"`
	BaselinePrograms []ProgramResponse      `json:"baseline_programs"`
	RegionPrograms   []ProgramResponse      `json:"region_programs"`
	LocalResource    *LocalResourceResponse `json:"local_resource"`
	Matches          []MatchEntry           `json:"matches"`
	EvaluatedAt      time.Time              `json:"evaluated_at"`
}

type ProgramResponse struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Category        string   `json:"category"`
	Region          string   `json:"region,omitempty"`
	Description     string   `json:"description,omitempty"`
	Phone           string   `json:"phone,omitempty"`
	Website         string   `json:"website,omitempty"`
	MinAge          *int     `json:"min_age,omitempty"`
	MaxIncomeSingle *int     `json:"max_income_single,omitempty"`
	RelatedBenefits []string `json:"related_benefits,omitempty"`
}

type LocalResourceResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Website string `json:"website,omitempty"`
	Script  string `json:"script,omitempty"`
}

type MatchEntry struct {
	Program ProgramResponse `json:"program"`
	Score   int             `json:"score"`
	Tier    string          `json:"tier"`
	Reasons []string        `json:"reasons"`
}

// FromResult converts a domain MatchResult to an HTTP response.
func FromResult(result *models.MatchResult) *MatchResponse {
	resp := &MatchResponse{
		Region:           result.Region.String(),
		BaselinePrograms: toPrograms(result.BaselinePrograms),
		RegionPrograms:   toPrograms(result.RegionPrograms),
		Matches:          make([]MatchEntry, 0, len(result.Matches)),
		EvaluatedAt:      result.EvaluatedAt,
	}
	if lr := result.LocalResource; lr != nil {
		resp.LocalResource = &LocalResourceResponse{
			ID:      string(lr.ID),
			Name:    lr.Name,
			Phone:   lr.Phone,
			Website: lr.Website,
			Script:  lr.Script,
		}
	}
	for _, m := range result.Matches {
		resp.Matches = append(resp.Matches, MatchEntry{
			Program: toProgram(m.Program),
			Score:   m.Score,
			Tier:    string(m.Tier),
			Reasons: m.Reasons,
		})
	}
	return resp
}

func toPrograms(programs []models.Program) []ProgramResponse {
	out := make([]ProgramResponse, 0, len(programs))
	for _, p := range programs {
		out = append(out, toProgram(p))
	}
	return out
}

func toProgram(p models.Program) ProgramResponse {
	resp := ProgramResponse{
		ID:              string(p.ID),
		Name:            p.Name,
		Category:        string(p.Category),
		Region:          p.Region.String(),
		Description:     p.Description,
		Phone:           p.Phone,
		Website:         p.Website,
		MinAge:          p.MinAge,
		MaxIncomeSingle: p.MaxIncomeSingle,
	}
	for _, b := range p.RelatedBenefits {
		resp.RelatedBenefits = append(resp.RelatedBenefits, string(b))
	}
	return resp
}
