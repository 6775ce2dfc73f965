package handler

import "github.com/tfalohun/olera-sub001/internal/providermatch/models"

// MatchResponse is the HTTP response for GET /providers/matches.
type MatchResponse struct {
	Candidates []CandidateResponse `json:"candidates"`
	Total      int                 `json:"total"`
	Broadened  bool                `json:"broadened"`
}

type CandidateResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	Region       string   `json:"region"`
	Locality     string   `json:"locality,omitempty"`
	Categories   []string `json:"categories"`
	QualityScore *float64 `json:"quality_score"`
}

// insufficientProfileResponse pairs the validation error with an empty
// result so clients can render the same shape either way.
type insufficientProfileResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
	MatchResponse
}

// FromResult converts a domain Result to an HTTP response.
func FromResult(result *models.Result) *MatchResponse {
	resp := &MatchResponse{
		Candidates: make([]CandidateResponse, 0, len(result.Candidates)),
		Total:      result.Total,
		Broadened:  result.Broadened,
	}
	for _, c := range result.Candidates {
		categories := c.Categories
		if categories == nil {
			categories = []string{}
		}
		resp.Candidates = append(resp.Candidates, CandidateResponse{
			ID:           string(c.ID),
			Name:         c.Name,
			Category:     c.Category,
			Region:       c.Region.String(),
			Locality:     c.Locality,
			Categories:   categories,
			QualityScore: c.QualityScore,
		})
	}
	return resp
}
