package handler

import (
	"fmt"
	"strings"

	"github.com/tfalohun/olera-sub001/internal/eligibility/models"
	dErrors "github.com/tfalohun/olera-sub001/pkg/domain-errors"
	pstrings "github.com/tfalohun/olera-sub001/pkg/platform/strings"
	"github.com/tfalohun/olera-sub001/pkg/region"
)

const (
	maxNeeds       = 12
	maxLocationLen = 64
	maxAge         = 130
)

// MatchRequest is the HTTP request body for POST /eligibility/match.
type MatchRequest struct {
	ZIP           string   `json:"zip"`
	State         string   `json:"state"`
	County        string   `json:"county"`
	Age           *int     `json:"age"`
	CareSetting   string   `json:"care_setting"`
	Needs         []string `json:"needs"`
	Income        string   `json:"income"`
	BenefitStatus string   `json:"benefit_status"`

	// Parsed values (populated by Validate)
	answers models.AnswerSet
}

// Validate validates and parses the request.
// Implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *MatchRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}

	// Size validation (fail fast)
	if len(r.State) > maxLocationLen || len(r.County) > maxLocationLen || len(r.ZIP) > maxLocationLen {
		return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("location fields must be at most %d characters", maxLocationLen))
	}
	needs := pstrings.DedupeAndTrim(r.Needs)
	if len(needs) > maxNeeds {
		return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("at most %d needs are allowed", maxNeeds))
	}

	answers := models.AnswerSet{
		County: strings.TrimSpace(r.County),
	}

	if strings.TrimSpace(r.ZIP) != "" {
		zip, ok := region.NormalizeZIP(r.ZIP)
		if !ok {
			return dErrors.New(dErrors.CodeValidation, "zip must be a 5-digit postal code")
		}
		answers.ZIP = zip
	}
	if strings.TrimSpace(r.State) != "" {
		answers.Region = region.Normalize(r.State)
	}
	if answers.ZIP == "" && answers.Region.IsZero() {
		return dErrors.New(dErrors.CodeValidation, "state or zip is required")
	}

	if r.Age != nil {
		if *r.Age < 0 || *r.Age > maxAge {
			return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("age must be between 0 and %d", maxAge))
		}
		age := *r.Age
		answers.Age = &age
	}

	var err error
	if answers.CareSetting, err = models.ParseCareSetting(r.CareSetting); err != nil {
		return err
	}
	if answers.Income, err = models.ParseIncomeBracket(r.Income); err != nil {
		return err
	}
	if answers.BenefitStatus, err = models.ParseBenefitStatus(r.BenefitStatus); err != nil {
		return err
	}
	for _, n := range needs {
		tag, err := models.ParseNeedTag(n)
		if err != nil {
			return err
		}
		answers.Needs = append(answers.Needs, tag)
	}

	r.answers = answers
	return nil
}

// AnswerSet returns the validated intake.
func (r *MatchRequest) AnswerSet() models.AnswerSet {
	return r.answers
}
