package models

import (
	"fmt"
	"strings"

	id "github.com/tfalohun/olera-sub001/pkg/domain"
	dErrors "github.com/tfalohun/olera-sub001/pkg/domain-errors"
	"github.com/tfalohun/olera-sub001/pkg/region"
)

// CareType is the user-facing vocabulary for the kind of care a requester
// is looking for.
type CareType string

const (
	CareTypeHomeCare          CareType = "home_care"
	CareTypeHomeHealth        CareType = "home_health"
	CareTypeAssistedLiving    CareType = "assisted_living"
	CareTypeMemoryCare        CareType = "memory_care"
	CareTypeAdultDay          CareType = "adult_day"
	CareTypeHospice           CareType = "hospice"
	CareTypeNursingHome       CareType = "nursing_home"
	CareTypeIndependentLiving CareType = "independent_living"
)

var careTypes = map[CareType]struct{}{
	CareTypeHomeCare:          {},
	CareTypeHomeHealth:        {},
	CareTypeAssistedLiving:    {},
	CareTypeMemoryCare:        {},
	CareTypeAdultDay:          {},
	CareTypeHospice:           {},
	CareTypeNursingHome:       {},
	CareTypeIndependentLiving: {},
}

// ParseCareType accepts the care types above, case-insensitively.
func ParseCareType(raw string) (CareType, error) {
	t := CareType(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := careTypes[t]; !ok {
		return "", fmt.Errorf("unknown care type %q", raw)
	}
	return t, nil
}

// Requester is the already-resolved profile of the user asking for matches.
type Requester struct {
	UserID    id.UserID
	Region    region.Code
	Locality  string
	CareNeeds []CareType
}

// Sufficient reports whether the profile carries enough to search: a region
// and at least one declared care need.
func (r *Requester) Sufficient() bool {
	return r != nil && !r.Region.IsZero() && len(r.CareNeeds) > 0
}

// SortMode orders provider results.
type SortMode string

const (
	SortRelevance    SortMode = "relevance"
	SortClosest      SortMode = "closest"
	SortHighestRated SortMode = "highest_rated"
)

// ParseSortMode maps an empty value to SortRelevance.
func ParseSortMode(raw string) (SortMode, error) {
	switch m := SortMode(strings.TrimSpace(raw)); m {
	case "":
		return SortRelevance, nil
	case SortRelevance, SortClosest, SortHighestRated:
		return m, nil
	default:
		return "", dErrors.New(dErrors.CodeValidation, "sort must be one of relevance, closest, highest_rated")
	}
}
