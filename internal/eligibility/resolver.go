package eligibility

import (
	"slices"
	"strings"

	"github.com/tfalohun/olera-sub001/internal/eligibility/models"
	"github.com/tfalohun/olera-sub001/pkg/region"
)

// ResolveLocalResource picks the single best support office for a location.
// Candidates outside the region are ignored. Among the rest, preference is:
//  1. an office whose ZIP list contains zip
//  2. an office whose county list contains county (case-insensitive)
//  3. the first office by name
//
// Returns nil only when no office serves the region.
func ResolveLocalResource(candidates []models.LocalResource, code region.Code, zip, county string) *models.LocalResource {
	inRegion := make([]models.LocalResource, 0, len(candidates))
	for _, c := range candidates {
		if c.Region == code {
			inRegion = append(inRegion, c)
		}
	}
	if len(inRegion) == 0 {
		return nil
	}

	slices.SortStableFunc(inRegion, func(a, b models.LocalResource) int {
		return strings.Compare(a.Name, b.Name)
	})

	zip = strings.TrimSpace(zip)
	if zip != "" {
		for i := range inRegion {
			if slices.Contains(inRegion[i].ZIPCodes, zip) {
				return &inRegion[i]
			}
		}
	}

	county = strings.TrimSpace(county)
	if county != "" {
		for i := range inRegion {
			for _, c := range inRegion[i].Counties {
				if strings.EqualFold(strings.TrimSpace(c), county) {
					return &inRegion[i]
				}
			}
		}
	}

	return &inRegion[0]
}
