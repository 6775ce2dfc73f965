package providermatch

import "github.com/tfalohun/olera-sub001/internal/providermatch/models"

// careTypeLabels maps the user-facing care types to the provider catalog's
// category labels.
var careTypeLabels = map[models.CareType]string{
	models.CareTypeHomeCare:          "Home Care",
	models.CareTypeHomeHealth:        "Home Health Care",
	models.CareTypeAssistedLiving:    "Assisted Living",
	models.CareTypeMemoryCare:        "Memory Care",
	models.CareTypeAdultDay:          "Adult Day Care",
	models.CareTypeHospice:           "Hospice",
	models.CareTypeNursingHome:       "Nursing Home",
	models.CareTypeIndependentLiving: "Independent Living",
}

// MapCareType returns the catalog label for t. A miss means no category
// filter is available for that care type.
func MapCareType(t models.CareType) (string, bool) {
	label, ok := careTypeLabels[t]
	return label, ok
}

// MapCareNeeds maps every need to its label, dropping misses and repeats.
// Labels keep the order of the first need that produced them.
func MapCareNeeds(needs []models.CareType) []string {
	labels := make([]string, 0, len(needs))
	seen := make(map[string]struct{}, len(needs))
	for _, need := range needs {
		label, ok := MapCareType(need)
		if !ok {
			continue
		}
		if _, dup := seen[label]; dup {
			continue
		}
		seen[label] = struct{}{}
		labels = append(labels, label)
	}
	return labels
}
