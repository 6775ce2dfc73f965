package models

import (
	"fmt"
	"strings"

	dErrors "github.com/tfalohun/olera-sub001/pkg/domain-errors"
)

// Category is the canonical program category vocabulary used by the benefit
// catalog.
type Category string

const (
	CategoryHealthcare       Category = "healthcare"
	CategoryCaregiverSupport Category = "caregiver_support"
	CategoryInHomeCare       Category = "in_home_care"
	CategoryFood             Category = "food"
	CategoryTransportation   Category = "transportation"
	CategoryHousing          Category = "housing"
	CategoryFinancial        Category = "financial"
	CategoryRespite          Category = "respite"
	CategoryLegal            Category = "legal"
	CategoryMentalHealth     Category = "mental_health"
)

var validCategories = map[Category]struct{}{
	CategoryHealthcare:       {},
	CategoryCaregiverSupport: {},
	CategoryInHomeCare:       {},
	CategoryFood:             {},
	CategoryTransportation:   {},
	CategoryHousing:          {},
	CategoryFinancial:        {},
	CategoryRespite:          {},
	CategoryLegal:            {},
	CategoryMentalHealth:     {},
}

// ParseCategory validates a catalog category string.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := validCategories[c]; !ok {
		return "", fmt.Errorf("unknown program category %q", s)
	}
	return c, nil
}

func (c Category) String() string {
	return string(c)
}

// NeedTag is the user-facing care-need taxonomy collected by the intake.
type NeedTag string

const (
	NeedHealthManagement  NeedTag = "healthManagement"
	NeedMemoryCare        NeedTag = "memoryCare"
	NeedDailyActivities   NeedTag = "dailyActivities"
	NeedCompanionship     NeedTag = "companionship"
	NeedMealsNutrition    NeedTag = "mealsNutrition"
	NeedTransportation    NeedTag = "transportation"
	NeedHousingHelp       NeedTag = "housingHelp"
	NeedHomeModifications NeedTag = "homeModifications"
	NeedFinancialHelp     NeedTag = "financialHelp"
	NeedCaregiverRelief   NeedTag = "caregiverRelief"
	NeedLegalPlanning     NeedTag = "legalPlanning"
	NeedMentalHealth      NeedTag = "mentalHealth"
)

var validNeedTags = map[NeedTag]struct{}{
	NeedHealthManagement:  {},
	NeedMemoryCare:        {},
	NeedDailyActivities:   {},
	NeedCompanionship:     {},
	NeedMealsNutrition:    {},
	NeedTransportation:    {},
	NeedHousingHelp:       {},
	NeedHomeModifications: {},
	NeedFinancialHelp:     {},
	NeedCaregiverRelief:   {},
	NeedLegalPlanning:     {},
	NeedMentalHealth:      {},
}

// ParseNeedTag validates an intake need tag. Tags are case-sensitive.
func ParseNeedTag(s string) (NeedTag, error) {
	t := NeedTag(strings.TrimSpace(s))
	if _, ok := validNeedTags[t]; !ok {
		return "", dErrors.New(dErrors.CodeValidation, fmt.Sprintf("unknown need %q", s))
	}
	return t, nil
}
