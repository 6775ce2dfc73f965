package eligibility

import "github.com/tfalohun/olera-sub001/internal/eligibility/models"

// needCategories maps each intake need to the catalog categories that can
// serve it.
var needCategories = map[models.NeedTag][]models.Category{
	models.NeedHealthManagement:  {models.CategoryHealthcare},
	models.NeedMemoryCare:        {models.CategoryHealthcare, models.CategoryCaregiverSupport},
	models.NeedDailyActivities:   {models.CategoryInHomeCare},
	models.NeedCompanionship:     {models.CategoryInHomeCare, models.CategoryCaregiverSupport},
	models.NeedMealsNutrition:    {models.CategoryFood},
	models.NeedTransportation:    {models.CategoryTransportation},
	models.NeedHousingHelp:       {models.CategoryHousing},
	models.NeedHomeModifications: {models.CategoryHousing},
	models.NeedFinancialHelp:     {models.CategoryFinancial},
	models.NeedCaregiverRelief:   {models.CategoryRespite, models.CategoryCaregiverSupport},
	models.NeedLegalPlanning:     {models.CategoryLegal},
	models.NeedMentalHealth:      {models.CategoryMentalHealth},
}

// MapNeeds returns the union of catalog categories relevant to the given
// needs. Unmapped tags contribute nothing.
func MapNeeds(tags []models.NeedTag) map[models.Category]struct{} {
	relevant := make(map[models.Category]struct{})
	for _, tag := range tags {
		for _, c := range needCategories[tag] {
			relevant[c] = struct{}{}
		}
	}
	return relevant
}
