package eligibility

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tfalohun/olera-sub001/internal/eligibility/models"
)

func TestMapNeeds(t *testing.T) {
	tests := []struct {
		name  string
		needs []models.NeedTag
		want  []models.Category
	}{
		{"nil", nil, nil},
		{"single", []models.NeedTag{models.NeedHealthManagement}, []models.Category{models.CategoryHealthcare}},
		{
			"fan out",
			[]models.NeedTag{models.NeedMemoryCare},
			[]models.Category{models.CategoryHealthcare, models.CategoryCaregiverSupport},
		},
		{
			"union without duplicates",
			[]models.NeedTag{models.NeedCompanionship, models.NeedCaregiverRelief, models.NeedDailyActivities},
			[]models.Category{models.CategoryInHomeCare, models.CategoryCaregiverSupport, models.CategoryRespite},
		},
		{"unmapped tag contributes nothing", []models.NeedTag{"gardening"}, nil},
		{
			"housing tags share a category",
			[]models.NeedTag{models.NeedHousingHelp, models.NeedHomeModifications},
			[]models.Category{models.CategoryHousing},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapNeeds(tt.needs)
			assert.Len(t, got, len(tt.want))
			for _, c := range tt.want {
				assert.Contains(t, got, c)
			}
		})
	}
}

func TestMapNeeds_OrderIndependentAndIdempotent(t *testing.T) {
	a := MapNeeds([]models.NeedTag{models.NeedLegalPlanning, models.NeedMentalHealth, models.NeedTransportation})
	b := MapNeeds([]models.NeedTag{models.NeedTransportation, models.NeedLegalPlanning, models.NeedMentalHealth, models.NeedLegalPlanning})
	assert.Equal(t, a, b)
}

func TestEveryNeedTagIsMapped(t *testing.T) {
	for tag := range needCategories {
		_, err := models.ParseNeedTag(string(tag))
		assert.NoError(t, err, "table key %q must be a known need", tag)
		assert.NotEmpty(t, needCategories[tag])
	}
}
