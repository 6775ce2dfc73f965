package store

import "github.com/tfalohun/olera-sub001/internal/eligibility/models"

func intPtr(v int) *int { return &v }

// SeedPrograms is a small sample catalog for local development.
func SeedPrograms() []models.Program {
	return []models.Program{
		{
			ID: "medicare-savings", Name: "Medicare Savings Programs", Category: models.CategoryFinancial,
			PriorityScore: 45, MaxIncomeSingle: intPtr(1700),
			RelatedBenefits: []models.Benefit{models.BenefitMedicare},
			Description:     "Help paying Medicare premiums, deductibles and copays.",
			Website:         "https://www.medicare.gov/basics/costs/help/medicare-savings-programs",
		},
		{
			ID: "snap", Name: "SNAP", Category: models.CategoryFood,
			PriorityScore: 40, MaxIncomeSingle: intPtr(2500),
			RelatedBenefits: []models.Benefit{models.BenefitSNAP},
			Description:     "Monthly food benefits for low-income households.",
		},
		{
			ID: "pace", Name: "PACE", Category: models.CategoryHealthcare,
			PriorityScore: 35, MinAge: intPtr(55),
			RelatedBenefits: []models.Benefit{models.BenefitMedicaid, models.BenefitMedicare},
			Description:     "All-inclusive care for adults who qualify for nursing home care but live at home.",
		},
		{
			ID: "va-aid-attendance", Name: "VA Aid and Attendance", Category: models.CategoryFinancial,
			PriorityScore: 30, MinAge: intPtr(65), RequiresVeteran: true,
			RelatedBenefits: []models.Benefit{models.BenefitVA},
			Description:     "Pension supplement for veterans who need help with daily activities.",
		},
		{
			ID: "tx-star-plus", Name: "STAR+PLUS", Category: models.CategoryInHomeCare, Region: "TX",
			PriorityScore: 50, MinAge: intPtr(65), MaxIncomeSingle: intPtr(2901), RequiresMedicaid: true,
			RelatedBenefits: []models.Benefit{models.BenefitMedicaid, models.BenefitMedicare},
			Description:     "Texas Medicaid managed care with home and community-based services.",
			Phone:           "1-800-964-2777",
		},
		{
			ID: "tx-pace", Name: "PACE", Category: models.CategoryHealthcare, Region: "TX",
			PriorityScore: 40, MinAge: intPtr(55),
			RelatedBenefits: []models.Benefit{models.BenefitMedicaid, models.BenefitMedicare},
			Description:     "PACE organizations serving El Paso, Amarillo, Lubbock and San Antonio.",
		},
		{
			ID: "tx-respite", Name: "Texas Lifespan Respite Care", Category: models.CategoryRespite, Region: "TX",
			PriorityScore: 30,
			Description:   "Short-term relief for unpaid family caregivers.",
		},
	}
}

// SeedLocalResources is a small sample of regional support offices.
func SeedLocalResources() []models.LocalResource {
	return []models.LocalResource{
		{
			ID: "tx-capital-aaa", Name: "Area Agency on Aging of the Capital Area", Region: "TX",
			Counties: []string{"Travis", "Hays", "Williamson", "Bastrop"},
			ZIPCodes: []string{"78701", "78702", "78703", "78704"},
			Phone:    "1-888-622-9111",
			Script:   "Ask for a benefits counselor and mention the programs you matched.",
		},
		{
			ID: "tx-alamo-aaa", Name: "Alamo Area Agency on Aging", Region: "TX",
			Counties: []string{"Bexar", "Comal", "Guadalupe"},
			Phone:    "1-866-231-4922",
		},
		{
			ID: "ok-areawide", Name: "Areawide Aging Agency", Region: "OK",
			Counties: []string{"Oklahoma", "Canadian", "Cleveland", "Logan"},
			Phone:    "405-942-8500",
		},
	}
}

// Seed loads the sample catalog into s.
func Seed(s *InMemoryCatalog) {
	s.AddPrograms(SeedPrograms()...)
	s.AddLocalResources(SeedLocalResources()...)
}
