package store

import "github.com/tfalohun/olera-sub001/internal/providermatch/models"

func rating(v float64) *float64 { return &v }

// SeedCandidates is a small sample provider catalog for local development.
func SeedCandidates() []models.Candidate {
	return []models.Candidate{
		{ID: "tx-bluebonnet-home", Name: "Bluebonnet Home Care", Category: "Home Care", Region: "TX", Locality: "Austin",
			Categories: []string{"Home Care", "Home Health Care"}, QualityScore: rating(4.8)},
		{ID: "tx-live-oak-memory", Name: "Live Oak Memory Care", Category: "Memory Care", Region: "TX", Locality: "Round Rock",
			Categories: []string{"Memory Care", "Assisted Living"}, QualityScore: rating(4.6)},
		{ID: "tx-pecan-adult-day", Name: "Pecan Street Adult Day", Category: "Adult Day Care", Region: "TX", Locality: "Austin",
			Categories: []string{"Adult Day Care"}},
		{ID: "tx-hill-country-hospice", Name: "Hill Country Hospice", Category: "Hospice", Region: "TX", Locality: "San Marcos",
			Categories: []string{"Hospice"}, QualityScore: rating(4.9)},
		{ID: "tx-riverbend-living", Name: "Riverbend Senior Living", Category: "Assisted Living", Region: "TX", Locality: "San Antonio",
			Categories: []string{"Assisted Living", "Independent Living"}, QualityScore: rating(4.1)},
		{ID: "ok-red-dirt-home", Name: "Red Dirt Home Care", Category: "Home Care", Region: "OK", Locality: "Norman",
			Categories: []string{"Home Care"}, QualityScore: rating(4.4)},
	}
}

// Seed loads the sample catalog into s.
func Seed(s *InMemoryStore) {
	s.AddCandidates(SeedCandidates()...)
}
