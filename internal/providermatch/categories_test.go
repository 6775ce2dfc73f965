package providermatch

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tfalohun/olera-sub001/internal/providermatch/models"
)

func TestMapCareType(t *testing.T) {
	label, ok := MapCareType(models.CareTypeAdultDay)
	assert.True(t, ok)
	assert.Equal(t, "Adult Day Care", label)

	label, ok = MapCareType("respite")
	assert.False(t, ok)
	assert.Empty(t, label)
}

func TestMapCareNeeds(t *testing.T) {
	got := MapCareNeeds([]models.CareType{
		models.CareTypeMemoryCare,
		"unknown",
		models.CareTypeHomeCare,
		models.CareTypeMemoryCare,
	})
	assert.Equal(t, []string{"Memory Care", "Home Care"}, got)
	assert.Empty(t, MapCareNeeds(nil))
}
