package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tfalohun/olera-sub001/internal/providermatch/models"
	id "github.com/tfalohun/olera-sub001/pkg/domain"
)

func TestInMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewInMemoryStore()
	Seed(s)
	userID := id.UserID(uuid.New())

	t.Run("missing requester is nil without error", func(t *testing.T) {
		r, err := s.FindRequester(ctx, userID)
		require.NoError(t, err)
		assert.Nil(t, r)
	})

	t.Run("requester round trip", func(t *testing.T) {
		s.PutRequester(models.Requester{UserID: userID, Region: "TX", CareNeeds: []models.CareType{models.CareTypeHospice}})
		r, err := s.FindRequester(ctx, userID)
		require.NoError(t, err)
		require.NotNil(t, r)
		assert.Equal(t, []models.CareType{models.CareTypeHospice}, r.CareNeeds)
	})

	t.Run("relationships", func(t *testing.T) {
		rels, err := s.ListRelationships(ctx, userID)
		require.NoError(t, err)
		assert.Empty(t, rels)

		s.AddRelationship(userID, models.Relationship{CandidateID: "tx-hill-country-hospice", Kind: models.RelationshipDismissed, CreatedAt: time.Now()})
		rels, err = s.ListRelationships(ctx, userID)
		require.NoError(t, err)
		assert.Len(t, rels, 1)
	})

	t.Run("search", func(t *testing.T) {
		page, err := s.SearchCandidates(ctx, models.Query{Region: "TX", Categories: []string{"Assisted Living"}, Sort: models.SortHighestRated})
		require.NoError(t, err)
		assert.Equal(t, 2, page.Total)
		require.Len(t, page.Candidates, 2)
		assert.Equal(t, models.CandidateID("tx-live-oak-memory"), page.Candidates[0].ID)
	})
}
