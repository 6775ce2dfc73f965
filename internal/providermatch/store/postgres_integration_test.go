//go:build integration

package store_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/suite"

	"github.com/tfalohun/olera-sub001/internal/providermatch"
	"github.com/tfalohun/olera-sub001/internal/providermatch/models"
	"github.com/tfalohun/olera-sub001/internal/providermatch/store"
	id "github.com/tfalohun/olera-sub001/pkg/domain"
	"github.com/tfalohun/olera-sub001/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *store.PostgresStore
	userID   id.UserID
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.postgres = containers.GetManager().GetPostgres(s.T())
	s.store = store.NewPostgresStore(s.postgres.DB, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func (s *PostgresStoreSuite) SetupTest() {
	ctx := context.Background()
	s.Require().NoError(s.postgres.TruncateTables(ctx, "providers", "requester_profiles", "provider_relationships"))
	for _, c := range store.SeedCandidates() {
		s.Require().NoError(s.store.UpsertCandidate(ctx, c))
	}
	s.userID = id.UserID(uuid.New())
}

func (s *PostgresStoreSuite) TestFindRequester() {
	ctx := context.Background()

	missing, err := s.store.FindRequester(ctx, s.userID)
	s.Require().NoError(err)
	s.Nil(missing)

	_, err = s.postgres.DB.ExecContext(ctx,
		`INSERT INTO requester_profiles (user_id, region, locality, care_needs) VALUES ($1, $2, $3, $4)`,
		uuid.UUID(s.userID), "texas", "Austin", pq.Array([]string{"home_care", "pet_sitting", "hospice"}))
	s.Require().NoError(err)

	r, err := s.store.FindRequester(ctx, s.userID)
	s.Require().NoError(err)
	s.Require().NotNil(r)
	s.Equal("TX", r.Region.String())
	s.Equal([]models.CareType{models.CareTypeHomeCare, models.CareTypeHospice}, r.CareNeeds)
}

func (s *PostgresStoreSuite) TestListRelationships() {
	ctx := context.Background()
	created := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	_, err := s.postgres.DB.ExecContext(ctx,
		`INSERT INTO provider_relationships (requester_id, candidate_id, kind, created_at) VALUES ($1, $2, $3, $4)`,
		uuid.UUID(s.userID), "tx-hill-country-hospice", "dismissed", created)
	s.Require().NoError(err)

	rels, err := s.store.ListRelationships(ctx, s.userID)
	s.Require().NoError(err)
	s.Require().Len(rels, 1)
	s.Equal(models.RelationshipDismissed, rels[0].Kind)
	s.True(created.Equal(rels[0].CreatedAt))
}

func (s *PostgresStoreSuite) TestSearchMatchesInMemoryReference() {
	ctx := context.Background()
	queries := []models.Query{
		{Region: "TX", Categories: []string{"Assisted Living"}, Sort: models.SortHighestRated, Limit: 20},
		{Region: "TX", Sort: models.SortRelevance, Limit: 2, Offset: 1},
		{Region: "TX", Sort: models.SortClosest, RequesterLocality: "Austin", Limit: 20},
		{Region: "TX", Limit: 20, Exclude: map[models.CandidateID]struct{}{"tx-bluebonnet-home": {}}},
		{Region: "OK", Categories: []string{"Hospice"}, Limit: 20},
	}

	for _, q := range queries {
		want := providermatch.ApplyQuery(store.SeedCandidates(), q)
		got, err := s.store.SearchCandidates(ctx, q)
		s.Require().NoError(err)
		s.Equal(want.Total, got.Total)
		s.Equal(want.Candidates, got.Candidates)
	}
}
