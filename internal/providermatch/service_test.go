package providermatch

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/tfalohun/olera-sub001/internal/providermatch/models"
	"github.com/tfalohun/olera-sub001/internal/providermatch/ports/mocks"
	id "github.com/tfalohun/olera-sub001/pkg/domain"
	dErrors "github.com/tfalohun/olera-sub001/pkg/domain-errors"
	"github.com/tfalohun/olera-sub001/pkg/platform/audit/publisher"
	"github.com/tfalohun/olera-sub001/pkg/platform/audit/store/memory"
	"github.com/tfalohun/olera-sub001/pkg/requestcontext"
)

type ServiceSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	requesters    *mocks.MockRequesterStore
	relationships *mocks.MockRelationshipStore
	candidates    *mocks.MockCandidateStore
	events        *memory.InMemoryStore
	service       *Service
	userID        id.UserID
	now           time.Time
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.requesters = mocks.NewMockRequesterStore(s.ctrl)
	s.relationships = mocks.NewMockRelationshipStore(s.ctrl)
	s.candidates = mocks.NewMockCandidateStore(s.ctrl)
	s.events = memory.NewInMemoryStore()
	s.userID = id.UserID(uuid.New())
	s.now = time.Date(2026, 4, 10, 12, 0, 0, 0, time.UTC)

	svc, err := New(s.requesters, s.relationships, s.candidates,
		WithAuditor(publisher.NewPublisher(s.events)),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithCooldownDays(14),
	)
	s.Require().NoError(err)
	s.service = svc
}

func (s *ServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ServiceSuite) ctx() context.Context {
	return requestcontext.WithTime(context.Background(), s.now)
}

func (s *ServiceSuite) requester() *models.Requester {
	return &models.Requester{
		UserID:    s.userID,
		Region:    "TX",
		Locality:  "Austin",
		CareNeeds: []models.CareType{models.CareTypeHomeCare, models.CareTypeMemoryCare},
	}
}

func (s *ServiceSuite) TestNew_RequiresStores() {
	_, err := New(nil, s.relationships, s.candidates)
	s.Error(err)
}

func (s *ServiceSuite) TestMatch_BuildsQueryFromProfileAndHistory() {
	rels := []models.Relationship{
		{CandidateID: "inquired", Kind: models.RelationshipActive, CreatedAt: s.now.AddDate(-1, 0, 0)},
		{CandidateID: "dismissed-recently", Kind: models.RelationshipDismissed, CreatedAt: s.now.AddDate(0, 0, -14)},
		{CandidateID: "dismissed-long-ago", Kind: models.RelationshipDismissed, CreatedAt: s.now.AddDate(0, 0, -15)},
	}
	page := models.Page{Candidates: candidates("strict", 5), Total: 5}

	s.requesters.EXPECT().FindRequester(gomock.Any(), s.userID).Return(s.requester(), nil)
	s.relationships.EXPECT().ListRelationships(gomock.Any(), s.userID).Return(rels, nil)
	s.candidates.EXPECT().SearchCandidates(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q models.Query) (models.Page, error) {
			s.Equal([]string{"Home Care", "Memory Care"}, q.Categories)
			s.Equal("Austin", q.RequesterLocality)
			s.Equal(models.SortClosest, q.Sort)
			s.Equal(10, q.Offset)
			s.Equal(5, q.Limit)
			s.Contains(q.Exclude, models.CandidateID("inquired"))
			s.Contains(q.Exclude, models.CandidateID("dismissed-recently"))
			s.NotContains(q.Exclude, models.CandidateID("dismissed-long-ago"))
			return page, nil
		})

	result, err := s.service.Match(s.ctx(), s.userID, PageRequest{Sort: models.SortClosest, Offset: 10, Limit: 5})
	s.Require().NoError(err)
	s.False(result.Broadened)
	s.Equal(2, result.Excluded)
	s.Len(result.Candidates, 5)

	events, err := s.events.ListByUser(context.Background(), s.userID)
	s.Require().NoError(err)
	s.Require().Len(events, 1)
	s.Equal("providers_matched", events[0].Action)
	s.Equal("strict", events[0].Outcome)
	s.Equal(5, events[0].Count)
}

func (s *ServiceSuite) TestMatch_BroadensShortStrictPass() {
	s.requesters.EXPECT().FindRequester(gomock.Any(), s.userID).Return(s.requester(), nil)
	s.relationships.EXPECT().ListRelationships(gomock.Any(), s.userID).Return(nil, nil)
	gomock.InOrder(
		s.candidates.EXPECT().SearchCandidates(gomock.Any(), gomock.Any()).
			Return(models.Page{Candidates: candidates("strict", 3), Total: 3}, nil),
		s.candidates.EXPECT().SearchCandidates(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, q models.Query) (models.Page, error) {
				s.Empty(q.Categories)
				return models.Page{Candidates: candidates("broad", 12), Total: 12}, nil
			}),
	)

	result, err := s.service.Match(s.ctx(), s.userID, PageRequest{Limit: 20})
	s.Require().NoError(err)
	s.True(result.Broadened)
	s.Equal(12, result.Total)
	s.Equal(ids(candidates("strict", 3)), ids(result.Candidates[:3]))
}

func (s *ServiceSuite) TestMatch_InsufficientProfile() {
	tests := []struct {
		name      string
		requester *models.Requester
	}{
		{"no profile", nil},
		{"no region", &models.Requester{CareNeeds: []models.CareType{models.CareTypeHospice}}},
		{"no care needs", &models.Requester{Region: "TX"}},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.requesters.EXPECT().FindRequester(gomock.Any(), s.userID).Return(tt.requester, nil)

			result, err := s.service.Match(s.ctx(), s.userID, PageRequest{Limit: 20})
			s.True(dErrors.HasCode(err, dErrors.CodeValidation))
			s.Require().NotNil(result)
			s.Empty(result.Candidates)
			s.Zero(result.Total)
		})
	}
}

func (s *ServiceSuite) TestMatch_UpstreamFailures() {
	boom := errors.New("connection refused")

	s.Run("profile store", func() {
		s.requesters.EXPECT().FindRequester(gomock.Any(), s.userID).Return(nil, boom)

		_, err := s.service.Match(s.ctx(), s.userID, PageRequest{Limit: 20})
		s.True(dErrors.HasCode(err, dErrors.CodeUnavailable))
		s.ErrorIs(err, boom)
	})

	s.Run("relationship store", func() {
		s.requesters.EXPECT().FindRequester(gomock.Any(), s.userID).Return(s.requester(), nil)
		s.relationships.EXPECT().ListRelationships(gomock.Any(), s.userID).Return(nil, boom)

		_, err := s.service.Match(s.ctx(), s.userID, PageRequest{Limit: 20})
		s.True(dErrors.HasCode(err, dErrors.CodeUnavailable))
	})

	s.Run("candidate search", func() {
		s.requesters.EXPECT().FindRequester(gomock.Any(), s.userID).Return(s.requester(), nil)
		s.relationships.EXPECT().ListRelationships(gomock.Any(), s.userID).Return(nil, nil)
		s.candidates.EXPECT().SearchCandidates(gomock.Any(), gomock.Any()).Return(models.Page{}, boom)

		_, err := s.service.Match(s.ctx(), s.userID, PageRequest{Limit: 20})
		s.True(dErrors.HasCode(err, dErrors.CodeUnavailable))
		s.ErrorIs(err, boom)
	})
}
