package eligibility

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/tfalohun/olera-sub001/internal/eligibility/models"
	"github.com/tfalohun/olera-sub001/internal/eligibility/ports/mocks"
	dErrors "github.com/tfalohun/olera-sub001/pkg/domain-errors"
	"github.com/tfalohun/olera-sub001/pkg/platform/audit"
	"github.com/tfalohun/olera-sub001/pkg/platform/audit/publisher"
	"github.com/tfalohun/olera-sub001/pkg/platform/audit/store/memory"
	"github.com/tfalohun/olera-sub001/pkg/region"
	"github.com/tfalohun/olera-sub001/pkg/requestcontext"
)

type failingAuditor struct{}

func (failingAuditor) Emit(context.Context, audit.Event) error { return errors.New("sink down") }

type ServiceSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	catalog *mocks.MockCatalogPort
	events  *memory.InMemoryStore
	service *Service
	now     time.Time
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.catalog = mocks.NewMockCatalogPort(s.ctrl)
	s.events = memory.NewInMemoryStore()
	s.now = time.Date(2025, 5, 20, 15, 0, 0, 0, time.UTC)

	svc, err := New(s.catalog,
		WithAuditor(publisher.NewPublisher(s.events)),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	s.Require().NoError(err)
	s.service = svc
}

func (s *ServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ServiceSuite) ctx() context.Context {
	ctx := requestcontext.WithTime(context.Background(), s.now)
	return requestcontext.WithRequestID(ctx, "req-123")
}

func (s *ServiceSuite) TestNew_RequiresCatalog() {
	_, err := New(nil)
	s.Error(err)
}

func (s *ServiceSuite) TestMatch_ResolvesRegionFromZIP() {
	baseline := []models.Program{
		{ID: "snap", Name: "SNAP", Category: models.CategoryFood, PriorityScore: 40},
		{ID: "pace-national", Name: "PACE", Category: models.CategoryHealthcare, PriorityScore: 30},
	}
	regional := []models.Program{
		{ID: "tx-pace", Name: "pace ", Category: models.CategoryHealthcare, PriorityScore: 45, Region: "TX"},
	}
	offices := []models.LocalResource{
		{ID: "tx-capital", Name: "Capital Area AAA", Region: "TX", ZIPCodes: []string{"78701"}},
		{ID: "tx-alamo", Name: "Alamo AAA", Region: "TX"},
	}

	s.catalog.EXPECT().ListBaselinePrograms(gomock.Any()).Return(baseline, nil)
	s.catalog.EXPECT().ListRegionPrograms(gomock.Any(), region.Code("TX")).Return(regional, nil)
	s.catalog.EXPECT().ListLocalResources(gomock.Any(), region.Code("TX")).Return(offices, nil)

	result, err := s.service.Match(s.ctx(), models.AnswerSet{
		ZIP:   "78701",
		Needs: []models.NeedTag{models.NeedHealthManagement},
	})

	s.Require().NoError(err)
	s.Equal(region.Code("TX"), result.Region)
	s.Require().Len(result.RegionPrograms, 1)
	s.Equal(models.ProgramID("tx-pace"), result.RegionPrograms[0].ID)
	s.Require().Len(result.BaselinePrograms, 1, "national PACE is shadowed by the regional entry")
	s.Equal(models.ProgramID("snap"), result.BaselinePrograms[0].ID)
	s.Require().NotNil(result.LocalResource)
	s.Equal(models.LocalResourceID("tx-capital"), result.LocalResource.ID)
	s.Equal(s.now, result.EvaluatedAt)

	s.Require().Len(result.Matches, 2)
	s.Equal(models.ProgramID("tx-pace"), result.Matches[0].Program.ID)
	s.Equal(70, result.Matches[0].Score)
	s.Equal(models.TierGoodFit, result.Matches[0].Tier)

	events, err := s.events.ListAll(context.Background())
	s.Require().NoError(err)
	s.Require().Len(events, 1)
	s.Equal(string(audit.EventEligibilityMatched), events[0].Action)
	s.Equal("TX", events[0].Region)
	s.Equal("req-123", events[0].RequestID)
	s.Equal(2, events[0].Count)
	s.Equal(string(models.TierGoodFit), events[0].Outcome)
}

func (s *ServiceSuite) TestMatch_DeclaredRegionWinsOverZIP() {
	s.catalog.EXPECT().ListBaselinePrograms(gomock.Any()).Return(nil, nil)
	s.catalog.EXPECT().ListRegionPrograms(gomock.Any(), region.Code("OK")).Return(nil, nil)
	s.catalog.EXPECT().ListLocalResources(gomock.Any(), region.Code("OK")).Return(nil, nil)

	result, err := s.service.Match(s.ctx(), models.AnswerSet{ZIP: "78701", Region: "OK"})

	s.Require().NoError(err)
	s.Equal(region.Code("OK"), result.Region)
	s.Nil(result.LocalResource)
	s.Empty(result.Matches)
}

func (s *ServiceSuite) TestMatch_UnknownStateFallsBackToZIP() {
	s.catalog.EXPECT().ListBaselinePrograms(gomock.Any()).Return(nil, nil)
	s.catalog.EXPECT().ListRegionPrograms(gomock.Any(), region.Code("TX")).Return(nil, nil)
	s.catalog.EXPECT().ListLocalResources(gomock.Any(), region.Code("TX")).Return(nil, nil)

	result, err := s.service.Match(s.ctx(), models.AnswerSet{ZIP: "78701", Region: region.Normalize("Narnia")})

	s.Require().NoError(err)
	s.Equal(region.Code("TX"), result.Region)
}

func (s *ServiceSuite) TestMatch_UnknownStateWithoutZIPIsKept() {
	s.catalog.EXPECT().ListBaselinePrograms(gomock.Any()).Return(nil, nil)
	s.catalog.EXPECT().ListRegionPrograms(gomock.Any(), region.Code("NARNIA")).Return(nil, nil)
	s.catalog.EXPECT().ListLocalResources(gomock.Any(), region.Code("NARNIA")).Return(nil, nil)

	result, err := s.service.Match(s.ctx(), models.AnswerSet{Region: region.Normalize("Narnia")})

	s.Require().NoError(err)
	s.Equal(region.Code("NARNIA"), result.Region)
}

func (s *ServiceSuite) TestMatch_MissingLocationFailsBeforeFetching() {
	for _, zip := range []string{"", "123", "96910"} {
		_, err := s.service.Match(s.ctx(), models.AnswerSet{ZIP: zip})
		s.True(dErrors.HasCode(err, dErrors.CodeValidation), "zip %q", zip)
	}
}

func (s *ServiceSuite) TestMatch_FetchFailureAbortsRequest() {
	cause := errors.New("connection refused")
	s.catalog.EXPECT().ListBaselinePrograms(gomock.Any()).Return(nil, cause)
	s.catalog.EXPECT().ListRegionPrograms(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	s.catalog.EXPECT().ListLocalResources(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	result, err := s.service.Match(s.ctx(), models.AnswerSet{Region: "TX"})

	s.Nil(result)
	s.True(dErrors.HasCode(err, dErrors.CodeUnavailable))
	s.ErrorIs(err, cause)

	events, _ := s.events.ListAll(context.Background())
	s.Empty(events)
}

func (s *ServiceSuite) TestMatch_FetchTimeoutCancelsSiblings() {
	svc, err := New(s.catalog, WithFetchTimeout(20*time.Millisecond))
	s.Require().NoError(err)

	s.catalog.EXPECT().ListBaselinePrograms(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]models.Program, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})
	s.catalog.EXPECT().ListRegionPrograms(gomock.Any(), gomock.Any()).Return(nil, nil)
	s.catalog.EXPECT().ListLocalResources(gomock.Any(), gomock.Any()).Return(nil, nil)

	_, err = svc.Match(s.ctx(), models.AnswerSet{Region: "TX"})

	s.True(dErrors.HasCode(err, dErrors.CodeUnavailable))
	s.ErrorIs(err, context.DeadlineExceeded)
}

func (s *ServiceSuite) TestMatch_AuditFailureIsNotFatal() {
	svc, err := New(s.catalog, WithAuditor(failingAuditor{}), WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	s.Require().NoError(err)

	s.catalog.EXPECT().ListBaselinePrograms(gomock.Any()).Return([]models.Program{{ID: "snap", Name: "SNAP", Category: models.CategoryFood}}, nil)
	s.catalog.EXPECT().ListRegionPrograms(gomock.Any(), gomock.Any()).Return(nil, nil)
	s.catalog.EXPECT().ListLocalResources(gomock.Any(), gomock.Any()).Return(nil, nil)

	result, err := svc.Match(s.ctx(), models.AnswerSet{Region: "TX"})

	s.Require().NoError(err)
	s.Len(result.Matches, 1)
}
