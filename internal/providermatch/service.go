package providermatch

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/tfalohun/olera-sub001/internal/providermatch/metrics"
	"github.com/tfalohun/olera-sub001/internal/providermatch/models"
	"github.com/tfalohun/olera-sub001/internal/providermatch/ports"
	id "github.com/tfalohun/olera-sub001/pkg/domain"
	dErrors "github.com/tfalohun/olera-sub001/pkg/domain-errors"
	"github.com/tfalohun/olera-sub001/pkg/platform/audit"
	"github.com/tfalohun/olera-sub001/pkg/platform/tracing"
	"github.com/tfalohun/olera-sub001/pkg/requestcontext"
)

const (
	defaultCooldownDays = 30
	DefaultLimit        = 20
	MaxLimit            = 100
)

// PageRequest selects the sort and window of a provider search.
type PageRequest struct {
	Sort   models.SortMode
	Offset int
	Limit  int
}

// Service finds providers for an authenticated requester.
type Service struct {
	requesters    ports.RequesterStore
	relationships ports.RelationshipStore
	candidates    ports.CandidateStore
	auditor       ports.AuditPort
	metrics       *metrics.Metrics
	logger        *slog.Logger
	cooldownDays  int
	strategy      Strategy
}

// Option configures a Service.
type Option func(*Service)

func WithAuditor(a ports.AuditPort) Option {
	return func(s *Service) { s.auditor = a }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// WithCooldownDays sets how long a dismissal hides a candidate.
func WithCooldownDays(days int) Option {
	return func(s *Service) {
		if days >= 0 {
			s.cooldownDays = days
		}
	}
}

// WithMinStrictResults sets the strict-pass size that avoids broadening.
func WithMinStrictResults(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.strategy.MinStrictResults = n
		}
	}
}

func New(requesters ports.RequesterStore, relationships ports.RelationshipStore, candidates ports.CandidateStore, opts ...Option) (*Service, error) {
	if requesters == nil || relationships == nil || candidates == nil {
		return nil, errors.New("requester, relationship and candidate stores are required")
	}
	s := &Service{
		requesters:    requesters,
		relationships: relationships,
		candidates:    candidates,
		auditor:       audit.NopEmitter{},
		logger:        slog.Default(),
		cooldownDays:  defaultCooldownDays,
		strategy:      Strategy{MinStrictResults: MinStrictResults},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s, nil
}

// Match returns a page of candidates for the requester. A requester without
// a region or a declared care need gets an empty result and a validation
// error; no search runs.
func (s *Service) Match(ctx context.Context, userID id.UserID, page PageRequest) (result *models.Result, err error) {
	ctx, span := tracing.StartSpan(ctx, "providermatch.Service.Match")
	defer func() { tracing.EndSpan(span, err) }()

	start := time.Now()
	defer func() { s.metrics.ObserveMatchLatency(time.Since(start)) }()

	requester, err := s.requesters.FindRequester(ctx, userID)
	if err != nil {
		s.metrics.IncrementSearch("unavailable")
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "requester profile unavailable")
	}
	if !requester.Sufficient() {
		s.metrics.IncrementSearch("invalid")
		return emptyResult(), dErrors.New(dErrors.CodeValidation, "profile needs a location and at least one care need")
	}
	span.SetAttributes(attribute.String("region", requester.Region.String()))

	rels, err := s.relationships.ListRelationships(ctx, userID)
	if err != nil {
		s.metrics.IncrementSearch("unavailable")
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "relationship history unavailable")
	}
	exclude := ComputeExclusions(rels, s.cooldownDays, requestcontext.Now(ctx))

	q := models.Query{
		Region:            requester.Region,
		Categories:        MapCareNeeds(requester.CareNeeds),
		Exclude:           exclude,
		Sort:              page.Sort,
		RequesterLocality: requester.Locality,
		Offset:            page.Offset,
		Limit:             page.Limit,
	}
	found, err := s.strategy.FindMatches(ctx, s.candidates.SearchCandidates, q)
	if err != nil {
		s.metrics.IncrementSearch("unavailable")
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "provider catalog unavailable")
	}
	found.Excluded = len(exclude)
	result = &found

	outcome := "strict"
	if result.Broadened {
		outcome = "broadened"
	}
	s.metrics.IncrementSearch(outcome)
	s.metrics.ObserveExcluded(result.Excluded)
	s.metrics.ObserveReturned(len(result.Candidates))

	s.logger.DebugContext(ctx, "provider search completed",
		"region", requester.Region,
		"categories", len(q.Categories),
		"excluded", result.Excluded,
		"broadened", result.Broadened,
		"total", result.Total,
	)
	s.emitAudit(ctx, userID, requester, result, outcome)

	return result, nil
}

func emptyResult() *models.Result {
	return &models.Result{Candidates: []models.Candidate{}}
}

func (s *Service) emitAudit(ctx context.Context, userID id.UserID, requester *models.Requester, result *models.Result, outcome string) {
	event := audit.Event{
		UserID:    userID,
		Action:    string(audit.EventProvidersMatched),
		Region:    requester.Region.String(),
		RequestID: requestcontext.RequestID(ctx),
		Outcome:   outcome,
		Count:     len(result.Candidates),
		Timestamp: requestcontext.Now(ctx),
	}
	if err := s.auditor.Emit(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "failed to emit provider match audit event",
			"request_id", event.RequestID,
			"error", err,
		)
	}
}
