package eligibility

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/tfalohun/olera-sub001/internal/eligibility/metrics"
	"github.com/tfalohun/olera-sub001/internal/eligibility/models"
	"github.com/tfalohun/olera-sub001/internal/eligibility/ports"
	dErrors "github.com/tfalohun/olera-sub001/pkg/domain-errors"
	"github.com/tfalohun/olera-sub001/pkg/platform/audit"
	"github.com/tfalohun/olera-sub001/pkg/platform/tracing"
	"github.com/tfalohun/olera-sub001/pkg/region"
	"github.com/tfalohun/olera-sub001/pkg/requestcontext"
)

const defaultFetchTimeout = 5 * time.Second

// Service matches an intake against the benefit catalog. It owns the I/O
// (catalog fetches, audit, metrics); scoring and ranking live in rules.go.
type Service struct {
	catalog      ports.CatalogPort
	auditor      ports.AuditPort
	metrics      *metrics.Metrics
	logger       *slog.Logger
	fetchTimeout time.Duration
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

// WithFetchTimeout bounds the parallel catalog fetch.
func WithFetchTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.fetchTimeout = d
		}
	}
}

func New(catalog ports.CatalogPort, opts ...Option) (*Service, error) {
	if catalog == nil {
		return nil, errors.New("catalog port is required")
	}
	s := &Service{
		catalog:      catalog,
		auditor:      audit.NopEmitter{},
		logger:       slog.Default(),
		fetchTimeout: defaultFetchTimeout,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s, nil
}

// Match resolves the region, fetches the catalogs, and returns ranked,
// explained matches plus the best local support office.
func (s *Service) Match(ctx context.Context, answers models.AnswerSet) (result *models.MatchResult, err error) {
	ctx, span := tracing.StartSpan(ctx, "eligibility.Service.Match")
	defer func() { tracing.EndSpan(span, err) }()

	start := time.Now()
	defer func() { s.metrics.ObserveMatchLatency(time.Since(start)) }()

	code, err := resolveRegion(answers)
	if err != nil {
		s.metrics.IncrementOutcome("invalid")
		return nil, err
	}
	answers.Region = code
	span.SetAttributes(attribute.String("region", code.String()))

	catalog, err := s.gatherCatalog(ctx, code)
	if err != nil {
		s.metrics.IncrementOutcome("unavailable")
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "benefit catalog unavailable")
	}

	// Regional entries win name collisions with the nationwide catalog.
	regional := DedupePrograms(catalog.Regional)
	combined := DedupePrograms(regional, catalog.Baseline)

	result = &models.MatchResult{
		Region:           code,
		RegionPrograms:   combined[:len(regional)],
		BaselinePrograms: combined[len(regional):],
		LocalResource:    ResolveLocalResource(catalog.Resources, code, answers.ZIP, answers.County),
		Matches:          Rank(combined, answers),
		EvaluatedAt:      requestcontext.Now(ctx),
	}

	s.metrics.IncrementOutcome("matched")
	for _, m := range result.Matches {
		s.metrics.IncrementTier(string(m.Tier))
	}
	s.emitAudit(ctx, result)

	return result, nil
}

// resolveRegion prefers a recognized state, then the ZIP. An unrecognized
// state is used as-is only when the ZIP cannot resolve a region.
func resolveRegion(answers models.AnswerSet) (region.Code, error) {
	if region.IsKnown(answers.Region) {
		return answers.Region, nil
	}
	if code, ok := region.FromZIP(answers.ZIP); ok {
		return code, nil
	}
	if !answers.Region.IsZero() {
		return answers.Region, nil
	}
	return "", dErrors.New(dErrors.CodeValidation, "state or a valid zip is required")
}

func (s *Service) emitAudit(ctx context.Context, result *models.MatchResult) {
	outcome := "no_match"
	if len(result.Matches) > 0 {
		outcome = string(result.Matches[0].Tier)
	}
	event := audit.Event{
		Action:    string(audit.EventEligibilityMatched),
		Region:    result.Region.String(),
		RequestID: requestcontext.RequestID(ctx),
		Outcome:   outcome,
		Count:     len(result.Matches),
		Timestamp: result.EvaluatedAt,
	}
	if err := s.auditor.Emit(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "failed to emit eligibility audit event",
			"request_id", event.RequestID,
			"error", err,
		)
	}
}
