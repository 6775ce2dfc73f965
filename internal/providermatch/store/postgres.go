package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/huandu/go-sqlbuilder"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/tfalohun/olera-sub001/internal/platform/postgres"
	"github.com/tfalohun/olera-sub001/internal/providermatch/models"
	id "github.com/tfalohun/olera-sub001/pkg/domain"
	pstrings "github.com/tfalohun/olera-sub001/pkg/platform/strings"
	"github.com/tfalohun/olera-sub001/pkg/platform/tracing"
	"github.com/tfalohun/olera-sub001/pkg/region"
)

var candidateColumns = []string{"id", "name", "category", "region", "locality", "categories", "quality_score"}

type candidateRow struct {
	ID           string          `db:"id"`
	Name         string          `db:"name"`
	Category     string          `db:"category"`
	Region       string          `db:"region"`
	Locality     string          `db:"locality"`
	Categories   pq.StringArray  `db:"categories"`
	QualityScore sql.NullFloat64 `db:"quality_score"`
}

func (r candidateRow) toModel() models.Candidate {
	c := models.Candidate{
		ID:         models.CandidateID(r.ID),
		Name:       r.Name,
		Category:   r.Category,
		Region:     region.Code(r.Region),
		Locality:   r.Locality,
		Categories: []string(r.Categories),
	}
	if r.QualityScore.Valid {
		v := r.QualityScore.Float64
		c.QualityScore = &v
	}
	return c
}

type requesterRow struct {
	UserID    uuid.UUID      `db:"user_id"`
	Region    string         `db:"region"`
	Locality  string         `db:"locality"`
	CareNeeds pq.StringArray `db:"care_needs"`
}

type relationshipRow struct {
	CandidateID string    `db:"candidate_id"`
	Kind        string    `db:"kind"`
	CreatedAt   time.Time `db:"created_at"`
}

// PostgresStore reads provider data from the marketplace database.
type PostgresStore struct {
	db     *sqlx.DB
	logger *slog.Logger
}

func NewPostgresStore(db *sqlx.DB, logger *slog.Logger) *PostgresStore {
	return &PostgresStore{db: db, logger: logger}
}

func (s *PostgresStore) FindRequester(ctx context.Context, userID id.UserID) (_ *models.Requester, err error) {
	ctx, span := tracing.StartSpan(ctx, "providermatch.PostgresStore.FindRequester")
	defer func() { tracing.EndSpan(span, err) }()

	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select("user_id", "region", "locality", "care_needs")
	sb.From("requester_profiles")
	sb.Where(sb.Equal("user_id", uuid.UUID(userID)))

	query, args := sb.Build()
	var row requesterRow
	if err := s.db.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, postgres.Unavailable("find requester profile", err)
	}

	r := &models.Requester{
		UserID:   id.UserID(row.UserID),
		Region:   region.Normalize(row.Region),
		Locality: row.Locality,
	}
	for _, raw := range pstrings.DedupeAndTrimLower(row.CareNeeds) {
		need, err := models.ParseCareType(raw)
		if err != nil {
			s.logger.WarnContext(ctx, "ignoring unknown care need on profile", "care_need", raw)
			continue
		}
		r.CareNeeds = append(r.CareNeeds, need)
	}
	return r, nil
}

func (s *PostgresStore) ListRelationships(ctx context.Context, userID id.UserID) (_ []models.Relationship, err error) {
	ctx, span := tracing.StartSpan(ctx, "providermatch.PostgresStore.ListRelationships")
	defer func() { tracing.EndSpan(span, err) }()

	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select("candidate_id", "kind", "created_at")
	sb.From("provider_relationships")
	sb.Where(sb.Equal("requester_id", uuid.UUID(userID)))

	query, args := sb.Build()
	var rows []relationshipRow
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, postgres.Unavailable("list relationships", err)
	}

	rels := make([]models.Relationship, 0, len(rows))
	for _, row := range rows {
		rels = append(rels, models.Relationship{
			CandidateID: models.CandidateID(row.CandidateID),
			Kind:        models.RelationshipKind(row.Kind),
			CreatedAt:   row.CreatedAt,
		})
	}
	return rels, nil
}

// SearchCandidates runs one pass: a count over the filters, then the sorted
// page.
func (s *PostgresStore) SearchCandidates(ctx context.Context, q models.Query) (_ models.Page, err error) {
	ctx, span := tracing.StartSpan(ctx, "providermatch.PostgresStore.SearchCandidates")
	defer func() { tracing.EndSpan(span, err) }()

	where := func(sb *sqlbuilder.SelectBuilder) []string {
		conds := []string{sb.Equal("region", q.Region.String())}
		if len(q.Categories) > 0 {
			conds = append(conds, "categories && "+sb.Var(pq.Array(q.Categories)))
		}
		if len(q.Exclude) > 0 {
			excluded := make([]string, 0, len(q.Exclude))
			for candidateID := range q.Exclude {
				excluded = append(excluded, string(candidateID))
			}
			conds = append(conds, fmt.Sprintf("NOT (id = ANY(%s))", sb.Var(pq.Array(excluded))))
		}
		return conds
	}

	countSb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	countSb.Select("COUNT(*)")
	countSb.From("providers")
	countSb.Where(where(countSb)...)

	countQuery, countArgs := countSb.Build()
	var total int
	if err := s.db.GetContext(ctx, &total, countQuery, countArgs...); err != nil {
		return models.Page{}, postgres.Unavailable("count providers", err)
	}

	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select(candidateColumns...)
	sb.From("providers")
	sb.Where(where(sb)...)
	sb.OrderBy(orderFor(q)...)
	sb.Offset(max(q.Offset, 0))
	if q.Limit > 0 {
		sb.Limit(q.Limit)
	}

	query, args := sb.Build()
	var rows []candidateRow
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return models.Page{}, postgres.Unavailable("search providers", err)
	}

	page := models.Page{Total: total, Candidates: make([]models.Candidate, 0, len(rows))}
	for _, row := range rows {
		page.Candidates = append(page.Candidates, row.toModel())
	}
	return page, nil
}

// orderFor mirrors SortCandidates so both stores page identically.
func orderFor(q models.Query) []string {
	order := []string{"quality_score DESC NULLS LAST", `name COLLATE "C" ASC`, `id COLLATE "C" ASC`}
	if q.Sort == models.SortClosest && strings.TrimSpace(q.RequesterLocality) != "" {
		return append([]string{`LOWER(locality) COLLATE "C" ASC`}, order...)
	}
	return order
}

// UpsertCandidate inserts or replaces a provider record.
func (s *PostgresStore) UpsertCandidate(ctx context.Context, c models.Candidate) error {
	var quality sql.NullFloat64
	if c.QualityScore != nil {
		quality = sql.NullFloat64{Float64: *c.QualityScore, Valid: true}
	}

	ib := sqlbuilder.PostgreSQL.NewInsertBuilder()
	ib.InsertInto("providers")
	ib.Cols(candidateColumns...)
	ib.Values(string(c.ID), c.Name, c.Category, c.Region.String(), c.Locality, pq.Array(c.Categories), quality)
	query, args := ib.Build()
	query += ` ON CONFLICT (id) DO UPDATE SET
		name = EXCLUDED.name, category = EXCLUDED.category, region = EXCLUDED.region,
		locality = EXCLUDED.locality, categories = EXCLUDED.categories,
		quality_score = EXCLUDED.quality_score`

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert provider %s: %w", c.ID, err)
	}
	return nil
}
