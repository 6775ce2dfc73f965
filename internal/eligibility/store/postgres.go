package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/huandu/go-sqlbuilder"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/tfalohun/olera-sub001/internal/eligibility/models"
	"github.com/tfalohun/olera-sub001/internal/platform/postgres"
	"github.com/tfalohun/olera-sub001/pkg/platform/tracing"
	"github.com/tfalohun/olera-sub001/pkg/region"
)

var programColumns = []string{
	"id", "name", "category", "priority_score", "min_age", "max_income_single",
	"requires_medicaid", "related_benefits", "requires_veteran", "requires_disability",
	"region", "description", "phone", "website",
}

var resourceColumns = []string{
	"id", "name", "region", "counties", "zip_codes", "phone", "website", "script",
}

type programRow struct {
	ID                 string         `db:"id"`
	Name               string         `db:"name"`
	Category           string         `db:"category"`
	PriorityScore      int            `db:"priority_score"`
	MinAge             sql.NullInt64  `db:"min_age"`
	MaxIncomeSingle    sql.NullInt64  `db:"max_income_single"`
	RequiresMedicaid   bool           `db:"requires_medicaid"`
	RelatedBenefits    pq.StringArray `db:"related_benefits"`
	RequiresVeteran    bool           `db:"requires_veteran"`
	RequiresDisability bool           `db:"requires_disability"`
	Region             string         `db:"region"`
	Description        string         `db:"description"`
	Phone              string         `db:"phone"`
	Website            string         `db:"website"`
}

type resourceRow struct {
	ID       string         `db:"id"`
	Name     string         `db:"name"`
	Region   string         `db:"region"`
	Counties pq.StringArray `db:"counties"`
	ZIPCodes pq.StringArray `db:"zip_codes"`
	Phone    string         `db:"phone"`
	Website  string         `db:"website"`
	Script   string         `db:"script"`
}

// PostgresCatalog reads the benefit catalog tables.
type PostgresCatalog struct {
	db     *sqlx.DB
	logger *slog.Logger
}

func NewPostgresCatalog(db *sqlx.DB, logger *slog.Logger) *PostgresCatalog {
	return &PostgresCatalog{db: db, logger: logger}
}

func (s *PostgresCatalog) ListBaselinePrograms(ctx context.Context) ([]models.Program, error) {
	return s.listPrograms(ctx, "")
}

func (s *PostgresCatalog) ListRegionPrograms(ctx context.Context, code region.Code) ([]models.Program, error) {
	if code.IsZero() {
		return []models.Program{}, nil
	}
	return s.listPrograms(ctx, code)
}

func (s *PostgresCatalog) listPrograms(ctx context.Context, code region.Code) (programs []models.Program, err error) {
	ctx, span := tracing.StartSpan(ctx, "eligibility.PostgresCatalog.listPrograms")
	defer func() { tracing.EndSpan(span, err) }()

	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select(programColumns...)
	sb.From("programs")
	sb.Where(sb.Equal("region", string(code)))
	// Catalog order: ties in scoring keep this order.
	sb.OrderBy("priority_score DESC", "name ASC", "id ASC")

	query, args := sb.Build()
	var rows []programRow
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, postgres.Unavailable(fmt.Sprintf("list programs for region %q", code), err)
	}

	programs = make([]models.Program, 0, len(rows))
	for _, row := range rows {
		p, err := row.toModel()
		if err != nil {
			s.logger.WarnContext(ctx, "skipping catalog program", "program_id", row.ID, "error", err)
			continue
		}
		programs = append(programs, p)
	}
	return programs, nil
}

func (s *PostgresCatalog) ListLocalResources(ctx context.Context, code region.Code) (resources []models.LocalResource, err error) {
	ctx, span := tracing.StartSpan(ctx, "eligibility.PostgresCatalog.ListLocalResources")
	defer func() { tracing.EndSpan(span, err) }()

	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select(resourceColumns...)
	sb.From("local_resources")
	sb.Where(sb.Equal("region", string(code)))
	sb.OrderBy("name ASC", "id ASC")

	query, args := sb.Build()
	var rows []resourceRow
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, postgres.Unavailable(fmt.Sprintf("list local resources for region %q", code), err)
	}

	resources = make([]models.LocalResource, 0, len(rows))
	for _, row := range rows {
		resources = append(resources, models.LocalResource{
			ID:       models.LocalResourceID(row.ID),
			Name:     row.Name,
			Region:   region.Code(row.Region),
			Counties: []string(row.Counties),
			ZIPCodes: []string(row.ZIPCodes),
			Phone:    row.Phone,
			Website:  row.Website,
			Script:   row.Script,
		})
	}
	return resources, nil
}

// UpsertProgram inserts or replaces a catalog program. Used by seeding and
// tests; the catalog itself is maintained outside this service.
func (s *PostgresCatalog) UpsertProgram(ctx context.Context, p models.Program) error {
	benefits := make([]string, 0, len(p.RelatedBenefits))
	for _, b := range p.RelatedBenefits {
		benefits = append(benefits, string(b))
	}

	ib := sqlbuilder.PostgreSQL.NewInsertBuilder()
	ib.InsertInto("programs")
	ib.Cols(programColumns...)
	ib.Values(
		string(p.ID), p.Name, string(p.Category), p.PriorityScore, nullInt(p.MinAge), nullInt(p.MaxIncomeSingle),
		p.RequiresMedicaid, pq.Array(benefits), p.RequiresVeteran, p.RequiresDisability,
		string(p.Region), p.Description, p.Phone, p.Website,
	)
	query, args := ib.Build()
	query += ` ON CONFLICT (id) DO UPDATE SET
		name = EXCLUDED.name, category = EXCLUDED.category, priority_score = EXCLUDED.priority_score,
		min_age = EXCLUDED.min_age, max_income_single = EXCLUDED.max_income_single,
		requires_medicaid = EXCLUDED.requires_medicaid, related_benefits = EXCLUDED.related_benefits,
		requires_veteran = EXCLUDED.requires_veteran, requires_disability = EXCLUDED.requires_disability,
		region = EXCLUDED.region, description = EXCLUDED.description,
		phone = EXCLUDED.phone, website = EXCLUDED.website`

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert program %s: %w", p.ID, err)
	}
	return nil
}

// UpsertLocalResource inserts or replaces a support office.
func (s *PostgresCatalog) UpsertLocalResource(ctx context.Context, r models.LocalResource) error {
	ib := sqlbuilder.PostgreSQL.NewInsertBuilder()
	ib.InsertInto("local_resources")
	ib.Cols(resourceColumns...)
	ib.Values(
		string(r.ID), r.Name, string(r.Region), pq.Array(r.Counties), pq.Array(r.ZIPCodes),
		r.Phone, r.Website, r.Script,
	)
	query, args := ib.Build()
	query += ` ON CONFLICT (id) DO UPDATE SET
		name = EXCLUDED.name, region = EXCLUDED.region, counties = EXCLUDED.counties,
		zip_codes = EXCLUDED.zip_codes, phone = EXCLUDED.phone,
		website = EXCLUDED.website, script = EXCLUDED.script`

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert local resource %s: %w", r.ID, err)
	}
	return nil
}

func (r programRow) toModel() (models.Program, error) {
	category, err := models.ParseCategory(r.Category)
	if err != nil {
		return models.Program{}, err
	}
	p := models.Program{
		ID:                 models.ProgramID(r.ID),
		Name:               r.Name,
		Category:           category,
		PriorityScore:      r.PriorityScore,
		RequiresMedicaid:   r.RequiresMedicaid,
		RequiresVeteran:    r.RequiresVeteran,
		RequiresDisability: r.RequiresDisability,
		Region:             region.Code(r.Region),
		Description:        r.Description,
		Phone:              r.Phone,
		Website:            r.Website,
	}
	if r.MinAge.Valid {
		v := int(r.MinAge.Int64)
		p.MinAge = &v
	}
	if r.MaxIncomeSingle.Valid {
		v := int(r.MaxIncomeSingle.Int64)
		p.MaxIncomeSingle = &v
	}
	for _, b := range r.RelatedBenefits {
		p.RelatedBenefits = append(p.RelatedBenefits, models.Benefit(b))
	}
	return p, nil
}

func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}
