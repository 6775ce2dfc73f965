package ports

import (
	"context"

	"github.com/tfalohun/olera-sub001/internal/eligibility/models"
	"github.com/tfalohun/olera-sub001/pkg/region"
)

//go:generate mockgen -source=catalog.go -destination=mocks/catalog.go -package=mocks CatalogPort

// CatalogPort reads the benefit catalog and the regional support directory.
// Implementations return empty slices, not errors, when nothing matches.
// Errors mean the backing store could not be reached.
type CatalogPort interface {
	// ListBaselinePrograms returns the nationwide programs.
	ListBaselinePrograms(ctx context.Context) ([]models.Program, error)

	// ListRegionPrograms returns the programs scoped to one region.
	ListRegionPrograms(ctx context.Context, code region.Code) ([]models.Program, error)

	// ListLocalResources returns every support office in a region.
	ListLocalResources(ctx context.Context, code region.Code) ([]models.LocalResource, error)
}
