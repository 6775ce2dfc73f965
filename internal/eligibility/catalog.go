package eligibility

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tfalohun/olera-sub001/internal/eligibility/models"
	"github.com/tfalohun/olera-sub001/pkg/region"
)

// gatherCatalog runs the three catalog reads in parallel with shared
// cancellation. The first failure cancels the others and fails the request;
// there is no partial result.
func (s *Service) gatherCatalog(ctx context.Context, code region.Code) (*models.Catalog, error) {
	ctx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)

	catalog := &models.Catalog{
		FetchedAt: time.Now(),
	}

	g.Go(func() error {
		start := time.Now()
		programs, err := s.catalog.ListBaselinePrograms(ctx)
		catalog.Latencies.Baseline = time.Since(start)
		s.metrics.ObserveCatalogLatency("baseline", catalog.Latencies.Baseline)
		if err != nil {
			return err
		}
		catalog.Baseline = programs
		return nil
	})

	g.Go(func() error {
		start := time.Now()
		programs, err := s.catalog.ListRegionPrograms(ctx, code)
		catalog.Latencies.Regional = time.Since(start)
		s.metrics.ObserveCatalogLatency("regional", catalog.Latencies.Regional)
		if err != nil {
			return err
		}
		catalog.Regional = programs
		return nil
	})

	g.Go(func() error {
		start := time.Now()
		resources, err := s.catalog.ListLocalResources(ctx, code)
		catalog.Latencies.Resources = time.Since(start)
		s.metrics.ObserveCatalogLatency("resources", catalog.Latencies.Resources)
		if err != nil {
			return err
		}
		catalog.Resources = resources
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return catalog, nil
}
