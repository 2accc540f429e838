package recommendations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"skincare-backend/internal/catalog"
)

const (
	minSafety        = 50
	perCategoryLimit = 3
)

// Service orchestrates the recommendation pipeline: validate the profile,
// compile the selection, fan out the five category retrievals, merge.
type Service struct {
	Catalog catalog.Repo
	// RetrievalTimeout bounds each category query; zero disables the bound.
	RetrievalTimeout time.Duration
}

func NewService(repo catalog.Repo, retrievalTimeout time.Duration) *Service {
	return &Service{Catalog: repo, RetrievalTimeout: retrievalTimeout}
}

// FetchRecommended validates the raw profile and returns up to three ranked
// products for each of the five routine categories. The five retrievals run
// concurrently; any single failure fails the whole request and no partial
// result is returned.
func (s *Service) FetchRecommended(ctx context.Context, raw map[string]any) (map[string][]catalog.Product, error) {
	if s == nil || s.Catalog == nil {
		return nil, errors.New("recommendations service not configured")
	}

	profile, err := Validate(raw)
	if err != nil {
		return nil, err
	}
	sel := Compile(profile)

	g, gctx := errgroup.WithContext(ctx)
	results := make([][]catalog.Product, len(catalog.Categories))
	for i, category := range catalog.Categories {
		i, category := i, category
		g.Go(func() error {
			qctx := gctx
			if s.RetrievalTimeout > 0 {
				var cancel context.CancelFunc
				qctx, cancel = context.WithTimeout(gctx, s.RetrievalTimeout)
				defer cancel()
			}
			products, err := s.Catalog.TopRanked(qctx, catalog.RankedQuery{
				Category:        category,
				MinSafety:       minSafety,
				SkinTypeColumns: sel.SkinTypeColumns,
				RankingColumns:  sel.RankingColumns,
				Limit:           perCategoryLimit,
			})
			if err != nil {
				return fmt.Errorf("retrieve %s: %w", category, err)
			}
			// The store limits to perCategoryLimit already; re-slice in case it
			// does not honor the limit.
			if len(products) > perCategoryLimit {
				products = products[:perCategoryLimit]
			}
			results[i] = products
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[string][]catalog.Product, len(catalog.Categories))
	for i, category := range catalog.Categories {
		products := results[i]
		if products == nil {
			products = []catalog.Product{}
		}
		out[category] = products
	}
	return out, nil
}
