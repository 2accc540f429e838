package catalog

import "context"

// RankedQuery describes one per-category top-K retrieval compiled from a need
// profile. SkinTypeColumns are OR-combined equality predicates (`col = 1`); an
// empty slice means no skin-type restriction. RankingColumns are summed per row
// into the ranking score; an empty slice means the score is the constant 0.
// Column names must come from the fixed flag vocabulary.
type RankedQuery struct {
	Category        string
	MinSafety       int
	SkinTypeColumns []string
	RankingColumns  []string
	Limit           int
}

// Repo defines read-only retrieval operations against the product catalog.
type Repo interface {
	// TopRanked returns up to q.Limit safety-qualifying products of q.Category,
	// ordered by ascending ranking score.
	TopRanked(ctx context.Context, q RankedQuery) ([]Product, error)
	// ListByType returns products of one category ordered by descending safety.
	ListByType(ctx context.Context, category string, limit, offset int) ([]Product, error)
}
