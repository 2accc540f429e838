package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// MemoryRepo implements Repo over an in-process product list. It backs dev mode
// when no database is configured, and service tests.
type MemoryRepo struct {
	mu       sync.RWMutex
	products []Product
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

// Add stores a product, assigning an ID when none is set.
func (r *MemoryRepo) Add(p Product) Product {
	if strings.TrimSpace(p.ID) == "" {
		p.ID = uuid.NewString()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = append(r.products, p)
	return p
}

func (r *MemoryRepo) TopRanked(ctx context.Context, q RankedQuery) ([]Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !IsCategory(q.Category) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, q.Category)
	}
	for _, col := range append(append([]string{}, q.SkinTypeColumns...), q.RankingColumns...) {
		if _, ok := flagColumns[col]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, col)
		}
	}

	limit := q.Limit
	if limit <= 0 {
		limit = 3
	}

	r.mu.RLock()
	var matched []Product
	for _, p := range r.products {
		if p.Type != q.Category || p.Safety < q.MinSafety {
			continue
		}
		if !matchesAnySkinType(p, q.SkinTypeColumns) {
			continue
		}
		p.Ranking = rankingScore(p, q.RankingColumns)
		matched = append(matched, p)
	}
	r.mu.RUnlock()

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Ranking < matched[j].Ranking
	})
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func (r *MemoryRepo) ListByType(ctx context.Context, category string, limit, offset int) ([]Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !IsCategory(category) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	r.mu.RLock()
	var matched []Product
	for _, p := range r.products {
		if p.Type == category {
			matched = append(matched, p)
		}
	}
	r.mu.RUnlock()

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Safety > matched[j].Safety
	})
	if offset >= len(matched) {
		return nil, nil
	}
	matched = matched[offset:]
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func matchesAnySkinType(p Product, columns []string) bool {
	if len(columns) == 0 {
		return true
	}
	for _, col := range columns {
		if p.flagColumn(col) == 1 {
			return true
		}
	}
	return false
}

func rankingScore(p Product, columns []string) int {
	score := 0
	for _, col := range columns {
		score += p.flagColumn(col)
	}
	return score
}

var _ Repo = (*MemoryRepo)(nil)
