package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// flagColumns is the closed vocabulary of interpolatable flag column names.
// Every name rendered into query text must pass through this set; the category
// value always travels as a bound parameter.
var flagColumns = map[string]struct{}{
	"oily":          {},
	"dry":           {},
	"sensitive":     {},
	"acne_fighting": {},
	"anti_aging":    {},
	"brightening":   {},
	"uv":            {},
	"comedogenic":   {},
}

const productColumns = `id, name, brand, type, safety, oily, dry, sensitive, acne_fighting, anti_aging, brightening, uv, comedogenic`

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// TopRanked executes one filtered, ranked, limited retrieval. The ranking
// expression and skin-type predicates are rendered from validated column names
// only; the grouping by id guards against duplicate rows.
func (r *PGRepo) TopRanked(ctx context.Context, q RankedQuery) ([]Product, error) {
	if !IsCategory(q.Category) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, q.Category)
	}

	ranking, err := rankingExpression(q.RankingColumns)
	if err != nil {
		return nil, err
	}
	skinClause, err := skinTypeClause(q.SkinTypeColumns)
	if err != nil {
		return nil, err
	}

	limit := q.Limit
	if limit <= 0 {
		limit = 3
	}

	query := fmt.Sprintf(`
SELECT %s, %s AS ranking
FROM products
WHERE type = $1 AND safety >= $2%s
GROUP BY id
ORDER BY ranking ASC
LIMIT $3`, productColumns, ranking, skinClause)

	rows, err := r.DB.QueryContext(ctx, query, q.Category, q.MinSafety, limit)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	var out []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Brand,
			&p.Type,
			&p.Safety,
			&p.Oily,
			&p.Dry,
			&p.Sensitive,
			&p.AcneFighting,
			&p.AntiAging,
			&p.Brightening,
			&p.UV,
			&p.Comedogenic,
			&p.Ranking,
		); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// ListByType lists products of one category, safest first.
func (r *PGRepo) ListByType(ctx context.Context, category string, limit, offset int) ([]Product, error) {
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

	query := fmt.Sprintf(`
SELECT %s, 0 AS ranking
FROM products
WHERE type = $1
ORDER BY safety DESC
LIMIT $2 OFFSET $3`, productColumns)

	rows, err := r.DB.QueryContext(ctx, query, category, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var out []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Brand,
			&p.Type,
			&p.Safety,
			&p.Oily,
			&p.Dry,
			&p.Sensitive,
			&p.AcneFighting,
			&p.AntiAging,
			&p.Brightening,
			&p.UV,
			&p.Comedogenic,
			&p.Ranking,
		); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// rankingExpression renders the summed ranking score. No selected columns means
// the constant 0, not an empty sum.
func rankingExpression(columns []string) (string, error) {
	if len(columns) == 0 {
		return "0", nil
	}
	for _, col := range columns {
		if _, ok := flagColumns[col]; !ok {
			return "", fmt.Errorf("%w: %q", ErrUnknownColumn, col)
		}
	}
	return "(" + strings.Join(columns, " + ") + ")", nil
}

// skinTypeClause renders the OR-combined suitability restriction, or the empty
// string when no skin type is selected.
func skinTypeClause(columns []string) (string, error) {
	if len(columns) == 0 {
		return "", nil
	}
	preds := make([]string, 0, len(columns))
	for _, col := range columns {
		if _, ok := flagColumns[col]; !ok {
			return "", fmt.Errorf("%w: %q", ErrUnknownColumn, col)
		}
		preds = append(preds, col+" = 1")
	}
	return " AND (" + strings.Join(preds, " OR ") + ")", nil
}

var _ Repo = (*PGRepo)(nil)
