package repos

import (
	"strings"

	"github.com/jmoiron/sqlx"

	"techmart/internal/domain"
)

// CatalogRepo is the read interface over products, categories and their
// review aggregates. Rating aggregates ride along on every product row;
// windowed view/sale aggregates are only joined where trending needs
// them (TrendingCandidates).
//
// Substring matching happens in Go: sqlite's LOWER and LIKE only fold
// ASCII, which breaks case-insensitive matching of Vietnamese text.
// Numeric filters (price, category id) stay in SQL.
type CatalogRepo struct{ db *sqlx.DB }

func NewCatalogRepo(db *sqlx.DB) *CatalogRepo { return &CatalogRepo{db: db} }

const productSelect = `
  SELECT
    p.id, p.category_id, c.name AS category_name, p.name, p.description,
    p.price, p.active, COALESCE(p.created_at,'') AS created_at,
    COALESCE(r.avg_rating, 0) AS avg_rating,
    COALESCE(r.review_count, 0) AS review_count
  FROM products p
  JOIN categories c ON c.id = p.category_id
  LEFT JOIN (
    SELECT product_id, AVG(rating) AS avg_rating, COUNT(*) AS review_count
    FROM reviews
    GROUP BY product_id
  ) r ON r.product_id = p.id`

// Get returns one product with its category name and rating aggregates.
func (r *CatalogRepo) Get(id int64) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, productSelect+` WHERE p.id = ?`, id)
	return p, err
}

// Filter returns active products matching the given signals. Filters
// are conjunctive across dimensions and each is applied only when
// present; within the keyword dimension matching is disjunctive over
// name, description and category name (substring, case-insensitive).
// Result order is product id ascending; ranking happens in the engine.
func (r *CatalogRepo) Filter(sig domain.SearchSignals) ([]domain.Product, error) {
	where := `p.active = 1`
	args := []any{}
	if sig.Price != nil {
		where += ` AND p.price >= ?`
		args = append(args, sig.Price.Min)
		if sig.Price.Max >= 0 {
			where += ` AND p.price <= ?`
			args = append(args, sig.Price.Max)
		}
	}

	var cands []domain.Product
	if err := r.db.Select(&cands, productSelect+` WHERE `+where+` ORDER BY p.id`, args...); err != nil {
		return nil, err
	}

	var out []domain.Product
	for _, p := range cands {
		if len(sig.Keywords) > 0 && !matchesAnyKeyword(p, sig.Keywords) {
			continue
		}
		if len(sig.CategoryHints) > 0 && !containsFold(sig.CategoryHints, p.CategoryName) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func matchesAnyKeyword(p domain.Product, keywords []string) bool {
	name := strings.ToLower(p.Name)
	desc := strings.ToLower(p.Description)
	cat := strings.ToLower(p.CategoryName)
	for _, kw := range keywords {
		kw = strings.ToLower(kw)
		if strings.Contains(name, kw) || strings.Contains(desc, kw) || strings.Contains(cat, kw) {
			return true
		}
	}
	return false
}

func containsFold(set []string, s string) bool {
	s = strings.ToLower(s)
	for _, v := range set {
		if strings.ToLower(v) == s {
			return true
		}
	}
	return false
}

// Similar returns active products in the given category whose price
// falls inside the band, excluding one product id.
func (r *CatalogRepo) Similar(categoryID int64, band domain.PriceRange, excludeID int64) ([]domain.Product, error) {
	where := `p.active = 1 AND p.category_id = ? AND p.id <> ? AND p.price >= ?`
	args := []any{categoryID, excludeID, band.Min}
	if band.Max >= 0 {
		where += ` AND p.price <= ?`
		args = append(args, band.Max)
	}
	var out []domain.Product
	err := r.db.Select(&out, productSelect+` WHERE `+where+` ORDER BY p.id`, args...)
	return out, err
}

// ByCategories returns active products in any of the given categories
// with price inside the band, excluding the given ids (a user's
// already-purchased products). Empty excludeIDs is allowed.
func (r *CatalogRepo) ByCategories(categoryIDs []int64, band domain.PriceRange, excludeIDs []int64) ([]domain.Product, error) {
	if len(categoryIDs) == 0 {
		return nil, nil
	}
	q, args, err := sqlx.In(productSelect+` WHERE p.active = 1 AND p.category_id IN (?)`, categoryIDs)
	if err != nil {
		return nil, err
	}
	q += ` AND p.price >= ?`
	args = append(args, band.Min)
	if band.Max >= 0 {
		q += ` AND p.price <= ?`
		args = append(args, band.Max)
	}
	if len(excludeIDs) > 0 {
		ex, exArgs, inErr := sqlx.In(`p.id NOT IN (?)`, excludeIDs)
		if inErr != nil {
			return nil, inErr
		}
		q += ` AND ` + ex
		args = append(args, exArgs...)
	}
	var out []domain.Product
	err = r.db.Select(&out, q+` ORDER BY p.id`, args...)
	return out, err
}

// TrendingCandidates returns every active product with its windowed
// view and sale aggregates; cutoff is a TimeFormat timestamp bounding
// the trailing window.
func (r *CatalogRepo) TrendingCandidates(cutoff string) ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `
  SELECT
    p.id, p.category_id, c.name AS category_name, p.name, p.description,
    p.price, p.active, COALESCE(p.created_at,'') AS created_at,
    COALESCE(r.avg_rating, 0) AS avg_rating,
    COALESCE(r.review_count, 0) AS review_count,
    COALESCE(v.recent_views, 0) AS recent_views,
    COALESCE(s.recent_sales, 0) AS recent_sales
  FROM products p
  JOIN categories c ON c.id = p.category_id
  LEFT JOIN (
    SELECT product_id, AVG(rating) AS avg_rating, COUNT(*) AS review_count
    FROM reviews
    GROUP BY product_id
  ) r ON r.product_id = p.id
  LEFT JOIN (
    SELECT product_id, COUNT(*) AS recent_views
    FROM view_events
    WHERE viewed_at >= ?
    GROUP BY product_id
  ) v ON v.product_id = p.id
  LEFT JOIN (
    SELECT oi.product_id, SUM(oi.qty) AS recent_sales
    FROM order_items oi
    JOIN orders o ON o.id = oi.order_id
    WHERE o.created_at >= ?
    GROUP BY oi.product_id
  ) s ON s.product_id = p.id
  WHERE p.active = 1
  ORDER BY p.id`, cutoff, cutoff)
	return out, err
}

// SuggestNames returns up to limit product names whose name or
// description contains the partial query, case-insensitive.
func (r *CatalogRepo) SuggestNames(partial string, limit int) ([]string, error) {
	var rows []struct {
		Name        string `db:"name"`
		Description string `db:"description"`
	}
	err := r.db.Select(&rows, `
	  SELECT name, description FROM products
	  WHERE active = 1
	  ORDER BY id`)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(partial)
	var out []string
	for _, row := range rows {
		if len(out) == limit {
			break
		}
		if strings.Contains(strings.ToLower(row.Name), needle) ||
			strings.Contains(strings.ToLower(row.Description), needle) {
			out = append(out, row.Name)
		}
	}
	return out, nil
}
