package repos

import (
	"strings"

	"github.com/jmoiron/sqlx"

	"techmart/internal/domain"
)

type CategoryRepo struct{ db *sqlx.DB }

func NewCategoryRepo(db *sqlx.DB) *CategoryRepo { return &CategoryRepo{db: db} }

func (r *CategoryRepo) List() ([]domain.Category, error) {
	var out []domain.Category
	err := r.db.Select(&out, `
	  SELECT id, name, COALESCE(created_at,'') AS created_at
	  FROM categories
	  ORDER BY name`)
	return out, err
}

// SuggestNames returns up to limit category names containing the
// partial query. Matching runs in Go; sqlite's case folding is
// ASCII-only and the names are Vietnamese.
func (r *CategoryRepo) SuggestNames(partial string, limit int) ([]string, error) {
	cats, err := r.List()
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(partial)
	var out []string
	for _, c := range cats {
		if len(out) == limit {
			break
		}
		if strings.Contains(strings.ToLower(c.Name), needle) {
			out = append(out, c.Name)
		}
	}
	return out, nil
}
