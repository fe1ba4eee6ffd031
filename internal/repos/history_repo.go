package repos

import (
	"github.com/jmoiron/sqlx"

	"techmart/internal/domain"
)

// HistoryRepo reads a user's purchase and view history and records new
// view events. Orders themselves are written by the checkout flow and
// are read-only here.
type HistoryRepo struct{ db *sqlx.DB }

func NewHistoryRepo(db *sqlx.DB) *HistoryRepo { return &HistoryRepo{db: db} }

// PurchasedProducts returns the products a user has bought, one row per
// order line (repeats feed the category frequency count).
func (r *HistoryRepo) PurchasedProducts(userID string) ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `
	  SELECT p.id, p.category_id, p.name, p.price
	  FROM order_items oi
	  JOIN orders o ON o.id = oi.order_id
	  JOIN products p ON p.id = oi.product_id
	  WHERE o.user_id = ?
	  ORDER BY o.created_at, p.id`, userID)
	return out, err
}

// ViewedProducts returns the products a user has viewed, one row per
// view event.
func (r *HistoryRepo) ViewedProducts(userID string) ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `
	  SELECT p.id, p.category_id, p.name, p.price
	  FROM view_events v
	  JOIN products p ON p.id = v.product_id
	  WHERE v.user_id = ?
	  ORDER BY v.viewed_at, p.id`, userID)
	return out, err
}

// RecordView appends one view event.
func (r *HistoryRepo) RecordView(e domain.ViewEvent) error {
	_, err := r.db.Exec(`
	  INSERT INTO view_events(id, product_id, user_id, session_id, viewed_at)
	  VALUES(?, ?, ?, ?, ?)`,
		e.ID, e.ProductID, e.UserID, e.SessionID, e.ViewedAt)
	return err
}
