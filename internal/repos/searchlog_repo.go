package repos

import (
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"techmart/internal/domain"
)

// SearchLogRepo is the append-only query log plus the read side the
// analytics summarizer uses. Entries are never updated or deleted here;
// retention is an operator concern.
type SearchLogRepo struct{ db *sqlx.DB }

func NewSearchLogRepo(db *sqlx.DB) *SearchLogRepo { return &SearchLogRepo{db: db} }

// Append records one executed search.
func (r *SearchLogRepo) Append(query, userID string, resultCount int, tookMs int64, at string) error {
	_, err := r.db.Exec(`
	  INSERT INTO search_logs(id, query, user_id, result_count, took_ms, created_at)
	  VALUES(?, ?, ?, ?, ?, ?)`,
		uuid.NewString(), query, userID, resultCount, tookMs, at)
	return err
}

// Totals returns the all-time query count and the count of queries that
// produced at least one result.
func (r *SearchLogRepo) Totals() (total, withResults int, err error) {
	err = r.db.Get(&total, `SELECT COUNT(*) FROM search_logs`)
	if err != nil {
		return 0, 0, err
	}
	err = r.db.Get(&withResults, `SELECT COUNT(*) FROM search_logs WHERE result_count > 0`)
	return total, withResults, err
}

// CountSince returns the number of queries at or after the cutoff.
func (r *SearchLogRepo) CountSince(cutoff string) (int, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM search_logs WHERE created_at >= ?`, cutoff)
	return n, err
}

// TopTerms groups queries at or after the cutoff by lower-cased text
// and returns the most frequent, ties by term ascending.
func (r *SearchLogRepo) TopTerms(cutoff string, limit int) ([]domain.SearchTerm, error) {
	var out []domain.SearchTerm
	err := r.db.Select(&out, `
	  SELECT LOWER(query) AS term, COUNT(*) AS cnt
	  FROM search_logs
	  WHERE created_at >= ?
	  GROUP BY LOWER(query)
	  ORDER BY cnt DESC, term
	  LIMIT ?`, cutoff, limit)
	return out, err
}

// AvgTookMs returns the mean recorded search duration at or after the
// cutoff, 0 when the window is empty.
func (r *SearchLogRepo) AvgTookMs(cutoff string) (float64, error) {
	var avg float64
	err := r.db.Get(&avg, `
	  SELECT COALESCE(AVG(took_ms), 0)
	  FROM search_logs
	  WHERE created_at >= ?`, cutoff)
	return avg, err
}
