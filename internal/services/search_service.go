package services

import (
	"time"

	"techmart/internal/domain"
	"techmart/internal/query"
	"techmart/internal/repos"
)

// SearchService runs smart search: interpret the query, filter the
// catalog, rank by rating, truncate, log the outcome.
type SearchService struct {
	Catalog *repos.CatalogRepo
	Interp  *query.Interpreter
	Log     *QueryLogService
}

func NewSearchService(catalog *repos.CatalogRepo, interp *query.Interpreter, log *QueryLogService) *SearchService {
	return &SearchService{Catalog: catalog, Interp: interp, Log: log}
}

// SmartSearch returns up to maxResults products matching the query's
// signals, best-rated first. "Nothing matched" is an empty slice, not
// an error; only store failures propagate. The query is logged once,
// after the result count is known.
func (s *SearchService) SmartSearch(rawQuery, userID string, maxResults int) ([]domain.Product, error) {
	start := time.Now()

	sig := s.Interp.Interpret(rawQuery)
	cands, err := s.Catalog.Filter(sig)
	if err != nil {
		return nil, err
	}
	ranked := rankTop(cands, byRating, maxResults)

	s.Log.Record(rawQuery, userID, len(ranked), time.Since(start).Milliseconds())
	return ranked, nil
}
