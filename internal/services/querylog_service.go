package services

import (
	"time"

	"techmart/internal/domain"
	applog "techmart/internal/log"
	"techmart/internal/repos"
)

// QueryLogService owns the append-only search log. Writes are
// best-effort: a failed append must never fail the search that
// triggered it, so Record swallows errors after an operator diagnostic.
type QueryLogService struct {
	Logs *repos.SearchLogRepo
}

func NewQueryLogService(logs *repos.SearchLogRepo) *QueryLogService {
	return &QueryLogService{Logs: logs}
}

func (s *QueryLogService) Record(query, userID string, resultCount int, tookMs int64) {
	at := time.Now().UTC().Format(repos.TimeFormat)
	if err := s.Logs.Append(query, userID, resultCount, tookMs, at); err != nil {
		applog.Op("searchlog.write.fail", err, map[string]any{"query": query})
	}
}

// Analytics summarizes the log: all-time accuracy (share of searches
// with at least one result), mean duration and top terms over a
// trailing 7-day window, and today's query count.
func (s *QueryLogService) Analytics() (domain.Analytics, error) {
	var a domain.Analytics

	total, withResults, err := s.Logs.Totals()
	if err != nil {
		return a, err
	}
	if total > 0 {
		a.Accuracy = float64(withResults) / float64(total) * 100
	}

	now := time.Now().UTC()
	dayStart := now.Format("2006-01-02") + " 00:00:00"
	if a.DailyCount, err = s.Logs.CountSince(dayStart); err != nil {
		return a, err
	}

	weekCutoff := now.AddDate(0, 0, -7).Format(repos.TimeFormat)
	if a.AvgResponseMs, err = s.Logs.AvgTookMs(weekCutoff); err != nil {
		return a, err
	}
	if a.PopularTerms, err = s.Logs.TopTerms(weekCutoff, 10); err != nil {
		return a, err
	}
	if a.PopularTerms == nil {
		a.PopularTerms = []domain.SearchTerm{}
	}
	return a, nil
}
