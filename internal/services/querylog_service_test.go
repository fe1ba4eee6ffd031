package services_test

import (
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"techmart/internal/repos"
	"techmart/internal/services"
)

func newLogDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlx.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.Exec(`CREATE TABLE search_logs(id TEXT PRIMARY KEY, query TEXT,
	  user_id TEXT DEFAULT '', result_count INTEGER, took_ms INTEGER DEFAULT 0,
	  created_at TEXT DEFAULT CURRENT_TIMESTAMP)`); err != nil {
		t.Fatal(err)
	}
	return db
}

func TestAnalyticsAccuracyAndDailyCount(t *testing.T) {
	db := newLogDB(t)
	svc := services.NewQueryLogService(repos.NewSearchLogRepo(db))

	svc.Record("laptop", "u1", 3, 12)
	svc.Record("điện thoại", "", 5, 8)
	svc.Record("máy giặt", "", 0, 4)
	svc.Record("tủ lạnh", "u2", 0, 6)

	a, err := svc.Analytics()
	if err != nil {
		t.Fatal(err)
	}
	if a.Accuracy != 50 {
		t.Fatalf("accuracy = %v, want 50", a.Accuracy)
	}
	if a.DailyCount != 4 {
		t.Fatalf("daily = %d, want 4", a.DailyCount)
	}
	if a.AvgResponseMs != 7.5 {
		t.Fatalf("avg took = %v, want 7.5", a.AvgResponseMs)
	}
}

// Popular terms group case-insensitively over a trailing 7-day window;
// older entries fall out.
func TestAnalyticsPopularTermsWindow(t *testing.T) {
	db := newLogDB(t)
	svc := services.NewQueryLogService(repos.NewSearchLogRepo(db))

	svc.Record("Laptop", "", 2, 1)
	svc.Record("laptop", "", 1, 1)
	svc.Record("tai nghe", "", 1, 1)

	old := time.Now().UTC().AddDate(0, 0, -10).Format(repos.TimeFormat)
	db.MustExec(`INSERT INTO search_logs(id,query,result_count,created_at) VALUES
	  ('stale1','đồng hồ',1,?),('stale2','đồng hồ',1,?)`, old, old)

	a, err := svc.Analytics()
	if err != nil {
		t.Fatal(err)
	}
	if len(a.PopularTerms) != 2 {
		t.Fatalf("terms = %+v, want 2 in-window terms", a.PopularTerms)
	}
	if a.PopularTerms[0].Term != "laptop" || a.PopularTerms[0].Count != 2 {
		t.Fatalf("top term = %+v, want laptop×2", a.PopularTerms[0])
	}
}

func TestAnalyticsEmptyLog(t *testing.T) {
	db := newLogDB(t)
	svc := services.NewQueryLogService(repos.NewSearchLogRepo(db))

	a, err := svc.Analytics()
	if err != nil {
		t.Fatal(err)
	}
	if a.Accuracy != 0 || a.DailyCount != 0 || len(a.PopularTerms) != 0 {
		t.Fatalf("want zero-valued analytics, got %+v", a)
	}
}
