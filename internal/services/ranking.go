package services

import (
	"sort"

	"techmart/internal/domain"
)

// The four retrieval modes share one shape: fetch candidates, order
// them with a comparator, cut to n. rankTop is that shared tail; the
// comparators below are the scoring strategies.

func rankTop(cands []domain.Product, less func(a, b domain.Product) bool, n int) []domain.Product {
	out := make([]domain.Product, len(cands))
	copy(out, cands)
	sort.Slice(out, func(i, j int) bool { return less(out[i], out[j]) })
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// byRating orders by average rating descending, review count
// descending, then product id ascending. A product with no reviews has
// rating 0 and never outranks an equally-matched reviewed product.
func byRating(a, b domain.Product) bool {
	if a.AvgRating != b.AvgRating {
		return a.AvgRating > b.AvgRating
	}
	if a.ReviewCount != b.ReviewCount {
		return a.ReviewCount > b.ReviewCount
	}
	return a.ID < b.ID
}

// trendScore weighs windowed engagement:
// 0.3*views + 0.4*sales + 0.3*(avgRating*reviewCount).
func trendScore(p domain.Product) float64 {
	return 0.3*float64(p.RecentViews) +
		0.4*float64(p.RecentSales) +
		0.3*p.AvgRating*float64(p.ReviewCount)
}

// byTrend orders by trend score descending, ties by product id
// ascending.
func byTrend(a, b domain.Product) bool {
	sa, sb := trendScore(a), trendScore(b)
	if sa != sb {
		return sa > sb
	}
	return a.ID < b.ID
}
