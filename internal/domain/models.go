package domain

type Category struct {
	ID        int64  `db:"id" json:"id"`
	Name      string `db:"name" json:"name"`
	CreatedAt string `db:"created_at" json:"-"`
}

// Product carries catalog attributes plus the derived aggregates the
// ranking pipeline sorts on. Aggregates are computed per request by the
// repos layer; zero values mean "no reviews / no recent activity".
type Product struct {
	ID           int64   `db:"id"`
	CategoryID   int64   `db:"category_id"`
	CategoryName string  `db:"category_name"`
	Name         string  `db:"name"`
	Description  string  `db:"description"`
	Price        float64 `db:"price"` // VND
	Active       bool    `db:"active"`
	CreatedAt    string  `db:"created_at"`

	AvgRating   float64 `db:"avg_rating"`
	ReviewCount int     `db:"review_count"`
	RecentViews int     `db:"recent_views"`
	RecentSales int     `db:"recent_sales"`
}

// ProductSummary is the API-facing shape of a ranked product.
type ProductSummary struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description,omitempty"`
	Price        float64 `json:"price"`
	CategoryName string  `json:"categoryName"`
	AvgRating    float64 `json:"avgRating"`
	ReviewCount  int     `json:"reviewCount"`
}

func (p Product) Summary() ProductSummary {
	return ProductSummary{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Price:        p.Price,
		CategoryName: p.CategoryName,
		AvgRating:    p.AvgRating,
		ReviewCount:  p.ReviewCount,
	}
}

// Summaries maps a ranked slice into its API shape, keeping order.
func Summaries(ps []Product) []ProductSummary {
	out := make([]ProductSummary, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.Summary())
	}
	return out
}

type Review struct {
	ID        int64  `db:"id"`
	ProductID int64  `db:"product_id"`
	UserID    string `db:"user_id"`
	Rating    int    `db:"rating"` // 1..5
	Comment   string `db:"comment"`
	CreatedAt string `db:"created_at"`
}

// ViewEvent records one product page view. UserID is empty for anonymous
// visitors; SessionID still groups their activity.
type ViewEvent struct {
	ID        string `db:"id"`
	ProductID int64  `db:"product_id"`
	UserID    string `db:"user_id"`
	SessionID string `db:"session_id"`
	ViewedAt  string `db:"viewed_at"`
}

// PriceRange is an inclusive band. Max < 0 means unbounded above.
type PriceRange struct {
	Min float64
	Max float64
}

// Contains reports whether v falls inside the band.
func (r PriceRange) Contains(v float64) bool {
	if v < r.Min {
		return false
	}
	return r.Max < 0 || v <= r.Max
}

// SearchSignals is the structured form of a free-text query: keyword
// tokens, an optional price band and category-name hints. Built per
// query, discarded after use.
type SearchSignals struct {
	Keywords      []string
	Price         *PriceRange
	CategoryHints []string
}

func (s SearchSignals) Empty() bool {
	return len(s.Keywords) == 0 && s.Price == nil && len(s.CategoryHints) == 0
}

// UserProfile summarizes a user's history: up to three preferred
// category ids and an acceptable price band around the average purchase
// price. Rebuilt from scratch on every personalization request.
type UserProfile struct {
	PreferredCategories []int64
	AvgPurchasePrice    float64
	PriceBand           PriceRange
}

type Suggestions struct {
	PopularTerms     []string `json:"popularTerms"`
	Categories       []string `json:"categories"`
	SmartCompletions []string `json:"smartCompletions"`
}

type SearchTerm struct {
	Term  string `json:"term" db:"term"`
	Count int    `json:"count" db:"cnt"`
}

// Analytics are descriptive statistics over the query log.
type Analytics struct {
	Accuracy      float64      `json:"accuracy"` // % of searches with >0 results
	AvgResponseMs float64      `json:"avgResponseMs"`
	DailyCount    int          `json:"dailyCount"`
	PopularTerms  []SearchTerm `json:"popularTerms"`
}
