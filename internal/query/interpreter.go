// Package query turns free-text storefront queries into structured
// search signals: keyword tokens, an optional price band and category
// hints. Interpretation is pure string work; no I/O, no failure modes.
package query

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"techmart/internal/domain"
)

var (
	reAmount    = regexp.MustCompile(`(\d+)\s*(triệu|nghìn|tr|k)`)
	reTokenizer = regexp.MustCompile(`[\s,.!?]+`)
)

// Interpreter extracts SearchSignals from raw queries. Stop words and
// category synonyms are injected so they can be swapped per locale or
// per test; NewDefault wires the Vietnamese storefront dictionaries.
type Interpreter struct {
	stopWords map[string]struct{}
	synonyms  map[string][]string // category name -> synonym keywords
}

func New(stopWords []string, categorySynonyms map[string][]string) *Interpreter {
	sw := make(map[string]struct{}, len(stopWords))
	for _, w := range stopWords {
		sw[strings.ToLower(w)] = struct{}{}
	}
	return &Interpreter{stopWords: sw, synonyms: categorySynonyms}
}

func NewDefault() *Interpreter {
	return New(DefaultStopWords, DefaultCategorySynonyms)
}

// Interpret parses a raw query. Always returns a (possibly empty)
// signal set.
func (in *Interpreter) Interpret(raw string) domain.SearchSignals {
	q := strings.ToLower(strings.TrimSpace(raw))
	return domain.SearchSignals{
		Keywords:      in.keywords(q),
		Price:         in.priceRange(q),
		CategoryHints: in.categoryHints(q),
	}
}

// keywords tokenizes on whitespace and , . ! ?, drops stop words and
// tokens of two runes or fewer, and dedupes preserving order.
func (in *Interpreter) keywords(q string) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, tok := range reTokenizer.Split(q, -1) {
		if tok == "" || len([]rune(tok)) <= 2 {
			continue
		}
		if _, stop := in.stopWords[tok]; stop {
			continue
		}
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		out = append(out, tok)
	}
	return out
}

// priceRange derives at most one band. Rule order is fixed: explicit
// maximum ("dưới"/"under"), explicit minimum ("trên"/"over"), then the
// qualitative bands cheap, mid-range, premium. First match wins.
func (in *Interpreter) priceRange(q string) *domain.PriceRange {
	if containsAny(q, "dưới", "under") {
		if amt, ok := amountIn(q); ok {
			return &domain.PriceRange{Min: 0, Max: amt}
		}
	}
	if containsAny(q, "trên", "over") {
		if amt, ok := amountIn(q); ok {
			return &domain.PriceRange{Min: amt, Max: -1}
		}
	}
	switch {
	case containsAny(q, "rẻ", "cheap"):
		return &domain.PriceRange{Min: 0, Max: 5_000_000}
	case containsAny(q, "tầm trung", "mid-range"):
		return &domain.PriceRange{Min: 5_000_000, Max: 15_000_000}
	case containsAny(q, "cao cấp", "premium", "đắt"):
		return &domain.PriceRange{Min: 15_000_000, Max: -1}
	}
	return nil
}

// amountIn scans for "<n> triệu|tr" (millions) or "<n> nghìn|k"
// (thousands) and returns the first amount in VND.
func amountIn(q string) (float64, bool) {
	m := reAmount.FindStringSubmatch(q)
	if m == nil {
		return 0, false
	}
	n, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	switch m[2] {
	case "triệu", "tr":
		return n * 1_000_000, true
	case "nghìn", "k":
		return n * 1_000, true
	}
	return 0, false
}

// categoryHints returns the category names any of whose synonyms occur
// as a substring of the query. No stemming, no fuzzy matching.
func (in *Interpreter) categoryHints(q string) []string {
	var hints []string
	for _, name := range sortedKeys(in.synonyms) {
		for _, kw := range in.synonyms[name] {
			if strings.Contains(q, kw) {
				hints = append(hints, name)
				break
			}
		}
	}
	return hints
}

func containsAny(q string, subs ...string) bool {
	for _, s := range subs {
		if strings.Contains(q, s) {
			return true
		}
	}
	return false
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
