package validate

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var reUserID = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

const (
	maxQueryRunes = 100
	maxCount      = 50
	defaultCount  = 10
)

// Query trims a raw search query, clamps it to a sane rune length and
// rejects control characters. Unicode letters are allowed (queries are
// mostly Vietnamese). Empty after trim is reported as not-ok.
func Query(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	for _, r := range s {
		if unicode.IsControl(r) {
			return "", false
		}
	}
	if rs := []rune(s); len(rs) > maxQueryRunes {
		s = string(rs[:maxQueryRunes])
	}
	return s, true
}

// Count parses a result-count parameter and clamps it to [1, 50].
// Missing or unparsable input falls back to the default of 10.
func Count(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return defaultCount
	}
	if n > maxCount {
		return maxCount
	}
	return n
}

// ProductID parses a positive integer product identifier.
func ProductID(s string) (int64, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// UserID validates an opaque user identifier supplied by the auth layer.
func UserID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reUserID.MatchString(s)
}
