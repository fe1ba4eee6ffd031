package query

// DefaultStopWords are common Vietnamese filler words stripped before
// keyword matching.
var DefaultStopWords = []string{
	"tôi", "muốn", "cần", "tìm", "mua", "có", "là", "một",
	"của", "cho", "với", "được",
}

// DefaultCategorySynonyms maps catalog category names to the keywords
// that hint at them. A hint fires when any synonym is a substring of
// the query; the category name itself also counts.
var DefaultCategorySynonyms = map[string][]string{
	"điện thoại": {"điện thoại", "phone", "smartphone", "di động", "mobile"},
	"laptop":     {"laptop", "máy tính", "computer", "notebook"},
	"tai nghe":   {"tai nghe", "headphone", "earphone", "âm thanh"},
	"đồng hồ":    {"đồng hồ", "watch", "smartwatch", "thông minh"},
	"phụ kiện":   {"phụ kiện", "accessory", "case", "ốp", "cáp", "sạc"},
}

// SmartCompletionSuffixes are appended to a partial query to build
// search suggestions, in this order, capped by the suggester.
var SmartCompletionSuffixes = []string{
	" giá rẻ", " chính hãng", " mới nhất", " tốt nhất", " khuyến mãi",
}
