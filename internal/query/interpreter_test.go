package query_test

import (
	"reflect"
	"testing"

	"techmart/internal/query"
)

func TestInterpretKeywords(t *testing.T) {
	in := query.NewDefault()

	sig := in.Interpret("Tôi muốn mua Laptop gaming, màn đẹp!")
	want := []string{"laptop", "gaming", "màn", "đẹp"}
	if !reflect.DeepEqual(sig.Keywords, want) {
		t.Fatalf("keywords = %v, want %v", sig.Keywords, want)
	}
}

func TestInterpretKeywordsDedupeAndShortTokens(t *testing.T) {
	in := query.NewDefault()

	sig := in.Interpret("laptop laptop ssd 16 gb")
	want := []string{"laptop", "ssd"}
	if !reflect.DeepEqual(sig.Keywords, want) {
		t.Fatalf("keywords = %v, want %v", sig.Keywords, want)
	}
}

func TestInterpretPriceExplicitMax(t *testing.T) {
	in := query.NewDefault()

	sig := in.Interpret("điện thoại dưới 10 triệu")
	if sig.Price == nil {
		t.Fatal("want a price range")
	}
	if sig.Price.Min != 0 || sig.Price.Max != 10_000_000 {
		t.Fatalf("price = [%v, %v], want [0, 10000000]", sig.Price.Min, sig.Price.Max)
	}
}

func TestInterpretPriceExplicitMin(t *testing.T) {
	in := query.NewDefault()

	sig := in.Interpret("laptop trên 15 tr")
	if sig.Price == nil {
		t.Fatal("want a price range")
	}
	if sig.Price.Min != 15_000_000 || sig.Price.Max >= 0 {
		t.Fatalf("price = [%v, %v], want [15000000, unbounded]", sig.Price.Min, sig.Price.Max)
	}
}

func TestInterpretPriceThousands(t *testing.T) {
	in := query.NewDefault()

	sig := in.Interpret("tai nghe dưới 500k")
	if sig.Price == nil || sig.Price.Max != 500_000 {
		t.Fatalf("price = %+v, want max 500000", sig.Price)
	}
}

func TestInterpretPriceQualitativeBands(t *testing.T) {
	in := query.NewDefault()

	cases := []struct {
		q        string
		min, max float64
	}{
		{"điện thoại giá rẻ", 0, 5_000_000},
		{"laptop tầm trung", 5_000_000, 15_000_000},
		{"đồng hồ cao cấp", 15_000_000, -1},
	}
	for _, tc := range cases {
		sig := in.Interpret(tc.q)
		if sig.Price == nil {
			t.Fatalf("%q: want a price range", tc.q)
		}
		if sig.Price.Min != tc.min || sig.Price.Max != tc.max {
			t.Fatalf("%q: price = [%v, %v], want [%v, %v]", tc.q, sig.Price.Min, sig.Price.Max, tc.min, tc.max)
		}
	}
}

// Explicit amounts win over qualitative keywords regardless of order in
// the query text.
func TestInterpretPricePrecedence(t *testing.T) {
	in := query.NewDefault()

	sig := in.Interpret("điện thoại giá rẻ dưới 3 triệu")
	if sig.Price == nil || sig.Price.Min != 0 || sig.Price.Max != 3_000_000 {
		t.Fatalf("price = %+v, want [0, 3000000]", sig.Price)
	}
}

func TestInterpretNoPrice(t *testing.T) {
	in := query.NewDefault()

	if sig := in.Interpret("tai nghe bluetooth"); sig.Price != nil {
		t.Fatalf("price = %+v, want nil", sig.Price)
	}
}

func TestInterpretCategoryHints(t *testing.T) {
	in := query.NewDefault()

	sig := in.Interpret("tìm đồng hồ thông minh")
	found := false
	for _, h := range sig.CategoryHints {
		if h == "đồng hồ" {
			found = true
		}
	}
	if !found {
		t.Fatalf("hints = %v, want to include %q", sig.CategoryHints, "đồng hồ")
	}
}

func TestInterpretHintViaSynonym(t *testing.T) {
	in := query.NewDefault()

	sig := in.Interpret("smartphone pin khủng")
	if !reflect.DeepEqual(sig.CategoryHints, []string{"điện thoại"}) {
		t.Fatalf("hints = %v, want [điện thoại]", sig.CategoryHints)
	}
}

func TestInterpretEmptyQuery(t *testing.T) {
	in := query.NewDefault()

	sig := in.Interpret("   ")
	if !sig.Empty() {
		t.Fatalf("want empty signals, got %+v", sig)
	}
}

// Dictionaries are injected, so a different locale is just a different
// constructor call.
func TestInterpretCustomDictionaries(t *testing.T) {
	in := query.New(
		[]string{"the"},
		map[string][]string{"consoles": {"console", "nintendo"}},
	)

	sig := in.Interpret("the nintendo console")
	if !reflect.DeepEqual(sig.Keywords, []string{"nintendo", "console"}) {
		t.Fatalf("keywords = %v", sig.Keywords)
	}
	if !reflect.DeepEqual(sig.CategoryHints, []string{"consoles"}) {
		t.Fatalf("hints = %v", sig.CategoryHints)
	}
}
