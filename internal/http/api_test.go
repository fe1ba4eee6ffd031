package handlers_test

import (
	"encoding/json"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"

	"techmart/internal/http/handlers"
	"techmart/internal/repos"
)

// newAPIApp wires the API against a seeded in-memory database, the way
// main does.
func newAPIApp(t *testing.T) *fiber.App {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	engine := html.New("../../web/templates", ".html")
	app := fiber.New(fiber.Config{Views: engine})
	app.Use(requestid.New())

	deps := handlers.NewDeps(db)
	api := app.Group("/api/v1")
	api.Get("/search", deps.SearchHandler.Smart)
	api.Get("/suggest", deps.SuggestHandler.Suggestions)
	api.Get("/trending", deps.RecommendHandler.Trending)
	api.Get("/recommendations", deps.RecommendHandler.Personalized)
	api.Get("/categories", deps.CatalogHandler.Categories)
	api.Get("/products/:id", deps.CatalogHandler.Detail)
	api.Get("/products/:id/similar", deps.RecommendHandler.Similar)
	api.Post("/track/view", deps.TrackHandler.View)
	api.Get("/analytics", deps.AnalyticsHandler.Stats)
	app.Get("/dashboard", deps.AnalyticsHandler.Dashboard)

	return app
}

type productsResp struct {
	Query    string `json:"query"`
	Count    int    `json:"count"`
	Products []struct {
		ID           int64   `json:"id"`
		Name         string  `json:"name"`
		Price        float64 `json:"price"`
		CategoryName string  `json:"categoryName"`
		AvgRating    float64 `json:"avgRating"`
		ReviewCount  int     `json:"reviewCount"`
	} `json:"products"`
}

func getJSON(t *testing.T, app *fiber.App, path string, out any) int {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode %s: %v", path, err)
		}
	}
	return resp.StatusCode
}

func TestSearchEndpoint(t *testing.T) {
	app := newAPIApp(t)

	q := url.QueryEscape("điện thoại dưới 10 triệu")
	var body productsResp
	if code := getJSON(t, app, "/api/v1/search?q="+q+"&limit=2", &body); code != 200 {
		t.Fatalf("status = %d", code)
	}
	if body.Count == 0 || body.Count > 2 || len(body.Products) != body.Count {
		t.Fatalf("body = %+v", body)
	}
	for _, p := range body.Products {
		if p.CategoryName != "Điện thoại" {
			t.Fatalf("category = %q, want phones only", p.CategoryName)
		}
		if p.Price > 10_000_000 {
			t.Fatalf("price %v over the requested cap", p.Price)
		}
	}
}

func TestSearchEndpointEmptyQuery(t *testing.T) {
	app := newAPIApp(t)

	var body productsResp
	if code := getJSON(t, app, "/api/v1/search?q=", &body); code != 200 {
		t.Fatalf("status = %d", code)
	}
	if body.Count != 0 {
		t.Fatalf("count = %d, want 0", body.Count)
	}
}

func TestSimilarEndpoint(t *testing.T) {
	app := newAPIApp(t)

	// Apple Watch SE (6.19M) has Garmin (4.79M) inside its ±30% band.
	var body productsResp
	if code := getJSON(t, app, "/api/v1/products/8/similar", &body); code != 200 {
		t.Fatalf("status = %d", code)
	}
	if body.Count != 1 || body.Products[0].ID != 9 {
		t.Fatalf("body = %+v, want only product 9", body)
	}
}

func TestSimilarEndpointBadAndUnknownIDs(t *testing.T) {
	app := newAPIApp(t)

	if code := getJSON(t, app, "/api/v1/products/abc/similar", nil); code != 400 {
		t.Fatalf("bad id status = %d, want 400", code)
	}
	var body productsResp
	if code := getJSON(t, app, "/api/v1/products/999/similar", &body); code != 200 {
		t.Fatalf("unknown id status = %d, want 200", code)
	}
	if body.Count != 0 {
		t.Fatalf("unknown id count = %d, want 0", body.Count)
	}
}

func TestTrendingEndpointLimit(t *testing.T) {
	app := newAPIApp(t)

	var body productsResp
	if code := getJSON(t, app, "/api/v1/trending?limit=3", &body); code != 200 {
		t.Fatalf("status = %d", code)
	}
	if body.Count != 3 {
		t.Fatalf("count = %d, want 3", body.Count)
	}
}

func TestRecommendationsEndpointExcludesPurchases(t *testing.T) {
	app := newAPIApp(t)

	// Seeded user u-lan bought products 1 and 10.
	var body productsResp
	if code := getJSON(t, app, "/api/v1/recommendations?userId=u-lan", &body); code != 200 {
		t.Fatalf("status = %d", code)
	}
	if body.Count == 0 {
		t.Fatal("want recommendations for a user with history")
	}
	for _, p := range body.Products {
		if p.ID == 1 || p.ID == 10 {
			t.Fatalf("purchased product %d in recommendations", p.ID)
		}
	}
}

func TestSuggestEndpoint(t *testing.T) {
	app := newAPIApp(t)

	var body struct {
		PopularTerms     []string `json:"popularTerms"`
		Categories       []string `json:"categories"`
		SmartCompletions []string `json:"smartCompletions"`
	}
	q := url.QueryEscape("điện")
	if code := getJSON(t, app, "/api/v1/suggest?q="+q, &body); code != 200 {
		t.Fatalf("status = %d", code)
	}
	if len(body.PopularTerms) == 0 || len(body.PopularTerms) > 5 {
		t.Fatalf("popularTerms = %v", body.PopularTerms)
	}
	if len(body.Categories) == 0 || len(body.Categories) > 3 {
		t.Fatalf("categories = %v", body.Categories)
	}
	if len(body.SmartCompletions) != 3 || !strings.HasPrefix(body.SmartCompletions[0], "điện") {
		t.Fatalf("completions = %v", body.SmartCompletions)
	}
}

func TestTrackViewEndpoint(t *testing.T) {
	app := newAPIApp(t)

	post := func(payload string) int {
		req := httptest.NewRequest("POST", "/api/v1/track/view", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		if err != nil {
			t.Fatal(err)
		}
		resp.Body.Close()
		return resp.StatusCode
	}

	if code := post(`{"productId":1,"userId":"u-lan"}`); code != 204 {
		t.Fatalf("valid view status = %d, want 204", code)
	}
	if code := post(`{"productId":999}`); code != 404 {
		t.Fatalf("unknown product status = %d, want 404", code)
	}
	if code := post(`{"productId":0}`); code != 400 {
		t.Fatalf("invalid body status = %d, want 400", code)
	}
}

func TestAnalyticsEndpointAndDashboard(t *testing.T) {
	app := newAPIApp(t)

	q := url.QueryEscape("tai nghe")
	if code := getJSON(t, app, "/api/v1/search?q="+q, nil); code != 200 {
		t.Fatalf("search status = %d", code)
	}

	var body struct {
		Accuracy   float64 `json:"accuracy"`
		DailyCount int     `json:"dailyCount"`
	}
	if code := getJSON(t, app, "/api/v1/analytics", &body); code != 200 {
		t.Fatalf("analytics status = %d", code)
	}
	if body.DailyCount < 1 {
		t.Fatalf("dailyCount = %d, want >= 1", body.DailyCount)
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/dashboard", nil))
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != 200 {
		t.Fatalf("dashboard status = %d", resp.StatusCode)
	}
}

func TestProductDetailEndpoint(t *testing.T) {
	app := newAPIApp(t)

	var body struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}
	if code := getJSON(t, app, "/api/v1/products/1", &body); code != 200 {
		t.Fatalf("status = %d", code)
	}
	if body.ID != 1 || body.Name == "" {
		t.Fatalf("body = %+v", body)
	}
	if code := getJSON(t, app, "/api/v1/products/999", nil); code != 404 {
		t.Fatalf("missing product status = %d, want 404", code)
	}
}
