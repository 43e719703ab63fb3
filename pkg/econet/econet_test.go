package econet

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/cognicore/econgraph/pkg/econet/internalerr"
	"github.com/cognicore/econgraph/pkg/econet/taxonomy"
)

func newTestEngine(t *testing.T, cats []taxonomy.Category) *Engine {
	t.Helper()
	catalog, err := taxonomy.NewCatalog(cats)
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	e, err := New(Options{Catalog: catalog})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e
}

func TestAnalyzeNoValidTexts(t *testing.T) {
	e, err := New(Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	for _, texts := range [][]string{
		nil,
		{},
		{"", "   ", "\t\n"},
		{"short", "tiny text!"},
	} {
		res, err := e.Analyze(texts)
		if !errors.Is(err, internalerr.ErrNoValidTexts) {
			t.Errorf("Analyze(%v): err = %v, want ErrNoValidTexts", texts, err)
		}
		if res.Error != "No valid texts found" {
			t.Errorf("Analyze(%v): Error = %q", texts, res.Error)
		}
	}
}

func TestAnalyzeSingleCategoryScore(t *testing.T) {
	e := newTestEngine(t, []taxonomy.Category{
		{ID: "x", MainTerms: []string{"alpha"}, Weight: 0.5},
	})

	res, err := e.Analyze([]string{"alpha rising"})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(res.Nodes) != 1 {
		t.Fatalf("nodes = %d, want 1", len(res.Nodes))
	}
	n := res.Nodes[0]
	if n.ID != "x" {
		t.Errorf("node id = %q, want x", n.ID)
	}
	// One main-term hit: 2.0 * 0.5
	if n.Score != 1.0 {
		t.Errorf("score = %v, want 1.0", n.Score)
	}
	if n.Mentions != 1 {
		t.Errorf("mentions = %d, want 1", n.Mentions)
	}
}

func TestAnalyzeEdgeThreshold(t *testing.T) {
	cats := []taxonomy.Category{
		{ID: "a", MainTerms: []string{"fed"}, Weight: 1.0},
		{ID: "b", MainTerms: []string{"inflation"}, Weight: 1.0},
	}

	e := newTestEngine(t, cats)

	// Both categories score 2.0 in one text: raw strength sqrt(4) = 2 > 0.5
	res, err := e.Analyze([]string{"fed fights inflation today"})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(res.Edges) != 1 {
		t.Fatalf("edges = %d, want 1", len(res.Edges))
	}
	if res.Edges[0].Weight != 0.2 {
		t.Errorf("normalized weight = %v, want 0.2", res.Edges[0].Weight)
	}

	// Low-weight categories keep raw strength at or below the threshold:
	// each scores 2*0.25 = 0.5, sqrt(0.25) = 0.5, not > 0.5.
	low := []taxonomy.Category{
		{ID: "a", MainTerms: []string{"fed"}, Weight: 0.25},
		{ID: "b", MainTerms: []string{"inflation"}, Weight: 0.25},
	}
	e = newTestEngine(t, low)
	res, err = e.Analyze([]string{"fed fights inflation today"})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(res.Edges) != 0 {
		t.Fatalf("edges = %d, want 0 at threshold", len(res.Edges))
	}
}

func TestAnalyzeSentimentPanicSkipsItem(t *testing.T) {
	catalog, err := taxonomy.NewCatalog([]taxonomy.Category{
		{ID: "x", MainTerms: []string{"alpha"}, Weight: 1.0},
	})
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}

	calls := 0
	e, err := New(Options{
		Catalog: catalog,
		Sentiment: func(text string) float64 {
			calls++
			if calls == 1 {
				panic("model unavailable")
			}
			return 0.5
		},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	res, err := e.Analyze([]string{"alpha crashes hard", "alpha recovers nicely"})
	if err != nil {
		t.Fatalf("a panicking sentiment scorer must not abort the batch: %v", err)
	}
	if len(res.Nodes) != 1 {
		t.Fatalf("nodes = %d, want 1", len(res.Nodes))
	}
	// Only the second item survived
	if res.TextCount != 1 {
		t.Errorf("text count = %d, want 1 (skipped items are not counted)", res.TextCount)
	}
	if res.Nodes[0].Mentions != 1 {
		t.Errorf("mentions = %d, want 1 (first item skipped)", res.Nodes[0].Mentions)
	}
	if res.Nodes[0].AvgSentiment != 0.5 {
		t.Errorf("avg sentiment = %v, want 0.5", res.Nodes[0].AvgSentiment)
	}
}

func TestAnalyzeSentimentClamped(t *testing.T) {
	catalog, err := taxonomy.NewCatalog([]taxonomy.Category{
		{ID: "x", MainTerms: []string{"alpha"}, Weight: 1.0},
	})
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	e, err := New(Options{
		Catalog:   catalog,
		Sentiment: func(string) float64 { return 7.5 },
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	res, err := e.Analyze([]string{"alpha going up"})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if res.Nodes[0].AvgSentiment != 1.0 {
		t.Errorf("avg sentiment = %v, want clamped to 1.0", res.Nodes[0].AvgSentiment)
	}
}

func TestAnalyzeDeterministic(t *testing.T) {
	e, err := New(Options{Sentiment: sentimentByLength})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	texts := []string{
		"Fed raises rates amid inflation concerns in markets",
		"Stock market falls as inflation fears grow worldwide",
		"Oil prices push energy costs and inflation higher",
	}

	r1, err := e.Analyze(texts)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	r2, err := e.Analyze(texts)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if !reflect.DeepEqual(r1.Nodes, r2.Nodes) {
		t.Error("nodes differ between identical runs")
	}
	if !reflect.DeepEqual(r1.Edges, r2.Edges) {
		t.Error("edges differ between identical runs")
	}
	if !reflect.DeepEqual(r1.Metrics, r2.Metrics) {
		t.Error("metrics differ between identical runs")
	}
	if !reflect.DeepEqual(r1.Insights, r2.Insights) {
		t.Error("insights differ between identical runs")
	}
}

func sentimentByLength(text string) float64 {
	if len(text)%2 == 0 {
		return 0.2
	}
	return -0.2
}

func TestAnalyzeItemsTrends(t *testing.T) {
	e := newTestEngine(t, []taxonomy.Category{
		{ID: "inflation", MainTerms: []string{"inflation"}, Weight: 1.0},
		{ID: "energy", MainTerms: []string{"oil"}, Weight: 1.0},
	})

	base := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)
	items := []Item{
		{Text: "inflation climbing again", PublishedAt: base.Add(10 * time.Minute)},
		{Text: "oil prices spike on supply fears", PublishedAt: base.Add(30 * time.Minute)},
		{Text: "inflation cools down slightly", PublishedAt: base.Add(90 * time.Minute)},
	}

	res, err := e.AnalyzeItems(items)
	if err != nil {
		t.Fatalf("AnalyzeItems: %v", err)
	}
	if len(res.Trends) != 2 {
		t.Fatalf("trends = %v, want 2 hour buckets", res.Trends)
	}

	h1 := base.Format(time.RFC3339)
	bucket, ok := res.Trends[h1]
	if !ok {
		t.Fatalf("missing bucket %s in %v", h1, res.Trends)
	}
	if bucket["inflation"] != 2.0 || bucket["energy"] != 2.0 {
		t.Errorf("first hour bucket = %v", bucket)
	}

	h2 := base.Add(time.Hour).Format(time.RFC3339)
	if res.Trends[h2]["inflation"] != 2.0 {
		t.Errorf("second hour bucket = %v", res.Trends[h2])
	}
}

func TestAnalyzeResultHasID(t *testing.T) {
	e := newTestEngine(t, []taxonomy.Category{
		{ID: "x", MainTerms: []string{"alpha"}, Weight: 1.0},
	})
	res, err := e.Analyze([]string{"alpha rising fast"})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(res.ID) != 26 {
		t.Errorf("result ID should be a 26-char ULID, got %q", res.ID)
	}
	if res.GeneratedAt.IsZero() {
		t.Error("GeneratedAt should be set")
	}
}

func TestNewRejectsEmptyCatalog(t *testing.T) {
	_, err := New(Options{Catalog: &taxonomy.Catalog{}})
	if !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Fatalf("err = %v, want ErrInvalidConfig", err)
	}
}
