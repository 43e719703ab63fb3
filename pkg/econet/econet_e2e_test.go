package econet

import (
	"strings"
	"testing"

	"github.com/cognicore/econgraph/pkg/econet/sentiment"
	"github.com/cognicore/econgraph/pkg/econet/taxonomy"
)

// TestEndToEnd demonstrates the complete analysis workflow:
// 1. Engine construction with a custom taxonomy
// 2. Batch analysis of raw texts
// 3. Graph inspection (nodes, edges, relationship types)
// 4. Network metrics
// 5. Natural-language findings
func TestEndToEnd(t *testing.T) {
	// === Phase 1: Setup ===

	catalog, err := taxonomy.NewCatalog([]taxonomy.Category{
		{ID: "monetary_policy", MainTerms: []string{"Fed", "interest rate"}, Weight: 1.0},
		{ID: "inflation", MainTerms: []string{"inflation"}, Weight: 1.0},
		{ID: "stock_market", MainTerms: []string{"stock market"}, Weight: 1.0},
	})
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}

	e, err := New(Options{Catalog: catalog, Sentiment: sentiment.Keyword})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	// === Phase 2: Analyze a small news batch ===

	texts := []string{
		"Fed raises interest rates amid inflation concerns",
		"Stock market falls as inflation fears grow",
	}

	res, err := e.Analyze(texts)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if res.Error != "" {
		t.Fatalf("unexpected result error %q", res.Error)
	}
	if res.TextCount != 2 {
		t.Errorf("text count = %d, want 2", res.TextCount)
	}

	t.Logf("✓ Analyzed %d texts → %d nodes, %d edges",
		res.TextCount, len(res.Nodes), len(res.Edges))

	// === Phase 3: Graph structure ===

	// Text 1 mentions monetary_policy (fed + interest rate) and inflation;
	// text 2 mentions inflation and stock_market. monetary_policy and
	// stock_market never co-occur, so no edge connects them directly.
	wantNodes := []string{"monetary_policy", "inflation", "stock_market"}
	if len(res.Nodes) != len(wantNodes) {
		t.Fatalf("nodes = %v, want %v", nodeIDs(res), wantNodes)
	}
	for i, id := range wantNodes {
		if res.Nodes[i].ID != id {
			t.Errorf("node[%d] = %q, want %q (taxonomy order)", i, res.Nodes[i].ID, id)
		}
	}

	// "fed" and "interest rate" are both main terms: 2 * 2.0 * 1.0
	if mp := res.Nodes[0]; mp.Score != 4.0 {
		t.Errorf("monetary_policy score = %v, want 4.0", mp.Score)
	}
	// inflation appears once per text
	if inf := res.Nodes[1]; inf.Mentions != 2 {
		t.Errorf("inflation mentions = %d, want 2", inf.Mentions)
	}

	if len(res.Edges) != 2 {
		t.Fatalf("edges = %+v, want 2", res.Edges)
	}
	for _, edge := range res.Edges {
		if edge.Source == "monetary_policy" && edge.Target == "stock_market" {
			t.Errorf("unexpected edge between concepts that never co-occur: %+v", edge)
		}
		if edge.Weight <= 0 || edge.Weight > 1 {
			t.Errorf("edge weight %v outside (0,1]", edge.Weight)
		}
	}

	// The monetary_policy–inflation pair is curated as causal.
	found := false
	for _, edge := range res.Edges {
		if edge.Source == "inflation" && edge.Target == "monetary_policy" ||
			edge.Source == "monetary_policy" && edge.Target == "inflation" {
			found = true
			if edge.Type != "causal_relationship" {
				t.Errorf("monetary_policy–inflation type = %q, want causal_relationship", edge.Type)
			}
		}
	}
	if !found {
		t.Error("missing monetary_policy–inflation edge")
	}

	t.Logf("✓ Graph shape verified")

	// === Phase 4: Metrics ===

	m := res.Metrics
	// 3 nodes, 2 edges: density = 2*2 / (3*2)
	if diff := m.Density - 2.0/3.0; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("density = %v, want 2/3", m.Density)
	}
	if !m.Connected {
		t.Error("path graph should be connected")
	}
	if m.Diameter != 2 {
		t.Errorf("diameter = %v, want 2", m.Diameter)
	}
	// inflation sits between the other two concepts
	if m.Centrality.Degree["inflation"] != 1.0 {
		t.Errorf("inflation degree centrality = %v, want 1.0", m.Centrality.Degree["inflation"])
	}
	if m.Centrality.Betweenness["inflation"] != 1.0 {
		t.Errorf("inflation betweenness = %v, want 1.0", m.Centrality.Betweenness["inflation"])
	}

	t.Logf("✓ Metrics: density=%.3f diameter=%.0f", m.Density, m.Diameter)

	// === Phase 5: Findings ===

	if len(res.Insights) == 0 {
		t.Fatal("expected findings for a non-empty graph")
	}
	if !strings.Contains(res.Insights[0], "3개의 경제 개념") ||
		!strings.Contains(res.Insights[0], "2개의 관계") {
		t.Errorf("count finding = %q", res.Insights[0])
	}
	joined := strings.Join(res.Insights, "\n")
	if !strings.Contains(joined, "가장 중요한 경제 개념") {
		t.Error("missing top-concepts finding")
	}

	t.Logf("✓ %d findings generated", len(res.Insights))
}

func nodeIDs(res Result) []string {
	ids := make([]string, len(res.Nodes))
	for i, n := range res.Nodes {
		ids[i] = n.ID
	}
	return ids
}
