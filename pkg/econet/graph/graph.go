// Package graph turns corpus statistics into an immutable concept graph.
package graph

import (
	"github.com/cognicore/econgraph/pkg/econet/corpus"
	"github.com/cognicore/econgraph/pkg/econet/relation"
)

const (
	// edgeThreshold is the minimum raw co-occurrence strength for a pair
	// to become an edge.
	edgeThreshold = 0.5

	// strengthScale divides raw strength into the normalized [0,1] edge
	// weight.
	strengthScale = 10.0

	maxDisplaySize = 100.0
)

// Node is one concept category present in the corpus.
type Node struct {
	ID           string   `json:"id"`
	Score        float64  `json:"score"`
	Mentions     int      `json:"mentions"`
	Terms        []string `json:"terms"`
	Weight       float64  `json:"weight"`
	AvgSentiment float64  `json:"avg_sentiment"`
	DisplaySize  float64  `json:"display_size"`
}

// Edge is an undirected relationship between two concept nodes.
type Edge struct {
	Source   string        `json:"source"`
	Target   string        `json:"target"`
	Weight   float64       `json:"weight"` // normalized to [0,1]
	Type     relation.Type `json:"relationship_type"`
	Strength float64       `json:"strength"` // raw accumulated co-weight
}

// Graph is an immutable concept graph value. Nodes keep catalog order;
// edges keep source-node order. Build once, read many.
type Graph struct {
	nodes     []Node
	edges     []Edge
	nodeIndex map[string]int
	adjacency map[string][]string
}

// Build constructs a graph from a stats snapshot. One node per category
// with a positive total score; one edge per pair whose raw strength
// exceeds the threshold and whose endpoints both exist.
func Build(stats corpus.Stats) *Graph {
	g := &Graph{
		nodeIndex: make(map[string]int),
		adjacency: make(map[string][]string),
	}

	for _, id := range stats.Order {
		cat := stats.Categories[id]
		if cat.TotalScore <= 0 {
			continue
		}
		g.nodeIndex[id] = len(g.nodes)
		g.nodes = append(g.nodes, Node{
			ID:           id,
			Score:        cat.TotalScore,
			Mentions:     cat.Mentions,
			Terms:        append([]string(nil), cat.Terms...),
			Weight:       cat.Weight,
			AvgSentiment: mean(cat.Sentiments),
			DisplaySize:  min(cat.TotalScore*10, maxDisplaySize),
		})
	}

	// Deterministic edge order: iterate pairs in node order rather than
	// ranging over the co-weight map.
	for i, src := range g.nodes {
		for _, dst := range g.nodes[i+1:] {
			strength, ok := stats.CoWeights[corpus.NewPair(src.ID, dst.ID)]
			if !ok || strength <= edgeThreshold {
				continue
			}
			g.edges = append(g.edges, Edge{
				Source:   src.ID,
				Target:   dst.ID,
				Weight:   min(strength/strengthScale, 1.0),
				Type:     relation.Classify(src.ID, dst.ID, strength),
				Strength: strength,
			})
			g.adjacency[src.ID] = append(g.adjacency[src.ID], dst.ID)
			g.adjacency[dst.ID] = append(g.adjacency[dst.ID], src.ID)
		}
	}

	return g
}

// Nodes returns the nodes in catalog order. Read-only.
func (g *Graph) Nodes() []Node { return g.nodes }

// Edges returns the edges. Read-only.
func (g *Graph) Edges() []Edge { return g.edges }

// Order returns the node count.
func (g *Graph) Order() int { return len(g.nodes) }

// Size returns the edge count.
func (g *Graph) Size() int { return len(g.edges) }

// Node returns the node for the given category id.
func (g *Graph) Node(id string) (Node, bool) {
	i, ok := g.nodeIndex[id]
	if !ok {
		return Node{}, false
	}
	return g.nodes[i], true
}

// NodeIndex returns the position of a node in catalog order, or -1.
func (g *Graph) NodeIndex(id string) int {
	if i, ok := g.nodeIndex[id]; ok {
		return i
	}
	return -1
}

// Neighbors returns the ids adjacent to the given node. Read-only.
func (g *Graph) Neighbors(id string) []string {
	return g.adjacency[id]
}

// Degree returns the number of edges incident to the given node.
func (g *Graph) Degree(id string) int {
	return len(g.adjacency[id])
}

func mean(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	var sum float64
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}
