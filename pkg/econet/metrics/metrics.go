// Package metrics computes structural measures over a built concept graph.
//
// Centrality and path statistics follow the usual normalized definitions:
// degree centrality is degree/(N-1), betweenness is normalized over the
// (N-1)(N-2) source/target pairs, and closeness uses the Wasserman-Faust
// correction so disconnected graphs stay comparable.
package metrics

import (
	"math"
	"sort"

	gograph "gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/network"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/cognicore/econgraph/pkg/econet/graph"
)

// Ranked is one entry of a top-nodes list.
type Ranked struct {
	ID    string  `json:"id"`
	Value float64 `json:"value"`
}

// Centrality holds the per-node centrality maps.
type Centrality struct {
	Degree      map[string]float64 `json:"degree"`
	Betweenness map[string]float64 `json:"betweenness"`
	Closeness   map[string]float64 `json:"closeness"`
}

// Metrics is the full set of structural measures for one graph.
type Metrics struct {
	Density       float64    `json:"density"`
	AvgClustering float64    `json:"avg_clustering"`
	Centrality    Centrality `json:"centrality"`

	TopByDegree      []Ranked `json:"top_by_degree,omitempty"`
	TopByBetweenness []Ranked `json:"top_by_betweenness,omitempty"`

	// Connected-graph measures; zero when the graph is disconnected or
	// too small.
	Connected     bool    `json:"connected"`
	Diameter      float64 `json:"diameter,omitempty"`
	AvgPathLength float64 `json:"avg_path_length,omitempty"`

	// Disconnected-graph measures.
	ConnectedComponents  int `json:"connected_components,omitempty"`
	LargestComponentSize int `json:"largest_component_size,omitempty"`

	// Extended importance rankings and community grouping.
	Communities          [][]string `json:"communities,omitempty"`
	TopByMentions        []Ranked   `json:"top_by_mentions,omitempty"`
	TopBySentimentImpact []Ranked   `json:"top_by_sentiment_impact,omitempty"`
	TopByCombined        []Ranked   `json:"top_by_combined,omitempty"`
}

const topN = 5

// Compute derives all metrics for the given graph. A graph with one node
// or none yields the zero metrics value with empty maps, never NaN.
func Compute(g *graph.Graph) Metrics {
	m := Metrics{
		Centrality: Centrality{
			Degree:      make(map[string]float64),
			Betweenness: make(map[string]float64),
			Closeness:   make(map[string]float64),
		},
	}

	n := g.Order()
	if n <= 1 {
		return m
	}

	nodes := g.Nodes()
	e := g.Size()
	m.Density = 2 * float64(e) / float64(n*(n-1))
	m.AvgClustering = averageClustering(g)

	// Mirror the concept graph into a gonum graph; node ids are catalog
	// positions so every derived ordering stays deterministic.
	sg := simple.NewUndirectedGraph()
	for i := range nodes {
		sg.AddNode(simple.Node(i))
	}
	for _, edge := range g.Edges() {
		sg.SetEdge(simple.Edge{
			F: simple.Node(g.NodeIndex(edge.Source)),
			T: simple.Node(g.NodeIndex(edge.Target)),
		})
	}

	for _, node := range nodes {
		m.Centrality.Degree[node.ID] = float64(g.Degree(node.ID)) / float64(n-1)
	}

	betweenness := network.Betweenness(sg)
	for i, node := range nodes {
		v := betweenness[int64(i)]
		if n > 2 {
			v /= float64((n - 1) * (n - 2))
		}
		m.Centrality.Betweenness[node.ID] = v
	}

	shortest := path.DijkstraAllPaths(sg)
	for i, node := range nodes {
		m.Centrality.Closeness[node.ID] = closeness(&shortest, i, n)
	}

	components := topo.ConnectedComponents(sg)
	m.Connected = len(components) == 1
	if m.Connected {
		m.Diameter, m.AvgPathLength = pathStats(&shortest, n)
	} else {
		m.ConnectedComponents = len(components)
		m.Communities = communityIDs(components, nodes)
		m.LargestComponentSize = len(m.Communities[0])
	}

	m.TopByDegree = topRanked(nodes, m.Centrality.Degree)
	m.TopByBetweenness = topRanked(nodes, m.Centrality.Betweenness)
	m.TopByMentions = topRankedBy(nodes, func(nd graph.Node) float64 { return float64(nd.Mentions) })
	m.TopBySentimentImpact = topRankedBy(nodes, func(nd graph.Node) float64 { return math.Abs(nd.AvgSentiment) })
	m.TopByCombined = topCombined(nodes, m)

	return m
}

// averageClustering is the mean local clustering coefficient. Nodes with
// fewer than two neighbors contribute zero, matching the usual convention.
func averageClustering(g *graph.Graph) float64 {
	nodes := g.Nodes()
	var sum float64
	for _, node := range nodes {
		neighbors := g.Neighbors(node.ID)
		k := len(neighbors)
		if k < 2 {
			continue
		}
		links := 0
		for i := 0; i < k; i++ {
			for j := i + 1; j < k; j++ {
				if contains(g.Neighbors(neighbors[i]), neighbors[j]) {
					links++
				}
			}
		}
		sum += 2 * float64(links) / float64(k*(k-1))
	}
	return sum / float64(len(nodes))
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// closeness implements the Wasserman-Faust corrected closeness: the
// classic (r-1)/Σd scaled by (r-1)/(n-1) where r counts reachable nodes.
func closeness(shortest *path.AllShortest, i, n int) float64 {
	var sum float64
	reachable := 0
	for j := 0; j < n; j++ {
		if j == i {
			continue
		}
		d := shortest.Weight(int64(i), int64(j))
		if math.IsInf(d, 1) {
			continue
		}
		sum += d
		reachable++
	}
	if sum == 0 {
		return 0
	}
	c := float64(reachable) / sum
	return c * float64(reachable) / float64(n-1)
}

func pathStats(shortest *path.AllShortest, n int) (diameter, avgPath float64) {
	var sum float64
	pairs := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := shortest.Weight(int64(i), int64(j))
			if d > diameter {
				diameter = d
			}
			sum += d
			pairs++
		}
	}
	if pairs > 0 {
		avgPath = sum / float64(pairs)
	}
	return diameter, avgPath
}

// communityIDs maps gonum components back to category ids. Components are
// ordered largest first, members in catalog order.
func communityIDs(components [][]gograph.Node, nodes []graph.Node) [][]string {
	out := make([][]string, 0, len(components))
	for _, comp := range components {
		ids := make([]string, 0, len(comp))
		idx := make([]int, 0, len(comp))
		for _, nd := range comp {
			idx = append(idx, int(nd.ID()))
		}
		sort.Ints(idx)
		for _, i := range idx {
			ids = append(ids, nodes[i].ID)
		}
		out = append(out, ids)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return len(out[i]) > len(out[j])
	})
	return out
}

// topRanked sorts by value descending; nodes arrive in catalog order so a
// stable sort keeps ties deterministic.
func topRanked(nodes []graph.Node, values map[string]float64) []Ranked {
	ranked := make([]Ranked, 0, len(nodes))
	for _, node := range nodes {
		ranked = append(ranked, Ranked{ID: node.ID, Value: values[node.ID]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Value > ranked[j].Value
	})
	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}

func topRankedBy(nodes []graph.Node, value func(graph.Node) float64) []Ranked {
	values := make(map[string]float64, len(nodes))
	for _, node := range nodes {
		values[node.ID] = value(node)
	}
	return topRanked(nodes, values)
}

// topCombined blends centrality, mentions and sentiment impact into one
// importance score: 0.3·degree + 0.2·betweenness + 0.3·mentions share +
// 0.2·|sentiment|.
func topCombined(nodes []graph.Node, m Metrics) []Ranked {
	maxMentions := 1.0
	for _, node := range nodes {
		if float64(node.Mentions) > maxMentions {
			maxMentions = float64(node.Mentions)
		}
	}
	values := make(map[string]float64, len(nodes))
	for _, node := range nodes {
		values[node.ID] = 0.3*m.Centrality.Degree[node.ID] +
			0.2*m.Centrality.Betweenness[node.ID] +
			0.3*float64(node.Mentions)/maxMentions +
			0.2*math.Abs(node.AvgSentiment)
	}
	return topRanked(nodes, values)
}
