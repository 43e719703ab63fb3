// Package insight renders a concept graph and its metrics into short
// natural-language findings for the dashboard.
package insight

import (
	"fmt"
	"strings"

	"github.com/cognicore/econgraph/pkg/econet/graph"
	"github.com/cognicore/econgraph/pkg/econet/metrics"
	"github.com/cognicore/econgraph/pkg/econet/taxonomy"
)

const fallbackInsight = "네트워크 분석 중 오류가 발생했습니다."

// Sentiment cutoffs for calling a concept positive or negative.
const (
	positiveCutoff = 0.1
	negativeCutoff = -0.1
)

// Generate returns the ordered findings for a built graph. It never
// panics: any internal failure collapses to a single generic message.
func Generate(g *graph.Graph, m metrics.Metrics) (insights []string) {
	defer func() {
		if r := recover(); r != nil {
			insights = []string{fallbackInsight}
		}
	}()

	if g == nil || g.Order() == 0 {
		return []string{"분석할 수 있는 경제 개념이 발견되지 않았습니다."}
	}

	insights = append(insights, fmt.Sprintf(
		"📊 총 %d개의 경제 개념과 %d개의 관계를 발견했습니다.", g.Order(), g.Size()))

	if names := topConceptNames(m.TopByDegree, 3); len(names) > 0 {
		insights = append(insights, fmt.Sprintf(
			"🎯 가장 중요한 경제 개념: %s", strings.Join(names, ", ")))
	}

	switch {
	case m.Density >= 0.3:
		insights = append(insights, "🔗 경제 개념들 간의 연결이 매우 밀접합니다.")
	case m.Density >= 0.1:
		insights = append(insights, "🔗 경제 개념들 간의 연결이 적당합니다.")
	default:
		insights = append(insights, "🔗 경제 개념들 간의 연결이 느슨합니다.")
	}

	var positive, negative []string
	for _, node := range g.Nodes() {
		switch {
		case node.AvgSentiment > positiveCutoff:
			positive = append(positive, taxonomy.DisplayName(node.ID))
		case node.AvgSentiment < negativeCutoff:
			negative = append(negative, taxonomy.DisplayName(node.ID))
		}
	}
	if len(positive) > 0 {
		insights = append(insights, fmt.Sprintf(
			"😊 긍정적 언급: %s", strings.Join(head(positive, 3), ", ")))
	}
	if len(negative) > 0 {
		insights = append(insights, fmt.Sprintf(
			"😟 부정적 언급: %s", strings.Join(head(negative, 3), ", ")))
	}

	var strong []string
	for _, e := range g.Edges() {
		if e.Weight > 0.7 {
			strong = append(strong, fmt.Sprintf("%s ↔ %s",
				taxonomy.DisplayName(e.Source), taxonomy.DisplayName(e.Target)))
		}
	}
	if len(strong) > 0 {
		insights = append(insights, fmt.Sprintf(
			"🔥 강한 연관성: %s", strings.Join(head(strong, 2), ", ")))
	}

	return insights
}

func topConceptNames(ranked []metrics.Ranked, limit int) []string {
	names := make([]string, 0, limit)
	for _, r := range ranked {
		if len(names) == limit {
			break
		}
		names = append(names, taxonomy.DisplayName(r.ID))
	}
	return names
}

func head(ss []string, limit int) []string {
	if len(ss) > limit {
		return ss[:limit]
	}
	return ss
}
