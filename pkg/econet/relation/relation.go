// Package relation labels the association between two concept categories.
package relation

import "github.com/cognicore/econgraph/pkg/econet/corpus"

// Type is a relationship-type label carried on graph edges.
type Type string

const (
	StrongCorrelation   Type = "strong_correlation"
	ModerateCorrelation Type = "moderate_correlation"
	WeakCorrelation     Type = "weak_correlation"
	CausalRelationship  Type = "causal_relationship"
	InverseRelationship Type = "inverse_relationship"
	TemporalRelation    Type = "temporal_relationship"
	MentionedTogether   Type = "mentioned_together"
)

// typeWeights are the display weights per relationship type, used by
// downstream renderers to scale edge emphasis.
var typeWeights = map[Type]float64{
	StrongCorrelation:   1.0,
	ModerateCorrelation: 0.7,
	WeakCorrelation:     0.4,
	CausalRelationship:  0.9,
	InverseRelationship: 0.8,
	TemporalRelation:    0.6,
	MentionedTogether:   0.3,
}

// TypeWeight returns the display weight for a relationship type, or 0 for
// an unknown type.
func TypeWeight(t Type) float64 {
	return typeWeights[t]
}

// knownPairs is the curated table of semantic relationships between
// specific category pairs. Keys are normalized pairs, so a single lookup
// covers both orderings.
var knownPairs = map[corpus.Pair]Type{
	corpus.NewPair("monetary_policy", "inflation"):          CausalRelationship,
	corpus.NewPair("inflation", "stock_market"):             InverseRelationship,
	corpus.NewPair("technology", "stock_market"):            StrongCorrelation,
	corpus.NewPair("geopolitical_risk", "market_sentiment"): CausalRelationship,
	corpus.NewPair("labor_market", "consumer_spending"):     StrongCorrelation,
	corpus.NewPair("government_policy", "market_sentiment"): ModerateCorrelation,
	corpus.NewPair("energy", "inflation"):                   StrongCorrelation,
	corpus.NewPair("real_estate", "monetary_policy"):        StrongCorrelation,
	corpus.NewPair("cryptocurrency", "market_sentiment"):    StrongCorrelation,
	corpus.NewPair("esg", "technology"):                     ModerateCorrelation,
}

// Classify maps a category pair and its accumulated co-occurrence weight
// to a relationship type. Curated pairs win; otherwise weight bands apply
// with strict thresholds, so a boundary value falls to the lower band.
func Classify(a, b string, weight float64) Type {
	if t, ok := knownPairs[corpus.NewPair(a, b)]; ok {
		return t
	}

	switch {
	case weight > 5.0:
		return StrongCorrelation
	case weight > 3.0:
		return ModerateCorrelation
	case weight > 1.0:
		return WeakCorrelation
	default:
		return MentionedTogether
	}
}
