// Package corpus accumulates per-category and pairwise co-occurrence
// statistics across a batch of texts.
package corpus

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/cognicore/econgraph/pkg/econet/extract"
	"github.com/cognicore/econgraph/pkg/econet/taxonomy"
)

// MinTextLength is the minimum trimmed length for a text to enter the
// corpus. Shorter snippets carry too little signal to score.
const MinTextLength = 10

// Pair is an unordered category pair, normalized so A < B. Normalizing at
// construction means one map lookup instead of consulting both orderings.
type Pair struct {
	A string
	B string
}

// NewPair returns the normalized pair for two category ids.
func NewPair(a, b string) Pair {
	if a > b {
		a, b = b, a
	}
	return Pair{A: a, B: b}
}

// CategoryStats holds the accumulated totals for one category.
type CategoryStats struct {
	TotalScore float64
	Mentions   int // incremented once per text, not per matched term
	Terms      []string
	Sentiments []float64
	Weight     float64 // static catalog weight, carried for node attributes
}

// Accumulator folds extraction results text by text. It is scoped to one
// analysis call and is not safe for concurrent use.
type Accumulator struct {
	catalog   *taxonomy.Catalog
	extractor *extract.Extractor
	totals    map[string]*CategoryStats
	termSeen  map[string]map[string]struct{}
	coWeights map[Pair]float64
	texts     int
}

// NewAccumulator creates an empty accumulator over the given catalog.
func NewAccumulator(catalog *taxonomy.Catalog) *Accumulator {
	return &Accumulator{
		catalog:   catalog,
		extractor: extract.New(catalog),
		totals:    make(map[string]*CategoryStats),
		termSeen:  make(map[string]map[string]struct{}),
		coWeights: make(map[Pair]float64),
	}
}

// Add consumes one text and its sentiment score. Matched categories get
// their score and terms folded in and the sentiment appended; every
// unordered pair of categories matched in this text gets
// sqrt(scoreA*scoreB) added to its co-occurrence weight.
func (a *Accumulator) Add(text string, sentiment float64) {
	matches := a.extractor.Extract(text)
	if len(matches) == 0 {
		a.texts++
		return
	}

	for _, m := range matches {
		stats := a.totals[m.CategoryID]
		if stats == nil {
			stats = &CategoryStats{}
			a.totals[m.CategoryID] = stats
			a.termSeen[m.CategoryID] = make(map[string]struct{})
		}
		stats.TotalScore += m.Score
		stats.Mentions++
		stats.Sentiments = append(stats.Sentiments, sentiment)
		for _, term := range m.Terms {
			if _, dup := a.termSeen[m.CategoryID][term]; dup {
				continue
			}
			a.termSeen[m.CategoryID][term] = struct{}{}
			stats.Terms = append(stats.Terms, term)
		}
	}

	// Pairwise co-occurrence within this text; matches arrive in catalog
	// order so pair accumulation order is deterministic.
	for i := 0; i < len(matches); i++ {
		for j := i + 1; j < len(matches); j++ {
			w := math.Sqrt(matches[i].Score * matches[j].Score)
			a.coWeights[NewPair(matches[i].CategoryID, matches[j].CategoryID)] += w
		}
	}

	a.texts++
}

// Stats is a deep-copied snapshot of accumulated state. The graph builder
// consumes Stats, never the live accumulator.
type Stats struct {
	Categories map[string]CategoryStats
	CoWeights  map[Pair]float64
	TextCount  int

	// Order is the catalog insertion order restricted to matched
	// categories, for deterministic downstream iteration.
	Order []string
}

// Snapshot returns a copy of the accumulated statistics.
func (a *Accumulator) Snapshot() Stats {
	s := Stats{
		Categories: make(map[string]CategoryStats, len(a.totals)),
		CoWeights:  make(map[Pair]float64, len(a.coWeights)),
		TextCount:  a.texts,
	}

	for _, cat := range a.catalog.Categories() {
		stats := a.totals[cat.ID]
		if stats == nil {
			continue
		}
		cp := CategoryStats{
			TotalScore: stats.TotalScore,
			Mentions:   stats.Mentions,
			Terms:      append([]string(nil), stats.Terms...),
			Sentiments: append([]float64(nil), stats.Sentiments...),
			Weight:     cat.Weight,
		}
		s.Categories[cat.ID] = cp
		s.Order = append(s.Order, cat.ID)
	}

	for p, w := range a.coWeights {
		s.CoWeights[p] = w
	}

	return s
}

// ValidText reports whether a text passes the corpus inclusion filter:
// more than MinTextLength characters after trimming whitespace.
func ValidText(text string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(text)) > MinTextLength
}
