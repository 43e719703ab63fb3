// Package econet analyzes batches of economic news and social texts into
// a weighted concept graph with derived metrics and findings.
package econet

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/oklog/ulid/v2"

	"github.com/cognicore/econgraph/pkg/econet/corpus"
	"github.com/cognicore/econgraph/pkg/econet/extract"
	"github.com/cognicore/econgraph/pkg/econet/graph"
	"github.com/cognicore/econgraph/pkg/econet/insight"
	"github.com/cognicore/econgraph/pkg/econet/internalerr"
	"github.com/cognicore/econgraph/pkg/econet/metrics"
	"github.com/cognicore/econgraph/pkg/econet/sentiment"
	"github.com/cognicore/econgraph/pkg/econet/taxonomy"
)

// errNoValidTexts is the stable dashboard-facing message for an empty
// filtered corpus.
const errNoValidTexts = "No valid texts found"

// Engine is the concept-graph analytics engine facade. It holds only
// read-only state, so concurrent Analyze calls need no coordination.
type Engine struct {
	catalog   *taxonomy.Catalog
	extractor *extract.Extractor
	sentiment sentiment.Func
	logger    *log.Logger
}

// Options configures an Engine instance.
type Options struct {
	// Catalog overrides the built-in taxonomy. Nil selects Default().
	Catalog *taxonomy.Catalog

	// Sentiment scores one text in [-1,1]. Nil selects sentiment.Neutral.
	Sentiment sentiment.Func

	// Logger receives per-item skips and analysis summaries. Nil keeps
	// the engine silent.
	Logger *log.Logger
}

// New creates an Engine with the given dependencies.
func New(opts Options) (*Engine, error) {
	catalog := opts.Catalog
	if catalog == nil {
		catalog = taxonomy.Default()
	}
	if catalog.Len() == 0 {
		return nil, fmt.Errorf("%w: catalog has no categories", internalerr.ErrInvalidConfig)
	}

	fn := opts.Sentiment
	if fn == nil {
		fn = sentiment.Neutral
	}

	return &Engine{
		catalog:   catalog,
		extractor: extract.New(catalog),
		sentiment: fn,
		logger:    opts.Logger,
	}, nil
}

// Catalog returns the engine's taxonomy.
func (e *Engine) Catalog() *taxonomy.Catalog { return e.catalog }

// Item is one timestamped input text. The zero timestamp is fine for
// plain batch analysis.
type Item struct {
	Text        string    `json:"text"`
	PublishedAt time.Time `json:"published_at"`
}

// Result is the serializable output of one analysis call. Its shape is
// stable so external renderers can consume it without Go types.
type Result struct {
	ID          string                        `json:"id"`
	GeneratedAt time.Time                     `json:"generated_at"`
	Nodes       []graph.Node                  `json:"nodes"`
	Edges       []graph.Edge                  `json:"edges"`
	Metrics     metrics.Metrics               `json:"metrics"`
	Insights    []string                      `json:"insights"`
	TextCount   int                           `json:"text_count"`
	Trends      map[string]map[string]float64 `json:"trends,omitempty"`
	Error       string                        `json:"error,omitempty"`
}

// Analyze runs the full pipeline over a batch of texts: filter, extract,
// accumulate, build the graph, compute metrics, generate insights.
// An empty filtered corpus yields a Result carrying the error message
// alongside internalerr.ErrNoValidTexts.
func (e *Engine) Analyze(texts []string) (Result, error) {
	items := make([]Item, len(texts))
	for i, t := range texts {
		items[i].Text = t
	}
	return e.analyze(items, false)
}

// AnalyzeItems is Analyze for timestamped items; the result additionally
// carries hourly concept-score trends.
func (e *Engine) AnalyzeItems(items []Item) (Result, error) {
	return e.analyze(items, true)
}

func (e *Engine) analyze(items []Item, withTrends bool) (Result, error) {
	valid := make([]Item, 0, len(items))
	for _, it := range items {
		if corpus.ValidText(it.Text) {
			valid = append(valid, it)
		}
	}
	if len(valid) == 0 {
		if e.logger != nil {
			e.logger.Warn("analysis aborted", "reason", errNoValidTexts, "input", len(items))
		}
		return Result{Error: errNoValidTexts}, internalerr.ErrNoValidTexts
	}

	// Items skipped by a failing sentiment scorer drop out entirely: they
	// are not counted, trended, or accumulated.
	acc := corpus.NewAccumulator(e.catalog)
	processed := valid[:0]
	for i, it := range valid {
		score, ok := e.scoreSentiment(i, it.Text)
		if !ok {
			continue
		}
		acc.Add(it.Text, score)
		processed = append(processed, it)
	}

	g := graph.Build(acc.Snapshot())
	m := metrics.Compute(g)

	res := Result{
		ID:          ulid.Make().String(),
		GeneratedAt: time.Now().UTC(),
		Nodes:       g.Nodes(),
		Edges:       g.Edges(),
		Metrics:     m,
		Insights:    insight.Generate(g, m),
		TextCount:   len(processed),
	}
	if withTrends {
		res.Trends = e.trends(processed)
	}

	if e.logger != nil {
		e.logger.Info("analysis complete",
			"texts", len(processed), "nodes", g.Order(), "edges", g.Size())
	}

	return res, nil
}

// scoreSentiment calls the injected scorer, recovering a panic so one bad
// item never aborts the batch.
func (e *Engine) scoreSentiment(index int, text string) (score float64, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			if e.logger != nil {
				e.logger.Warn("sentiment scorer failed, skipping item", "index", index, "err", r)
			}
			ok = false
		}
	}()
	return sentiment.Clamp(e.sentiment(text)), true
}

// trends buckets items by hour and scores each bucket's combined text,
// giving per-category concept trends over time.
func (e *Engine) trends(items []Item) map[string]map[string]float64 {
	buckets := make(map[string][]string)
	for _, it := range items {
		if it.PublishedAt.IsZero() {
			continue
		}
		hour := it.PublishedAt.UTC().Truncate(time.Hour).Format(time.RFC3339)
		buckets[hour] = append(buckets[hour], it.Text)
	}
	if len(buckets) == 0 {
		return nil
	}

	trends := make(map[string]map[string]float64, len(buckets))
	for hour, texts := range buckets {
		combined := ""
		for _, t := range texts {
			combined += t + " "
		}
		scores := make(map[string]float64)
		for _, m := range e.extractor.Extract(combined) {
			scores[m.CategoryID] = m.Score
		}
		if len(scores) > 0 {
			trends[hour] = scores
		}
	}
	if len(trends) == 0 {
		return nil
	}
	return trends
}
