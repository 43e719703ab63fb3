package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/cognicore/econgraph/internal/feed"
	"github.com/cognicore/econgraph/pkg/econet"
	"github.com/cognicore/econgraph/pkg/econet/config"
)

func main() {
	var (
		input   = flag.String("input", "", "Path to JSONL file (required)")
		taxCfg  = flag.String("taxonomy", "", "Optional: taxonomy YAML, built-in catalog by default")
		sentCfg = flag.String("sentiment", "", "Optional: sentiment word-list YAML")
		trends  = flag.Bool("trends", false, "Include hourly concept trends (needs published_at)")
		quiet   = flag.Bool("quiet", false, "Suppress progress logging")
		pretty  = flag.Bool("pretty", true, "Indent the JSON output")
	)
	flag.Parse()

	if *input == "" {
		fmt.Fprintln(os.Stderr, "--input required")
		flag.Usage()
		os.Exit(2)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})
	if *quiet {
		logger.SetLevel(log.ErrorLevel)
	}

	loader := config.Loader{
		TaxonomyPath:  *taxCfg,
		SentimentPath: *sentCfg,
	}
	components, err := loader.Load()
	if err != nil {
		logger.Fatal("load configs", "err", err)
	}

	engine, err := econet.New(econet.Options{
		Catalog:   components.Catalog,
		Sentiment: components.Sentiment,
		Logger:    logger,
	})
	if err != nil {
		logger.Fatal("create engine", "err", err)
	}

	items, err := feed.LoadFromJSONL(*input)
	if err != nil {
		logger.Fatal("load items", "err", err)
	}
	logger.Info("loaded items", "count", len(items), "path", *input)

	batch := make([]econet.Item, len(items))
	for i, it := range items {
		batch[i] = econet.Item{Text: it.FullText(), PublishedAt: it.PublishedAt}
	}

	var result econet.Result
	if *trends {
		result, err = engine.AnalyzeItems(batch)
	} else {
		texts := make([]string, len(batch))
		for i, it := range batch {
			texts[i] = it.Text
		}
		result, err = engine.Analyze(texts)
	}
	if err != nil {
		logger.Fatal("analyze", "err", err)
	}

	var out []byte
	if *pretty {
		out, err = json.MarshalIndent(result, "", "  ")
	} else {
		out, err = json.Marshal(result)
	}
	if err != nil {
		logger.Fatal("marshal result", "err", err)
	}
	fmt.Println(string(out))
}
