package config

import (
	"fmt"

	"github.com/cognicore/econgraph/pkg/econet/internalerr"
	"github.com/cognicore/econgraph/pkg/econet/sentiment"
	"github.com/cognicore/econgraph/pkg/econet/taxonomy"
)

// defaultStrength is the keyword scorer magnitude when the config omits it.
const defaultStrength = 0.3

// Loader loads configuration files and constructs engine components.
// Empty paths fall back to the built-in defaults.
type Loader struct {
	TaxonomyPath  string
	SentimentPath string
}

// Components holds the loaded configuration components.
type Components struct {
	Catalog   *taxonomy.Catalog
	Sentiment sentiment.Func
}

// Load reads the configured files and returns initialized components.
func (l *Loader) Load() (*Components, error) {
	comp := &Components{}

	if l.TaxonomyPath != "" {
		tax, err := LoadTaxonomy(l.TaxonomyPath)
		if err != nil {
			return nil, fmt.Errorf("load taxonomy: %w", err)
		}
		categories := make([]taxonomy.Category, len(tax.Categories))
		for i, e := range tax.Categories {
			// A missing weight is a config error, not an implicit 1.0; an
			// explicit out-of-range value is caught by catalog validation.
			if e.Weight == nil {
				return nil, fmt.Errorf("load taxonomy: %w: category %q has no weight", internalerr.ErrInvalidConfig, e.ID)
			}
			categories[i] = taxonomy.Category{
				ID:           e.ID,
				MainTerms:    e.MainTerms,
				RelatedTerms: e.RelatedTerms,
				Weight:       *e.Weight,
			}
		}
		catalog, err := taxonomy.NewCatalog(categories)
		if err != nil {
			return nil, fmt.Errorf("load taxonomy: %w", err)
		}
		comp.Catalog = catalog
	} else {
		comp.Catalog = taxonomy.Default()
	}

	if l.SentimentPath != "" {
		s, err := LoadSentiment(l.SentimentPath)
		if err != nil {
			return nil, fmt.Errorf("load sentiment: %w", err)
		}
		strength := defaultStrength
		if s.Strength != nil {
			strength = *s.Strength
		}
		comp.Sentiment = sentiment.NewKeyword(s.Positive, s.Negative, strength)
	} else {
		comp.Sentiment = sentiment.Keyword
	}

	return comp, nil
}
