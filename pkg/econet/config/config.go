// Package config loads taxonomy and sentiment configuration from YAML
// files and assembles the corresponding engine components.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Taxonomy represents the taxonomy configuration. Category order in the
// file is preserved and becomes the canonical catalog order.
type Taxonomy struct {
	Categories []CategoryEntry `yaml:"categories"`
}

// CategoryEntry is one configured category. Weight is a pointer so an
// omitted key is distinguishable from an explicit zero; both are rejected
// at load time, one as missing and one by catalog validation.
type CategoryEntry struct {
	ID           string   `yaml:"id"`
	MainTerms    []string `yaml:"main_terms"`
	RelatedTerms []string `yaml:"related_terms"`
	Weight       *float64 `yaml:"weight"`
}

// LoadTaxonomy loads a taxonomy from a YAML file
func LoadTaxonomy(path string) (*Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var tax Taxonomy
	if err := yaml.Unmarshal(data, &tax); err != nil {
		return nil, err
	}

	return &tax, nil
}

// Sentiment represents the keyword sentiment configuration. A nil
// Strength selects the default; an explicit zero yields a scorer that
// always returns zero.
type Sentiment struct {
	Positive []string `yaml:"positive"`
	Negative []string `yaml:"negative"`
	Strength *float64 `yaml:"strength"`
}

// LoadSentiment loads sentiment word lists from a YAML file
func LoadSentiment(path string) (*Sentiment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var s Sentiment
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}

	return &s, nil
}
