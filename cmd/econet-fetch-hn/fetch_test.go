package main

import (
	"testing"

	"github.com/cognicore/econgraph/pkg/econet/extract"
	"github.com/cognicore/econgraph/pkg/econet/taxonomy"
)

// TestStripHTML tests HTML tag removal
func TestStripHTML(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "simple paragraph",
			input: "<p>Fed raises rates</p>",
			want:  "Fed raises rates",
		},
		{
			name:  "with attributes",
			input: `<a href="https://example.com">Inflation report</a>`,
			want:  "Inflation report",
		},
		{
			name:  "nested tags",
			input: "<p><strong>CPI</strong> rose <em>again</em></p>",
			want:  "CPI rose again",
		},
		{
			name:  "plain text",
			input: "No HTML here",
			want:  "No HTML here",
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stripHTML(tt.input)
			if got != tt.want {
				t.Errorf("stripHTML(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRelevant(t *testing.T) {
	extractor := extract.New(taxonomy.Default())

	tests := []struct {
		text string
		want bool
	}{
		{"Fed signals another round of quantitative easing", true},
		{"Bitcoin crosses new all-time high", true},
		{"Inflation cools for the third straight month", true},
		{"Show HN: I built a keyboard out of driftwood", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := relevant(extractor, tt.text); got != tt.want {
			t.Errorf("relevant(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}
