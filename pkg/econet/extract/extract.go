// Package extract finds taxonomy concepts in free-form text.
//
// Matching is deliberately substring-based: a term hit anywhere in the
// normalized text counts, even inside a longer word. That over-matches
// occasionally but keeps the scorer simple and language-agnostic.
package extract

import (
	"strings"
	"unicode"

	"golang.org/x/net/html"

	"github.com/cognicore/econgraph/pkg/econet/taxonomy"
)

// Match is the per-category result of scanning one text.
type Match struct {
	CategoryID string
	Score      float64
	Terms      []string
}

// Extractor scans texts against a fixed catalog. Safe for concurrent use;
// the catalog is read-only.
type Extractor struct {
	catalog *taxonomy.Catalog
}

// New creates an extractor over the given catalog.
func New(catalog *taxonomy.Catalog) *Extractor {
	return &Extractor{catalog: catalog}
}

// Extract returns one Match per category that scores above zero, in
// catalog order. A main-term hit adds 2.0*weight, a related-term hit
// 1.0*weight. Empty or whitespace-only input yields no matches; Extract
// never fails.
func (e *Extractor) Extract(text string) []Match {
	normalized := Normalize(text)
	if normalized == "" {
		return nil
	}

	var matches []Match
	for _, cat := range e.catalog.Categories() {
		var score float64
		var terms []string
		seen := make(map[string]struct{})

		for _, term := range cat.MainTerms {
			if containsTerm(normalized, term) {
				score += 2.0 * cat.Weight
				if _, dup := seen[term]; !dup {
					seen[term] = struct{}{}
					terms = append(terms, term)
				}
			}
		}
		for _, term := range cat.RelatedTerms {
			if containsTerm(normalized, term) {
				score += 1.0 * cat.Weight
				if _, dup := seen[term]; !dup {
					seen[term] = struct{}{}
					terms = append(terms, term)
				}
			}
		}

		if score > 0 {
			matches = append(matches, Match{
				CategoryID: cat.ID,
				Score:      score,
				Terms:      terms,
			})
		}
	}

	return matches
}

func containsTerm(normalized, term string) bool {
	return strings.Contains(normalized, normalizeTerm(term))
}

// Normalize strips markup, replaces punctuation with spaces and
// lower-cases the text. Letters (including Hangul) and digits survive.
func Normalize(text string) string {
	text = stripMarkup(text)

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(unicode.ToLower(r))
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		default:
			b.WriteRune(' ')
		}
	}
	return b.String()
}

// normalizeTerm applies the same punctuation folding to a catalog term so
// terms like "S&P 500" or "P/E Ratio" match the normalized text.
func normalizeTerm(term string) string {
	var b strings.Builder
	b.Grow(len(term))
	for _, r := range term {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(' ')
		}
	}
	return b.String()
}

func stripMarkup(s string) string {
	if !strings.ContainsRune(s, '<') {
		return s
	}
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		// Fall back to the raw string if parsing fails
		return s
	}

	var buf strings.Builder
	var extractText func(*html.Node)
	extractText = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extractText(c)
		}
	}
	extractText(doc)

	return buf.String()
}
