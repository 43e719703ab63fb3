// Package sentiment defines the injected sentiment-scoring collaborator.
//
// The engine treats sentiment as a black box: any Func returning values
// in [-1, 1] works. Keyword is a dependency-free stub for deployments
// without a real model; Neutral disables sentiment entirely.
package sentiment

import "strings"

// Func scores one text in [-1.0, 1.0].
type Func func(text string) float64

// Neutral always returns zero.
func Neutral(string) float64 { return 0 }

var positiveWords = []string{
	"good", "great", "excellent", "positive", "growth", "profit", "success",
	"opportunity", "optimistic", "recovery", "improvement", "bullish",
}

var negativeWords = []string{
	"bad", "terrible", "negative", "loss", "crash", "decline", "recession",
	"crisis", "worry", "concern", "risk", "problem", "bearish",
}

// Keyword is a coarse keyword-count scorer: +0.3 when positive keywords
// outnumber negative ones, -0.3 when the reverse, 0 on a tie.
var Keyword = NewKeyword(positiveWords, negativeWords, 0.3)

// NewKeyword builds a keyword-count scorer over custom word lists.
// The returned Func yields +strength, -strength or 0 depending on which
// list matches more often. Strength is clamped to [0, 1].
func NewKeyword(positive, negative []string, strength float64) Func {
	strength = Clamp(strength)
	if strength < 0 {
		strength = -strength
	}
	return func(text string) float64 {
		lower := strings.ToLower(text)

		pos := 0
		for _, w := range positive {
			if strings.Contains(lower, strings.ToLower(w)) {
				pos++
			}
		}
		neg := 0
		for _, w := range negative {
			if strings.Contains(lower, strings.ToLower(w)) {
				neg++
			}
		}

		switch {
		case pos > neg:
			return strength
		case neg > pos:
			return -strength
		default:
			return 0
		}
	}
}

// Clamp bounds a score to [-1, 1], protecting the accumulator from a
// misbehaving injected function.
func Clamp(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
