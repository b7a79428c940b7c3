package scoring

import (
	"regexp"

	"github.com/mikey/email-triage/internal/core"
)

// Bound restricts where a keyword may match inside the text
type Bound int

const (
	// Anywhere matches the keyword as a plain substring
	Anywhere Bound = iota
	// WordStart requires a word boundary before the keyword
	WordStart
	// WholeWord requires word boundaries on both sides
	WholeWord
)

// Measure selects how matched evidence is turned into a score
type Measure int

const (
	// DistinctTerms counts every matching keyword once
	DistinctTerms Measure = iota
	// WeightedPoints sums keyword and pattern weights
	WeightedPoints
)

// Keyword is a literal trigger of a rule
type Keyword struct {
	Term   string
	Weight float64
	Bound  Bound
}

// Pattern is a regular expression trigger of a rule
type Pattern struct {
	Expr   *regexp.Regexp
	Weight float64
}

// Rule is one entry of the category ladder
type Rule struct {
	Category  core.Category
	Label     string
	Keywords  []Keyword
	Patterns  []Pattern
	Measure   Measure
	Threshold float64
	Base      float64
	Increment float64
}

// Confidence maps a score to min(0.95, base + score*increment), zero for no evidence
func (r Rule) Confidence(score float64) float64 {
	if score <= 0 {
		return 0
	}
	return capConfidence(r.Base + score*r.Increment)
}

func capConfidence(c float64) float64 {
	if c > maxConfidence {
		return maxConfidence
	}
	return c
}

const maxConfidence = 0.95

func kw(term string) Keyword { return Keyword{Term: term, Weight: 1} }
func word(term string) Keyword { return Keyword{Term: term, Weight: 1, Bound: WholeWord} }
func prefix(term string) Keyword { return Keyword{Term: term, Weight: 1, Bound: WordStart} }
func weighted(term string, w float64) Keyword { return Keyword{Term: term, Weight: w} }
func weightedWord(term string, w float64) Keyword {
	return Keyword{Term: term, Weight: w, Bound: WholeWord}
}

func pattern(expr string, w float64) Pattern {
	return Pattern{Expr: regexp.MustCompile(expr), Weight: w}
}
