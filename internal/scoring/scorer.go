package scoring

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mikey/email-triage/internal/core"
	"github.com/mikey/email-triage/internal/domainlist"
	"github.com/mikey/email-triage/internal/text"
	"go.uber.org/zap"
)

// defaultConfidence is the confidence of the ROTINA fallback
const defaultConfidence = 0.5

// Result is the outcome of one scoring pass
type Result struct {
	Best         core.CategoryScore
	Label        string
	Scores       map[core.Category]core.CategoryScore
	Matches      map[core.Category][]string
	PatternScore float64
	ShortCircuit bool
}

// Score returns the raw evidence of a category, zero when it was not evaluated
func (r Result) Score(c core.Category) float64 {
	return r.Scores[c].Score
}

// Confidence returns the confidence of a category, zero when it was not evaluated
func (r Result) Confidence(c core.Category) float64 {
	return r.Scores[c].Confidence
}

// Scorer evaluates the category ladder over raw text
type Scorer struct {
	rules      []Rule
	index      *keywordIndex
	tech       *keywordIndex
	phishing   *PhishingDetector
	thresholds Thresholds
	logger     *zap.Logger
}

// NewScorer creates a scorer with the default ladder
func NewScorer(th Thresholds, blocked *domainlist.Checker, logger *zap.Logger) (*Scorer, error) {
	return NewScorerWithRules(DefaultRules(th), th, NewPhishingDetector(blocked), logger)
}

// NewScorerWithRules creates a scorer over a custom ladder, rules are evaluated in slice order
func NewScorerWithRules(rules []Rule, th Thresholds, detector *PhishingDetector, logger *zap.Logger) (*Scorer, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if detector == nil {
		detector = NewPhishingDetector(nil)
	}

	groups := make([][]Keyword, len(rules))
	for i, rule := range rules {
		groups[i] = rule.Keywords
	}
	index, err := newKeywordIndex(groups)
	if err != nil {
		return nil, fmt.Errorf("failed to build keyword index: %w", err)
	}

	techGroups := make([][]Keyword, len(techAliases))
	for i, alias := range techAliases {
		techGroups[i] = alias.keywords
	}
	tech, err := newKeywordIndex(techGroups)
	if err != nil {
		return nil, fmt.Errorf("failed to build technology index: %w", err)
	}

	return &Scorer{
		rules:      rules,
		index:      index,
		tech:       tech,
		phishing:   detector,
		thresholds: th,
		logger:     logger,
	}, nil
}

// Thresholds returns the trigger levels the scorer was built with
func (s *Scorer) Thresholds() Thresholds {
	return s.thresholds
}

// Score runs the ladder. A phishing signature score at or above the pattern threshold
// short-circuits every other category.
func (s *Scorer) Score(raw string) Result {
	result := Result{
		Best:    core.CategoryScore{Category: core.Rotina, Confidence: defaultConfidence},
		Label:   LabelRotina,
		Scores:  make(map[core.Category]core.CategoryScore),
		Matches: make(map[core.Category][]string),
	}
	if strings.TrimSpace(raw) == "" {
		result.Scores[core.Rotina] = result.Best
		return result
	}

	lower := strings.ToLower(raw)
	folded := text.Fold(raw)

	patternScore, signatures := s.phishing.Score(lower)
	result.PatternScore = patternScore
	if patternScore >= s.thresholds.PhishingPattern {
		result.Best = core.CategoryScore{Category: core.Phishing, Score: patternScore, Confidence: maxConfidence}
		result.Label = LabelPhishing
		result.Scores[core.Phishing] = result.Best
		result.Matches[core.Phishing] = signatures
		result.ShortCircuit = true

		s.logger.Debug("Phishing signature matched",
			zap.Float64("score", patternScore),
			zap.Strings("signatures", signatures))
		return result
	}

	found := s.index.search([]rune(folded))
	decided := false
	for i, rule := range s.rules {
		score, matched := evaluate(rule, found[i], lower, folded)
		cs := core.CategoryScore{Category: rule.Category, Score: score, Confidence: rule.Confidence(score)}
		result.Scores[rule.Category] = cs
		if len(matched) > 0 {
			result.Matches[rule.Category] = matched
		}

		if !decided && rule.Threshold > 0 && score >= rule.Threshold {
			result.Best = cs
			result.Label = rule.Label
			decided = true
		}
	}
	if _, ok := result.Scores[core.Rotina]; !ok {
		result.Scores[core.Rotina] = core.CategoryScore{Category: core.Rotina, Confidence: defaultConfidence}
	}

	s.logger.Debug("Local scoring finished",
		zap.String("category", string(result.Best.Category)),
		zap.Float64("score", result.Best.Score),
		zap.Float64("confidence", result.Best.Confidence))

	return result
}

func evaluate(rule Rule, found map[int]struct{}, lower, folded string) (float64, []string) {
	keys := make([]int, 0, len(found))
	for k := range found {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	var (
		score   float64
		matched []string
	)
	for _, k := range keys {
		keyword := rule.Keywords[k]
		matched = append(matched, keyword.Term)
		if rule.Measure == WeightedPoints {
			score += keyword.Weight
		} else {
			score++
		}
	}

	for _, p := range rule.Patterns {
		if !p.Expr.MatchString(lower) && !p.Expr.MatchString(folded) {
			continue
		}
		matched = append(matched, p.Expr.String())
		if rule.Measure == WeightedPoints {
			score += p.Weight
		} else {
			score++
		}
	}

	return score, matched
}

// TechStack lists the technologies named in the text, in a fixed order
func (s *Scorer) TechStack(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	found := s.tech.search([]rune(text.Fold(raw)))

	var tags []string
	for i, alias := range techAliases {
		if len(found[i]) > 0 {
			tags = append(tags, alias.tag)
		}
	}
	return tags
}
