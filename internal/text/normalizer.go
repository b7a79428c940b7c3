package text

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/mikey/email-triage/internal/core"
	"go.uber.org/zap"
)

var (
	tagPattern        = regexp.MustCompile(`<[^>]+>`)
	urlPattern        = regexp.MustCompile(`https?://\S+|www\.\S+`)
	emailPattern      = regexp.MustCompile(`\S+@\S+`)
	phonePattern      = regexp.MustCompile(`\(?\d{2,3}\)?[\s-]?\d{4,5}[\s-]?\d{4}`)
	disallowedPattern = regexp.MustCompile(`[^\p{L}\p{N}_\s.,!?;:()\-\[\]{}"']`)
	spacePattern      = regexp.MustCompile(`\s+`)
	numberPattern     = regexp.MustCompile(`\b\d+\b`)
)

// Normalizer turns raw e-mail text into cleaned text, tokens and lemmas
type Normalizer struct {
	stopWords map[string]struct{}
	tokens    core.TokenNormalizer
	logger    *zap.Logger
}

// NewNormalizer creates a normalizer. A nil token strategy falls back to the snowball stemmer.
func NewNormalizer(tokens core.TokenNormalizer, logger *zap.Logger) *Normalizer {
	if tokens == nil {
		tokens = NewSnowballStemmer()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	stop := make(map[string]struct{}, len(portugueseStopWords)+len(emailStopWords))
	for _, w := range portugueseStopWords {
		stop[w] = struct{}{}
	}
	for _, w := range emailStopWords {
		stop[w] = struct{}{}
	}

	logger.Debug("Text normalizer ready",
		zap.String("token_strategy", tokens.Name()),
		zap.Int("stop_words", len(stop)))

	return &Normalizer{stopWords: stop, tokens: tokens, logger: logger}
}

// IsStopWord reports whether the folded word is ignored during tokenization
func (n *Normalizer) IsStopWord(word string) bool {
	_, ok := n.stopWords[Fold(word)]
	return ok
}

// Clean strips markup and replaces URLs, e-mail addresses and phone numbers with placeholders.
// Characters outside letters, digits and basic punctuation become spaces.
func (n *Normalizer) Clean(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}

	if tagPattern.MatchString(s) {
		s = stripHTML(s)
	}
	s = urlPattern.ReplaceAllString(s, "[URL]")
	s = emailPattern.ReplaceAllString(s, "[EMAIL]")
	s = phonePattern.ReplaceAllString(s, "[TELEFONE]")
	s = disallowedPattern.ReplaceAllString(s, " ")
	s = spacePattern.ReplaceAllString(s, " ")

	return strings.TrimSpace(s)
}

// Normalize folds case and accents and drops standalone numbers
func (n *Normalizer) Normalize(s string) string {
	if s == "" {
		return ""
	}
	s = Fold(s)
	s = numberPattern.ReplaceAllString(s, " ")
	return strings.Join(strings.Fields(s), " ")
}

// Tokenize splits text into normalized tokens. With removeStopWords, stop words and
// tokens of two characters or less are dropped.
func (n *Normalizer) Tokenize(s string, removeStopWords bool) []string {
	normalized := n.Normalize(n.Clean(s))
	if normalized == "" {
		return []string{}
	}

	fields := strings.Fields(normalized)
	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		token := strings.TrimFunc(field, unicode.IsPunct)
		if token == "" {
			continue
		}
		if removeStopWords {
			if _, stop := n.stopWords[token]; stop {
				continue
			}
			if len([]rune(token)) <= 2 {
				continue
			}
		}
		tokens = append(tokens, token)
	}
	return tokens
}

// Lemmatize reduces tokens with the configured strategy
func (n *Normalizer) Lemmatize(tokens []string) []string {
	if len(tokens) == 0 {
		return []string{}
	}
	return n.tokens.NormalizeTokens(tokens)
}

// Process runs the whole pipeline on one document
func (n *Normalizer) Process(s string) core.NormalizedText {
	cleaned := n.Clean(s)
	tokens := n.Tokenize(s, true)
	return core.NormalizedText{
		Cleaned:    cleaned,
		Normalized: n.Normalize(cleaned),
		Tokens:     tokens,
		Lemmas:     n.Lemmatize(tokens),
	}
}

// ExtractKeywords returns the topN most frequent alphabetic tokens longer than three
// characters. Ties keep first-occurrence order.
func (n *Normalizer) ExtractKeywords(s string, topN int) []string {
	if topN <= 0 {
		return []string{}
	}

	counts := make(map[string]int)
	var order []string
	for _, token := range n.Tokenize(s, true) {
		if len([]rune(token)) <= 3 || !isAlpha(token) {
			continue
		}
		if counts[token] == 0 {
			order = append(order, token)
		}
		counts[token]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > topN {
		order = order[:topN]
	}
	if order == nil {
		return []string{}
	}
	return order
}

func isAlpha(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return s != ""
}
