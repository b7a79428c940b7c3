package text

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/blevesearch/snowballstem"
	"github.com/blevesearch/snowballstem/portuguese"
)

// SnowballStemmer reduces tokens with the Portuguese snowball algorithm
type SnowballStemmer struct{}

// NewSnowballStemmer creates the stemmer strategy
func NewSnowballStemmer() *SnowballStemmer {
	return &SnowballStemmer{}
}

// Name identifies the strategy in logs
func (s *SnowballStemmer) Name() string {
	return "snowball-portuguese"
}

// NormalizeTokens stems every token, dropping empty ones
func (s *SnowballStemmer) NormalizeTokens(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if token == "" {
			continue
		}
		env := snowballstem.NewEnv(token)
		portuguese.Stem(env)
		out = append(out, env.Current())
	}
	return out
}

// DictionaryLemmatizer maps inflected forms to lemmas using a lookup table
type DictionaryLemmatizer struct {
	lemmas map[string]string
}

// NewDictionaryLemmatizer creates a lemmatizer over an in-memory table, keys are folded
func NewDictionaryLemmatizer(lemmas map[string]string) *DictionaryLemmatizer {
	folded := make(map[string]string, len(lemmas))
	for form, lemma := range lemmas {
		folded[Fold(form)] = Fold(lemma)
	}
	return &DictionaryLemmatizer{lemmas: folded}
}

// LoadLemmaDictionary reads a "form<TAB>lemma" file, one pair per line, '#' starts a comment
func LoadLemmaDictionary(path string) (*DictionaryLemmatizer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open lemma dictionary: %w", err)
	}
	defer f.Close()

	lemmas := make(map[string]string)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		lemmas[fields[0]] = fields[1]
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read lemma dictionary: %w", err)
	}
	if len(lemmas) == 0 {
		return nil, fmt.Errorf("lemma dictionary %s is empty", path)
	}

	return NewDictionaryLemmatizer(lemmas), nil
}

// Name identifies the strategy in logs
func (l *DictionaryLemmatizer) Name() string {
	return "lemma-dictionary"
}

// NormalizeTokens replaces known forms by their lemma, unknown tokens pass unchanged
func (l *DictionaryLemmatizer) NormalizeTokens(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if token == "" {
			continue
		}
		if lemma, ok := l.lemmas[token]; ok {
			out = append(out, lemma)
			continue
		}
		out = append(out, token)
	}
	return out
}
