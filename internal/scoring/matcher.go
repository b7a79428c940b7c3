package scoring

import (
	"sort"
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
	"github.com/mikey/email-triage/internal/text"
)

// keywordRef points at one keyword of one keyword group
type keywordRef struct {
	group   int
	keyword int
}

// keywordIndex finds the keywords of several groups in a single pass over the text
type keywordIndex struct {
	machine *goahocorasick.Machine
	groups  [][]Keyword
	refs    map[string][]keywordRef
}

// newKeywordIndex builds an Aho-Corasick automaton over the folded terms of every group
func newKeywordIndex(groups [][]Keyword) (*keywordIndex, error) {
	idx := &keywordIndex{
		groups: groups,
		refs:   make(map[string][]keywordRef),
	}

	for g, keywords := range groups {
		for k, keyword := range keywords {
			term := text.Fold(keyword.Term)
			if term == "" || idx.has(term, g) {
				continue
			}
			idx.refs[term] = append(idx.refs[term], keywordRef{group: g, keyword: k})
		}
	}
	if len(idx.refs) == 0 {
		return idx, nil
	}

	terms := make([]string, 0, len(idx.refs))
	for term := range idx.refs {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	patterns := make([][]rune, len(terms))
	for i, term := range terms {
		patterns[i] = []rune(term)
	}

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, err
	}
	idx.machine = m
	return idx, nil
}

func (idx *keywordIndex) has(term string, group int) bool {
	for _, ref := range idx.refs[term] {
		if ref.group == group {
			return true
		}
	}
	return false
}

// search returns, per group, the indexes of the keywords found in folded text
func (idx *keywordIndex) search(folded []rune) []map[int]struct{} {
	found := make([]map[int]struct{}, len(idx.groups))
	for i := range found {
		found[i] = make(map[int]struct{})
	}
	if idx.machine == nil || len(folded) == 0 {
		return found
	}

	for _, term := range idx.machine.MultiPatternSearch(folded, false) {
		start := term.Pos
		end := start + len(term.Word)
		if start < 0 || end > len(folded) {
			continue
		}
		for _, ref := range idx.refs[string(term.Word)] {
			keyword := idx.groups[ref.group][ref.keyword]
			if !bounded(folded, start, end, keyword.Bound) {
				continue
			}
			found[ref.group][ref.keyword] = struct{}{}
		}
	}
	return found
}

func bounded(s []rune, start, end int, bound Bound) bool {
	switch bound {
	case WordStart:
		return start == 0 || !isWordRune(s[start-1])
	case WholeWord:
		return (start == 0 || !isWordRune(s[start-1])) && (end == len(s) || !isWordRune(s[end]))
	default:
		return true
	}
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
