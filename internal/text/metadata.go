package text

import (
	"regexp"
	"strings"

	"github.com/abadojack/whatlanggo"
	"github.com/mikey/email-triage/internal/core"
)

// minLanguageConfidence is the detector confidence below which no language is reported
const minLanguageConfidence = 0.5

var (
	attachmentWords = []string{"anexo", "attachment", "attach", "encaminhado", "forward"}
	linkPattern     = regexp.MustCompile(`https?://|www\.`)
	datePatterns    = []*regexp.Regexp{
		regexp.MustCompile(`\d{1,2}/\d{1,2}/\d{2,4}`),
		regexp.MustCompile(`\d{1,2}-\d{1,2}-\d{2,4}`),
		regexp.MustCompile(`(?i)\d{1,2} de \p{L}+ de \d{4}`),
	}
	sentenceSplit = regexp.MustCompile(`[.!?]+`)
)

// Metadata computes structural facts about raw text
func (n *Normalizer) Metadata(s string) core.EmailMetadata {
	if strings.TrimSpace(s) == "" {
		return core.EmailMetadata{}
	}

	folded := Fold(s)
	meta := core.EmailMetadata{
		HasLinks:   linkPattern.MatchString(s),
		HasNumbers: numberPattern.MatchString(s),
		HasContact: ExtractContact(s).Any(),
		WordCount:  len(n.Tokenize(s, false)),
	}

	for _, w := range attachmentWords {
		if strings.Contains(folded, w) {
			meta.HasAttachments = true
			break
		}
	}
	for _, p := range datePatterns {
		if p.MatchString(s) {
			meta.HasDates = true
			break
		}
	}
	for _, sentence := range sentenceSplit.Split(s, -1) {
		if strings.TrimSpace(sentence) != "" {
			meta.SentenceCount++
		}
	}

	info := whatlanggo.Detect(s)
	if info.Confidence >= minLanguageConfidence {
		meta.Language = info.Lang.Iso6391()
	}

	return meta
}
