package respond

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/mikey/email-triage/internal/core"
	"github.com/mikey/email-triage/internal/utils"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

const (
	// MaxTags caps the tag list of a result
	MaxTags = 10

	maxTechTags      = 4
	summaryBudget    = 100
	fallbackBudget   = 80
	minKeywordLength = 4
	longWordCount    = 200
	shortWordCount   = 50
)

var (
	sentenceEnd = regexp.MustCompile(`[.!?]+\s+`)
	whitespace  = regexp.MustCompile(`\s+`)
)

// categoryTags are appended right after the category tag
var categoryTags = map[core.Category][]string{
	core.Phishing:     {"seguranca", "suspeito"},
	core.Curriculo:    {"profissional"},
	core.Financeiro:   {"documento_financeiro"},
	core.Importante:   {"prioridade"},
	core.Educacional:  {"institucional"},
	core.Profissional: {"comercial"},
	core.Spam:         {"promocional"},
}

// TechDetector finds technology names in text
type TechDetector interface {
	TechStack(raw string) []string
}

// Generator builds the summary, tags and reply of an analysis
type Generator struct {
	tech          TechDetector
	textProcessor *utils.TextProcessor
	logger        *zap.Logger
}

// NewGenerator creates a generator. tech may be nil, CURRICULO tags then carry no technologies.
func NewGenerator(tech TechDetector, textProcessor *utils.TextProcessor, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	if textProcessor == nil {
		textProcessor = utils.NewTextProcessor(logger)
	}
	return &Generator{tech: tech, textProcessor: textProcessor, logger: logger}
}

// Summarize builds an extractive summary from the leading sentences. The remote path
// accepts shorter sentences and keeps one more of them.
func (g *Generator) Summarize(text string, remote bool) string {
	text = strings.TrimSpace(whitespace.ReplaceAllString(text, " "))
	if text == "" {
		return ""
	}

	minWords, count := 4, 2
	if remote {
		minWords, count = 3, 3
	}

	var lead []string
	for _, sentence := range sentenceEnd.Split(text, -1) {
		sentence = strings.TrimRight(strings.TrimSpace(sentence), ".!?")
		if len(strings.Fields(sentence)) < minWords {
			continue
		}
		lead = append(lead, sentence)
		if len(lead) == count {
			break
		}
	}

	if len(lead) == 0 {
		return g.textProcessor.Ellipsize(text, fallbackBudget)
	}
	return g.textProcessor.Ellipsize(strings.Join(lead, ". ")+".", summaryBudget)
}

// Tags builds the ordered tag set: category tags first, then keywords, then metadata tags
func (g *Generator) Tags(raw string, category core.Category, meta core.EmailMetadata, keywords []string) []string {
	tags := []string{category.Tag()}

	if category == core.Curriculo && g.tech != nil {
		tags = append(tags, lo.Slice(g.tech.TechStack(raw), 0, maxTechTags)...)
	}
	tags = append(tags, categoryTags[category]...)

	tags = append(tags, lo.Filter(keywords, func(k string, _ int) bool {
		return utf8.RuneCountInString(k) >= minKeywordLength
	})...)

	if meta.HasAttachments {
		tags = append(tags, "com_anexo")
	}
	if meta.HasLinks {
		tags = append(tags, "com_links")
	}
	switch {
	case meta.WordCount > longWordCount:
		tags = append(tags, "longo")
	case meta.WordCount < shortWordCount:
		tags = append(tags, "curto")
	}

	tags = lo.Uniq(lo.Compact(tags))
	if len(tags) > MaxTags {
		tags = tags[:MaxTags]
	}
	return tags
}
