package core

import (
	"time"
)

// Category is the closed set of business categories an email can be filed under
type Category string

const (
	Phishing     Category = "PHISHING"
	Curriculo    Category = "CURRICULO"
	Financeiro   Category = "FINANCEIRO"
	Importante   Category = "IMPORTANTE"
	Educacional  Category = "EDUCACIONAL"
	Profissional Category = "PROFISSIONAL"
	Spam         Category = "SPAM"
	Rotina       Category = "ROTINA"
)

// Categories lists every category in priority-tier order
var Categories = []Category{Phishing, Curriculo, Financeiro, Importante, Educacional, Profissional, Spam, Rotina}

// CategoryInfo holds the fixed metadata of a category
type CategoryInfo struct {
	Name       string
	Emoji      string
	Priority   string
	Department string
	BaseWeight float64
	Action     bool
}

var categoryInfo = map[Category]CategoryInfo{
	Phishing:     {Name: "Phishing", Emoji: "🚫", Priority: "CRÍTICA", Department: "Segurança", BaseWeight: 0.05, Action: true},
	Curriculo:    {Name: "Currículo", Emoji: "📄", Priority: "ALTA", Department: "RH", BaseWeight: 0.92, Action: true},
	Financeiro:   {Name: "Financeiro", Emoji: "💰", Priority: "ALTA", Department: "Financeiro", BaseWeight: 0.88, Action: true},
	Importante:   {Name: "Importante", Emoji: "⭐", Priority: "ALTA", Department: "Diretoria", BaseWeight: 0.85, Action: true},
	Educacional:  {Name: "Educacional", Emoji: "🎓", Priority: "ALTA", Department: "Educação", BaseWeight: 0.82, Action: true},
	Profissional: {Name: "Profissional", Emoji: "💼", Priority: "MÉDIA", Department: "Comercial", BaseWeight: 0.78},
	Spam:         {Name: "Spam", Emoji: "📢", Priority: "BAIXA", Department: "Filtragem", BaseWeight: 0.15},
	Rotina:       {Name: "Rotina", Emoji: "📋", Priority: "BAIXA", Department: "Atendimento", BaseWeight: 0.45},
}

// Info returns the metadata of the category. Unknown values get the ROTINA metadata.
func (c Category) Info() CategoryInfo {
	if info, ok := categoryInfo[c]; ok {
		return info
	}
	return categoryInfo[Rotina]
}

// Valid reports whether c is one of the closed enum values
func (c Category) Valid() bool {
	_, ok := categoryInfo[c]
	return ok
}

// Tag is the lower-case form used in tag lists
func (c Category) Tag() string {
	switch c {
	case Phishing:
		return "phishing"
	case Curriculo:
		return "curriculo"
	case Financeiro:
		return "financeiro"
	case Importante:
		return "importante"
	case Educacional:
		return "educacional"
	case Profissional:
		return "profissional"
	case Spam:
		return "spam"
	default:
		return "rotina"
	}
}

// Source tells which path produced the classification
type Source string

const (
	SourceRemote Source = "remote"
	SourceLocal  Source = "local_heuristic"
	SourceError  Source = "error"
)

// RawDocument is the caller-owned input of an analysis
type RawDocument struct {
	Body           string
	AttachmentText string
}

// NormalizedText is the per-document output of the normalizer
type NormalizedText struct {
	Cleaned    string
	Normalized string
	Tokens     []string
	Lemmas     []string
}

// EmailMetadata holds structural facts about a message
type EmailMetadata struct {
	HasAttachments bool   `json:"has_attachments" yaml:"has_attachments"`
	HasLinks       bool   `json:"has_links" yaml:"has_links"`
	HasDates       bool   `json:"has_dates" yaml:"has_dates"`
	HasNumbers     bool   `json:"has_numbers" yaml:"has_numbers"`
	HasContact     bool   `json:"has_contact" yaml:"has_contact"`
	WordCount      int    `json:"word_count" yaml:"word_count"`
	SentenceCount  int    `json:"sentence_count" yaml:"sentence_count"`
	Language       string `json:"language,omitempty" yaml:"language,omitempty"`
}

// CategoryScore is the result of evaluating one category rule
type CategoryScore struct {
	Category   Category
	Score      float64
	Confidence float64
}

// Prediction is the raw answer of a zero-shot oracle, labels sorted by the oracle
type Prediction struct {
	Labels []string  `json:"labels"`
	Scores []float64 `json:"scores"`
}

// Best returns the highest scoring label
func (p *Prediction) Best() (string, float64, bool) {
	if p == nil || len(p.Labels) == 0 || len(p.Labels) != len(p.Scores) {
		return "", 0, false
	}
	idx := 0
	for i, s := range p.Scores {
		if s > p.Scores[idx] {
			idx = i
		}
	}
	return p.Labels[idx], p.Scores[idx], true
}

// RemoteResult is a confident answer of the remote classifier
type RemoteResult struct {
	Label      string
	Category   Category
	Confidence float64
	Model      string
}

// Contact is the sender information found in the message text
type Contact struct {
	Name  string `json:"name,omitempty" yaml:"name,omitempty"`
	Email string `json:"email,omitempty" yaml:"email,omitempty"`
	Phone string `json:"phone,omitempty" yaml:"phone,omitempty"`
}

// Any reports whether any contact field was found
func (c Contact) Any() bool {
	return c.Name != "" || c.Email != "" || c.Phone != ""
}

// AnalysisResult is the structured record handed back for every document
type AnalysisResult struct {
	ID             string        `json:"id" yaml:"id"`
	Category       Category      `json:"category" yaml:"category"`
	CategoryName   string        `json:"category_name" yaml:"category_name"`
	Emoji          string        `json:"emoji" yaml:"emoji"`
	Priority       string        `json:"priority" yaml:"priority"`
	Department     string        `json:"department" yaml:"department"`
	Utility        float64       `json:"utility" yaml:"utility"`
	Confidence     float64       `json:"confidence" yaml:"confidence"`
	Useful         bool          `json:"is_useful" yaml:"is_useful"`
	Summary        string        `json:"summary" yaml:"summary"`
	RequiresAction bool          `json:"requires_action" yaml:"requires_action"`
	Tags           []string      `json:"tags" yaml:"tags"`
	Keywords       []string      `json:"keywords" yaml:"keywords"`
	Reply          string        `json:"reply_text" yaml:"reply_text"`
	Reference      string        `json:"reference" yaml:"reference"`
	Source         Source        `json:"source" yaml:"source"`
	Sender         Contact       `json:"sender" yaml:"sender"`
	Metadata       EmailMetadata `json:"metadata" yaml:"metadata"`
	AnalyzedAt     time.Time     `json:"analyzed_at" yaml:"analyzed_at"`
}
