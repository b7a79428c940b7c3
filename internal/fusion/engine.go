package fusion

import (
	"math"

	"github.com/mikey/email-triage/internal/core"
	"github.com/mikey/email-triage/internal/scoring"
	"go.uber.org/zap"
)

const (
	minUtility = 0.05
	maxUtility = 0.99
)

// Decision is the final category of a document and its utility
type Decision struct {
	Category   core.Category
	Confidence float64
	Utility    float64
	Source     core.Source
	Reasons    []string
}

// Engine reconciles the local scores with the remote answer and applies the override rules
type Engine struct {
	thresholds scoring.Thresholds
	logger     *zap.Logger
}

// NewEngine creates a fusion engine with the given override thresholds
func NewEngine(th scoring.Thresholds, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{thresholds: th, logger: logger}
}

// Fuse picks the final category. remote may be nil. raw is the text the local scores were computed on.
func (e *Engine) Fuse(local scoring.Result, remote *core.RemoteResult, meta core.EmailMetadata, raw string) Decision {
	d := Decision{
		Category:   local.Best.Category,
		Confidence: local.Best.Confidence,
		Source:     core.SourceLocal,
	}

	if remote != nil {
		d.Source = core.SourceRemote
		switch {
		case e.localPrevails(local):
			d.Reasons = append(d.Reasons, "local evidence kept over remote "+string(remote.Category))
		case remote.Category != d.Category:
			d.Category = remote.Category
			d.Confidence = remote.Confidence
			d.Reasons = append(d.Reasons, "remote classification adopted")
		default:
			d.Confidence = math.Max(d.Confidence, remote.Confidence)
		}
	}

	weight := e.override(&d, local, meta, raw)
	d.Utility = Utility(weight, d.Confidence)

	e.logger.Debug("Fusion decision",
		zap.String("category", string(d.Category)),
		zap.Float64("confidence", d.Confidence),
		zap.Float64("utility", d.Utility),
		zap.String("source", string(d.Source)),
		zap.Strings("reasons", d.Reasons))

	return d
}

func (e *Engine) localPrevails(local scoring.Result) bool {
	switch local.Best.Category {
	case core.Phishing:
		return true
	case core.Curriculo:
		return local.Score(core.Curriculo) >= e.thresholds.Resume
	}
	return false
}

// override applies the fixed override ladder and returns the category whose base weight
// the utility is computed with
func (e *Engine) override(d *Decision, local scoring.Result, meta core.EmailMetadata, raw string) core.Category {
	if d.Category == core.Phishing {
		return core.Phishing
	}
	if local.Score(core.Phishing) >= e.thresholds.PhishingHeuristic {
		e.reclassify(d, core.Phishing, local, "phishing indicators")
		return core.Phishing
	}

	resume := local.Score(core.Curriculo)
	if d.Category != core.Curriculo {
		strong := resume >= e.thresholds.ResumeOverride
		formal := resume >= e.thresholds.ResumeOverrideWithClosing && meta.HasContact && scoring.HasFormalClosing(raw)
		if strong || formal {
			e.reclassify(d, core.Curriculo, local, "resume terms")
		}
	}

	if local.Score(core.Importante) < e.thresholds.Urgent {
		return d.Category
	}
	switch d.Category {
	case core.Phishing, core.Curriculo, core.Financeiro, core.Importante:
		return d.Category
	case core.Educacional:
		d.Reasons = append(d.Reasons, "urgent institutional message")
		return core.Importante
	default:
		e.reclassify(d, core.Importante, local, "urgency terms")
		return core.Importante
	}
}

func (e *Engine) reclassify(d *Decision, c core.Category, local scoring.Result, reason string) {
	d.Reasons = append(d.Reasons, "override to "+string(c)+": "+reason)
	d.Category = c
	d.Confidence = math.Max(d.Confidence, local.Confidence(c))
}

// Utility blends the base weight of a category with a confidence, clamped to [0.05, 0.99]
// and rounded to two decimals
func Utility(c core.Category, confidence float64) float64 {
	confidence = math.Min(math.Max(confidence, 0), 1)
	u := c.Info().BaseWeight * (0.6 + 0.4*confidence)
	u = math.Min(math.Max(u, minUtility), maxUtility)
	return math.Round(u*100) / 100
}
