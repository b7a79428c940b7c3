package triage

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mikey/email-triage/internal/core"
	"github.com/mikey/email-triage/internal/fusion"
	"github.com/mikey/email-triage/internal/respond"
	"github.com/mikey/email-triage/internal/scoring"
	"github.com/mikey/email-triage/internal/text"
	"github.com/mikey/email-triage/internal/utils"
	"go.uber.org/zap"
)

const (
	attachmentMarker = " [ANEXOS] "
	keywordCount     = 5
	errorSummary     = "Erro no processamento"
)

// Options tune the service
type Options struct {
	// Threshold is the utility at or above which a message is useful
	Threshold float64
	// DemoMode skips the remote classifier regardless of credentials
	DemoMode bool
	// MaxContentChars bounds the text sent to the remote classifier
	MaxContentChars int
}

// Service runs a document end to end through normalization, scoring, fusion and generation
type Service struct {
	normalizer    *text.Normalizer
	scorer        *scoring.Scorer
	engine        *fusion.Engine
	remote        core.RemoteClassifier
	generator     *respond.Generator
	textProcessor *utils.TextProcessor
	opts          Options
	logger        *zap.Logger

	now       func() time.Time
	newID     func() string
	reference func(prefix string, digits int) string
}

// NewService creates a triage service. remote may be nil for local-only operation.
func NewService(
	normalizer *text.Normalizer,
	scorer *scoring.Scorer,
	remote core.RemoteClassifier,
	textProcessor *utils.TextProcessor,
	opts Options,
	logger *zap.Logger,
) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if textProcessor == nil {
		textProcessor = utils.NewTextProcessor(logger)
	}
	return &Service{
		normalizer:    normalizer,
		scorer:        scorer,
		engine:        fusion.NewEngine(scorer.Thresholds(), logger),
		remote:        remote,
		generator:     respond.NewGenerator(scorer, textProcessor, logger),
		textProcessor: textProcessor,
		opts:          opts,
		logger:        logger,
		now:           time.Now,
		newID:         uuid.NewString,
		reference:     randomReference,
	}
}

// Analyze classifies a document. The only error is core.ErrEmptyInput; every failure past
// input validation yields the default error result instead.
func (s *Service) Analyze(ctx context.Context, doc core.RawDocument) (result *core.AnalysisResult, err error) {
	body := strings.TrimSpace(doc.Body)
	attachment := strings.TrimSpace(doc.AttachmentText)
	if body == "" && attachment == "" {
		return nil, core.ErrEmptyInput
	}

	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("Analysis failed, returning default result", zap.Any("panic", r))
			result, err = s.errorResult(), nil
		}
	}()

	return s.analyze(ctx, body, attachment), nil
}

// IsUseful determines if a result is worth routing based on the threshold
func (s *Service) IsUseful(result *core.AnalysisResult) bool {
	return result.Source != core.SourceError && result.Utility >= s.opts.Threshold
}

// RemoteAvailable reports whether the remote classifier would be consulted
func (s *Service) RemoteAvailable() bool {
	return !s.opts.DemoMode && s.remote != nil && s.remote.Available()
}

// ClearCache drops the remote classifier cache
func (s *Service) ClearCache() {
	if s.remote != nil {
		s.remote.ClearCache()
	}
}

func (s *Service) analyze(ctx context.Context, body, attachment string) *core.AnalysisResult {
	combined := strings.TrimSpace(body + " " + attachment)

	meta := s.normalizer.Metadata(combined)
	if attachment != "" {
		meta.HasAttachments = true
	}
	local := s.scorer.Score(combined)

	var remote *core.RemoteResult
	if s.RemoteAvailable() {
		remote = s.remote.Classify(ctx, s.remotePayload(body, attachment), scoring.CandidateLabels)
	}

	decision := s.engine.Fuse(local, remote, meta, combined)
	usedRemote := decision.Source == core.SourceRemote

	summary := ""
	if usedRemote {
		if abstract, ok := s.remote.Summarize(ctx, combined); ok {
			summary = s.textProcessor.Ellipsize(abstract, 120)
		}
	}
	if summary == "" {
		summary = s.generator.Summarize(combined, usedRemote)
	}

	prefix := "NLP"
	if usedRemote {
		prefix = "IA"
	}
	reference := s.reference(prefix, 5)
	now := s.now()
	sender := text.ExtractContact(combined)
	keywords := s.normalizer.ExtractKeywords(combined, keywordCount)
	info := decision.Category.Info()

	result := &core.AnalysisResult{
		ID:             s.newID(),
		Category:       decision.Category,
		CategoryName:   info.Name,
		Emoji:          info.Emoji,
		Priority:       info.Priority,
		Department:     info.Department,
		Utility:        decision.Utility,
		Confidence:     decision.Confidence,
		Summary:        summary,
		RequiresAction: info.Action,
		Tags:           s.generator.Tags(combined, decision.Category, meta, keywords),
		Keywords:       keywords,
		Reply:          s.generator.Reply(decision.Category, reference, sender, now),
		Reference:      reference,
		Source:         decision.Source,
		Sender:         sender,
		Metadata:       meta,
		AnalyzedAt:     now,
	}
	result.Useful = s.IsUseful(result)

	fields := []zap.Field{
		zap.String("category", string(result.Category)),
		zap.Float64("utility", result.Utility),
		zap.String("source", string(result.Source)),
		zap.String("reference", result.Reference),
	}
	if remote != nil {
		fields = append(fields, zap.String("model", remote.Model))
	}
	s.logger.Info("Email analyzed", fields...)

	return result
}

// remotePayload is the normalized body, followed by the normalized attachment
func (s *Service) remotePayload(body, attachment string) string {
	payload := strings.Join(s.normalizer.Process(body).Lemmas, " ")
	if attachment != "" {
		payload += attachmentMarker + strings.Join(s.normalizer.Process(attachment).Lemmas, " ")
	}
	payload = strings.TrimSpace(payload)
	if payload == "" {
		payload = strings.TrimSpace(body + " " + attachment)
	}
	return s.textProcessor.Truncate(payload, s.opts.MaxContentChars)
}

func (s *Service) errorResult() *core.AnalysisResult {
	reference := s.reference("ERR", 4)
	now := s.now()
	info := core.Rotina.Info()
	return &core.AnalysisResult{
		ID:           s.newID(),
		Category:     core.Rotina,
		CategoryName: info.Name,
		Emoji:        info.Emoji,
		Priority:     info.Priority,
		Department:   info.Department,
		Utility:      0.5,
		Confidence:   0.5,
		Summary:      errorSummary,
		Tags:         []string{core.Rotina.Tag()},
		Reply:        s.generator.ErrorReply(reference, now),
		Reference:    reference,
		Source:       core.SourceError,
		AnalyzedAt:   now,
	}
}

// randomReference returns prefix-N with exactly digits digits
func randomReference(prefix string, digits int) string {
	low := 1
	for i := 1; i < digits; i++ {
		low *= 10
	}
	return fmt.Sprintf("%s-%d", prefix, low+rand.IntN(9*low))
}
