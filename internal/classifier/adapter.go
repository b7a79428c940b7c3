package classifier

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/mikey/email-triage/internal/core"
	"github.com/mikey/email-triage/internal/scoring"
	"go.uber.org/zap"
)

// Options tune the remote call policy
type Options struct {
	MaxRetries    int
	RetryBackoff  time.Duration
	MinConfidence float64
	Timeout       time.Duration
}

// DefaultOptions returns the standard policy: two retries 3s apart, 30s per attempt
func DefaultOptions() Options {
	return Options{
		MaxRetries:    2,
		RetryBackoff:  3 * time.Second,
		MinConfidence: 0.5,
		Timeout:       30 * time.Second,
	}
}

// Adapter is the best-effort boundary around a ClassifierBackend. It never returns errors:
// every failure degrades to "no result".
type Adapter struct {
	backend core.ClassifierBackend
	cache   core.ResponseCache
	opts    Options
	logger  *zap.Logger

	mu        sync.Mutex
	available bool

	sleep func(ctx context.Context, d time.Duration) error
}

// NewAdapter creates an adapter. A nil backend means no usable credential was configured
// and the adapter starts unavailable. cache may be nil.
func NewAdapter(backend core.ClassifierBackend, cache core.ResponseCache, opts Options, logger *zap.Logger) *Adapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultOptions().Timeout
	}
	if opts.MaxRetries < 0 {
		opts.MaxRetries = 0
	}
	return &Adapter{
		backend:   backend,
		cache:     cache,
		opts:      opts,
		logger:    logger,
		available: backend != nil,
		sleep:     sleepContext,
	}
}

// Available reports whether remote calls are still attempted
func (a *Adapter) Available() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.available
}

// Classify asks the backend for the best label. It returns nil when the adapter is
// unavailable, the call fails or the answer is below the minimum confidence.
func (a *Adapter) Classify(ctx context.Context, text string, labels []string) *core.RemoteResult {
	if !a.Available() || strings.TrimSpace(text) == "" || len(labels) == 0 {
		return nil
	}

	model := a.backend.Model()
	key := cacheKey(model, text, labels)
	if a.cache != nil {
		if prediction, ok := a.cache.Get(key); ok {
			a.logger.Debug("Classifier cache hit", zap.String("model", model))
			return a.toResult(prediction, model)
		}
	}

	prediction, err := a.classifyWithRetry(ctx, text, labels, model)
	if err != nil {
		return nil
	}

	if a.cache != nil {
		a.cache.Set(key, prediction)
	}
	return a.toResult(prediction, model)
}

func (a *Adapter) classifyWithRetry(ctx context.Context, text string, labels []string, model string) (*core.Prediction, error) {
	for attempt := 0; ; attempt++ {
		attemptCtx, cancel := context.WithTimeout(ctx, a.opts.Timeout)
		prediction, err := a.backend.Classify(attemptCtx, text, labels)
		cancel()

		switch {
		case err == nil:
			return prediction, nil
		case errors.Is(err, core.ErrAuth):
			a.disable(err)
			return nil, err
		case errors.Is(err, core.ErrModelLoading) && attempt < a.opts.MaxRetries:
			a.logger.Info("Remote model is loading, retrying",
				zap.String("model", model),
				zap.Int("attempt", attempt+1),
				zap.Duration("backoff", a.opts.RetryBackoff))
			if sleepErr := a.sleep(ctx, a.opts.RetryBackoff); sleepErr != nil {
				return nil, sleepErr
			}
		default:
			a.logger.Warn("Remote classification failed, using local heuristics",
				zap.String("model", model),
				zap.Int("attempt", attempt+1),
				zap.Error(err))
			return nil, err
		}
	}
}

func (a *Adapter) toResult(prediction *core.Prediction, model string) *core.RemoteResult {
	label, confidence, ok := prediction.Best()
	if !ok {
		a.logger.Warn("Remote classifier returned no labels", zap.String("model", model))
		return nil
	}
	if confidence < a.opts.MinConfidence {
		a.logger.Debug("Remote answer below minimum confidence",
			zap.String("label", label),
			zap.Float64("confidence", confidence))
		return nil
	}
	return &core.RemoteResult{
		Label:      label,
		Category:   scoring.MapLabel(label),
		Confidence: confidence,
		Model:      model,
	}
}

// Summarize asks the backend for an abstractive summary when it supports it
func (a *Adapter) Summarize(ctx context.Context, text string) (string, bool) {
	if !a.Available() || strings.TrimSpace(text) == "" {
		return "", false
	}
	summarizer, ok := a.backend.(core.Summarizer)
	if !ok {
		return "", false
	}

	callCtx, cancel := context.WithTimeout(ctx, a.opts.Timeout)
	defer cancel()

	summary, err := summarizer.Summarize(callCtx, text)
	if err != nil {
		if errors.Is(err, core.ErrAuth) {
			a.disable(err)
		} else {
			a.logger.Warn("Remote summarization failed", zap.Error(err))
		}
		return "", false
	}

	summary = strings.TrimSpace(summary)
	return summary, summary != ""
}

// ClearCache drops every cached prediction
func (a *Adapter) ClearCache() {
	if a.cache != nil {
		a.cache.Clear()
	}
}

func (a *Adapter) disable(err error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.available {
		return
	}
	a.available = false
	a.logger.Warn("Remote classifier credential rejected, disabling remote calls", zap.Error(err))
}

func cacheKey(model, text string, labels []string) string {
	payload, _ := json.Marshal(struct {
		Inputs string   `json:"inputs"`
		Labels []string `json:"candidate_labels"`
	}{text, labels})

	h := sha256.New()
	h.Write([]byte(model))
	h.Write([]byte{0})
	h.Write(payload)
	return hex.EncodeToString(h.Sum(nil))
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
