package factory

import (
	"fmt"

	"github.com/mikey/email-triage/internal/adapters/bedrock"
	"github.com/mikey/email-triage/internal/adapters/gemini"
	"github.com/mikey/email-triage/internal/adapters/huggingface"
	"github.com/mikey/email-triage/internal/adapters/openai"
	"github.com/mikey/email-triage/internal/classifier"
	"github.com/mikey/email-triage/internal/config"
	"github.com/mikey/email-triage/internal/core"
	"github.com/mikey/email-triage/internal/utils"
	"go.uber.org/zap"
)

// ClassifierFactory creates the remote classifier for the configured provider
type ClassifierFactory struct {
	cfg           *config.Config
	logger        *zap.Logger
	textProcessor *utils.TextProcessor
}

// NewClassifierFactory creates a new classifier factory
func NewClassifierFactory(cfg *config.Config, logger *zap.Logger, textProcessor *utils.TextProcessor) *ClassifierFactory {
	return &ClassifierFactory{
		cfg:           cfg,
		logger:        logger,
		textProcessor: textProcessor,
	}
}

// CreateBackend creates the backend of the configured provider. A nil backend without
// error means no usable credential is configured.
func (f *ClassifierFactory) CreateBackend() (core.ClassifierBackend, error) {
	classifierCfg, err := f.cfg.GetClassifier()
	if err != nil {
		return nil, err
	}

	switch classifierCfg.Provider {
	case "huggingface":
		return huggingface.NewFactory(f.cfg, f.logger, f.textProcessor).CreateBackend()
	case "openai":
		return openai.NewFactory(f.cfg, f.logger, f.textProcessor).CreateBackend()
	case "gemini":
		return gemini.NewFactory(f.cfg, f.logger, f.textProcessor).CreateBackend()
	case "bedrock":
		return bedrock.NewFactory(f.cfg, f.logger, f.textProcessor).CreateBackend()
	case "none", "":
		f.logger.Info("Remote classification disabled by configuration")
		return nil, nil
	default:
		return nil, fmt.Errorf("unsupported classifier provider: %s", classifierCfg.Provider)
	}
}

// CreateRemoteClassifier wraps the backend in the retry, cache and availability policy
func (f *ClassifierFactory) CreateRemoteClassifier(backend core.ClassifierBackend, cache core.ResponseCache) (*classifier.Adapter, error) {
	classifierCfg, err := f.cfg.GetClassifier()
	if err != nil {
		return nil, err
	}

	return classifier.NewAdapter(backend, cache, classifier.Options{
		MaxRetries:    classifierCfg.MaxRetries,
		RetryBackoff:  classifierCfg.RetryBackoff,
		MinConfidence: classifierCfg.MinConfidence,
		Timeout:       classifierCfg.Timeout,
	}, f.logger), nil
}
