package factory

import (
	"github.com/mikey/email-triage/internal/config"
	"github.com/mikey/email-triage/internal/core"
	"github.com/mikey/email-triage/internal/text"
	"github.com/mikey/email-triage/internal/utils"
	"go.uber.org/zap"
)

// TextProcessorFactory creates text processors and the normalizer
type TextProcessorFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewTextProcessorFactory creates a new TextProcessorFactory
func NewTextProcessorFactory(cfg *config.Config, logger *zap.Logger) *TextProcessorFactory {
	return &TextProcessorFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateTextProcessor creates a new TextProcessor
func (f *TextProcessorFactory) CreateTextProcessor() *utils.TextProcessor {
	return utils.NewTextProcessor(f.logger)
}

// CreateTokenNormalizer picks the dictionary lemmatizer when one loads, the stemmer otherwise
func (f *TextProcessorFactory) CreateTokenNormalizer() core.TokenNormalizer {
	path := f.cfg.GetNLP().LemmaDictionary
	if path == "" {
		return text.NewSnowballStemmer()
	}

	lemmatizer, err := text.LoadLemmaDictionary(path)
	if err != nil {
		f.logger.Warn("Lemma dictionary unavailable, falling back to stemmer",
			zap.String("path", path), zap.Error(err))
		return text.NewSnowballStemmer()
	}
	return lemmatizer
}

// CreateNormalizer creates the text normalizer
func (f *TextProcessorFactory) CreateNormalizer() *text.Normalizer {
	return text.NewNormalizer(f.CreateTokenNormalizer(), f.logger)
}
