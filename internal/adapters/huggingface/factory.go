package huggingface

import (
	"net/http"
	"strings"

	"github.com/mikey/email-triage/internal/config"
	"github.com/mikey/email-triage/internal/core"
	"github.com/mikey/email-triage/internal/utils"
	"go.uber.org/zap"
)

// tokenPrefix is carried by every HuggingFace access token
const tokenPrefix = "hf_"

// Factory creates new instances of HuggingFaceClient
type Factory struct {
	cfg           *config.Config
	logger        *zap.Logger
	textProcessor *utils.TextProcessor
	httpClient    *http.Client
}

// NewFactory creates a new factory for HuggingFaceClient instances
func NewFactory(cfg *config.Config, logger *zap.Logger, textProcessor *utils.TextProcessor) *Factory {
	return &Factory{
		cfg:           cfg,
		logger:        logger,
		textProcessor: textProcessor,
		httpClient:    &http.Client{},
	}
}

// CreateBackend creates a new HuggingFaceClient, nil when the token is missing or malformed
func (f *Factory) CreateBackend() (core.ClassifierBackend, error) {
	hfCfg := f.cfg.GetHuggingFace()
	token := strings.TrimSpace(hfCfg.APIKey)
	if !strings.HasPrefix(token, tokenPrefix) {
		if token == "" {
			f.logger.Warn("HuggingFace token not configured, using local heuristics only")
		} else {
			f.logger.Warn("HuggingFace token does not look valid, using local heuristics only")
		}
		return nil, nil
	}

	f.logger.Info("HuggingFace classifier configured",
		zap.String("base_url", hfCfg.BaseURL),
		zap.String("model", hfCfg.ClassificationModel))

	return NewHuggingFaceClient(
		f.httpClient,
		hfCfg.BaseURL,
		token,
		hfCfg.ClassificationModel,
		hfCfg.SummarizationModel,
		hfCfg.MaxInputChars,
		f.logger,
		f.textProcessor,
	), nil
}
