package factory

import (
	"github.com/mikey/email-triage/internal/adapters/extract"
	"github.com/mikey/email-triage/internal/adapters/httpapi"
	"github.com/mikey/email-triage/internal/config"
	"github.com/mikey/email-triage/internal/ports"
	"go.uber.org/zap"
)

// FrontendFactory creates the intake frontend
type FrontendFactory struct {
	cfg      *config.Config
	logger   *zap.Logger
	analyzer httpapi.Analyzer
}

// NewFrontendFactory creates a new frontend factory
func NewFrontendFactory(cfg *config.Config, logger *zap.Logger, analyzer httpapi.Analyzer) *FrontendFactory {
	return &FrontendFactory{
		cfg:      cfg,
		logger:   logger,
		analyzer: analyzer,
	}
}

// CreateFrontend creates the HTTP intake
func (f *FrontendFactory) CreateFrontend() (ports.Frontend, error) {
	serverCfg, err := f.cfg.GetServer()
	if err != nil {
		return nil, err
	}
	extractor := extract.NewExtractor(serverCfg.MaxUploadBytes, "", f.logger)
	return httpapi.NewServer(f.analyzer, extractor, serverCfg, f.logger), nil
}
