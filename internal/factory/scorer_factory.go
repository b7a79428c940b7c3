package factory

import (
	"github.com/mikey/email-triage/internal/config"
	"github.com/mikey/email-triage/internal/domainlist"
	"github.com/mikey/email-triage/internal/scoring"
	"go.uber.org/zap"
)

// ScorerFactory creates the category scorer
type ScorerFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewScorerFactory creates a new scorer factory
func NewScorerFactory(cfg *config.Config, logger *zap.Logger) *ScorerFactory {
	return &ScorerFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateScorer builds the ladder from the configured thresholds and blocked domains
func (f *ScorerFactory) CreateScorer() (*scoring.Scorer, error) {
	blocked := domainlist.NewChecker(f.cfg.GetBlockedDomains(), f.logger)
	return scoring.NewScorer(f.cfg.GetScoring(), blocked, f.logger)
}
