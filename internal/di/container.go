package di

import (
	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/mikey/email-triage/internal/classifier"
	"github.com/mikey/email-triage/internal/config"
	"github.com/mikey/email-triage/internal/core"
	"github.com/mikey/email-triage/internal/factory"
	"github.com/mikey/email-triage/internal/logging"
	"github.com/mikey/email-triage/internal/ports"
	"github.com/mikey/email-triage/internal/scoring"
	"github.com/mikey/email-triage/internal/text"
	"github.com/mikey/email-triage/internal/triage"
	"github.com/mikey/email-triage/internal/utils"
)

// BuildContainer creates and configures the dependency injection container of the server
func BuildContainer(configPath string) (*dig.Container, error) {
	container := dig.New()

	// Register configuration
	if err := container.Provide(func() (*config.Config, error) {
		cfg, err := config.New(configPath)
		if err != nil {
			return nil, err
		}
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		return cfg, nil
	}); err != nil {
		return nil, err
	}

	// Register logger
	if err := container.Provide(func(cfg *config.Config) (*zap.Logger, error) {
		return logging.InitLogger(cfg.GetLogging())
	}); err != nil {
		return nil, err
	}

	if err := provideTriage(container); err != nil {
		return nil, err
	}

	// Register frontend
	if err := container.Provide(func(cfg *config.Config, logger *zap.Logger, service *triage.Service) *factory.FrontendFactory {
		return factory.NewFrontendFactory(cfg, logger, service)
	}); err != nil {
		return nil, err
	}
	if err := container.Provide(func(f *factory.FrontendFactory) (ports.Frontend, error) {
		return f.CreateFrontend()
	}); err != nil {
		return nil, err
	}

	return container, nil
}

// provideTriage registers everything between the configuration and the triage service
func provideTriage(container *dig.Container) error {
	// Register factories
	if err := container.Provide(factory.NewTextProcessorFactory); err != nil {
		return err
	}
	if err := container.Provide(factory.NewScorerFactory); err != nil {
		return err
	}
	if err := container.Provide(factory.NewCacheFactory); err != nil {
		return err
	}
	if err := container.Provide(factory.NewClassifierFactory); err != nil {
		return err
	}

	// Register text processing
	if err := container.Provide(func(f *factory.TextProcessorFactory) *utils.TextProcessor {
		return f.CreateTextProcessor()
	}); err != nil {
		return err
	}
	if err := container.Provide(func(f *factory.TextProcessorFactory) *text.Normalizer {
		return f.CreateNormalizer()
	}); err != nil {
		return err
	}

	// Register scorer
	if err := container.Provide(func(f *factory.ScorerFactory) (*scoring.Scorer, error) {
		return f.CreateScorer()
	}); err != nil {
		return err
	}

	// Register response cache
	if err := container.Provide(func(f *factory.CacheFactory) core.ResponseCache {
		return f.CreateResponseCache()
	}); err != nil {
		return err
	}

	// Register classifier backend and the remote classifier around it
	if err := container.Provide(func(f *factory.ClassifierFactory) (core.ClassifierBackend, error) {
		return f.CreateBackend()
	}); err != nil {
		return err
	}
	if err := container.Provide(func(f *factory.ClassifierFactory, backend core.ClassifierBackend, cache core.ResponseCache) (*classifier.Adapter, error) {
		return f.CreateRemoteClassifier(backend, cache)
	}); err != nil {
		return err
	}

	// Register triage service
	if err := container.Provide(func(
		cfg *config.Config,
		logger *zap.Logger,
		normalizer *text.Normalizer,
		scorer *scoring.Scorer,
		remote *classifier.Adapter,
		textProcessor *utils.TextProcessor,
	) *triage.Service {
		triageCfg := cfg.GetTriage()
		return triage.NewService(normalizer, scorer, remote, textProcessor, triage.Options{
			Threshold:       triageCfg.Threshold,
			DemoMode:        triageCfg.DemoMode,
			MaxContentChars: triageCfg.MaxContentChars,
		}, logger)
	}); err != nil {
		return err
	}

	return nil
}
