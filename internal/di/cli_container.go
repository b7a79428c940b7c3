package di

import (
	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/mikey/email-triage/internal/adapters/extract"
	"github.com/mikey/email-triage/internal/config"
	"github.com/mikey/email-triage/internal/logging"
)

// CLIFlags contains the command line flags that shape the CLI container
type CLIFlags struct {
	ConfigFile string
	Demo       bool
	Verbose    bool
	JSONLog    bool
}

// BuildCLIContainer creates the container of the one-shot analyzer. Logs go to a
// console logger so they stay out of the printed report.
func BuildCLIContainer(flags *CLIFlags) (*dig.Container, error) {
	container := dig.New()

	// Register flags
	if err := container.Provide(func() *CLIFlags { return flags }); err != nil {
		return nil, err
	}

	// Register logger
	if err := container.Provide(func(flags *CLIFlags) (*zap.Logger, error) {
		return logging.InitConsoleLogger(flags.Verbose, flags.JSONLog)
	}); err != nil {
		return nil, err
	}

	// Register configuration
	if err := container.Provide(func(flags *CLIFlags, logger *zap.Logger) (*config.Config, error) {
		cfg, err := config.New(flags.ConfigFile)
		if err != nil {
			return nil, err
		}
		if flags.ConfigFile != "" {
			logger.Info("Loaded configuration from file", zap.String("file", cfg.GetViper().ConfigFileUsed()))
		}
		if flags.Demo {
			cfg.Set("triage.demo_mode", true)
		}
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		return cfg, nil
	}); err != nil {
		return nil, err
	}

	if err := provideTriage(container); err != nil {
		return nil, err
	}

	// Register file extractor
	if err := container.Provide(func(cfg *config.Config, logger *zap.Logger) (*extract.Extractor, error) {
		serverCfg, err := cfg.GetServer()
		if err != nil {
			return nil, err
		}
		return extract.NewExtractor(serverCfg.MaxUploadBytes, "", logger), nil
	}); err != nil {
		return nil, err
	}

	return container, nil
}
