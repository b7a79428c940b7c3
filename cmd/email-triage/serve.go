package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mikey/email-triage/internal/core"
	"github.com/mikey/email-triage/internal/di"
	"github.com/mikey/email-triage/internal/ports"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP intake",
		Long:  "Serve POST /analyze, GET /health, GET /test and DELETE /cache until interrupted.",
		RunE: func(cmd *cobra.Command, args []string) error {
			container, err := di.BuildContainer(cfgFile)
			if err != nil {
				return err
			}
			return container.Invoke(runServe)
		},
	}
}

// runServe gets its dependencies injected by the container
func runServe(
	logger *zap.Logger,
	frontend ports.Frontend,
	backend core.ClassifierBackend,
) error {
	defer logger.Sync()

	if err := frontend.Start(); err != nil {
		logger.Error("Failed to start frontend", zap.Error(err))
		return err
	}

	// Handle graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	<-sigCh
	logger.Info("Shutting down...")

	if err := frontend.Stop(); err != nil {
		logger.Error("Failed to stop frontend", zap.Error(err))
	}

	// Close any resources that need closing
	if closer, ok := backend.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			logger.Error("Failed to close classifier backend", zap.Error(err))
		}
	}

	logger.Info("Shutdown complete")
	return nil
}
