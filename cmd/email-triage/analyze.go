package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mikey/email-triage/internal/adapters/cli"
	"github.com/mikey/email-triage/internal/adapters/extract"
	"github.com/mikey/email-triage/internal/core"
	"github.com/mikey/email-triage/internal/di"
	"github.com/mikey/email-triage/internal/triage"
)

type analyzeOptions struct {
	text    string
	file    string
	output  string
	noColor bool
	timeout time.Duration
	flags   di.CLIFlags
}

func analyzeCmd() *cobra.Command {
	var opts analyzeOptions

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze one message and print the result",
		Long: `Analyze a message given with --text, a .txt/.pdf/.eml file given with --file,
or both. Without either, the message body is read from stdin.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.flags.ConfigFile = cfgFile
			return runAnalyze(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.text, "text", "t", "", "message body")
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "attachment or message file (.txt, .pdf, .eml)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "table", "output format (table, json, yaml)")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "disable colored priority")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 2*time.Minute, "overall analysis deadline")
	cmd.Flags().BoolVar(&opts.flags.Demo, "demo", false, "skip the remote classifier")
	cmd.Flags().BoolVarP(&opts.flags.Verbose, "verbose", "v", false, "enable verbose logging")
	cmd.Flags().BoolVar(&opts.flags.JSONLog, "json-log", false, "output logs in JSON format")

	return cmd
}

func runAnalyze(ctx context.Context, stdin io.Reader, stdout io.Writer, opts *analyzeOptions) error {
	format, err := cli.ParseFormat(opts.output)
	if err != nil {
		return err
	}

	container, err := di.BuildCLIContainer(&opts.flags)
	if err != nil {
		return fmt.Errorf("failed to build dependency container: %w", err)
	}

	return container.Invoke(func(logger *zap.Logger, service *triage.Service, extractor *extract.Extractor) error {
		defer logger.Sync()

		doc, err := readInput(stdin, extractor, opts)
		if err != nil {
			return err
		}

		if ctx == nil {
			ctx = context.Background()
		}
		ctx, cancel := context.WithTimeout(ctx, opts.timeout)
		defer cancel()

		result, err := service.Analyze(ctx, doc)
		if err != nil {
			return err
		}
		return cli.NewPrinter(stdout, format, format == cli.FormatTable && !opts.noColor).Print(result)
	})
}

// readInput merges the --text body with whatever the file yields
func readInput(stdin io.Reader, extractor *extract.Extractor, opts *analyzeOptions) (core.RawDocument, error) {
	var doc core.RawDocument

	if opts.file != "" {
		f, err := os.Open(opts.file)
		if err != nil {
			return doc, fmt.Errorf("failed to open %s: %w", opts.file, err)
		}
		defer f.Close()

		doc, err = extractor.Extract(filepath.Base(opts.file), f)
		if err != nil {
			return doc, err
		}
	}

	body := opts.text
	if body == "" && opts.file == "" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return doc, fmt.Errorf("failed to read stdin: %w", err)
		}
		body = string(data)
	}
	if body = strings.TrimSpace(body); body != "" {
		if doc.Body != "" {
			body = body + "\n\n" + doc.Body
		}
		doc.Body = body
	}

	return doc, nil
}
