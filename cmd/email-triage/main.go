package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var cfgFile string

func main() {
	// A missing .env is fine, the environment may already carry HF_TOKEN
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "email-triage",
		Short: "Email triage - categorize messages and draft replies",
		Long: `Email triage classifies Portuguese messages into categories such as
phishing, résumé, finance or spam, rates their usefulness and drafts an
automatic reply. A remote zero-shot classifier refines the local rules
when a credential is configured.`,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default searches ./configs, $HOME/.email-triage and /etc/email-triage)")

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(analyzeCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
