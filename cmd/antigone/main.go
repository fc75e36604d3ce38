// Package main is the entry point for the antigone CLI.
//
//	@title			Antigone API
//	@version		1.0
//	@description	Line-addressed text of Sophocles' Antigone with lemma lookup and lexicon search
//	@BasePath		/AntigoneApp
package main

import (
	"fmt"
	"os"

	"github.com/helixml/antigone/internal/config"
	"github.com/spf13/cobra"
)

// Version information set via ldflags during build.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "antigone",
		Short: "Antigone reader and lexicon server",
		Long: `Antigone serves a line-addressed text together with its lemmatisation
and dictionary definitions, and reads it in the terminal.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(serveCmd())
	cmd.AddCommand(stdioCmd())
	cmd.AddCommand(readCmd())
	cmd.AddCommand(linesCmd())
	cmd.AddCommand(importCmd())
	cmd.AddCommand(versionCmd())

	return cmd
}

// loadConfig loads configuration from .env file and environment variables.
func loadConfig(envFile string) (config.AppConfig, error) {
	cfg, err := config.LoadConfig(envFile)
	if err != nil {
		return config.AppConfig{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
