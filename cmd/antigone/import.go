package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/helixml/antigone/infrastructure/corpus"
	"github.com/helixml/antigone/internal/log"
	"github.com/spf13/cobra"
)

func importCmd() *cobra.Command {
	var (
		envFile   string
		src       corpus.Source
		batchSize int
	)

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Load the corpus from CSV exports",
		Long: `Replace the stored corpus with the contents of three CSV exports:
the word occurrences, the dictionary definitions and the text lines.
The import runs in one transaction; on failure the database is unchanged.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(envFile)
			if err != nil {
				return err
			}

			slogger := log.Configure(cfg).Slog()

			client, err := openLocal(cfg, slogger)
			if err != nil {
				return err
			}
			defer func() {
				if err := client.Close(); err != nil {
					slogger.Error("failed to close antigone client", slog.Any("error", err))
				}
			}()

			stats, err := client.Import(cmd.Context(), src, corpus.WithBatchSize(batchSize))
			if err != nil {
				return fmt.Errorf("import corpus: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "imported %d lines, %d lemmas, %d definitions in %s\n",
				stats.Lines, stats.Lemmas, stats.Definitions, stats.Duration.Round(time.Millisecond))
			if stats.SkippedLines > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "skipped %d malformed lines\n", stats.SkippedLines)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", "", "Path to .env file")
	cmd.Flags().StringVar(&src.Words, "words", "", "CSV export of word occurrences")
	cmd.Flags().StringVar(&src.Definitions, "definitions", "", "CSV export of dictionary definitions")
	cmd.Flags().StringVar(&src.Lines, "lines", "", "CSV export of the text lines")
	cmd.Flags().IntVar(&batchSize, "batch-size", corpus.DefaultBatchSize, "Rows inserted per statement")
	_ = cmd.MarkFlagRequired("words")
	_ = cmd.MarkFlagRequired("definitions")
	_ = cmd.MarkFlagRequired("lines")

	return cmd
}
