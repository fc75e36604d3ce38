package main

import (
	"fmt"
	"io"

	"github.com/helixml/antigone/domain/text"
	"github.com/helixml/antigone/internal/log"
	"github.com/spf13/cobra"
)

func linesCmd() *cobra.Command {
	var (
		envFile   string
		serverURL string
	)

	cmd := &cobra.Command{
		Use:   "lines <start[-end]>",
		Short: "Print a passage",
		Long: `Print the lines of a passage, such as "12" or "12-15". Out-of-range
numbers are clamped to the text.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(envFile)
			if err != nil {
				return err
			}
			cfg = applyRemoteOverride(cfg, serverURL)

			backend, err := openBackend(cfg, log.Discard().Slog())
			if err != nil {
				return err
			}
			defer backend.close()

			addr := backend.nav.ParseAddress(args[0])
			lines, err := backend.sources.Lines.Lines(cmd.Context(), addr.Start(), addr.End())
			if err != nil {
				return fmt.Errorf("read lines %s: %w", addr, err)
			}
			printLines(cmd.OutOrStdout(), lines)
			return nil
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", "", "Path to .env file")
	cmd.Flags().StringVar(&serverURL, "server", "", "Remote server URL including the base path")

	return cmd
}

// printLines writes one line per row, preceded by the speaker whenever it
// changes.
func printLines(w io.Writer, lines []text.Line) {
	speaker := ""
	for _, l := range lines {
		if l.HasSpeaker() && l.Speaker() != speaker {
			speaker = l.Speaker()
			fmt.Fprintf(w, "%s:\n", speaker)
		}
		if !l.HasText() {
			fmt.Fprintf(w, "%5d  (no text)\n", l.Number())
			continue
		}
		fmt.Fprintf(w, "%5d  %s\n", l.Number(), l.Text())
	}
}
