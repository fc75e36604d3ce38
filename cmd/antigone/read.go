package main

import (
	"fmt"

	"github.com/helixml/antigone/internal/log"
	"github.com/helixml/antigone/internal/tui"
	"github.com/spf13/cobra"
)

func readCmd() *cobra.Command {
	var (
		envFile   string
		prefsPath string
		serverURL string
		theme     string
	)

	cmd := &cobra.Command{
		Use:   "read [start] [end]",
		Short: "Read the text in the terminal",
		Long: `Open the terminal reader.

The reader uses the local database unless a server is configured, either
with --server, REMOTE_SERVER_URL or server_url in the preferences file.
Preferences are read from ~/.config/antigone/reader.yaml by default.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(envFile)
			if err != nil {
				return err
			}

			prefs, err := tui.LoadPrefs(prefsPath)
			if err != nil {
				return err
			}
			if theme != "" {
				prefs.Theme = theme
			}
			if !cfg.IsRemote() {
				cfg = applyRemoteOverride(cfg, prefs.ServerURL)
			}
			cfg = applyRemoteOverride(cfg, serverURL)

			zlog, closeLog, err := tui.NewFileLogger(prefs.LogLevel, prefs.LogFile)
			if err != nil {
				return fmt.Errorf("open reader log: %w", err)
			}
			defer closeLog()

			// The terminal belongs to the reader; service logs are dropped.
			backend, err := openBackend(cfg, log.Discard().Slog())
			if err != nil {
				return err
			}
			defer backend.close()

			start, end := prefs.Span()
			if len(args) > 0 {
				start, end = args[0], args[0]
			}
			if len(args) > 1 {
				end = args[1]
			}

			zlog.Info().
				Str("theme", prefs.Theme).
				Bool("remote", cfg.IsRemote()).
				Str("start", start).
				Str("end", end).
				Msg("starting reader")

			m := tui.New(backend.sources, backend.nav, tui.ResolveTheme(prefs.Theme),
				tui.WithLogger(zlog),
				tui.WithInitialSpan(start, end),
			)
			if err := tui.Run(cmd.Context(), m); err != nil {
				zlog.Error().Err(err).Msg("reader stopped")
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", "", "Path to .env file")
	cmd.Flags().StringVar(&prefsPath, "prefs", tui.DefaultPrefsPath(), "Path to the preferences file")
	cmd.Flags().StringVar(&serverURL, "server", "", "Remote server URL including the base path")
	cmd.Flags().StringVar(&theme, "theme", "", "Colour theme: light, dark or auto")

	return cmd
}
