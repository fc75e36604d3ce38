package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/helixml/antigone/infrastructure/api"
	"github.com/helixml/antigone/internal/config"
	"github.com/helixml/antigone/internal/log"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func serveCmd() *cobra.Command {
	var (
		envFile  string
		host     string
		port     int
		basePath string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Long: `Start the HTTP API server.

Configuration is loaded in the following order (later sources override earlier):
  1. Default values
  2. Env files: --env-file if given, else .env in the current directory
     and ~/.antigone/antigone.env (earlier files win)
  3. Environment variables
  4. Command line flags

Environment variables:
  HOST                         Server host to bind to (default: 0.0.0.0)
  PORT                         Server port to listen on (default: 8080)
  DATA_DIR                     Data directory (default: ~/.antigone)
  DB_URL                       Database URL (default: sqlite:///{data_dir}/antigone.db)
  LOG_LEVEL                    Log level: DEBUG, INFO, WARN, ERROR (default: INFO)
  LOG_FORMAT                   Log format: pretty, json (default: pretty)
  BASE_PATH                    Path prefix of the API (default: /AntigoneApp)
  TOTAL_LINES                  Number of lines in the text (default: 1353)
  CORS_ORIGINS                 Comma-separated allowed origins (default: *)
  MAX_CONCURRENT_REQUESTS      In-flight request limit (default: 64)
  REQUEST_TIMEOUT              Per-request timeout in seconds (default: 30)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), envFile, host, port, basePath, cmd.Flags().Changed("base-path"))
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", "", "Path to .env file (default: .env, then ~/.antigone/antigone.env)")
	cmd.Flags().StringVar(&host, "host", "", "Server host to bind to (default: 0.0.0.0)")
	cmd.Flags().IntVar(&port, "port", 0, "Server port to listen on (default: 8080)")
	cmd.Flags().StringVar(&basePath, "base-path", "", "Path prefix of the API; empty serves at the root")

	return cmd
}

func runServe(ctx context.Context, envFile, host string, port int, basePath string, basePathSet bool) error {
	cfg, err := loadConfig(envFile)
	if err != nil {
		return err
	}

	cfg = applyServeOverrides(cfg, host, port, basePath, basePathSet)

	logger := log.Configure(cfg)
	slogger := logger.Slog()

	attrs := append([]slog.Attr{slog.String("version", version)}, cfg.LogAttrs()...)
	slogger.LogAttrs(context.Background(), slog.LevelInfo, "starting antigone", attrs...)

	client, err := openLocal(cfg, slogger)
	if err != nil {
		return err
	}
	defer func() {
		if err := client.Close(); err != nil {
			slogger.Error("failed to close antigone client", slog.Any("error", err))
		}
	}()

	if err := client.CheckCorpus(ctx); err != nil {
		slogger.Warn("corpus check failed, run antigone import or adjust TOTAL_LINES", slog.Any("error", err))
	}

	apiServer := api.NewAPIServer(client, cfg, version)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- apiServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slogger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := apiServer.Shutdown(shutdownCtx); err != nil {
		slogger.Error("shutdown error", slog.Any("error", err))
	}
	return <-errCh
}

// applyServeOverrides applies command line flag overrides to the config.
func applyServeOverrides(cfg config.AppConfig, host string, port int, basePath string, basePathSet bool) config.AppConfig {
	var opts []config.AppConfigOption

	if host != "" {
		opts = append(opts, config.WithHost(host))
	}
	if port != 0 {
		opts = append(opts, config.WithPort(port))
	}
	if basePathSet {
		opts = append(opts, config.WithBasePath(basePath))
	}

	return cfg.Apply(opts...)
}
