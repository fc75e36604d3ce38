package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/helixml/antigone/internal/config"
	"github.com/helixml/antigone/internal/log"
	"github.com/helixml/antigone/internal/mcp"
	"github.com/spf13/cobra"
)

func stdioCmd() *cobra.Command {
	var envFile string

	cmd := &cobra.Command{
		Use:   "stdio",
		Short: "Start MCP server on stdio",
		Long: `Start the MCP (Model Context Protocol) server on stdio.

This lets AI assistants read lines, look up words and search definitions.
Configuration is loaded from environment variables and .env file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStdio(envFile)
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", "", "Path to .env file")

	return cmd
}

func runStdio(envFile string) error {
	cfg, err := loadConfig(envFile)
	if err != nil {
		return err
	}

	if err := cfg.EnsureDataDir(); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	// stdout carries the protocol, so logs go to a file.
	logFile, err := os.OpenFile(filepath.Join(cfg.DataDir(), "mcp.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() { _ = logFile.Close() }()

	slogger := log.NewLoggerWithWriter(logFile, config.LogFormatJSON, cfg.LogLevel()).Slog()
	slogger.Info("starting MCP server",
		slog.String("version", version),
		slog.String("data_dir", cfg.DataDir()),
	)

	client, err := openLocal(cfg, slogger)
	if err != nil {
		return err
	}
	defer func() {
		if err := client.Close(); err != nil {
			slogger.Error("failed to close antigone client", slog.Any("error", err))
		}
	}()

	mcpServer := mcp.NewServer(client.Reader, client.Lexicon, client.Search, version, slogger)
	return mcpServer.ServeStdio()
}
