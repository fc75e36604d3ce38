package main

import (
	"fmt"
	"log/slog"

	"github.com/helixml/antigone"
	"github.com/helixml/antigone/clients/remote"
	"github.com/helixml/antigone/domain/passage"
	"github.com/helixml/antigone/internal/config"
	"github.com/helixml/antigone/internal/session"
)

// clientOptions returns the antigone.Option slice derived from AppConfig.
// Callers append entrypoint-specific options before calling antigone.New.
func clientOptions(cfg config.AppConfig, logger *slog.Logger) []antigone.Option {
	return []antigone.Option{
		antigone.WithDatabaseURL(cfg.DBURL()),
		antigone.WithTotalLines(cfg.TotalLines()),
		antigone.WithLogger(logger),
	}
}

// openLocal ensures the data directory exists and opens the database.
func openLocal(cfg config.AppConfig, logger *slog.Logger, extra ...antigone.Option) (*antigone.Client, error) {
	if err := cfg.EnsureDataDir(); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	client, err := antigone.New(append(clientOptions(cfg, logger), extra...)...)
	if err != nil {
		return nil, fmt.Errorf("create antigone client: %w", err)
	}
	return client, nil
}

// readerBackend is what the line-reading commands run against: the local
// database, or a remote server when one is configured.
type readerBackend struct {
	sources session.Sources
	nav     passage.Navigator
	close   func()
}

func openBackend(cfg config.AppConfig, logger *slog.Logger) (readerBackend, error) {
	nav := passage.NewNavigator(cfg.TotalLines())

	if cfg.IsRemote() {
		c, err := remote.NewClient(cfg.Remote(), remote.WithUserAgent("antigone/"+version))
		if err != nil {
			return readerBackend{}, fmt.Errorf("create remote client: %w", err)
		}
		logger.Info("using remote server", slog.String("url", c.BaseURL()))
		return readerBackend{
			sources: session.Sources{Lines: c, Words: c, Search: c, Speakers: c},
			nav:     nav,
			close:   func() {},
		}, nil
	}

	client, err := openLocal(cfg, logger)
	if err != nil {
		return readerBackend{}, err
	}
	return readerBackend{
		sources: session.Sources{Lines: client.Reader, Words: client.Lexicon, Search: client.Search, Speakers: client.Reader},
		nav:     client.Navigator(),
		close: func() {
			if err := client.Close(); err != nil {
				logger.Error("failed to close antigone client", slog.Any("error", err))
			}
		},
	}, nil
}

// applyRemoteOverride points cfg at serverURL when it is not empty.
func applyRemoteOverride(cfg config.AppConfig, serverURL string) config.AppConfig {
	if serverURL == "" {
		return cfg
	}
	return cfg.Apply(config.WithRemoteConfig(cfg.Remote().WithServerURL(serverURL)))
}
