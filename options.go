package antigone

import (
	"log/slog"

	"github.com/helixml/antigone/domain/passage"
	"github.com/helixml/antigone/internal/config"
)

// databaseType identifies the database.
type databaseType int

const (
	databaseUnset databaseType = iota
	databaseSQLite
	databasePostgres
	databaseURL
)

// clientConfig holds configuration for Client construction.
type clientConfig struct {
	database   databaseType
	dbPath     string
	dbDSN      string
	totalLines int
	logger     *slog.Logger
	migrate    bool
}

// newClientConfig creates a clientConfig with defaults from internal/config.
func newClientConfig() *clientConfig {
	return &clientConfig{
		totalLines: config.DefaultTotalLines,
		migrate:    true,
	}
}

// Option configures the Client.
type Option func(*clientConfig)

// WithSQLite configures a SQLite database file. ":memory:" opens an
// in-memory database.
func WithSQLite(path string) Option {
	return func(c *clientConfig) {
		c.database = databaseSQLite
		c.dbPath = path
	}
}

// WithPostgres configures PostgreSQL using a postgres:// DSN.
func WithPostgres(dsn string) Option {
	return func(c *clientConfig) {
		c.database = databasePostgres
		c.dbDSN = dsn
	}
}

// WithDatabaseURL configures the database from a URL in either the
// sqlite:/// or postgres:// form, as found in DB_URL.
func WithDatabaseURL(url string) Option {
	return func(c *clientConfig) {
		c.database = databaseURL
		c.dbDSN = url
	}
}

// WithTotalLines sets the number of lines in the text.
// Defaults to 1353 if not specified.
func WithTotalLines(n int) Option {
	return func(c *clientConfig) {
		if n > 0 {
			c.totalLines = n
		}
	}
}

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = l
	}
}

// WithoutMigration opens the database without creating or altering tables.
func WithoutMigration() Option {
	return func(c *clientConfig) {
		c.migrate = false
	}
}

// buildDatabaseURL constructs the database URL from configuration.
func buildDatabaseURL(cfg *clientConfig) (string, error) {
	switch cfg.database {
	case databaseSQLite:
		return "sqlite:///" + cfg.dbPath, nil
	case databasePostgres, databaseURL:
		return cfg.dbDSN, nil
	default:
		return "", ErrNoDatabase
	}
}

func (c *clientConfig) navigator() passage.Navigator {
	return passage.NewNavigator(c.totalLines)
}
