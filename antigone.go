// Package antigone provides a library for reading a line-addressed text
// together with its lemmatisation and dictionary definitions.
//
// Basic usage:
//
//	client, err := antigone.New(
//	    antigone.WithSQLite(".antigone/antigone.db"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	// Read lines 1-11
//	lines, err := client.Reader.Lines(ctx, 1, 11)
//
//	// Look up a word as it appears in the text
//	entries, err := client.Lexicon.Lookup(ctx, "κάρα")
//
//	// Search definitions
//	results, err := client.Search.Search(ctx, "definition", "head")
package antigone

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/helixml/antigone/application/service"
	"github.com/helixml/antigone/domain/passage"
	"github.com/helixml/antigone/infrastructure/corpus"
	"github.com/helixml/antigone/infrastructure/persistence"
	"github.com/helixml/antigone/internal/database"
)

// Client errors.
var (
	// ErrNoDatabase indicates no database option was given.
	ErrNoDatabase = errors.New("antigone: no database configured")

	// ErrClientClosed indicates the client has been closed.
	ErrClientClosed = service.ErrClientClosed

	// ErrCorpusEmpty indicates no lines have been imported.
	ErrCorpusEmpty = errors.New("antigone: no lines imported")

	// ErrCorpusTruncated indicates stored lines beyond the configured total.
	ErrCorpusTruncated = errors.New("antigone: stored lines exceed total lines")
)

// Client is the main entry point for the antigone library.
//
// Access services via struct fields:
//
//	client.Reader.Page(ctx, 1)
//	client.Lexicon.Lookup(ctx, "Ζεὺς")
//	client.Search.Search(ctx, "word", "Ζεὺς")
type Client struct {
	Reader  *service.Reader
	Lexicon *service.Lexicon
	Search  *service.Search

	db     database.Database
	lines  persistence.LineStore
	nav    passage.Navigator
	logger *slog.Logger
	closed atomic.Bool
	mu     sync.Mutex
}

// New creates a new Client with the given options.
func New(opts ...Option) (*Client, error) {
	cfg := newClientConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.database == databaseUnset {
		return nil, ErrNoDatabase
	}

	logger := cfg.logger
	if logger == nil {
		logger = slog.Default()
	}

	dbURL, err := buildDatabaseURL(cfg)
	if err != nil {
		return nil, fmt.Errorf("build database url: %w", err)
	}

	ctx := context.Background()
	db, err := database.NewDatabase(ctx, dbURL, database.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if cfg.migrate {
		if err := persistence.AutoMigrate(db); err != nil {
			errClose := db.Close()
			return nil, errors.Join(err, errClose)
		}
	}

	nav := cfg.navigator()
	lineStore := persistence.NewLineStore(db)
	lexiconStore := persistence.NewLexiconStore(db)

	client := &Client{
		Reader:  service.NewReader(lineStore, nav, logger),
		Lexicon: service.NewLexicon(lexiconStore, logger),
		Search:  service.NewSearch(lexiconStore, logger),
		db:      db,
		lines:   lineStore,
		nav:     nav,
		logger:  logger,
	}

	logger.Debug("antigone client ready", slog.Int("total_lines", nav.TotalLines()))
	return client, nil
}

// Navigator returns the navigator for the configured text length.
func (c *Client) Navigator() passage.Navigator {
	return c.nav
}

// CheckCorpus compares the stored text with the configured line count.
// It returns ErrCorpusEmpty when nothing has been imported and
// ErrCorpusTruncated when stored lines lie past the last addressable line.
func (c *Client) CheckCorpus(ctx context.Context) error {
	if c.closed.Load() {
		return ErrClientClosed
	}
	last, err := c.lines.LastLine(ctx)
	if err != nil {
		return fmt.Errorf("inspect corpus: %w", err)
	}
	switch {
	case last == 0:
		return ErrCorpusEmpty
	case last > c.nav.TotalLines():
		return fmt.Errorf("%w: last stored line %d, total lines %d", ErrCorpusTruncated, last, c.nav.TotalLines())
	}
	return nil
}

// Import replaces the corpus with the contents of the given CSV exports.
func (c *Client) Import(ctx context.Context, src corpus.Source, opts ...corpus.ImporterOption) (corpus.Stats, error) {
	if c.closed.Load() {
		return corpus.Stats{}, ErrClientClosed
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	opts = append([]corpus.ImporterOption{corpus.WithLogger(c.logger)}, opts...)
	return corpus.NewImporter(c.db, opts...).Import(ctx, src)
}

// Close releases the database. Closing twice returns ErrClientClosed.
func (c *Client) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return ErrClientClosed
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.db.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}

	c.logger.Info("antigone client closed")
	return nil
}

// Logger returns the client's logger.
func (c *Client) Logger() *slog.Logger {
	return c.logger
}
