package corpus

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/helixml/antigone/infrastructure/persistence"
	"github.com/helixml/antigone/internal/database"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// DefaultBatchSize is the number of rows inserted per statement.
const DefaultBatchSize = 200

// Source names the three CSV exports of the corpus.
type Source struct {
	Words       string
	Definitions string
	Lines       string
}

// Stats summarises an import.
type Stats struct {
	Lines        int
	Lemmas       int
	Definitions  int
	SkippedLines int
	Duration     time.Duration
}

// Importer replaces the corpus tables with the contents of a Source.
type Importer struct {
	db        database.Database
	logger    *slog.Logger
	batchSize int
}

// ImporterOption configures an Importer.
type ImporterOption func(*Importer)

// WithBatchSize sets the insert batch size. Non-positive values are ignored.
func WithBatchSize(n int) ImporterOption {
	return func(i *Importer) {
		if n > 0 {
			i.batchSize = n
		}
	}
}

// WithLogger sets the importer logger.
func WithLogger(l *slog.Logger) ImporterOption {
	return func(i *Importer) {
		if l != nil {
			i.logger = l
		}
	}
}

// NewImporter creates a new Importer.
func NewImporter(db database.Database, opts ...ImporterOption) *Importer {
	i := &Importer{
		db:        db,
		logger:    slog.Default(),
		batchSize: DefaultBatchSize,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

type parsed struct {
	lines       []persistence.LineModel
	skipped     int
	lemmas      []persistence.LemmaModel
	definitions []persistence.DefinitionModel
}

// Import parses the three files concurrently and writes them in a single
// transaction. Existing rows are removed first; on any error the database
// is left as it was.
func (i *Importer) Import(ctx context.Context, src Source) (Stats, error) {
	started := time.Now()

	p, err := parse(ctx, src)
	if err != nil {
		return Stats{}, err
	}

	if err := persistence.AutoMigrate(i.db); err != nil {
		return Stats{}, err
	}

	err = database.WithTransaction(ctx, i.db, func(tx *gorm.DB) error {
		for _, table := range persistence.Tables() {
			if err := tx.Exec("DELETE FROM " + table).Error; err != nil {
				return fmt.Errorf("clear %s: %w", table, err)
			}
		}
		if err := insert(tx, p.lines, i.batchSize); err != nil {
			return fmt.Errorf("insert lines: %w", err)
		}
		if err := insert(tx, p.lemmas, i.batchSize); err != nil {
			return fmt.Errorf("insert lemmas: %w", err)
		}
		if err := insert(tx, p.definitions, i.batchSize); err != nil {
			return fmt.Errorf("insert definitions: %w", err)
		}
		return nil
	})
	if err != nil {
		return Stats{}, fmt.Errorf("import corpus: %w", err)
	}

	stats := Stats{
		Lines:        len(p.lines),
		Lemmas:       len(p.lemmas),
		Definitions:  len(p.definitions),
		SkippedLines: p.skipped,
		Duration:     time.Since(started),
	}
	i.logger.Info("corpus imported",
		slog.Int("lines", stats.Lines),
		slog.Int("lemmas", stats.Lemmas),
		slog.Int("definitions", stats.Definitions),
		slog.Int("skipped_lines", stats.SkippedLines),
		slog.Duration("duration", stats.Duration),
	)
	return stats, nil
}

func parse(ctx context.Context, src Source) (parsed, error) {
	var p parsed
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return withFile(ctx, src.Lines, func(f *os.File) error {
			var err error
			p.lines, p.skipped, err = ParseLines(f)
			return err
		})
	})
	g.Go(func() error {
		return withFile(ctx, src.Words, func(f *os.File) error {
			var err error
			p.lemmas, err = ParseLemmas(f)
			return err
		})
	})
	g.Go(func() error {
		return withFile(ctx, src.Definitions, func(f *os.File) error {
			var err error
			p.definitions, err = ParseDefinitions(f)
			return err
		})
	})

	if err := g.Wait(); err != nil {
		return parsed{}, err
	}
	return p, nil
}

func withFile(ctx context.Context, path string, fn func(*os.File) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()
	if err := fn(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func insert[T any](tx *gorm.DB, rows []T, batchSize int) error {
	if len(rows) == 0 {
		return nil
	}
	return tx.CreateInBatches(&rows, batchSize).Error
}
