// Package persistence provides database storage implementations.
package persistence

import (
	"fmt"

	"github.com/helixml/antigone/internal/database"
)

// AutoMigrate runs GORM auto migration for all models.
func AutoMigrate(db database.Database) error {
	if err := db.GORM().AutoMigrate(
		&LineModel{},
		&LemmaModel{},
		&DefinitionModel{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// Tables returns the managed table names in dependency order: lines first,
// then the lemma rows that reference them, then definitions.
func Tables() []string {
	return []string{
		LineModel{}.TableName(),
		LemmaModel{}.TableName(),
		DefinitionModel{}.TableName(),
	}
}
