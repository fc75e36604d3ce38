package database

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Transaction wraps a GORM transaction with commit/rollback semantics.
type Transaction struct {
	tx       *gorm.DB
	finished bool
}

// NewTransaction starts a new database transaction.
func NewTransaction(ctx context.Context, db Database) (*Transaction, error) {
	tx := db.Session(ctx).Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("begin transaction: %w", tx.Error)
	}
	return &Transaction{tx: tx}, nil
}

// Session returns the transaction session for executing queries.
func (t *Transaction) Session() *gorm.DB {
	return t.tx
}

// Commit commits the transaction. Committing a finished transaction is a no-op.
func (t *Transaction) Commit() error {
	if t.finished {
		return nil
	}
	t.finished = true
	if err := t.tx.Commit().Error; err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Rollback rolls back the transaction if not already finished.
func (t *Transaction) Rollback() error {
	if t.finished {
		return nil
	}
	t.finished = true
	if err := t.tx.Rollback().Error; err != nil {
		return fmt.Errorf("rollback transaction: %w", err)
	}
	return nil
}

// WithTransaction executes fn within a transaction, committing on success
// or rolling back on error or panic.
func WithTransaction(ctx context.Context, db Database, fn func(tx *gorm.DB) error) (err error) {
	txn, err := NewTransaction(ctx, db)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = txn.Rollback()
			panic(p)
		}
		if err != nil {
			_ = txn.Rollback()
		}
	}()

	if err = fn(txn.Session()); err != nil {
		return err
	}

	return txn.Commit()
}
