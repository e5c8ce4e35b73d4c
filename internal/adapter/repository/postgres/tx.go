package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

type txKey struct{}

// querier is the subset of *sql.DB and *sql.Tx the repositories use
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// WithinTx implements domain.Transactor. A call nested inside another
// WithinTx reuses the outer transaction.
func (db *DB) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return fn(ctx)
	}

	dbTx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer dbTx.Rollback()

	if err := fn(context.WithValue(ctx, txKey{}, dbTx)); err != nil {
		return err
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// conn returns the transaction carried by ctx, or the pool when there is none
func (db *DB) conn(ctx context.Context) querier {
	if dbTx, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return dbTx
	}
	return db.DB
}
