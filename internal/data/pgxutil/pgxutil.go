// Package pgxutil bridges the shared *sql.DB pool to native pgx connections
// and provides scoped transaction helpers with guaranteed rollback.
package pgxutil

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
)

// WithConn acquires a *pgx.Conn from the pool via the stdlib bridge and
// executes fn with it. The underlying sql.Conn is returned to the pool when
// fn completes.
func WithConn(ctx context.Context, db *sql.DB, fn func(*pgx.Conn) error) error {
	conn, err := db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("acquire conn: %w", err)
	}
	defer func() {
		// Close returns the connection to the pool; failure is best-effort.
		_ = conn.Close()
	}()

	return conn.Raw(func(dc any) error {
		std, ok := dc.(*stdlib.Conn)
		if !ok {
			return errors.New("unexpected driver connection type; expected *stdlib.Conn")
		}
		return fn(std.Conn())
	})
}

// WithTx runs fn inside a pgx transaction with the given options and rolls
// back on any failure. Multi-statement invariants (exclusive bid acceptance,
// completion archival, cascading posting deletes) rely on this wrapper.
func WithTx(ctx context.Context, db *sql.DB, opts pgx.TxOptions, fn func(pgx.Tx) error) error {
	return WithConn(ctx, db, func(conn *pgx.Conn) error {
		tx, err := conn.BeginTx(ctx, opts)
		if err != nil {
			return fmt.Errorf("begin tx: %w", err)
		}
		defer func() {
			if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
				// Rollback after commit is a no-op; anything else is already
				// reported through the primary error path.
				_ = rbErr
			}
		}()
		if fnErr := fn(tx); fnErr != nil {
			return fnErr
		}
		if commitErr := tx.Commit(ctx); commitErr != nil {
			return fmt.Errorf("commit tx: %w", commitErr)
		}
		return nil
	})
}

// WithReadCommittedTx runs fn in a read-committed transaction, the isolation
// level required by the cross-row invariants of the bidding engine.
func WithReadCommittedTx(ctx context.Context, db *sql.DB, fn func(pgx.Tx) error) error {
	return WithTx(ctx, db, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}
