package store

import (
	"context"
	"database/sql"
)

// DBTX is the query executor consumed by every store. It is implemented by
// both *sql.DB and *sql.Tx, so a store can run against the connection pool
// or inside a transaction owned by its caller. Only positional parameters
// ($1, $2, ...) are used; values never appear in the query text.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
