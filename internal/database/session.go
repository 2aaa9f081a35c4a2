package database

import "context"

// Row is one row of values in column order.
type Row []interface{}

// Session is the boundary to the persistent store. It wraps a single
// connection held for the duration of a run; Begin/Commit/Rollback drive the
// run-level transaction and Close must be called on every exit path.
type Session interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
	Close(ctx context.Context) error

	// InsertBatch inserts many rows in one round-trip without retrieving ids.
	InsertBatch(ctx context.Context, table string, columns []string, rows []Row) error

	// InsertBatchReturning inserts many rows in one round-trip and returns the
	// store-assigned ids in the same order as the input rows. Callers rely on
	// the Nth row mapping to the Nth id when attaching dependent rows.
	InsertBatchReturning(ctx context.Context, table string, columns []string, rows []Row, idColumn string) ([]int64, error)

	// Exec applies a single statement, used for targeted row updates.
	Exec(ctx context.Context, query string, args ...interface{}) error
}
