package pipeline

import (
	"context"
	"fmt"

	"github.com/oghenedorotoby/rushmore-pizzeria/internal/database"
)

// rowBuffer accumulates rows for one table and flushes them in a single
// round-trip once the size threshold is reached. The threshold is independent
// of any outer batching loop, which is what bounds memory when the rows-per-
// parent ratio is randomized.
type rowBuffer struct {
	table   string
	columns []string
	limit   int
	rows    []database.Row
}

func newRowBuffer(table string, columns []string, limit int) *rowBuffer {
	return &rowBuffer{
		table:   table,
		columns: columns,
		limit:   limit,
		rows:    make([]database.Row, 0, limit),
	}
}

func (b *rowBuffer) add(row database.Row) {
	b.rows = append(b.rows, row)
}

func (b *rowBuffer) full() bool {
	return len(b.rows) >= b.limit
}

func (b *rowBuffer) len() int {
	return len(b.rows)
}

// flush inserts the buffered rows and resets the buffer. Flushing an empty
// buffer is a no-op.
func (b *rowBuffer) flush(ctx context.Context, session database.Session) error {
	if len(b.rows) == 0 {
		return nil
	}
	if err := session.InsertBatch(ctx, b.table, b.columns, b.rows); err != nil {
		return fmt.Errorf("failed to flush %d rows to %s: %w", len(b.rows), b.table, err)
	}
	b.rows = b.rows[:0]
	return nil
}
