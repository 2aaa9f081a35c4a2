package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/oghenedorotoby/rushmore-pizzeria/internal/database"
)

// Session implements database.Session over a single pgx connection. The
// connection is held for the whole run; transaction control is issued directly
// on it so that checkpoint commits can reopen a transaction on the same
// session.
type Session struct {
	conn *pgx.Conn
	qb   squirrel.StatementBuilderType
}

func Connect(ctx context.Context, dsn string) (*Session, error) {
	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &Session{
		conn: conn,
		qb:   squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}, nil
}

func (s *Session) Begin(ctx context.Context) error {
	_, err := s.conn.Exec(ctx, "BEGIN")
	return err
}

func (s *Session) Commit(ctx context.Context) error {
	_, err := s.conn.Exec(ctx, "COMMIT")
	return err
}

func (s *Session) Rollback(ctx context.Context) error {
	_, err := s.conn.Exec(ctx, "ROLLBACK")
	return err
}

func (s *Session) Close(ctx context.Context) error {
	return s.conn.Close(ctx)
}

func (s *Session) Ping(ctx context.Context) error {
	return s.conn.Ping(ctx)
}

func (s *Session) InsertBatch(ctx context.Context, table string, columns []string, rows []database.Row) error {
	if len(rows) == 0 {
		return nil
	}

	query, args, err := s.buildInsert(table, columns, rows).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert for %s: %w", table, err)
	}

	if _, err := s.conn.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert into %s: %w", table, err)
	}
	return nil
}

func (s *Session) InsertBatchReturning(ctx context.Context, table string, columns []string, rows []database.Row, idColumn string) ([]int64, error) {
	if len(rows) == 0 {
		return nil, nil
	}

	query, args, err := s.buildInsert(table, columns, rows).
		Suffix("RETURNING " + idColumn).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build insert for %s: %w", table, err)
	}

	result, err := s.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to insert into %s: %w", table, err)
	}
	defer result.Close()

	// Postgres returns RETURNING rows in insertion order for a single VALUES
	// list, which keeps the row-to-id mapping intact.
	ids := make([]int64, 0, len(rows))
	for result.Next() {
		var id int64
		if err := result.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan %s id: %w", table, err)
		}
		ids = append(ids, id)
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s ids: %w", table, err)
	}
	if len(ids) != len(rows) {
		return nil, fmt.Errorf("inserted %d rows into %s but got %d ids back", len(rows), table, len(ids))
	}

	return ids, nil
}

func (s *Session) Exec(ctx context.Context, query string, args ...interface{}) error {
	_, err := s.conn.Exec(ctx, query, args...)
	return err
}

func (s *Session) buildInsert(table string, columns []string, rows []database.Row) squirrel.InsertBuilder {
	builder := s.qb.Insert(table).Columns(columns...)
	for _, row := range rows {
		builder = builder.Values(row...)
	}
	return builder
}
