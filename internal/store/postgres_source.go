package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Querier is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// PostgresSource reads the tables created by cmd/migrate. Every column is
// cast to text and NULLs become the NULL marker so rows parse exactly like
// the CSV files.
type PostgresSource struct {
	db Querier
}

// NewPostgresSource returns a source reading through db.
func NewPostgresSource(db Querier) *PostgresSource {
	return &PostgresSource{db: db}
}

var tableSQL = map[Table]string{
	TableBooks: `
	SELECT id::text, COALESCE(title, ''), COALESCE(publication_year::text, 'NULL')
	FROM books
	ORDER BY seq`,
	TableAuthors: `
	SELECT id::text, COALESCE(last_name, ''), COALESCE(first_name, ''), birth_year::text, COALESCE(death_year::text, 'NULL')
	FROM authors
	ORDER BY seq`,
	TableLinks: `
	SELECT book_id::text, author_id::text
	FROM books_authors
	ORDER BY seq`,
}

// Rows returns the table's rows as text in insertion order.
func (s *PostgresSource) Rows(ctx context.Context, table Table) ([][]string, error) {
	query, ok := tableSQL[table]
	if !ok {
		return nil, fmt.Errorf("unknown table %q", table)
	}
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out [][]string
	for rows.Next() {
		fields := make([]string, len(rows.FieldDescriptions()))
		dest := make([]any, len(fields))
		for i := range fields {
			dest[i] = &fields[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		out = append(out, fields)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
