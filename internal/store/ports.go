package store

import "context"

//go:generate mockgen -source=ports.go -destination=mock_source.go -package=store

// Table names one of the three flat record sources.
type Table string

const (
	TableBooks   Table = "books"
	TableAuthors Table = "authors"
	TableLinks   Table = "books_authors"
)

// Source yields the raw text rows of a table in their stored order.
type Source interface {
	Rows(ctx context.Context, table Table) ([][]string, error)
}
