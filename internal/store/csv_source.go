package store

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
)

// CSVSource reads each table from its own headerless CSV file.
type CSVSource struct {
	paths map[Table]string
}

// NewCSVSource returns a source reading the three tables from the given paths.
func NewCSVSource(booksPath, authorsPath, linksPath string) *CSVSource {
	return &CSVSource{paths: map[Table]string{
		TableBooks:   booksPath,
		TableAuthors: authorsPath,
		TableLinks:   linksPath,
	}}
}

// Rows reads every record of the table's file.
func (s *CSVSource) Rows(ctx context.Context, table Table) ([][]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path, ok := s.paths[table]
	if !ok {
		return nil, fmt.Errorf("unknown table %q", table)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	// Arity is checked per table by the parser so the error names the field count.
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rows, nil
}
