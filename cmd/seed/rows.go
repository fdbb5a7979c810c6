package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"booksdata/internal/store"
)

type tableSpec struct {
	table   store.Table
	columns []string
	// kinds says how each CSV field is stored.
	kinds []fieldKind
}

type fieldKind int

const (
	textField fieldKind = iota
	intField
	nullableIntField
)

var seedTables = []tableSpec{
	{
		table:   store.TableBooks,
		columns: []string{"id", "title", "publication_year"},
		kinds:   []fieldKind{intField, textField, nullableIntField},
	},
	{
		table:   store.TableAuthors,
		columns: []string{"id", "last_name", "first_name", "birth_year", "death_year"},
		kinds:   []fieldKind{intField, textField, textField, intField, nullableIntField},
	},
	{
		table:   store.TableLinks,
		columns: []string{"book_id", "author_id"},
		kinds:   []fieldKind{intField, intField},
	},
}

// convert turns CSV rows into COPY values. NULL and blank nullable integers
// become SQL NULL.
func (t tableSpec) convert(rows [][]string) ([][]any, error) {
	out := make([][]any, 0, len(rows))
	for i, row := range rows {
		if len(row) != len(t.columns) {
			return nil, fmt.Errorf("%s row %d: want %d fields, got %d", t.table, i+1, len(t.columns), len(row))
		}
		values := make([]any, len(row))
		for j, raw := range row {
			v, err := convertField(t.kinds[j], raw)
			if err != nil {
				return nil, fmt.Errorf("%s row %d: %s: %w", t.table, i+1, t.columns[j], err)
			}
			values[j] = v
		}
		out = append(out, values)
	}
	return out, nil
}

func convertField(kind fieldKind, raw string) (any, error) {
	trimmed := strings.TrimSpace(raw)
	switch kind {
	case nullableIntField:
		if trimmed == "" || trimmed == "NULL" {
			return nil, nil
		}
		fallthrough
	case intField:
		// Columns are INTEGER, so anything past int32 is rejected rather than wrapped.
		n, err := strconv.ParseInt(trimmed, 10, 32)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return nil, fmt.Errorf("integer out of range: %q", raw)
			}
			return nil, fmt.Errorf("not an integer: %q", raw)
		}
		return int32(n), nil
	default:
		return raw, nil
	}
}
