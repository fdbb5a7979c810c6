package store

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"booksdata/internal/entity"
)

// ErrMalformedRow is returned when a row has the wrong number of fields or a
// numeric field that does not parse.
var ErrMalformedRow = errors.New("malformed row")

// nullField marks a missing value in the flat records.
const nullField = "NULL"

func isNull(v string) bool {
	v = strings.TrimSpace(v)
	return v == "" || v == nullField
}

func parseInt(table Table, line int, field, raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%s row %d: %s %q: %w", table, line, field, raw, ErrMalformedRow)
	}
	return n, nil
}

func checkArity(table Table, line int, row []string, want int) error {
	if len(row) != want {
		return fmt.Errorf("%s row %d: want %d fields, got %d: %w", table, line, want, len(row), ErrMalformedRow)
	}
	return nil
}

// parseBook converts (id, title, publication_year). ok is false when the year
// is missing and the row must be dropped.
func parseBook(line int, row []string) (b entity.Book, ok bool, err error) {
	if err := checkArity(TableBooks, line, row, 3); err != nil {
		return b, false, err
	}
	if b.ID, err = parseInt(TableBooks, line, "id", row[0]); err != nil {
		return b, false, err
	}
	if isNull(row[2]) {
		return b, false, nil
	}
	if b.PublicationYear, err = parseInt(TableBooks, line, "publication_year", row[2]); err != nil {
		return b, false, err
	}
	b.Title = row[1]
	return b, true, nil
}

// parseAuthor converts (id, last_name, first_name, birth_year, death_year).
// ok is false when the last name is missing and the row must be dropped.
func parseAuthor(line int, row []string) (a entity.Author, ok bool, err error) {
	if err := checkArity(TableAuthors, line, row, 5); err != nil {
		return a, false, err
	}
	if a.ID, err = parseInt(TableAuthors, line, "id", row[0]); err != nil {
		return a, false, err
	}
	if strings.TrimSpace(row[1]) == "" {
		return a, false, nil
	}
	if a.BirthYear, err = parseInt(TableAuthors, line, "birth_year", row[3]); err != nil {
		return a, false, err
	}
	a.DeathYear = entity.Living()
	if strings.TrimSpace(row[4]) != nullField {
		died, err := parseInt(TableAuthors, line, "death_year", row[4])
		if err != nil {
			return a, false, err
		}
		a.DeathYear = entity.Died(died)
	}
	a.LastName, a.FirstName = row[1], row[2]
	return a, true, nil
}

func parseLink(line int, row []string) (l entity.Link, err error) {
	if err := checkArity(TableLinks, line, row, 2); err != nil {
		return l, err
	}
	if l.BookID, err = parseInt(TableLinks, line, "book_id", row[0]); err != nil {
		return l, err
	}
	if l.AuthorID, err = parseInt(TableLinks, line, "author_id", row[1]); err != nil {
		return l, err
	}
	return l, nil
}
