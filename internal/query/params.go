package query

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidArgument is returned when a textual query argument cannot be
// converted to the type the query requires.
var ErrInvalidArgument = errors.New("invalid argument")

// Sort strategies.
const (
	SortTitle     = "title"
	SortYear      = "year"
	SortBirthYear = "birth_year"
	SortLastName  = "last_name"
)

// Argument names accepted by ParseBookParams and ParseAuthorParams.
const (
	ArgAuthorID   = "author_id"
	ArgBookID     = "book_id"
	ArgSearchText = "search_text"
	ArgStartYear  = "start_year"
	ArgEndYear    = "end_year"
	ArgSortBy     = "sort_by"
)

// BookQuery selects books. Nil fields do not constrain the result.
type BookQuery struct {
	AuthorID   *int
	SearchText *string
	StartYear  *int
	EndYear    *int
	// SortBy is "title" (the default when empty) or "year". Any other
	// value leaves the result unsorted.
	SortBy string
}

// AuthorQuery selects authors. Nil fields do not constrain the result.
type AuthorQuery struct {
	BookID     *int
	SearchText *string
	// StartYear keeps authors born in or after the year.
	StartYear *int
	// EndYear keeps authors who died in or before the year, plus living
	// authors. A year at or past the current year returns every author and
	// ignores the other filters.
	EndYear *int
	// SortBy is "birth_year" (the default when empty); any other value sorts
	// by name.
	SortBy string
}

// Ptr returns a pointer to v, for filling optional query fields.
func Ptr[T any](v T) *T { return &v }

// ParseBookParams builds a BookQuery from textual arguments. Keys that are
// absent leave the matching filter unset.
func ParseBookParams(args map[string]string) (BookQuery, error) {
	var q BookQuery
	var err error
	if q.AuthorID, err = optionalInt(args, ArgAuthorID); err != nil {
		return BookQuery{}, err
	}
	if q.StartYear, err = optionalInt(args, ArgStartYear); err != nil {
		return BookQuery{}, err
	}
	if q.EndYear, err = optionalInt(args, ArgEndYear); err != nil {
		return BookQuery{}, err
	}
	if v, ok := args[ArgSearchText]; ok {
		q.SearchText = &v
	}
	q.SortBy = args[ArgSortBy]
	return q, nil
}

// ParseAuthorParams builds an AuthorQuery from textual arguments.
func ParseAuthorParams(args map[string]string) (AuthorQuery, error) {
	var q AuthorQuery
	var err error
	if q.BookID, err = optionalInt(args, ArgBookID); err != nil {
		return AuthorQuery{}, err
	}
	if q.StartYear, err = optionalInt(args, ArgStartYear); err != nil {
		return AuthorQuery{}, err
	}
	if q.EndYear, err = optionalInt(args, ArgEndYear); err != nil {
		return AuthorQuery{}, err
	}
	if v, ok := args[ArgSearchText]; ok {
		q.SearchText = &v
	}
	q.SortBy = args[ArgSortBy]
	return q, nil
}

// ParseID converts a record id argument. Surrounding whitespace is not
// accepted.
func ParseID(name, raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q: %w", name, raw, ErrInvalidArgument)
	}
	return n, nil
}

func optionalInt(args map[string]string, name string) (*int, error) {
	raw, ok := args[name]
	if !ok {
		return nil, nil
	}
	n, err := ParseID(name, raw)
	if err != nil {
		return nil, err
	}
	return &n, nil
}
