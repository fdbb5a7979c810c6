package query

import (
	"strings"

	"booksdata/internal/entity"
)

func filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// booksByAuthor resolves the links of authorID to books, one entry per link.
// Links to unknown books are skipped.
func booksByAuthor(s Store, authorID int) []entity.Book {
	out := []entity.Book{}
	for _, l := range s.Links() {
		if l.AuthorID != authorID {
			continue
		}
		if b, err := s.Book(l.BookID); err == nil {
			out = append(out, b)
		}
	}
	return out
}

func authorsByBook(s Store, bookID int) []entity.Author {
	out := []entity.Author{}
	for _, l := range s.Links() {
		if l.BookID != bookID {
			continue
		}
		if a, err := s.Author(l.AuthorID); err == nil {
			out = append(out, a)
		}
	}
	return out
}

func titleContains(text string) func(entity.Book) bool {
	return func(b entity.Book) bool { return containsFold(b.Title, text) }
}

func yearAtLeast(y int) func(entity.Book) bool {
	return func(b entity.Book) bool { return b.PublicationYear >= y }
}

func yearAtMost(y int) func(entity.Book) bool {
	return func(b entity.Book) bool { return b.PublicationYear <= y }
}

func nameContains(text string) func(entity.Author) bool {
	return func(a entity.Author) bool {
		return containsFold(a.FirstName, text) || containsFold(a.LastName, text)
	}
}

// bornAtOrAfter compares birth year only; it is not a lifespan check.
func bornAtOrAfter(y int) func(entity.Author) bool {
	return func(a entity.Author) bool { return a.BirthYear >= y }
}

// aliveAtOrBefore keeps authors who died by y, and living authors when y is
// not past currentYear. Callers handle y >= currentYear before getting here.
func aliveAtOrBefore(y, currentYear int) func(entity.Author) bool {
	return func(a entity.Author) bool {
		if died, known := a.DeathYear.Year(); known {
			return died <= y
		}
		return y <= currentYear
	}
}
