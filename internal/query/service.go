// Package query answers filtered, sorted lookups over a loaded snapshot of
// books and authors.
package query

import (
	"time"

	"booksdata/internal/entity"
)

// Config holds the query service settings.
type Config struct {
	// CurrentYear is the reference year for living-author comparisons.
	// Zero means the calendar year at construction time.
	CurrentYear int
}

// Service runs book and author queries. It holds no mutable state and may be
// shared across goroutines.
type Service struct {
	store       Store
	currentYear int
}

// NewService creates a new query service over s.
func NewService(s Store, cfg Config) *Service {
	year := cfg.CurrentYear
	if year == 0 {
		year = time.Now().Year()
	}
	return &Service{store: s, currentYear: year}
}

// CurrentYear returns the reference year the service was built with.
func (s *Service) CurrentYear() int { return s.currentYear }

// Book returns the book with the given id, or an error wrapping
// store.ErrNotFound.
func (s *Service) Book(id int) (entity.Book, error) {
	return s.store.Book(id)
}

// Author returns the author with the given id, or an error wrapping
// store.ErrNotFound.
func (s *Service) Author(id int) (entity.Author, error) {
	return s.store.Author(id)
}

// Books returns the books matching every set field of q, sorted by q.SortBy.
func (s *Service) Books(q BookQuery) []entity.Book {
	var sets [][]entity.Book
	if q.AuthorID != nil {
		sets = append(sets, booksByAuthor(s.store, *q.AuthorID))
	}
	if q.SearchText != nil {
		sets = append(sets, filter(s.store.Books(), titleContains(*q.SearchText)))
	}
	if q.StartYear != nil {
		sets = append(sets, filter(s.store.Books(), yearAtLeast(*q.StartYear)))
	}
	if q.EndYear != nil {
		sets = append(sets, filter(s.store.Books(), yearAtMost(*q.EndYear)))
	}

	var books []entity.Book
	if len(sets) == 0 {
		books = s.store.Books()
	} else {
		books = Intersect(sets, func(b entity.Book) int { return b.ID })
	}
	return SortBooks(books, q.SortBy)
}

// Authors returns the authors matching every set field of q, sorted by
// q.SortBy.
func (s *Service) Authors(q AuthorQuery) []entity.Author {
	// An end year that has not happened yet includes everyone and
	// overrides every other filter.
	if q.EndYear != nil && *q.EndYear >= s.currentYear {
		return SortAuthors(s.store.Authors(), q.SortBy)
	}

	var sets [][]entity.Author
	if q.BookID != nil {
		sets = append(sets, authorsByBook(s.store, *q.BookID))
	}
	if q.SearchText != nil {
		sets = append(sets, filter(s.store.Authors(), nameContains(*q.SearchText)))
	}
	if q.StartYear != nil {
		sets = append(sets, filter(s.store.Authors(), bornAtOrAfter(*q.StartYear)))
	}
	if q.EndYear != nil {
		sets = append(sets, filter(s.store.Authors(), aliveAtOrBefore(*q.EndYear, s.currentYear)))
	}

	var authors []entity.Author
	if len(sets) == 0 {
		authors = s.store.Authors()
	} else {
		authors = Intersect(sets, func(a entity.Author) int { return a.ID })
	}
	return SortAuthors(authors, q.SortBy)
}

// BooksForAuthor returns the books written by the author, sorted by title.
func (s *Service) BooksForAuthor(authorID int) []entity.Book {
	return s.Books(BookQuery{AuthorID: &authorID})
}

// AuthorsForBook returns the authors of the book, sorted by birth year.
func (s *Service) AuthorsForBook(bookID int) []entity.Author {
	return s.Authors(AuthorQuery{BookID: &bookID})
}
