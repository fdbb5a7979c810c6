// Package store holds the loaded books, authors and authorship links as an
// immutable snapshot, and the sources they are loaded from.
package store

import (
	"errors"
	"fmt"
	"slices"

	"booksdata/internal/entity"
)

var (
	// ErrNotFound is returned when no book or author has the requested id.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateID is returned when two records of a table share an id.
	ErrDuplicateID = errors.New("duplicate id")
)

// Store is a read-only snapshot. It is safe for concurrent use because no
// method mutates it after New returns.
type Store struct {
	books   []entity.Book
	authors []entity.Author
	links   []entity.Link

	bookIdx   map[int]int
	authorIdx map[int]int
}

// New builds a store from already parsed records. The slices are copied.
func New(books []entity.Book, authors []entity.Author, links []entity.Link) (*Store, error) {
	s := &Store{
		books:     slices.Clone(books),
		authors:   slices.Clone(authors),
		links:     slices.Clone(links),
		bookIdx:   make(map[int]int, len(books)),
		authorIdx: make(map[int]int, len(authors)),
	}
	for i, b := range s.books {
		if _, dup := s.bookIdx[b.ID]; dup {
			return nil, fmt.Errorf("book %d: %w", b.ID, ErrDuplicateID)
		}
		s.bookIdx[b.ID] = i
	}
	for i, a := range s.authors {
		if _, dup := s.authorIdx[a.ID]; dup {
			return nil, fmt.Errorf("author %d: %w", a.ID, ErrDuplicateID)
		}
		s.authorIdx[a.ID] = i
	}
	return s, nil
}

// Book returns the book with the given id.
func (s *Store) Book(id int) (entity.Book, error) {
	i, ok := s.bookIdx[id]
	if !ok {
		return entity.Book{}, fmt.Errorf("book %d: %w", id, ErrNotFound)
	}
	return s.books[i], nil
}

// Author returns the author with the given id.
func (s *Store) Author(id int) (entity.Author, error) {
	i, ok := s.authorIdx[id]
	if !ok {
		return entity.Author{}, fmt.Errorf("author %d: %w", id, ErrNotFound)
	}
	return s.authors[i], nil
}

// Books returns every book in load order.
func (s *Store) Books() []entity.Book { return slices.Clone(s.books) }

// Authors returns every author in load order.
func (s *Store) Authors() []entity.Author { return slices.Clone(s.authors) }

// Links returns every authorship link in load order, duplicates included.
func (s *Store) Links() []entity.Link { return slices.Clone(s.links) }
