package query

import "booksdata/internal/entity"

// Store is the read-only snapshot the query service runs against.
// *store.Store satisfies it.
type Store interface {
	Book(id int) (entity.Book, error)
	Author(id int) (entity.Author, error)
	Books() []entity.Book
	Authors() []entity.Author
	Links() []entity.Link
}
