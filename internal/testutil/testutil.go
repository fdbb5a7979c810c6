package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"booksdata/internal/entity"
	"booksdata/internal/store"

	"github.com/stretchr/testify/require"
)

// ReferenceYear is the current year used by query tests.
const ReferenceYear = 2024

// ScenarioBooks, ScenarioAuthors and ScenarioLinks are the three-author
// sample dataset shipped in data/.
var (
	ScenarioBooks = []entity.Book{
		{ID: 6, Title: "Good Omens", PublicationYear: 1990},
		{ID: 41, Title: "Middlemarch", PublicationYear: 1871},
	}
	ScenarioAuthors = []entity.Author{
		{ID: 5, LastName: "Gaiman", FirstName: "Neil", BirthYear: 1960, DeathYear: entity.Living()},
		{ID: 6, LastName: "Pratchett", FirstName: "Terry", BirthYear: 1948, DeathYear: entity.Died(2015)},
		{ID: 22, LastName: "Eliot", FirstName: "George", BirthYear: 1819, DeathYear: entity.Died(1880)},
	}
	ScenarioLinks = []entity.Link{
		{BookID: 41, AuthorID: 22},
		{BookID: 6, AuthorID: 5},
		{BookID: 6, AuthorID: 6},
	}
)

// LibraryBooks, LibraryAuthors and LibraryLinks are a larger dataset with
// sort ties, a duplicate link and dangling links.
var (
	LibraryBooks = []entity.Book{
		{ID: 1, Title: "Good Omens", PublicationYear: 1990},
		{ID: 2, Title: "Middlemarch", PublicationYear: 1871},
		{ID: 3, Title: "good omens", PublicationYear: 1985},
		{ID: 4, Title: "Neverwhere", PublicationYear: 1996},
		{ID: 5, Title: "Small Gods", PublicationYear: 1992},
		{ID: 6, Title: "American Gods", PublicationYear: 2001},
		{ID: 7, Title: "Adam Bede", PublicationYear: 1859},
		{ID: 8, Title: "Mort", PublicationYear: 1987},
	}
	LibraryAuthors = []entity.Author{
		{ID: 1, LastName: "Gaiman", FirstName: "Neil", BirthYear: 1960, DeathYear: entity.Living()},
		{ID: 2, LastName: "Pratchett", FirstName: "Terry", BirthYear: 1948, DeathYear: entity.Died(2015)},
		{ID: 3, LastName: "Eliot", FirstName: "George", BirthYear: 1819, DeathYear: entity.Died(1880)},
		{ID: 4, LastName: "Gaiman", FirstName: "Anne", BirthYear: 1960, DeathYear: entity.Living()},
		{ID: 5, LastName: "pratchett", FirstName: "Rhianna", BirthYear: 1976, DeathYear: entity.Living()},
		{ID: 6, LastName: "Austen", FirstName: "Jane", BirthYear: 1775, DeathYear: entity.Died(1817)},
	}
	LibraryLinks = []entity.Link{
		{BookID: 1, AuthorID: 1},
		{BookID: 1, AuthorID: 2},
		{BookID: 2, AuthorID: 3},
		{BookID: 3, AuthorID: 1},
		{BookID: 4, AuthorID: 1},
		{BookID: 5, AuthorID: 2},
		{BookID: 6, AuthorID: 1},
		{BookID: 7, AuthorID: 3},
		{BookID: 8, AuthorID: 2},
		{BookID: 8, AuthorID: 2},
		{BookID: 99, AuthorID: 1},
		{BookID: 4, AuthorID: 77},
	}
)

// ScenarioStore returns a store over the sample dataset.
func ScenarioStore(t testing.TB) *store.Store {
	t.Helper()
	s, err := store.New(ScenarioBooks, ScenarioAuthors, ScenarioLinks)
	require.NoError(t, err)
	return s
}

// LibraryStore returns a store over the larger dataset.
func LibraryStore(t testing.TB) *store.Store {
	t.Helper()
	s, err := store.New(LibraryBooks, LibraryAuthors, LibraryLinks)
	require.NoError(t, err)
	return s
}

// WriteScenarioCSV writes the sample dataset as CSV files into a temp dir and
// returns the books, authors and links paths.
func WriteScenarioCSV(t testing.TB) (books, authors, links string) {
	t.Helper()
	dir := t.TempDir()
	books = filepath.Join(dir, "books.csv")
	authors = filepath.Join(dir, "authors.csv")
	links = filepath.Join(dir, "books_authors.csv")

	require.NoError(t, os.WriteFile(books, []byte("6,Good Omens,1990\n41,Middlemarch,1871\n99,Unpublished,NULL\n"), 0644))
	require.NoError(t, os.WriteFile(authors, []byte("5,Gaiman,Neil,1960,NULL\n6,Pratchett,Terry,1948,2015\n22,Eliot,George,1819,1880\n"), 0644))
	require.NoError(t, os.WriteFile(links, []byte("41,22\n6,5\n6,6\n"), 0644))
	return books, authors, links
}

// BookIDs returns the ids of books in order.
func BookIDs(books []entity.Book) []int {
	ids := make([]int, len(books))
	for i, b := range books {
		ids[i] = b.ID
	}
	return ids
}

// AuthorIDs returns the ids of authors in order.
func AuthorIDs(authors []entity.Author) []int {
	ids := make([]int, len(authors))
	for i, a := range authors {
		ids[i] = a.ID
	}
	return ids
}
