package query

import (
	"cmp"
	"slices"
	"strings"

	"booksdata/internal/entity"
)

func byTitle(a, b entity.Book) int {
	return cmp.Or(
		cmp.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title)),
		cmp.Compare(a.PublicationYear, b.PublicationYear),
	)
}

func byPublicationYear(a, b entity.Book) int {
	return cmp.Or(
		cmp.Compare(a.PublicationYear, b.PublicationYear),
		cmp.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title)),
	)
}

func byBirthYear(a, b entity.Author) int {
	return cmp.Or(
		cmp.Compare(a.BirthYear, b.BirthYear),
		cmp.Compare(strings.ToLower(a.LastName), strings.ToLower(b.LastName)),
		cmp.Compare(strings.ToLower(a.FirstName), strings.ToLower(b.FirstName)),
	)
}

func byName(a, b entity.Author) int {
	return cmp.Or(
		cmp.Compare(strings.ToLower(a.LastName), strings.ToLower(b.LastName)),
		cmp.Compare(strings.ToLower(a.FirstName), strings.ToLower(b.FirstName)),
		cmp.Compare(a.BirthYear, b.BirthYear),
	)
}

// SortBooks orders books in place by strategy and returns them. An empty
// strategy means "title"; an unknown one leaves the order untouched.
func SortBooks(books []entity.Book, strategy string) []entity.Book {
	switch strategy {
	case "", SortTitle:
		slices.SortStableFunc(books, byTitle)
	case SortYear:
		slices.SortStableFunc(books, byPublicationYear)
	}
	return books
}

// SortAuthors orders authors in place by strategy and returns them. An empty
// strategy means "birth_year"; anything else sorts by name.
func SortAuthors(authors []entity.Author, strategy string) []entity.Author {
	switch strategy {
	case "", SortBirthYear:
		slices.SortStableFunc(authors, byBirthYear)
	default:
		slices.SortStableFunc(authors, byName)
	}
	return authors
}
