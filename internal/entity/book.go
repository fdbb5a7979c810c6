package entity

// Book is a single title in the dataset.
type Book struct {
	ID              int    `json:"id" yaml:"id"`
	Title           string `json:"title" yaml:"title"`
	PublicationYear int    `json:"publication_year" yaml:"publication_year"`
}

// Link records that an author wrote a book.
type Link struct {
	BookID   int `json:"book_id" yaml:"book_id"`
	AuthorID int `json:"author_id" yaml:"author_id"`
}
