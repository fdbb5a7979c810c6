package main

import (
	"io"
	"time"

	"booksdata/internal/query"

	"github.com/spf13/cobra"
)

// filterFlags maps flag names to the query argument they fill.
var filterFlags = map[string]string{
	"author-id":  query.ArgAuthorID,
	"book-id":    query.ArgBookID,
	"search":     query.ArgSearchText,
	"start-year": query.ArgStartYear,
	"end-year":   query.ArgEndYear,
	"sort":       query.ArgSortBy,
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out, opts: defaultOptions()}

	root := &cobra.Command{
		Use:           "booksquery",
		Short:         "Query a books and authors dataset",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)

	pf := root.PersistentFlags()
	pf.StringVar(&a.opts.source, "source", a.opts.source, "Data source: csv or postgres")
	pf.StringVar(&a.opts.booksCSV, "books", a.opts.booksCSV, "Books CSV file")
	pf.StringVar(&a.opts.authorsCSV, "authors", a.opts.authorsCSV, "Authors CSV file")
	pf.StringVar(&a.opts.linksCSV, "links", a.opts.linksCSV, "Book/author links CSV file")
	pf.StringVar(&a.opts.dsn, "dsn", a.opts.dsn, "Postgres DSN for the postgres source")
	pf.StringVar(&a.opts.currentYear, "current-year", a.opts.currentYear, "Reference year for living authors (default: this year)")
	pf.StringVarP(&a.opts.format, "format", "o", a.opts.format, "Output format: json or yaml")

	root.AddCommand(
		newBooksCmd(a),
		newAuthorsCmd(a),
		newBookCmd(a),
		newAuthorCmd(a),
		newBooksByAuthorCmd(a),
		newAuthorsOfBookCmd(a),
	)
	return root
}

// changedArgs collects the filter flags the caller actually set, so unset
// filters stay absent rather than empty.
func changedArgs(cmd *cobra.Command) map[string]string {
	args := map[string]string{}
	for flag, arg := range filterFlags {
		f := cmd.Flags().Lookup(flag)
		if f != nil && f.Changed {
			args[arg] = f.Value.String()
		}
	}
	return args
}

func newBooksCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "books",
		Short: "List books matching every given filter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			start := time.Now()
			q, err := query.ParseBookParams(changedArgs(cmd))
			if err != nil {
				return a.fail("books", err)
			}
			svc, err := a.service(cmd.Context())
			if err != nil {
				return a.fail("books", err)
			}
			books := svc.Books(q)
			return a.respond("books", start, books, len(books))
		},
	}
	cmd.Flags().String("author-id", "", "Only books by this author")
	cmd.Flags().String("search", "", "Only books whose title contains this text")
	cmd.Flags().String("start-year", "", "Only books published in or after this year")
	cmd.Flags().String("end-year", "", "Only books published in or before this year")
	cmd.Flags().String("sort", query.SortTitle, "Sort by title or year")
	return cmd
}

func newAuthorsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "authors",
		Short: "List authors matching every given filter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			start := time.Now()
			q, err := query.ParseAuthorParams(changedArgs(cmd))
			if err != nil {
				return a.fail("authors", err)
			}
			svc, err := a.service(cmd.Context())
			if err != nil {
				return a.fail("authors", err)
			}
			authors := svc.Authors(q)
			return a.respond("authors", start, authors, len(authors))
		},
	}
	cmd.Flags().String("book-id", "", "Only authors of this book")
	cmd.Flags().String("search", "", "Only authors whose first or last name contains this text")
	cmd.Flags().String("start-year", "", "Only authors born in or after this year")
	cmd.Flags().String("end-year", "", "Only authors dead by this year, or living")
	cmd.Flags().String("sort", query.SortBirthYear, "Sort by birth_year or name")
	return cmd
}

func newBookCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "book ID",
		Short: "Show one book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			id, err := query.ParseID("id", args[0])
			if err != nil {
				return a.fail("book", err)
			}
			svc, err := a.service(cmd.Context())
			if err != nil {
				return a.fail("book", err)
			}
			book, err := svc.Book(id)
			if err != nil {
				return a.fail("book", err)
			}
			return a.respond("book", start, book, 1)
		},
	}
}

func newAuthorCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "author ID",
		Short: "Show one author",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			id, err := query.ParseID("id", args[0])
			if err != nil {
				return a.fail("author", err)
			}
			svc, err := a.service(cmd.Context())
			if err != nil {
				return a.fail("author", err)
			}
			author, err := svc.Author(id)
			if err != nil {
				return a.fail("author", err)
			}
			return a.respond("author", start, author, 1)
		},
	}
}

func newBooksByAuthorCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "books-by-author AUTHOR_ID",
		Short: "List the books of one author, sorted by title",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			id, err := query.ParseID("author_id", args[0])
			if err != nil {
				return a.fail("books-by-author", err)
			}
			svc, err := a.service(cmd.Context())
			if err != nil {
				return a.fail("books-by-author", err)
			}
			books := svc.BooksForAuthor(id)
			return a.respond("books-by-author", start, books, len(books))
		},
	}
}

func newAuthorsOfBookCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "authors-of-book BOOK_ID",
		Short: "List the authors of one book, sorted by birth year",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			id, err := query.ParseID("book_id", args[0])
			if err != nil {
				return a.fail("authors-of-book", err)
			}
			svc, err := a.service(cmd.Context())
			if err != nil {
				return a.fail("authors-of-book", err)
			}
			authors := svc.AuthorsForBook(id)
			return a.respond("authors-of-book", start, authors, len(authors))
		},
	}
}
