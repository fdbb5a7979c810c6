package store

import (
	"context"
	"fmt"
	"log"
	"time"

	"booksdata/internal/entity"

	"github.com/google/uuid"
)

// Report summarises a single load run.
type Report struct {
	RunID         string
	StartedAt     time.Time
	FinishedAt    time.Time
	BooksRead     int
	BooksLoaded   int
	AuthorsRead   int
	AuthorsLoaded int
	LinksLoaded   int
}

// BooksDropped is the number of book rows skipped for a missing year.
func (r Report) BooksDropped() int { return r.BooksRead - r.BooksLoaded }

// AuthorsDropped is the number of author rows skipped for a missing last name.
func (r Report) AuthorsDropped() int { return r.AuthorsRead - r.AuthorsLoaded }

// Load reads the three tables from src and builds a Store. Any malformed row
// aborts the load.
func Load(ctx context.Context, src Source) (*Store, Report, error) {
	report := Report{RunID: uuid.New().String(), StartedAt: time.Now()}

	bookRows, err := src.Rows(ctx, TableBooks)
	if err != nil {
		return nil, report, fmt.Errorf("read %s: %w", TableBooks, err)
	}
	books := make([]entity.Book, 0, len(bookRows))
	for i, row := range bookRows {
		b, ok, err := parseBook(i+1, row)
		if err != nil {
			return nil, report, err
		}
		if ok {
			books = append(books, b)
		}
	}
	report.BooksRead, report.BooksLoaded = len(bookRows), len(books)

	authorRows, err := src.Rows(ctx, TableAuthors)
	if err != nil {
		return nil, report, fmt.Errorf("read %s: %w", TableAuthors, err)
	}
	authors := make([]entity.Author, 0, len(authorRows))
	for i, row := range authorRows {
		a, ok, err := parseAuthor(i+1, row)
		if err != nil {
			return nil, report, err
		}
		if ok {
			authors = append(authors, a)
		}
	}
	report.AuthorsRead, report.AuthorsLoaded = len(authorRows), len(authors)

	linkRows, err := src.Rows(ctx, TableLinks)
	if err != nil {
		return nil, report, fmt.Errorf("read %s: %w", TableLinks, err)
	}
	links := make([]entity.Link, 0, len(linkRows))
	for i, row := range linkRows {
		l, err := parseLink(i+1, row)
		if err != nil {
			return nil, report, err
		}
		links = append(links, l)
	}
	report.LinksLoaded = len(links)

	s, err := New(books, authors, links)
	if err != nil {
		return nil, report, err
	}
	report.FinishedAt = time.Now()

	log.Printf("load run_id=%s books=%d books_dropped=%d authors=%d authors_dropped=%d links=%d duration_ms=%d",
		report.RunID,
		report.BooksLoaded,
		report.BooksDropped(),
		report.AuthorsLoaded,
		report.AuthorsDropped(),
		report.LinksLoaded,
		report.FinishedAt.Sub(report.StartedAt).Milliseconds(),
	)
	return s, report, nil
}
