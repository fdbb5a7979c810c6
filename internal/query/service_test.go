package query_test

import (
	"testing"
	"time"

	"booksdata/internal/query"
	"booksdata/internal/store"
	"booksdata/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// ScenarioSuite covers the three-author sample dataset.
type ScenarioSuite struct {
	suite.Suite
	svc *query.Service
}

func TestScenarioSuite(t *testing.T) {
	suite.Run(t, new(ScenarioSuite))
}

func (s *ScenarioSuite) SetupTest() {
	s.svc = query.NewService(testutil.ScenarioStore(s.T()), query.Config{CurrentYear: testutil.ReferenceYear})
}

func (s *ScenarioSuite) TestBooksByAuthor() {
	got := s.svc.Books(query.BookQuery{AuthorID: query.Ptr(6)})
	s.Equal([]int{6}, testutil.BookIDs(got))
	s.Equal("Good Omens", got[0].Title)
}

func (s *ScenarioSuite) TestAuthorsOfBookByBirthYear() {
	got := s.svc.Authors(query.AuthorQuery{BookID: query.Ptr(6), SortBy: query.SortBirthYear})
	s.Equal([]int{6, 5}, testutil.AuthorIDs(got))
}

func (s *ScenarioSuite) TestBooksInYearRange() {
	got := s.svc.Books(query.BookQuery{StartYear: query.Ptr(1900), EndYear: query.Ptr(2000)})
	s.Equal([]int{6}, testutil.BookIDs(got))
}

func (s *ScenarioSuite) TestLookup() {
	s.Run("missing book", func() {
		_, err := s.svc.Book(999)
		s.ErrorIs(err, store.ErrNotFound)
	})

	s.Run("missing author", func() {
		_, err := s.svc.Author(999)
		s.ErrorIs(err, store.ErrNotFound)
	})

	s.Run("existing records", func() {
		b, err := s.svc.Book(41)
		s.Require().NoError(err)
		s.Equal("Middlemarch", b.Title)

		a, err := s.svc.Author(22)
		s.Require().NoError(err)
		s.Equal("Eliot", a.LastName)
	})
}

func (s *ScenarioSuite) TestConvenienceLookups() {
	s.Equal([]int{41}, testutil.BookIDs(s.svc.BooksForAuthor(22)))
	s.Equal([]int{6, 5}, testutil.AuthorIDs(s.svc.AuthorsForBook(6)))
	s.Empty(s.svc.BooksForAuthor(404))
}

// LibrarySuite covers the larger dataset with ties, duplicates and dangling
// links.
type LibrarySuite struct {
	suite.Suite
	svc *query.Service
}

func TestLibrarySuite(t *testing.T) {
	suite.Run(t, new(LibrarySuite))
}

func (s *LibrarySuite) SetupTest() {
	s.svc = query.NewService(testutil.LibraryStore(s.T()), query.Config{CurrentYear: testutil.ReferenceYear})
}

func (s *LibrarySuite) TestBooksWithoutFilters() {
	s.Run("unsorted keeps store order", func() {
		got := s.svc.Books(query.BookQuery{SortBy: "unsorted"})
		s.Equal(testutil.LibraryBooks, got)
	})

	s.Run("default sort is title", func() {
		got := s.svc.Books(query.BookQuery{})
		s.Len(got, len(testutil.LibraryBooks))
		s.Equal([]int{7, 6, 3, 1, 2, 8, 4, 5}, testutil.BookIDs(got))
	})

	s.Run("year sort", func() {
		got := s.svc.Books(query.BookQuery{SortBy: query.SortYear})
		s.Equal([]int{7, 2, 3, 8, 1, 5, 4, 6}, testutil.BookIDs(got))
	})
}

func (s *LibrarySuite) TestBooksFilters() {
	s.Run("duplicate links repeat the book", func() {
		got := s.svc.Books(query.BookQuery{AuthorID: query.Ptr(2)})
		s.Equal([]int{1, 8, 8, 5}, testutil.BookIDs(got))
	})

	s.Run("dangling links are ignored", func() {
		got := s.svc.Books(query.BookQuery{AuthorID: query.Ptr(1), SortBy: "unsorted"})
		s.Equal([]int{1, 3, 4, 6}, testutil.BookIDs(got))
	})

	s.Run("author and start year", func() {
		got := s.svc.Books(query.BookQuery{AuthorID: query.Ptr(1), StartYear: query.Ptr(1990)})
		s.Equal([]int{6, 1, 4}, testutil.BookIDs(got))
	})

	s.Run("search is case-insensitive", func() {
		got := s.svc.Books(query.BookQuery{SearchText: query.Ptr("GOD")})
		s.Equal([]int{6, 5}, testutil.BookIDs(got))
	})

	s.Run("search and end year", func() {
		got := s.svc.Books(query.BookQuery{SearchText: query.Ptr("omens"), EndYear: query.Ptr(1989)})
		s.Equal([]int{3}, testutil.BookIDs(got))
	})

	s.Run("no common book", func() {
		got := s.svc.Books(query.BookQuery{AuthorID: query.Ptr(3), StartYear: query.Ptr(1900)})
		s.Empty(got)
	})

	s.Run("unknown author", func() {
		s.Empty(s.svc.Books(query.BookQuery{AuthorID: query.Ptr(404), SearchText: query.Ptr("")}))
	})
}

func (s *LibrarySuite) TestAuthorsWithoutFilters() {
	s.Run("default sort is birth year", func() {
		got := s.svc.Authors(query.AuthorQuery{})
		s.Equal([]int{6, 3, 2, 4, 1, 5}, testutil.AuthorIDs(got))
	})

	s.Run("name sort", func() {
		got := s.svc.Authors(query.AuthorQuery{SortBy: query.SortLastName})
		s.Equal([]int{6, 3, 4, 1, 5, 2}, testutil.AuthorIDs(got))
	})
}

func (s *LibrarySuite) TestAuthorsFilters() {
	s.Run("search matches first or last name", func() {
		got := s.svc.Authors(query.AuthorQuery{SearchText: query.Ptr("an")})
		s.Equal([]int{6, 4, 1, 5}, testutil.AuthorIDs(got))
	})

	s.Run("search is case-insensitive", func() {
		got := s.svc.Authors(query.AuthorQuery{SearchText: query.Ptr("PRATCH")})
		s.Equal([]int{2, 5}, testutil.AuthorIDs(got))
	})

	s.Run("start year compares birth year", func() {
		got := s.svc.Authors(query.AuthorQuery{StartYear: query.Ptr(1950)})
		s.Equal([]int{4, 1, 5}, testutil.AuthorIDs(got))
	})

	s.Run("living authors match any past end year", func() {
		got := s.svc.Authors(query.AuthorQuery{EndYear: query.Ptr(1900)})
		s.Equal([]int{6, 3, 4, 1, 5}, testutil.AuthorIDs(got))
	})

	s.Run("book and end year after a death", func() {
		got := s.svc.Authors(query.AuthorQuery{BookID: query.Ptr(1), EndYear: query.Ptr(2020)})
		s.Equal([]int{2, 1}, testutil.AuthorIDs(got))
	})

	s.Run("book and end year before a death", func() {
		got := s.svc.Authors(query.AuthorQuery{BookID: query.Ptr(1), EndYear: query.Ptr(2010)})
		s.Equal([]int{1}, testutil.AuthorIDs(got))
	})

	s.Run("dangling links are ignored", func() {
		got := s.svc.Authors(query.AuthorQuery{BookID: query.Ptr(4)})
		s.Equal([]int{1}, testutil.AuthorIDs(got))
	})
}

func (s *LibrarySuite) TestAuthorsEndYearNotYetReached() {
	s.Run("current year ignores other filters", func() {
		got := s.svc.Authors(query.AuthorQuery{
			BookID:     query.Ptr(3),
			SearchText: query.Ptr("zzz"),
			StartYear:  query.Ptr(3000),
			EndYear:    query.Ptr(testutil.ReferenceYear),
		})
		s.Equal([]int{6, 3, 2, 4, 1, 5}, testutil.AuthorIDs(got))
	})

	s.Run("future year sorted by name", func() {
		got := s.svc.Authors(query.AuthorQuery{EndYear: query.Ptr(2030), SortBy: query.SortLastName})
		s.Equal([]int{6, 3, 4, 1, 5, 2}, testutil.AuthorIDs(got))
	})

	s.Run("year before current still filters", func() {
		got := s.svc.Authors(query.AuthorQuery{SearchText: query.Ptr("zzz"), EndYear: query.Ptr(testutil.ReferenceYear - 1)})
		s.Empty(got)
	})
}

func (s *LibrarySuite) TestIdempotent() {
	q := query.BookQuery{SearchText: query.Ptr("o"), SortBy: query.SortYear}
	first := s.svc.Books(q)
	first[0].Title = "mutated"
	second := s.svc.Books(q)
	third := s.svc.Books(q)
	s.Equal(second, third)
	s.NotEqual("mutated", second[0].Title)

	aq := query.AuthorQuery{StartYear: query.Ptr(1800)}
	s.Equal(s.svc.Authors(aq), s.svc.Authors(aq))
}

func TestNewService_DefaultsToCalendarYear(t *testing.T) {
	svc := query.NewService(testutil.ScenarioStore(t), query.Config{})
	assert.Equal(t, time.Now().Year(), svc.CurrentYear())
}
