package store

import (
	"context"
	"errors"
	"testing"

	"booksdata/internal/entity"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		src := NewMockSource(ctrl)

		src.EXPECT().Rows(gomock.Any(), TableBooks).Return([][]string{
			{"6", "Good Omens", "1990"},
			{"7", "Draft", "NULL"},
			{"41", "Middlemarch", "1871"},
		}, nil)
		src.EXPECT().Rows(gomock.Any(), TableAuthors).Return([][]string{
			{"5", "Gaiman", "Neil", "1960", "NULL"},
			{"8", "", "Anon", "1900", "1950"},
		}, nil)
		src.EXPECT().Rows(gomock.Any(), TableLinks).Return([][]string{
			{"6", "5"},
			{"99", "99"},
		}, nil)

		s, report, err := Load(ctx, src)
		require.NoError(t, err)

		assert.NotEmpty(t, report.RunID)
		assert.Equal(t, 3, report.BooksRead)
		assert.Equal(t, 2, report.BooksLoaded)
		assert.Equal(t, 1, report.BooksDropped())
		assert.Equal(t, 1, report.AuthorsDropped())
		assert.Equal(t, 2, report.LinksLoaded)

		assert.Equal(t, []entity.Book{
			{ID: 6, Title: "Good Omens", PublicationYear: 1990},
			{ID: 41, Title: "Middlemarch", PublicationYear: 1871},
		}, s.Books())
		_, err = s.Book(7)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("source error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		src := NewMockSource(ctrl)

		src.EXPECT().Rows(gomock.Any(), TableBooks).Return(nil, nil)
		src.EXPECT().Rows(gomock.Any(), TableAuthors).Return(nil, errors.New("disk gone"))

		_, _, err := Load(ctx, src)
		assert.ErrorContains(t, err, "read authors")
	})

	t.Run("malformed row aborts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		src := NewMockSource(ctrl)

		src.EXPECT().Rows(gomock.Any(), TableBooks).Return([][]string{{"x", "Bad", "1990"}}, nil)

		_, _, err := Load(ctx, src)
		assert.ErrorIs(t, err, ErrMalformedRow)
	})

	t.Run("duplicate id aborts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		src := NewMockSource(ctrl)

		src.EXPECT().Rows(gomock.Any(), TableBooks).Return([][]string{{"1", "A", "1990"}, {"1", "B", "1991"}}, nil)
		src.EXPECT().Rows(gomock.Any(), TableAuthors).Return(nil, nil)
		src.EXPECT().Rows(gomock.Any(), TableLinks).Return(nil, nil)

		_, _, err := Load(ctx, src)
		assert.ErrorIs(t, err, ErrDuplicateID)
	})
}
