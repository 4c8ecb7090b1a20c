package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ekaya-inc/genre-ratings/pkg/apperrors"
	"github.com/ekaya-inc/genre-ratings/pkg/genres"
	"github.com/ekaya-inc/genre-ratings/pkg/models"
)

func TestMeanRatingByYear(t *testing.T) {
	movies := []models.Movie{
		testMovie(1, 1996, "Comedy"),
		testMovie(2, 1995, "Comedy|Drama"),
		testMovie(3, 1995, "Comedy"),
		testMovie(4, 0, "Comedy"),
		testMovie(5, 1990, "Drama"),
	}
	ratings := []models.Rating{
		testRating(1, 1, 4),
		testRating(1, 2, 2),
		testRating(2, 3, 5),
		testRating(3, 4, 1),
		testRating(4, 5, 3),
	}
	rows := JoinRatings(movies, ratings).Rows

	series, err := MeanRatingByYear(rows, "Comedy")
	require.NoError(t, err)

	assert.Equal(t, genres.Genre("Comedy"), series.Genre)
	// The movie without a year is left out.
	assert.Equal(t, []models.YearMean{
		{Year: 1995, Mean: 3.5},
		{Year: 1996, Mean: 4},
	}, series.Points)
}

func TestMeanRatingByYear_NoRows(t *testing.T) {
	series, err := MeanRatingByYear(nil, "Western")
	require.NoError(t, err)
	assert.Empty(t, series.Points)
}

func TestMeanRatingByYear_UnknownGenre(t *testing.T) {
	_, err := MeanRatingByYear(nil, "Biopic")
	require.ErrorIs(t, err, apperrors.ErrUnknownGenre)
}

func yearRange(genre genres.Genre, from, to int, value float64) models.YearSeries {
	s := models.YearSeries{Genre: genre}
	for y := from; y <= to; y++ {
		s.Points = append(s.Points, models.YearMean{Year: y, Mean: value})
	}
	return s
}

func TestOuterJoinByYear_KeepsAllYears(t *testing.T) {
	comedy := yearRange("Comedy", 1920, 1999, 3.5)
	drama := yearRange("Drama", 1921, 1999, 3.8)

	table := OuterJoinByYear(comedy, drama)

	require.Len(t, table.Years, 80)
	assert.Equal(t, 1920, table.Years[0])
	assert.Equal(t, 1999, table.Years[len(table.Years)-1])
	assert.Equal(t, []genres.Genre{"Comedy", "Drama"}, table.Genres)

	require.NotNil(t, table.Cells[0][0])
	assert.Equal(t, 3.5, *table.Cells[0][0])
	assert.Nil(t, table.Cells[0][1], "drama has no 1920 value")

	require.NotNil(t, table.Cells[1][1])
	assert.Equal(t, 3.8, *table.Cells[1][1])
}

func TestOuterJoinByYear_DisjointAndUnordered(t *testing.T) {
	a := models.YearSeries{Genre: "Action", Points: []models.YearMean{{Year: 1980, Mean: 3}}}
	b := models.YearSeries{Genre: "War", Points: []models.YearMean{{Year: 1970, Mean: 4}, {Year: 1990, Mean: 2}}}

	table := OuterJoinByYear(a, b)

	assert.Equal(t, []int{1970, 1980, 1990}, table.Years)
	assert.Equal(t, [][]*float64{
		{nil, ptr(4)},
		{ptr(3), nil},
		{nil, ptr(2)},
	}, table.Cells)
}

func TestOuterJoinByYear_NoSeries(t *testing.T) {
	table := OuterJoinByYear()
	assert.Empty(t, table.Years)
	assert.Empty(t, table.Genres)
}

func TestYearTable_SinceAndSelect(t *testing.T) {
	table := OuterJoinByYear(
		yearRange("Comedy", 1940, 1960, 3),
		yearRange("Drama", 1945, 1955, 4),
		yearRange("Action", 1955, 1965, 2),
	)

	since := table.Since(1950)
	assert.Equal(t, 1950, since.Years[0])
	assert.Equal(t, 1965, since.Years[len(since.Years)-1])
	assert.Len(t, since.Cells, len(since.Years))

	selected, err := since.Select("Action", "Comedy")
	require.NoError(t, err)
	assert.Equal(t, []genres.Genre{"Action", "Comedy"}, selected.Genres)
	// 1950: no action yet, comedy present.
	assert.Nil(t, selected.Cells[0][0])
	require.NotNil(t, selected.Cells[0][1])
	assert.Equal(t, 3.0, *selected.Cells[0][1])

	// Column skips missing cells.
	assert.Len(t, selected.Column(0), 11)
	assert.Len(t, selected.Column(1), 11)

	_, err = since.Select("Western")
	require.ErrorIs(t, err, apperrors.ErrUnknownGenre)
}

func TestYearTableForGenres(t *testing.T) {
	rows := sampleRows()

	table, err := YearTableForGenres(rows, []genres.Genre{"Comedy", "Action"})
	require.NoError(t, err)

	assert.Equal(t, []int{1995, 1996}, table.Years)
	require.NotNil(t, table.Cells[0][0])
	assert.InDelta(t, 4.5, *table.Cells[0][0], 1e-9)
	require.NotNil(t, table.Cells[0][1])
	assert.InDelta(t, 2.0, *table.Cells[0][1], 1e-9)
	assert.Nil(t, table.Cells[1][1])
}
