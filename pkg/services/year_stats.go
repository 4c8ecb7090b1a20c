package services

import (
	"fmt"
	"slices"

	"github.com/ekaya-inc/genre-ratings/pkg/apperrors"
	"github.com/ekaya-inc/genre-ratings/pkg/genres"
	"github.com/ekaya-inc/genre-ratings/pkg/models"
)

// MeanRatingByYear groups the rows of one genre by release year and averages each group.
// Rows whose movie has no year are left out. Points are in ascending year order.
func MeanRatingByYear(rows []models.JoinedRow, genre genres.Genre) (models.YearSeries, error) {
	idx, ok := genres.Index(genre)
	if !ok {
		return models.YearSeries{}, fmt.Errorf("%w: %s", apperrors.ErrUnknownGenre, genre)
	}

	byYear := make(map[int][]float64)
	for _, row := range rows {
		if !row.Movie.Membership.Has(idx) || !row.Movie.HasYear() {
			continue
		}
		year := *row.Movie.Year
		byYear[year] = append(byYear[year], row.Rating.Rating)
	}

	years := make([]int, 0, len(byYear))
	for year := range byYear {
		years = append(years, year)
	}
	slices.Sort(years)

	series := models.YearSeries{Genre: genre, Points: make([]models.YearMean, 0, len(years))}
	for _, year := range years {
		series.Points = append(series.Points, models.YearMean{Year: year, Mean: mean(byYear[year])})
	}
	return series, nil
}

// OuterJoinByYear combines series on year. Every year present in any series gets a row;
// a series without data for that year gets a nil cell. Columns follow argument order.
func OuterJoinByYear(series ...models.YearSeries) models.YearTable {
	yearSet := make(map[int]struct{})
	for _, s := range series {
		for _, p := range s.Points {
			yearSet[p.Year] = struct{}{}
		}
	}

	years := make([]int, 0, len(yearSet))
	for year := range yearSet {
		years = append(years, year)
	}
	slices.Sort(years)

	rowOf := make(map[int]int, len(years))
	for i, year := range years {
		rowOf[year] = i
	}

	table := models.YearTable{
		Years:  years,
		Genres: make([]genres.Genre, len(series)),
		Cells:  make([][]*float64, len(years)),
	}
	for i := range table.Cells {
		table.Cells[i] = make([]*float64, len(series))
	}

	for j, s := range series {
		table.Genres[j] = s.Genre
		for _, p := range s.Points {
			v := p.Mean
			table.Cells[rowOf[p.Year]][j] = &v
		}
	}

	return table
}

// YearTableForGenres builds the per-genre year series of each genre and outer-joins them.
func YearTableForGenres(rows []models.JoinedRow, selected []genres.Genre) (models.YearTable, error) {
	series := make([]models.YearSeries, 0, len(selected))
	for _, g := range selected {
		s, err := MeanRatingByYear(rows, g)
		if err != nil {
			return models.YearTable{}, err
		}
		series = append(series, s)
	}
	return OuterJoinByYear(series...), nil
}
