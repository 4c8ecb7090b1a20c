package models

import (
	"fmt"
	"slices"

	"github.com/ekaya-inc/genre-ratings/pkg/apperrors"
	"github.com/ekaya-inc/genre-ratings/pkg/genres"
)

// GenreMean is the mean rating of one genre. Mean is NaN when the genre has no rows.
type GenreMean struct {
	Genre genres.Genre `json:"genre" yaml:"genre"`
	Count int          `json:"count" yaml:"count"`
	Mean  float64      `json:"mean" yaml:"mean"`
}

// GenreShare is the share of joined rows that belong to a genre.
type GenreShare struct {
	Genre   genres.Genre `json:"genre" yaml:"genre"`
	Count   int          `json:"count" yaml:"count"`
	Percent float64      `json:"percent" yaml:"percent"`
}

// YearMean is the mean rating of one year.
type YearMean struct {
	Year int     `json:"year" yaml:"year"`
	Mean float64 `json:"mean" yaml:"mean"`
}

// YearSeries is a genre's mean rating per year, ordered by year.
type YearSeries struct {
	Genre  genres.Genre `json:"genre" yaml:"genre"`
	Points []YearMean   `json:"points" yaml:"points"`
}

// YearTable combines several YearSeries on year.
// Cells[i][j] is the value of Genres[j] in Years[i]; nil means that genre has no data for that year.
type YearTable struct {
	Years  []int
	Genres []genres.Genre
	Cells  [][]*float64
}

// Column returns the non-missing points of column j in year order.
func (t *YearTable) Column(j int) []YearMean {
	points := make([]YearMean, 0, len(t.Years))
	for i, year := range t.Years {
		if v := t.Cells[i][j]; v != nil {
			points = append(points, YearMean{Year: year, Mean: *v})
		}
	}
	return points
}

// RatingDistribution summarizes a set of ratings. All fields but Count are NaN for an empty set.
type RatingDistribution struct {
	Count  int     `json:"count" yaml:"count"`
	Mean   float64 `json:"mean" yaml:"mean"`
	Min    float64 `json:"min" yaml:"min"`
	Q1     float64 `json:"q1" yaml:"q1"`
	Median float64 `json:"median" yaml:"median"`
	Q3     float64 `json:"q3" yaml:"q3"`
	Max    float64 `json:"max" yaml:"max"`
}

// Summary holds the dataset-wide figures.
type Summary struct {
	Rows           int     `json:"rows" yaml:"rows"`
	MeanRating     float64 `json:"mean_rating" yaml:"mean_rating"`
	DistinctMovies int     `json:"distinct_movies" yaml:"distinct_movies"`
	DistinctUsers  int     `json:"distinct_users" yaml:"distinct_users"`
}

// Since returns the rows of t whose year is at least year.
func (t *YearTable) Since(year int) YearTable {
	out := YearTable{Genres: slices.Clone(t.Genres)}
	for i, y := range t.Years {
		if y >= year {
			out.Years = append(out.Years, y)
			out.Cells = append(out.Cells, slices.Clone(t.Cells[i]))
		}
	}
	return out
}

// Select returns the columns of t named by selected, in that order.
func (t *YearTable) Select(selected ...genres.Genre) (YearTable, error) {
	cols := make([]int, len(selected))
	for k, g := range selected {
		j := slices.Index(t.Genres, g)
		if j < 0 {
			return YearTable{}, fmt.Errorf("%w: %s not in year table", apperrors.ErrUnknownGenre, g)
		}
		cols[k] = j
	}

	out := YearTable{
		Years:  slices.Clone(t.Years),
		Genres: slices.Clone(selected),
		Cells:  make([][]*float64, len(t.Years)),
	}
	for i := range t.Years {
		out.Cells[i] = make([]*float64, len(cols))
		for k, j := range cols {
			out.Cells[i][k] = t.Cells[i][j]
		}
	}
	return out, nil
}
