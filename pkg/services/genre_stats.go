package services

import (
	"math"
	"slices"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/ekaya-inc/genre-ratings/pkg/genres"
	"github.com/ekaya-inc/genre-ratings/pkg/models"
)

// Ratings returns the rating of every row.
func Ratings(rows []models.JoinedRow) []float64 {
	values := make([]float64, len(rows))
	for i, row := range rows {
		values[i] = row.Rating.Rating
	}
	return values
}

// RatingsByGenre returns, for each genre in genres.All order, the ratings of the rows in that genre.
func RatingsByGenre(rows []models.JoinedRow) [][]float64 {
	subsets := make([][]float64, genres.Count)
	for i := range subsets {
		subsets[i] = []float64{}
	}
	for _, row := range rows {
		for i := range genres.All {
			if row.Movie.Membership.Has(i) {
				subsets[i] = append(subsets[i], row.Rating.Rating)
			}
		}
	}
	return subsets
}

// MeanRatingByGenre returns the mean rating of every genre in genres.All order.
// A genre with no rows gets a NaN mean.
func MeanRatingByGenre(rows []models.JoinedRow) []models.GenreMean {
	subsets := RatingsByGenre(rows)
	means := make([]models.GenreMean, genres.Count)
	for i, g := range genres.All {
		means[i] = models.GenreMean{
			Genre: g,
			Count: len(subsets[i]),
			Mean:  mean(subsets[i]),
		}
	}
	return means
}

// SortByMean returns a copy of means ordered by mean rating, highest first.
// NaN means sort last; ties keep their input order.
func SortByMean(means []models.GenreMean) []models.GenreMean {
	sorted := slices.Clone(means)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].Mean, sorted[j].Mean
		if math.IsNaN(b) {
			return !math.IsNaN(a)
		}
		return a > b
	})
	return sorted
}

// PercentOfCatalog returns, per genre, the share of joined rows in that genre.
// The denominator is the joined row count (rating events, not distinct movies).
// Memberships overlap, so the values need not sum to 100.
func PercentOfCatalog(rows []models.JoinedRow) []models.GenreShare {
	counts := make([]int, genres.Count)
	for _, row := range rows {
		for i := range genres.All {
			if row.Movie.Membership.Has(i) {
				counts[i]++
			}
		}
	}

	total := float64(len(rows))
	shares := make([]models.GenreShare, genres.Count)
	for i, g := range genres.All {
		shares[i] = models.GenreShare{
			Genre:   g,
			Count:   counts[i],
			Percent: float64(counts[i]) / total * 100,
		}
	}
	return shares
}

// TopGenres returns up to k genres with the largest share, largest first.
func TopGenres(shares []models.GenreShare, k int) []genres.Genre {
	sorted := slices.Clone(shares)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Percent > sorted[j].Percent
	})

	k = min(k, len(sorted))
	top := make([]genres.Genre, 0, k)
	for _, s := range sorted[:k] {
		top = append(top, s.Genre)
	}
	return top
}

// Summarize computes the dataset-wide figures of the joined table.
func Summarize(rows []models.JoinedRow) models.Summary {
	movies := make(map[int]struct{})
	users := make(map[int]struct{})
	for _, row := range rows {
		movies[row.Movie.ID] = struct{}{}
		users[row.Rating.UserID] = struct{}{}
	}
	return models.Summary{
		Rows:           len(rows),
		MeanRating:     mean(Ratings(rows)),
		DistinctMovies: len(movies),
		DistinctUsers:  len(users),
	}
}

// Distribution summarizes values with the figures a box plot shows.
func Distribution(values []float64) models.RatingDistribution {
	if len(values) == 0 {
		nan := math.NaN()
		return models.RatingDistribution{Mean: nan, Min: nan, Q1: nan, Median: nan, Q3: nan, Max: nan}
	}

	sorted := slices.Clone(values)
	slices.Sort(sorted)

	return models.RatingDistribution{
		Count:  len(sorted),
		Mean:   stat.Mean(sorted, nil),
		Min:    floats.Min(sorted),
		Q1:     stat.Quantile(0.25, stat.Empirical, sorted, nil),
		Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
		Q3:     stat.Quantile(0.75, stat.Empirical, sorted, nil),
		Max:    floats.Max(sorted),
	}
}

// mean is the arithmetic mean, NaN for no values.
func mean(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	return stat.Mean(values, nil)
}
