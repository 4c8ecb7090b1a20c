package services

import (
	"github.com/ekaya-inc/genre-ratings/pkg/models"
)

// JoinResult is the output of JoinRatings.
type JoinResult struct {
	Rows  []models.JoinedRow
	Stats models.JoinStats
}

// JoinRatings inner-joins movies and ratings on movie id.
// Rows follow movie order, then rating order within a movie. Ratings for unknown
// movies and movies without ratings produce no rows; they are only counted.
func JoinRatings(movies []models.Movie, ratings []models.Rating) JoinResult {
	byMovie := make(map[int][]int, len(movies))
	for i, r := range ratings {
		byMovie[r.MovieID] = append(byMovie[r.MovieID], i)
	}

	known := make(map[int]bool, len(movies))
	result := JoinResult{Rows: make([]models.JoinedRow, 0, len(ratings))}

	for i := range movies {
		movie := &movies[i]
		known[movie.ID] = true

		idx := byMovie[movie.ID]
		if len(idx) == 0 {
			result.Stats.MoviesWithoutRates++
			continue
		}
		for _, j := range idx {
			result.Rows = append(result.Rows, models.JoinedRow{Movie: movie, Rating: ratings[j]})
		}
	}

	for _, r := range ratings {
		if !known[r.MovieID] {
			result.Stats.UnmatchedRatings++
		}
	}
	result.Stats.Rows = len(result.Rows)

	return result
}
