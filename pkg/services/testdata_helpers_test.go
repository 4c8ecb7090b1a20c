package services

import (
	"github.com/ekaya-inc/genre-ratings/pkg/genres"
	"github.com/ekaya-inc/genre-ratings/pkg/models"
)

func testMovie(id int, year int, genreText string) models.Movie {
	m := models.Movie{
		ID:         id,
		Genres:     genreText,
		Membership: genres.Expand(genreText),
	}
	if year > 0 {
		y := year
		m.Year = &y
	}
	return m
}

func testRating(user, movie int, rating float64) models.Rating {
	return models.Rating{UserID: user, MovieID: movie, Rating: rating, Timestamp: 978300760}
}

func ptr(v float64) *float64 { return &v }
