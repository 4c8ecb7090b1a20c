package models

// Rating is one line of the ratings file.
type Rating struct {
	UserID  int     `json:"user_id" yaml:"user_id"`
	MovieID int     `json:"movie_id" yaml:"movie_id"`
	Rating  float64 `json:"rating" yaml:"rating"`
	// Timestamp is in epoch seconds.
	Timestamp int64 `json:"timestamp" yaml:"timestamp"`
}

// JoinedRow pairs a movie with one of its ratings.
// Movies are shared between rows, never copied.
type JoinedRow struct {
	Movie  *Movie
	Rating Rating
}

// JoinStats describes what the inner join dropped.
type JoinStats struct {
	Rows               int `json:"rows" yaml:"rows"`
	UnmatchedRatings   int `json:"unmatched_ratings" yaml:"unmatched_ratings"`
	MoviesWithoutRates int `json:"movies_without_ratings" yaml:"movies_without_ratings"`
}
