package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/ekaya-inc/genre-ratings/pkg/genres"
)

// ChartPaths lists the files written by one run.
type ChartPaths struct {
	Histogram string `json:"histogram" yaml:"histogram"`
	BoxPlots  string `json:"box_plots" yaml:"box_plots"`
	Trends    string `json:"trends" yaml:"trends"`
}

// AnalysisResult is everything one run computed.
type AnalysisResult struct {
	RunID      uuid.UUID
	StartedAt  time.Time
	FinishedAt time.Time

	Movies     ParseStats
	Ratings    int
	Join       JoinStats
	Summary    Summary
	GenreMeans []GenreMean
	// Distributions is in genres.All order.
	Distributions []RatingDistribution
	Shares        []GenreShare
	TopGenres     []genres.Genre
	// ByYear is the outer join of the top genres' per-year means.
	ByYear YearTable
	// Trends is ByYear restricted to the trend genres and cutoff year.
	Trends YearTable
	Charts ChartPaths
}
