// Package report renders an AnalysisResult as a YAML document for the console.
package report

import (
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ekaya-inc/genre-ratings/pkg/genres"
	"github.com/ekaya-inc/genre-ratings/pkg/models"
	"github.com/ekaya-inc/genre-ratings/pkg/services"
)

// Report is the printable view of a run. Missing values print as null, empty means as .nan.
type Report struct {
	RunID      string             `yaml:"run_id"`
	StartedAt  string             `yaml:"started_at"`
	DurationMs int64              `yaml:"duration_ms"`
	Input      Input              `yaml:"input"`
	Summary    models.Summary     `yaml:"summary"`
	ByMean     []models.GenreMean `yaml:"genres_by_mean_rating"`
	Genres     []GenreRow         `yaml:"genres"`
	TopGenres  []genres.Genre     `yaml:"top_genres"`
	ByYear     []YearRow          `yaml:"mean_rating_by_year"`
	Charts     models.ChartPaths  `yaml:"charts"`
}

// Input describes what was read and what the join dropped.
type Input struct {
	Movies  models.ParseStats `yaml:"movies"`
	Ratings int               `yaml:"ratings"`
	Join    models.JoinStats  `yaml:"join"`
}

// GenreRow is one genre's figures, in enumeration order.
type GenreRow struct {
	Genre        genres.Genre              `yaml:"genre"`
	Percent      float64                   `yaml:"percent_of_catalog"`
	Distribution models.RatingDistribution `yaml:"ratings"`
}

// YearRow is one year of the combined per-year table.
type YearRow struct {
	Year  int                       `yaml:"year"`
	Means map[genres.Genre]*float64 `yaml:"means"`
}

// Build converts result into a Report.
func Build(result *models.AnalysisResult) Report {
	rep := Report{
		RunID:      result.RunID.String(),
		StartedAt:  result.StartedAt.UTC().Format(time.RFC3339),
		DurationMs: result.FinishedAt.Sub(result.StartedAt).Milliseconds(),
		Input: Input{
			Movies:  result.Movies,
			Ratings: result.Ratings,
			Join:    result.Join,
		},
		Summary:   result.Summary,
		ByMean:    services.SortByMean(result.GenreMeans),
		TopGenres: result.TopGenres,
		Charts:    result.Charts,
	}

	rep.Genres = make([]GenreRow, 0, len(result.Shares))
	for i, share := range result.Shares {
		row := GenreRow{Genre: share.Genre, Percent: share.Percent}
		if i < len(result.Distributions) {
			row.Distribution = result.Distributions[i]
		}
		rep.Genres = append(rep.Genres, row)
	}

	table := result.ByYear
	rep.ByYear = make([]YearRow, len(table.Years))
	for i, year := range table.Years {
		means := make(map[genres.Genre]*float64, len(table.Genres))
		for j, g := range table.Genres {
			means[g] = table.Cells[i][j]
		}
		rep.ByYear[i] = YearRow{Year: year, Means: means}
	}

	return rep
}

// Write encodes rep as YAML to w.
func Write(w io.Writer, rep Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return enc.Close()
}
