package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ekaya-inc/genre-ratings/pkg/apperrors"
	"github.com/ekaya-inc/genre-ratings/pkg/config"
	"github.com/ekaya-inc/genre-ratings/pkg/dataset"
	"github.com/ekaya-inc/genre-ratings/pkg/genres"
	"github.com/ekaya-inc/genre-ratings/pkg/models"
)

// ChartRenderer draws the three analysis charts and returns the written paths.
type ChartRenderer interface {
	Histogram(values []float64) (string, error)
	BoxPlots(names []genres.Genre, subsets [][]float64) (string, error)
	TrendLines(table models.YearTable) (string, error)
}

// AnalysisService runs the load, join, aggregate and render stages once.
type AnalysisService interface {
	// Run executes every stage in order. Any failure aborts the run; there are no partial results.
	Run(ctx context.Context) (*models.AnalysisResult, error)
}

type analysisService struct {
	input    config.InputConfig
	analysis config.AnalysisConfig
	renderer ChartRenderer
	logger   *zap.Logger
}

// NewAnalysisService creates a new AnalysisService.
func NewAnalysisService(cfg *config.Config, renderer ChartRenderer, logger *zap.Logger) AnalysisService {
	return &analysisService{
		input:    cfg.Input,
		analysis: cfg.Analysis,
		renderer: renderer,
		logger:   logger.Named("analysis"),
	}
}

var _ AnalysisService = (*analysisService)(nil)

func (s *analysisService) Run(ctx context.Context) (*models.AnalysisResult, error) {
	result := &models.AnalysisResult{
		RunID:     uuid.New(),
		StartedAt: time.Now(),
	}
	logger := s.logger.With(zap.String("run_id", result.RunID.String()))

	movies, parseStats, err := dataset.LoadMovies(s.input.MoviesPath, s.input.Delimiter, logger)
	if err != nil {
		return nil, fmt.Errorf("load movies: %w", err)
	}
	result.Movies = parseStats

	ratings, err := dataset.LoadRatings(s.input.RatingsPath, s.input.Delimiter, logger)
	if err != nil {
		return nil, fmt.Errorf("load ratings: %w", err)
	}
	result.Ratings = len(ratings)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	joined := JoinRatings(movies, ratings)
	result.Join = joined.Stats
	logger.Info("Joined movies and ratings",
		zap.Int("rows", joined.Stats.Rows),
		zap.Int("unmatched_ratings", joined.Stats.UnmatchedRatings),
		zap.Int("movies_without_ratings", joined.Stats.MoviesWithoutRates))

	if len(joined.Rows) == 0 {
		return nil, fmt.Errorf("%w: no rating matches a movie", apperrors.ErrEmptyDataset)
	}

	if err := s.aggregate(joined.Rows, result); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := s.render(joined.Rows, result); err != nil {
		return nil, err
	}

	result.FinishedAt = time.Now()
	logger.Info("Analysis complete",
		zap.Duration("elapsed", result.FinishedAt.Sub(result.StartedAt)),
		zap.Strings("top_genres", genreStrings(result.TopGenres)))

	return result, nil
}

func (s *analysisService) aggregate(rows []models.JoinedRow, result *models.AnalysisResult) error {
	result.Summary = Summarize(rows)
	result.GenreMeans = MeanRatingByGenre(rows)
	result.Shares = PercentOfCatalog(rows)
	result.TopGenres = TopGenres(result.Shares, s.analysis.TopGenres)

	subsets := RatingsByGenre(rows)
	result.Distributions = make([]models.RatingDistribution, len(subsets))
	for i, values := range subsets {
		result.Distributions[i] = Distribution(values)
	}

	byYear, err := YearTableForGenres(rows, result.TopGenres)
	if err != nil {
		return fmt.Errorf("year table: %w", err)
	}
	result.ByYear = byYear

	// TopGenres is ordered by share, so its prefix is the trend selection.
	trendGenres := result.TopGenres[:min(s.analysis.TrendGenres, len(result.TopGenres))]
	trends, err := byYear.Select(trendGenres...)
	if err != nil {
		return fmt.Errorf("trend table: %w", err)
	}
	result.Trends = trends.Since(s.analysis.TrendSinceYear)

	return nil
}

func (s *analysisService) render(rows []models.JoinedRow, result *models.AnalysisResult) error {
	var err error

	if result.Charts.Histogram, err = s.renderer.Histogram(Ratings(rows)); err != nil {
		return fmt.Errorf("render histogram: %w", err)
	}

	names := make([]genres.Genre, 0, genres.Count)
	names = append(names, genres.All[:]...)
	if result.Charts.BoxPlots, err = s.renderer.BoxPlots(names, RatingsByGenre(rows)); err != nil {
		return fmt.Errorf("render box plots: %w", err)
	}

	if result.Charts.Trends, err = s.renderer.TrendLines(result.Trends); err != nil {
		return fmt.Errorf("render trend lines: %w", err)
	}

	return nil
}

func genreStrings(gs []genres.Genre) []string {
	out := make([]string, len(gs))
	for i, g := range gs {
		out[i] = string(g)
	}
	return out
}
