package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/ekaya-inc/genre-ratings/pkg/apperrors"
)

// Config holds all configuration for a genre-ratings run.
// Configuration can come from a YAML file (config.yaml) or environment variables.
// Environment variables always override YAML values.
// The defaults reproduce the fixed analysis: movies.txt and ratings.dat in the
// working directory, "::" delimited, top 5 genres, trend chart for the top 3 since 1950.
type Config struct {
	Env      string `yaml:"env" env:"ENVIRONMENT" env-default:"local"`
	LogLevel string `yaml:"log_level" env:"LOG_LEVEL" env-default:"info"`

	Input    InputConfig    `yaml:"input"`
	Charts   ChartConfig    `yaml:"charts"`
	Analysis AnalysisConfig `yaml:"analysis"`
}

// InputConfig locates the two source files.
type InputConfig struct {
	MoviesPath  string `yaml:"movies_path" env:"MOVIES_PATH" env-default:"movies.txt"`
	RatingsPath string `yaml:"ratings_path" env:"RATINGS_PATH" env-default:"ratings.dat"`
	// Delimiter separates fields in both files.
	Delimiter string `yaml:"delimiter" env:"INPUT_DELIMITER" env-default:"::"`
}

// ChartConfig controls where and how charts are rendered.
type ChartConfig struct {
	Dir           string  `yaml:"dir" env:"CHART_DIR" env-default:"charts"`
	WidthInches   float64 `yaml:"width_inches" env:"CHART_WIDTH_INCHES" env-default:"8"`
	HeightInches  float64 `yaml:"height_inches" env:"CHART_HEIGHT_INCHES" env-default:"6"`
	HistogramBins int     `yaml:"histogram_bins" env:"CHART_HISTOGRAM_BINS" env-default:"10"`
}

// AnalysisConfig holds the knobs of the aggregation stage.
type AnalysisConfig struct {
	// TopGenres is how many genres (by catalog share) get a per-year series.
	TopGenres int `yaml:"top_genres" env:"ANALYSIS_TOP_GENRES" env-default:"5"`
	// TrendGenres is how many of those are drawn on the trend chart.
	TrendGenres int `yaml:"trend_genres" env:"ANALYSIS_TREND_GENRES" env-default:"3"`
	// TrendSinceYear drops earlier years from the trend chart; they have too few ratings for a stable mean.
	TrendSinceYear int `yaml:"trend_since_year" env:"ANALYSIS_TREND_SINCE_YEAR" env-default:"1950"`
}

// Load reads configuration from the YAML file at path with environment variable overrides.
// A missing file is not an error: defaults and environment variables are used instead.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" && fileExists(path) {
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
	} else {
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects configurations the pipeline cannot run with.
func (c *Config) Validate() error {
	if c.Input.Delimiter == "" {
		return fmt.Errorf("%w: input delimiter must not be empty", apperrors.ErrInvalidConfig)
	}
	if c.Input.MoviesPath == "" || c.Input.RatingsPath == "" {
		return fmt.Errorf("%w: movies_path and ratings_path are required", apperrors.ErrInvalidConfig)
	}
	if c.Charts.WidthInches <= 0 || c.Charts.HeightInches <= 0 {
		return fmt.Errorf("%w: chart dimensions must be positive", apperrors.ErrInvalidConfig)
	}
	if c.Charts.HistogramBins <= 0 {
		return fmt.Errorf("%w: histogram_bins must be positive", apperrors.ErrInvalidConfig)
	}
	if c.Analysis.TopGenres <= 0 || c.Analysis.TrendGenres <= 0 {
		return fmt.Errorf("%w: top_genres and trend_genres must be positive", apperrors.ErrInvalidConfig)
	}
	if c.Analysis.TrendGenres > c.Analysis.TopGenres {
		return fmt.Errorf("%w: trend_genres (%d) exceeds top_genres (%d)",
			apperrors.ErrInvalidConfig, c.Analysis.TrendGenres, c.Analysis.TopGenres)
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, fs.ErrNotExist)
}
