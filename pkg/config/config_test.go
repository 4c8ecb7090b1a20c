package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ekaya-inc/genre-ratings/pkg/apperrors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Input.MoviesPath != "movies.txt" {
		t.Errorf("expected MoviesPath=movies.txt, got %s", cfg.Input.MoviesPath)
	}
	if cfg.Input.RatingsPath != "ratings.dat" {
		t.Errorf("expected RatingsPath=ratings.dat, got %s", cfg.Input.RatingsPath)
	}
	if cfg.Input.Delimiter != "::" {
		t.Errorf("expected Delimiter=::, got %q", cfg.Input.Delimiter)
	}
	if cfg.Analysis.TopGenres != 5 || cfg.Analysis.TrendGenres != 3 {
		t.Errorf("expected top 5 / trend 3, got %d / %d", cfg.Analysis.TopGenres, cfg.Analysis.TrendGenres)
	}
	if cfg.Analysis.TrendSinceYear != 1950 {
		t.Errorf("expected TrendSinceYear=1950, got %d", cfg.Analysis.TrendSinceYear)
	}
	if cfg.Charts.Dir != "charts" {
		t.Errorf("expected Charts.Dir=charts, got %s", cfg.Charts.Dir)
	}
	if cfg.Env != "local" {
		t.Errorf("expected Env=local, got %s", cfg.Env)
	}
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	path := writeConfig(t, `
env: "test"
input:
  movies_path: "/data/movies.txt"
  ratings_path: "/data/ratings.dat"
charts:
  dir: "/tmp/charts"
analysis:
  trend_since_year: 1960
`)

	t.Setenv("RATINGS_PATH", "/override/ratings.dat")
	t.Setenv("ENVIRONMENT", "production")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Input.RatingsPath != "/override/ratings.dat" {
		t.Errorf("expected RatingsPath from env, got %s", cfg.Input.RatingsPath)
	}
	if cfg.Env != "production" {
		t.Errorf("expected Env=production (from env), got %s", cfg.Env)
	}
	if cfg.Input.MoviesPath != "/data/movies.txt" {
		t.Errorf("expected MoviesPath from yaml, got %s", cfg.Input.MoviesPath)
	}
	if cfg.Analysis.TrendSinceYear != 1960 {
		t.Errorf("expected TrendSinceYear=1960 (from yaml), got %d", cfg.Analysis.TrendSinceYear)
	}
	// Unset in yaml, so the default applies.
	if cfg.Analysis.TopGenres != 5 {
		t.Errorf("expected TopGenres=5 (default), got %d", cfg.Analysis.TopGenres)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "input: [unclosed")

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for invalid yaml")
	}
}

func TestLoad_RejectsInvalidConfig(t *testing.T) {
	path := writeConfig(t, `
analysis:
  top_genres: 2
  trend_genres: 3
`)

	_, err := Load(path)
	if !errors.Is(err, apperrors.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Input:    InputConfig{MoviesPath: "m", RatingsPath: "r", Delimiter: "::"},
			Charts:   ChartConfig{Dir: "c", WidthInches: 8, HeightInches: 6, HistogramBins: 10},
			Analysis: AnalysisConfig{TopGenres: 5, TrendGenres: 3, TrendSinceYear: 1950},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Config) {}, wantErr: false},
		{name: "empty delimiter", mutate: func(c *Config) { c.Input.Delimiter = "" }, wantErr: true},
		{name: "empty movies path", mutate: func(c *Config) { c.Input.MoviesPath = "" }, wantErr: true},
		{name: "zero width", mutate: func(c *Config) { c.Charts.WidthInches = 0 }, wantErr: true},
		{name: "negative bins", mutate: func(c *Config) { c.Charts.HistogramBins = -1 }, wantErr: true},
		{name: "zero top genres", mutate: func(c *Config) { c.Analysis.TopGenres = 0 }, wantErr: true},
		{name: "trend equals top", mutate: func(c *Config) { c.Analysis.TrendGenres = 5 }, wantErr: false},
		{name: "trend exceeds top", mutate: func(c *Config) { c.Analysis.TrendGenres = 6 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, apperrors.ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}
