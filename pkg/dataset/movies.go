// Package dataset reads the movie and ratings files.
// Both files are read completely and closed before anything is returned.
package dataset

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/ekaya-inc/genre-ratings/pkg/apperrors"
	"github.com/ekaya-inc/genre-ratings/pkg/genres"
	"github.com/ekaya-inc/genre-ratings/pkg/logging"
	"github.com/ekaya-inc/genre-ratings/pkg/models"
)

const (
	movieFieldCount = 3
	// yearSuffixLen is the width of the " (YYYY)" title suffix minus its leading space.
	yearSuffixLen = 6
)

// ParseMovieLine splits one "id::Title (YYYY)::Genre|Genre" line.
// Fields are positional. A line with fewer fields yields empty title and genre text;
// only a non-integer id is an error.
func ParseMovieLine(line, delimiter string) (models.Movie, error) {
	fields := strings.SplitN(line, delimiter, movieFieldCount+1)

	id, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return models.Movie{}, fmt.Errorf("%w: movie id %q is not an integer", apperrors.ErrMalformedRecord, fields[0])
	}

	movie := models.Movie{ID: id}
	if len(fields) > 1 {
		movie.RawTitle = fields[1]
	}
	if len(fields) > 2 {
		movie.Genres = fields[2]
	}

	movie.Title, movie.Year = splitTitleYear(movie.RawTitle)
	movie.Membership = genres.Expand(movie.Genres)

	return movie, nil
}

// splitTitleYear cuts the last six characters off raw. The cut-off part, stripped of
// parentheses, is the year when it is exactly four digits.
func splitTitleYear(raw string) (string, *int) {
	runes := []rune(raw)
	cut := max(len(runes)-yearSuffixLen, 0)

	title := string(runes[:cut])
	suffix := strings.Trim(string(runes[cut:]), "()")

	if len(suffix) != 4 {
		return title, nil
	}
	for _, r := range suffix {
		if r < '0' || r > '9' {
			return title, nil
		}
	}
	year, err := strconv.Atoi(suffix)
	if err != nil {
		return title, nil
	}
	return title, &year
}

// ParseMovies parses every non-blank line of r.
// Lines with missing fields are kept and logged; a malformed id aborts the parse.
func ParseMovies(r io.Reader, delimiter string, logger *zap.Logger) ([]models.Movie, models.ParseStats, error) {
	var (
		movies []models.Movie
		stats  models.ParseStats
	)

	lineNo := 0
	err := scanLines(r, func(line string) error {
		lineNo++
		if strings.TrimSpace(line) == "" {
			return nil
		}
		stats.Lines++

		movie, err := ParseMovieLine(line, delimiter)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}

		if strings.Count(line, delimiter) < movieFieldCount-1 {
			stats.ShortLines++
			logger.Warn("Movie line has missing fields",
				zap.Int("line", lineNo),
				zap.String("preview", logging.PreviewLine(line)))
		}
		if !movie.HasYear() {
			stats.MissingYears++
			logger.Debug("Movie title has no year",
				zap.Int("line", lineNo),
				zap.Int("movie_id", movie.ID))
		}

		movies = append(movies, movie)
		return nil
	})
	if err != nil {
		return nil, stats, err
	}

	return movies, stats, nil
}

// LoadMovies reads the movie file at path.
func LoadMovies(path, delimiter string, logger *zap.Logger) ([]models.Movie, models.ParseStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, models.ParseStats{}, fmt.Errorf("failed to open movie file: %w", err)
	}
	defer f.Close()

	movies, stats, err := ParseMovies(f, delimiter, logger)
	if err != nil {
		return nil, stats, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	logger.Info("Loaded movies",
		zap.String("path", path),
		zap.Int("movies", len(movies)),
		zap.Int("short_lines", stats.ShortLines),
		zap.Int("missing_years", stats.MissingYears))

	return movies, stats, nil
}

// scanLines calls fn for every line of r, without line terminators.
func scanLines(r io.Reader, fn func(line string) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if err := fn(strings.TrimSuffix(scanner.Text(), "\r")); err != nil {
			return err
		}
	}
	return scanner.Err()
}
