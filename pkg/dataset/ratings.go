package dataset

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/ekaya-inc/genre-ratings/pkg/apperrors"
	"github.com/ekaya-inc/genre-ratings/pkg/models"
)

const ratingFieldCount = 4

// ParseRatingLine splits one "user::movie::rating::timestamp" line.
func ParseRatingLine(line, delimiter string) (models.Rating, error) {
	fields := strings.Split(line, delimiter)
	if len(fields) != ratingFieldCount {
		return models.Rating{}, fmt.Errorf("%w: expected %d fields, got %d",
			apperrors.ErrMalformedRecord, ratingFieldCount, len(fields))
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	userID, err := strconv.Atoi(fields[0])
	if err != nil {
		return models.Rating{}, fmt.Errorf("%w: user id %q is not an integer", apperrors.ErrMalformedRecord, fields[0])
	}
	movieID, err := strconv.Atoi(fields[1])
	if err != nil {
		return models.Rating{}, fmt.Errorf("%w: movie id %q is not an integer", apperrors.ErrMalformedRecord, fields[1])
	}
	rating, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return models.Rating{}, fmt.Errorf("%w: rating %q is not numeric", apperrors.ErrMalformedRecord, fields[2])
	}
	timestamp, err := strconv.ParseInt(fields[3], 10, 64)
	if err != nil {
		return models.Rating{}, fmt.Errorf("%w: timestamp %q is not an integer", apperrors.ErrMalformedRecord, fields[3])
	}

	return models.Rating{
		UserID:    userID,
		MovieID:   movieID,
		Rating:    rating,
		Timestamp: timestamp,
	}, nil
}

// ParseRatings parses every non-blank line of r. The file has no header row.
func ParseRatings(r io.Reader, delimiter string) ([]models.Rating, error) {
	var ratings []models.Rating

	lineNo := 0
	err := scanLines(r, func(line string) error {
		lineNo++
		if strings.TrimSpace(line) == "" {
			return nil
		}
		rating, err := ParseRatingLine(line, delimiter)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		ratings = append(ratings, rating)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return ratings, nil
}

// LoadRatings reads the ratings file at path.
func LoadRatings(path, delimiter string, logger *zap.Logger) ([]models.Rating, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open ratings file: %w", err)
	}
	defer f.Close()

	ratings, err := ParseRatings(f, delimiter)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	logger.Info("Loaded ratings",
		zap.String("path", path),
		zap.Int("ratings", len(ratings)))

	return ratings, nil
}
