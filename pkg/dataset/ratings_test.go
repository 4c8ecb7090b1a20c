package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ekaya-inc/genre-ratings/pkg/apperrors"
	"github.com/ekaya-inc/genre-ratings/pkg/models"
)

func TestParseRatingLine(t *testing.T) {
	rating, err := ParseRatingLine("1::1193::5::978300760", "::")
	require.NoError(t, err)
	assert.Equal(t, models.Rating{UserID: 1, MovieID: 1193, Rating: 5, Timestamp: 978300760}, rating)

	rating, err = ParseRatingLine("7::2::3.5::978300761", "::")
	require.NoError(t, err)
	assert.Equal(t, 3.5, rating.Rating)
}

func TestParseRatingLine_Malformed(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"too few fields", "1::1193::5"},
		{"too many fields", "1::1193::5::978300760::x"},
		{"header row", "UserID::MovieID::Rating::TimeStamp"},
		{"non numeric rating", "1::1193::five::978300760"},
		{"non integer timestamp", "1::1193::5::yesterday"},
		{"non integer movie id", "1::1193.5::5::978300760"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRatingLine(tt.line, "::")
			require.ErrorIs(t, err, apperrors.ErrMalformedRecord)
		})
	}
}

func TestParseRatings(t *testing.T) {
	input := "1::1::5::978300760\n\n2::1::3::978300761\n3::2::4::978300762\n"

	ratings, err := ParseRatings(strings.NewReader(input), "::")
	require.NoError(t, err)
	require.Len(t, ratings, 3)
	assert.Equal(t, 2, ratings[2].MovieID)
}

func TestParseRatings_ReportsLineNumber(t *testing.T) {
	input := "1::1::5::978300760\n2::1::3\n"

	_, err := ParseRatings(strings.NewReader(input), "::")
	require.ErrorIs(t, err, apperrors.ErrMalformedRecord)
	assert.Contains(t, err.Error(), "line 2")
}

func TestLoadRatings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ratings.dat")
	require.NoError(t, os.WriteFile(path, []byte("1::1::5::978300760\n"), 0644))

	ratings, err := LoadRatings(path, "::", zap.NewNop())
	require.NoError(t, err)
	assert.Len(t, ratings, 1)

	_, err = LoadRatings(filepath.Join(t.TempDir(), "missing.dat"), "::", zap.NewNop())
	require.ErrorIs(t, err, os.ErrNotExist)
}
