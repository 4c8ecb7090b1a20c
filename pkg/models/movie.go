package models

import (
	"github.com/ekaya-inc/genre-ratings/pkg/genres"
)

// Movie is one parsed line of the movie file.
type Movie struct {
	ID int `json:"id" yaml:"id"`
	// Title is RawTitle without its trailing six-character " (YYYY)" suffix.
	Title    string `json:"title" yaml:"title"`
	RawTitle string `json:"raw_title" yaml:"raw_title"`
	// Genres is the unparsed genre field, e.g. "Animation|Children's|Comedy".
	Genres string `json:"genres" yaml:"genres"`
	// Year is nil when the title carries no readable (YYYY) suffix.
	Year       *int              `json:"year,omitempty" yaml:"year,omitempty"`
	Membership genres.Membership `json:"-" yaml:"-"`
}

// HasYear reports whether the release year is known.
func (m *Movie) HasYear() bool {
	return m.Year != nil
}

// ParseStats counts the irregular lines seen while parsing the movie file.
type ParseStats struct {
	Lines        int `json:"lines" yaml:"lines"`
	ShortLines   int `json:"short_lines" yaml:"short_lines"`
	MissingYears int `json:"missing_years" yaml:"missing_years"`
}
