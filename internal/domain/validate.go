package domain

import (
	"fmt"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	minTitleLen       = 2
	minDirectorLen    = 2
	minDescriptionLen = 10
	minYear           = 1900
	yearSlack         = 5 // announced releases may be a few years out
	minRating         = 1
	maxRating         = 10
)

// Rules holds the context a movie is validated against: the configured genre
// set and the reference time for the year upper bound.
type Rules struct {
	Genres []string
	Now    time.Time
}

// Validate checks every field rule independently and returns the violated
// rules' messages in declaration order. No short-circuiting: the caller gets
// all problems at once. The movie is valid iff the returned slice is empty.
func (m *Movie) Validate(rules Rules) []string {
	var errs []string

	if trimmedLen(m.Title) < minTitleLen {
		errs = append(errs, fmt.Sprintf("title must be at least %d characters", minTitleLen))
	}
	if !containsGenre(rules.Genres, m.Genre) {
		errs = append(errs, "genre must be one of: "+strings.Join(rules.Genres, ", "))
	}
	if trimmedLen(m.Director) < minDirectorLen {
		errs = append(errs, fmt.Sprintf("director must be at least %d characters", minDirectorLen))
	}
	if maxYear := rules.Now.Year() + yearSlack; m.Year < minYear || m.Year > maxYear {
		errs = append(errs, fmt.Sprintf("year must be between %d and %d", minYear, maxYear))
	}
	if m.Rating < minRating || m.Rating > maxRating {
		errs = append(errs, fmt.Sprintf("rating must be between %d and %d", minRating, maxRating))
	}
	if trimmedLen(m.Description) < minDescriptionLen {
		errs = append(errs, fmt.Sprintf("description must be at least %d characters", minDescriptionLen))
	}
	if !validImageURL(m.ImageURL) {
		errs = append(errs, "image URL must be a valid absolute URL")
	}

	return errs
}

// trimmedLen counts characters, not bytes: multibyte titles like «é» are
// one character long.
func trimmedLen(s string) int {
	return utf8.RuneCountInString(strings.TrimSpace(s))
}

func containsGenre(genres []string, genre string) bool {
	for _, g := range genres {
		if g == genre {
			return true
		}
	}
	return false
}

func validImageURL(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return false
	}
	return parsed.Host != ""
}
