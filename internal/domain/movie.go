package domain

import "time"

// Movie represents one catalog entry. Field names in the serialized form
// match the stored format exactly; CreatedAt round-trips as ISO-8601 text.
type Movie struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Genre       string    `json:"genre"`
	Director    string    `json:"director"`
	Year        int       `json:"year"`
	Rating      float64   `json:"rating"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Draft carries every caller-supplied field of a Movie. Add and Update both
// take a complete Draft, so a record is always replaced wholesale and
// validated as a unit; there is no partial-field mutation.
type Draft struct {
	Title       string
	Genre       string
	Director    string
	Year        int
	Rating      float64
	Description string
	ImageURL    string
}

// New builds a Movie from a draft with the given identity and creation time.
// CreatedAt is fixed here and never changes afterwards; an update constructs
// a fresh Movie but carries the original CreatedAt forward.
func New(d Draft, id string, createdAt time.Time) *Movie {
	return &Movie{
		ID:          id,
		Title:       d.Title,
		Genre:       d.Genre,
		Director:    d.Director,
		Year:        d.Year,
		Rating:      d.Rating,
		Description: d.Description,
		ImageURL:    d.ImageURL,
		CreatedAt:   createdAt,
	}
}

// Draft returns the caller-supplied fields of the movie, suitable for
// building an updated replacement.
func (m *Movie) Draft() Draft {
	return Draft{
		Title:       m.Title,
		Genre:       m.Genre,
		Director:    m.Director,
		Year:        m.Year,
		Rating:      m.Rating,
		Description: m.Description,
		ImageURL:    m.ImageURL,
	}
}

// Clone creates a deep copy of the movie.
func (m *Movie) Clone() *Movie {
	c := *m
	return &c
}
