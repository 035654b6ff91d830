package catalog

import (
	"sort"
	"strings"

	"movie-catalog/internal/domain"
)

// DefaultRecentN is how many records RecentN returns when n is not positive.
const DefaultRecentN = 5

// All returns a defensive copy of the collection in its current order.
func (m *Manager) All() []*domain.Movie {
	return cloneAll(m.items)
}

// ByID returns the record with the given id, or *domain.NotFoundError.
func (m *Manager) ByID(id string) (*domain.Movie, error) {
	idx := m.indexOf(id)
	if idx < 0 {
		return nil, &domain.NotFoundError{ID: id}
	}
	return m.items[idx].Clone(), nil
}

// Search returns the records whose title, director, or description contains
// term, case-insensitively, in collection order. A blank term matches
// everything.
func (m *Manager) Search(term string) []*domain.Movie {
	return m.searchWithin(m.items, term)
}

// FilterByGenre returns the records with exactly the given genre, in
// collection order. An empty genre matches everything.
func (m *Manager) FilterByGenre(genre string) []*domain.Movie {
	return m.filterWithin(m.items, genre)
}

// SearchAndFilter applies the genre filter first and the search term to the
// filtered subset. Both are pure predicates, so the result is the same
// subsequence of the collection regardless of application order.
func (m *Manager) SearchAndFilter(term, genre string) []*domain.Movie {
	filtered := m.filterWithin(m.items, genre)
	return m.searchWithin(filtered, term)
}

// RecentN returns up to n records ordered most recently created first. Ties
// keep their relative collection order. A non-positive n means
// DefaultRecentN; an n beyond the collection size returns everything.
func (m *Manager) RecentN(n int) []*domain.Movie {
	if n <= 0 {
		n = DefaultRecentN
	}

	out := cloneAll(m.items)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	if n < len(out) {
		out = out[:n]
	}
	return out
}

// SortByRating returns the whole collection ordered by rating; descending
// when the flag is set. Ties keep their relative collection order.
func (m *Manager) SortByRating(descending bool) []*domain.Movie {
	out := cloneAll(m.items)
	sort.SliceStable(out, func(i, j int) bool {
		if descending {
			return out[i].Rating > out[j].Rating
		}
		return out[i].Rating < out[j].Rating
	})
	return out
}

// SortByYear returns the whole collection ordered by year; descending when
// the flag is set. Ties keep their relative collection order.
func (m *Manager) SortByYear(descending bool) []*domain.Movie {
	out := cloneAll(m.items)
	sort.SliceStable(out, func(i, j int) bool {
		if descending {
			return out[i].Year > out[j].Year
		}
		return out[i].Year < out[j].Year
	})
	return out
}

func (m *Manager) searchWithin(items []*domain.Movie, term string) []*domain.Movie {
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return cloneAll(items)
	}

	var out []*domain.Movie
	for _, movie := range items {
		if strings.Contains(strings.ToLower(movie.Title), needle) ||
			strings.Contains(strings.ToLower(movie.Director), needle) ||
			strings.Contains(strings.ToLower(movie.Description), needle) {
			out = append(out, movie.Clone())
		}
	}
	return out
}

func (m *Manager) filterWithin(items []*domain.Movie, genre string) []*domain.Movie {
	if genre == "" {
		return cloneAll(items)
	}

	var out []*domain.Movie
	for _, movie := range items {
		if movie.Genre == genre {
			out = append(out, movie.Clone())
		}
	}
	return out
}

func cloneAll(items []*domain.Movie) []*domain.Movie {
	out := make([]*domain.Movie, len(items))
	for i, movie := range items {
		out[i] = movie.Clone()
	}
	return out
}
