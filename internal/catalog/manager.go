// Package catalog implements the collection manager: the in-memory,
// insertion-ordered movie list mirrored wholesale into a key-value store on
// every mutation.
package catalog

import (
	"encoding/json"

	"github.com/rs/zerolog"

	"movie-catalog/internal/domain"
	"movie-catalog/internal/identifier"
	"movie-catalog/internal/store"
)

// StorageKey is the single store key the whole collection lives under.
const StorageKey = "movies"

// DefaultGenres is the genre set used when none is configured.
var DefaultGenres = []string{
	"action", "adventure", "animation", "comedy", "crime",
	"drama", "fantasy", "horror", "sci-fi", "thriller",
}

// Options configures a Manager. Zero values select the production defaults;
// tests inject a deterministic generator and clock.
type Options struct {
	Generator identifier.Generator
	Clock     domain.Clock
	Genres    []string
	Logger    zerolog.Logger
}

// Manager owns the movie collection. It is constructed once per process,
// loads itself from the store (seeding defaults when the store is empty or
// unreadable), and is the exclusive writer under StorageKey. All reads are
// served from memory; the store is only touched on mutation.
//
// Single-writer by contract: one call runs to completion before the next,
// so no locking is needed or wanted here.
type Manager struct {
	store store.Store
	gen   identifier.Generator
	clock domain.Clock
	rules genreRules
	log   zerolog.Logger

	items []*domain.Movie
}

type genreRules struct {
	genres []string
}

// New creates a Manager backed by s and performs the initial load. It never
// fails for store-read reasons: an absent, empty, or corrupt stored payload
// degrades to the built-in seed set.
func New(s store.Store, opts Options) *Manager {
	if opts.Generator == nil {
		if opts.Clock == nil {
			opts.Clock = domain.RealClock{}
		}
		opts.Generator = identifier.NewTimeRandom(opts.Clock)
	}
	if opts.Clock == nil {
		opts.Clock = domain.RealClock{}
	}
	if opts.Genres == nil {
		opts.Genres = DefaultGenres
	}

	m := &Manager{
		store: s,
		gen:   opts.Generator,
		clock: opts.Clock,
		rules: genreRules{genres: opts.Genres},
		log:   opts.Logger,
	}
	m.load()
	return m
}

// rulesNow builds the validation context at the current time.
func (m *Manager) rulesNow() domain.Rules {
	return domain.Rules{Genres: m.rules.genres, Now: m.clock.Now()}
}

// load populates items from the store, falling back to the seed set when the
// stored payload is absent, empty, fails to decode, or contains an invalid
// record.
func (m *Manager) load() {
	data, ok := m.store.Get(StorageKey)
	if !ok {
		m.log.Info().Msg("store empty, seeding default catalog")
		m.seed()
		return
	}

	var loaded []*domain.Movie
	if err := json.Unmarshal(data, &loaded); err != nil {
		m.log.Warn().Err(err).Msg("stored catalog unreadable, falling back to defaults")
		m.seed()
		return
	}
	if len(loaded) == 0 {
		m.log.Info().Msg("stored catalog empty, seeding default catalog")
		m.seed()
		return
	}

	rules := m.rulesNow()
	for _, movie := range loaded {
		if errs := movie.Validate(rules); len(errs) > 0 {
			m.log.Warn().
				Str("id", movie.ID).
				Strs("errors", errs).
				Msg("stored catalog contains invalid record, falling back to defaults")
			m.seed()
			return
		}
	}

	m.items = loaded
	m.log.Debug().Int("count", len(loaded)).Msg("catalog loaded from store")
}

// seed replaces items with the built-in default set and persists it. A
// persist failure at seed time is logged, not propagated: construction must
// always end in a usable state.
func (m *Manager) seed() {
	m.items = m.items[:0]
	for _, d := range seedDrafts {
		m.items = append(m.items, domain.New(d, m.gen.NewID(), m.clock.Now()))
	}
	if err := m.Persist(); err != nil {
		m.log.Warn().Err(err).Msg("seed catalog not persisted")
	}
}

// Persist writes the whole collection to the store under StorageKey. On
// failure the in-memory state stays authoritative for this session and the
// error tells the caller the change may not survive a restart.
func (m *Manager) Persist() error {
	data, err := json.Marshal(m.items)
	if err != nil {
		return &domain.PersistenceError{Key: StorageKey, Err: err}
	}
	if err := m.store.Set(StorageKey, data); err != nil {
		return &domain.PersistenceError{Key: StorageKey, Err: err}
	}
	return nil
}

// Add validates the draft as a new record and appends it to the collection.
// Returns the stored movie, a *domain.ValidationError when any field rule
// fails (no mutation happens), or a *domain.PersistenceError when the store
// write fails (the movie is still in the collection for this session).
func (m *Manager) Add(d domain.Draft) (*domain.Movie, error) {
	movie := domain.New(d, m.gen.NewID(), m.clock.Now())
	if errs := movie.Validate(m.rulesNow()); len(errs) > 0 {
		return nil, &domain.ValidationError{Errors: errs}
	}

	m.items = append(m.items, movie)
	if err := m.Persist(); err != nil {
		return movie.Clone(), err
	}
	return movie.Clone(), nil
}

// Update replaces the record with the given id wholesale. The replacement
// keeps the original CreatedAt and the original position in the collection.
// Returns *domain.NotFoundError for an unknown id and
// *domain.ValidationError (with no mutation) when the draft is invalid.
func (m *Manager) Update(id string, d domain.Draft) (*domain.Movie, error) {
	idx := m.indexOf(id)
	if idx < 0 {
		return nil, &domain.NotFoundError{ID: id}
	}

	next := domain.New(d, id, m.items[idx].CreatedAt)
	if errs := next.Validate(m.rulesNow()); len(errs) > 0 {
		return nil, &domain.ValidationError{Errors: errs}
	}

	m.items[idx] = next
	if err := m.Persist(); err != nil {
		return next.Clone(), err
	}
	return next.Clone(), nil
}

// Delete removes the record with the given id, preserving the order of the
// remaining records. Returns *domain.NotFoundError for an unknown id.
func (m *Manager) Delete(id string) error {
	idx := m.indexOf(id)
	if idx < 0 {
		return &domain.NotFoundError{ID: id}
	}

	m.items = append(m.items[:idx], m.items[idx+1:]...)
	return m.Persist()
}

// Genres returns the configured genre set.
func (m *Manager) Genres() []string {
	out := make([]string, len(m.rules.genres))
	copy(out, m.rules.genres)
	return out
}

func (m *Manager) indexOf(id string) int {
	for i, movie := range m.items {
		if movie.ID == id {
			return i
		}
	}
	return -1
}
