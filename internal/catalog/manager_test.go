package catalog_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"movie-catalog/internal/catalog"
	"movie-catalog/internal/domain"
	"movie-catalog/internal/store"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seqGen hands out deterministic ids for testing.
type seqGen struct {
	n int
}

func (g *seqGen) NewID() string {
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

// failingStore wraps a Store and fails writes on demand.
type failingStore struct {
	store.Store
	fail bool
}

func (f *failingStore) Set(key string, value []byte) error {
	if f.fail {
		return errors.New("quota exceeded")
	}
	return f.Store.Set(key, value)
}

var baseTime = time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

func draft(title string) domain.Draft {
	return domain.Draft{
		Title:       title,
		Genre:       "sci-fi",
		Director:    "Ridley Scott",
		Year:        1982,
		Rating:      8.1,
		Description: "A blade runner must pursue and terminate four replicants.",
		ImageURL:    "https://example.com/posters/" + title + ".jpg",
	}
}

// seedStore pre-populates a memory store so the manager loads instead of
// seeding defaults.
func seedStore(t *testing.T, s store.Store, movies ...*domain.Movie) {
	t.Helper()
	data, err := json.Marshal(movies)
	require.NoError(t, err)
	require.NoError(t, s.Set(catalog.StorageKey, data))
}

func newManager(s store.Store) (*catalog.Manager, *domain.MockClock) {
	clock := domain.NewMockClock(baseTime)
	m := catalog.New(s, catalog.Options{
		Generator: &seqGen{},
		Clock:     clock,
		Logger:    zerolog.Nop(),
	})
	return m, clock
}

func TestNew_SeedsWhenStoreEmpty(t *testing.T) {
	s := store.NewMemory()
	m, _ := newManager(s)

	all := m.All()
	require.NotEmpty(t, all, "manager must never start with an empty collection")

	// The seed set was persisted immediately
	data, ok := s.Get(catalog.StorageKey)
	require.True(t, ok)
	var stored []*domain.Movie
	require.NoError(t, json.Unmarshal(data, &stored))
	assert.Equal(t, all, stored)
}

func TestNew_SeedsWhenStoredCollectionEmpty(t *testing.T) {
	s := store.NewMemory()
	require.NoError(t, s.Set(catalog.StorageKey, []byte(`[]`)))

	m, _ := newManager(s)
	assert.NotEmpty(t, m.All())
}

func TestNew_SeedsWhenStoreCorrupt(t *testing.T) {
	s := store.NewMemory()
	require.NoError(t, s.Set(catalog.StorageKey, []byte(`{not json`)))

	m, _ := newManager(s)
	assert.NotEmpty(t, m.All())

	// The corrupt payload was replaced by a readable one
	data, ok := s.Get(catalog.StorageKey)
	require.True(t, ok)
	var stored []*domain.Movie
	assert.NoError(t, json.Unmarshal(data, &stored))
}

func TestNew_SeedsWhenStoredRecordInvalid(t *testing.T) {
	s := store.NewMemory()
	bad := domain.New(draft("Alien"), "m1", baseTime)
	bad.Rating = 42
	seedStore(t, s, bad)

	m, _ := newManager(s)

	_, err := m.ByID("m1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NotEmpty(t, m.All())
}

func TestNew_LoadsStoredCollection(t *testing.T) {
	s := store.NewMemory()
	created := baseTime.Add(-72 * time.Hour)
	first := domain.New(draft("Alien"), "m1", created)
	second := domain.New(draft("Dune"), "m2", created.Add(time.Hour))
	seedStore(t, s, first, second)

	m, _ := newManager(s)

	all := m.All()
	require.Len(t, all, 2)
	assert.Equal(t, "m1", all[0].ID)
	assert.Equal(t, "m2", all[1].ID)
	// Stored creation timestamps are preserved on load
	assert.Equal(t, created, all[0].CreatedAt)
}

func TestAdd_AppendsValidatesAndPersists(t *testing.T) {
	s := store.NewMemory()
	seedStore(t, s, domain.New(draft("Alien"), "m1", baseTime))
	m, clock := newManager(s)
	clock.Advance(time.Hour)

	added, err := m.Add(draft("Dune"))
	require.NoError(t, err)

	assert.Equal(t, "id-1", added.ID)
	assert.Equal(t, clock.Now(), added.CreatedAt)

	got, err := m.ByID(added.ID)
	require.NoError(t, err)
	assert.Equal(t, added, got)

	// New record is the last element
	all := m.All()
	require.Len(t, all, 2)
	assert.Equal(t, added.ID, all[1].ID)

	// And it reached the store
	data, _ := s.Get(catalog.StorageKey)
	var stored []*domain.Movie
	require.NoError(t, json.Unmarshal(data, &stored))
	require.Len(t, stored, 2)
	assert.Equal(t, "Dune", stored[1].Title)
}

func TestAdd_InvalidDraftRejectedWithoutMutation(t *testing.T) {
	s := store.NewMemory()
	seedStore(t, s, domain.New(draft("Alien"), "m1", baseTime))
	m, _ := newManager(s)
	before, _ := s.Get(catalog.StorageKey)

	bad := draft("Dune")
	bad.Title = ""
	bad.Rating = 99

	_, err := m.Add(bad)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.True(t, errors.Is(err, domain.ErrInvalidRecord))
	require.Len(t, verr.Errors, 2)
	assert.Contains(t, verr.Errors[0], "title")
	assert.Contains(t, verr.Errors[1], "rating")

	assert.Len(t, m.All(), 1)
	after, _ := s.Get(catalog.StorageKey)
	assert.Equal(t, before, after)
}

func TestAdd_ValidatesAgainstConfiguredGenres(t *testing.T) {
	s := store.NewMemory()
	seedStore(t, s, domain.New(draft("Alien"), "m1", baseTime))
	m := catalog.New(s, catalog.Options{
		Generator: &seqGen{},
		Clock:     domain.NewMockClock(baseTime),
		Genres:    []string{"western"},
		Logger:    zerolog.Nop(),
	})

	d := draft("Dune")
	_, err := m.Add(d)
	assert.ErrorIs(t, err, domain.ErrInvalidRecord)

	d.Genre = "western"
	_, err = m.Add(d)
	assert.NoError(t, err)
}

func TestUpdate_ReplacesInPlacePreservingCreatedAt(t *testing.T) {
	s := store.NewMemory()
	created := baseTime.Add(-48 * time.Hour)
	seedStore(t, s,
		domain.New(draft("Alien"), "m1", created),
		domain.New(draft("Dune"), "m2", created.Add(time.Hour)),
		domain.New(draft("Solaris"), "m3", created.Add(2*time.Hour)),
	)
	m, clock := newManager(s)
	clock.Advance(24 * time.Hour)

	next := draft("Dune: Part Two")
	next.Year = 2024
	updated, err := m.Update("m2", next)
	require.NoError(t, err)

	assert.Equal(t, "m2", updated.ID)
	assert.Equal(t, "Dune: Part Two", updated.Title)
	// Creation timestamp survives the update
	assert.Equal(t, created.Add(time.Hour), updated.CreatedAt)

	// Position is stable: not a remove+append
	all := m.All()
	require.Len(t, all, 3)
	assert.Equal(t, []string{"m1", "m2", "m3"}, []string{all[0].ID, all[1].ID, all[2].ID})
	assert.Equal(t, "Dune: Part Two", all[1].Title)
}

func TestUpdate_UnknownID(t *testing.T) {
	s := store.NewMemory()
	seedStore(t, s, domain.New(draft("Alien"), "m1", baseTime))
	m, _ := newManager(s)

	_, err := m.Update("missing", draft("Dune"))

	var nferr *domain.NotFoundError
	require.ErrorAs(t, err, &nferr)
	assert.Equal(t, "missing", nferr.ID)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestUpdate_InvalidDraftLeavesRecordUntouched(t *testing.T) {
	s := store.NewMemory()
	seedStore(t, s, domain.New(draft("Alien"), "m1", baseTime))
	m, _ := newManager(s)

	bad := draft("Dune")
	bad.Description = "short"

	_, err := m.Update("m1", bad)
	assert.ErrorIs(t, err, domain.ErrInvalidRecord)

	got, err := m.ByID("m1")
	require.NoError(t, err)
	assert.Equal(t, "Alien", got.Title)
}

func TestDelete_RemovesPreservingOrder(t *testing.T) {
	s := store.NewMemory()
	seedStore(t, s,
		domain.New(draft("Alien"), "m1", baseTime),
		domain.New(draft("Dune"), "m2", baseTime),
		domain.New(draft("Solaris"), "m3", baseTime),
	)
	m, _ := newManager(s)

	require.NoError(t, m.Delete("m2"))

	all := m.All()
	require.Len(t, all, 2)
	assert.Equal(t, "m1", all[0].ID)
	assert.Equal(t, "m3", all[1].ID)

	_, err := m.ByID("m2")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Deletion is persisted
	data, _ := s.Get(catalog.StorageKey)
	var stored []*domain.Movie
	require.NoError(t, json.Unmarshal(data, &stored))
	assert.Len(t, stored, 2)
}

func TestDelete_UnknownID(t *testing.T) {
	s := store.NewMemory()
	seedStore(t, s, domain.New(draft("Alien"), "m1", baseTime))
	m, _ := newManager(s)

	err := m.Delete("missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Len(t, m.All(), 1)
}

func TestMutation_StoreWriteFailureKeepsMemoryAuthoritative(t *testing.T) {
	inner := store.NewMemory()
	seedStore(t, inner, domain.New(draft("Alien"), "m1", baseTime))
	fs := &failingStore{Store: inner}
	m, _ := newManager(fs)

	fs.fail = true
	added, err := m.Add(draft("Dune"))

	// The caller is told the write failed...
	var perr *domain.PersistenceError
	require.ErrorAs(t, err, &perr)
	assert.True(t, errors.Is(err, domain.ErrPersistence))
	assert.Equal(t, catalog.StorageKey, perr.Key)

	// ...but the in-memory collection kept the record
	require.NotNil(t, added)
	got, err := m.ByID(added.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dune", got.Title)
}

func TestAll_ReturnsDefensiveCopy(t *testing.T) {
	s := store.NewMemory()
	seedStore(t, s, domain.New(draft("Alien"), "m1", baseTime))
	m, _ := newManager(s)

	all := m.All()
	all[0].Title = "Tampered"

	got, err := m.ByID("m1")
	require.NoError(t, err)
	assert.Equal(t, "Alien", got.Title)
}

func TestByID_ReturnsCopy(t *testing.T) {
	s := store.NewMemory()
	seedStore(t, s, domain.New(draft("Alien"), "m1", baseTime))
	m, _ := newManager(s)

	first, err := m.ByID("m1")
	require.NoError(t, err)
	first.Rating = 1

	second, err := m.ByID("m1")
	require.NoError(t, err)
	assert.Equal(t, 8.1, second.Rating)
}

func TestReload_SeesPersistedMutations(t *testing.T) {
	s := store.NewMemory()
	seedStore(t, s, domain.New(draft("Alien"), "m1", baseTime))
	m, _ := newManager(s)

	added, err := m.Add(draft("Dune"))
	require.NoError(t, err)

	// A second manager over the same store sees the same collection
	reloaded, _ := newManager(s)
	got, err := reloaded.ByID(added.ID)
	require.NoError(t, err)
	assert.Equal(t, added, got)
}
