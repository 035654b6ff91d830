// Package identifier provides record identifier generation strategies.
package identifier

import (
	"crypto/rand"
	"math/big"
	"strconv"

	"github.com/google/uuid"

	"movie-catalog/internal/domain"
)

// Generator produces unique record identifiers. Uniqueness is probabilistic:
// ids combine a time component with random data, and collisions are not
// checked against the collection.
type Generator interface {
	NewID() string
}

// Alphabet excludes ambiguous characters: 0, O, I, l, 1
const alphabet = "23456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"
const randomSuffixLen = 6

// TimeRandom generates ids of the form <millis-base36><random suffix>. The
// leading time component keeps ids roughly creation-ordered.
type TimeRandom struct {
	clock domain.Clock
}

// NewTimeRandom creates a TimeRandom generator reading time from clock.
func NewTimeRandom(clock domain.Clock) *TimeRandom {
	return &TimeRandom{clock: clock}
}

// NewID returns a fresh identifier.
func (g *TimeRandom) NewID() string {
	ts := strconv.FormatInt(g.clock.Now().UnixMilli(), 36)

	b := make([]byte, randomSuffixLen)
	alphabetLen := big.NewInt(int64(len(alphabet)))
	for i := range b {
		n, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			// Should never happen with crypto/rand
			panic("crypto/rand failed: " + err.Error())
		}
		b[i] = alphabet[n.Int64()]
	}

	return ts + string(b)
}

// UUID generates time-ordered UUIDv7 identifiers.
type UUID struct{}

// NewID returns a fresh UUIDv7 string.
func (UUID) NewID() string {
	return uuid.Must(uuid.NewV7()).String()
}
