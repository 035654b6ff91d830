// Package store provides the byte-oriented key-value persistence layer the
// catalog mirrors itself into.
package store

// Store is the persistence contract. Get reports absence with ok=false
// rather than an error; Set and Remove report write failures (for example a
// capacity limit) which the caller must surface.
//
// The catalog is single-writer and synchronous, so implementations are not
// required to be safe for concurrent use.
type Store interface {
	Get(key string) (value []byte, ok bool)
	Set(key string, value []byte) error
	Remove(key string) error
}
