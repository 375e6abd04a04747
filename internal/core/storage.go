package core

import "errors"

var (
	// ErrNotFound is returned by Storage.Get when the key has never been set.
	ErrNotFound = errors.New("storage: key not found")
	// ErrUnavailable is returned when no durable store could be opened.
	ErrUnavailable = errors.New("storage: unavailable")
)

// Storage is the durable key-value store for user preferences.
// Only the "theme" key is written today.
type Storage interface {
	Get(key string) (string, error)
	Set(key, value string) error
	// Close releases any underlying handle.
	Close() error
}
