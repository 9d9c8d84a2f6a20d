// Package credstore persists the bearer credential between process runs.
//
// Exactly one credential is active at a time. Absence of a stored
// credential means logged out; Load reports that case with ErrNoCredential
// so callers can distinguish "logged out" from an unreadable store.
package credstore

import "errors"

// ErrNoCredential is returned by Load when nothing is persisted.
var ErrNoCredential = errors.New("no stored credential")

// Store is the durable home of the active credential.
type Store interface {
	// Load returns the persisted credential, or ErrNoCredential.
	Load() (string, error)

	// Save replaces the persisted credential.
	Save(credential string) error

	// Clear removes the persisted credential. Clearing an empty store
	// is not an error.
	Clear() error
}
