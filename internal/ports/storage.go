// Package ports defines the interfaces (driven and driving ports)
// for the Pomodoro application following hexagonal architecture principles.
// These interfaces define the contracts between the domain layer and
// external infrastructure.
package ports

import (
	"context"
)

// KeyValueStore defines the interface for string persistence by key.
// This is a driven port (implemented by adapters).
type KeyValueStore interface {
	// GetItem retrieves the value stored under key.
	// The boolean is false when the key has never been written.
	GetItem(ctx context.Context, key string) (string, bool, error)

	// SetItem stores value under key, replacing any previous value.
	SetItem(ctx context.Context, key, value string) error

	// RemoveItem deletes key. Removing a missing key is not an error.
	RemoveItem(ctx context.Context, key string) error

	// Close releases the underlying storage.
	Close() error
}
