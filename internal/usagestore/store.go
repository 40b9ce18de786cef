// Package usagestore persists the set of used recommendation keys
// between engine sessions. The analytics engine never performs I/O
// itself; the caller hydrates the engine from a Store before analysis
// and writes the engine's keys back afterwards.
package usagestore

import "context"

// Store persists used-recommendation keys across sessions.
type Store interface {
	// Load returns all persisted keys.
	Load(ctx context.Context) ([]string, error)

	// Save replaces the persisted key set.
	Save(ctx context.Context, keys []string) error

	// Close releases any underlying resources.
	Close() error
}
