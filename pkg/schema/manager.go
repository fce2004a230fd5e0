package schema

import "context"

// Manager creates the pantry tables on a connected database.
type Manager interface {
	// Create creates missing tables and columns. Existing data is kept.
	Create(ctx context.Context) error

	// Missing returns the names of pantry tables absent from the database.
	Missing(ctx context.Context) ([]string, error)
}
