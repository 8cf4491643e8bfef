package birthday

import "context"

// Repository defines the operations for persisting and retrieving Birthday entries.
type Repository interface {
	// Upsert inserts b unless an entry with the same ExternalID exists; an existing entry is left untouched.
	Upsert(ctx context.Context, b *Birthday) error
	// Delete removes the entry for externalID. Deleting a missing entry is not an error.
	Delete(ctx context.Context, externalID string) error
	// List returns all entries ordered by (month, day), ties in insertion order.
	List(ctx context.Context) ([]*Birthday, error)
}
