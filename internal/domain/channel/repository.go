package channel

import "context"

// Repository persists channel bindings. There is at most one binding per Key.
type Repository interface {
	// Get returns the destination bound to key. ok is false when nothing is bound;
	// absence is not an error.
	Get(ctx context.Context, key Key) (destinationID string, ok bool, err error)
	// Set binds key to destinationID, replacing any previous binding.
	Set(ctx context.Context, key Key, destinationID string) error
}
