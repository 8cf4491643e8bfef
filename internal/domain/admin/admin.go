package admin

import "context"

// Admin is a registered administrator. Existence of a row for an external user ID
// is itself the authorization predicate.
type Admin struct {
	ExternalUserID string
}

// Repository defines lookups and maintenance for administrator rows.
type Repository interface {
	// GetAdmins returns the (possibly empty) set of rows matching externalUserID.
	GetAdmins(ctx context.Context, externalUserID string) ([]*Admin, error)
	// Add registers externalUserID; registering an existing admin is a no-op.
	Add(ctx context.Context, externalUserID string) error
	Remove(ctx context.Context, externalUserID string) error
}
