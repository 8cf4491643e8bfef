// internal/domain/notification/repository.go
package notification

import "context"

// RunRepository is the ledger of completed firing cycles.
type RunRepository interface {
	// HasRun reports whether a cycle for runDate already completed.
	HasRun(ctx context.Context, runDate string) (bool, error)
	// MarkRun records a completed cycle. Marking an existing date is a no-op.
	MarkRun(ctx context.Context, run *Run) error
}
