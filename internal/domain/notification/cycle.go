// internal/domain/notification/cycle.go
package notification

import "time"

// Run records that the firing cycle for a calendar date handed its payloads to the Notifier.
// Corresponds to the 'notification_runs' table.
type Run struct {
	RunDate string // YYYY-MM-DD in the configured timezone
	RunID   string
	FiredAt time.Time
}

// RunDateLayout is the layout of Run.RunDate.
const RunDateLayout = "2006-01-02"
