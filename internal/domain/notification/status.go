// internal/domain/notification/status.go
package notification

// CycleStatus describes how a firing cycle ended.
type CycleStatus string

const (
	CycleCompleted     CycleStatus = "COMPLETED"
	CycleNotConfigured CycleStatus = "NOT_CONFIGURED" // no BIRTHDAY_CHANNEL binding yet
	CycleAlreadyRun    CycleStatus = "ALREADY_RUN"    // ledger shows this date was already delivered
)
