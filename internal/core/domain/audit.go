package domain

import "time"

// Audit event types emitted by the obligation run. Observability tooling
// keys on these values, so they are part of the contract.
const (
	EventRecurringProcessed = "recurring_processed"
	EventSalaryCredited     = "salary_credited"
)

// AuditEvent records one side effect of a batch run for later inspection.
type AuditEvent struct {
	EventID   string         `json:"eventID"` // Primary Key (e.g., UUID)
	OwnerID   string         `json:"ownerID"`
	EventType string         `json:"eventType"`
	Details   map[string]any `json:"details"`
	Timestamp time.Time      `json:"timestamp"`
}
