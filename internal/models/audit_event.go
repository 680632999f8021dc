package models

import "time"

// AuditEvent represents one append-only audit log row. Details is the
// event payload stored as JSONB.
type AuditEvent struct {
	EventID   string    `db:"event_id"`
	OwnerID   string    `db:"owner_id"`
	EventType string    `db:"event_type"`
	Details   []byte    `db:"details"`
	Timestamp time.Time `db:"timestamp"`
}
