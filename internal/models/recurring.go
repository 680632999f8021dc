package models

import "time"

// Frequency mirrors domain.Frequency for DB storage.
type Frequency string

// RecurringRule represents a recurring rule row. PayloadTemplate is the
// serialized entry template stored as JSONB.
type RecurringRule struct {
	RuleID          string    `db:"rule_id"`
	OwnerID         string    `db:"owner_id"`
	PayloadTemplate []byte    `db:"payload_template"`
	Frequency       Frequency `db:"frequency"`
	NextDueOn       time.Time `db:"next_due_on"`
	Active          bool      `db:"active"`
	AuditFields
}
