package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryKind mirrors domain.EntryKind for DB storage.
type EntryKind string

// LedgerEntry represents a ledger entry row.
// Note: RecurringRuleID and PlanID use pointers for nullable foreign keys.
type LedgerEntry struct {
	EntryID         string          `db:"entry_id"`
	OwnerID         string          `db:"owner_id"`
	Amount          decimal.Decimal `db:"amount"`
	Kind            EntryKind       `db:"kind"`
	Category        string          `db:"category"`
	OccurredOn      time.Time       `db:"occurred_on"`
	Notes           string          `db:"notes"`
	RecurringRuleID *string         `db:"recurring_rule_id"` // Nullable
	PlanID          *string         `db:"plan_id"`           // Nullable
	AuditFields
}
