package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryKind indicates the direction of a ledger entry. Amounts are always
// positive; the kind carries the sign.
type EntryKind string

const (
	EntryIncome     EntryKind = "INCOME"
	EntryExpense    EntryKind = "EXPENSE"
	EntryInvestment EntryKind = "INVESTMENT"
	EntryTransfer   EntryKind = "TRANSFER"
)

// SalaryCategory is the reserved category used by the salary-crediting
// path of the obligation run; its month-window existence check keys on it.
const SalaryCategory = "Salary"

// LedgerEntry represents a single money movement in an owner's ledger.
type LedgerEntry struct {
	EntryID         string          `json:"entryID"`         // Primary Key (e.g., UUID)
	OwnerID         string          `json:"ownerID"`         // FK -> owner (Not Null)
	Amount          decimal.Decimal `json:"amount"`          // Positive value; direction carried by Kind
	Kind            EntryKind       `json:"kind"`            // INCOME, EXPENSE, INVESTMENT or TRANSFER
	Category        string          `json:"category"`        // Free-form category label
	OccurredOn      time.Time       `json:"occurredOn"`      // Date the movement happened
	Notes           string          `json:"notes"`           // Nullable
	RecurringRuleID *string         `json:"recurringRuleID"` // Set when materialized from a recurring rule
	PlanID          *string         `json:"planID"`          // Set when the entry is an investment-plan contribution
	AuditFields
}
