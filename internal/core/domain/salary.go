package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalaryRecord is one row of an owner's append-only salary history. The
// "current" salary is the most recent record by EffectiveOn; the day of
// month of EffectiveOn anchors the monthly crediting cadence.
type SalaryRecord struct {
	SalaryID    string          `json:"salaryID"` // Primary Key (e.g., UUID)
	OwnerID     string          `json:"ownerID"`
	Amount      decimal.Decimal `json:"amount"`
	EffectiveOn time.Time       `json:"effectiveOn"`
	AuditFields
}
