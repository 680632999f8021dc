package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalaryRecord represents one row of an owner's salary history.
type SalaryRecord struct {
	SalaryID    string          `db:"salary_id"`
	OwnerID     string          `db:"owner_id"`
	Amount      decimal.Decimal `db:"amount"`
	EffectiveOn time.Time       `db:"effective_on"`
	AuditFields
}
