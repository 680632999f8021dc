package models

import "github.com/shopspring/decimal"

// BudgetRule represents an owner's allocation rule row. One row per
// owner; saving replaces the previous rule.
type BudgetRule struct {
	OwnerID        string          `db:"owner_id"`
	NeedsPercent   decimal.Decimal `db:"needs_percent"`
	WantsPercent   decimal.Decimal `db:"wants_percent"`
	SavingsPercent decimal.Decimal `db:"savings_percent"`
	AuditFields
}

// CategoryClassification represents one row of the shared category to
// bucket lookup table.
type CategoryClassification struct {
	Category string `db:"category"`
	Bucket   string `db:"bucket"`
}
