package dto

import (
	"github.com/shopspring/decimal"
)

// SetBudgetRuleRequest creates or replaces the owner's allocation rule.
// The percentages must sum to 100; the budgetrule100 validator registered
// in the handlers package enforces it before the core is invoked.
type SetBudgetRuleRequest struct {
	NeedsPercent   decimal.Decimal `json:"needsPercent" binding:"required"`
	WantsPercent   decimal.Decimal `json:"wantsPercent" binding:"required"`
	SavingsPercent decimal.Decimal `json:"savingsPercent" binding:"required,budgetrule100"`
}
