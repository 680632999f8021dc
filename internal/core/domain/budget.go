package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// BucketKind is one of the three allocation buckets of a
// percentage-of-income budget rule.
type BucketKind string

const (
	BucketNeeds   BucketKind = "NEEDS"
	BucketWants   BucketKind = "WANTS"
	BucketSavings BucketKind = "SAVINGS"
)

// budgetSumTolerance absorbs representation noise when checking that the
// three percentages sum to 100.
var budgetSumTolerance = decimal.RequireFromString("0.01")

// BudgetRule is a percentage-of-income allocation across the three
// buckets. Invariant: the percentages sum to 100 within tolerance.
type BudgetRule struct {
	OwnerID        string          `json:"ownerID"`
	NeedsPercent   decimal.Decimal `json:"needsPercent"`
	WantsPercent   decimal.Decimal `json:"wantsPercent"`
	SavingsPercent decimal.Decimal `json:"savingsPercent"`
	AuditFields
}

// DefaultBudgetRule is the 50/30/20 split applied when an owner has not
// saved a rule of their own.
func DefaultBudgetRule(ownerID string) BudgetRule {
	return BudgetRule{
		OwnerID:        ownerID,
		NeedsPercent:   decimal.NewFromInt(50),
		WantsPercent:   decimal.NewFromInt(30),
		SavingsPercent: decimal.NewFromInt(20),
	}
}

// Validate checks the sum-to-100 invariant.
func (r BudgetRule) Validate() error {
	sum := r.NeedsPercent.Add(r.WantsPercent).Add(r.SavingsPercent)
	if sum.Sub(decimal.NewFromInt(100)).Abs().GreaterThan(budgetSumTolerance) {
		return fmt.Errorf("budget percentages must sum to 100, got %s", sum)
	}
	return nil
}

// Percent returns the rule's percentage for a bucket.
func (r BudgetRule) Percent(bucket BucketKind) decimal.Decimal {
	switch bucket {
	case BucketNeeds:
		return r.NeedsPercent
	case BucketWants:
		return r.WantsPercent
	case BucketSavings:
		return r.SavingsPercent
	default:
		return decimal.Zero
	}
}

// CategoryClassification maps expense categories to budget buckets. The
// table is maintained outside the core; categories absent from it are
// treated as discretionary (wants).
type CategoryClassification map[string]BucketKind

// BucketFor resolves a category to its bucket, defaulting to wants for
// unclassified categories.
func (c CategoryClassification) BucketFor(category string) BucketKind {
	if bucket, ok := c[category]; ok {
		return bucket
	}
	return BucketWants
}

// BucketReport is one bucket's slice of a monthly budget summary.
type BucketReport struct {
	Budget     decimal.Decimal `json:"budget"`     // Bucket percent of income
	Actual     decimal.Decimal `json:"actual"`     // Spend classified into the bucket
	Percentage decimal.Decimal `json:"percentage"` // Actual as percent of income, 0 when income is 0
	Remaining  decimal.Decimal `json:"remaining"`  // Budget minus actual
}

// BudgetSummary is the per-bucket comparison of actual spend against the
// owner's budget rule for one month.
type BudgetSummary struct {
	OwnerID     string                      `json:"ownerID"`
	Month       string                      `json:"month"` // YYYY-MM
	IncomeTotal decimal.Decimal             `json:"incomeTotal"`
	Buckets     map[BucketKind]BucketReport `json:"buckets"`
}
