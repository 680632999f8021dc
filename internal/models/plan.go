package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlanStatus mirrors domain.PlanStatus for DB storage.
type PlanStatus string

// InvestmentPlan represents an investment plan row.
// Note: GoalID and EndOn use pointers for nullable columns.
type InvestmentPlan struct {
	PlanID                string          `db:"plan_id"`
	OwnerID               string          `db:"owner_id"`
	GoalID                *string         `db:"goal_id"` // Nullable
	Name                  string          `db:"name"`
	MonthlyContribution   decimal.Decimal `db:"monthly_contribution"`
	ExpectedReturnMin     decimal.Decimal `db:"expected_return_min"`
	ExpectedReturnMax     decimal.Decimal `db:"expected_return_max"`
	AnnualIncreasePercent decimal.Decimal `db:"annual_increase_percent"`
	Compounding           string          `db:"compounding"`
	StartOn               time.Time       `db:"start_on"`
	EndOn                 *time.Time      `db:"end_on"` // Nullable
	Status                PlanStatus      `db:"status"`
	AuditFields
}
