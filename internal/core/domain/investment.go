package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlanStatus is the lifecycle state of an investment plan.
type PlanStatus string

const (
	PlanActive   PlanStatus = "ACTIVE"
	PlanPaused   PlanStatus = "PAUSED"
	PlanArchived PlanStatus = "ARCHIVED"
)

// CompoundingFrequency describes how a plan's product nominally
// compounds. It is informational only: projection arithmetic always uses
// a monthly rate because contributions are monthly (see finmath.MonthlyRate).
type CompoundingFrequency string

const (
	CompoundingMonthly   CompoundingFrequency = "MONTHLY"
	CompoundingQuarterly CompoundingFrequency = "QUARTERLY"
	CompoundingYearly    CompoundingFrequency = "YEARLY"
)

// InvestmentPlan is a systematic investment plan: a monthly contribution,
// optionally growing every year, into a product with an expected annual
// return range. Invariant, enforced at the API boundary:
// ExpectedReturnMax >= ExpectedReturnMin.
type InvestmentPlan struct {
	PlanID                string               `json:"planID"` // Primary Key (e.g., UUID)
	OwnerID               string               `json:"ownerID"`
	GoalID                *string              `json:"goalID"` // Optional link to a savings goal
	Name                  string               `json:"name"`
	MonthlyContribution   decimal.Decimal      `json:"monthlyContribution"`
	ExpectedReturnMin     decimal.Decimal      `json:"expectedReturnMin"` // Annual percent
	ExpectedReturnMax     decimal.Decimal      `json:"expectedReturnMax"` // Annual percent
	AnnualIncreasePercent decimal.Decimal      `json:"annualIncreasePercent"`
	Compounding           CompoundingFrequency `json:"compounding"`
	StartOn               time.Time            `json:"startOn"`
	EndOn                 *time.Time           `json:"endOn"`
	Status                PlanStatus           `json:"status"`
	AuditFields
}

// MidpointReturn is the midpoint of the plan's expected annual return
// range, used where a single aggregate figure is needed.
func (p InvestmentPlan) MidpointReturn() decimal.Decimal {
	return p.ExpectedReturnMin.Add(p.ExpectedReturnMax).Div(decimal.NewFromInt(2))
}

// YearlyProjection is one year-end row of a plan projection reported as a
// min/max range over the plan's expected return bounds.
type YearlyProjection struct {
	Year        int             `json:"year"` // 1-indexed projection year
	Invested    decimal.Decimal `json:"invested"`
	ValueMin    decimal.Decimal `json:"valueMin"`
	ValueMax    decimal.Decimal `json:"valueMax"`
	InterestMin decimal.Decimal `json:"interestMin"`
	InterestMax decimal.Decimal `json:"interestMax"`
}

// PortfolioProjection is one year-end row of the combined projection of
// all active plans, computed at each plan's midpoint return.
type PortfolioProjection struct {
	Year     int             `json:"year"`
	Invested decimal.Decimal `json:"invested"`
	Value    decimal.Decimal `json:"value"`
	Interest decimal.Decimal `json:"interest"`
}
