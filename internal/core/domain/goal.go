package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// GoalStatus is the derived progress classification of a savings goal.
// It is overwritten on every evaluation, never hand-maintained.
type GoalStatus string

const (
	GoalOnTrack   GoalStatus = "ON_TRACK"
	GoalBehind    GoalStatus = "BEHIND"
	GoalCompleted GoalStatus = "COMPLETED"
)

// Goal is a savings target with a deadline.
type Goal struct {
	GoalID       string          `json:"goalID"` // Primary Key (e.g., UUID)
	OwnerID      string          `json:"ownerID"`
	Name         string          `json:"name"`
	TargetAmount decimal.Decimal `json:"targetAmount"`
	TargetOn     time.Time       `json:"targetOn"`
	Status       GoalStatus      `json:"status"`
	AuditFields
}

// GoalProgress is the result of evaluating a goal against its linked
// plans' contribution stream and the remaining horizon.
type GoalProgress struct {
	GoalID              string          `json:"goalID"`
	MonthsRemaining     int             `json:"monthsRemaining"`
	InvestedSoFar       decimal.Decimal `json:"investedSoFar"`
	MonthlyContribution decimal.Decimal `json:"monthlyContribution"`
	ProjectedValue      decimal.Decimal `json:"projectedValue"`
	ProgressPercent     decimal.Decimal `json:"progressPercent"`
	RequiredSIP         decimal.Decimal `json:"requiredSIP"`
	Status              GoalStatus      `json:"status"`
}
