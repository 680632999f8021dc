package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// GoalStatus mirrors domain.GoalStatus for DB storage.
type GoalStatus string

// Goal represents a savings goal row.
type Goal struct {
	GoalID       string          `db:"goal_id"`
	OwnerID      string          `db:"owner_id"`
	Name         string          `db:"name"`
	TargetAmount decimal.Decimal `db:"target_amount"`
	TargetOn     time.Time       `db:"target_on"`
	Status       GoalStatus      `db:"status"`
	AuditFields
}
