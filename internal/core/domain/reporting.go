package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// NetWorthReport nets the ledger into a bank balance and combines it with
// realized investment contributions. Min and Max are currently equal:
// divergence is reserved for a future return-rate-sensitive projection
// and intentionally not yet implemented.
type NetWorthReport struct {
	OwnerID       string          `json:"ownerID"`
	BankBalance   decimal.Decimal `json:"bankBalance"`
	InvestedTotal decimal.Decimal `json:"investedTotal"` // Realized contributions to active plans
	Min           decimal.Decimal `json:"min"`
	Max           decimal.Decimal `json:"max"`
}

// TimelinePoint is one month of the net-worth timeline: cumulative cash
// paired with the projected investment value for that point's year.
type TimelinePoint struct {
	Month    time.Time       `json:"month"` // First day of the month
	Cash     decimal.Decimal `json:"cash"`
	Invested decimal.Decimal `json:"invested"`
	NetWorth decimal.Decimal `json:"netWorth"`
}

// ObligationRunSummary counts the outcomes of one materialization batch.
type ObligationRunSummary struct {
	RulesProcessed   int `json:"rulesProcessed"`
	RulesSkipped     int `json:"rulesSkipped"`
	SalariesCredited int `json:"salariesCredited"`
}
