// Package finmath implements the systematic-investment-plan arithmetic:
// forward projection of a monthly-compounding contribution stream and the
// inverse problem of solving the contribution required to hit a target.
package finmath

import (
	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)
	twelve  = decimal.NewFromInt(12)
	one     = decimal.NewFromInt(1)
)

// ProjectionPoint is one month's sample of a contribution stream.
type ProjectionPoint struct {
	Month    int             `json:"month"` // 1-indexed
	Invested decimal.Decimal `json:"invested"`
	Value    decimal.Decimal `json:"value"`
	Interest decimal.Decimal `json:"interest"`
}

// MonthlyRate derives the per-month growth rate from an annual return
// percentage. Contributions are monthly, so the rate is always
// annual/100/12; the compounding-frequency field carried on investment
// plans is descriptive only and does not change the arithmetic. Keeping
// the derivation here means a future compounding-aware model is a
// one-function change.
func MonthlyRate(annualReturnPercent decimal.Decimal) decimal.Decimal {
	return annualReturnPercent.Div(hundred).Div(twelve)
}

// Project simulates a monthly contribution stream for the given number of
// months and returns one sample per month. The contribution grows by
// annualIncreasePercent at every 12-month boundary after the first year
// (months 13, 25, ...). Within a month the contribution is added first
// and growth applied afterwards, so every contribution compounds at least
// once.
func Project(monthlyContribution, monthlyRate decimal.Decimal, months int, annualIncreasePercent decimal.Decimal) []ProjectionPoint {
	if months <= 0 {
		return nil
	}

	points := make([]ProjectionPoint, 0, months)
	contribution := monthlyContribution
	growthFactor := one.Add(monthlyRate)
	increaseFactor := one.Add(annualIncreasePercent.Div(hundred))
	invested := decimal.Zero
	value := decimal.Zero

	for month := 1; month <= months; month++ {
		if month > 1 && (month-1)%12 == 0 {
			contribution = contribution.Mul(increaseFactor)
		}
		invested = invested.Add(contribution)
		value = value.Add(contribution).Mul(growthFactor)
		points = append(points, ProjectionPoint{
			Month:    month,
			Invested: invested,
			Value:    value,
			Interest: value.Sub(invested),
		})
	}
	return points
}

// FinalValue runs the same accumulation as Project seeded with an amount
// already invested, returning the final invested total and value. Goal
// evaluation uses this to project a goal's linked plans forward from
// their realized contributions.
func FinalValue(seed, monthlyContribution, monthlyRate decimal.Decimal, months int, annualIncreasePercent decimal.Decimal) (invested, value decimal.Decimal) {
	invested = seed
	value = seed
	if months <= 0 {
		return invested, value
	}

	contribution := monthlyContribution
	growthFactor := one.Add(monthlyRate)
	increaseFactor := one.Add(annualIncreasePercent.Div(hundred))

	for month := 1; month <= months; month++ {
		if month > 1 && (month-1)%12 == 0 {
			contribution = contribution.Mul(increaseFactor)
		}
		invested = invested.Add(contribution)
		value = value.Add(contribution).Mul(growthFactor)
	}
	return invested, value
}

// SolveRequiredMonthlyContribution inverts a target amount into the
// monthly contribution needed to reach it over the given horizon. The
// future-value factor sums the compounded growth of each month's
// contribution:
//
//	F = sum over m in [0, months) of (1+incRate)^floor(m/12) * (1+r)^(months-1-m)
//
// A non-positive horizon returns zero: the target date has passed and the
// figure is displayed inline, so "no longer applicable" must be a benign
// number rather than an error. A degenerate zero factor falls back to
// straight division with the horizon floored at one month.
func SolveRequiredMonthlyContribution(targetAmount decimal.Decimal, monthsRemaining int, annualReturnPercent, annualIncreasePercent decimal.Decimal) decimal.Decimal {
	if monthsRemaining <= 0 {
		return decimal.Zero
	}

	growthFactor := one.Add(MonthlyRate(annualReturnPercent))
	increaseFactor := one.Add(annualIncreasePercent.Div(hundred))

	factor := decimal.Zero
	yearGrowth := one
	compounded := growthFactor.Pow(decimal.NewFromInt(int64(monthsRemaining - 1)))
	for month := 0; month < monthsRemaining; month++ {
		if month > 0 && month%12 == 0 {
			yearGrowth = yearGrowth.Mul(increaseFactor)
		}
		factor = factor.Add(yearGrowth.Mul(compounded))
		if !growthFactor.IsZero() {
			compounded = compounded.Div(growthFactor)
		}
	}

	if factor.IsZero() {
		months := monthsRemaining
		if months < 1 {
			months = 1
		}
		return targetAmount.Div(decimal.NewFromInt(int64(months)))
	}
	return targetAmount.Div(factor)
}
