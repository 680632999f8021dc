package finmath_test

import (
	"testing"

	"github.com/nkhandel/personal_finance_app/internal/utils/finmath"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestMonthlyRate(t *testing.T) {
	assert.True(t, finmath.MonthlyRate(dec("12")).Equal(dec("0.01")))
	assert.True(t, finmath.MonthlyRate(dec("0")).Equal(decimal.Zero))
}

func TestProjectTwoMonths(t *testing.T) {
	points := finmath.Project(dec("1000"), dec("0.01"), 2, decimal.Zero)
	require.Len(t, points, 2)

	assert.True(t, points[0].Invested.Equal(dec("1000")), "month 1 invested: %s", points[0].Invested)
	assert.True(t, points[0].Value.Equal(dec("1010")), "month 1 value: %s", points[0].Value)

	assert.True(t, points[1].Invested.Equal(dec("2000")), "month 2 invested: %s", points[1].Invested)
	assert.True(t, points[1].Value.Equal(dec("2030.10")), "month 2 value: %s", points[1].Value)
	assert.True(t, points[1].Interest.Equal(dec("30.10")), "month 2 interest: %s", points[1].Interest)
}

func TestProjectZeroRateTracksInvested(t *testing.T) {
	points := finmath.Project(dec("500"), decimal.Zero, 24, decimal.Zero)
	require.Len(t, points, 24)
	for _, p := range points {
		assert.True(t, p.Value.Equal(p.Invested), "month %d", p.Month)
		assert.True(t, p.Interest.IsZero(), "month %d", p.Month)
	}
	assert.True(t, points[23].Invested.Equal(dec("12000")))
}

func TestProjectAppliesAnnualIncreaseAtYearBoundary(t *testing.T) {
	points := finmath.Project(dec("1000"), decimal.Zero, 13, dec("10"))
	require.Len(t, points, 13)

	// Months 1-12 contribute 1000, month 13 contributes 1100.
	assert.True(t, points[11].Invested.Equal(dec("12000")), "month 12 invested: %s", points[11].Invested)
	assert.True(t, points[12].Invested.Equal(dec("13100")), "month 13 invested: %s", points[12].Invested)
}

func TestProjectNonPositiveMonths(t *testing.T) {
	assert.Nil(t, finmath.Project(dec("1000"), dec("0.01"), 0, decimal.Zero))
	assert.Nil(t, finmath.Project(dec("1000"), dec("0.01"), -3, decimal.Zero))
}

func TestFinalValueSeedGrowsWithStream(t *testing.T) {
	invested, value := finmath.FinalValue(dec("5000"), dec("1000"), dec("0.01"), 2, decimal.Zero)
	assert.True(t, invested.Equal(dec("7000")), "invested: %s", invested)
	// ((5000+1000)*1.01 + 1000) * 1.01 = 7130.60
	assert.True(t, value.Equal(dec("7130.60")), "value: %s", value)
}

func TestFinalValueNonPositiveMonthsReturnsSeed(t *testing.T) {
	invested, value := finmath.FinalValue(dec("5000"), dec("1000"), dec("0.01"), 0, decimal.Zero)
	assert.True(t, invested.Equal(dec("5000")))
	assert.True(t, value.Equal(dec("5000")))
}

func TestSolveRequiredMonthlyContribution(t *testing.T) {
	required := finmath.SolveRequiredMonthlyContribution(dec("100000"), 12, dec("12"), decimal.Zero)

	// Future-value factor for 12 months at 1%/month is (1.01^12-1)/0.01.
	factor := dec("100000").Div(required)
	assert.InDelta(t, 12.6825, factor.InexactFloat64(), 0.0001)
	assert.InDelta(t, 7884.88, required.InexactFloat64(), 0.01)
}

func TestSolveRecoversTarget(t *testing.T) {
	testCases := []struct {
		name             string
		target           string
		months           int
		annualReturnPct  string
		annualIncreasePct string
	}{
		{"one year at 12%", "100000", 12, "12", "0"},
		{"five years at 8%", "2500000", 60, "8", "0"},
		{"ten years with step-up", "10000000", 120, "10", "5"},
		{"single month", "5000", 1, "12", "0"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			target := dec(tc.target)
			required := finmath.SolveRequiredMonthlyContribution(target, tc.months, dec(tc.annualReturnPct), dec(tc.annualIncreasePct))

			// Accumulate the solved contribution with the solver's
			// end-of-month crediting convention and check it lands on
			// the target within 0.01%.
			rate := finmath.MonthlyRate(dec(tc.annualReturnPct))
			growth := decimal.NewFromInt(1).Add(rate)
			increase := decimal.NewFromInt(1).Add(dec(tc.annualIncreasePct).Div(decimal.NewFromInt(100)))
			contribution := required
			value := decimal.Zero
			for month := 0; month < tc.months; month++ {
				if month > 0 && month%12 == 0 {
					contribution = contribution.Mul(increase)
				}
				value = value.Mul(growth).Add(contribution)
			}

			tolerance := target.Mul(dec("0.0001"))
			assert.True(t, value.Sub(target).Abs().LessThanOrEqual(tolerance),
				"value %s vs target %s", value, target)
		})
	}
}

func TestSolvePastTargetDateReturnsZero(t *testing.T) {
	assert.True(t, finmath.SolveRequiredMonthlyContribution(dec("100000"), 0, dec("12"), decimal.Zero).IsZero())
	assert.True(t, finmath.SolveRequiredMonthlyContribution(dec("100000"), -6, dec("12"), decimal.Zero).IsZero())
}

func TestSolveDegenerateFactorFallsBackToStraightDivision(t *testing.T) {
	// A -100% monthly rate zeroes every compounded term; the solver must
	// fall back to target/months instead of dividing by zero.
	required := finmath.SolveRequiredMonthlyContribution(dec("1000"), 2, dec("-1200"), decimal.Zero)
	assert.True(t, required.Equal(dec("500")), "required: %s", required)
}
