package utils

import (
	"github.com/shopspring/decimal"
)

// MoneyPrecision is the decimal precision used when rendering amounts in
// audit payloads and logs. Storage keeps full precision.
const MoneyPrecision = 2

// FormatAmount renders an amount rounded to the standard money precision.
// Example: 12.3456 returns "12.35".
func FormatAmount(amount decimal.Decimal) string {
	return FormatWithPrecision(amount, MoneyPrecision)
}

// FormatWithPrecision formats an amount with the given precision
// This is a convenience function when you only have the precision value
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.Round(int32(precision)).String()
}
