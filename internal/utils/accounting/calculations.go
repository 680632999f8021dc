package accounting

import (
	"github.com/shopspring/decimal"

	"github.com/nkhandel/personal_finance_app/internal/core/domain"
)

// SignedCashAmount applies the cash-flow sign convention to a ledger
// entry amount. This is used in both services and reporting to keep the
// convention in one place.
// INCOME -> Positive (+)
// EXPENSE -> Negative (-)
// INVESTMENT -> Negative (-), the cash leaves the bank account
// TRANSFER -> Zero, movement between the owner's own accounts
func SignedCashAmount(entry domain.LedgerEntry) decimal.Decimal {
	switch entry.Kind {
	case domain.EntryIncome:
		return entry.Amount
	case domain.EntryExpense, domain.EntryInvestment:
		return entry.Amount.Neg()
	default:
		return decimal.Zero
	}
}

// CashBalance nets a set of ledger entries using the cash-flow sign
// convention.
func CashBalance(entries []domain.LedgerEntry) decimal.Decimal {
	balance := decimal.Zero
	for _, entry := range entries {
		balance = balance.Add(SignedCashAmount(entry))
	}
	return balance
}
