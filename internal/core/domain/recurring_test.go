package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/nkhandel/personal_finance_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestRecurringRuleIsDue(t *testing.T) {
	rule := domain.RecurringRule{Active: true, NextDueOn: date(2024, time.March, 15)}

	assert.False(t, rule.IsDue(date(2024, time.March, 14)))
	assert.True(t, rule.IsDue(date(2024, time.March, 15)))
	assert.True(t, rule.IsDue(date(2024, time.March, 16)))

	rule.Active = false
	assert.False(t, rule.IsDue(date(2024, time.March, 16)), "inactive rules are never due")
}

func TestNextOccurrence(t *testing.T) {
	testCases := []struct {
		name      string
		frequency domain.Frequency
		due       time.Time
		expected  time.Time
	}{
		{"daily", domain.FrequencyDaily, date(2024, time.February, 28), date(2024, time.February, 29)},
		{"weekly", domain.FrequencyWeekly, date(2024, time.December, 30), date(2025, time.January, 6)},
		{"monthly clamps into leap February", domain.FrequencyMonthly, date(2024, time.January, 31), date(2024, time.February, 29)},
		{"monthly clamps into regular February", domain.FrequencyMonthly, date(2023, time.January, 31), date(2023, time.February, 28)},
		{"monthly keeps mid-month day", domain.FrequencyMonthly, date(2024, time.April, 10), date(2024, time.May, 10)},
		{"yearly", domain.FrequencyYearly, date(2024, time.June, 1), date(2025, time.June, 1)},
		{"once parks on sentinel", domain.FrequencyOnce, date(2024, time.June, 1), domain.NeverAgain},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rule := domain.RecurringRule{Frequency: tc.frequency, NextDueOn: tc.due}
			next, err := rule.NextOccurrence()
			require.NoError(t, err)
			assert.Equal(t, tc.expected, next)
		})
	}
}

func TestNextOccurrenceUnknownFrequency(t *testing.T) {
	rule := domain.RecurringRule{Frequency: "FORTNIGHTLY", NextDueOn: date(2024, time.June, 1)}
	_, err := rule.NextOccurrence()
	assert.ErrorIs(t, err, domain.ErrUnknownFrequency)
}

func TestOnceRuleSentinelIsNeverDue(t *testing.T) {
	rule := domain.RecurringRule{Frequency: domain.FrequencyOnce, NextDueOn: date(2024, time.June, 1), Active: true}
	next, err := rule.NextOccurrence()
	require.NoError(t, err)

	rule.NextDueOn = next
	assert.False(t, rule.IsDue(date(2100, time.January, 1)))
}

func TestDecodeTemplate(t *testing.T) {
	rule := domain.RecurringRule{
		RuleID:          "rule-1",
		PayloadTemplate: json.RawMessage(`{"amount":"1200.50","kind":"EXPENSE","category":"Rent","notes":"flat 4b"}`),
	}

	tmpl, err := rule.DecodeTemplate()
	require.NoError(t, err)
	assert.Equal(t, domain.EntryExpense, tmpl.Kind)
	assert.Equal(t, "Rent", tmpl.Category)
	assert.Equal(t, "flat 4b", tmpl.Notes)
	assert.Equal(t, "1200.5", tmpl.Amount.String())
}

func TestDecodeTemplateRejectsMalformedPayloads(t *testing.T) {
	testCases := []struct {
		name    string
		payload string
	}{
		{"invalid json", `{"amount":`},
		{"zero amount", `{"amount":"0","kind":"EXPENSE","category":"Rent"}`},
		{"negative amount", `{"amount":"-5","kind":"EXPENSE","category":"Rent"}`},
		{"unknown kind", `{"amount":"10","kind":"REFUND","category":"Rent"}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rule := domain.RecurringRule{RuleID: "rule-1", PayloadTemplate: json.RawMessage(tc.payload)}
			_, err := rule.DecodeTemplate()
			assert.Error(t, err)
		})
	}
}
