package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/nkhandel/personal_finance_app/internal/utils/timemath"
	"github.com/shopspring/decimal"
)

// Frequency is the cadence of a recurring rule.
type Frequency string

const (
	FrequencyOnce    Frequency = "ONCE"
	FrequencyDaily   Frequency = "DAILY"
	FrequencyWeekly  Frequency = "WEEKLY"
	FrequencyMonthly Frequency = "MONTHLY"
	FrequencyYearly  Frequency = "YEARLY"
)

// ErrUnknownFrequency is returned when a rule carries a frequency the
// scheduler does not recognize. Callers treat it like any other malformed
// rule: skip without mutating the schedule.
var ErrUnknownFrequency = errors.New("unknown recurring frequency")

// NeverAgain is the sentinel due date assigned to ONCE rules after they
// fire; a rule scheduled here is perpetually not due.
var NeverAgain = time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC)

// EntryTemplate is the serialized ledger-entry payload carried by a
// recurring rule. Materialization decodes it and stamps the occurrence
// date and rule ID on the resulting entry.
type EntryTemplate struct {
	Amount   decimal.Decimal `json:"amount"`
	Kind     EntryKind       `json:"kind"`
	Category string          `json:"category"`
	Notes    string          `json:"notes,omitempty"`
	PlanID   *string         `json:"planID,omitempty"`
}

// RecurringRule is a template that periodically materializes into a
// concrete ledger entry. NextDueOn is mutated only by the obligation run;
// pausing deactivates the rule rather than deleting it.
type RecurringRule struct {
	RuleID          string          `json:"ruleID"` // Primary Key (e.g., UUID)
	OwnerID         string          `json:"ownerID"`
	PayloadTemplate json.RawMessage `json:"payloadTemplate"`
	Frequency       Frequency       `json:"frequency"`
	NextDueOn       time.Time       `json:"nextDueOn"`
	Active          bool            `json:"active"`
	AuditFields
}

// IsDue reports whether the rule should materialize on asOf.
func (r RecurringRule) IsDue(asOf time.Time) bool {
	return r.Active && !timemath.DateOnly(r.NextDueOn).After(timemath.DateOnly(asOf))
}

// NextOccurrence computes the due date following the current one. ONCE
// rules fire exactly one time and are then parked on the NeverAgain
// sentinel. Monthly and yearly advances clamp the day of month to the
// shorter target month.
func (r RecurringRule) NextOccurrence() (time.Time, error) {
	switch r.Frequency {
	case FrequencyOnce:
		return NeverAgain, nil
	case FrequencyDaily:
		return timemath.AddDays(r.NextDueOn, 1), nil
	case FrequencyWeekly:
		return timemath.AddDays(r.NextDueOn, 7), nil
	case FrequencyMonthly:
		return timemath.AddMonths(r.NextDueOn, 1), nil
	case FrequencyYearly:
		return timemath.AddYears(r.NextDueOn, 1), nil
	default:
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnknownFrequency, r.Frequency)
	}
}

// DecodeTemplate parses the rule's serialized entry payload. A template
// with a non-positive amount or an unrecognized kind is rejected so that
// a corrupt rule can never write an invalid ledger entry.
func (r RecurringRule) DecodeTemplate() (EntryTemplate, error) {
	var tmpl EntryTemplate
	if err := json.Unmarshal(r.PayloadTemplate, &tmpl); err != nil {
		return EntryTemplate{}, fmt.Errorf("failed to decode payload template for rule %s: %w", r.RuleID, err)
	}
	if !tmpl.Amount.IsPositive() {
		return EntryTemplate{}, fmt.Errorf("payload template for rule %s has non-positive amount %s", r.RuleID, tmpl.Amount)
	}
	switch tmpl.Kind {
	case EntryIncome, EntryExpense, EntryInvestment, EntryTransfer:
	default:
		return EntryTemplate{}, fmt.Errorf("payload template for rule %s has unknown kind %q", r.RuleID, tmpl.Kind)
	}
	return tmpl, nil
}
