package dto

import (
	"time"

	"github.com/nkhandel/personal_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateRecurringRuleRequest defines the data needed to register a
// recurring obligation. The template fields are serialized into the
// rule's payload.
type CreateRecurringRuleRequest struct {
	Amount     decimal.Decimal  `json:"amount" binding:"required"`
	Kind       domain.EntryKind `json:"kind" binding:"required,oneof=INCOME EXPENSE INVESTMENT TRANSFER"`
	Category   string           `json:"category" binding:"required"`
	Notes      string           `json:"notes"`
	PlanID     *string          `json:"planID"`
	Frequency  domain.Frequency `json:"frequency" binding:"required,oneof=ONCE DAILY WEEKLY MONTHLY YEARLY"`
	FirstDueOn time.Time        `json:"firstDueOn" binding:"required" time_format:"2006-01-02"`
}

// UpdateRecurringRuleRequest toggles a rule's active flag.
type UpdateRecurringRuleRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// RecurringRuleResponse defines the data returned for a recurring rule.
type RecurringRuleResponse struct {
	RuleID    string          `json:"ruleID"`
	OwnerID   string          `json:"ownerID"`
	Amount    decimal.Decimal `json:"amount"`
	Kind      string          `json:"kind"`
	Category  string          `json:"category"`
	Notes     string          `json:"notes"`
	Frequency string          `json:"frequency"`
	NextDueOn time.Time       `json:"nextDueOn"`
	Active    bool            `json:"active"`
	CreatedAt time.Time       `json:"createdAt"`
}

// ToRecurringRuleResponse converts a domain rule to its DTO. Rules with
// an undecodable payload still list, with the template fields zeroed, so
// a corrupt rule remains visible to the user instead of vanishing.
func ToRecurringRuleResponse(r *domain.RecurringRule) RecurringRuleResponse {
	resp := RecurringRuleResponse{
		RuleID:    r.RuleID,
		OwnerID:   r.OwnerID,
		Frequency: string(r.Frequency),
		NextDueOn: r.NextDueOn,
		Active:    r.Active,
		CreatedAt: r.CreatedAt,
	}
	if tmpl, err := r.DecodeTemplate(); err == nil {
		resp.Amount = tmpl.Amount
		resp.Kind = string(tmpl.Kind)
		resp.Category = tmpl.Category
		resp.Notes = tmpl.Notes
	}
	return resp
}

// ToRecurringRuleResponses converts a slice of rules.
func ToRecurringRuleResponses(rules []domain.RecurringRule) []RecurringRuleResponse {
	responses := make([]RecurringRuleResponse, len(rules))
	for i := range rules {
		responses[i] = ToRecurringRuleResponse(&rules[i])
	}
	return responses
}
