package services

import (
	"context"
	"time"

	"github.com/nkhandel/personal_finance_app/internal/core/domain"
	"github.com/nkhandel/personal_finance_app/internal/dto"
)

// BudgetSvcFacade exposes budget-rule management and the monthly
// needs/wants/savings summary.
type BudgetSvcFacade interface {
	// SetBudgetRule creates or replaces the owner's allocation rule.
	SetBudgetRule(ctx context.Context, ownerID string, req dto.SetBudgetRuleRequest) (*domain.BudgetRule, error)

	// MonthSummary compares the owner's spend in month's calendar month
	// against their budget rule (50/30/20 when none is saved).
	MonthSummary(ctx context.Context, ownerID string, month time.Time) (*domain.BudgetSummary, error)
}
