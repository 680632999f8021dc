package services

import (
	"context"
	"time"

	"github.com/nkhandel/personal_finance_app/internal/core/domain"
	"github.com/nkhandel/personal_finance_app/internal/dto"
)

// RecurringSvcFacade exposes recurring-rule management.
type RecurringSvcFacade interface {
	// CreateRule registers a recurring obligation for the owner.
	CreateRule(ctx context.Context, ownerID string, req dto.CreateRecurringRuleRequest) (*domain.RecurringRule, error)

	// ListRules retrieves all of the owner's rules.
	ListRules(ctx context.Context, ownerID string) ([]domain.RecurringRule, error)

	// SetRuleActive pauses or resumes a rule owned by ownerID.
	SetRuleActive(ctx context.Context, ownerID, ruleID string, active bool) (*domain.RecurringRule, error)
}

// ObligationSvc runs the periodic materialization batch: due recurring
// rules become ledger entries and monthly salaries are credited. Running
// the batch twice on the same day leaves the ledger unchanged after the
// first run.
type ObligationSvc interface {
	Run(ctx context.Context, asOf time.Time) (domain.ObligationRunSummary, error)
}
