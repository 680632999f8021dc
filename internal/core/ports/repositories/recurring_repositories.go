package repositories

import (
	"context"
	"time"

	"github.com/nkhandel/personal_finance_app/internal/core/domain"
)

// RecurringReader defines read operations for recurring rules.
type RecurringReader interface {
	// FindRuleByID retrieves a single rule by its identifier.
	FindRuleByID(ctx context.Context, ruleID string) (*domain.RecurringRule, error)

	// ListRulesByOwner retrieves all of an owner's rules, active or not.
	ListRulesByOwner(ctx context.Context, ownerID string) ([]domain.RecurringRule, error)

	// FindDueRules retrieves every active rule with nextDueOn <= asOf,
	// across all owners, for the obligation batch.
	FindDueRules(ctx context.Context, asOf time.Time) ([]domain.RecurringRule, error)
}

// RecurringWriter defines write operations for recurring rules.
type RecurringWriter interface {
	// SaveRule persists a new rule.
	SaveRule(ctx context.Context, rule domain.RecurringRule) error

	// SetRuleActive pauses or resumes a rule. Rules are deactivated,
	// never deleted.
	SetRuleActive(ctx context.Context, ruleID string, active bool, updatedBy string, updatedAt time.Time) error

	// MaterializeRule creates the ledger entry and advances the rule's
	// nextDueOn as one atomic unit, so a failure can never leave the
	// entry written but the schedule stale or vice versa.
	MaterializeRule(ctx context.Context, entry domain.LedgerEntry, ruleID string, nextDueOn time.Time, updatedAt time.Time) error
}

// RecurringRepositoryFacade combines all recurring-rule repository interfaces.
type RecurringRepositoryFacade interface {
	RecurringReader
	RecurringWriter
}
