package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/nkhandel/personal_finance_app/internal/apperrors"
	"github.com/nkhandel/personal_finance_app/internal/core/domain"
	portsrepo "github.com/nkhandel/personal_finance_app/internal/core/ports/repositories"
	portssvc "github.com/nkhandel/personal_finance_app/internal/core/ports/services"
	"github.com/nkhandel/personal_finance_app/internal/utils"
	"github.com/nkhandel/personal_finance_app/internal/utils/timemath"
)

// obligationService materializes due recurring rules and monthly salary
// credits into ledger entries. It is the one service with batch side
// effects and is driven by the worker binary on a daily cadence.
type obligationService struct {
	BaseService
	ledgerRepo    portsrepo.LedgerRepositoryFacade
	recurringRepo portsrepo.RecurringRepositoryFacade
	salaryRepo    portsrepo.SalaryRepositoryFacade
	auditRepo     portsrepo.AuditWriter
}

// NewObligationService creates the materialization batch service.
func NewObligationService(
	ledgerRepo portsrepo.LedgerRepositoryFacade,
	recurringRepo portsrepo.RecurringRepositoryFacade,
	salaryRepo portsrepo.SalaryRepositoryFacade,
	auditRepo portsrepo.AuditWriter,
) portssvc.ObligationSvc {
	return &obligationService{
		ledgerRepo:    ledgerRepo,
		recurringRepo: recurringRepo,
		salaryRepo:    salaryRepo,
		auditRepo:     auditRepo,
	}
}

// Ensure obligationService implements the ObligationSvc interface.
var _ portssvc.ObligationSvc = (*obligationService)(nil)

// Run processes every due recurring rule and credits salaries whose
// monthly anniversary falls on asOf. Failures are isolated per rule and
// per owner: a malformed payload or a write error skips that unit and the
// batch continues. The salary existence check makes the whole run
// idempotent at day granularity.
func (s *obligationService) Run(ctx context.Context, asOf time.Time) (domain.ObligationRunSummary, error) {
	asOf = timemath.DateOnly(asOf)
	summary := domain.ObligationRunSummary{}

	rules, err := s.recurringRepo.FindDueRules(ctx, asOf)
	if err != nil {
		return summary, fmt.Errorf("failed to fetch due recurring rules: %w", err)
	}

	for _, rule := range rules {
		if !rule.IsDue(asOf) {
			// The store already filters on due date; this guards
			// against a stale read racing a concurrent run.
			continue
		}
		if err := s.materializeRule(ctx, rule, asOf); err != nil {
			summary.RulesSkipped++
			s.LogWarn(ctx, "Skipping recurring rule",
				slog.String("rule_id", rule.RuleID),
				slog.String("owner_id", rule.OwnerID),
				slog.String("reason", err.Error()))
			continue
		}
		summary.RulesProcessed++
	}

	credited, err := s.creditSalaries(ctx, asOf)
	summary.SalariesCredited = credited
	if err != nil {
		return summary, err
	}

	s.LogInfo(ctx, "Obligation run complete",
		slog.Time("as_of", asOf),
		slog.Int("rules_processed", summary.RulesProcessed),
		slog.Int("rules_skipped", summary.RulesSkipped),
		slog.Int("salaries_credited", summary.SalariesCredited))
	return summary, nil
}

// materializeRule turns one due rule into a ledger entry dated asOf and
// advances its schedule. The entry write and the schedule advance are one
// atomic repository operation; template or frequency problems abort
// before any mutation so the rule is retried unchanged on the next run.
func (s *obligationService) materializeRule(ctx context.Context, rule domain.RecurringRule, asOf time.Time) error {
	tmpl, err := rule.DecodeTemplate()
	if err != nil {
		return err
	}

	nextDueOn, err := rule.NextOccurrence()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	ruleID := rule.RuleID
	entry := domain.LedgerEntry{
		EntryID:         uuid.NewString(),
		OwnerID:         rule.OwnerID,
		Amount:          tmpl.Amount,
		Kind:            tmpl.Kind,
		Category:        tmpl.Category,
		OccurredOn:      asOf,
		Notes:           tmpl.Notes,
		RecurringRuleID: &ruleID,
		PlanID:          tmpl.PlanID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     rule.OwnerID,
			LastUpdatedAt: now,
			LastUpdatedBy: rule.OwnerID,
		},
	}

	if err := s.recurringRepo.MaterializeRule(ctx, entry, rule.RuleID, nextDueOn, now); err != nil {
		return fmt.Errorf("failed to materialize rule: %w", err)
	}

	s.appendAudit(ctx, domain.AuditEvent{
		EventID:   uuid.NewString(),
		OwnerID:   rule.OwnerID,
		EventType: domain.EventRecurringProcessed,
		Details: map[string]any{
			"ruleId":  rule.RuleID,
			"entryId": entry.EntryID,
			"date":    asOf.Format(time.DateOnly),
		},
		Timestamp: now,
	})
	return nil
}

// creditSalaries credits each owner's current salary when asOf matches
// the salary's day-of-month anniversary and no Salary income entry exists
// in the current month yet. Owner failures are logged and do not abort
// the pass.
func (s *obligationService) creditSalaries(ctx context.Context, asOf time.Time) (int, error) {
	ownerIDs, err := s.salaryRepo.ListOwnerIDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list salary owners: %w", err)
	}

	credited := 0
	for _, ownerID := range ownerIDs {
		ok, err := s.creditSalary(ctx, ownerID, asOf)
		if err != nil {
			s.LogWarn(ctx, "Skipping salary credit",
				slog.String("owner_id", ownerID),
				slog.String("reason", err.Error()))
			continue
		}
		if ok {
			credited++
		}
	}
	return credited, nil
}

func (s *obligationService) creditSalary(ctx context.Context, ownerID string, asOf time.Time) (bool, error) {
	salary, err := s.salaryRepo.FindCurrentSalary(ctx, ownerID, asOf)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to fetch current salary: %w", err)
	}

	if asOf.Day() != salary.EffectiveOn.Day() {
		return false, nil
	}

	// Idempotency guard: one Salary income entry per calendar month.
	// Re-running the batch on the same day finds the entry and does
	// nothing.
	exists, err := s.ledgerRepo.HasIncomeEntryInRange(ctx, ownerID, domain.SalaryCategory,
		timemath.MonthStart(asOf), timemath.MonthEnd(asOf))
	if err != nil {
		return false, fmt.Errorf("failed to check for existing salary entry: %w", err)
	}
	if exists {
		return false, nil
	}

	now := time.Now().UTC()
	entry := domain.LedgerEntry{
		EntryID:    uuid.NewString(),
		OwnerID:    ownerID,
		Amount:     salary.Amount,
		Kind:       domain.EntryIncome,
		Category:   domain.SalaryCategory,
		OccurredOn: asOf,
		Notes:      "Monthly salary credit",
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     ownerID,
			LastUpdatedAt: now,
			LastUpdatedBy: ownerID,
		},
	}
	if err := s.ledgerRepo.CreateEntry(ctx, entry); err != nil {
		return false, fmt.Errorf("failed to create salary entry: %w", err)
	}

	s.appendAudit(ctx, domain.AuditEvent{
		EventID:   uuid.NewString(),
		OwnerID:   ownerID,
		EventType: domain.EventSalaryCredited,
		Details: map[string]any{
			"salaryId": salary.SalaryID,
			"entryId":  entry.EntryID,
			"amount":   utils.FormatAmount(salary.Amount),
			"date":     asOf.Format(time.DateOnly),
		},
		Timestamp: now,
	})
	return true, nil
}

// appendAudit records a batch side effect. The ledger write has already
// committed when this runs, so an audit failure is logged rather than
// surfaced as a unit failure.
func (s *obligationService) appendAudit(ctx context.Context, event domain.AuditEvent) {
	if err := s.auditRepo.AppendEvent(ctx, event); err != nil {
		s.LogError(ctx, err, "Failed to append audit event",
			slog.String("owner_id", event.OwnerID),
			slog.String("event_type", event.EventType))
	}
}
