package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nkhandel/personal_finance_app/internal/apperrors"
	"github.com/nkhandel/personal_finance_app/internal/core/domain"
	portsrepo "github.com/nkhandel/personal_finance_app/internal/core/ports/repositories"
	portssvc "github.com/nkhandel/personal_finance_app/internal/core/ports/services"
	"github.com/nkhandel/personal_finance_app/internal/dto"
	"github.com/nkhandel/personal_finance_app/internal/utils/timemath"
)

// budgetService implements the BudgetSvcFacade interface.
type budgetService struct {
	BaseService
	budgetRepo portsrepo.BudgetRepositoryFacade
	ledgerRepo portsrepo.LedgerRepositoryFacade
}

// NewBudgetService creates a new budget service.
func NewBudgetService(budgetRepo portsrepo.BudgetRepositoryFacade, ledgerRepo portsrepo.LedgerRepositoryFacade) portssvc.BudgetSvcFacade {
	return &budgetService{budgetRepo: budgetRepo, ledgerRepo: ledgerRepo}
}

// Ensure budgetService implements the BudgetSvcFacade interface.
var _ portssvc.BudgetSvcFacade = (*budgetService)(nil)

// SetBudgetRule creates or replaces the owner's allocation rule.
func (s *budgetService) SetBudgetRule(ctx context.Context, ownerID string, req dto.SetBudgetRuleRequest) (*domain.BudgetRule, error) {
	now := time.Now().UTC()
	rule := domain.BudgetRule{
		OwnerID:        ownerID,
		NeedsPercent:   req.NeedsPercent,
		WantsPercent:   req.WantsPercent,
		SavingsPercent: req.SavingsPercent,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     ownerID,
			LastUpdatedAt: now,
			LastUpdatedBy: ownerID,
		},
	}
	if err := rule.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	if err := s.budgetRepo.SaveBudgetRule(ctx, rule); err != nil {
		s.LogError(ctx, err, "Failed to save budget rule", slog.String("owner_id", ownerID))
		return nil, fmt.Errorf("failed to save budget rule: %w", err)
	}

	s.LogInfo(ctx, "Budget rule saved", slog.String("owner_id", ownerID))
	return &rule, nil
}

// MonthSummary compares the owner's spend for one calendar month against
// their budget rule, falling back to the 50/30/20 default when the owner
// has never saved one.
func (s *budgetService) MonthSummary(ctx context.Context, ownerID string, month time.Time) (*domain.BudgetSummary, error) {
	from := timemath.MonthStart(month)
	to := timemath.MonthEnd(month)

	entries, err := s.ledgerRepo.ListEntriesByOwner(ctx, ownerID, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch month entries", slog.String("owner_id", ownerID))
		return nil, fmt.Errorf("failed to fetch month entries: %w", err)
	}

	rule, err := s.budgetRepo.FindBudgetRule(ctx, ownerID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to fetch budget rule", slog.String("owner_id", ownerID))
			return nil, fmt.Errorf("failed to fetch budget rule: %w", err)
		}
		fallback := domain.DefaultBudgetRule(ownerID)
		rule = &fallback
	}

	classification, err := s.budgetRepo.FindCategoryClassification(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch category classification")
		return nil, fmt.Errorf("failed to fetch category classification: %w", err)
	}

	summary := Allocate(entries, *rule, classification)
	summary.OwnerID = ownerID
	summary.Month = from.Format("2006-01")
	return &summary, nil
}

// Allocate classifies a month's entries into needs/wants/savings buckets
// and compares actual spend to the percentage rule. Income entries whose
// category classifies as savings (internal transfers and the like) are
// excluded from the income total before any percentage is computed;
// otherwise every allocation figure would be skewed. Investment-kind
// entries count toward the savings bucket's actual regardless of their
// category. A zero income total yields zero percentages, never a division
// by zero.
func Allocate(entries []domain.LedgerEntry, rule domain.BudgetRule, classification domain.CategoryClassification) domain.BudgetSummary {
	incomeTotal := decimal.Zero
	for _, entry := range entries {
		if entry.Kind != domain.EntryIncome {
			continue
		}
		if classification.BucketFor(entry.Category) == domain.BucketSavings {
			continue
		}
		incomeTotal = incomeTotal.Add(entry.Amount)
	}

	actuals := map[domain.BucketKind]decimal.Decimal{
		domain.BucketNeeds:   decimal.Zero,
		domain.BucketWants:   decimal.Zero,
		domain.BucketSavings: decimal.Zero,
	}
	for _, entry := range entries {
		switch entry.Kind {
		case domain.EntryExpense:
			bucket := classification.BucketFor(entry.Category)
			actuals[bucket] = actuals[bucket].Add(entry.Amount)
		case domain.EntryInvestment:
			actuals[domain.BucketSavings] = actuals[domain.BucketSavings].Add(entry.Amount)
		}
	}

	buckets := make(map[domain.BucketKind]domain.BucketReport, len(actuals))
	for bucket, actual := range actuals {
		budget := rule.Percent(bucket).Div(oneHundred).Mul(incomeTotal)
		percentage := decimal.Zero
		if incomeTotal.IsPositive() {
			percentage = actual.Div(incomeTotal).Mul(oneHundred)
		}
		buckets[bucket] = domain.BucketReport{
			Budget:     budget,
			Actual:     actual,
			Percentage: percentage,
			Remaining:  budget.Sub(actual),
		}
	}

	return domain.BudgetSummary{
		IncomeTotal: incomeTotal,
		Buckets:     buckets,
	}
}
