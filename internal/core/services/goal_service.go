package services

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nkhandel/personal_finance_app/internal/apperrors"
	"github.com/nkhandel/personal_finance_app/internal/core/domain"
	portsrepo "github.com/nkhandel/personal_finance_app/internal/core/ports/repositories"
	portssvc "github.com/nkhandel/personal_finance_app/internal/core/ports/services"
	"github.com/nkhandel/personal_finance_app/internal/dto"
	"github.com/nkhandel/personal_finance_app/internal/utils/finmath"
	"github.com/nkhandel/personal_finance_app/internal/utils/timemath"
)

// onTrackTolerance keeps near-target contributions from being classified
// as behind: contributing at least 90% of the required amount counts as
// on track.
var onTrackTolerance = decimal.RequireFromString("0.9")

var oneHundred = decimal.NewFromInt(100)

// goalService implements the GoalSvcFacade interface.
type goalService struct {
	BaseService
	goalRepo   portsrepo.GoalRepositoryFacade
	planRepo   portsrepo.PlanRepositoryFacade
	ledgerRepo portsrepo.LedgerRepositoryFacade
	now        func() time.Time
}

// GoalServiceOption is a functional option for configuring the goal service.
type GoalServiceOption func(*goalService)

// WithGoalClock overrides the evaluation clock, used by tests to pin
// "today".
func WithGoalClock(now func() time.Time) GoalServiceOption {
	return func(s *goalService) {
		s.now = now
	}
}

// NewGoalService creates a new goal service with the provided options.
func NewGoalService(
	goalRepo portsrepo.GoalRepositoryFacade,
	planRepo portsrepo.PlanRepositoryFacade,
	ledgerRepo portsrepo.LedgerRepositoryFacade,
	options ...GoalServiceOption,
) portssvc.GoalSvcFacade {
	svc := &goalService{
		goalRepo:   goalRepo,
		planRepo:   planRepo,
		ledgerRepo: ledgerRepo,
		now:        time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure goalService implements the GoalSvcFacade interface.
var _ portssvc.GoalSvcFacade = (*goalService)(nil)

// CreateGoal registers a savings goal. New goals start as behind until
// the first evaluation overwrites the status.
func (s *goalService) CreateGoal(ctx context.Context, ownerID string, req dto.CreateGoalRequest) (*domain.Goal, error) {
	if !req.TargetAmount.IsPositive() {
		return nil, fmt.Errorf("%w: target amount must be positive", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	goal := domain.Goal{
		GoalID:       uuid.NewString(),
		OwnerID:      ownerID,
		Name:         req.Name,
		TargetAmount: req.TargetAmount,
		TargetOn:     timemath.DateOnly(req.TargetOn),
		Status:       domain.GoalBehind,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     ownerID,
			LastUpdatedAt: now,
			LastUpdatedBy: ownerID,
		},
	}

	if err := s.goalRepo.SaveGoal(ctx, goal); err != nil {
		s.LogError(ctx, err, "Failed to save goal", slog.String("owner_id", ownerID))
		return nil, fmt.Errorf("failed to save goal: %w", err)
	}

	s.LogInfo(ctx, "Goal created",
		slog.String("owner_id", ownerID),
		slog.String("goal_id", goal.GoalID))
	return &goal, nil
}

// ListGoals retrieves all of the owner's goals.
func (s *goalService) ListGoals(ctx context.Context, ownerID string) ([]domain.Goal, error) {
	goals, err := s.goalRepo.ListGoalsByOwner(ctx, ownerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list goals", slog.String("owner_id", ownerID))
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	return goals, nil
}

// EvaluateGoal projects the goal's linked active plans over the remaining
// horizon and classifies progress. The derived status is written back to
// the goal; a write failure there is logged but does not fail the
// evaluation, since the figures themselves are already computed.
func (s *goalService) EvaluateGoal(ctx context.Context, ownerID, goalID string) (*domain.GoalProgress, error) {
	goal, err := s.goalRepo.FindGoalByID(ctx, goalID)
	if err != nil {
		return nil, fmt.Errorf("failed to find goal %s: %w", goalID, err)
	}
	if goal.OwnerID != ownerID {
		return nil, fmt.Errorf("%w: goal %s does not belong to owner", apperrors.ErrForbidden, goalID)
	}

	plans, err := s.planRepo.FindPlansByGoal(ctx, goalID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch plans for goal %s: %w", goalID, err)
	}

	contribution, annualReturn, annualIncrease := aggregatePlanAssumptions(plans)
	invested, err := s.investedSoFar(ctx, ownerID, plans)
	if err != nil {
		return nil, err
	}

	today := timemath.DateOnly(s.now().UTC())
	progress := evaluateGoal(*goal, today, invested, contribution, annualReturn, annualIncrease)

	if err := s.goalRepo.UpdateGoalStatus(ctx, goalID, progress.Status, time.Now().UTC()); err != nil {
		s.LogError(ctx, err, "Failed to persist derived goal status",
			slog.String("goal_id", goalID),
			slog.String("status", string(progress.Status)))
	}

	s.LogInfo(ctx, "Goal evaluated",
		slog.String("goal_id", goalID),
		slog.String("status", string(progress.Status)),
		slog.String("progress_percent", progress.ProgressPercent.StringFixed(2)))
	return &progress, nil
}

// evaluateGoal is the pure evaluator: given the assumptions it derives the
// remaining horizon, projected value, progress, required contribution and
// status. Degenerate inputs resolve to benign numeric defaults because
// these figures are rendered inline in a UI that expects numbers.
func evaluateGoal(goal domain.Goal, today time.Time, invested, monthlyContribution, annualReturnPct, annualIncreasePct decimal.Decimal) domain.GoalProgress {
	monthsRemaining := monthsUntil(today, goal.TargetOn)

	_, projected := finmath.FinalValue(invested, monthlyContribution,
		finmath.MonthlyRate(annualReturnPct), monthsRemaining, annualIncreasePct)

	var progressPercent decimal.Decimal
	if goal.TargetAmount.IsPositive() {
		progressPercent = projected.Div(goal.TargetAmount).Mul(oneHundred)
		if progressPercent.GreaterThan(oneHundred) {
			progressPercent = oneHundred
		}
	} else {
		// A non-positive target is trivially met.
		progressPercent = oneHundred
	}

	remainingTarget := goal.TargetAmount.Sub(invested)
	requiredSIP := decimal.Zero
	if remainingTarget.IsPositive() {
		requiredSIP = finmath.SolveRequiredMonthlyContribution(remainingTarget, monthsRemaining, annualReturnPct, annualIncreasePct)
	}

	status := domain.GoalBehind
	switch {
	case progressPercent.GreaterThanOrEqual(oneHundred):
		status = domain.GoalCompleted
	case monthlyContribution.GreaterThanOrEqual(requiredSIP.Mul(onTrackTolerance)):
		status = domain.GoalOnTrack
	}

	return domain.GoalProgress{
		GoalID:              goal.GoalID,
		MonthsRemaining:     monthsRemaining,
		InvestedSoFar:       invested,
		MonthlyContribution: monthlyContribution,
		ProjectedValue:      projected,
		ProgressPercent:     progressPercent,
		RequiredSIP:         requiredSIP,
		Status:              status,
	}
}

// monthsUntil approximates the whole months between today and the target
// date using the mean month length. Past dates yield zero rather than a
// negative horizon.
func monthsUntil(today, target time.Time) int {
	days := timemath.DaysBetween(today, target)
	if days <= 0 {
		return 0
	}
	return int(math.Ceil(float64(days) / timemath.AverageDaysPerMonth))
}

// aggregatePlanAssumptions folds the goal's active plans into a single
// contribution stream: contributions sum; the return and annual increase
// are contribution-weighted midpoints.
func aggregatePlanAssumptions(plans []domain.InvestmentPlan) (contribution, annualReturn, annualIncrease decimal.Decimal) {
	contribution = decimal.Zero
	weightedReturn := decimal.Zero
	weightedIncrease := decimal.Zero

	for _, plan := range plans {
		if plan.Status != domain.PlanActive {
			continue
		}
		contribution = contribution.Add(plan.MonthlyContribution)
		weightedReturn = weightedReturn.Add(plan.MidpointReturn().Mul(plan.MonthlyContribution))
		weightedIncrease = weightedIncrease.Add(plan.AnnualIncreasePercent.Mul(plan.MonthlyContribution))
	}

	if contribution.IsPositive() {
		annualReturn = weightedReturn.Div(contribution)
		annualIncrease = weightedIncrease.Div(contribution)
	}
	return contribution, annualReturn, annualIncrease
}

// investedSoFar sums the owner's realized investment entries stamped with
// the goal's plan IDs.
func (s *goalService) investedSoFar(ctx context.Context, ownerID string, plans []domain.InvestmentPlan) (decimal.Decimal, error) {
	if len(plans) == 0 {
		return decimal.Zero, nil
	}

	planIDs := make(map[string]struct{}, len(plans))
	for _, plan := range plans {
		planIDs[plan.PlanID] = struct{}{}
	}

	entries, err := s.ledgerRepo.ListEntriesByOwner(ctx, ownerID, time.Time{}, time.Time{})
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to fetch ledger entries: %w", err)
	}

	total := decimal.Zero
	for _, entry := range entries {
		if entry.Kind != domain.EntryInvestment || entry.PlanID == nil {
			continue
		}
		if _, ok := planIDs[*entry.PlanID]; ok {
			total = total.Add(entry.Amount)
		}
	}
	return total, nil
}
