package services

import (
	"context"
	"fmt"
	"log/slog"
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

// DefaultProjectionMonths is the horizon used when a caller does not
// supply one and the plan has no end date.
const DefaultProjectionMonths = 120

// planService implements the PlanSvcFacade interface.
type planService struct {
	BaseService
	planRepo portsrepo.PlanRepositoryFacade
}

// NewPlanService creates a new investment-plan service.
func NewPlanService(repo portsrepo.PlanRepositoryFacade) portssvc.PlanSvcFacade {
	return &planService{planRepo: repo}
}

// Ensure planService implements the PlanSvcFacade interface.
var _ portssvc.PlanSvcFacade = (*planService)(nil)

// CreatePlan starts a new systematic investment plan. The return-range
// invariant is validated at the API boundary and re-checked here so a bad
// write never reaches projections.
func (s *planService) CreatePlan(ctx context.Context, ownerID string, req dto.CreateInvestmentPlanRequest) (*domain.InvestmentPlan, error) {
	if !req.MonthlyContribution.IsPositive() {
		return nil, fmt.Errorf("%w: monthly contribution must be positive", apperrors.ErrValidation)
	}
	if req.ExpectedReturnMax.LessThan(req.ExpectedReturnMin) {
		return nil, fmt.Errorf("%w: expected return max below min", apperrors.ErrValidation)
	}

	compounding := domain.CompoundingFrequency(req.Compounding)
	if compounding == "" {
		compounding = domain.CompoundingMonthly
	}

	now := time.Now().UTC()
	plan := domain.InvestmentPlan{
		PlanID:                uuid.NewString(),
		OwnerID:               ownerID,
		GoalID:                req.GoalID,
		Name:                  req.Name,
		MonthlyContribution:   req.MonthlyContribution,
		ExpectedReturnMin:     req.ExpectedReturnMin,
		ExpectedReturnMax:     req.ExpectedReturnMax,
		AnnualIncreasePercent: req.AnnualIncreasePercent,
		Compounding:           compounding,
		StartOn:               timemath.DateOnly(req.StartOn),
		EndOn:                 req.EndOn,
		Status:                domain.PlanActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     ownerID,
			LastUpdatedAt: now,
			LastUpdatedBy: ownerID,
		},
	}

	if err := s.planRepo.SavePlan(ctx, plan); err != nil {
		s.LogError(ctx, err, "Failed to save investment plan", slog.String("owner_id", ownerID))
		return nil, fmt.Errorf("failed to save investment plan: %w", err)
	}

	s.LogInfo(ctx, "Investment plan created",
		slog.String("owner_id", ownerID),
		slog.String("plan_id", plan.PlanID))
	return &plan, nil
}

// ListPlans retrieves all of the owner's plans.
func (s *planService) ListPlans(ctx context.Context, ownerID string) ([]domain.InvestmentPlan, error) {
	plans, err := s.planRepo.ListPlansByOwner(ctx, ownerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list investment plans", slog.String("owner_id", ownerID))
		return nil, fmt.Errorf("failed to list investment plans: %w", err)
	}
	return plans, nil
}

// SetPlanStatus moves a plan between active, paused and archived.
func (s *planService) SetPlanStatus(ctx context.Context, ownerID, planID string, status domain.PlanStatus) (*domain.InvestmentPlan, error) {
	plan, err := s.findOwnedPlan(ctx, ownerID, planID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err := s.planRepo.UpdatePlanStatus(ctx, planID, status, ownerID, now); err != nil {
		s.LogError(ctx, err, "Failed to update plan status", slog.String("plan_id", planID))
		return nil, fmt.Errorf("failed to update plan status: %w", err)
	}

	plan.Status = status
	plan.LastUpdatedAt = now
	plan.LastUpdatedBy = ownerID
	s.LogInfo(ctx, "Investment plan status updated",
		slog.String("plan_id", planID),
		slog.String("status", string(status)))
	return plan, nil
}

// ProjectPlan simulates one plan over the horizon at both expected return
// bounds and reports year-end rows as a range. The two bounds are never
// averaged here; callers that want a single figure use the portfolio
// projection instead.
func (s *planService) ProjectPlan(ctx context.Context, ownerID, planID string, horizonMonths int) ([]domain.YearlyProjection, error) {
	plan, err := s.findOwnedPlan(ctx, ownerID, planID)
	if err != nil {
		return nil, err
	}

	months := s.horizonFor(*plan, horizonMonths)
	low := finmath.Project(plan.MonthlyContribution, finmath.MonthlyRate(plan.ExpectedReturnMin), months, plan.AnnualIncreasePercent)
	high := finmath.Project(plan.MonthlyContribution, finmath.MonthlyRate(plan.ExpectedReturnMax), months, plan.AnnualIncreasePercent)

	var years []domain.YearlyProjection
	for i := range low {
		if low[i].Month%12 != 0 {
			continue
		}
		years = append(years, domain.YearlyProjection{
			Year:        low[i].Month / 12,
			Invested:    low[i].Invested,
			ValueMin:    low[i].Value,
			ValueMax:    high[i].Value,
			InterestMin: low[i].Interest,
			InterestMax: high[i].Interest,
		})
	}
	return years, nil
}

// ProjectPortfolio combines the owner's active plans at each plan's
// midpoint return into a single year-by-year series. Plans are simulated
// independently and their year-end samples summed.
func (s *planService) ProjectPortfolio(ctx context.Context, ownerID string, horizonMonths int) ([]domain.PortfolioProjection, error) {
	plans, err := s.planRepo.FindActivePlans(ctx, ownerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch active plans", slog.String("owner_id", ownerID))
		return nil, fmt.Errorf("failed to fetch active plans: %w", err)
	}

	months := horizonMonths
	if months <= 0 {
		months = DefaultProjectionMonths
	}
	yearCount := months / 12
	if yearCount == 0 {
		return nil, nil
	}

	combined := make([]domain.PortfolioProjection, yearCount)
	for i := range combined {
		combined[i] = domain.PortfolioProjection{
			Year:     i + 1,
			Invested: decimal.Zero,
			Value:    decimal.Zero,
			Interest: decimal.Zero,
		}
	}

	for _, plan := range plans {
		points := finmath.Project(plan.MonthlyContribution, finmath.MonthlyRate(plan.MidpointReturn()), months, plan.AnnualIncreasePercent)
		for i := range points {
			if points[i].Month%12 != 0 {
				continue
			}
			year := points[i].Month/12 - 1
			combined[year].Invested = combined[year].Invested.Add(points[i].Invested)
			combined[year].Value = combined[year].Value.Add(points[i].Value)
			combined[year].Interest = combined[year].Interest.Add(points[i].Interest)
		}
	}
	return combined, nil
}

func (s *planService) findOwnedPlan(ctx context.Context, ownerID, planID string) (*domain.InvestmentPlan, error) {
	plan, err := s.planRepo.FindPlanByID(ctx, planID)
	if err != nil {
		return nil, fmt.Errorf("failed to find plan %s: %w", planID, err)
	}
	if plan.OwnerID != ownerID {
		return nil, fmt.Errorf("%w: plan %s does not belong to owner", apperrors.ErrForbidden, planID)
	}
	return plan, nil
}

// horizonFor resolves the projection horizon: an explicit request wins,
// then the months until the plan's end date, then the default.
func (s *planService) horizonFor(plan domain.InvestmentPlan, horizonMonths int) int {
	if horizonMonths > 0 {
		return horizonMonths
	}
	if plan.EndOn != nil {
		if months := timemath.MonthsBetween(plan.StartOn, *plan.EndOn); months > 0 {
			return months
		}
	}
	return DefaultProjectionMonths
}
