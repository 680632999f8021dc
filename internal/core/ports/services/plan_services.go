package services

import (
	"context"

	"github.com/nkhandel/personal_finance_app/internal/core/domain"
	"github.com/nkhandel/personal_finance_app/internal/dto"
)

// PlanSvcFacade exposes investment-plan management and projections.
type PlanSvcFacade interface {
	// CreatePlan starts a new systematic investment plan for the owner.
	CreatePlan(ctx context.Context, ownerID string, req dto.CreateInvestmentPlanRequest) (*domain.InvestmentPlan, error)

	// ListPlans retrieves all of the owner's plans.
	ListPlans(ctx context.Context, ownerID string) ([]domain.InvestmentPlan, error)

	// SetPlanStatus moves a plan between active, paused and archived.
	SetPlanStatus(ctx context.Context, ownerID, planID string, status domain.PlanStatus) (*domain.InvestmentPlan, error)

	// ProjectPlan simulates one plan over the horizon and reports
	// year-end rows as a range over the plan's expected return bounds.
	ProjectPlan(ctx context.Context, ownerID, planID string, horizonMonths int) ([]domain.YearlyProjection, error)

	// ProjectPortfolio combines the owner's active plans at each plan's
	// midpoint return into a single year-by-year series.
	ProjectPortfolio(ctx context.Context, ownerID string, horizonMonths int) ([]domain.PortfolioProjection, error)
}
