package repositories

import (
	"context"
	"time"

	"github.com/nkhandel/personal_finance_app/internal/core/domain"
)

// PlanReader defines read operations for investment plans.
type PlanReader interface {
	// FindPlanByID retrieves a single plan by its identifier.
	FindPlanByID(ctx context.Context, planID string) (*domain.InvestmentPlan, error)

	// ListPlansByOwner retrieves all of an owner's plans.
	ListPlansByOwner(ctx context.Context, ownerID string) ([]domain.InvestmentPlan, error)

	// FindActivePlans retrieves the owner's plans with ACTIVE status.
	FindActivePlans(ctx context.Context, ownerID string) ([]domain.InvestmentPlan, error)

	// FindPlansByGoal retrieves the plans linked to a goal.
	FindPlansByGoal(ctx context.Context, goalID string) ([]domain.InvestmentPlan, error)
}

// PlanWriter defines write operations for investment plans.
type PlanWriter interface {
	// SavePlan persists a new plan.
	SavePlan(ctx context.Context, plan domain.InvestmentPlan) error

	// UpdatePlanStatus moves a plan between active, paused and archived.
	UpdatePlanStatus(ctx context.Context, planID string, status domain.PlanStatus, updatedBy string, updatedAt time.Time) error
}

// PlanRepositoryFacade combines all plan repository interfaces.
type PlanRepositoryFacade interface {
	PlanReader
	PlanWriter
}
