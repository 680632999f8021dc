package services

import (
	"context"

	"github.com/nkhandel/personal_finance_app/internal/core/domain"
	"github.com/nkhandel/personal_finance_app/internal/dto"
)

// GoalSvcFacade exposes savings-goal management and evaluation.
type GoalSvcFacade interface {
	// CreateGoal registers a savings goal for the owner.
	CreateGoal(ctx context.Context, ownerID string, req dto.CreateGoalRequest) (*domain.Goal, error)

	// ListGoals retrieves all of the owner's goals.
	ListGoals(ctx context.Context, ownerID string) ([]domain.Goal, error)

	// EvaluateGoal projects the goal's linked plans over the remaining
	// horizon, derives progress and required contribution, and writes
	// the derived status back onto the goal.
	EvaluateGoal(ctx context.Context, ownerID, goalID string) (*domain.GoalProgress, error)
}
