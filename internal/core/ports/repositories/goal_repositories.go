package repositories

import (
	"context"
	"time"

	"github.com/nkhandel/personal_finance_app/internal/core/domain"
)

// GoalReader defines read operations for savings goals.
type GoalReader interface {
	// FindGoalByID retrieves a single goal by its identifier.
	FindGoalByID(ctx context.Context, goalID string) (*domain.Goal, error)

	// ListGoalsByOwner retrieves all of an owner's goals.
	ListGoalsByOwner(ctx context.Context, ownerID string) ([]domain.Goal, error)
}

// GoalWriter defines write operations for savings goals.
type GoalWriter interface {
	// SaveGoal persists a new goal.
	SaveGoal(ctx context.Context, goal domain.Goal) error

	// UpdateGoalStatus overwrites the derived status after an evaluation.
	UpdateGoalStatus(ctx context.Context, goalID string, status domain.GoalStatus, updatedAt time.Time) error
}

// GoalRepositoryFacade combines all goal repository interfaces.
type GoalRepositoryFacade interface {
	GoalReader
	GoalWriter
}
