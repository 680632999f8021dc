package dto

import (
	"time"

	"github.com/nkhandel/personal_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateGoalRequest defines the data needed to create a savings goal.
type CreateGoalRequest struct {
	Name         string          `json:"name" binding:"required"`
	TargetAmount decimal.Decimal `json:"targetAmount" binding:"required"`
	TargetOn     time.Time       `json:"targetOn" binding:"required" time_format:"2006-01-02"`
}

// GoalResponse defines the data returned for a goal.
type GoalResponse struct {
	GoalID       string          `json:"goalID"`
	OwnerID      string          `json:"ownerID"`
	Name         string          `json:"name"`
	TargetAmount decimal.Decimal `json:"targetAmount"`
	TargetOn     time.Time       `json:"targetOn"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// ToGoalResponse converts a domain.Goal to its DTO.
func ToGoalResponse(g *domain.Goal) GoalResponse {
	return GoalResponse{
		GoalID:       g.GoalID,
		OwnerID:      g.OwnerID,
		Name:         g.Name,
		TargetAmount: g.TargetAmount,
		TargetOn:     g.TargetOn,
		Status:       string(g.Status),
		CreatedAt:    g.CreatedAt,
	}
}

// ToGoalResponses converts a slice of goals.
func ToGoalResponses(goals []domain.Goal) []GoalResponse {
	responses := make([]GoalResponse, len(goals))
	for i := range goals {
		responses[i] = ToGoalResponse(&goals[i])
	}
	return responses
}
