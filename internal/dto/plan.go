package dto

import (
	"time"

	"github.com/nkhandel/personal_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateInvestmentPlanRequest defines the data needed to start a plan.
// The return range invariant (max >= min) is validated at this boundary
// via the returnrange validator registered in the handlers package.
type CreateInvestmentPlanRequest struct {
	Name                  string          `json:"name" binding:"required"`
	GoalID                *string         `json:"goalID"`
	MonthlyContribution   decimal.Decimal `json:"monthlyContribution" binding:"required"`
	ExpectedReturnMin     decimal.Decimal `json:"expectedReturnMin"`
	ExpectedReturnMax     decimal.Decimal `json:"expectedReturnMax" binding:"returnrange"`
	AnnualIncreasePercent decimal.Decimal `json:"annualIncreasePercent"`
	Compounding           string          `json:"compounding" binding:"omitempty,oneof=MONTHLY QUARTERLY YEARLY"`
	StartOn               time.Time       `json:"startOn" binding:"required" time_format:"2006-01-02"`
	EndOn                 *time.Time      `json:"endOn" time_format:"2006-01-02"`
}

// UpdatePlanStatusRequest moves a plan between lifecycle states.
type UpdatePlanStatusRequest struct {
	Status domain.PlanStatus `json:"status" binding:"required,oneof=ACTIVE PAUSED ARCHIVED"`
}

// InvestmentPlanResponse defines the data returned for a plan.
type InvestmentPlanResponse struct {
	PlanID                string          `json:"planID"`
	OwnerID               string          `json:"ownerID"`
	GoalID                *string         `json:"goalID,omitempty"`
	Name                  string          `json:"name"`
	MonthlyContribution   decimal.Decimal `json:"monthlyContribution"`
	ExpectedReturnMin     decimal.Decimal `json:"expectedReturnMin"`
	ExpectedReturnMax     decimal.Decimal `json:"expectedReturnMax"`
	AnnualIncreasePercent decimal.Decimal `json:"annualIncreasePercent"`
	Compounding           string          `json:"compounding"`
	StartOn               time.Time       `json:"startOn"`
	EndOn                 *time.Time      `json:"endOn,omitempty"`
	Status                string          `json:"status"`
	CreatedAt             time.Time       `json:"createdAt"`
}

// PlanProjectionResponse is a plan's year-by-year projection range.
type PlanProjectionResponse struct {
	PlanID string                    `json:"planID"`
	Months int                       `json:"months"`
	Years  []domain.YearlyProjection `json:"years"`
}

// PortfolioProjectionResponse is the combined midpoint projection of the
// owner's active plans.
type PortfolioProjectionResponse struct {
	Months int                          `json:"months"`
	Years  []domain.PortfolioProjection `json:"years"`
}

// ToInvestmentPlanResponse converts a domain plan to its DTO.
func ToInvestmentPlanResponse(p *domain.InvestmentPlan) InvestmentPlanResponse {
	return InvestmentPlanResponse{
		PlanID:                p.PlanID,
		OwnerID:               p.OwnerID,
		GoalID:                p.GoalID,
		Name:                  p.Name,
		MonthlyContribution:   p.MonthlyContribution,
		ExpectedReturnMin:     p.ExpectedReturnMin,
		ExpectedReturnMax:     p.ExpectedReturnMax,
		AnnualIncreasePercent: p.AnnualIncreasePercent,
		Compounding:           string(p.Compounding),
		StartOn:               p.StartOn,
		EndOn:                 p.EndOn,
		Status:                string(p.Status),
		CreatedAt:             p.CreatedAt,
	}
}

// ToInvestmentPlanResponses converts a slice of plans.
func ToInvestmentPlanResponses(plans []domain.InvestmentPlan) []InvestmentPlanResponse {
	responses := make([]InvestmentPlanResponse, len(plans))
	for i := range plans {
		responses[i] = ToInvestmentPlanResponse(&plans[i])
	}
	return responses
}
