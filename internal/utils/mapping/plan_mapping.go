package mapping

import (
	"github.com/nkhandel/personal_finance_app/internal/core/domain"
	"github.com/nkhandel/personal_finance_app/internal/models"
)

// ToModelInvestmentPlan converts a domain InvestmentPlan to a model InvestmentPlan
func ToModelInvestmentPlan(d domain.InvestmentPlan) models.InvestmentPlan {
	return models.InvestmentPlan{
		PlanID:                d.PlanID,
		OwnerID:               d.OwnerID,
		GoalID:                d.GoalID,
		Name:                  d.Name,
		MonthlyContribution:   d.MonthlyContribution,
		ExpectedReturnMin:     d.ExpectedReturnMin,
		ExpectedReturnMax:     d.ExpectedReturnMax,
		AnnualIncreasePercent: d.AnnualIncreasePercent,
		Compounding:           string(d.Compounding),
		StartOn:               d.StartOn,
		EndOn:                 d.EndOn,
		Status:                models.PlanStatus(d.Status),
		AuditFields:           ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainInvestmentPlan converts a model InvestmentPlan to a domain InvestmentPlan
func ToDomainInvestmentPlan(m models.InvestmentPlan) domain.InvestmentPlan {
	return domain.InvestmentPlan{
		PlanID:                m.PlanID,
		OwnerID:               m.OwnerID,
		GoalID:                m.GoalID,
		Name:                  m.Name,
		MonthlyContribution:   m.MonthlyContribution,
		ExpectedReturnMin:     m.ExpectedReturnMin,
		ExpectedReturnMax:     m.ExpectedReturnMax,
		AnnualIncreasePercent: m.AnnualIncreasePercent,
		Compounding:           domain.CompoundingFrequency(m.Compounding),
		StartOn:               m.StartOn,
		EndOn:                 m.EndOn,
		Status:                domain.PlanStatus(m.Status),
		AuditFields:           ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainInvestmentPlanSlice converts a slice of model InvestmentPlans to domain
func ToDomainInvestmentPlanSlice(ms []models.InvestmentPlan) []domain.InvestmentPlan {
	ds := make([]domain.InvestmentPlan, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainInvestmentPlan(m)
	}
	return ds
}
