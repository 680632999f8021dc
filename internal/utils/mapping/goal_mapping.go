package mapping

import (
	"github.com/nkhandel/personal_finance_app/internal/core/domain"
	"github.com/nkhandel/personal_finance_app/internal/models"
)

// ToModelGoal converts a domain Goal to a model Goal
func ToModelGoal(d domain.Goal) models.Goal {
	return models.Goal{
		GoalID:       d.GoalID,
		OwnerID:      d.OwnerID,
		Name:         d.Name,
		TargetAmount: d.TargetAmount,
		TargetOn:     d.TargetOn,
		Status:       models.GoalStatus(d.Status),
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainGoal converts a model Goal to a domain Goal
func ToDomainGoal(m models.Goal) domain.Goal {
	return domain.Goal{
		GoalID:       m.GoalID,
		OwnerID:      m.OwnerID,
		Name:         m.Name,
		TargetAmount: m.TargetAmount,
		TargetOn:     m.TargetOn,
		Status:       domain.GoalStatus(m.Status),
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainGoalSlice converts a slice of model Goals to domain
func ToDomainGoalSlice(ms []models.Goal) []domain.Goal {
	ds := make([]domain.Goal, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainGoal(m)
	}
	return ds
}
