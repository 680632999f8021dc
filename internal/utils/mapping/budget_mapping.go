package mapping

import (
	"github.com/nkhandel/personal_finance_app/internal/core/domain"
	"github.com/nkhandel/personal_finance_app/internal/models"
)

// ToModelBudgetRule converts a domain BudgetRule to a model BudgetRule
func ToModelBudgetRule(d domain.BudgetRule) models.BudgetRule {
	return models.BudgetRule{
		OwnerID:        d.OwnerID,
		NeedsPercent:   d.NeedsPercent,
		WantsPercent:   d.WantsPercent,
		SavingsPercent: d.SavingsPercent,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBudgetRule converts a model BudgetRule to a domain BudgetRule
func ToDomainBudgetRule(m models.BudgetRule) domain.BudgetRule {
	return domain.BudgetRule{
		OwnerID:        m.OwnerID,
		NeedsPercent:   m.NeedsPercent,
		WantsPercent:   m.WantsPercent,
		SavingsPercent: m.SavingsPercent,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCategoryClassification folds classification rows into the
// domain lookup table.
func ToDomainCategoryClassification(ms []models.CategoryClassification) domain.CategoryClassification {
	classification := make(domain.CategoryClassification, len(ms))
	for _, m := range ms {
		classification[m.Category] = domain.BucketKind(m.Bucket)
	}
	return classification
}
