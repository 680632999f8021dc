package mapping

import (
	"encoding/json"

	"github.com/nkhandel/personal_finance_app/internal/core/domain"
	"github.com/nkhandel/personal_finance_app/internal/models"
)

// ToModelRecurringRule converts a domain RecurringRule to a model RecurringRule
func ToModelRecurringRule(d domain.RecurringRule) models.RecurringRule {
	return models.RecurringRule{
		RuleID:          d.RuleID,
		OwnerID:         d.OwnerID,
		PayloadTemplate: []byte(d.PayloadTemplate),
		Frequency:       models.Frequency(d.Frequency),
		NextDueOn:       d.NextDueOn,
		Active:          d.Active,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainRecurringRule converts a model RecurringRule to a domain RecurringRule
func ToDomainRecurringRule(m models.RecurringRule) domain.RecurringRule {
	return domain.RecurringRule{
		RuleID:          m.RuleID,
		OwnerID:         m.OwnerID,
		PayloadTemplate: json.RawMessage(m.PayloadTemplate),
		Frequency:       domain.Frequency(m.Frequency),
		NextDueOn:       m.NextDueOn,
		Active:          m.Active,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainRecurringRuleSlice converts a slice of model RecurringRules to domain
func ToDomainRecurringRuleSlice(ms []models.RecurringRule) []domain.RecurringRule {
	ds := make([]domain.RecurringRule, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainRecurringRule(m)
	}
	return ds
}
