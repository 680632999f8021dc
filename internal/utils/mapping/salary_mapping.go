package mapping

import (
	"github.com/nkhandel/personal_finance_app/internal/core/domain"
	"github.com/nkhandel/personal_finance_app/internal/models"
)

// ToModelSalaryRecord converts a domain SalaryRecord to a model SalaryRecord
func ToModelSalaryRecord(d domain.SalaryRecord) models.SalaryRecord {
	return models.SalaryRecord{
		SalaryID:    d.SalaryID,
		OwnerID:     d.OwnerID,
		Amount:      d.Amount,
		EffectiveOn: d.EffectiveOn,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSalaryRecord converts a model SalaryRecord to a domain SalaryRecord
func ToDomainSalaryRecord(m models.SalaryRecord) domain.SalaryRecord {
	return domain.SalaryRecord{
		SalaryID:    m.SalaryID,
		OwnerID:     m.OwnerID,
		Amount:      m.Amount,
		EffectiveOn: m.EffectiveOn,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainSalaryRecordSlice converts a slice of model SalaryRecords to domain
func ToDomainSalaryRecordSlice(ms []models.SalaryRecord) []domain.SalaryRecord {
	ds := make([]domain.SalaryRecord, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSalaryRecord(m)
	}
	return ds
}
