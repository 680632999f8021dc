package mapping

import (
	"github.com/nkhandel/personal_finance_app/internal/core/domain"
	"github.com/nkhandel/personal_finance_app/internal/models"
)

// ToModelLedgerEntry converts a domain LedgerEntry to a model LedgerEntry
func ToModelLedgerEntry(d domain.LedgerEntry) models.LedgerEntry {
	return models.LedgerEntry{
		EntryID:         d.EntryID,
		OwnerID:         d.OwnerID,
		Amount:          d.Amount,
		Kind:            models.EntryKind(d.Kind),
		Category:        d.Category,
		OccurredOn:      d.OccurredOn,
		Notes:           d.Notes,
		RecurringRuleID: d.RecurringRuleID,
		PlanID:          d.PlanID,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLedgerEntry converts a model LedgerEntry to a domain LedgerEntry
func ToDomainLedgerEntry(m models.LedgerEntry) domain.LedgerEntry {
	return domain.LedgerEntry{
		EntryID:         m.EntryID,
		OwnerID:         m.OwnerID,
		Amount:          m.Amount,
		Kind:            domain.EntryKind(m.Kind),
		Category:        m.Category,
		OccurredOn:      m.OccurredOn,
		Notes:           m.Notes,
		RecurringRuleID: m.RecurringRuleID,
		PlanID:          m.PlanID,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainLedgerEntrySlice converts a slice of model LedgerEntries to domain
func ToDomainLedgerEntrySlice(ms []models.LedgerEntry) []domain.LedgerEntry {
	ds := make([]domain.LedgerEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLedgerEntry(m)
	}
	return ds
}
