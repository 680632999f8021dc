package dto

import (
	"time"

	"github.com/nkhandel/personal_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateLedgerEntryRequest defines the data needed to record a manual
// ledger entry.
type CreateLedgerEntryRequest struct {
	Amount     decimal.Decimal  `json:"amount" binding:"required"`
	Kind       domain.EntryKind `json:"kind" binding:"required,oneof=INCOME EXPENSE INVESTMENT TRANSFER"`
	Category   string           `json:"category" binding:"required"`
	OccurredOn time.Time        `json:"occurredOn" binding:"required" time_format:"2006-01-02"`
	Notes      string           `json:"notes"`
	PlanID     *string          `json:"planID"` // Optional link to an investment plan
}

// ListEntriesParams bundles pagination parameters for listing entries.
type ListEntriesParams struct {
	Limit     int    `form:"limit"`
	NextToken string `form:"nextToken"`
}

// ListEntriesResponse is one page of ledger entries. NextToken is nil on
// the last page.
type ListEntriesResponse struct {
	Entries   []LedgerEntryResponse `json:"entries"`
	NextToken *string               `json:"nextToken,omitempty"`
}

// LedgerEntryResponse defines the data returned for a ledger entry.
type LedgerEntryResponse struct {
	EntryID         string          `json:"entryID"`
	OwnerID         string          `json:"ownerID"`
	Amount          decimal.Decimal `json:"amount"`
	Kind            string          `json:"kind"`
	Category        string          `json:"category"`
	OccurredOn      time.Time       `json:"occurredOn"`
	Notes           string          `json:"notes"`
	RecurringRuleID *string         `json:"recurringRuleID,omitempty"`
	PlanID          *string         `json:"planID,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// ToLedgerEntryResponse converts a domain.LedgerEntry to its DTO.
func ToLedgerEntryResponse(e *domain.LedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		EntryID:         e.EntryID,
		OwnerID:         e.OwnerID,
		Amount:          e.Amount,
		Kind:            string(e.Kind),
		Category:        e.Category,
		OccurredOn:      e.OccurredOn,
		Notes:           e.Notes,
		RecurringRuleID: e.RecurringRuleID,
		PlanID:          e.PlanID,
		CreatedAt:       e.CreatedAt,
	}
}

// ToLedgerEntryResponses converts a slice of entries.
func ToLedgerEntryResponses(entries []domain.LedgerEntry) []LedgerEntryResponse {
	responses := make([]LedgerEntryResponse, len(entries))
	for i := range entries {
		responses[i] = ToLedgerEntryResponse(&entries[i])
	}
	return responses
}
