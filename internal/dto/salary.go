package dto

import (
	"time"

	"github.com/nkhandel/personal_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateSalaryRequest appends a record to the owner's salary history.
// The day of month of EffectiveOn anchors the monthly crediting cadence.
type CreateSalaryRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	EffectiveOn time.Time       `json:"effectiveOn" binding:"required" time_format:"2006-01-02"`
}

// SalaryResponse defines the data returned for a salary record.
type SalaryResponse struct {
	SalaryID    string          `json:"salaryID"`
	OwnerID     string          `json:"ownerID"`
	Amount      decimal.Decimal `json:"amount"`
	EffectiveOn time.Time       `json:"effectiveOn"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ToSalaryResponse converts a domain.SalaryRecord to its DTO.
func ToSalaryResponse(s *domain.SalaryRecord) SalaryResponse {
	return SalaryResponse{
		SalaryID:    s.SalaryID,
		OwnerID:     s.OwnerID,
		Amount:      s.Amount,
		EffectiveOn: s.EffectiveOn,
		CreatedAt:   s.CreatedAt,
	}
}

// ToSalaryResponses converts a slice of salary records.
func ToSalaryResponses(records []domain.SalaryRecord) []SalaryResponse {
	responses := make([]SalaryResponse, len(records))
	for i := range records {
		responses[i] = ToSalaryResponse(&records[i])
	}
	return responses
}
