package services

import (
	"context"

	"github.com/nkhandel/personal_finance_app/internal/core/domain"
	"github.com/nkhandel/personal_finance_app/internal/dto"
)

// SalarySvcFacade exposes salary-history operations.
type SalarySvcFacade interface {
	// AddSalary appends a record to the owner's salary history.
	AddSalary(ctx context.Context, ownerID string, req dto.CreateSalaryRequest) (*domain.SalaryRecord, error)

	// ListSalaries retrieves the owner's salary history, most recent first.
	ListSalaries(ctx context.Context, ownerID string) ([]domain.SalaryRecord, error)
}
