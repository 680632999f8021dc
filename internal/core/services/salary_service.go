package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/nkhandel/personal_finance_app/internal/apperrors"
	"github.com/nkhandel/personal_finance_app/internal/core/domain"
	portsrepo "github.com/nkhandel/personal_finance_app/internal/core/ports/repositories"
	portssvc "github.com/nkhandel/personal_finance_app/internal/core/ports/services"
	"github.com/nkhandel/personal_finance_app/internal/dto"
	"github.com/nkhandel/personal_finance_app/internal/utils/timemath"
)

// salaryService implements the SalarySvcFacade interface.
type salaryService struct {
	BaseService
	salaryRepo portsrepo.SalaryRepositoryFacade
}

// NewSalaryService creates a new salary-history service.
func NewSalaryService(repo portsrepo.SalaryRepositoryFacade) portssvc.SalarySvcFacade {
	return &salaryService{salaryRepo: repo}
}

// Ensure salaryService implements the SalarySvcFacade interface.
var _ portssvc.SalarySvcFacade = (*salaryService)(nil)

// AddSalary appends a record to the owner's salary history. History is
// append-only: a raise is a new record, never an update.
func (s *salaryService) AddSalary(ctx context.Context, ownerID string, req dto.CreateSalaryRequest) (*domain.SalaryRecord, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: salary amount must be positive", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	record := domain.SalaryRecord{
		SalaryID:    uuid.NewString(),
		OwnerID:     ownerID,
		Amount:      req.Amount,
		EffectiveOn: timemath.DateOnly(req.EffectiveOn),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     ownerID,
			LastUpdatedAt: now,
			LastUpdatedBy: ownerID,
		},
	}

	if err := s.salaryRepo.SaveSalary(ctx, record); err != nil {
		s.LogError(ctx, err, "Failed to save salary record", slog.String("owner_id", ownerID))
		return nil, fmt.Errorf("failed to save salary record: %w", err)
	}

	s.LogInfo(ctx, "Salary record added",
		slog.String("owner_id", ownerID),
		slog.String("salary_id", record.SalaryID))
	return &record, nil
}

// ListSalaries retrieves the owner's salary history, most recent first.
func (s *salaryService) ListSalaries(ctx context.Context, ownerID string) ([]domain.SalaryRecord, error) {
	records, err := s.salaryRepo.ListSalariesByOwner(ctx, ownerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list salary records", slog.String("owner_id", ownerID))
		return nil, fmt.Errorf("failed to list salary records: %w", err)
	}
	return records, nil
}
