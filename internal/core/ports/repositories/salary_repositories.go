package repositories

import (
	"context"
	"time"

	"github.com/nkhandel/personal_finance_app/internal/core/domain"
)

// SalaryReader defines read operations for salary history.
type SalaryReader interface {
	// FindCurrentSalary retrieves the owner's most recent salary record
	// with effectiveOn <= asOf, or ErrNotFound when none exists.
	FindCurrentSalary(ctx context.Context, ownerID string, asOf time.Time) (*domain.SalaryRecord, error)

	// ListSalariesByOwner retrieves the owner's full salary history,
	// most recent first.
	ListSalariesByOwner(ctx context.Context, ownerID string) ([]domain.SalaryRecord, error)

	// ListOwnerIDs retrieves the distinct owners that have at least one
	// salary record, for the crediting pass of the obligation batch.
	ListOwnerIDs(ctx context.Context) ([]string, error)
}

// SalaryWriter defines write operations for salary history.
type SalaryWriter interface {
	// SaveSalary appends a record to the owner's salary history.
	SaveSalary(ctx context.Context, record domain.SalaryRecord) error
}

// SalaryRepositoryFacade combines all salary repository interfaces.
type SalaryRepositoryFacade interface {
	SalaryReader
	SalaryWriter
}
