package services

import (
	"context"
	"time"

	"github.com/nkhandel/personal_finance_app/internal/core/domain"
	"github.com/nkhandel/personal_finance_app/internal/dto"
)

// LedgerSvcFacade exposes manual ledger entry operations.
type LedgerSvcFacade interface {
	// CreateEntry records a manual ledger entry for the owner.
	CreateEntry(ctx context.Context, ownerID string, req dto.CreateLedgerEntryRequest) (*domain.LedgerEntry, error)

	// ListEntries retrieves the owner's entries inside the inclusive
	// date range; zero bounds are unbounded.
	ListEntries(ctx context.Context, ownerID string, from, to time.Time) ([]domain.LedgerEntry, error)

	// ListEntriesPage retrieves one page of the owner's entries, newest
	// first, resuming from the opaque cursor in params.
	ListEntriesPage(ctx context.Context, ownerID string, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error)
}
