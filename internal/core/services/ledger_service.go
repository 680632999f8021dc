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
	"github.com/nkhandel/personal_finance_app/internal/utils/pagination"
	"github.com/nkhandel/personal_finance_app/internal/utils/timemath"
)

// ledgerService implements the LedgerSvcFacade interface.
type ledgerService struct {
	BaseService
	ledgerRepo portsrepo.LedgerRepositoryFacade
}

// NewLedgerService creates a new ledger service.
func NewLedgerService(repo portsrepo.LedgerRepositoryFacade) portssvc.LedgerSvcFacade {
	return &ledgerService{ledgerRepo: repo}
}

// Ensure ledgerService implements the LedgerSvcFacade interface.
var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// CreateEntry records a manual ledger entry. Amounts must be strictly
// positive; direction is carried by the entry kind.
func (s *ledgerService) CreateEntry(ctx context.Context, ownerID string, req dto.CreateLedgerEntryRequest) (*domain.LedgerEntry, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	entry := domain.LedgerEntry{
		EntryID:    uuid.NewString(),
		OwnerID:    ownerID,
		Amount:     req.Amount,
		Kind:       req.Kind,
		Category:   req.Category,
		OccurredOn: timemath.DateOnly(req.OccurredOn),
		Notes:      req.Notes,
		PlanID:     req.PlanID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     ownerID,
			LastUpdatedAt: now,
			LastUpdatedBy: ownerID,
		},
	}

	if err := s.ledgerRepo.CreateEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to create ledger entry",
			slog.String("owner_id", ownerID),
			slog.String("category", req.Category))
		return nil, fmt.Errorf("failed to create ledger entry: %w", err)
	}

	s.LogInfo(ctx, "Ledger entry created",
		slog.String("owner_id", ownerID),
		slog.String("entry_id", entry.EntryID),
		slog.String("kind", string(entry.Kind)))
	return &entry, nil
}

// ListEntries retrieves the owner's entries inside the inclusive range.
func (s *ledgerService) ListEntries(ctx context.Context, ownerID string, from, to time.Time) ([]domain.LedgerEntry, error) {
	entries, err := s.ledgerRepo.ListEntriesByOwner(ctx, ownerID, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to list ledger entries", slog.String("owner_id", ownerID))
		return nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}
	return entries, nil
}

// DefaultEntriesPageLimit bounds a ledger page when the caller does not
// ask for a specific size.
const DefaultEntriesPageLimit = 50

// ListEntriesPage retrieves one keyset page of the owner's entries. One
// extra row is fetched to decide whether a next page exists; the cursor
// points at the last entry actually returned.
func (s *ledgerService) ListEntriesPage(ctx context.Context, ownerID string, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = DefaultEntriesPageLimit
	}

	var before time.Time
	var beforeID string
	if params.NextToken != "" {
		var err error
		before, beforeID, err = pagination.DecodeEntryToken(params.NextToken)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
	}

	entries, err := s.ledgerRepo.ListEntriesPage(ctx, ownerID, limit+1, before, beforeID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list ledger entry page", slog.String("owner_id", ownerID))
		return nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}

	var nextToken *string
	if len(entries) > limit {
		entries = entries[:limit]
		last := entries[len(entries)-1]
		token := pagination.EncodeEntryToken(last.OccurredOn, last.EntryID)
		nextToken = &token
	}

	return &dto.ListEntriesResponse{
		Entries:   dto.ToLedgerEntryResponses(entries),
		NextToken: nextToken,
	}, nil
}
