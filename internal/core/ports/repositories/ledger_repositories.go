package repositories

import (
	"context"
	"time"

	"github.com/nkhandel/personal_finance_app/internal/core/domain"
)

// LedgerReader defines read operations for ledger entries.
type LedgerReader interface {
	// FindEntryByID retrieves a single ledger entry by its identifier.
	FindEntryByID(ctx context.Context, entryID string) (*domain.LedgerEntry, error)

	// ListEntriesByOwner retrieves an owner's entries ordered by
	// occurrence date. From/to are inclusive date bounds; zero values
	// leave that end unbounded.
	ListEntriesByOwner(ctx context.Context, ownerID string, from, to time.Time) ([]domain.LedgerEntry, error)

	// ListEntriesPage retrieves one keyset page of an owner's entries
	// ordered by (occurred_on, entry_id) descending. A zero before date
	// starts from the newest entry; otherwise only entries strictly
	// before the (before, beforeID) cursor are returned.
	ListEntriesPage(ctx context.Context, ownerID string, limit int, before time.Time, beforeID string) ([]domain.LedgerEntry, error)

	// HasIncomeEntryInRange reports whether an income entry with the
	// given category exists for the owner inside [from, to]. The
	// salary-crediting idempotency guard is built on this check.
	HasIncomeEntryInRange(ctx context.Context, ownerID, category string, from, to time.Time) (bool, error)
}

// LedgerWriter defines write operations for ledger entries.
type LedgerWriter interface {
	// CreateEntry persists a new ledger entry.
	CreateEntry(ctx context.Context, entry domain.LedgerEntry) error
}

// LedgerRepositoryFacade combines all ledger repository interfaces.
type LedgerRepositoryFacade interface {
	LedgerReader
	LedgerWriter
}
