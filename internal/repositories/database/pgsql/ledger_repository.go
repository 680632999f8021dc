package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nkhandel/personal_finance_app/internal/apperrors"
	"github.com/nkhandel/personal_finance_app/internal/core/domain"
	portsrepo "github.com/nkhandel/personal_finance_app/internal/core/ports/repositories"
	"github.com/nkhandel/personal_finance_app/internal/models"
	"github.com/nkhandel/personal_finance_app/internal/utils/mapping"
)

const ledgerEntryColumns = `entry_id, owner_id, amount, kind, category, occurred_on, notes, recurring_rule_id, plan_id, created_at, created_by, last_updated_at, last_updated_by`

type PgxLedgerRepository struct {
	pool *pgxpool.Pool
}

// newPgxLedgerRepository creates a new repository for ledger entries.
func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepositoryFacade {
	return &PgxLedgerRepository{pool: pool}
}

// Ensure PgxLedgerRepository implements portsrepo.LedgerRepositoryFacade
var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

// CreateEntry inserts a new ledger entry.
func (r *PgxLedgerRepository) CreateEntry(ctx context.Context, entry domain.LedgerEntry) error {
	m := mapping.ToModelLedgerEntry(entry)

	query := `
		INSERT INTO ledger_entries (` + ledgerEntryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.pool.Exec(ctx, query,
		m.EntryID,
		m.OwnerID,
		m.Amount,
		m.Kind,
		m.Category,
		m.OccurredOn,
		m.Notes,
		m.RecurringRuleID,
		m.PlanID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: entry with ID %s already exists", apperrors.ErrDuplicate, m.EntryID)
		}
		return fmt.Errorf("failed to save ledger entry %s: %w", m.EntryID, err)
	}
	return nil
}

// FindEntryByID retrieves a ledger entry by its ID.
func (r *PgxLedgerRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.LedgerEntry, error) {
	query := `
		SELECT ` + ledgerEntryColumns + `
		FROM ledger_entries
		WHERE entry_id = $1;
	`
	m, err := scanLedgerEntry(r.pool.QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: ledger entry %s", apperrors.ErrNotFound, entryID)
		}
		return nil, fmt.Errorf("failed to find ledger entry %s: %w", entryID, err)
	}

	entry := mapping.ToDomainLedgerEntry(m)
	return &entry, nil
}

// ListEntriesByOwner retrieves an owner's entries ordered by occurrence
// date. Zero bounds leave that end of the range open.
func (r *PgxLedgerRepository) ListEntriesByOwner(ctx context.Context, ownerID string, from, to time.Time) ([]domain.LedgerEntry, error) {
	query := `
		SELECT ` + ledgerEntryColumns + `
		FROM ledger_entries
		WHERE owner_id = $1
		  AND ($2::date IS NULL OR occurred_on >= $2)
		  AND ($3::date IS NULL OR occurred_on <= $3)
		ORDER BY occurred_on, entry_id;
	`
	rows, err := r.pool.Query(ctx, query, ownerID, nullableDate(from), nullableDate(to))
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger entries for owner %s: %w", ownerID, err)
	}
	defer rows.Close()

	var entries []models.LedgerEntry
	for rows.Next() {
		m, err := scanLedgerEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ledger entry: %w", err)
		}
		entries = append(entries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading ledger entries: %w", err)
	}
	return mapping.ToDomainLedgerEntrySlice(entries), nil
}

// ListEntriesPage retrieves one keyset page of an owner's entries, newest
// first. A NULL cursor starts at the top; otherwise only rows strictly
// before the (occurred_on, entry_id) cursor are returned.
func (r *PgxLedgerRepository) ListEntriesPage(ctx context.Context, ownerID string, limit int, before time.Time, beforeID string) ([]domain.LedgerEntry, error) {
	query := `
		SELECT ` + ledgerEntryColumns + `
		FROM ledger_entries
		WHERE owner_id = $1
		  AND ($2::date IS NULL OR occurred_on < $2 OR (occurred_on = $2 AND entry_id::text < $3))
		ORDER BY occurred_on DESC, entry_id::text DESC
		LIMIT $4;
	`
	rows, err := r.pool.Query(ctx, query, ownerID, nullableDate(before), beforeID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger entry page for owner %s: %w", ownerID, err)
	}
	defer rows.Close()

	var entries []models.LedgerEntry
	for rows.Next() {
		m, err := scanLedgerEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ledger entry: %w", err)
		}
		entries = append(entries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading ledger entries: %w", err)
	}
	return mapping.ToDomainLedgerEntrySlice(entries), nil
}

// HasIncomeEntryInRange reports whether an income entry with the given
// category exists inside [from, to].
func (r *PgxLedgerRepository) HasIncomeEntryInRange(ctx context.Context, ownerID, category string, from, to time.Time) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM ledger_entries
			WHERE owner_id = $1
			  AND kind = $2
			  AND category = $3
			  AND occurred_on BETWEEN $4 AND $5
		);
	`
	var exists bool
	err := r.pool.QueryRow(ctx, query, ownerID, models.EntryKind(domain.EntryIncome), category, from, to).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check income entries for owner %s: %w", ownerID, err)
	}
	return exists, nil
}

// scanLedgerEntry scans one ledger entry row from either a Row or Rows.
func scanLedgerEntry(row pgx.Row) (models.LedgerEntry, error) {
	var m models.LedgerEntry
	err := row.Scan(
		&m.EntryID,
		&m.OwnerID,
		&m.Amount,
		&m.Kind,
		&m.Category,
		&m.OccurredOn,
		&m.Notes,
		&m.RecurringRuleID,
		&m.PlanID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// nullableDate maps the zero time to SQL NULL so open-ended ranges can
// share one query.
func nullableDate(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
