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

const salaryColumns = `salary_id, owner_id, amount, effective_on, created_at, created_by, last_updated_at, last_updated_by`

type PgxSalaryRepository struct {
	pool *pgxpool.Pool
}

// newPgxSalaryRepository creates a new repository for salary history.
func newPgxSalaryRepository(pool *pgxpool.Pool) portsrepo.SalaryRepositoryFacade {
	return &PgxSalaryRepository{pool: pool}
}

// Ensure PgxSalaryRepository implements portsrepo.SalaryRepositoryFacade
var _ portsrepo.SalaryRepositoryFacade = (*PgxSalaryRepository)(nil)

// SaveSalary appends a record to the owner's salary history.
func (r *PgxSalaryRepository) SaveSalary(ctx context.Context, record domain.SalaryRecord) error {
	m := mapping.ToModelSalaryRecord(record)

	query := `
		INSERT INTO salary_records (` + salaryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.pool.Exec(ctx, query,
		m.SalaryID,
		m.OwnerID,
		m.Amount,
		m.EffectiveOn,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: salary record with ID %s already exists", apperrors.ErrDuplicate, m.SalaryID)
		}
		return fmt.Errorf("failed to save salary record %s: %w", m.SalaryID, err)
	}
	return nil
}

// FindCurrentSalary retrieves the most recent record effective on or
// before asOf.
func (r *PgxSalaryRepository) FindCurrentSalary(ctx context.Context, ownerID string, asOf time.Time) (*domain.SalaryRecord, error) {
	query := `
		SELECT ` + salaryColumns + `
		FROM salary_records
		WHERE owner_id = $1 AND effective_on <= $2
		ORDER BY effective_on DESC
		LIMIT 1;
	`
	m, err := scanSalaryRecord(r.pool.QueryRow(ctx, query, ownerID, asOf))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: no salary record for owner %s", apperrors.ErrNotFound, ownerID)
		}
		return nil, fmt.Errorf("failed to find current salary for owner %s: %w", ownerID, err)
	}

	record := mapping.ToDomainSalaryRecord(m)
	return &record, nil
}

// ListSalariesByOwner retrieves the owner's salary history, most recent
// first.
func (r *PgxSalaryRepository) ListSalariesByOwner(ctx context.Context, ownerID string) ([]domain.SalaryRecord, error) {
	query := `
		SELECT ` + salaryColumns + `
		FROM salary_records
		WHERE owner_id = $1
		ORDER BY effective_on DESC;
	`
	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary records for owner %s: %w", ownerID, err)
	}
	defer rows.Close()

	var records []models.SalaryRecord
	for rows.Next() {
		m, err := scanSalaryRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan salary record: %w", err)
		}
		records = append(records, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading salary records: %w", err)
	}
	return mapping.ToDomainSalaryRecordSlice(records), nil
}

// ListOwnerIDs retrieves the distinct owners with at least one salary
// record.
func (r *PgxSalaryRepository) ListOwnerIDs(ctx context.Context) ([]string, error) {
	query := `SELECT DISTINCT owner_id FROM salary_records ORDER BY owner_id;`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary owners: %w", err)
	}
	defer rows.Close()

	var ownerIDs []string
	for rows.Next() {
		var ownerID string
		if err := rows.Scan(&ownerID); err != nil {
			return nil, fmt.Errorf("failed to scan salary owner: %w", err)
		}
		ownerIDs = append(ownerIDs, ownerID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading salary owners: %w", err)
	}
	return ownerIDs, nil
}

func scanSalaryRecord(row pgx.Row) (models.SalaryRecord, error) {
	var m models.SalaryRecord
	err := row.Scan(
		&m.SalaryID,
		&m.OwnerID,
		&m.Amount,
		&m.EffectiveOn,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}
