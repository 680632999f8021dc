package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nkhandel/personal_finance_app/internal/apperrors"
	"github.com/nkhandel/personal_finance_app/internal/core/domain"
	portsrepo "github.com/nkhandel/personal_finance_app/internal/core/ports/repositories"
	"github.com/nkhandel/personal_finance_app/internal/models"
	"github.com/nkhandel/personal_finance_app/internal/utils/mapping"
)

type PgxBudgetRepository struct {
	pool *pgxpool.Pool
}

// newPgxBudgetRepository creates a new repository for budget rules and the
// category classification table.
func newPgxBudgetRepository(pool *pgxpool.Pool) portsrepo.BudgetRepositoryFacade {
	return &PgxBudgetRepository{pool: pool}
}

// Ensure PgxBudgetRepository implements portsrepo.BudgetRepositoryFacade
var _ portsrepo.BudgetRepositoryFacade = (*PgxBudgetRepository)(nil)

// SaveBudgetRule creates or replaces the owner's budget rule. One rule
// per owner, so this is an upsert keyed on owner_id.
func (r *PgxBudgetRepository) SaveBudgetRule(ctx context.Context, rule domain.BudgetRule) error {
	m := mapping.ToModelBudgetRule(rule)

	query := `
		INSERT INTO budget_rules (owner_id, needs_percent, wants_percent, savings_percent, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (owner_id) DO UPDATE
		SET needs_percent = EXCLUDED.needs_percent,
		    wants_percent = EXCLUDED.wants_percent,
		    savings_percent = EXCLUDED.savings_percent,
		    last_updated_at = EXCLUDED.last_updated_at,
		    last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.pool.Exec(ctx, query,
		m.OwnerID,
		m.NeedsPercent,
		m.WantsPercent,
		m.SavingsPercent,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save budget rule for owner %s: %w", m.OwnerID, err)
	}
	return nil
}

// FindBudgetRule retrieves the owner's budget rule.
func (r *PgxBudgetRepository) FindBudgetRule(ctx context.Context, ownerID string) (*domain.BudgetRule, error) {
	query := `
		SELECT owner_id, needs_percent, wants_percent, savings_percent, created_at, created_by, last_updated_at, last_updated_by
		FROM budget_rules
		WHERE owner_id = $1;
	`
	var m models.BudgetRule
	err := r.pool.QueryRow(ctx, query, ownerID).Scan(
		&m.OwnerID,
		&m.NeedsPercent,
		&m.WantsPercent,
		&m.SavingsPercent,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: no budget rule for owner %s", apperrors.ErrNotFound, ownerID)
		}
		return nil, fmt.Errorf("failed to find budget rule for owner %s: %w", ownerID, err)
	}

	rule := mapping.ToDomainBudgetRule(m)
	return &rule, nil
}

// FindCategoryClassification retrieves the shared category-to-bucket
// lookup table.
func (r *PgxBudgetRepository) FindCategoryClassification(ctx context.Context) (domain.CategoryClassification, error) {
	query := `SELECT category, bucket FROM category_classifications;`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query category classifications: %w", err)
	}
	defer rows.Close()

	var classifications []models.CategoryClassification
	for rows.Next() {
		var m models.CategoryClassification
		if err := rows.Scan(&m.Category, &m.Bucket); err != nil {
			return nil, fmt.Errorf("failed to scan category classification: %w", err)
		}
		classifications = append(classifications, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading category classifications: %w", err)
	}
	return mapping.ToDomainCategoryClassification(classifications), nil
}
