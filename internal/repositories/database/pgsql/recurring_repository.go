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

const recurringRuleColumns = `rule_id, owner_id, payload_template, frequency, next_due_on, active, created_at, created_by, last_updated_at, last_updated_by`

type PgxRecurringRepository struct {
	BaseRepository
}

// newPgxRecurringRepository creates a new repository for recurring rules.
func newPgxRecurringRepository(pool *pgxpool.Pool) portsrepo.RecurringRepositoryFacade {
	return &PgxRecurringRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxRecurringRepository implements portsrepo.RecurringRepositoryFacade
var _ portsrepo.RecurringRepositoryFacade = (*PgxRecurringRepository)(nil)

// SaveRule inserts a new recurring rule.
func (r *PgxRecurringRepository) SaveRule(ctx context.Context, rule domain.RecurringRule) error {
	m := mapping.ToModelRecurringRule(rule)

	query := `
		INSERT INTO recurring_rules (` + recurringRuleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.RuleID,
		m.OwnerID,
		m.PayloadTemplate,
		m.Frequency,
		m.NextDueOn,
		m.Active,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: rule with ID %s already exists", apperrors.ErrDuplicate, m.RuleID)
		}
		return fmt.Errorf("failed to save recurring rule %s: %w", m.RuleID, err)
	}
	return nil
}

// FindRuleByID retrieves a recurring rule by its ID.
func (r *PgxRecurringRepository) FindRuleByID(ctx context.Context, ruleID string) (*domain.RecurringRule, error) {
	query := `
		SELECT ` + recurringRuleColumns + `
		FROM recurring_rules
		WHERE rule_id = $1;
	`
	m, err := scanRecurringRule(r.Pool.QueryRow(ctx, query, ruleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: recurring rule %s", apperrors.ErrNotFound, ruleID)
		}
		return nil, fmt.Errorf("failed to find recurring rule %s: %w", ruleID, err)
	}

	rule := mapping.ToDomainRecurringRule(m)
	return &rule, nil
}

// ListRulesByOwner retrieves all of an owner's rules, active or not.
func (r *PgxRecurringRepository) ListRulesByOwner(ctx context.Context, ownerID string) ([]domain.RecurringRule, error) {
	query := `
		SELECT ` + recurringRuleColumns + `
		FROM recurring_rules
		WHERE owner_id = $1
		ORDER BY next_due_on, rule_id;
	`
	return r.queryRules(ctx, query, ownerID)
}

// FindDueRules retrieves every active rule due on or before asOf, across
// all owners.
func (r *PgxRecurringRepository) FindDueRules(ctx context.Context, asOf time.Time) ([]domain.RecurringRule, error) {
	query := `
		SELECT ` + recurringRuleColumns + `
		FROM recurring_rules
		WHERE active AND next_due_on <= $1
		ORDER BY next_due_on, rule_id;
	`
	return r.queryRules(ctx, query, asOf)
}

// SetRuleActive pauses or resumes a rule.
func (r *PgxRecurringRepository) SetRuleActive(ctx context.Context, ruleID string, active bool, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE recurring_rules
		SET active = $2, last_updated_by = $3, last_updated_at = $4
		WHERE rule_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, ruleID, active, updatedBy, updatedAt)
	if err != nil {
		return fmt.Errorf("failed to update recurring rule %s: %w", ruleID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: recurring rule %s", apperrors.ErrNotFound, ruleID)
	}
	return nil
}

// MaterializeRule writes the materialized ledger entry and advances the
// rule's next due date inside one DB transaction, so a failure can never
// leave the entry written but the schedule stale or vice versa.
func (r *PgxRecurringRepository) MaterializeRule(ctx context.Context, entry domain.LedgerEntry, ruleID string, nextDueOn time.Time, updatedAt time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // No-op once committed

	m := mapping.ToModelLedgerEntry(entry)
	entryQuery := `
		INSERT INTO ledger_entries (` + ledgerEntryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err = tx.Exec(ctx, entryQuery,
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
		return fmt.Errorf("failed to insert materialized entry for rule %s: %w", ruleID, err)
	}

	advanceQuery := `
		UPDATE recurring_rules
		SET next_due_on = $2, last_updated_at = $3
		WHERE rule_id = $1;
	`
	tag, err := tx.Exec(ctx, advanceQuery, ruleID, nextDueOn, updatedAt)
	if err != nil {
		return fmt.Errorf("failed to advance recurring rule %s: %w", ruleID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: recurring rule %s", apperrors.ErrNotFound, ruleID)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxRecurringRepository) queryRules(ctx context.Context, query string, args ...any) ([]domain.RecurringRule, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query recurring rules: %w", err)
	}
	defer rows.Close()

	var rules []models.RecurringRule
	for rows.Next() {
		m, err := scanRecurringRule(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan recurring rule: %w", err)
		}
		rules = append(rules, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading recurring rules: %w", err)
	}
	return mapping.ToDomainRecurringRuleSlice(rules), nil
}

func scanRecurringRule(row pgx.Row) (models.RecurringRule, error) {
	var m models.RecurringRule
	err := row.Scan(
		&m.RuleID,
		&m.OwnerID,
		&m.PayloadTemplate,
		&m.Frequency,
		&m.NextDueOn,
		&m.Active,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}
