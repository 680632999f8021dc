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

const planColumns = `plan_id, owner_id, goal_id, name, monthly_contribution, expected_return_min, expected_return_max, annual_increase_percent, compounding, start_on, end_on, status, created_at, created_by, last_updated_at, last_updated_by`

type PgxPlanRepository struct {
	pool *pgxpool.Pool
}

// newPgxPlanRepository creates a new repository for investment plans.
func newPgxPlanRepository(pool *pgxpool.Pool) portsrepo.PlanRepositoryFacade {
	return &PgxPlanRepository{pool: pool}
}

// Ensure PgxPlanRepository implements portsrepo.PlanRepositoryFacade
var _ portsrepo.PlanRepositoryFacade = (*PgxPlanRepository)(nil)

// SavePlan inserts a new investment plan.
func (r *PgxPlanRepository) SavePlan(ctx context.Context, plan domain.InvestmentPlan) error {
	m := mapping.ToModelInvestmentPlan(plan)

	query := `
		INSERT INTO investment_plans (` + planColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err := r.pool.Exec(ctx, query,
		m.PlanID,
		m.OwnerID,
		m.GoalID,
		m.Name,
		m.MonthlyContribution,
		m.ExpectedReturnMin,
		m.ExpectedReturnMax,
		m.AnnualIncreasePercent,
		m.Compounding,
		m.StartOn,
		m.EndOn,
		m.Status,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: plan with ID %s already exists", apperrors.ErrDuplicate, m.PlanID)
		}
		return fmt.Errorf("failed to save investment plan %s: %w", m.PlanID, err)
	}
	return nil
}

// FindPlanByID retrieves an investment plan by its ID.
func (r *PgxPlanRepository) FindPlanByID(ctx context.Context, planID string) (*domain.InvestmentPlan, error) {
	query := `
		SELECT ` + planColumns + `
		FROM investment_plans
		WHERE plan_id = $1;
	`
	m, err := scanInvestmentPlan(r.pool.QueryRow(ctx, query, planID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: investment plan %s", apperrors.ErrNotFound, planID)
		}
		return nil, fmt.Errorf("failed to find investment plan %s: %w", planID, err)
	}

	plan := mapping.ToDomainInvestmentPlan(m)
	return &plan, nil
}

// ListPlansByOwner retrieves all of an owner's plans.
func (r *PgxPlanRepository) ListPlansByOwner(ctx context.Context, ownerID string) ([]domain.InvestmentPlan, error) {
	query := `
		SELECT ` + planColumns + `
		FROM investment_plans
		WHERE owner_id = $1
		ORDER BY start_on, plan_id;
	`
	return r.queryPlans(ctx, query, ownerID)
}

// FindActivePlans retrieves the owner's ACTIVE plans.
func (r *PgxPlanRepository) FindActivePlans(ctx context.Context, ownerID string) ([]domain.InvestmentPlan, error) {
	query := `
		SELECT ` + planColumns + `
		FROM investment_plans
		WHERE owner_id = $1 AND status = $2
		ORDER BY start_on, plan_id;
	`
	return r.queryPlans(ctx, query, ownerID, models.PlanStatus(domain.PlanActive))
}

// FindPlansByGoal retrieves the plans linked to a goal.
func (r *PgxPlanRepository) FindPlansByGoal(ctx context.Context, goalID string) ([]domain.InvestmentPlan, error) {
	query := `
		SELECT ` + planColumns + `
		FROM investment_plans
		WHERE goal_id = $1
		ORDER BY start_on, plan_id;
	`
	return r.queryPlans(ctx, query, goalID)
}

// UpdatePlanStatus moves a plan between lifecycle states.
func (r *PgxPlanRepository) UpdatePlanStatus(ctx context.Context, planID string, status domain.PlanStatus, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE investment_plans
		SET status = $2, last_updated_by = $3, last_updated_at = $4
		WHERE plan_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query, planID, models.PlanStatus(status), updatedBy, updatedAt)
	if err != nil {
		return fmt.Errorf("failed to update investment plan %s: %w", planID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: investment plan %s", apperrors.ErrNotFound, planID)
	}
	return nil
}

func (r *PgxPlanRepository) queryPlans(ctx context.Context, query string, args ...any) ([]domain.InvestmentPlan, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query investment plans: %w", err)
	}
	defer rows.Close()

	var plans []models.InvestmentPlan
	for rows.Next() {
		m, err := scanInvestmentPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan investment plan: %w", err)
		}
		plans = append(plans, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading investment plans: %w", err)
	}
	return mapping.ToDomainInvestmentPlanSlice(plans), nil
}

func scanInvestmentPlan(row pgx.Row) (models.InvestmentPlan, error) {
	var m models.InvestmentPlan
	err := row.Scan(
		&m.PlanID,
		&m.OwnerID,
		&m.GoalID,
		&m.Name,
		&m.MonthlyContribution,
		&m.ExpectedReturnMin,
		&m.ExpectedReturnMax,
		&m.AnnualIncreasePercent,
		&m.Compounding,
		&m.StartOn,
		&m.EndOn,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}
