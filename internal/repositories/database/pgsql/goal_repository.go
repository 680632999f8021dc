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

const goalColumns = `goal_id, owner_id, name, target_amount, target_on, status, created_at, created_by, last_updated_at, last_updated_by`

type PgxGoalRepository struct {
	pool *pgxpool.Pool
}

// newPgxGoalRepository creates a new repository for savings goals.
func newPgxGoalRepository(pool *pgxpool.Pool) portsrepo.GoalRepositoryFacade {
	return &PgxGoalRepository{pool: pool}
}

// Ensure PgxGoalRepository implements portsrepo.GoalRepositoryFacade
var _ portsrepo.GoalRepositoryFacade = (*PgxGoalRepository)(nil)

// SaveGoal inserts a new goal.
func (r *PgxGoalRepository) SaveGoal(ctx context.Context, goal domain.Goal) error {
	m := mapping.ToModelGoal(goal)

	query := `
		INSERT INTO goals (` + goalColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.pool.Exec(ctx, query,
		m.GoalID,
		m.OwnerID,
		m.Name,
		m.TargetAmount,
		m.TargetOn,
		m.Status,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: goal with ID %s already exists", apperrors.ErrDuplicate, m.GoalID)
		}
		return fmt.Errorf("failed to save goal %s: %w", m.GoalID, err)
	}
	return nil
}

// FindGoalByID retrieves a goal by its ID.
func (r *PgxGoalRepository) FindGoalByID(ctx context.Context, goalID string) (*domain.Goal, error) {
	query := `
		SELECT ` + goalColumns + `
		FROM goals
		WHERE goal_id = $1;
	`
	m, err := scanGoal(r.pool.QueryRow(ctx, query, goalID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: goal %s", apperrors.ErrNotFound, goalID)
		}
		return nil, fmt.Errorf("failed to find goal %s: %w", goalID, err)
	}

	goal := mapping.ToDomainGoal(m)
	return &goal, nil
}

// ListGoalsByOwner retrieves all of an owner's goals.
func (r *PgxGoalRepository) ListGoalsByOwner(ctx context.Context, ownerID string) ([]domain.Goal, error) {
	query := `
		SELECT ` + goalColumns + `
		FROM goals
		WHERE owner_id = $1
		ORDER BY target_on, goal_id;
	`
	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals for owner %s: %w", ownerID, err)
	}
	defer rows.Close()

	var goals []models.Goal
	for rows.Next() {
		m, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan goal: %w", err)
		}
		goals = append(goals, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading goals: %w", err)
	}
	return mapping.ToDomainGoalSlice(goals), nil
}

// UpdateGoalStatus overwrites the derived status after an evaluation.
func (r *PgxGoalRepository) UpdateGoalStatus(ctx context.Context, goalID string, status domain.GoalStatus, updatedAt time.Time) error {
	query := `
		UPDATE goals
		SET status = $2, last_updated_at = $3
		WHERE goal_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query, goalID, models.GoalStatus(status), updatedAt)
	if err != nil {
		return fmt.Errorf("failed to update goal %s: %w", goalID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: goal %s", apperrors.ErrNotFound, goalID)
	}
	return nil
}

func scanGoal(row pgx.Row) (models.Goal, error) {
	var m models.Goal
	err := row.Scan(
		&m.GoalID,
		&m.OwnerID,
		&m.Name,
		&m.TargetAmount,
		&m.TargetOn,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}
