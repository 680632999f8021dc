package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/nkhandel/personal_finance_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	ledgerRepo := newPgxLedgerRepository(dbPool)
	recurringRepo := newPgxRecurringRepository(dbPool)
	salaryRepo := newPgxSalaryRepository(dbPool)
	planRepo := newPgxPlanRepository(dbPool)
	goalRepo := newPgxGoalRepository(dbPool)
	budgetRepo := newPgxBudgetRepository(dbPool)
	auditRepo := newPgxAuditRepository(dbPool)

	return portsrepo.RepositoryProvider{
		LedgerRepo:    ledgerRepo,
		RecurringRepo: recurringRepo,
		SalaryRepo:    salaryRepo,
		PlanRepo:      planRepo,
		GoalRepo:      goalRepo,
		BudgetRepo:    budgetRepo,
		AuditRepo:     auditRepo,
	}
}
