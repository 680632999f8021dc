package services

import (
	portsrepo "github.com/nkhandel/personal_finance_app/internal/core/ports/repositories"
	portssvc "github.com/nkhandel/personal_finance_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Ledger = NewLedgerService(repos.LedgerRepo)
	container.Recurring = NewRecurringService(repos.RecurringRepo)
	container.Salary = NewSalaryService(repos.SalaryRepo)
	container.Plan = NewPlanService(repos.PlanRepo)
	container.Goal = NewGoalService(repos.GoalRepo, repos.PlanRepo, repos.LedgerRepo)
	container.Budget = NewBudgetService(repos.BudgetRepo, repos.LedgerRepo)
	container.NetWorth = NewNetWorthService(repos.LedgerRepo, repos.PlanRepo)
	container.Obligation = NewObligationService(repos.LedgerRepo, repos.RecurringRepo, repos.SalaryRepo, repos.AuditRepo)

	return container
}
