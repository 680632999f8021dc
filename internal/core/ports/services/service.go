package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Ledger     LedgerSvcFacade
	Recurring  RecurringSvcFacade
	Salary     SalarySvcFacade
	Plan       PlanSvcFacade
	Goal       GoalSvcFacade
	Budget     BudgetSvcFacade
	NetWorth   NetWorthSvcFacade
	Obligation ObligationSvc
}
