package repositories

import (
	"context"

	"github.com/nkhandel/personal_finance_app/internal/core/domain"
)

// BudgetReader defines read operations for budget rules and the category
// classification table.
type BudgetReader interface {
	// FindBudgetRule retrieves the owner's budget rule, or ErrNotFound
	// when the owner has never saved one.
	FindBudgetRule(ctx context.Context, ownerID string) (*domain.BudgetRule, error)

	// FindCategoryClassification retrieves the shared category-to-bucket
	// lookup table.
	FindCategoryClassification(ctx context.Context) (domain.CategoryClassification, error)
}

// BudgetWriter defines write operations for budget rules.
type BudgetWriter interface {
	// SaveBudgetRule creates or replaces the owner's budget rule.
	SaveBudgetRule(ctx context.Context, rule domain.BudgetRule) error
}

// BudgetRepositoryFacade combines all budget repository interfaces.
type BudgetRepositoryFacade interface {
	BudgetReader
	BudgetWriter
}
