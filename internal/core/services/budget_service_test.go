package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/nkhandel/personal_finance_app/internal/apperrors"
	"github.com/nkhandel/personal_finance_app/internal/core/domain"
	"github.com/nkhandel/personal_finance_app/internal/core/services"
	"github.com/nkhandel/personal_finance_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// --- Mock BudgetRepository ---
type MockBudgetRepository struct {
	mock.Mock
}

func (m *MockBudgetRepository) FindBudgetRule(ctx context.Context, ownerID string) (*domain.BudgetRule, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BudgetRule), args.Error(1)
}

func (m *MockBudgetRepository) FindCategoryClassification(ctx context.Context) (domain.CategoryClassification, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.CategoryClassification), args.Error(1)
}

func (m *MockBudgetRepository) SaveBudgetRule(ctx context.Context, rule domain.BudgetRule) error {
	args := m.Called(ctx, rule)
	return args.Error(0)
}

var testClassification = domain.CategoryClassification{
	"Rent":       domain.BucketNeeds,
	"Groceries":  domain.BucketNeeds,
	"Dining":     domain.BucketWants,
	"MutualFund": domain.BucketSavings,
}

func TestAllocate(t *testing.T) {
	rule := domain.DefaultBudgetRule("owner-1")

	t.Run("budgets partition the income total", func(t *testing.T) {
		entries := []domain.LedgerEntry{
			{Kind: domain.EntryIncome, Category: "Salary", Amount: decimal.NewFromInt(10000)},
			{Kind: domain.EntryExpense, Category: "Rent", Amount: decimal.NewFromInt(3000)},
			{Kind: domain.EntryExpense, Category: "Dining", Amount: decimal.NewFromInt(1000)},
			{Kind: domain.EntryInvestment, Category: "Stocks", Amount: decimal.NewFromInt(2000)},
		}

		summary := services.Allocate(entries, rule, testClassification)

		require.True(t, summary.IncomeTotal.Equal(decimal.NewFromInt(10000)))
		budgetSum := decimal.Zero
		for _, report := range summary.Buckets {
			budgetSum = budgetSum.Add(report.Budget)
		}
		assert.True(t, budgetSum.Equal(summary.IncomeTotal), "budgets %s income %s", budgetSum, summary.IncomeTotal)

		needs := summary.Buckets[domain.BucketNeeds]
		assert.True(t, needs.Budget.Equal(decimal.NewFromInt(5000)))
		assert.True(t, needs.Actual.Equal(decimal.NewFromInt(3000)))
		assert.True(t, needs.Percentage.Equal(decimal.NewFromInt(30)))
		assert.True(t, needs.Remaining.Equal(decimal.NewFromInt(2000)))
	})

	t.Run("investment entries land in savings regardless of category", func(t *testing.T) {
		entries := []domain.LedgerEntry{
			{Kind: domain.EntryIncome, Category: "Salary", Amount: decimal.NewFromInt(1000)},
			{Kind: domain.EntryInvestment, Category: "Dining", Amount: decimal.NewFromInt(300)},
		}

		summary := services.Allocate(entries, rule, testClassification)

		assert.True(t, summary.Buckets[domain.BucketSavings].Actual.Equal(decimal.NewFromInt(300)))
		assert.True(t, summary.Buckets[domain.BucketWants].Actual.IsZero())
	})

	t.Run("savings-classified income is excluded before percentages", func(t *testing.T) {
		entries := []domain.LedgerEntry{
			{Kind: domain.EntryIncome, Category: "Salary", Amount: decimal.NewFromInt(8000)},
			{Kind: domain.EntryIncome, Category: "MutualFund", Amount: decimal.NewFromInt(2000)},
			{Kind: domain.EntryExpense, Category: "Rent", Amount: decimal.NewFromInt(4000)},
		}

		summary := services.Allocate(entries, rule, testClassification)

		require.True(t, summary.IncomeTotal.Equal(decimal.NewFromInt(8000)), "income %s", summary.IncomeTotal)
		assert.True(t, summary.Buckets[domain.BucketNeeds].Percentage.Equal(decimal.NewFromInt(50)))
	})

	t.Run("unclassified expense categories default to wants", func(t *testing.T) {
		entries := []domain.LedgerEntry{
			{Kind: domain.EntryIncome, Category: "Salary", Amount: decimal.NewFromInt(1000)},
			{Kind: domain.EntryExpense, Category: "Gadgets", Amount: decimal.NewFromInt(250)},
		}

		summary := services.Allocate(entries, rule, testClassification)

		assert.True(t, summary.Buckets[domain.BucketWants].Actual.Equal(decimal.NewFromInt(250)))
	})

	t.Run("zero income yields zero percentages", func(t *testing.T) {
		entries := []domain.LedgerEntry{
			{Kind: domain.EntryExpense, Category: "Rent", Amount: decimal.NewFromInt(500)},
		}

		summary := services.Allocate(entries, rule, testClassification)

		require.True(t, summary.IncomeTotal.IsZero())
		for bucket, report := range summary.Buckets {
			assert.True(t, report.Percentage.IsZero(), "bucket %s percentage %s", bucket, report.Percentage)
			assert.True(t, report.Budget.IsZero(), "bucket %s budget %s", bucket, report.Budget)
		}
		assert.True(t, summary.Buckets[domain.BucketNeeds].Remaining.Equal(decimal.NewFromInt(-500)))
	})
}

// --- Test Suite ---
type BudgetServiceTestSuite struct {
	suite.Suite
	mockBudget *MockBudgetRepository
	mockLedger *MockLedgerRepository
}

func (suite *BudgetServiceTestSuite) SetupTest() {
	suite.mockBudget = new(MockBudgetRepository)
	suite.mockLedger = new(MockLedgerRepository)
}

func (suite *BudgetServiceTestSuite) TestMonthSummaryFallsBackToDefaultRule() {
	ctx := context.Background()
	month := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	entries := []domain.LedgerEntry{
		{Kind: domain.EntryIncome, Category: "Salary", Amount: decimal.NewFromInt(1000)},
	}

	suite.mockLedger.On("ListEntriesByOwner", ctx, "owner-1",
		time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC),
	).Return(entries, nil)
	suite.mockBudget.On("FindBudgetRule", ctx, "owner-1").Return(nil, apperrors.ErrNotFound)
	suite.mockBudget.On("FindCategoryClassification", ctx).Return(testClassification, nil)

	svc := services.NewBudgetService(suite.mockBudget, suite.mockLedger)
	summary, err := svc.MonthSummary(ctx, "owner-1", month)

	suite.Require().NoError(err)
	suite.Equal("2024-03", summary.Month)
	suite.Equal("owner-1", summary.OwnerID)
	// 50/30/20 default applied.
	suite.True(summary.Buckets[domain.BucketNeeds].Budget.Equal(decimal.NewFromInt(500)))
	suite.True(summary.Buckets[domain.BucketSavings].Budget.Equal(decimal.NewFromInt(200)))
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *BudgetServiceTestSuite) TestSetBudgetRuleRejectsBadSum() {
	ctx := context.Background()
	svc := services.NewBudgetService(suite.mockBudget, suite.mockLedger)

	rule, err := svc.SetBudgetRule(ctx, "owner-1", dto.SetBudgetRuleRequest{
		NeedsPercent:   decimal.NewFromInt(60),
		WantsPercent:   decimal.NewFromInt(30),
		SavingsPercent: decimal.NewFromInt(20),
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(rule)
	suite.mockBudget.AssertNotCalled(suite.T(), "SaveBudgetRule", mock.Anything, mock.Anything)
}

func (suite *BudgetServiceTestSuite) TestSetBudgetRulePersistsValidRule() {
	ctx := context.Background()
	suite.mockBudget.On("SaveBudgetRule", ctx, mock.MatchedBy(func(rule domain.BudgetRule) bool {
		return rule.OwnerID == "owner-1" && rule.NeedsPercent.Equal(decimal.NewFromInt(55))
	})).Return(nil)

	svc := services.NewBudgetService(suite.mockBudget, suite.mockLedger)
	rule, err := svc.SetBudgetRule(ctx, "owner-1", dto.SetBudgetRuleRequest{
		NeedsPercent:   decimal.NewFromInt(55),
		WantsPercent:   decimal.NewFromInt(25),
		SavingsPercent: decimal.NewFromInt(20),
	})

	suite.Require().NoError(err)
	suite.NotNil(rule)
	suite.mockBudget.AssertExpectations(suite.T())
}

func TestBudgetServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BudgetServiceTestSuite))
}
