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
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock GoalRepository ---
type MockGoalRepository struct {
	mock.Mock
}

func (m *MockGoalRepository) FindGoalByID(ctx context.Context, goalID string) (*domain.Goal, error) {
	args := m.Called(ctx, goalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Goal), args.Error(1)
}

func (m *MockGoalRepository) ListGoalsByOwner(ctx context.Context, ownerID string) ([]domain.Goal, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Goal), args.Error(1)
}

func (m *MockGoalRepository) SaveGoal(ctx context.Context, goal domain.Goal) error {
	args := m.Called(ctx, goal)
	return args.Error(0)
}

func (m *MockGoalRepository) UpdateGoalStatus(ctx context.Context, goalID string, status domain.GoalStatus, updatedAt time.Time) error {
	args := m.Called(ctx, goalID, status, updatedAt)
	return args.Error(0)
}

// --- Test Suite ---
type GoalServiceTestSuite struct {
	suite.Suite
	mockGoals  *MockGoalRepository
	mockPlans  *MockPlanRepository
	mockLedger *MockLedgerRepository
	today      time.Time
}

func (suite *GoalServiceTestSuite) SetupTest() {
	suite.mockGoals = new(MockGoalRepository)
	suite.mockPlans = new(MockPlanRepository)
	suite.mockLedger = new(MockLedgerRepository)
	suite.today = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
}

func (suite *GoalServiceTestSuite) newService() func(ctx context.Context, ownerID, goalID string) (*domain.GoalProgress, error) {
	today := suite.today
	svc := services.NewGoalService(suite.mockGoals, suite.mockPlans, suite.mockLedger,
		services.WithGoalClock(func() time.Time { return today }))
	return svc.EvaluateGoal
}

func zeroReturnPlan(planID string, contribution int64) domain.InvestmentPlan {
	return domain.InvestmentPlan{
		PlanID:              planID,
		OwnerID:             "owner-1",
		MonthlyContribution: decimal.NewFromInt(contribution),
		Status:              domain.PlanActive,
	}
}

// With a zero-return plan the arithmetic is exact: a 12-month horizon and a
// 12000 target require 1000 per month, so a 900 contribution sits exactly on
// the 90% tolerance boundary and must still classify as on track.
func (suite *GoalServiceTestSuite) TestEvaluateGoalOnTrackAtExactTolerance() {
	ctx := context.Background()
	goal := &domain.Goal{
		GoalID:       "goal-1",
		OwnerID:      "owner-1",
		TargetAmount: decimal.NewFromInt(12000),
		TargetOn:     time.Date(2024, time.December, 27, 0, 0, 0, 0, time.UTC), // 361 days, 12 months
	}

	suite.mockGoals.On("FindGoalByID", ctx, "goal-1").Return(goal, nil)
	suite.mockPlans.On("FindPlansByGoal", ctx, "goal-1").Return([]domain.InvestmentPlan{zeroReturnPlan("plan-1", 900)}, nil)
	suite.mockLedger.On("ListEntriesByOwner", ctx, "owner-1", mock.Anything, mock.Anything).Return([]domain.LedgerEntry{}, nil)
	suite.mockGoals.On("UpdateGoalStatus", ctx, "goal-1", domain.GoalOnTrack, mock.Anything).Return(nil)

	progress, err := suite.newService()(ctx, "owner-1", "goal-1")

	suite.Require().NoError(err)
	suite.Equal(12, progress.MonthsRemaining)
	suite.True(progress.RequiredSIP.Equal(decimal.NewFromInt(1000)), "required %s", progress.RequiredSIP)
	suite.True(progress.ProjectedValue.Equal(decimal.NewFromInt(10800)), "projected %s", progress.ProjectedValue)
	suite.True(progress.ProgressPercent.Equal(decimal.NewFromInt(90)), "progress %s", progress.ProgressPercent)
	suite.Equal(domain.GoalOnTrack, progress.Status)
	suite.mockGoals.AssertExpectations(suite.T())
}

func (suite *GoalServiceTestSuite) TestEvaluateGoalBehindBelowTolerance() {
	ctx := context.Background()
	goal := &domain.Goal{
		GoalID:       "goal-1",
		OwnerID:      "owner-1",
		TargetAmount: decimal.NewFromInt(12000),
		TargetOn:     time.Date(2024, time.December, 27, 0, 0, 0, 0, time.UTC),
	}

	suite.mockGoals.On("FindGoalByID", ctx, "goal-1").Return(goal, nil)
	suite.mockPlans.On("FindPlansByGoal", ctx, "goal-1").Return([]domain.InvestmentPlan{zeroReturnPlan("plan-1", 899)}, nil)
	suite.mockLedger.On("ListEntriesByOwner", ctx, "owner-1", mock.Anything, mock.Anything).Return([]domain.LedgerEntry{}, nil)
	suite.mockGoals.On("UpdateGoalStatus", ctx, "goal-1", domain.GoalBehind, mock.Anything).Return(nil)

	progress, err := suite.newService()(ctx, "owner-1", "goal-1")

	suite.Require().NoError(err)
	suite.Equal(domain.GoalBehind, progress.Status)
	suite.mockGoals.AssertExpectations(suite.T())
}

// Realized investments past the target complete the goal regardless of the
// ongoing contribution, and the required contribution collapses to zero.
func (suite *GoalServiceTestSuite) TestEvaluateGoalCompletedByRealizedInvestments() {
	ctx := context.Background()
	goal := &domain.Goal{
		GoalID:       "goal-1",
		OwnerID:      "owner-1",
		TargetAmount: decimal.NewFromInt(1000),
		TargetOn:     suite.today,
	}
	planID := "plan-1"
	otherPlanID := "plan-other"
	entries := []domain.LedgerEntry{
		{EntryID: "e1", OwnerID: "owner-1", Kind: domain.EntryInvestment, Amount: decimal.NewFromInt(1500), PlanID: &planID},
		{EntryID: "e2", OwnerID: "owner-1", Kind: domain.EntryInvestment, Amount: decimal.NewFromInt(400), PlanID: &otherPlanID},
		{EntryID: "e3", OwnerID: "owner-1", Kind: domain.EntryExpense, Amount: decimal.NewFromInt(50), Category: "Food"},
	}

	suite.mockGoals.On("FindGoalByID", ctx, "goal-1").Return(goal, nil)
	suite.mockPlans.On("FindPlansByGoal", ctx, "goal-1").Return([]domain.InvestmentPlan{zeroReturnPlan("plan-1", 100)}, nil)
	suite.mockLedger.On("ListEntriesByOwner", ctx, "owner-1", mock.Anything, mock.Anything).Return(entries, nil)
	suite.mockGoals.On("UpdateGoalStatus", ctx, "goal-1", domain.GoalCompleted, mock.Anything).Return(nil)

	progress, err := suite.newService()(ctx, "owner-1", "goal-1")

	suite.Require().NoError(err)
	// Only the linked plan's investment entries count.
	suite.True(progress.InvestedSoFar.Equal(decimal.NewFromInt(1500)), "invested %s", progress.InvestedSoFar)
	suite.True(progress.ProgressPercent.Equal(decimal.NewFromInt(100)), "progress %s", progress.ProgressPercent)
	suite.True(progress.RequiredSIP.IsZero())
	suite.Equal(domain.GoalCompleted, progress.Status)
}

// A target date in the past resolves to benign defaults rather than errors
// or negative figures.
func (suite *GoalServiceTestSuite) TestEvaluateGoalPastTargetDate() {
	ctx := context.Background()
	goal := &domain.Goal{
		GoalID:       "goal-1",
		OwnerID:      "owner-1",
		TargetAmount: decimal.NewFromInt(10000),
		TargetOn:     time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC),
	}

	suite.mockGoals.On("FindGoalByID", ctx, "goal-1").Return(goal, nil)
	suite.mockPlans.On("FindPlansByGoal", ctx, "goal-1").Return([]domain.InvestmentPlan{zeroReturnPlan("plan-1", 500)}, nil)
	suite.mockLedger.On("ListEntriesByOwner", ctx, "owner-1", mock.Anything, mock.Anything).Return([]domain.LedgerEntry{}, nil)
	suite.mockGoals.On("UpdateGoalStatus", ctx, "goal-1", mock.Anything, mock.Anything).Return(nil)

	progress, err := suite.newService()(ctx, "owner-1", "goal-1")

	suite.Require().NoError(err)
	suite.Equal(0, progress.MonthsRemaining)
	suite.True(progress.RequiredSIP.IsZero())
	suite.True(progress.ProgressPercent.IsZero())
}

func (suite *GoalServiceTestSuite) TestEvaluateGoalIgnoresInactivePlans() {
	ctx := context.Background()
	goal := &domain.Goal{
		GoalID:       "goal-1",
		OwnerID:      "owner-1",
		TargetAmount: decimal.NewFromInt(12000),
		TargetOn:     time.Date(2024, time.December, 27, 0, 0, 0, 0, time.UTC),
	}
	paused := zeroReturnPlan("plan-1", 5000)
	paused.Status = domain.PlanPaused

	suite.mockGoals.On("FindGoalByID", ctx, "goal-1").Return(goal, nil)
	suite.mockPlans.On("FindPlansByGoal", ctx, "goal-1").Return([]domain.InvestmentPlan{paused}, nil)
	suite.mockLedger.On("ListEntriesByOwner", ctx, "owner-1", mock.Anything, mock.Anything).Return([]domain.LedgerEntry{}, nil)
	suite.mockGoals.On("UpdateGoalStatus", ctx, "goal-1", domain.GoalBehind, mock.Anything).Return(nil)

	progress, err := suite.newService()(ctx, "owner-1", "goal-1")

	suite.Require().NoError(err)
	suite.True(progress.MonthlyContribution.IsZero())
	suite.Equal(domain.GoalBehind, progress.Status)
}

func (suite *GoalServiceTestSuite) TestEvaluateGoalRejectsForeignOwner() {
	ctx := context.Background()
	goal := &domain.Goal{GoalID: "goal-1", OwnerID: "owner-2", TargetAmount: decimal.NewFromInt(100)}

	suite.mockGoals.On("FindGoalByID", ctx, "goal-1").Return(goal, nil)

	progress, err := suite.newService()(ctx, "owner-1", "goal-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.Nil(progress)
	suite.mockPlans.AssertNotCalled(suite.T(), "FindPlansByGoal", mock.Anything, mock.Anything)
}

func (suite *GoalServiceTestSuite) TestCreateGoalRejectsNonPositiveTarget() {
	ctx := context.Background()
	svc := services.NewGoalService(suite.mockGoals, suite.mockPlans, suite.mockLedger)

	goal, err := svc.CreateGoal(ctx, "owner-1", dto.CreateGoalRequest{
		Name:         "Emergency fund",
		TargetAmount: decimal.Zero,
		TargetOn:     suite.today,
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(goal)
	suite.mockGoals.AssertNotCalled(suite.T(), "SaveGoal", mock.Anything, mock.Anything)
}

func TestGoalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GoalServiceTestSuite))
}
