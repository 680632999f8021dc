package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/nkhandel/personal_finance_app/internal/apperrors"
	"github.com/nkhandel/personal_finance_app/internal/core/domain"
	"github.com/nkhandel/personal_finance_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock LedgerRepository ---
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerRepository) ListEntriesByOwner(ctx context.Context, ownerID string, from, to time.Time) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, ownerID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerRepository) ListEntriesPage(ctx context.Context, ownerID string, limit int, before time.Time, beforeID string) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, ownerID, limit, before, beforeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerRepository) HasIncomeEntryInRange(ctx context.Context, ownerID, category string, from, to time.Time) (bool, error) {
	args := m.Called(ctx, ownerID, category, from, to)
	return args.Bool(0), args.Error(1)
}

func (m *MockLedgerRepository) CreateEntry(ctx context.Context, entry domain.LedgerEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// --- Mock RecurringRepository ---
type MockRecurringRepository struct {
	mock.Mock
}

func (m *MockRecurringRepository) FindRuleByID(ctx context.Context, ruleID string) (*domain.RecurringRule, error) {
	args := m.Called(ctx, ruleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecurringRule), args.Error(1)
}

func (m *MockRecurringRepository) ListRulesByOwner(ctx context.Context, ownerID string) ([]domain.RecurringRule, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RecurringRule), args.Error(1)
}

func (m *MockRecurringRepository) FindDueRules(ctx context.Context, asOf time.Time) ([]domain.RecurringRule, error) {
	args := m.Called(ctx, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RecurringRule), args.Error(1)
}

func (m *MockRecurringRepository) SaveRule(ctx context.Context, rule domain.RecurringRule) error {
	args := m.Called(ctx, rule)
	return args.Error(0)
}

func (m *MockRecurringRepository) SetRuleActive(ctx context.Context, ruleID string, active bool, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, ruleID, active, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockRecurringRepository) MaterializeRule(ctx context.Context, entry domain.LedgerEntry, ruleID string, nextDueOn time.Time, updatedAt time.Time) error {
	args := m.Called(ctx, entry, ruleID, nextDueOn, updatedAt)
	return args.Error(0)
}

// --- Mock SalaryRepository ---
type MockSalaryRepository struct {
	mock.Mock
}

func (m *MockSalaryRepository) FindCurrentSalary(ctx context.Context, ownerID string, asOf time.Time) (*domain.SalaryRecord, error) {
	args := m.Called(ctx, ownerID, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SalaryRecord), args.Error(1)
}

func (m *MockSalaryRepository) ListSalariesByOwner(ctx context.Context, ownerID string) ([]domain.SalaryRecord, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SalaryRecord), args.Error(1)
}

func (m *MockSalaryRepository) ListOwnerIDs(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockSalaryRepository) SaveSalary(ctx context.Context, record domain.SalaryRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

// --- Mock AuditWriter ---
type MockAuditWriter struct {
	mock.Mock
}

func (m *MockAuditWriter) AppendEvent(ctx context.Context, event domain.AuditEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// --- Test Suite ---
type ObligationServiceTestSuite struct {
	suite.Suite
	mockLedger    *MockLedgerRepository
	mockRecurring *MockRecurringRepository
	mockSalary    *MockSalaryRepository
	mockAudit     *MockAuditWriter
	service       func(ctx context.Context, asOf time.Time) (domain.ObligationRunSummary, error)
}

func (suite *ObligationServiceTestSuite) SetupTest() {
	suite.mockLedger = new(MockLedgerRepository)
	suite.mockRecurring = new(MockRecurringRepository)
	suite.mockSalary = new(MockSalaryRepository)
	suite.mockAudit = new(MockAuditWriter)
	svc := services.NewObligationService(suite.mockLedger, suite.mockRecurring, suite.mockSalary, suite.mockAudit)
	suite.service = svc.Run
}

func rentRule(ruleID, ownerID string, dueOn time.Time) domain.RecurringRule {
	return domain.RecurringRule{
		RuleID:          ruleID,
		OwnerID:         ownerID,
		PayloadTemplate: json.RawMessage(`{"amount":"1500","kind":"EXPENSE","category":"Rent"}`),
		Frequency:       domain.FrequencyMonthly,
		NextDueOn:       dueOn,
		Active:          true,
	}
}

func (suite *ObligationServiceTestSuite) noSalaries() {
	suite.mockSalary.On("ListOwnerIDs", mock.Anything).Return([]string{}, nil)
}

func (suite *ObligationServiceTestSuite) TestRunMaterializesDueRule() {
	ctx := context.Background()
	asOf := time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)
	rule := rentRule("rule-1", "owner-1", asOf)

	suite.mockRecurring.On("FindDueRules", ctx, asOf).Return([]domain.RecurringRule{rule}, nil).Once()
	suite.mockRecurring.On("MaterializeRule", ctx,
		mock.MatchedBy(func(entry domain.LedgerEntry) bool {
			return entry.OwnerID == "owner-1" &&
				entry.Kind == domain.EntryExpense &&
				entry.Category == "Rent" &&
				entry.Amount.Equal(decimal.NewFromInt(1500)) &&
				entry.OccurredOn.Equal(asOf) &&
				entry.RecurringRuleID != nil && *entry.RecurringRuleID == "rule-1"
		}),
		"rule-1",
		time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), // monthly advance clamps Jan 31
		mock.AnythingOfType("time.Time"),
	).Return(nil).Once()
	suite.mockAudit.On("AppendEvent", ctx, mock.MatchedBy(func(event domain.AuditEvent) bool {
		return event.EventType == domain.EventRecurringProcessed && event.OwnerID == "owner-1"
	})).Return(nil).Once()
	suite.noSalaries()

	summary, err := suite.service(ctx, asOf)

	suite.Require().NoError(err)
	suite.Equal(1, summary.RulesProcessed)
	suite.Equal(0, summary.RulesSkipped)
	suite.mockRecurring.AssertExpectations(suite.T())
	suite.mockAudit.AssertExpectations(suite.T())
}

func (suite *ObligationServiceTestSuite) TestRunSkipsMalformedPayloadWithoutMutation() {
	ctx := context.Background()
	asOf := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

	broken := rentRule("rule-bad", "owner-1", asOf)
	broken.PayloadTemplate = json.RawMessage(`{"amount":`)
	healthy := rentRule("rule-ok", "owner-1", asOf)

	suite.mockRecurring.On("FindDueRules", ctx, asOf).Return([]domain.RecurringRule{broken, healthy}, nil).Once()
	suite.mockRecurring.On("MaterializeRule", ctx, mock.Anything, "rule-ok", mock.Anything, mock.Anything).Return(nil).Once()
	suite.mockAudit.On("AppendEvent", ctx, mock.Anything).Return(nil).Once()
	suite.noSalaries()

	summary, err := suite.service(ctx, asOf)

	suite.Require().NoError(err)
	suite.Equal(1, summary.RulesProcessed)
	suite.Equal(1, summary.RulesSkipped)
	// The broken rule must not have had its schedule advanced.
	suite.mockRecurring.AssertNotCalled(suite.T(), "MaterializeRule", ctx, mock.Anything, "rule-bad", mock.Anything, mock.Anything)
}

func (suite *ObligationServiceTestSuite) TestRunSkipsUnknownFrequency() {
	ctx := context.Background()
	asOf := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	rule := rentRule("rule-1", "owner-1", asOf)
	rule.Frequency = "FORTNIGHTLY"

	suite.mockRecurring.On("FindDueRules", ctx, asOf).Return([]domain.RecurringRule{rule}, nil).Once()
	suite.noSalaries()

	summary, err := suite.service(ctx, asOf)

	suite.Require().NoError(err)
	suite.Equal(0, summary.RulesProcessed)
	suite.Equal(1, summary.RulesSkipped)
	suite.mockRecurring.AssertNotCalled(suite.T(), "MaterializeRule", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ObligationServiceTestSuite) TestRuleWriteFailureDoesNotAbortBatch() {
	ctx := context.Background()
	asOf := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	first := rentRule("rule-1", "owner-1", asOf)
	second := rentRule("rule-2", "owner-2", asOf)

	suite.mockRecurring.On("FindDueRules", ctx, asOf).Return([]domain.RecurringRule{first, second}, nil).Once()
	suite.mockRecurring.On("MaterializeRule", ctx, mock.Anything, "rule-1", mock.Anything, mock.Anything).Return(errors.New("write failed")).Once()
	suite.mockRecurring.On("MaterializeRule", ctx, mock.Anything, "rule-2", mock.Anything, mock.Anything).Return(nil).Once()
	suite.mockAudit.On("AppendEvent", ctx, mock.Anything).Return(nil).Once()
	suite.noSalaries()

	summary, err := suite.service(ctx, asOf)

	suite.Require().NoError(err)
	suite.Equal(1, summary.RulesProcessed)
	suite.Equal(1, summary.RulesSkipped)
	suite.mockRecurring.AssertExpectations(suite.T())
}

func (suite *ObligationServiceTestSuite) TestSalaryCreditedOnAnniversaryDay() {
	ctx := context.Background()
	asOf := time.Date(2024, time.April, 25, 0, 0, 0, 0, time.UTC)
	salary := &domain.SalaryRecord{
		SalaryID:    "salary-1",
		OwnerID:     "owner-1",
		Amount:      decimal.NewFromInt(85000),
		EffectiveOn: time.Date(2023, time.November, 25, 0, 0, 0, 0, time.UTC),
	}

	suite.mockRecurring.On("FindDueRules", ctx, asOf).Return([]domain.RecurringRule{}, nil).Once()
	suite.mockSalary.On("ListOwnerIDs", ctx).Return([]string{"owner-1"}, nil).Once()
	suite.mockSalary.On("FindCurrentSalary", ctx, "owner-1", asOf).Return(salary, nil).Once()
	suite.mockLedger.On("HasIncomeEntryInRange", ctx, "owner-1", domain.SalaryCategory,
		time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.April, 30, 0, 0, 0, 0, time.UTC),
	).Return(false, nil).Once()
	suite.mockLedger.On("CreateEntry", ctx, mock.MatchedBy(func(entry domain.LedgerEntry) bool {
		return entry.Kind == domain.EntryIncome &&
			entry.Category == domain.SalaryCategory &&
			entry.Amount.Equal(decimal.NewFromInt(85000)) &&
			entry.OccurredOn.Equal(asOf)
	})).Return(nil).Once()
	suite.mockAudit.On("AppendEvent", ctx, mock.MatchedBy(func(event domain.AuditEvent) bool {
		return event.EventType == domain.EventSalaryCredited
	})).Return(nil).Once()

	summary, err := suite.service(ctx, asOf)

	suite.Require().NoError(err)
	suite.Equal(1, summary.SalariesCredited)
	suite.mockLedger.AssertExpectations(suite.T())
	suite.mockAudit.AssertExpectations(suite.T())
}

func (suite *ObligationServiceTestSuite) TestSalaryCreditIsIdempotentWithinMonth() {
	ctx := context.Background()
	asOf := time.Date(2024, time.April, 25, 0, 0, 0, 0, time.UTC)
	salary := &domain.SalaryRecord{
		SalaryID:    "salary-1",
		OwnerID:     "owner-1",
		Amount:      decimal.NewFromInt(85000),
		EffectiveOn: time.Date(2023, time.November, 25, 0, 0, 0, 0, time.UTC),
	}

	suite.mockRecurring.On("FindDueRules", ctx, asOf).Return([]domain.RecurringRule{}, nil)
	suite.mockSalary.On("ListOwnerIDs", ctx).Return([]string{"owner-1"}, nil)
	suite.mockSalary.On("FindCurrentSalary", ctx, "owner-1", asOf).Return(salary, nil)
	// The month already holds a Salary entry: the second run of the day.
	suite.mockLedger.On("HasIncomeEntryInRange", ctx, "owner-1", domain.SalaryCategory, mock.Anything, mock.Anything).Return(true, nil)

	summary, err := suite.service(ctx, asOf)

	suite.Require().NoError(err)
	suite.Equal(0, summary.SalariesCredited)
	suite.mockLedger.AssertNotCalled(suite.T(), "CreateEntry", mock.Anything, mock.Anything)
}

func (suite *ObligationServiceTestSuite) TestSalaryNotCreditedOffAnniversaryDay() {
	ctx := context.Background()
	asOf := time.Date(2024, time.April, 24, 0, 0, 0, 0, time.UTC)
	salary := &domain.SalaryRecord{
		OwnerID:     "owner-1",
		Amount:      decimal.NewFromInt(85000),
		EffectiveOn: time.Date(2023, time.November, 25, 0, 0, 0, 0, time.UTC),
	}

	suite.mockRecurring.On("FindDueRules", ctx, asOf).Return([]domain.RecurringRule{}, nil)
	suite.mockSalary.On("ListOwnerIDs", ctx).Return([]string{"owner-1"}, nil)
	suite.mockSalary.On("FindCurrentSalary", ctx, "owner-1", asOf).Return(salary, nil)

	summary, err := suite.service(ctx, asOf)

	suite.Require().NoError(err)
	suite.Equal(0, summary.SalariesCredited)
	suite.mockLedger.AssertNotCalled(suite.T(), "HasIncomeEntryInRange", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ObligationServiceTestSuite) TestOwnerWithoutSalaryIsSkippedQuietly() {
	ctx := context.Background()
	asOf := time.Date(2024, time.April, 25, 0, 0, 0, 0, time.UTC)

	suite.mockRecurring.On("FindDueRules", ctx, asOf).Return([]domain.RecurringRule{}, nil)
	suite.mockSalary.On("ListOwnerIDs", ctx).Return([]string{"owner-1"}, nil)
	suite.mockSalary.On("FindCurrentSalary", ctx, "owner-1", asOf).Return(nil, apperrors.ErrNotFound)

	summary, err := suite.service(ctx, asOf)

	suite.Require().NoError(err)
	suite.Equal(0, summary.SalariesCredited)
}

func TestObligationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ObligationServiceTestSuite))
}
