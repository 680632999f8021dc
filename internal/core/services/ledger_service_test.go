package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/nkhandel/personal_finance_app/internal/apperrors"
	"github.com/nkhandel/personal_finance_app/internal/core/domain"
	portssvc "github.com/nkhandel/personal_finance_app/internal/core/ports/services"
	"github.com/nkhandel/personal_finance_app/internal/core/services"
	"github.com/nkhandel/personal_finance_app/internal/dto"
	"github.com/nkhandel/personal_finance_app/internal/utils/pagination"
)

// --- Test Suite ---
type LedgerServiceTestSuite struct {
	suite.Suite
	ledger  *MockLedgerRepository
	service portssvc.LedgerSvcFacade
	ctx     context.Context
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.ledger = new(MockLedgerRepository)
	suite.service = services.NewLedgerService(suite.ledger)
	suite.ctx = context.Background()
}

func entryOn(id string, day time.Time) domain.LedgerEntry {
	return domain.LedgerEntry{
		EntryID:    id,
		OwnerID:    "owner-1",
		Amount:     decimal.NewFromInt(100),
		Kind:       domain.EntryExpense,
		Category:   "Groceries",
		OccurredOn: day,
	}
}

func (suite *LedgerServiceTestSuite) TestCreateEntryRejectsNonPositiveAmount() {
	req := dto.CreateLedgerEntryRequest{
		Amount:     decimal.Zero,
		Kind:       domain.EntryExpense,
		Category:   "Groceries",
		OccurredOn: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
	}

	_, err := suite.service.CreateEntry(suite.ctx, "owner-1", req)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.ledger.AssertNotCalled(suite.T(), "CreateEntry")
}

func (suite *LedgerServiceTestSuite) TestListEntriesPageReturnsCursorWhenMoreRemain() {
	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	// One more row than the requested limit signals another page.
	suite.ledger.On("ListEntriesPage", mock.Anything, "owner-1", 3, time.Time{}, "").
		Return([]domain.LedgerEntry{
			entryOn("entry-3", day),
			entryOn("entry-2", day),
			entryOn("entry-1", day.AddDate(0, 0, -1)),
		}, nil).Once()

	page, err := suite.service.ListEntriesPage(suite.ctx, "owner-1", dto.ListEntriesParams{Limit: 2})

	suite.NoError(err)
	suite.Len(page.Entries, 2)
	suite.Equal("entry-3", page.Entries[0].EntryID)
	suite.Require().NotNil(page.NextToken)

	cursorDate, cursorID, err := pagination.DecodeEntryToken(*page.NextToken)
	suite.NoError(err)
	suite.True(cursorDate.Equal(day))
	suite.Equal("entry-2", cursorID)

	suite.ledger.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestListEntriesPageOmitsCursorOnLastPage() {
	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	before := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	token := pagination.EncodeEntryToken(before, "entry-9")

	suite.ledger.On("ListEntriesPage", mock.Anything, "owner-1", 3, before, "entry-9").
		Return([]domain.LedgerEntry{entryOn("entry-1", day)}, nil).Once()

	page, err := suite.service.ListEntriesPage(suite.ctx, "owner-1", dto.ListEntriesParams{Limit: 2, NextToken: token})

	suite.NoError(err)
	suite.Len(page.Entries, 1)
	suite.Nil(page.NextToken)
	suite.ledger.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestListEntriesPageDefaultsLimit() {
	suite.ledger.On("ListEntriesPage", mock.Anything, "owner-1", services.DefaultEntriesPageLimit+1, time.Time{}, "").
		Return([]domain.LedgerEntry{}, nil).Once()

	page, err := suite.service.ListEntriesPage(suite.ctx, "owner-1", dto.ListEntriesParams{})

	suite.NoError(err)
	suite.Empty(page.Entries)
	suite.Nil(page.NextToken)
	suite.ledger.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestListEntriesPageRejectsMalformedCursor() {
	_, err := suite.service.ListEntriesPage(suite.ctx, "owner-1", dto.ListEntriesParams{NextToken: "not-a-cursor"})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.ledger.AssertNotCalled(suite.T(), "ListEntriesPage")
}

// --- Run Test Suite ---
func TestLedgerService(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
