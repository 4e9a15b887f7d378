package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/homeledger/internal/apperrors"
	"github.com/SscSPs/homeledger/internal/core/domain"
	portsrepo "github.com/SscSPs/homeledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/homeledger/internal/core/ports/services"
	"github.com/SscSPs/homeledger/internal/core/services"
	"github.com/SscSPs/homeledger/internal/dto"
	"github.com/SscSPs/homeledger/internal/repositories/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// failingTransactions rejects every save.
type failingTransactions struct {
	portsrepo.TransactionRepositoryFacade
}

func (failingTransactions) SaveTransaction(context.Context, domain.Transaction) error {
	return errors.New("ledger unavailable")
}

// failingReceipts rejects saves of finalized receipts.
type failingReceipts struct {
	portsrepo.ReceiptRepositoryFacade
}

func (r failingReceipts) SaveReceipt(ctx context.Context, receipt domain.Receipt) error {
	if receipt.IsFinalized() {
		return errors.New("receipt store unavailable")
	}
	return r.ReceiptRepositoryFacade.SaveReceipt(ctx, receipt)
}

// LedgerFlowTestSuite runs the receipt and recurring services against the in-memory store.
type LedgerFlowTestSuite struct {
	suite.Suite
	ctx       context.Context
	repos     portsrepo.RepositoryProvider
	receipts  portssvc.ReceiptSvcFacade
	recurring portssvc.RecurringSvcFacade
	balances  portssvc.BalanceSvcFacade
}

func (suite *LedgerFlowTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.repos = memory.NewRepositoryProvider(memory.NewStore(), nil)
	opts := []services.ServiceOption{
		services.WithClock(fixedClock),
		services.WithLocation(time.UTC),
		services.WithIDGenerator(sequentialIDs("id")),
	}
	suite.receipts = services.NewReceiptService(suite.repos.ReceiptRepo, suite.repos.TransactionRepo, suite.repos.ContactRepo, 0, opts...)
	suite.recurring = services.NewRecurringService(suite.repos.RecurringRepo, suite.repos.ContactRepo, suite.repos.ProfileRepo, opts...)
	suite.balances = services.NewBalanceService(suite.repos.TransactionRepo, suite.repos.ContactRepo, opts...)

	for _, c := range []domain.Contact{{ContactID: "c1", Name: "Sarah"}, {ContactID: "c2", Name: "Mike"}} {
		suite.Require().NoError(suite.repos.ContactRepo.SaveContact(suite.ctx, c))
	}
}

func (suite *LedgerFlowTestSuite) TestReceiptScanAssignFinalize() {
	receipt, err := suite.receipts.ScanReceipt(suite.ctx, "1")
	suite.Require().NoError(err)
	suite.Equal(domain.ReceiptDraft, receipt.Status)
	suite.Require().Len(receipt.Items, 5)

	salad := receipt.Items[0].ItemID
	pizza := receipt.Items[1].ItemID
	_, err = suite.receipts.ToggleItemAssignment(suite.ctx, receipt.ReceiptID, salad, "c1")
	suite.Require().NoError(err)
	_, err = suite.receipts.ToggleItemAssignment(suite.ctx, receipt.ReceiptID, salad, "c2")
	suite.Require().NoError(err)
	updated, err := suite.receipts.ToggleItemAssignment(suite.ctx, receipt.ReceiptID, pizza, "c2")
	suite.Require().NoError(err)
	suite.Equal([]string{"c1", "c2"}, updated.Items[0].AssignedTo)

	result, err := suite.receipts.FinalizeReceipt(suite.ctx, receipt.ReceiptID, "1")
	suite.Require().NoError(err)
	suite.Equal(domain.ReceiptFinalized, result.Receipt.Status)
	suite.Require().NotNil(result.Receipt.TransactionID)
	suite.Equal(result.Transaction.TransactionID, *result.Receipt.TransactionID)
	suite.Equal(domain.TransactionReceipt, result.Transaction.Type)
	suite.Equal("Italian Garden Restaurant - Receipt", result.Transaction.Description)
	suite.True(receipt.Total.Equal(result.Transaction.Amount))
	suite.Len(result.UnassignedItems, 3)

	// Unassigned items leave part of the bill uncollected.
	suite.True(result.Transaction.SplitTotal().LessThan(result.Transaction.Amount))

	summary, err := suite.balances.GetBalances(suite.ctx)
	suite.Require().NoError(err)
	suite.Len(summary.Balances, 2)

	_, err = suite.receipts.FinalizeReceipt(suite.ctx, receipt.ReceiptID, "1")
	suite.ErrorIs(err, apperrors.ErrConflict)
	_, err = suite.receipts.ToggleItemAssignment(suite.ctx, receipt.ReceiptID, salad, "c1")
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *LedgerFlowTestSuite) TestFinalizeWithoutAssignments() {
	receipt, err := suite.receipts.ScanReceipt(suite.ctx, "1")
	suite.Require().NoError(err)

	_, err = suite.receipts.FinalizeReceipt(suite.ctx, receipt.ReceiptID, "1")

	vErr, ok := apperrors.AsValidationError(err)
	suite.Require().True(ok)
	suite.Equal(apperrors.CodeNoParticipants, vErr.Code)
	txns, _ := suite.repos.TransactionRepo.ListTransactions(suite.ctx)
	suite.Empty(txns, "no partial state on validation failure")
}

func (suite *LedgerFlowTestSuite) TestToggleItemAssignment_NotFound() {
	receipt, err := suite.receipts.ScanReceipt(suite.ctx, "1")
	suite.Require().NoError(err)

	_, err = suite.receipts.ToggleItemAssignment(suite.ctx, receipt.ReceiptID, "no-such-item", "c1")
	suite.ErrorIs(err, apperrors.ErrNotFound)
	_, err = suite.receipts.ToggleItemAssignment(suite.ctx, "no-such-receipt", receipt.Items[0].ItemID, "c1")
	suite.ErrorIs(err, apperrors.ErrNotFound)
	_, err = suite.receipts.ToggleItemAssignment(suite.ctx, receipt.ReceiptID, receipt.Items[0].ItemID, "c9")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *LedgerFlowTestSuite) TestRecurringExpenses() {
	// fixedNow is Saturday 2025-10-18.
	rent, err := suite.recurring.CreateRecurringExpense(suite.ctx, dto.CreateRecurringExpenseRequest{
		Title: "Rent", Amount: "1500", Frequency: domain.RecurMonthly, DueDay: 31, ParticipantIDs: []string{"c1", "c2"},
	}, "1")
	suite.Require().NoError(err)
	suite.Equal(time.Date(2025, time.October, 31, 0, 0, 0, 0, time.UTC), rent.NextDueDate)
	suite.Require().Len(rent.Splits, 2)
	suite.True(decimal.NewFromInt(500).Equal(rent.Splits[0].Amount), "you count as one more head")

	cleaner, err := suite.recurring.CreateRecurringExpense(suite.ctx, dto.CreateRecurringExpenseRequest{
		Title: "Cleaner", Amount: "60", Frequency: domain.RecurWeekly, DueDay: 1, ParticipantIDs: []string{"c1"},
	}, "1")
	suite.Require().NoError(err)
	suite.Equal(time.Date(2025, time.October, 20, 0, 0, 0, 0, time.UTC), cleaner.NextDueDate)

	upcoming, err := suite.recurring.UpcomingPayments(suite.ctx, "1")
	suite.Require().NoError(err)
	suite.Require().Len(upcoming, 1)
	suite.Equal("Cleaner", upcoming[0].Expense.Title)
	suite.Equal(2, upcoming[0].DaysUntil)

	all, err := suite.recurring.ListRecurringExpenses(suite.ctx)
	suite.Require().NoError(err)
	suite.Len(all, 2)
}

func (suite *LedgerFlowTestSuite) TestRecurringExpenses_HonorsReminderWindow() {
	profile := domain.NewUserProfile("1", "You")
	profile.ReminderDaysBefore = 14
	suite.Require().NoError(suite.repos.ProfileRepo.SaveProfile(suite.ctx, profile))

	_, err := suite.recurring.CreateRecurringExpense(suite.ctx, dto.CreateRecurringExpenseRequest{
		Title: "Internet", Amount: "45", DueDay: 31, ParticipantIDs: []string{"c1"},
	}, "1")
	suite.Require().NoError(err)

	upcoming, err := suite.recurring.UpcomingPayments(suite.ctx, "1")
	suite.Require().NoError(err)
	suite.Len(upcoming, 1)
}

func (suite *LedgerFlowTestSuite) TestRecurringExpenses_Validation() {
	cases := []struct {
		name string
		req  dto.CreateRecurringExpenseRequest
		code apperrors.ValidationCode
	}{
		{"missing title", dto.CreateRecurringExpenseRequest{Amount: "10", DueDay: 1, ParticipantIDs: []string{"c1"}}, apperrors.CodeMissingRequiredField},
		{"bad amount", dto.CreateRecurringExpenseRequest{Title: "x", Amount: "-1", DueDay: 1, ParticipantIDs: []string{"c1"}}, apperrors.CodeInvalidAmount},
		{"weekday out of range", dto.CreateRecurringExpenseRequest{Title: "x", Amount: "10", Frequency: domain.RecurWeekly, DueDay: 7, ParticipantIDs: []string{"c1"}}, apperrors.CodeInvalidDueDay},
		{"unknown frequency", dto.CreateRecurringExpenseRequest{Title: "x", Amount: "10", Frequency: "daily", DueDay: 1, ParticipantIDs: []string{"c1"}}, apperrors.CodeInvalidFrequency},
		{"no participants", dto.CreateRecurringExpenseRequest{Title: "x", Amount: "10", DueDay: 1}, apperrors.CodeNoParticipants},
	}
	for _, tc := range cases {
		suite.Run(tc.name, func() {
			_, err := suite.recurring.CreateRecurringExpense(suite.ctx, tc.req, "1")
			vErr, ok := apperrors.AsValidationError(err)
			suite.Require().True(ok, "expected a validation error, got %v", err)
			suite.Equal(tc.code, vErr.Code)
		})
	}
}

// assignedDraft scans a receipt and assigns its first item to c1.
func (suite *LedgerFlowTestSuite) assignedDraft() *domain.Receipt {
	receipt, err := suite.receipts.ScanReceipt(suite.ctx, "1")
	suite.Require().NoError(err)
	receipt, err = suite.receipts.ToggleItemAssignment(suite.ctx, receipt.ReceiptID, receipt.Items[0].ItemID, "c1")
	suite.Require().NoError(err)
	return receipt
}

func (suite *LedgerFlowTestSuite) TestFinalizeReceipt_TransactionSaveFailureKeepsDraft() {
	receipt := suite.assignedDraft()
	broken := services.NewReceiptService(suite.repos.ReceiptRepo, failingTransactions{suite.repos.TransactionRepo}, suite.repos.ContactRepo, 0,
		services.WithClock(fixedClock), services.WithIDGenerator(sequentialIDs("broken")))

	_, err := broken.FinalizeReceipt(suite.ctx, receipt.ReceiptID, "1")
	suite.Require().Error(err)

	stored, err := suite.receipts.GetReceipt(suite.ctx, receipt.ReceiptID)
	suite.Require().NoError(err)
	suite.Equal(domain.ReceiptDraft, stored.Status)
	suite.Nil(stored.TransactionID)

	result, err := suite.receipts.FinalizeReceipt(suite.ctx, receipt.ReceiptID, "1")
	suite.Require().NoError(err, "a draft restored after a failed save can be finalized again")
	txns, _ := suite.repos.TransactionRepo.ListTransactions(suite.ctx)
	suite.Require().Len(txns, 1)
	suite.Equal(result.Transaction.TransactionID, txns[0].TransactionID)
}

func (suite *LedgerFlowTestSuite) TestFinalizeReceipt_ReceiptSaveFailureRecordsNothing() {
	receipt := suite.assignedDraft()
	broken := services.NewReceiptService(failingReceipts{suite.repos.ReceiptRepo}, suite.repos.TransactionRepo, suite.repos.ContactRepo, 0,
		services.WithClock(fixedClock), services.WithIDGenerator(sequentialIDs("broken")))

	_, err := broken.FinalizeReceipt(suite.ctx, receipt.ReceiptID, "1")
	suite.Require().Error(err)

	txns, _ := suite.repos.TransactionRepo.ListTransactions(suite.ctx)
	suite.Empty(txns)
	stored, err := suite.receipts.GetReceipt(suite.ctx, receipt.ReceiptID)
	suite.Require().NoError(err)
	suite.Equal(domain.ReceiptDraft, stored.Status)
}

func TestLedgerFlowTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerFlowTestSuite))
}
