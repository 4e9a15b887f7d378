package services

import (
	"context"

	"github.com/SscSPs/homeledger/internal/core/domain"
	"github.com/SscSPs/homeledger/internal/dto"
)

// ContactReaderSvc defines read operations for contacts
type ContactReaderSvc interface {
	// GetContactByID retrieves a contact by its unique identifier.
	GetContactByID(ctx context.Context, contactID string) (*domain.Contact, error)

	// ListContacts retrieves all contacts in creation order.
	ListContacts(ctx context.Context) ([]domain.Contact, error)
}

// ContactWriterSvc defines write operations for contacts
type ContactWriterSvc interface {
	// CreateContact adds a contact. Contacts cannot be edited or removed.
	CreateContact(ctx context.Context, req dto.CreateContactRequest, userID string) (*domain.Contact, error)
}

// ContactSvcFacade combines all contact-related service interfaces
type ContactSvcFacade interface {
	ContactReaderSvc
	ContactWriterSvc
}

// SplitWriterSvc defines operations that add transactions to the ledger
type SplitWriterSvc interface {
	// CreateSplit validates a new expense, divides it and records it.
	CreateSplit(ctx context.Context, req dto.CreateSplitRequest, userID string) (*domain.Transaction, error)

	// RecordPayment records a settlement with one contact.
	RecordPayment(ctx context.Context, req dto.RecordPaymentRequest, userID string) (*domain.Transaction, error)
}

// SplitReaderSvc defines read operations for the transaction list
type SplitReaderSvc interface {
	// ListTransactions returns a page of transactions, newest first, and the token for the next page.
	ListTransactions(ctx context.Context, limit int, nextToken *string) ([]domain.Transaction, *string, error)
}

// SplitSvcFacade combines all transaction-related service interfaces
type SplitSvcFacade interface {
	SplitReaderSvc
	SplitWriterSvc
}

// BalanceSvcFacade derives balances, insights and settlement links from the ledger
type BalanceSvcFacade interface {
	// GetBalances returns non-settled balances ordered by magnitude with both totals.
	GetBalances(ctx context.Context) (*domain.BalanceSummary, error)

	// GetInsights returns spending statistics for the ledger.
	GetInsights(ctx context.Context) (*domain.LedgerInsights, error)

	// GetPaymentLink builds a deep link settling the contact's current balance.
	GetPaymentLink(ctx context.Context, contactID string, provider domain.PaymentProvider) (*domain.PaymentRequest, error)
}

// ReceiptSvcFacade manages itemized receipts from scan to transaction
type ReceiptSvcFacade interface {
	// ScanReceipt returns a new draft receipt after the scanning pause.
	ScanReceipt(ctx context.Context, userID string) (*domain.Receipt, error)

	// ToggleItemAssignment adds or removes a contact on a draft receipt item.
	ToggleItemAssignment(ctx context.Context, receiptID, itemID, contactID string) (*domain.Receipt, error)

	// FinalizeReceipt splits the receipt and records it as a transaction.
	FinalizeReceipt(ctx context.Context, receiptID, userID string) (*domain.ReceiptFinalization, error)

	GetReceipt(ctx context.Context, receiptID string) (*domain.Receipt, error)
	ListReceipts(ctx context.Context) ([]domain.Receipt, error)
}

// RecurringSvcFacade manages recurring expenses and their reminders
type RecurringSvcFacade interface {
	CreateRecurringExpense(ctx context.Context, req dto.CreateRecurringExpenseRequest, userID string) (*domain.RecurringExpense, error)
	ListRecurringExpenses(ctx context.Context) ([]domain.RecurringExpense, error)

	// UpcomingPayments returns expenses due within the user's reminder window, soonest first.
	UpcomingPayments(ctx context.Context, userID string) ([]domain.UpcomingPayment, error)
}

// ProfileSvcFacade manages the acting user's profile
type ProfileSvcFacade interface {
	// GetProfile returns the user's profile, creating a default one on first access.
	GetProfile(ctx context.Context, userID string) (*domain.UserProfile, error)
	UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*domain.UserProfile, error)
}
