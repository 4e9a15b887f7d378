package repositories

import (
	"context"

	"github.com/SscSPs/homeledger/internal/core/domain"
)

// ContactReader defines read operations for contacts
type ContactReader interface {
	// FindContactByID retrieves a contact, or apperrors.ErrNotFound.
	FindContactByID(ctx context.Context, contactID string) (*domain.Contact, error)

	// ListContacts returns all contacts in creation order.
	ListContacts(ctx context.Context) ([]domain.Contact, error)
}

// ContactWriter defines write operations for contacts
type ContactWriter interface {
	// SaveContact persists a new contact.
	SaveContact(ctx context.Context, contact domain.Contact) error
}

// ContactRepositoryFacade combines all contact-related repository interfaces
type ContactRepositoryFacade interface {
	ContactReader
	ContactWriter
}

// TransactionReader defines read operations for ledger transactions
type TransactionReader interface {
	// FindTransactionByID retrieves a transaction, or apperrors.ErrNotFound.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions returns every transaction, most recently recorded first.
	// Callers that need date order sort the result themselves.
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for ledger transactions
type TransactionWriter interface {
	// SaveTransaction prepends a new transaction to the ledger.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}

// ReceiptReader defines read operations for receipts
type ReceiptReader interface {
	FindReceiptByID(ctx context.Context, receiptID string) (*domain.Receipt, error)
	// ListReceipts returns receipts newest first.
	ListReceipts(ctx context.Context) ([]domain.Receipt, error)
}

// ReceiptWriter defines write operations for receipts
type ReceiptWriter interface {
	// SaveReceipt inserts or replaces a receipt by id.
	SaveReceipt(ctx context.Context, receipt domain.Receipt) error
}

// ReceiptRepositoryFacade combines all receipt-related repository interfaces
type ReceiptRepositoryFacade interface {
	ReceiptReader
	ReceiptWriter
}

// RecurringReader defines read operations for recurring expenses
type RecurringReader interface {
	FindRecurringExpenseByID(ctx context.Context, recurringID string) (*domain.RecurringExpense, error)
	ListRecurringExpenses(ctx context.Context) ([]domain.RecurringExpense, error)
}

// RecurringWriter defines write operations for recurring expenses
type RecurringWriter interface {
	SaveRecurringExpense(ctx context.Context, expense domain.RecurringExpense) error
}

// RecurringRepositoryFacade combines all recurring-expense repository interfaces
type RecurringRepositoryFacade interface {
	RecurringReader
	RecurringWriter
}

// ProfileRepositoryFacade stores per-user settings.
type ProfileRepositoryFacade interface {
	// FindProfileByUserID retrieves a profile, or apperrors.ErrNotFound.
	FindProfileByUserID(ctx context.Context, userID string) (*domain.UserProfile, error)
	// SaveProfile inserts or replaces a profile.
	SaveProfile(ctx context.Context, profile domain.UserProfile) error
}
