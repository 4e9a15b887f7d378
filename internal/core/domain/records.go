package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Remote records are the shapes written to the household record store. They
// intentionally diverge from the local entities: a Contact is mirrored as a
// roommate record and every transaction as an expense.

// ExpenseRecord mirrors a transaction.
type ExpenseRecord struct {
	ID           string
	Amount       decimal.Decimal
	Description  string
	Payer        string
	GroupID      string
	Timestamp    time.Time
	Category     string
	SplitBetween []string
	Settled      bool
}

// RoommateRecord mirrors a contact or roommate.
type RoommateRecord struct {
	ID      string
	Name    string
	Email   string
	GroupID string
	Balance decimal.Decimal
}

// GroupRecord mirrors the household.
type GroupRecord struct {
	ID        string
	Name      string
	Members   []string
	CreatedAt time.Time
}

// NewExpenseRecord converts a transaction for the household group.
func NewExpenseRecord(txn Transaction, groupID string) ExpenseRecord {
	category := txn.Category
	if category == "" {
		category = string(txn.Type)
	}
	return ExpenseRecord{
		ID:           txn.TransactionID,
		Amount:       txn.Amount,
		Description:  txn.Description,
		Payer:        txn.From,
		GroupID:      groupID,
		Timestamp:    txn.Date,
		Category:     category,
		SplitBetween: txn.ContactIDs(),
		Settled:      txn.Type == TransactionPayment,
	}
}

// NewRoommateRecordFromContact converts a ledger contact with its current balance.
func NewRoommateRecordFromContact(c Contact, balance decimal.Decimal, groupID string) RoommateRecord {
	return RoommateRecord{
		ID:      c.ContactID,
		Name:    c.Name,
		Email:   c.Email,
		GroupID: groupID,
		Balance: balance,
	}
}
