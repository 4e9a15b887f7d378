package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies how a transaction was recorded.
type TransactionType string

const (
	TransactionPayment TransactionType = "payment"
	TransactionExpense TransactionType = "expense"
	TransactionReceipt TransactionType = "receipt"
)

// SelfLabel is the payer label used for rows created by the ledger holder.
const SelfLabel = "You"

// SplitDetail allocates part of a transaction to one contact. A positive amount
// means the contact owes the ledger holder.
type SplitDetail struct {
	ContactID string          `json:"contactID"`
	Amount    decimal.Decimal `json:"amount"`
}

// Transaction is a recorded money movement with its per-contact splits.
type Transaction struct {
	TransactionID string          `json:"transactionID"`
	Type          TransactionType `json:"type"`
	From          string          `json:"from"` // payer label
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	Date          time.Time       `json:"date"`
	Splits        []SplitDetail   `json:"splits"`
	ReceiptID     *string         `json:"receiptID,omitempty"`
	Category      string          `json:"category,omitempty"`
}

// SplitTotal sums the split amounts.
func (t Transaction) SplitTotal() decimal.Decimal {
	sum := decimal.Zero
	for _, s := range t.Splits {
		sum = sum.Add(s.Amount)
	}
	return sum
}

// Involves reports whether the contact has a split on this transaction.
func (t Transaction) Involves(contactID string) bool {
	for _, s := range t.Splits {
		if s.ContactID == contactID {
			return true
		}
	}
	return false
}

// ContactIDs returns the split contact ids in split order.
func (t Transaction) ContactIDs() []string {
	ids := make([]string, len(t.Splits))
	for i, s := range t.Splits {
		ids[i] = s.ContactID
	}
	return ids
}
