// Package memory holds the authoritative application state. Every handler reads
// and replaces whole values here; nothing is ever read back from the remote
// record store.
package memory

import (
	"sync"

	"github.com/SscSPs/homeledger/internal/core/domain"
)

// Store owns every collection behind a single lock. Transactions and receipts
// are kept most recently recorded first, everything else in creation order.
type Store struct {
	mu           sync.RWMutex
	contacts     []domain.Contact
	transactions []domain.Transaction
	receipts     []domain.Receipt
	recurring    []domain.RecurringExpense
	profiles     map[string]domain.UserProfile
	roommates    []domain.Roommate
	chores       []domain.Chore
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{profiles: make(map[string]domain.UserProfile)}
}

func cloneSplits(splits []domain.SplitDetail) []domain.SplitDetail {
	if splits == nil {
		return nil
	}
	return append([]domain.SplitDetail(nil), splits...)
}

func cloneTransaction(t domain.Transaction) domain.Transaction {
	t.Splits = cloneSplits(t.Splits)
	if t.ReceiptID != nil {
		id := *t.ReceiptID
		t.ReceiptID = &id
	}
	return t
}

func cloneReceipt(r domain.Receipt) domain.Receipt {
	items := make([]domain.ReceiptItem, len(r.Items))
	for i, item := range r.Items {
		item.AssignedTo = append([]string(nil), item.AssignedTo...)
		items[i] = item
	}
	r.Items = items
	if r.TransactionID != nil {
		id := *r.TransactionID
		r.TransactionID = &id
	}
	return r
}

func cloneRecurring(e domain.RecurringExpense) domain.RecurringExpense {
	e.Splits = cloneSplits(e.Splits)
	return e
}

func cloneRoommate(r domain.Roommate) domain.Roommate {
	r.Badges = append([]domain.BadgeID(nil), r.Badges...)
	return r
}
