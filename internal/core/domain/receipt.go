package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReceiptStatus tracks whether receipt items may still be reassigned.
type ReceiptStatus string

const (
	ReceiptDraft     ReceiptStatus = "draft"
	ReceiptFinalized ReceiptStatus = "finalized"
)

// ReceiptItem is a single line on a scanned receipt.
type ReceiptItem struct {
	ItemID     string          `json:"itemID"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"` // unit price
	Quantity   int             `json:"quantity"`
	AssignedTo []string        `json:"assignedTo"`
}

// LineTotal is price times quantity.
func (i ReceiptItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// IsAssigned reports whether at least one contact shares the item.
func (i ReceiptItem) IsAssigned() bool {
	return len(i.AssignedTo) > 0
}

// Receipt is an itemized bill. Total is informational and is not checked
// against the items.
type Receipt struct {
	ReceiptID     string          `json:"receiptID"`
	Date          time.Time       `json:"date"`
	Merchant      string          `json:"merchant"`
	Total         decimal.Decimal `json:"total"`
	Tax           decimal.Decimal `json:"tax"`
	Tip           decimal.Decimal `json:"tip"`
	Items         []ReceiptItem   `json:"items"`
	Status        ReceiptStatus   `json:"status"`
	TransactionID *string         `json:"transactionID,omitempty"`
}

// IsFinalized reports whether the receipt has been turned into a transaction.
func (r Receipt) IsFinalized() bool {
	return r.Status == ReceiptFinalized
}

// FindItem returns the index of the item with itemID, or -1.
func (r Receipt) FindItem(itemID string) int {
	for i, item := range r.Items {
		if item.ItemID == itemID {
			return i
		}
	}
	return -1
}

// ReceiptFinalization is a finalized receipt with the transaction it produced.
// UnassignedItems lists items nobody was charged for.
type ReceiptFinalization struct {
	Receipt         Receipt     `json:"receipt"`
	Transaction     Transaction `json:"transaction"`
	UnassignedItems []string    `json:"unassignedItems"`
}
