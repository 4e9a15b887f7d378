package accounting

import (
	"slices"
	"time"

	"github.com/SscSPs/homeledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReceiptSplit is the per-contact allocation of a receipt.
type ReceiptSplit struct {
	Shares          []domain.SplitDetail `json:"shares"`
	UnassignedItems []string             `json:"unassignedItems"`
	ItemsTotal      decimal.Decimal      `json:"itemsTotal"`
	Allocated       decimal.Decimal      `json:"allocated"`
}

// ReceiptSubtotal sums every item's line total, assigned or not.
func ReceiptSubtotal(items []domain.ReceiptItem) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(item.LineTotal())
	}
	return sum
}

// SplitReceiptItems charges each assignee an equal part of the items they share,
// then a part of tax plus tip proportional to their item share. The proportion
// uses the subtotal of all items, so unassigned items leave some tax and tip
// uncollected. Unassigned item ids are returned for a warning.
func SplitReceiptItems(receipt domain.Receipt) ReceiptSplit {
	shares := make(map[string]decimal.Decimal)
	order := make([]string, 0)
	unassigned := make([]string, 0)

	for _, item := range receipt.Items {
		if !item.IsAssigned() {
			unassigned = append(unassigned, item.ItemID)
			continue
		}
		perPerson := item.LineTotal().Div(decimal.NewFromInt(int64(len(item.AssignedTo))))
		for _, contactID := range item.AssignedTo {
			current, seen := shares[contactID]
			if !seen {
				order = append(order, contactID)
			}
			shares[contactID] = current.Add(perPerson)
		}
	}

	itemsTotal := ReceiptSubtotal(receipt.Items)
	taxAndTip := receipt.Tax.Add(receipt.Tip)

	result := ReceiptSplit{
		Shares:          make([]domain.SplitDetail, 0, len(order)),
		UnassignedItems: unassigned,
		ItemsTotal:      itemsTotal,
		Allocated:       decimal.Zero,
	}
	for _, contactID := range order {
		amount := shares[contactID]
		if itemsTotal.IsPositive() {
			amount = amount.Add(taxAndTip.Mul(amount).Div(itemsTotal))
		}
		result.Allocated = result.Allocated.Add(amount)
		result.Shares = append(result.Shares, domain.SplitDetail{ContactID: contactID, Amount: amount})
	}
	return result
}

// ToggleItemAssignee adds contactID to the item's assignees, or removes it if present.
// It returns a new item slice and false if itemID is unknown.
func ToggleItemAssignee(items []domain.ReceiptItem, itemID, contactID string) ([]domain.ReceiptItem, bool) {
	out := make([]domain.ReceiptItem, len(items))
	found := false
	for i, item := range items {
		item.AssignedTo = slices.Clone(item.AssignedTo)
		if item.ItemID == itemID {
			found = true
			item.AssignedTo = toggleID(item.AssignedTo, contactID)
		}
		out[i] = item
	}
	return out, found
}

func toggleID(ids []string, id string) []string {
	for i, existing := range ids {
		if existing == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return append(ids, id)
}

// MockScannedReceipt is the static result returned in place of OCR.
// Tax is 8% and tip 18% of the items subtotal.
func MockScannedReceipt(receiptID string, now time.Time, newItemID func() string) domain.Receipt {
	items := []domain.ReceiptItem{
		{Name: "Caesar Salad", Price: decimal.RequireFromString("12.99"), Quantity: 2},
		{Name: "Margherita Pizza", Price: decimal.RequireFromString("18.50"), Quantity: 1},
		{Name: "Spaghetti Carbonara", Price: decimal.RequireFromString("16.00"), Quantity: 1},
		{Name: "Tiramisu", Price: decimal.RequireFromString("8.50"), Quantity: 2},
		{Name: "Coca Cola", Price: decimal.RequireFromString("3.50"), Quantity: 3},
	}
	for i := range items {
		items[i].ItemID = newItemID()
		items[i].AssignedTo = []string{}
	}

	subtotal := ReceiptSubtotal(items)
	tax := subtotal.Mul(decimal.RequireFromString("0.08")).Round(2)
	tip := subtotal.Mul(decimal.RequireFromString("0.18")).Round(2)

	return domain.Receipt{
		ReceiptID: receiptID,
		Date:      now,
		Merchant:  "Italian Garden Restaurant",
		Total:     subtotal.Add(tax).Add(tip),
		Tax:       tax,
		Tip:       tip,
		Items:     items,
		Status:    domain.ReceiptDraft,
	}
}
