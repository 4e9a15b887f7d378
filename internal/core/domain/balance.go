package domain

import "github.com/shopspring/decimal"

// Balance is the derived net amount between the ledger holder and a contact.
// Positive means the contact owes the holder.
type Balance struct {
	ContactID string          `json:"contactID"`
	Amount    decimal.Decimal `json:"amount"`
}

// OwesYou reports whether the contact owes the ledger holder.
func (b Balance) OwesYou() bool {
	return b.Amount.IsPositive()
}

// BalanceSummary aggregates both directions of a balance list.
type BalanceSummary struct {
	Balances  []Balance       `json:"balances"`
	TotalOwed decimal.Decimal `json:"totalOwed"` // owed to you
	TotalOwe  decimal.Decimal `json:"totalOwe"`  // you owe
}

// PaymentProvider selects the deep-link format for settling a balance.
type PaymentProvider string

const (
	ProviderVenmo   PaymentProvider = "venmo"
	ProviderPayPal  PaymentProvider = "paypal"
	ProviderGeneric PaymentProvider = "splitpay"
)

// LedgerInsights are spending statistics derived from the transaction list.
type LedgerInsights struct {
	TopPayer           string                     `json:"topPayer,omitempty"`
	TopPayerAmount     decimal.Decimal            `json:"topPayerAmount"`
	SpendingByCategory map[string]decimal.Decimal `json:"spendingByCategory"`
	TopPartners        []PartnerCount             `json:"topPartners"`
	TotalThisMonth     decimal.Decimal            `json:"totalThisMonth"`
	AverageTransaction decimal.Decimal            `json:"averageTransaction"`
	TransactionCount   int                        `json:"transactionCount"`
}

// PartnerCount is how often a contact shows up on splits.
type PartnerCount struct {
	ContactID string `json:"contactID"`
	Count     int    `json:"count"`
}

// PaymentRequest is a settlement deep link for one contact's balance.
type PaymentRequest struct {
	ContactID string          `json:"contactID"`
	Recipient string          `json:"recipient"`
	Amount    decimal.Decimal `json:"amount"`
	Provider  PaymentProvider `json:"provider"`
	URL       string          `json:"url"`
}
