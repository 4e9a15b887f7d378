package accounting

import (
	"sort"

	"github.com/SscSPs/homeledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CalculateBalances regroups every split amount per contact. No sign is flipped:
// a split amount already means "this contact owes the ledger holder". Contacts
// whose net is within domain.SettledThreshold of zero are dropped. Output order
// is the order each contact first appears in txns.
func CalculateBalances(txns []domain.Transaction) []domain.Balance {
	totals := make(map[string]decimal.Decimal)
	order := make([]string, 0)

	for _, txn := range txns {
		for _, split := range txn.Splits {
			current, seen := totals[split.ContactID]
			if !seen {
				order = append(order, split.ContactID)
			}
			totals[split.ContactID] = current.Add(split.Amount)
		}
	}

	balances := make([]domain.Balance, 0, len(order))
	for _, contactID := range order {
		amount := totals[contactID]
		if domain.IsSettled(amount) {
			continue
		}
		balances = append(balances, domain.Balance{ContactID: contactID, Amount: amount})
	}
	return balances
}

// BalanceTotals sums what is owed to the holder and what the holder owes.
func BalanceTotals(balances []domain.Balance) (owed, owe decimal.Decimal) {
	owed, owe = decimal.Zero, decimal.Zero
	for _, b := range balances {
		if b.Amount.IsPositive() {
			owed = owed.Add(b.Amount)
		} else {
			owe = owe.Add(b.Amount.Abs())
		}
	}
	return owed, owe
}

// SortBalancesByMagnitude orders balances by absolute amount, largest first.
// Ties keep their relative order.
func SortBalancesByMagnitude(balances []domain.Balance) []domain.Balance {
	sorted := append([]domain.Balance(nil), balances...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Amount.Abs().GreaterThan(sorted[j].Amount.Abs())
	})
	return sorted
}

// Summarize builds the display summary for a balance list.
func Summarize(balances []domain.Balance) domain.BalanceSummary {
	owed, owe := BalanceTotals(balances)
	return domain.BalanceSummary{
		Balances:  SortBalancesByMagnitude(balances),
		TotalOwed: owed,
		TotalOwe:  owe,
	}
}
