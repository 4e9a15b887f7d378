package accounting

import (
	"testing"

	"github.com/SscSPs/homeledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCalculateBalances(t *testing.T) {
	txns := []domain.Transaction{
		{Splits: []domain.SplitDetail{{ContactID: "a", Amount: d("30")}, {ContactID: "b", Amount: d("20")}}},
		{Splits: []domain.SplitDetail{{ContactID: "b", Amount: d("-20")}, {ContactID: "c", Amount: d("-12.5")}}},
		{Splits: []domain.SplitDetail{{ContactID: "a", Amount: d("5.25")}, {ContactID: "d", Amount: d("0.004")}}},
	}

	balances := CalculateBalances(txns)

	require.Len(t, balances, 2)
	assert.Equal(t, "a", balances[0].ContactID)
	assert.True(t, d("35.25").Equal(balances[0].Amount))
	assert.Equal(t, "c", balances[1].ContactID)
	assert.True(t, d("-12.5").Equal(balances[1].Amount))
}

func TestCalculateBalances_IsRegrouping(t *testing.T) {
	txns := []domain.Transaction{
		{Splits: []domain.SplitDetail{{ContactID: "a", Amount: d("10.10")}, {ContactID: "b", Amount: d("7")}}},
		{Splits: []domain.SplitDetail{{ContactID: "a", Amount: d("-3.10")}, {ContactID: "c", Amount: d("4.4")}}},
	}

	splitSum := decimal.Zero
	for _, txn := range txns {
		splitSum = splitSum.Add(txn.SplitTotal())
	}
	balanceSum := decimal.Zero
	for _, b := range CalculateBalances(txns) {
		balanceSum = balanceSum.Add(b.Amount)
	}

	assert.True(t, splitSum.Equal(balanceSum), "balances %s vs splits %s", balanceSum, splitSum)
}

func TestCalculateBalances_Empty(t *testing.T) {
	assert.Empty(t, CalculateBalances(nil))
}

func TestSummarize(t *testing.T) {
	summary := Summarize([]domain.Balance{
		{ContactID: "a", Amount: d("5")},
		{ContactID: "b", Amount: d("-40")},
		{ContactID: "c", Amount: d("12")},
	})

	assert.True(t, d("17").Equal(summary.TotalOwed))
	assert.True(t, d("40").Equal(summary.TotalOwe))
	require.Len(t, summary.Balances, 3)
	assert.Equal(t, []string{"b", "c", "a"}, []string{
		summary.Balances[0].ContactID, summary.Balances[1].ContactID, summary.Balances[2].ContactID,
	})
}
