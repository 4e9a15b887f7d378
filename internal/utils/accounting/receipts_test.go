package accounting

import (
	"strconv"
	"testing"
	"time"

	"github.com/SscSPs/homeledger/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitReceiptItems_SharedItem(t *testing.T) {
	receipt := domain.Receipt{
		Tax: d("2"),
		Tip: d("3"),
		Items: []domain.ReceiptItem{
			{ItemID: "i1", Price: d("10"), Quantity: 2, AssignedTo: []string{"a", "b"}},
		},
	}

	split := SplitReceiptItems(receipt)

	require.Len(t, split.Shares, 2)
	for _, s := range split.Shares {
		assert.True(t, d("12.5").Equal(s.Amount), "got %s", s.Amount)
	}
	assert.True(t, d("25").Equal(split.Allocated))
	assert.Empty(t, split.UnassignedItems)
}

func TestSplitReceiptItems_FullyAssignedMatchesTotal(t *testing.T) {
	receipt := MockScannedReceipt("r1", time.Now(), sequentialIDs())
	for i := range receipt.Items {
		receipt.Items[i].AssignedTo = []string{"a"}
		if i%2 == 0 {
			receipt.Items[i].AssignedTo = append(receipt.Items[i].AssignedTo, "b", "c")
		}
	}

	split := SplitReceiptItems(receipt)

	assert.True(t, split.Allocated.Sub(receipt.Total).Abs().LessThanOrEqual(domain.SettledThreshold),
		"allocated %s vs total %s", split.Allocated, receipt.Total)
}

func TestSplitReceiptItems_UnassignedUndercollects(t *testing.T) {
	receipt := domain.Receipt{
		Tax: d("4"),
		Tip: d("6"),
		Items: []domain.ReceiptItem{
			{ItemID: "i1", Price: d("10"), Quantity: 1, AssignedTo: []string{"a"}},
			{ItemID: "i2", Price: d("10"), Quantity: 1},
		},
	}

	split := SplitReceiptItems(receipt)

	require.Len(t, split.Shares, 1)
	// 10 of items plus half of the 10 tax and tip.
	assert.True(t, d("15").Equal(split.Shares[0].Amount))
	assert.Equal(t, []string{"i2"}, split.UnassignedItems)
	assert.True(t, d("20").Equal(split.ItemsTotal))
}

func TestSplitReceiptItems_ZeroSubtotal(t *testing.T) {
	receipt := domain.Receipt{
		Tax:   d("1"),
		Items: []domain.ReceiptItem{{ItemID: "i1", Price: d("0"), Quantity: 1, AssignedTo: []string{"a"}}},
	}

	split := SplitReceiptItems(receipt)

	require.Len(t, split.Shares, 1)
	assert.True(t, split.Shares[0].Amount.IsZero())
}

func TestToggleItemAssignee(t *testing.T) {
	items := []domain.ReceiptItem{{ItemID: "i1"}, {ItemID: "i2", AssignedTo: []string{"a"}}}

	added, found := ToggleItemAssignee(items, "i1", "b")
	require.True(t, found)
	assert.Equal(t, []string{"b"}, added[0].AssignedTo)
	assert.Empty(t, items[0].AssignedTo, "input must not be modified")

	removed, found := ToggleItemAssignee(added, "i2", "a")
	require.True(t, found)
	assert.Empty(t, removed[1].AssignedTo)
	assert.Equal(t, []string{"a"}, added[1].AssignedTo)

	_, found = ToggleItemAssignee(items, "missing", "a")
	assert.False(t, found)
}

func TestMockScannedReceipt(t *testing.T) {
	r := MockScannedReceipt("r1", time.Now(), sequentialIDs())

	assert.Equal(t, "Italian Garden Restaurant", r.Merchant)
	assert.Equal(t, domain.ReceiptDraft, r.Status)
	require.Len(t, r.Items, 5)
	assert.True(t, d("87.98").Equal(ReceiptSubtotal(r.Items)))
	assert.True(t, d("7.04").Equal(r.Tax))
	assert.True(t, d("15.84").Equal(r.Tip))
	assert.True(t, d("110.86").Equal(r.Total))
	for _, item := range r.Items {
		assert.False(t, item.IsAssigned())
	}
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return "item-" + strconv.Itoa(n)
	}
}
