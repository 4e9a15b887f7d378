package accounting

import (
	"testing"
	"time"

	"github.com/SscSPs/homeledger/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategorize(t *testing.T) {
	assert.Equal(t, "Food", Categorize("Pizza night"))
	assert.Equal(t, "Transport", Categorize("Uber to airport"))
	assert.Equal(t, "Housing", Categorize("October RENT"))
	assert.Equal(t, "Entertainment", Categorize("Concert tickets"))
	assert.Equal(t, CategoryOther, Categorize("Birthday gift"))
}

func TestComputeInsights(t *testing.T) {
	loc := time.UTC
	now := time.Date(2025, 10, 20, 0, 0, 0, 0, loc)
	txns := []domain.Transaction{
		{From: "You", Amount: d("60"), Description: "Dinner", Date: time.Date(2025, 10, 2, 0, 0, 0, 0, loc),
			Splits: []domain.SplitDetail{{ContactID: "a"}, {ContactID: "b"}}},
		{From: "Sam", Amount: d("100"), Description: "Rent share", Date: time.Date(2025, 9, 28, 0, 0, 0, 0, loc),
			Splits: []domain.SplitDetail{{ContactID: "a"}}},
		{From: "You", Amount: d("50"), Description: "Movie", Date: time.Date(2025, 10, 10, 0, 0, 0, 0, loc),
			Splits: []domain.SplitDetail{{ContactID: "a"}, {ContactID: "c"}, {ContactID: "d"}}},
	}

	insights := ComputeInsights(txns, now, loc)

	assert.Equal(t, "You", insights.TopPayer)
	assert.True(t, d("110").Equal(insights.TopPayerAmount))
	assert.True(t, d("60").Equal(insights.SpendingByCategory["Food"]))
	assert.True(t, d("100").Equal(insights.SpendingByCategory["Housing"]))
	assert.True(t, d("50").Equal(insights.SpendingByCategory["Entertainment"]))
	assert.True(t, d("110").Equal(insights.TotalThisMonth))
	assert.True(t, d("70").Equal(insights.AverageTransaction))
	assert.Equal(t, 3, insights.TransactionCount)

	require.Len(t, insights.TopPartners, TopPartnerCount)
	assert.Equal(t, domain.PartnerCount{ContactID: "a", Count: 3}, insights.TopPartners[0])
}

func TestComputeInsights_Empty(t *testing.T) {
	insights := ComputeInsights(nil, time.Now(), time.UTC)
	assert.Zero(t, insights.TransactionCount)
	assert.True(t, insights.AverageTransaction.IsZero())
	assert.Empty(t, insights.TopPartners)
}
