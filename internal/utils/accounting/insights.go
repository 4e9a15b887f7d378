package accounting

import (
	"sort"
	"strings"
	"time"

	"github.com/SscSPs/homeledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CategoryOther collects descriptions no keyword matched.
const CategoryOther = "Other"

// categoryKeywords is checked in order; the first category with a matching keyword wins.
var categoryKeywords = []struct {
	category string
	keywords []string
}{
	{"Food", []string{"restaurant", "food", "dinner", "lunch", "breakfast", "pizza", "groceries"}},
	{"Transport", []string{"uber", "lyft", "taxi", "gas", "parking"}},
	{"Housing", []string{"rent", "utilities", "electric", "water", "internet"}},
	{"Entertainment", []string{"movie", "concert", "bar", "club", "game"}},
}

// Categorize guesses a spending category from a description.
func Categorize(description string) string {
	desc := strings.ToLower(description)
	for _, c := range categoryKeywords {
		for _, kw := range c.keywords {
			if strings.Contains(desc, kw) {
				return c.category
			}
		}
	}
	return CategoryOther
}

// TopPartnerCount is how many split partners insights report.
const TopPartnerCount = 3

// ComputeInsights derives spending statistics from the transaction list.
func ComputeInsights(txns []domain.Transaction, now time.Time, loc *time.Location) domain.LedgerInsights {
	if loc == nil {
		loc = time.Local
	}
	insights := domain.LedgerInsights{
		TopPayerAmount:     decimal.Zero,
		SpendingByCategory: make(map[string]decimal.Decimal),
		TopPartners:        []domain.PartnerCount{},
		TotalThisMonth:     decimal.Zero,
		AverageTransaction: decimal.Zero,
		TransactionCount:   len(txns),
	}
	if len(txns) == 0 {
		return insights
	}

	byPayer := make(map[string]decimal.Decimal)
	var payerOrder []string
	partnerCounts := make(map[string]int)
	var partnerOrder []string
	total := decimal.Zero
	nowLocal := now.In(loc)

	for _, t := range txns {
		if _, ok := byPayer[t.From]; !ok {
			payerOrder = append(payerOrder, t.From)
		}
		byPayer[t.From] = byPayer[t.From].Add(t.Amount)

		cat := Categorize(t.Description)
		insights.SpendingByCategory[cat] = insights.SpendingByCategory[cat].Add(t.Amount)

		for _, s := range t.Splits {
			if _, ok := partnerCounts[s.ContactID]; !ok {
				partnerOrder = append(partnerOrder, s.ContactID)
			}
			partnerCounts[s.ContactID]++
		}

		d := t.Date.In(loc)
		if d.Year() == nowLocal.Year() && d.Month() == nowLocal.Month() {
			insights.TotalThisMonth = insights.TotalThisMonth.Add(t.Amount)
		}
		total = total.Add(t.Amount)
	}

	for _, payer := range payerOrder {
		if byPayer[payer].GreaterThan(insights.TopPayerAmount) || insights.TopPayer == "" {
			insights.TopPayer = payer
			insights.TopPayerAmount = byPayer[payer]
		}
	}

	sort.SliceStable(partnerOrder, func(i, j int) bool {
		return partnerCounts[partnerOrder[i]] > partnerCounts[partnerOrder[j]]
	})
	for i, id := range partnerOrder {
		if i == TopPartnerCount {
			break
		}
		insights.TopPartners = append(insights.TopPartners, domain.PartnerCount{ContactID: id, Count: partnerCounts[id]})
	}

	insights.AverageTransaction = total.Div(decimal.NewFromInt(int64(len(txns))))
	return insights
}
