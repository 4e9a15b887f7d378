package accounting

import (
	"strings"

	"github.com/SscSPs/homeledger/internal/apperrors"
	"github.com/SscSPs/homeledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CustomAmount is one contact's typed share in a custom split.
type CustomAmount struct {
	ContactID string
	Amount    string // decimal text; empty means zero
}

// SplitEqually gives every participant the same share of total. When includeSelf
// is set the payer counts as one more head in the division but receives no split.
// The result is not rounded, so the shares may not add up to total exactly.
func SplitEqually(total decimal.Decimal, participantIDs []string, includeSelf bool) ([]domain.SplitDetail, error) {
	if !total.IsPositive() {
		return nil, apperrors.NewValidationError(apperrors.CodeInvalidAmount, "amount", "amount must be a positive number")
	}
	if len(participantIDs) == 0 {
		return nil, apperrors.NewValidationError(apperrors.CodeNoParticipants, "participants", "select at least one person to split with")
	}

	heads := len(participantIDs)
	if includeSelf {
		heads++
	}
	share := total.Div(decimal.NewFromInt(int64(heads)))

	splits := make([]domain.SplitDetail, len(participantIDs))
	for i, id := range participantIDs {
		splits[i] = domain.SplitDetail{ContactID: id, Amount: share}
	}
	return splits, nil
}

// ParseAmount parses a user-entered decimal. Blank input is zero.
func ParseAmount(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(raw)
}

// SplitCustom validates user-entered shares against total. The shares must add
// up to total within domain.SettledThreshold.
func SplitCustom(total decimal.Decimal, amounts []CustomAmount) ([]domain.SplitDetail, error) {
	if !total.IsPositive() {
		return nil, apperrors.NewValidationError(apperrors.CodeInvalidTotal, "amount", "total must be a positive number")
	}
	if len(amounts) == 0 {
		return nil, apperrors.NewValidationError(apperrors.CodeNoParticipants, "participants", "select at least one person to split with")
	}

	splits := make([]domain.SplitDetail, 0, len(amounts))
	sum := decimal.Zero
	for _, a := range amounts {
		parsed, err := ParseAmount(a.Amount)
		if err != nil || parsed.IsNegative() {
			return nil, apperrors.NewValidationError(apperrors.CodeInvalidAmount, a.ContactID, "custom amount must be a non-negative number")
		}
		sum = sum.Add(parsed)
		splits = append(splits, domain.SplitDetail{ContactID: a.ContactID, Amount: parsed})
	}

	if sum.Sub(total).Abs().GreaterThan(domain.SettledThreshold) {
		return nil, apperrors.NewValidationError(apperrors.CodeSumMismatch, "splits",
			"custom amounts add up to "+sum.StringFixed(2)+" but the total is "+total.StringFixed(2))
	}
	return splits, nil
}
