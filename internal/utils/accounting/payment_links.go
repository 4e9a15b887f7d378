package accounting

import (
	"fmt"
	"net/url"

	"github.com/SscSPs/homeledger/internal/apperrors"
	"github.com/SscSPs/homeledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SettlementNote is attached to payment requests created by the app.
const SettlementNote = "SplitPay settlement"

// PaymentLink builds a deep link for paying amount to recipient. It only builds
// the URL; nothing is sent.
func PaymentLink(provider domain.PaymentProvider, recipient string, amount decimal.Decimal) (string, error) {
	if recipient == "" {
		return "", apperrors.NewValidationError(apperrors.CodeMissingRequiredField, "recipient", "recipient is required")
	}
	if !amount.IsPositive() {
		return "", apperrors.NewValidationError(apperrors.CodeInvalidAmount, "amount", "amount must be positive")
	}
	formatted := amount.StringFixed(2)

	switch provider {
	case domain.ProviderVenmo:
		q := url.Values{}
		q.Set("txn", "pay")
		q.Set("recipients", recipient)
		q.Set("amount", formatted)
		q.Set("note", SettlementNote)
		return "venmo://paycharge?" + q.Encode(), nil
	case domain.ProviderPayPal:
		return fmt.Sprintf("https://www.paypal.com/paypalme/%s/%s", url.PathEscape(recipient), formatted), nil
	case domain.ProviderGeneric, "":
		q := url.Values{}
		q.Set("recipient", recipient)
		q.Set("amount", formatted)
		return "splitpay://pay?" + q.Encode(), nil
	default:
		return "", apperrors.NewValidationError(apperrors.CodeMissingRequiredField, "provider", "unknown payment provider "+string(provider))
	}
}
