package accounting

import (
	"testing"

	"github.com/SscSPs/homeledger/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentLink(t *testing.T) {
	venmo, err := PaymentLink(domain.ProviderVenmo, "sam@example.com", d("25"))
	require.NoError(t, err)
	assert.Equal(t, "venmo://paycharge?amount=25.00&note=SplitPay+settlement&recipients=sam%40example.com&txn=pay", venmo)

	paypal, err := PaymentLink(domain.ProviderPayPal, "sam", d("12.5"))
	require.NoError(t, err)
	assert.Equal(t, "https://www.paypal.com/paypalme/sam/12.50", paypal)

	generic, err := PaymentLink(domain.ProviderGeneric, "Sam Lee", d("3.333"))
	require.NoError(t, err)
	assert.Equal(t, "splitpay://pay?amount=3.33&recipient=Sam+Lee", generic)
}

func TestPaymentLink_Rejects(t *testing.T) {
	_, err := PaymentLink(domain.ProviderVenmo, "", d("1"))
	assert.Error(t, err)

	_, err = PaymentLink(domain.ProviderVenmo, "sam", d("0"))
	assert.Error(t, err)

	_, err = PaymentLink("zelle", "sam", d("1"))
	assert.Error(t, err)
}
