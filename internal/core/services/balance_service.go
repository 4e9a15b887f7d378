package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/homeledger/internal/apperrors"
	"github.com/SscSPs/homeledger/internal/core/domain"
	portsrepo "github.com/SscSPs/homeledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/homeledger/internal/core/ports/services"
	"github.com/SscSPs/homeledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

type balanceService struct {
	BaseService
	txnRepo     portsrepo.TransactionReader
	contactRepo portsrepo.ContactReader
}

// NewBalanceService creates the read-only service deriving balances from the ledger.
func NewBalanceService(txnRepo portsrepo.TransactionReader, contactRepo portsrepo.ContactReader, options ...ServiceOption) portssvc.BalanceSvcFacade {
	return &balanceService{
		BaseService: newBaseService(options),
		txnRepo:     txnRepo,
		contactRepo: contactRepo,
	}
}

var _ portssvc.BalanceSvcFacade = (*balanceService)(nil)

func (s *balanceService) transactions(ctx context.Context) ([]domain.Transaction, error) {
	txns, err := s.txnRepo.ListTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txns, nil
}

func (s *balanceService) GetBalances(ctx context.Context) (*domain.BalanceSummary, error) {
	txns, err := s.transactions(ctx)
	if err != nil {
		return nil, err
	}
	summary := accounting.Summarize(accounting.CalculateBalances(txns))
	return &summary, nil
}

func (s *balanceService) GetInsights(ctx context.Context) (*domain.LedgerInsights, error) {
	txns, err := s.transactions(ctx)
	if err != nil {
		return nil, err
	}
	insights := accounting.ComputeInsights(txns, s.Now(), s.location)
	return &insights, nil
}

// GetPaymentLink only builds links for balances you owe.
func (s *balanceService) GetPaymentLink(ctx context.Context, contactID string, provider domain.PaymentProvider) (*domain.PaymentRequest, error) {
	contact, err := s.contactRepo.FindContactByID(ctx, contactID)
	if err != nil {
		return nil, err
	}
	txns, err := s.transactions(ctx)
	if err != nil {
		return nil, err
	}

	owed := decimal.Zero
	for _, b := range accounting.CalculateBalances(txns) {
		if b.ContactID == contactID {
			owed = b.Amount.Neg()
		}
	}
	if !owed.IsPositive() {
		return nil, apperrors.NewConflictError(fmt.Sprintf("you do not owe %s anything", contact.Name))
	}

	if provider == "" {
		provider = domain.ProviderGeneric
	}
	link, err := accounting.PaymentLink(provider, contact.PaymentRecipient(), owed)
	if err != nil {
		return nil, err
	}
	return &domain.PaymentRequest{
		ContactID: contactID,
		Recipient: contact.PaymentRecipient(),
		Amount:    owed,
		Provider:  provider,
		URL:       link,
	}, nil
}
