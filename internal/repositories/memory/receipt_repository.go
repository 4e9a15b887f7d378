package memory

import (
	"context"

	"github.com/SscSPs/homeledger/internal/apperrors"
	"github.com/SscSPs/homeledger/internal/core/domain"
	portsrepo "github.com/SscSPs/homeledger/internal/core/ports/repositories"
)

type ReceiptRepository struct {
	store *Store
}

func newReceiptRepository(store *Store) portsrepo.ReceiptRepositoryFacade {
	return &ReceiptRepository{store: store}
}

var _ portsrepo.ReceiptRepositoryFacade = (*ReceiptRepository)(nil)

// SaveReceipt replaces the receipt in place, or prepends it when new.
func (r *ReceiptRepository) SaveReceipt(_ context.Context, receipt domain.Receipt) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i, existing := range r.store.receipts {
		if existing.ReceiptID == receipt.ReceiptID {
			r.store.receipts[i] = cloneReceipt(receipt)
			return nil
		}
	}
	r.store.receipts = append([]domain.Receipt{cloneReceipt(receipt)}, r.store.receipts...)
	return nil
}

func (r *ReceiptRepository) FindReceiptByID(_ context.Context, receiptID string) (*domain.Receipt, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, existing := range r.store.receipts {
		if existing.ReceiptID == receiptID {
			found := cloneReceipt(existing)
			return &found, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *ReceiptRepository) ListReceipts(_ context.Context) ([]domain.Receipt, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]domain.Receipt, len(r.store.receipts))
	for i, existing := range r.store.receipts {
		out[i] = cloneReceipt(existing)
	}
	return out, nil
}
