package memory

import (
	"context"

	"github.com/SscSPs/homeledger/internal/apperrors"
	"github.com/SscSPs/homeledger/internal/core/domain"
	portsrepo "github.com/SscSPs/homeledger/internal/core/ports/repositories"
)

type TransactionRepository struct {
	store *Store
}

func newTransactionRepository(store *Store) portsrepo.TransactionRepositoryFacade {
	return &TransactionRepository{store: store}
}

var _ portsrepo.TransactionRepositoryFacade = (*TransactionRepository)(nil)

// SaveTransaction prepends txn so the list stays most recently recorded first.
func (r *TransactionRepository) SaveTransaction(_ context.Context, txn domain.Transaction) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, t := range r.store.transactions {
		if t.TransactionID == txn.TransactionID {
			return apperrors.NewDuplicateError("transaction " + txn.TransactionID)
		}
	}
	r.store.transactions = append([]domain.Transaction{cloneTransaction(txn)}, r.store.transactions...)
	return nil
}

func (r *TransactionRepository) FindTransactionByID(_ context.Context, transactionID string) (*domain.Transaction, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, t := range r.store.transactions {
		if t.TransactionID == transactionID {
			found := cloneTransaction(t)
			return &found, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *TransactionRepository) ListTransactions(_ context.Context) ([]domain.Transaction, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]domain.Transaction, len(r.store.transactions))
	for i, t := range r.store.transactions {
		out[i] = cloneTransaction(t)
	}
	return out, nil
}
