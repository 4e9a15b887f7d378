package memory

import (
	"context"

	"github.com/SscSPs/homeledger/internal/apperrors"
	"github.com/SscSPs/homeledger/internal/core/domain"
	portsrepo "github.com/SscSPs/homeledger/internal/core/ports/repositories"
)

type RecurringRepository struct {
	store *Store
}

func newRecurringRepository(store *Store) portsrepo.RecurringRepositoryFacade {
	return &RecurringRepository{store: store}
}

var _ portsrepo.RecurringRepositoryFacade = (*RecurringRepository)(nil)

func (r *RecurringRepository) SaveRecurringExpense(_ context.Context, expense domain.RecurringExpense) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i, existing := range r.store.recurring {
		if existing.RecurringID == expense.RecurringID {
			r.store.recurring[i] = cloneRecurring(expense)
			return nil
		}
	}
	r.store.recurring = append(r.store.recurring, cloneRecurring(expense))
	return nil
}

func (r *RecurringRepository) FindRecurringExpenseByID(_ context.Context, recurringID string) (*domain.RecurringExpense, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, existing := range r.store.recurring {
		if existing.RecurringID == recurringID {
			found := cloneRecurring(existing)
			return &found, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *RecurringRepository) ListRecurringExpenses(_ context.Context) ([]domain.RecurringExpense, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]domain.RecurringExpense, len(r.store.recurring))
	for i, existing := range r.store.recurring {
		out[i] = cloneRecurring(existing)
	}
	return out, nil
}
