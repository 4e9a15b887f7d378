package memory

import (
	"context"

	"github.com/SscSPs/homeledger/internal/apperrors"
	"github.com/SscSPs/homeledger/internal/core/domain"
	portsrepo "github.com/SscSPs/homeledger/internal/core/ports/repositories"
)

type ChoreRepository struct {
	store *Store
}

func newChoreRepository(store *Store) portsrepo.ChoreRepositoryFacade {
	return &ChoreRepository{store: store}
}

var _ portsrepo.ChoreRepositoryFacade = (*ChoreRepository)(nil)

func (r *ChoreRepository) SaveChore(_ context.Context, chore domain.Chore) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i, existing := range r.store.chores {
		if existing.ChoreID == chore.ChoreID {
			r.store.chores[i] = chore.Clone()
			return nil
		}
	}
	r.store.chores = append(r.store.chores, chore.Clone())
	return nil
}

func (r *ChoreRepository) DeleteChore(_ context.Context, choreID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i, existing := range r.store.chores {
		if existing.ChoreID == choreID {
			r.store.chores = append(r.store.chores[:i:i], r.store.chores[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrNotFound
}

func (r *ChoreRepository) FindChoreByID(_ context.Context, choreID string) (*domain.Chore, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, existing := range r.store.chores {
		if existing.ChoreID == choreID {
			found := existing.Clone()
			return &found, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *ChoreRepository) ListChores(_ context.Context) ([]domain.Chore, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]domain.Chore, len(r.store.chores))
	for i, existing := range r.store.chores {
		out[i] = existing.Clone()
	}
	return out, nil
}
