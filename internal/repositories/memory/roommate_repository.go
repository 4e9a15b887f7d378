package memory

import (
	"context"

	"github.com/SscSPs/homeledger/internal/apperrors"
	"github.com/SscSPs/homeledger/internal/core/domain"
	portsrepo "github.com/SscSPs/homeledger/internal/core/ports/repositories"
)

type RoommateRepository struct {
	store *Store
}

func newRoommateRepository(store *Store) portsrepo.RoommateRepositoryFacade {
	return &RoommateRepository{store: store}
}

var _ portsrepo.RoommateRepositoryFacade = (*RoommateRepository)(nil)

func (r *RoommateRepository) SaveRoommate(_ context.Context, roommate domain.Roommate) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i, existing := range r.store.roommates {
		if existing.RoommateID == roommate.RoommateID {
			r.store.roommates[i] = cloneRoommate(roommate)
			return nil
		}
	}
	r.store.roommates = append(r.store.roommates, cloneRoommate(roommate))
	return nil
}

func (r *RoommateRepository) FindRoommateByID(_ context.Context, roommateID string) (*domain.Roommate, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, existing := range r.store.roommates {
		if existing.RoommateID == roommateID {
			found := cloneRoommate(existing)
			return &found, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *RoommateRepository) ListRoommates(_ context.Context) ([]domain.Roommate, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]domain.Roommate, len(r.store.roommates))
	for i, existing := range r.store.roommates {
		out[i] = cloneRoommate(existing)
	}
	return out, nil
}
