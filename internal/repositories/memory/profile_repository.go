package memory

import (
	"context"

	"github.com/SscSPs/homeledger/internal/apperrors"
	"github.com/SscSPs/homeledger/internal/core/domain"
	portsrepo "github.com/SscSPs/homeledger/internal/core/ports/repositories"
)

type ProfileRepository struct {
	store *Store
}

func newProfileRepository(store *Store) portsrepo.ProfileRepositoryFacade {
	return &ProfileRepository{store: store}
}

var _ portsrepo.ProfileRepositoryFacade = (*ProfileRepository)(nil)

func (r *ProfileRepository) FindProfileByUserID(_ context.Context, userID string) (*domain.UserProfile, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	profile, ok := r.store.profiles[userID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &profile, nil
}

func (r *ProfileRepository) SaveProfile(_ context.Context, profile domain.UserProfile) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.profiles[profile.UserID] = profile
	return nil
}
