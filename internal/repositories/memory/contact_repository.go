package memory

import (
	"context"

	"github.com/SscSPs/homeledger/internal/apperrors"
	"github.com/SscSPs/homeledger/internal/core/domain"
	portsrepo "github.com/SscSPs/homeledger/internal/core/ports/repositories"
)

type ContactRepository struct {
	store *Store
}

func newContactRepository(store *Store) portsrepo.ContactRepositoryFacade {
	return &ContactRepository{store: store}
}

var _ portsrepo.ContactRepositoryFacade = (*ContactRepository)(nil)

func (r *ContactRepository) SaveContact(_ context.Context, contact domain.Contact) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, c := range r.store.contacts {
		if c.ContactID == contact.ContactID {
			return apperrors.NewDuplicateError("contact " + contact.ContactID)
		}
	}
	r.store.contacts = append(r.store.contacts, contact)
	return nil
}

func (r *ContactRepository) FindContactByID(_ context.Context, contactID string) (*domain.Contact, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, c := range r.store.contacts {
		if c.ContactID == contactID {
			found := c
			return &found, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *ContactRepository) ListContacts(_ context.Context) ([]domain.Contact, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return append([]domain.Contact{}, r.store.contacts...), nil
}
