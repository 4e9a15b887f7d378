package memory

import (
	portsrepo "github.com/SscSPs/homeledger/internal/core/ports/repositories"
)

// NewRepositoryProvider exposes the store through the repository ports.
// mirror receives the records forwarded to the remote store; it may be nil.
func NewRepositoryProvider(store *Store, mirror portsrepo.RecordMirror) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ContactRepo:     newContactRepository(store),
		TransactionRepo: newTransactionRepository(store),
		ReceiptRepo:     newReceiptRepository(store),
		RecurringRepo:   newRecurringRepository(store),
		ProfileRepo:     newProfileRepository(store),
		RoommateRepo:    newRoommateRepository(store),
		ChoreRepo:       newChoreRepository(store),
		Mirror:          mirror,
	}
}
