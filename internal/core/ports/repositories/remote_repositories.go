package repositories

import (
	"context"

	"github.com/SscSPs/homeledger/internal/core/domain"
)

// RemoteRecordWriter upserts records into the household record store.
// Nothing in the application reads these records back.
type RemoteRecordWriter interface {
	UpsertExpense(ctx context.Context, record domain.ExpenseRecord) error
	UpsertRoommate(ctx context.Context, record domain.RoommateRecord) error
	UpsertGroup(ctx context.Context, record domain.GroupRecord) error
}

// RecordMirror forwards records to the remote store without waiting for the
// result. Implementations must never block the caller on remote I/O.
type RecordMirror interface {
	MirrorExpense(ctx context.Context, record domain.ExpenseRecord)
	MirrorRoommate(ctx context.Context, record domain.RoommateRecord)
	MirrorGroup(ctx context.Context, record domain.GroupRecord)
}

// RemoteRecordRepositoryWithTx is a record writer that also exposes transactions.
type RemoteRecordRepositoryWithTx interface {
	RemoteRecordWriter
	TransactionManager
}
