package mirror

import (
	"context"
	"fmt"

	"github.com/SscSPs/homeledger/internal/core/domain"
	portsrepo "github.com/SscSPs/homeledger/internal/core/ports/repositories"
)

// Sink applies an event to the remote store.
type Sink interface {
	Apply(ctx context.Context, e Event) error
}

// RecordSink routes events to the matching upsert of a record writer.
type RecordSink struct {
	Writer portsrepo.RemoteRecordWriter
}

func (s RecordSink) Apply(ctx context.Context, e Event) error {
	switch rec := e.Record.(type) {
	case domain.ExpenseRecord:
		return s.Writer.UpsertExpense(ctx, rec)
	case domain.RoommateRecord:
		return s.Writer.UpsertRoommate(ctx, rec)
	case domain.GroupRecord:
		return s.Writer.UpsertGroup(ctx, rec)
	default:
		return fmt.Errorf("unsupported %s record type %T", e.Kind, e.Record)
	}
}
