package mirror

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/homeledger/internal/core/domain"
	"github.com/SscSPs/homeledger/internal/middleware"
	"github.com/SscSPs/homeledger/internal/platform/metrics"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	mu     sync.Mutex
	events []Event
	err    error
}

func (s *recordingSink) Apply(_ context.Context, e Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
	return s.err
}

func (s *recordingSink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.events)
}

func TestWorkerDrainsQueueOnShutdown(t *testing.T) {
	sink := &recordingSink{}
	m := metrics.New()
	w := NewWorker(sink, 8, WithMetrics(m))

	ctx := context.Background()
	w.MirrorExpense(ctx, domain.ExpenseRecord{ID: "t1"})
	w.MirrorRoommate(ctx, domain.RoommateRecord{ID: "c1"})
	w.MirrorGroup(ctx, domain.GroupRecord{ID: "household"})

	w.Start()
	w.Shutdown()

	require.Equal(t, 3, sink.count())
	kinds := []Kind{sink.events[0].Kind, sink.events[1].Kind, sink.events[2].Kind}
	assert.Equal(t, []Kind{KindExpense, KindRoommate, KindGroup}, kinds)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.MirrorEventsCounter(string(KindExpense), metrics.MirrorWritten)))
}

// contextSink fails like a database driver would when handed a cancelled context.
type contextSink struct {
	mu       sync.Mutex
	applied  int
	canceled int
	delay    time.Duration
}

func (s *contextSink) Apply(ctx context.Context, _ Event) error {
	select {
	case <-time.After(s.delay):
	case <-ctx.Done():
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := ctx.Err(); err != nil {
		s.canceled++
		return err
	}
	s.applied++
	return nil
}

func TestWorkerShutdownDoesNotCancelQueuedWrites(t *testing.T) {
	const queued = 50
	for round := 0; round < 20; round++ {
		sink := &contextSink{delay: time.Millisecond}
		m := metrics.New()
		w := NewWorker(sink, queued, WithMetrics(m))
		for i := 0; i < queued; i++ {
			require.True(t, w.Enqueue(NewEvent(KindExpense, domain.ExpenseRecord{ID: "t1"})))
		}

		w.Start()
		w.Shutdown()

		require.Zero(t, sink.canceled, "round %d wrote events with a cancelled context", round)
		require.Equal(t, queued, sink.applied, "round %d lost queued events", round)
		require.Equal(t, float64(queued), testutil.ToFloat64(m.MirrorEventsCounter(string(KindExpense), metrics.MirrorWritten)))
	}
}

func TestWorkerDropsWhenFull(t *testing.T) {
	sink := &recordingSink{}
	m := metrics.New()
	w := NewWorker(sink, 1, WithMetrics(m))

	assert.True(t, w.Enqueue(NewEvent(KindExpense, domain.ExpenseRecord{ID: "t1"})))
	assert.False(t, w.Enqueue(NewEvent(KindExpense, domain.ExpenseRecord{ID: "t2"})))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.MirrorEventsCounter(string(KindExpense), metrics.MirrorDropped)))

	w.Start()
	w.Shutdown()
	assert.Equal(t, 1, sink.count())
}

func TestWorkerNeverRetriesFailures(t *testing.T) {
	sink := &recordingSink{err: errors.New("remote unavailable")}
	m := metrics.New()
	w := NewWorker(sink, 4, WithMetrics(m))

	w.MirrorExpense(context.Background(), domain.ExpenseRecord{ID: "t1"})
	w.Start()
	w.Shutdown()

	assert.Equal(t, 1, sink.count())
	assert.Equal(t, 1.0, testutil.ToFloat64(m.MirrorEventsCounter(string(KindExpense), metrics.MirrorFailed)))
}

func TestWorkerRejectsAfterShutdown(t *testing.T) {
	w := NewWorker(&recordingSink{}, 4)
	w.Start()
	w.Shutdown()
	w.Shutdown()

	assert.False(t, w.Enqueue(NewEvent(KindGroup, domain.GroupRecord{ID: "household"})))
}

func TestEventCarriesRequestID(t *testing.T) {
	sink := &recordingSink{}
	w := NewWorker(sink, 4)
	ctx := middleware.WithRequestID(context.Background(), "req-7")

	w.MirrorRoommate(ctx, domain.RoommateRecord{ID: "c1"})
	w.Start()
	w.Shutdown()

	require.Equal(t, 1, sink.count())
	assert.Equal(t, "req-7", sink.events[0].Metadata["request_id"])
	assert.NotEqual(t, uuid.Nil, sink.events[0].ID)
}

type mockRecordWriter struct {
	mock.Mock
}

func (m *mockRecordWriter) UpsertExpense(ctx context.Context, record domain.ExpenseRecord) error {
	return m.Called(ctx, record).Error(0)
}

func (m *mockRecordWriter) UpsertRoommate(ctx context.Context, record domain.RoommateRecord) error {
	return m.Called(ctx, record).Error(0)
}

func (m *mockRecordWriter) UpsertGroup(ctx context.Context, record domain.GroupRecord) error {
	return m.Called(ctx, record).Error(0)
}

func TestRecordSinkRoutesByRecordType(t *testing.T) {
	writer := new(mockRecordWriter)
	sink := RecordSink{Writer: writer}
	ctx := context.Background()

	expense := domain.ExpenseRecord{ID: "t1", Amount: decimal.NewFromInt(12)}
	roommate := domain.RoommateRecord{ID: "c1", Name: "Sarah"}
	group := domain.GroupRecord{ID: "household", Members: []string{"c1"}}

	writer.On("UpsertExpense", ctx, expense).Return(nil).Once()
	writer.On("UpsertRoommate", ctx, roommate).Return(errors.New("boom")).Once()
	writer.On("UpsertGroup", ctx, group).Return(nil).Once()

	assert.NoError(t, sink.Apply(ctx, NewEvent(KindExpense, expense)))
	assert.EqualError(t, sink.Apply(ctx, NewEvent(KindRoommate, roommate)), "boom")
	assert.NoError(t, sink.Apply(ctx, NewEvent(KindGroup, group)))
	assert.Error(t, sink.Apply(ctx, NewEvent(KindGroup, "not a record")))

	writer.AssertExpectations(t)
}
