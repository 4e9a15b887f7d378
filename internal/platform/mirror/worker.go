// Package mirror forwards records to the remote store in the background.
// Callers never wait on remote I/O: events are queued, written by a single
// worker goroutine, dropped when the queue is full and never retried.
package mirror

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/SscSPs/homeledger/internal/core/domain"
	portsrepo "github.com/SscSPs/homeledger/internal/core/ports/repositories"
	"github.com/SscSPs/homeledger/internal/middleware"
	"github.com/SscSPs/homeledger/internal/platform/metrics"
)

const defaultWriteTimeout = 5 * time.Second

type Worker struct {
	eventCh      chan Event
	sink         Sink
	logger       *slog.Logger
	metrics      *metrics.Metrics
	writeTimeout time.Duration

	wg     sync.WaitGroup
	ctx    context.Context
	cancel context.CancelFunc

	mu     sync.RWMutex
	closed bool
}

type WorkerOption func(*Worker)

func WithLogger(logger *slog.Logger) WorkerOption {
	return func(w *Worker) {
		w.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) WorkerOption {
	return func(w *Worker) {
		w.metrics = m
	}
}

func WithWriteTimeout(d time.Duration) WorkerOption {
	return func(w *Worker) {
		w.writeTimeout = d
	}
}

func NewWorker(sink Sink, bufferSize int, opts ...WorkerOption) *Worker {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Worker{
		eventCh:      make(chan Event, bufferSize),
		sink:         sink,
		logger:       slog.Default(),
		writeTimeout: defaultWriteTimeout,
		ctx:          ctx,
		cancel:       cancel,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

var _ portsrepo.RecordMirror = (*Worker)(nil)

func (w *Worker) Start() {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		for {
			select {
			case <-w.ctx.Done():
				w.logger.Info("draining mirror events before shutdown", slog.Int("remaining_events", len(w.eventCh)))
				for len(w.eventCh) > 0 {
					w.write(<-w.eventCh)
				}
				return
			case event := <-w.eventCh:
				w.write(event)
			}
		}
	}()
}

// write applies one event. The worker context only signals when to stop, so a
// write started before Shutdown still runs to completion or its own timeout.
func (w *Worker) write(event Event) {
	ctx, cancel := context.WithTimeout(context.Background(), w.writeTimeout)
	defer cancel()
	if err := w.sink.Apply(ctx, event); err != nil {
		w.logger.Error("failed to mirror record",
			slog.String("error", err.Error()),
			slog.String("kind", string(event.Kind)),
			slog.String("event_id", event.ID.String()))
		w.metrics.MirrorEvent(string(event.Kind), metrics.MirrorFailed)
		return
	}
	w.metrics.MirrorEvent(string(event.Kind), metrics.MirrorWritten)
}

// Enqueue queues the event without blocking. It reports false when the event
// was dropped because the queue is full or the worker has shut down.
func (w *Worker) Enqueue(event Event) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.closed {
		return false
	}
	select {
	case w.eventCh <- event:
		w.metrics.MirrorEvent(string(event.Kind), metrics.MirrorEnqueued)
		return true
	default:
		w.logger.Warn("mirror queue full, dropping event", slog.String("kind", string(event.Kind)))
		w.metrics.MirrorEvent(string(event.Kind), metrics.MirrorDropped)
		return false
	}
}

// Shutdown stops accepting events, writes whatever is queued and returns.
func (w *Worker) Shutdown() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.closed = true
	w.mu.Unlock()

	w.cancel()
	w.wg.Wait()
	close(w.eventCh)
}

func (w *Worker) MirrorExpense(ctx context.Context, record domain.ExpenseRecord) {
	w.Enqueue(NewEvent(KindExpense, record, requestMetadata(ctx)...))
}

func (w *Worker) MirrorRoommate(ctx context.Context, record domain.RoommateRecord) {
	w.Enqueue(NewEvent(KindRoommate, record, requestMetadata(ctx)...))
}

func (w *Worker) MirrorGroup(ctx context.Context, record domain.GroupRecord) {
	w.Enqueue(NewEvent(KindGroup, record, requestMetadata(ctx)...))
}

func requestMetadata(ctx context.Context) []EventOption {
	if requestID := middleware.GetRequestIDFromCtx(ctx); requestID != "" {
		return []EventOption{WithMetadata("request_id", requestID)}
	}
	return nil
}

// Discard is the mirror used when no remote store is configured.
type Discard struct{}

var _ portsrepo.RecordMirror = Discard{}

func (Discard) MirrorExpense(context.Context, domain.ExpenseRecord)   {}
func (Discard) MirrorRoommate(context.Context, domain.RoommateRecord) {}
func (Discard) MirrorGroup(context.Context, domain.GroupRecord)       {}
