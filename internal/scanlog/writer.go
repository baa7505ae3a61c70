// Package scanlog maintains the append-only log of verification scans.
// Rows are appended through a bounded worker pool so recording a scan
// never blocks the verification response path.
package scanlog

import (
	"context"
	"fmt"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/tagin-labs/tagin-verifier/internal/adapter"
	"github.com/tagin-labs/tagin-verifier/internal/domain"
	"github.com/tagin-labs/tagin-verifier/internal/logger"
	"github.com/tagin-labs/tagin-verifier/internal/store"
	"github.com/tagin-labs/tagin-verifier/internal/store/schema"
)

const (
	DEFAULT_WORKER_POOL_SIZE  = 4
	DEFAULT_WORKER_QUEUE_SIZE = 1024

	// Persistence of an accepted scan must not be cut short by the
	// caller's request context
	appendTimeout = 10 * time.Second
)

// Config holds the scan log configuration
type Config struct {
	WorkerPoolSize  int
	WorkerQueueSize int
}

// Writer appends scan events and queries the log
//
//go:generate mockgen -source=writer.go -destination=../mocks/scanlog.go -package=mocks -mock_names=Writer=MockScanWriter
type Writer interface {
	// Append validates the event, assigns its id and queues it for
	// persistence. The returned event carries the assigned id.
	Append(ctx context.Context, event *domain.ScanEvent) (*domain.ScanEvent, error)

	// Query reads scan events matching the filter, ordered by
	// timestamp then insertion
	Query(ctx context.Context, filter store.ScanEventFilter) ([]*domain.ScanEvent, error)

	// Close drains the pending appends and stops the pool
	Close()
}

type writer struct {
	store store.Store
	clock adapter.Clock
	pool  pond.Pool
}

// NewWriter creates a new scan log writer
func NewWriter(s store.Store, clock adapter.Clock, cfg Config) Writer {
	if cfg.WorkerPoolSize == 0 {
		cfg.WorkerPoolSize = DEFAULT_WORKER_POOL_SIZE
	}
	if cfg.WorkerQueueSize == 0 {
		cfg.WorkerQueueSize = DEFAULT_WORKER_QUEUE_SIZE
	}

	return &writer{
		store: s,
		clock: clock,
		pool: pond.NewPool(
			cfg.WorkerPoolSize,
			pond.WithQueueSize(cfg.WorkerQueueSize),
		),
	}
}

// Append validates the event, assigns its id and queues it for persistence
func (w *writer) Append(ctx context.Context, event *domain.ScanEvent) (*domain.ScanEvent, error) {
	if event == nil {
		return nil, fmt.Errorf("nil scan event")
	}

	record := *event
	if record.Timestamp.IsZero() {
		record.Timestamp = w.clock.Now().UTC()
	}
	record.ID = ulid.MustNew(ulid.Timestamp(record.Timestamp), ulid.DefaultEntropy()).String()

	if !record.Valid() {
		return nil, fmt.Errorf("invalid scan event for token %d", record.TokenID)
	}

	row := toSchema(&record)
	w.pool.Submit(func() {
		persistCtx, cancel := context.WithTimeout(context.Background(), appendTimeout)
		defer cancel()

		if err := w.store.CreateScanEvent(persistCtx, row); err != nil {
			logger.Error(err,
				zap.String("message", "Failed to persist scan event"),
				zap.String("scan_id", row.ID),
				zap.Uint64("token_id", row.TokenID))
		}
	})

	return &record, nil
}

// Query reads scan events matching the filter
func (w *writer) Query(ctx context.Context, filter store.ScanEventFilter) ([]*domain.ScanEvent, error) {
	rows, err := w.store.ListScanEvents(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query scan log: %w", err)
	}

	events := make([]*domain.ScanEvent, 0, len(rows))
	for _, row := range rows {
		events = append(events, fromSchema(row))
	}
	return events, nil
}

// Close drains the pending appends and stops the pool
func (w *writer) Close() {
	logger.Info("Shutting down scan log worker pool",
		zap.Uint64("submitted", w.pool.SubmittedTasks()),
		zap.Uint64("waiting", w.pool.WaitingTasks()))

	w.pool.StopAndWait()

	logger.Info("Scan log worker pool shutdown complete",
		zap.Uint64("completed", w.pool.CompletedTasks()),
		zap.Uint64("failed", w.pool.FailedTasks()))
}

func toSchema(event *domain.ScanEvent) *schema.ScanEvent {
	return &schema.ScanEvent{
		ID:           event.ID,
		TokenID:      event.TokenID,
		Manufacturer: event.Manufacturer,
		Source:       event.Source,
		Outcome:      event.Outcome,
		City:         event.City,
		Timestamp:    event.Timestamp,
	}
}

func fromSchema(row *schema.ScanEvent) *domain.ScanEvent {
	return &domain.ScanEvent{
		ID:           row.ID,
		TokenID:      row.TokenID,
		Manufacturer: row.Manufacturer,
		Source:       row.Source,
		Outcome:      row.Outcome,
		City:         row.City,
		Timestamp:    row.Timestamp,
	}
}
