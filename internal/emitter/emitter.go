package emitter

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/tagin-labs/tagin-verifier/internal/adapter"
	"github.com/tagin-labs/tagin-verifier/internal/domain"
	"github.com/tagin-labs/tagin-verifier/internal/logger"
	"github.com/tagin-labs/tagin-verifier/internal/messaging"
	"github.com/tagin-labs/tagin-verifier/internal/store"
)

// Config holds the configuration for the event emitter
type Config struct {
	ChainID         domain.Chain
	StartBlock      uint64
	CursorSaveFreq  uint64        // Save cursor every N blocks
	CursorSaveDelay time.Duration // Or save cursor every N seconds
}

// Emitter defines the interface for the event emitter
//
//go:generate mockgen -source=emitter.go -destination=../mocks/emitter.go -package=mocks -mock_names=Emitter=MockEmitter
type Emitter interface {
	// Run starts the event emitter
	Run(ctx context.Context) error
	// Close closes the emitter and cleans up resources
	Close()
}

// emitter subscribes to registry contract events, publishes them to
// NATS and keeps the products table's owner column in sync
type emitter struct {
	subscriber messaging.Subscriber
	publisher  messaging.Publisher
	store      store.Store
	config     Config
	clock      adapter.Clock

	lastSavedBlock uint64
	lastSaveTime   time.Time
}

// NewEmitter creates a new event emitter
func NewEmitter(
	sub messaging.Subscriber,
	pub messaging.Publisher,
	st store.Store,
	cfg Config,
	clock adapter.Clock,
) Emitter {
	return &emitter{
		subscriber: sub,
		publisher:  pub,
		store:      st,
		config:     cfg,
		clock:      clock,
	}
}

// Run subscribes to registry events from the resolved start block and
// processes them until the context is cancelled or the subscription
// fails
func (e *emitter) Run(ctx context.Context) error {
	startBlock, err := e.resolveStartBlock(ctx)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)

	go func() {
		logger.Info("Starting registry event subscription", zap.String("chain", string(e.config.ChainID)))

		e.lastSaveTime = e.clock.Now()
		if err := e.subscriber.SubscribeEvents(ctx, startBlock, e.handleEvent(ctx)); err != nil {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// resolveStartBlock picks the first block to process: the configured
// start block if set, otherwise the saved cursor, otherwise the chain
// head.
func (e *emitter) resolveStartBlock(ctx context.Context) (uint64, error) {
	chain := string(e.config.ChainID)

	if e.config.StartBlock != 0 {
		logger.Info("Starting from configured block",
			zap.String("chain", chain), zap.Uint64("block", e.config.StartBlock))
		return e.config.StartBlock, nil
	}

	lastBlock, err := e.store.GetBlockCursor(ctx, chain)
	if err != nil {
		return 0, fmt.Errorf("failed to get block cursor: %w", err)
	}
	if lastBlock > 0 {
		logger.Info("Resuming from last processed block",
			zap.String("chain", chain), zap.Uint64("block", lastBlock+1))
		return lastBlock + 1, nil
	}

	latestBlock, err := e.subscriber.GetLatestBlock(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get latest block number: %w", err)
	}
	logger.Info("Starting from latest block",
		zap.String("chain", chain), zap.Uint64("block", latestBlock))
	return latestBlock, nil
}

// handleEvent returns the per-event handler: publish to NATS, mirror
// ownership changes into the products table, checkpoint the cursor
func (e *emitter) handleEvent(ctx context.Context) messaging.EventHandler {
	return func(event *domain.RegistryEvent) error {
		if err := e.publisher.PublishEvent(ctx, event); err != nil {
			return fmt.Errorf("failed to publish event %s: %w", event.TxHash, err)
		}

		if event.EventType == domain.RegistryEventTransfer {
			if err := e.store.UpdateProductOwner(ctx, event.TokenID, event.ToAddress); err != nil {
				logger.Error(err,
					zap.String("message", "Failed to sync product owner"),
					zap.Uint64("token_id", event.TokenID),
					zap.String("owner", event.ToAddress))
			}
		}

		e.maybeSaveCursor(ctx, event.BlockNumber)
		return nil
	}
}

// maybeSaveCursor checkpoints the block cursor when enough blocks or
// enough time has passed since the last save. A failed save is logged
// and skipped; the worst case on restart is reprocessing a few blocks.
func (e *emitter) maybeSaveCursor(ctx context.Context, blockNumber uint64) {
	if blockNumber-e.lastSavedBlock < e.config.CursorSaveFreq &&
		e.clock.Since(e.lastSaveTime) < e.config.CursorSaveDelay {
		return
	}

	if err := e.store.SetBlockCursor(ctx, string(e.config.ChainID), blockNumber); err != nil {
		logger.Error(err, zap.String("message", "Failed to save block cursor"))
		return
	}
	e.lastSavedBlock = blockNumber
	e.lastSaveTime = e.clock.Now()
}

// Close closes the emitter and cleans up resources
func (e *emitter) Close() {
	e.subscriber.Close()
}
