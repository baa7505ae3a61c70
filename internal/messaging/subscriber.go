package messaging

import (
	"context"

	"github.com/tagin-labs/tagin-verifier/internal/domain"
)

// EventHandler is called when a new registry event is received
type EventHandler func(event *domain.RegistryEvent) error

// Subscriber defines the interface for subscribing to registry contract
// events
//
//go:generate mockgen -source=subscriber.go -destination=../mocks/subscriber.go -package=mocks -mock_names=Subscriber=MockSubscriber
type Subscriber interface {
	// SubscribeEvents subscribes to registry events (mints, transfers,
	// whitelist updates)
	// fromBlock: starting point for subscription (0 for latest)
	// handler: callback function to process each event
	SubscribeEvents(ctx context.Context, fromBlock uint64, handler EventHandler) error

	// GetLatestBlock returns the latest block number
	GetLatestBlock(ctx context.Context) (uint64, error)

	// Close closes the connection and cleans up resources
	Close()
}
