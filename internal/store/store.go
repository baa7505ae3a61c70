package store

import (
	"context"
	"time"

	"github.com/tagin-labs/tagin-verifier/internal/store/schema"
)

// ScanEventFilter narrows scan log queries. Nil fields are ignored.
type ScanEventFilter struct {
	TokenID      *uint64
	Manufacturer *string
	Outcome      *string
	Since        *time.Time
	Until        *time.Time
	Limit        int
	Offset       int
}

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// CreateProduct persists a newly registered product record
	CreateProduct(ctx context.Context, product *schema.Product) error
	// GetProductByTokenID retrieves a product by its registry token id
	GetProductByTokenID(ctx context.Context, tokenID uint64) (*schema.Product, error)
	// GetProductBySerial retrieves a product by manufacturer and serial number
	GetProductBySerial(ctx context.Context, manufacturer, serialNumber string) (*schema.Product, error)
	// ListProductsByManufacturer retrieves products registered by a manufacturer
	ListProductsByManufacturer(ctx context.Context, manufacturer string, limit, offset int) ([]*schema.Product, error)
	// UpdateProductOwner syncs the current owner after an observed transfer
	UpdateProductOwner(ctx context.Context, tokenID uint64, owner string) error

	// CreateScanEvent appends one row to the scan log
	CreateScanEvent(ctx context.Context, event *schema.ScanEvent) error
	// ListScanEvents queries the scan log, ordered by timestamp then id
	ListScanEvents(ctx context.Context, filter ScanEventFilter) ([]*schema.ScanEvent, error)

	// GetBlockCursor retrieves the last processed block number for a chain
	GetBlockCursor(ctx context.Context, chain string) (uint64, error)
	// SetBlockCursor stores the last processed block number for a chain
	SetBlockCursor(ctx context.Context, chain string, blockNumber uint64) error
}
