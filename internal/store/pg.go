package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"

	"github.com/tagin-labs/tagin-verifier/internal/domain"
	"github.com/tagin-labs/tagin-verifier/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

func hasDBResolver(db *gorm.DB) bool {
	return db != nil && db.Callback().Query().Get("gorm:db_resolver") != nil
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// It accesses the underlying *sql.DB and sets the pool configuration.
// If any of the pool settings are 0 or empty, reasonable defaults are used:
//   - MaxOpenConns: 20 (if 0)
//   - MaxIdleConns: 5 (if 0)
//   - ConnMaxLifetime: 5 minutes (if 0)
//   - ConnMaxIdleTime: 10 minutes (if 0)
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
//
// Notes:
//   - database/sql treats MaxOpenConns=0 as "unlimited"
//   - database/sql treats MaxIdleConns=0 as "no idle connections"
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	// Ensure MaxIdleConns doesn't exceed MaxOpenConns
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// CreateProduct persists a newly registered product record
func (s *pgStore) CreateProduct(ctx context.Context, product *schema.Product) error {
	err := s.db.WithContext(ctx).Create(product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) ||
			strings.Contains(err.Error(), "duplicate key") {
			return fmt.Errorf("%w: token %d", domain.ErrProductAlreadyExists, product.TokenID)
		}
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// GetProductByTokenID retrieves a product by its registry token id
func (s *pgStore) GetProductByTokenID(ctx context.Context, tokenID uint64) (*schema.Product, error) {
	var product schema.Product

	query := func(db *gorm.DB) error {
		return db.WithContext(ctx).
			Where("token_id = ?", tokenID).
			First(&product).Error
	}

	err := query(s.db)
	if err == nil {
		return &product, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if !hasDBResolver(s.db) {
		return nil, nil
	}

	// Replica can lag behind primary; retry on primary before returning not found.
	err = query(s.db.Clauses(dbresolver.Write))
	if err == nil {
		return &product, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return nil, fmt.Errorf("failed to get product: %w", err)
}

// GetProductBySerial retrieves a product by manufacturer and serial number
func (s *pgStore) GetProductBySerial(ctx context.Context, manufacturer, serialNumber string) (*schema.Product, error) {
	var product schema.Product
	err := s.db.WithContext(ctx).
		Where("manufacturer = ? AND serial_number = ?", manufacturer, serialNumber).
		First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get product by serial: %w", err)
	}
	return &product, nil
}

// ListProductsByManufacturer retrieves products registered by a manufacturer
func (s *pgStore) ListProductsByManufacturer(ctx context.Context, manufacturer string, limit, offset int) ([]*schema.Product, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}

	var products []*schema.Product
	err := s.db.WithContext(ctx).
		Where("manufacturer = ?", manufacturer).
		Order("token_id ASC").
		Limit(limit).
		Offset(offset).
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// UpdateProductOwner syncs the current owner after an observed transfer
func (s *pgStore) UpdateProductOwner(ctx context.Context, tokenID uint64, owner string) error {
	result := s.db.WithContext(ctx).
		Model(&schema.Product{}).
		Where("token_id = ?", tokenID).
		Update("current_owner", owner)
	if result.Error != nil {
		return fmt.Errorf("failed to update product owner: %w", result.Error)
	}
	// Transfers of tokens minted outside this deployment have no local
	// record; nothing to sync
	return nil
}

// CreateScanEvent appends one row to the scan log
func (s *pgStore) CreateScanEvent(ctx context.Context, event *schema.ScanEvent) error {
	err := s.db.WithContext(ctx).Create(event).Error
	if err != nil {
		return fmt.Errorf("failed to create scan event: %w", err)
	}
	return nil
}

// ListScanEvents queries the scan log, ordered by timestamp then id.
// IDs are ULIDs, so the id tiebreak preserves insertion order for
// equal timestamps.
func (s *pgStore) ListScanEvents(ctx context.Context, filter ScanEventFilter) ([]*schema.ScanEvent, error) {
	query := s.db.WithContext(ctx).Model(&schema.ScanEvent{})

	if filter.TokenID != nil {
		query = query.Where("token_id = ?", *filter.TokenID)
	}
	if filter.Manufacturer != nil {
		query = query.Where("manufacturer = ?", *filter.Manufacturer)
	}
	if filter.Outcome != nil {
		query = query.Where("outcome = ?", *filter.Outcome)
	}
	if filter.Since != nil {
		query = query.Where("timestamp >= ?", *filter.Since)
	}
	if filter.Until != nil {
		query = query.Where("timestamp < ?", *filter.Until)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var events []*schema.ScanEvent
	err := query.Order("timestamp ASC, id ASC").Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list scan events: %w", err)
	}
	return events, nil
}

// GetBlockCursor retrieves the last processed block number for a chain.
// A chain with no checkpoint yet returns zero.
func (s *pgStore) GetBlockCursor(ctx context.Context, chain string) (uint64, error) {
	var cursor schema.BlockCursor
	err := s.db.WithContext(ctx).Where("chain = ?", chain).First(&cursor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get block cursor: %w", err)
	}
	return cursor.BlockNumber, nil
}

// SetBlockCursor stores the last processed block number for a chain
func (s *pgStore) SetBlockCursor(ctx context.Context, chain string, blockNumber uint64) error {
	cursor := schema.BlockCursor{
		Chain:       chain,
		BlockNumber: blockNumber,
	}
	if err := s.db.WithContext(ctx).Save(&cursor).Error; err != nil {
		return fmt.Errorf("failed to set block cursor: %w", err)
	}
	return nil
}
