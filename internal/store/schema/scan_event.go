package schema

import (
	"time"

	"github.com/tagin-labs/tagin-verifier/internal/domain"
)

// ScanEvent represents the scan_events table - the append-only log of
// verification scans. Rows are never updated or deleted; IDs are ULIDs
// so insertion order is recoverable from the primary key alone.
type ScanEvent struct {
	// ID is the ULID assigned at append time
	ID string `gorm:"column:id;primaryKey;type:text"`
	// TokenID is the scanned registry token
	TokenID uint64 `gorm:"column:token_id;not null;index:idx_scan_events_token_timestamp,priority:1"`
	// Manufacturer is the manufacturer of the scanned product, captured
	// at scan time so aggregation survives ownership changes
	Manufacturer string `gorm:"column:manufacturer;not null;type:text;index:idx_scan_events_manufacturer_timestamp,priority:1"`
	// Source is the scan channel (manual, nfc, link)
	Source domain.ScanSource `gorm:"column:source;not null;type:text"`
	// Outcome is the reconciled verification outcome (verified, mismatch, error)
	Outcome domain.ScanOutcome `gorm:"column:outcome;not null;type:text"`
	// City is the reported scan location (empty when not provided)
	City string `gorm:"column:city;type:text"`
	// Timestamp is when the scan occurred
	Timestamp time.Time `gorm:"column:timestamp;not null;type:timestamptz;index:idx_scan_events_manufacturer_timestamp,priority:2;index:idx_scan_events_token_timestamp,priority:2"`
	// CreatedAt is when the row was appended
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the ScanEvent model
func (ScanEvent) TableName() string {
	return "scan_events"
}
