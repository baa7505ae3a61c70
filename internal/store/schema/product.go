package schema

import (
	"time"

	"gorm.io/datatypes"
)

// Product represents the products table - the off-chain record bound to
// a registry token. The six descriptive fields feed the canonical
// digest; MetadataHash mirrors the digest stored on chain at mint time.
type Product struct {
	// TokenID is the registry token id, assigned at mint
	TokenID uint64 `gorm:"column:token_id;primaryKey"`
	// Name is the product display name
	Name string `gorm:"column:name;not null;type:text"`
	// SerialNumber is the manufacturer-assigned serial
	SerialNumber string `gorm:"column:serial_number;not null;type:text;index:idx_products_manufacturer_serial,priority:2"`
	// Model is the product model designation
	Model string `gorm:"column:model;not null;type:text"`
	// ProductType is the product category
	ProductType string `gorm:"column:product_type;not null;type:text"`
	// Color is the product color
	Color string `gorm:"column:color;not null;type:text"`
	// ManufactureDate is the production date as provided by the manufacturer
	ManufactureDate string `gorm:"column:manufacture_date;not null;type:text"`
	// Manufacturer is the registering manufacturer's address
	Manufacturer string `gorm:"column:manufacturer;not null;type:text;index:idx_products_manufacturer_serial,priority:1"`
	// CurrentOwner is the owner address as of the last synced transfer
	CurrentOwner string `gorm:"column:current_owner;not null;type:text"`
	// MetadataHash is the hex-encoded canonical digest stored on chain
	MetadataHash string `gorm:"column:metadata_hash;not null;type:text"`
	// CanonicalJSON is the canonical form the digest was computed over
	CanonicalJSON datatypes.JSON `gorm:"column:canonical_json;type:jsonb"`
	// MintTxHash is the transaction hash of the mint (nil until confirmed)
	MintTxHash *string `gorm:"column:mint_tx_hash;type:text"`
	// CreatedAt is the timestamp when this record was registered
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`

	// Associations
	ScanEvents []ScanEvent `gorm:"foreignKey:TokenID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Product model
func (Product) TableName() string {
	return "products"
}
