package dto

import (
	"encoding/hex"
	"time"

	"github.com/tagin-labs/tagin-verifier/internal/domain"
	"github.com/tagin-labs/tagin-verifier/internal/store/schema"
)

// ProductResponse is the public passport view of a registered product
type ProductResponse struct {
	TokenID         uint64    `json:"token_id"`
	Name            string    `json:"name"`
	SerialNumber    string    `json:"serial_number"`
	Model           string    `json:"model"`
	ProductType     string    `json:"product_type"`
	Color           string    `json:"color"`
	ManufactureDate string    `json:"manufacture_date"`
	Manufacturer    string    `json:"manufacturer"`
	CurrentOwner    string    `json:"current_owner"`
	MetadataHash    string    `json:"metadata_hash"`
	MintTxHash      *string   `json:"mint_tx_hash,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// MapProductToDTO maps a store row to the API response
func MapProductToDTO(p *schema.Product) *ProductResponse {
	return &ProductResponse{
		TokenID:         p.TokenID,
		Name:            p.Name,
		SerialNumber:    p.SerialNumber,
		Model:           p.Model,
		ProductType:     p.ProductType,
		Color:           p.Color,
		ManufactureDate: p.ManufactureDate,
		Manufacturer:    p.Manufacturer,
		CurrentOwner:    p.CurrentOwner,
		MetadataHash:    p.MetadataHash,
		MintTxHash:      p.MintTxHash,
		CreatedAt:       p.CreatedAt,
	}
}

// ProductListResponse is a page of products for a manufacturer dashboard
type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
	Limit    int               `json:"limit"`
	Offset   int               `json:"offset"`
}

// VerificationResponse carries the verdict plus provenance for one
// verification call
type VerificationResponse struct {
	TokenID      uint64                `json:"token_id"`
	Verdict      string                `json:"verdict"`
	MetadataHash string                `json:"metadata_hash"`
	ComputedHash string                `json:"computed_hash"`
	Owner        string                `json:"owner"`
	Manufacturer string                `json:"manufacturer"`
	Record       *domain.ProductRecord `json:"record,omitempty"`
}

// MapVerificationToDTO maps a verification result to the API response
func MapVerificationToDTO(result *domain.VerificationResult) *VerificationResponse {
	return &VerificationResponse{
		TokenID:      result.TokenID,
		Verdict:      string(result.Verdict),
		MetadataHash: hex.EncodeToString(result.MetadataHash[:]),
		ComputedHash: hex.EncodeToString(result.ComputedHash[:]),
		Owner:        result.Owner,
		Manufacturer: result.Manufacturer,
		Record:       result.Record,
	}
}

// ScanEventResponse echoes an accepted scan event with its assigned id
type ScanEventResponse struct {
	ID           string    `json:"id"`
	TokenID      uint64    `json:"token_id"`
	Manufacturer string    `json:"manufacturer"`
	Source       string    `json:"source"`
	Outcome      string    `json:"outcome"`
	City         string    `json:"city,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

// MapScanEventToDTO maps a recorded scan event to the API response
func MapScanEventToDTO(event *domain.ScanEvent) *ScanEventResponse {
	return &ScanEventResponse{
		ID:           event.ID,
		TokenID:      event.TokenID,
		Manufacturer: event.Manufacturer,
		Source:       string(event.Source),
		Outcome:      string(event.Outcome),
		City:         event.City,
		Timestamp:    event.Timestamp,
	}
}

// TransferResponse identifies a started transfer workflow run
type TransferResponse struct {
	WorkflowID string `json:"workflow_id"`
	RunID      string `json:"run_id"`
}

// TransferStatusResponse reports the state of a transfer workflow run
type TransferStatusResponse struct {
	WorkflowID string `json:"workflow_id"`
	RunID      string `json:"run_id"`
	Status     string `json:"status"`
}

// WhitelistResponse echoes the applied whitelist state for an address
type WhitelistResponse struct {
	Address     string `json:"address"`
	Whitelisted bool   `json:"whitelisted"`
}

// RegisterProductResponse is returned by POST /api/v1/products
type RegisterProductResponse struct {
	TokenID      uint64 `json:"token_id"`
	MetadataHash string `json:"metadata_hash"`
	Manufacturer string `json:"manufacturer"`
}
