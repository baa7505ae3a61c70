package dto

import (
	"errors"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/tagin-labs/tagin-verifier/internal/domain"
)

// RegisterProductRequest is the body of POST /api/v1/products.
// Field completeness is not checked here: the hash binder owns that
// rule and reports an incomplete record as a 422.
type RegisterProductRequest struct {
	Name            string `json:"name"`
	SerialNumber    string `json:"serial_number"`
	Model           string `json:"model"`
	ProductType     string `json:"product_type"`
	Color           string `json:"color"`
	ManufactureDate string `json:"manufacture_date"`
}

// ToRecord builds the domain record bound and minted for a manufacturer
func (r *RegisterProductRequest) ToRecord(manufacturer string) *domain.ProductRecord {
	return &domain.ProductRecord{
		Name:            r.Name,
		Serial:          r.SerialNumber,
		Model:           r.Model,
		Type:            r.ProductType,
		Color:           r.Color,
		ManufactureDate: r.ManufactureDate,
		Manufacturer:    manufacturer,
	}
}

// VerifyRequest is the body of POST /api/v1/verifications
type VerifyRequest struct {
	TokenID string `json:"token_id"`
	Source  string `json:"source"`
	City    string `json:"city"`
}

// ScanEventRequest is the body of POST /api/v1/scans: one externally
// captured scan event. TokenID is a pointer because 0 is a legitimate
// token id; only an absent field is rejected.
type ScanEventRequest struct {
	TokenID      *uint64    `json:"token_id"`
	Manufacturer string     `json:"manufacturer"`
	Source       string     `json:"source"`
	Outcome      string     `json:"outcome"`
	City         string     `json:"city"`
	Timestamp    *time.Time `json:"timestamp"`
}

// Validate checks the event carries a recordable source and outcome
func (r *ScanEventRequest) Validate() error {
	if r.TokenID == nil {
		return errors.New("token_id is required")
	}
	if !domain.ScanSource(r.Source).Valid() {
		return errors.New("source must be one of manual, nfc, link")
	}
	if !domain.ScanOutcome(r.Outcome).Valid() {
		return errors.New("outcome must be one of verified, mismatch, error")
	}
	return nil
}

// ToEvent converts the request to a domain scan event
func (r *ScanEventRequest) ToEvent() *domain.ScanEvent {
	event := &domain.ScanEvent{
		TokenID:      *r.TokenID,
		Manufacturer: r.Manufacturer,
		Source:       domain.ScanSource(r.Source),
		Outcome:      domain.ScanOutcome(r.Outcome),
		City:         r.City,
	}
	if r.Timestamp != nil {
		event.Timestamp = *r.Timestamp
	}
	return event
}

// TransferRequest is the body of POST /api/v1/transfers. TokenID is a
// pointer because 0 is a legitimate token id; only an absent field is
// rejected.
type TransferRequest struct {
	TokenID *uint64 `json:"token_id"`
	From    string  `json:"from"`
	To      string  `json:"to"`
}

// Validate checks addresses are well formed and distinct
func (r *TransferRequest) Validate() error {
	if r.TokenID == nil {
		return errors.New("token_id is required")
	}
	input := r.ToInput()
	if !input.Valid() {
		return errors.New("from and to must be distinct valid addresses")
	}
	return nil
}

// ToInput converts the request to a workflow transfer input
func (r *TransferRequest) ToInput() *domain.TransferInput {
	return &domain.TransferInput{
		TokenID: *r.TokenID,
		From:    r.From,
		To:      r.To,
	}
}

// WhitelistRequest is the body of PUT /api/v1/whitelist/:address
type WhitelistRequest struct {
	Whitelisted bool `json:"whitelisted"`
}

// ValidAddress reports whether an address path parameter is well formed
func ValidAddress(address string) bool {
	return common.IsHexAddress(address)
}
