package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// ScanSource represents how a verification attempt was initiated
type ScanSource string

const (
	ScanSourceManual ScanSource = "manual"
	ScanSourceNFC    ScanSource = "nfc"
	ScanSourceLink   ScanSource = "link"
)

// Valid checks if a scan source is one of the supported channels
func (s ScanSource) Valid() bool {
	return s == ScanSourceManual || s == ScanSourceNFC || s == ScanSourceLink
}

// ScanOutcome represents the result recorded for a verification attempt
type ScanOutcome string

const (
	ScanOutcomeVerified ScanOutcome = "verified"
	ScanOutcomeMismatch ScanOutcome = "mismatch"
	ScanOutcomeError    ScanOutcome = "error"
)

// Valid checks if a scan outcome is one of the recordable results
func (o ScanOutcome) Valid() bool {
	return o == ScanOutcomeVerified || o == ScanOutcomeMismatch || o == ScanOutcomeError
}

// Verdict is the reconciliation result of a verification call.
// Both values are successful outcomes; they differ only in whether the
// recomputed digest matched the one committed at mint time.
type Verdict string

const (
	VerdictVerified Verdict = "verified"
	VerdictMismatch Verdict = "mismatch"
)

// Outcome maps a verdict to the scan outcome recorded for it
func (v Verdict) Outcome() ScanOutcome {
	if v == VerdictVerified {
		return ScanOutcomeVerified
	}
	return ScanOutcomeMismatch
}

// ProductRecord holds the manufacturer-supplied metadata for one token.
// Created once at registration and immutable thereafter; a correction
// requires a new token since the ledger binding is hash-locked to these
// fields.
type ProductRecord struct {
	TokenID         uint64 `json:"token_id"`
	Name            string `json:"name"`
	Serial          string `json:"serial"`
	Model           string `json:"model"`
	Type            string `json:"type"`
	Color           string `json:"color"`
	ManufactureDate string `json:"manufacture_date"`
	Manufacturer    string `json:"manufacturer"`
}

// Complete reports whether all digest-covered fields are present
func (r *ProductRecord) Complete() bool {
	return r.Name != "" &&
		r.Serial != "" &&
		r.Model != "" &&
		r.Type != "" &&
		r.Color != "" &&
		r.ManufactureDate != ""
}

// LedgerBinding is the on-ledger record for a token: the metadata digest
// and manufacturer are immutable for the token's lifetime, the owner is
// changed exclusively by a successful transfer.
type LedgerBinding struct {
	TokenID      uint64   `json:"token_id"`
	MetadataHash [32]byte `json:"metadata_hash"`
	Manufacturer string   `json:"manufacturer"`
	Owner        string   `json:"owner"`
}

// Exists reports whether the binding describes a minted token.
// The registry returns a zero-valued entry for unknown ids, so a zero
// manufacturer address means no token.
func (b *LedgerBinding) Exists() bool {
	return b != nil && b.Manufacturer != "" && b.Manufacturer != ETHEREUM_ZERO_ADDRESS
}

// ScanEvent is one record of a verification attempt. Append-only; never
// mutated or deleted once recorded.
type ScanEvent struct {
	ID           string      `json:"id"`
	TokenID      uint64      `json:"token_id"`
	Manufacturer string      `json:"manufacturer"`
	Source       ScanSource  `json:"source"`
	Outcome      ScanOutcome `json:"outcome"`
	City         string      `json:"city,omitempty"`
	Timestamp    time.Time   `json:"timestamp"`
}

// Valid checks the event carries a recordable source and outcome
func (e *ScanEvent) Valid() bool {
	return e.Source.Valid() && e.Outcome.Valid()
}

// VerificationResult carries the verdict plus full provenance for a
// reconciled verification call
type VerificationResult struct {
	TokenID      uint64         `json:"token_id"`
	Verdict      Verdict        `json:"verdict"`
	MetadataHash [32]byte       `json:"metadata_hash"`
	ComputedHash [32]byte       `json:"computed_hash"`
	Owner        string         `json:"owner"`
	Manufacturer string         `json:"manufacturer"`
	Record       *ProductRecord `json:"record"`
}

// Verified reports whether the recomputed digest matched the binding
func (r *VerificationResult) Verified() bool {
	return r.Verdict == VerdictVerified
}

// Chain identifies the blockchain network using CAIP-2 format
// (e.g. "eip155:1" for Ethereum mainnet)
type Chain string

const (
	ChainEthereumMainnet Chain = "eip155:1"
	ChainEthereumSepolia Chain = "eip155:11155111"
)

// RegistryEventType represents the type of registry contract event
type RegistryEventType string

const (
	RegistryEventMint            RegistryEventType = "mint"
	RegistryEventTransfer        RegistryEventType = "transfer"
	RegistryEventWhitelistUpdate RegistryEventType = "whitelist_update"
)

// RegistryEvent represents a normalized registry contract event.
// This is the standard format published to NATS.
type RegistryEvent struct {
	EventType    RegistryEventType `json:"event_type"`
	TokenID      uint64            `json:"token_id,omitempty"`
	FromAddress  string            `json:"from_address,omitempty"`
	ToAddress    string            `json:"to_address,omitempty"`
	Manufacturer string            `json:"manufacturer,omitempty"`
	Account      string            `json:"account,omitempty"`
	Whitelisted  bool              `json:"whitelisted,omitempty"`
	TxHash       string            `json:"tx_hash"`
	BlockNumber  uint64            `json:"block_number"`
	Timestamp    time.Time         `json:"timestamp"`
}

// Valid checks the event carries the fields its type requires
func (e *RegistryEvent) Valid() bool {
	switch e.EventType {
	case RegistryEventMint:
		return e.Manufacturer != "" && e.Manufacturer != ETHEREUM_ZERO_ADDRESS
	case RegistryEventTransfer:
		return e.ToAddress != "" && e.ToAddress != ETHEREUM_ZERO_ADDRESS
	case RegistryEventWhitelistUpdate:
		return e.Account != "" && e.Account != ETHEREUM_ZERO_ADDRESS
	default:
		return false
	}
}

// IsMint reports whether a transfer-shaped event is actually a mint
// (ERC-721 mints emit Transfer from the zero address)
func (e *RegistryEvent) IsMint() bool {
	return e.EventType == RegistryEventMint ||
		(e.EventType == RegistryEventTransfer &&
			(e.FromAddress == "" || e.FromAddress == ETHEREUM_ZERO_ADDRESS))
}

// DailyStat is one row of an aggregate window's daily series
type DailyStat struct {
	Date     string `json:"date"`
	Total    int    `json:"total"`
	Verified int    `json:"verified"`
	Fake     int    `json:"fake"`
}

// TokenStat is one row of an aggregate window's top-token ranking
type TokenStat struct {
	TokenID uint64 `json:"token_id"`
	Total   int    `json:"total"`
	Fake    int    `json:"fake"`
}

// CityStat is one row of an aggregate window's mismatch heatmap
type CityStat struct {
	City      string `json:"city"`
	FakeScans int    `json:"fake_scans"`
}

// AggregateWindow is the derived statistics for a manufacturer over a
// day range. Computed on demand, never persisted.
type AggregateWindow struct {
	TotalScans       int                `json:"total_scans"`
	VerifiedScans    int                `json:"verified_scans"`
	FakeScans        int                `json:"fake_scans"`
	VerificationRate float64            `json:"verification_rate"`
	ScansBySource    map[ScanSource]int `json:"scans_by_source"`
	DailySeries      []DailyStat        `json:"daily_series"`
	TopTokens        []TokenStat        `json:"top_tokens"`
	Heatmap          []CityStat         `json:"heatmap"`
}

// TransferInput describes one whitelist-gated ownership transfer
type TransferInput struct {
	TokenID uint64 `json:"token_id"`
	From    string `json:"from"`
	To      string `json:"to"`
}

// Valid checks addresses are well formed and distinct
func (t *TransferInput) Valid() bool {
	if !common.IsHexAddress(t.From) || !common.IsHexAddress(t.To) {
		return false
	}
	if t.To == ETHEREUM_ZERO_ADDRESS {
		return false
	}
	return !strings.EqualFold(t.From, t.To)
}

// NormalizeAddress normalizes a hex address to its checksummed form
func NormalizeAddress(address string) string {
	if strings.HasPrefix(address, "0x") {
		return common.HexToAddress(address).String()
	}
	return address
}

// ParseTokenID parses a decimal token identifier. Anything that is not a
// plain non-negative integer is rejected before any external call.
func ParseTokenID(raw string) (uint64, error) {
	if !regexp.MustCompile(`^[0-9]+$`).MatchString(raw) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTokenID, raw)
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTokenID, raw)
	}
	return id, nil
}
