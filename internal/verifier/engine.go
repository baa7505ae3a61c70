// Package verifier reconciles a product's off-chain record against its
// on-chain binding and records the outcome in the scan log.
package verifier

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/tagin-labs/tagin-verifier/internal/domain"
	"github.com/tagin-labs/tagin-verifier/internal/hashbind"
	"github.com/tagin-labs/tagin-verifier/internal/ledger"
	"github.com/tagin-labs/tagin-verifier/internal/logger"
	"github.com/tagin-labs/tagin-verifier/internal/scanlog"
	"github.com/tagin-labs/tagin-verifier/internal/store"
	"github.com/tagin-labs/tagin-verifier/internal/store/schema"
)

// VerifyInput describes one verification attempt
type VerifyInput struct {
	// TokenID is the raw token id as it came off the tag or link
	TokenID string
	// Source is the scan channel
	Source domain.ScanSource
	// City is the reported scan location, may be empty
	City string
}

// Engine verifies product authenticity
//
//go:generate mockgen -source=engine.go -destination=../mocks/verifier.go -package=mocks -mock_names=Engine=MockEngine
type Engine interface {
	// Verify reconciles the token's record against its binding.
	// A returned result means the call reconciled (verdict verified
	// or mismatch); an error means it did not.
	Verify(ctx context.Context, input VerifyInput) (*domain.VerificationResult, error)
}

type engine struct {
	ledger  ledger.Client
	store   store.Store
	binder  hashbind.Binder
	scanlog scanlog.Writer
}

// NewEngine creates a new verification engine
func NewEngine(l ledger.Client, s store.Store, b hashbind.Binder, w scanlog.Writer) Engine {
	return &engine{
		ledger:  l,
		store:   s,
		binder:  b,
		scanlog: w,
	}
}

// Verify reconciles the token's record against its binding
func (e *engine) Verify(ctx context.Context, input VerifyInput) (*domain.VerificationResult, error) {
	if !input.Source.Valid() {
		return nil, fmt.Errorf("%w: unknown scan source %q", domain.ErrInvalidInput, input.Source)
	}

	tokenID, err := domain.ParseTokenID(input.TokenID)
	if err != nil {
		return nil, err
	}

	binding, product, err := e.fetch(ctx, tokenID)
	if err != nil {
		if errors.Is(err, domain.ErrMetadataMissing) && binding.Exists() {
			// The token is real but no record was ever stored for it;
			// this is a data-availability failure and gets logged as one
			e.recordScan(ctx, tokenID, binding.Manufacturer, input, domain.ScanOutcomeError)
		}
		return nil, err
	}

	if !binding.Exists() {
		return nil, fmt.Errorf("%w: token %d", domain.ErrTokenNotFound, tokenID)
	}

	record := toRecord(product)
	computed, _, err := e.binder.Bind(record)
	if err != nil {
		if errors.Is(err, domain.ErrIncompleteRecord) {
			e.recordScan(ctx, tokenID, binding.Manufacturer, input, domain.ScanOutcomeError)
		}
		return nil, err
	}

	verdict := domain.VerdictMismatch
	if subtle.ConstantTimeCompare(computed[:], binding.MetadataHash[:]) == 1 {
		verdict = domain.VerdictVerified
	}

	e.recordScan(ctx, tokenID, binding.Manufacturer, input, verdict.Outcome())

	return &domain.VerificationResult{
		TokenID:      tokenID,
		Verdict:      verdict,
		MetadataHash: binding.MetadataHash,
		ComputedHash: computed,
		Owner:        binding.Owner,
		Manufacturer: binding.Manufacturer,
		Record:       record,
	}, nil
}

// fetch reads the on-chain binding and the off-chain record
// concurrently. A failure on either side cancels the other.
func (e *engine) fetch(ctx context.Context, tokenID uint64) (*domain.LedgerBinding, *schema.Product, error) {
	fetchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	type bindingResult struct {
		binding *domain.LedgerBinding
		err     error
	}
	type productResult struct {
		product *schema.Product
		err     error
	}

	bindingCh := make(chan bindingResult, 1)
	productCh := make(chan productResult, 1)

	go func() {
		binding, err := e.ledger.GetProductDetails(fetchCtx, tokenID)
		if err != nil {
			cancel()
		}
		bindingCh <- bindingResult{binding: binding, err: err}
	}()

	go func() {
		product, err := e.store.GetProductByTokenID(fetchCtx, tokenID)
		if err != nil {
			cancel()
		}
		productCh <- productResult{product: product, err: err}
	}()

	br := <-bindingCh
	pr := <-productCh

	if br.err != nil {
		return nil, nil, br.err
	}
	if pr.err != nil && !errors.Is(pr.err, context.Canceled) {
		// A store read failure is transient; only a binding with no
		// stored record at all means the metadata was never published
		return br.binding, nil, fmt.Errorf("%w: read product %d: %v", domain.ErrNetworkFailure, tokenID, pr.err)
	}
	if br.binding.Exists() && pr.product == nil {
		return br.binding, nil, fmt.Errorf("%w: token %d", domain.ErrMetadataMissing, tokenID)
	}

	return br.binding, pr.product, nil
}

// recordScan appends exactly one scan event for a reconciled call
func (e *engine) recordScan(ctx context.Context, tokenID uint64, manufacturer string, input VerifyInput, outcome domain.ScanOutcome) {
	_, err := e.scanlog.Append(ctx, &domain.ScanEvent{
		TokenID:      tokenID,
		Manufacturer: manufacturer,
		Source:       input.Source,
		Outcome:      outcome,
		City:         input.City,
	})
	if err != nil {
		logger.ErrorCtx(ctx, err,
			zap.String("message", "Failed to record scan"),
			zap.Uint64("token_id", tokenID))
	}
}

func toRecord(product *schema.Product) *domain.ProductRecord {
	if product == nil {
		return nil
	}
	return &domain.ProductRecord{
		TokenID:         product.TokenID,
		Name:            product.Name,
		Serial:          product.SerialNumber,
		Model:           product.Model,
		Type:            product.ProductType,
		Color:           product.Color,
		ManufactureDate: product.ManufactureDate,
		Manufacturer:    product.Manufacturer,
	}
}
