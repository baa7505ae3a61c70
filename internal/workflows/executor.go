package workflows

import (
	"context"
	"errors"
	"fmt"

	"go.temporal.io/sdk/temporal"

	"github.com/tagin-labs/tagin-verifier/internal/domain"
	"github.com/tagin-labs/tagin-verifier/internal/ledger"
)

// Error types surfaced to Temporal so retry policies can tell terminal
// failures from transient ones
const (
	ErrTypeInvalidInput         = "InvalidInput"
	ErrTypeTokenNotFound        = "TokenNotFound"
	ErrTypeWhitelistViolation   = "WhitelistViolation"
	ErrTypeUnauthorizedTransfer = "UnauthorizedTransfer"
)

// Executor defines the interface for executing activities
//
//go:generate mockgen -source=executor.go -destination=../mocks/executor.go -package=mocks -mock_names=Executor=MockExecutor
type Executor interface {
	// GetOwner reads the current owner of a token from the registry
	GetOwner(ctx context.Context, tokenID uint64) (string, error)

	// CheckWhitelisted reads whitelist membership for an address
	CheckWhitelisted(ctx context.Context, address string) (bool, error)

	// AddToWhitelist submits a whitelist-add transaction and waits for it
	AddToWhitelist(ctx context.Context, address string) error

	// ExecuteTransfer submits the ownership transfer and waits for it
	ExecuteTransfer(ctx context.Context, input *domain.TransferInput) error
}

// executor is the concrete implementation of Executor
type executor struct {
	ledger ledger.Client
}

// NewExecutor creates a new executor instance
func NewExecutor(ledgerClient ledger.Client) Executor {
	return &executor{
		ledger: ledgerClient,
	}
}

// GetOwner reads the current owner of a token from the registry
func (e *executor) GetOwner(ctx context.Context, tokenID uint64) (string, error) {
	binding, err := e.ledger.GetProductDetails(ctx, tokenID)
	if err != nil {
		return "", fmt.Errorf("failed to read binding for token %d: %w", tokenID, err)
	}
	if !binding.Exists() {
		return "", temporal.NewNonRetryableApplicationError(
			fmt.Sprintf("token %d not found", tokenID),
			ErrTypeTokenNotFound,
			domain.ErrTokenNotFound,
		)
	}
	return binding.Owner, nil
}

// CheckWhitelisted reads whitelist membership for an address
func (e *executor) CheckWhitelisted(ctx context.Context, address string) (bool, error) {
	whitelisted, err := e.ledger.IsWhitelisted(ctx, address)
	if err != nil {
		return false, fmt.Errorf("failed to check whitelist for %s: %w", address, err)
	}
	return whitelisted, nil
}

// AddToWhitelist submits a whitelist-add transaction and waits for it
func (e *executor) AddToWhitelist(ctx context.Context, address string) error {
	err := e.ledger.AddToWhitelist(ctx, address)
	if err != nil {
		if errors.Is(err, domain.ErrWhitelistViolation) {
			// The signing account lacks authority over the whitelist
			return temporal.NewNonRetryableApplicationError(
				fmt.Sprintf("not authorized to whitelist %s", address),
				ErrTypeWhitelistViolation,
				err,
			)
		}
		return fmt.Errorf("failed to whitelist %s: %w", address, err)
	}
	return nil
}

// ExecuteTransfer submits the ownership transfer and waits for it.
// A retried attempt may follow a submission that mined before its
// receipt came back; resubmitting would revert, so ownership is
// compared against the recipient first.
func (e *executor) ExecuteTransfer(ctx context.Context, input *domain.TransferInput) error {
	owner, err := e.ledger.OwnerOf(ctx, input.TokenID)
	if err != nil {
		return fmt.Errorf("failed to read owner of token %d: %w", input.TokenID, err)
	}
	if domain.NormalizeAddress(owner) == domain.NormalizeAddress(input.To) {
		return nil
	}

	err = e.ledger.SafeTransferFrom(ctx, input.From, input.To, input.TokenID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnauthorizedTransfer):
			return temporal.NewNonRetryableApplicationError(
				fmt.Sprintf("transfer of token %d not authorized for %s", input.TokenID, input.From),
				ErrTypeUnauthorizedTransfer,
				err,
			)
		case errors.Is(err, domain.ErrWhitelistViolation):
			return temporal.NewNonRetryableApplicationError(
				fmt.Sprintf("recipient %s not whitelisted", input.To),
				ErrTypeWhitelistViolation,
				err,
			)
		case errors.Is(err, domain.ErrTokenNotFound):
			return temporal.NewNonRetryableApplicationError(
				fmt.Sprintf("token %d not found", input.TokenID),
				ErrTypeTokenNotFound,
				err,
			)
		}
		return fmt.Errorf("failed to transfer token %d: %w", input.TokenID, err)
	}
	return nil
}
