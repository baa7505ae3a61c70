package domain

import "errors"

var (
	// ErrInvalidInput is returned when a request field fails validation
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidTokenID is returned when a token identifier is not a well-formed non-negative integer
	ErrInvalidTokenID = errors.New("invalid token id")

	// ErrTokenNotFound is returned when the ledger has no binding for a token
	ErrTokenNotFound = errors.New("token not found")

	// ErrMetadataMissing is returned when a ledger binding exists but the metadata store has no record
	ErrMetadataMissing = errors.New("metadata missing")

	// ErrIncompleteRecord is returned when a product record is missing a digest-covered field
	ErrIncompleteRecord = errors.New("incomplete product record")

	// ErrNetworkFailure is returned when a remote call failed after bounded retries
	ErrNetworkFailure = errors.New("network failure")

	// ErrWhitelistViolation is returned when a transfer targets a non-whitelisted recipient
	// or the submitter lacks authority to whitelist
	ErrWhitelistViolation = errors.New("whitelist violation")

	// ErrUnauthorizedTransfer is returned when the caller is neither owner nor approved operator
	ErrUnauthorizedTransfer = errors.New("unauthorized transfer")

	// ErrProductAlreadyExists is returned when registering a token id that is already stored
	ErrProductAlreadyExists = errors.New("product already exists")

	// ErrSubscriptionFailed is returned when subscription to registry events fails
	ErrSubscriptionFailed = errors.New("subscription failed")
)

// Retryable reports whether an error class is transient and worth
// retrying with backoff. Everything else surfaces immediately with a
// stable kind so callers can branch.
func Retryable(err error) bool {
	if err == nil {
		return false
	}
	switch {
	case errors.Is(err, ErrInvalidInput),
		errors.Is(err, ErrInvalidTokenID),
		errors.Is(err, ErrTokenNotFound),
		errors.Is(err, ErrMetadataMissing),
		errors.Is(err, ErrIncompleteRecord),
		errors.Is(err, ErrWhitelistViolation),
		errors.Is(err, ErrUnauthorizedTransfer),
		errors.Is(err, ErrProductAlreadyExists):
		return false
	}
	return true
}
