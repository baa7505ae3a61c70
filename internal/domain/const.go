package domain

const (
	// Blockchain constants
	ETHEREUM_ZERO_ADDRESS = "0x0000000000000000000000000000000000000000"

	// MetadataHashSize is the size in bytes of a canonical metadata digest
	MetadataHashSize = 32

	// TopTokensLimit caps the top-N token ranking in an aggregate window
	TopTokensLimit = 10
)
