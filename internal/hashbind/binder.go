// Package hashbind computes the canonical digest that binds a product
// record to its ledger entry.
//
// Canonical encoding: the six digest-covered fields (name, serial,
// model, type, color, date) are marshaled as a flat JSON object, the
// output is canonicalized per RFC 8785 (JCS: lexicographic key order,
// minimal escaping, no insignificant whitespace), and the canonical
// bytes are hashed with SHA-256. The same encoding is applied at mint
// time and at verification time; any change here breaks verification
// for every previously registered token.
package hashbind

import (
	"crypto/sha256"
	"fmt"

	"github.com/tagin-labs/tagin-verifier/internal/adapter"
	"github.com/tagin-labs/tagin-verifier/internal/domain"
)

// Binder derives the ledger digest for a product record
//
//go:generate mockgen -source=binder.go -destination=../mocks/binder.go -package=mocks -mock_names=Binder=MockBinder
type Binder interface {
	// Bind canonicalizes the digest-covered fields of a record and
	// returns the SHA-256 digest plus the canonical JSON it was
	// computed over. Pure; the only failure modes are an incomplete
	// record and canonicalization errors.
	Bind(record *domain.ProductRecord) ([domain.MetadataHashSize]byte, []byte, error)
}

// digestFields is the exact JSON shape covered by the digest. Field
// order here is irrelevant; JCS sorts keys lexicographically.
type digestFields struct {
	Name   string `json:"name"`
	Serial string `json:"serial"`
	Model  string `json:"model"`
	Type   string `json:"type"`
	Color  string `json:"color"`
	Date   string `json:"date"`
}

type binder struct {
	json adapter.JSON
	jcs  adapter.JCS
}

// NewBinder creates a new binder instance
func NewBinder(jsonAdapter adapter.JSON, jcsAdapter adapter.JCS) Binder {
	return &binder{
		json: jsonAdapter,
		jcs:  jcsAdapter,
	}
}

// Bind canonicalizes a product record and computes its SHA-256 digest
func (b *binder) Bind(record *domain.ProductRecord) ([domain.MetadataHashSize]byte, []byte, error) {
	var digest [domain.MetadataHashSize]byte

	if record == nil || !record.Complete() {
		return digest, nil, domain.ErrIncompleteRecord
	}

	raw, err := b.json.Marshal(digestFields{
		Name:   record.Name,
		Serial: record.Serial,
		Model:  record.Model,
		Type:   record.Type,
		Color:  record.Color,
		Date:   record.ManufactureDate,
	})
	if err != nil {
		return digest, nil, fmt.Errorf("failed to marshal record: %w", err)
	}

	canonical, err := b.jcs.Transform(raw)
	if err != nil {
		return digest, nil, fmt.Errorf("failed to canonicalize record: %w", err)
	}

	digest = sha256.Sum256(canonical)
	return digest, canonical, nil
}
