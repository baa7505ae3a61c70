package hashbind

import (
	"crypto/sha256"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tagin-labs/tagin-verifier/internal/adapter"
	"github.com/tagin-labs/tagin-verifier/internal/domain"
)

func newTestBinder() Binder {
	return NewBinder(adapter.NewJSON(), adapter.NewJCS())
}

func sampleRecord() *domain.ProductRecord {
	return &domain.ProductRecord{
		TokenID:         1,
		Name:            "Shoe",
		Serial:          "S1",
		Model:           "M1",
		Type:            "Sneaker",
		Color:           "Red",
		ManufactureDate: "2024-01-01",
		Manufacturer:    "0x396343362be2A4dA1cE0C1C210945346fb82Aa49",
	}
}

func TestBind_Deterministic(t *testing.T) {
	b := newTestBinder()

	first, canonical1, err := b.Bind(sampleRecord())
	require.NoError(t, err)

	second, canonical2, err := b.Bind(sampleRecord())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, canonical1, canonical2)
	assert.Equal(t, sha256.Sum256(canonical1), first)
}

func TestBind_CanonicalKeyOrder(t *testing.T) {
	b := newTestBinder()

	_, canonical, err := b.Bind(sampleRecord())
	require.NoError(t, err)

	// JCS sorts keys lexicographically and strips whitespace
	assert.Equal(t,
		`{"color":"Red","date":"2024-01-01","model":"M1","name":"Shoe","serial":"S1","type":"Sneaker"}`,
		string(canonical))

	// Canonical output stays valid JSON
	var decoded map[string]string
	require.NoError(t, json.Unmarshal(canonical, &decoded))
	assert.Len(t, decoded, 6)
}

func TestBind_FieldSensitivity(t *testing.T) {
	b := newTestBinder()

	original, _, err := b.Bind(sampleRecord())
	require.NoError(t, err)

	tampered := sampleRecord()
	tampered.Color = "Blue"
	mutated, _, err := b.Bind(tampered)
	require.NoError(t, err)

	assert.NotEqual(t, original, mutated)

	// Fields outside the digest do not affect it
	moved := sampleRecord()
	moved.TokenID = 99
	moved.Manufacturer = "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"
	unchanged, _, err := b.Bind(moved)
	require.NoError(t, err)
	assert.Equal(t, original, unchanged)
}

func TestBind_IncompleteRecord(t *testing.T) {
	b := newTestBinder()

	_, _, err := b.Bind(nil)
	assert.ErrorIs(t, err, domain.ErrIncompleteRecord)

	for _, mutate := range []func(*domain.ProductRecord){
		func(r *domain.ProductRecord) { r.Name = "" },
		func(r *domain.ProductRecord) { r.Serial = "" },
		func(r *domain.ProductRecord) { r.Model = "" },
		func(r *domain.ProductRecord) { r.Type = "" },
		func(r *domain.ProductRecord) { r.Color = "" },
		func(r *domain.ProductRecord) { r.ManufactureDate = "" },
	} {
		record := sampleRecord()
		mutate(record)
		_, _, err := b.Bind(record)
		assert.ErrorIs(t, err, domain.ErrIncompleteRecord)
	}
}
