package verifier_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tagin-labs/tagin-verifier/internal/adapter"
	"github.com/tagin-labs/tagin-verifier/internal/domain"
	"github.com/tagin-labs/tagin-verifier/internal/hashbind"
	"github.com/tagin-labs/tagin-verifier/internal/logger"
	"github.com/tagin-labs/tagin-verifier/internal/mocks"
	"github.com/tagin-labs/tagin-verifier/internal/store/schema"
	"github.com/tagin-labs/tagin-verifier/internal/verifier"
)

const (
	testManufacturer = "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"
	testOwner        = "0x8617E340B3D01FA5F11F306F4090FD50E238070D"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

// testEngineMocks contains all the mocks needed for testing the engine
type testEngineMocks struct {
	ctrl    *gomock.Controller
	ledger  *mocks.MockLedgerClient
	store   *mocks.MockStore
	scanlog *mocks.MockScanWriter
	binder  hashbind.Binder
	engine  verifier.Engine
}

func setupTestEngine(t *testing.T) *testEngineMocks {
	ctrl := gomock.NewController(t)

	tm := &testEngineMocks{
		ctrl:    ctrl,
		ledger:  mocks.NewMockLedgerClient(ctrl),
		store:   mocks.NewMockStore(ctrl),
		scanlog: mocks.NewMockScanWriter(ctrl),
		binder:  hashbind.NewBinder(adapter.NewJSON(), adapter.NewJCS()),
	}
	tm.engine = verifier.NewEngine(tm.ledger, tm.store, tm.binder, tm.scanlog)

	return tm
}

func tearDownTestEngine(tm *testEngineMocks) {
	tm.ctrl.Finish()
}

func testProductRow() *schema.Product {
	return &schema.Product{
		TokenID:         1,
		Name:            "Shoe",
		SerialNumber:    "S1",
		Model:           "M1",
		ProductType:     "Sneaker",
		Color:           "Red",
		ManufactureDate: "2024-01-01",
		Manufacturer:    testManufacturer,
		CurrentOwner:    testOwner,
	}
}

// digestOf computes the canonical digest the same way registration does
func digestOf(t *testing.T, product *schema.Product) [32]byte {
	binder := hashbind.NewBinder(adapter.NewJSON(), adapter.NewJCS())
	digest, _, err := binder.Bind(&domain.ProductRecord{
		Name:            product.Name,
		Serial:          product.SerialNumber,
		Model:           product.Model,
		Type:            product.ProductType,
		Color:           product.Color,
		ManufactureDate: product.ManufactureDate,
	})
	require.NoError(t, err)
	return digest
}

func expectScan(tm *testEngineMocks) *domain.ScanEvent {
	captured := &domain.ScanEvent{}
	tm.scanlog.EXPECT().
		Append(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *domain.ScanEvent) (*domain.ScanEvent, error) {
			*captured = *event
			return event, nil
		})
	return captured
}

func TestVerify_Verified(t *testing.T) {
	tm := setupTestEngine(t)
	defer tearDownTestEngine(tm)

	product := testProductRow()
	hash := digestOf(t, product)

	tm.ledger.EXPECT().
		GetProductDetails(gomock.Any(), uint64(1)).
		Return(&domain.LedgerBinding{
			TokenID:      1,
			MetadataHash: hash,
			Manufacturer: testManufacturer,
			Owner:        testOwner,
		}, nil)
	tm.store.EXPECT().
		GetProductByTokenID(gomock.Any(), uint64(1)).
		Return(product, nil)
	scan := expectScan(tm)

	result, err := tm.engine.Verify(context.Background(), verifier.VerifyInput{
		TokenID: "1",
		Source:  domain.ScanSourceNFC,
		City:    "Berlin",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.VerdictVerified, result.Verdict)
	assert.True(t, result.Verified())
	assert.Equal(t, hash, result.MetadataHash)
	assert.Equal(t, hash, result.ComputedHash)
	assert.Equal(t, testOwner, result.Owner)
	assert.Equal(t, testManufacturer, result.Manufacturer)
	require.NotNil(t, result.Record)
	assert.Equal(t, "Shoe", result.Record.Name)

	assert.Equal(t, domain.ScanOutcomeVerified, scan.Outcome)
	assert.Equal(t, domain.ScanSourceNFC, scan.Source)
	assert.Equal(t, "Berlin", scan.City)
	assert.Equal(t, testManufacturer, scan.Manufacturer)
}

func TestVerify_MismatchAfterFieldChange(t *testing.T) {
	tm := setupTestEngine(t)
	defer tearDownTestEngine(tm)

	// Hash bound at registration, before the color was tampered with
	original := testProductRow()
	hash := digestOf(t, original)

	tampered := testProductRow()
	tampered.Color = "Blue"

	tm.ledger.EXPECT().
		GetProductDetails(gomock.Any(), uint64(1)).
		Return(&domain.LedgerBinding{
			TokenID:      1,
			MetadataHash: hash,
			Manufacturer: testManufacturer,
			Owner:        testOwner,
		}, nil)
	tm.store.EXPECT().
		GetProductByTokenID(gomock.Any(), uint64(1)).
		Return(tampered, nil)
	scan := expectScan(tm)

	result, err := tm.engine.Verify(context.Background(), verifier.VerifyInput{
		TokenID: "1",
		Source:  domain.ScanSourceManual,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.VerdictMismatch, result.Verdict)
	assert.NotEqual(t, result.MetadataHash, result.ComputedHash)
	assert.Equal(t, domain.ScanOutcomeMismatch, scan.Outcome)
}

func TestVerify_InvalidTokenID(t *testing.T) {
	tm := setupTestEngine(t)
	defer tearDownTestEngine(tm)

	for _, raw := range []string{"", "abc", "-1", "1.5", "0x10"} {
		_, err := tm.engine.Verify(context.Background(), verifier.VerifyInput{
			TokenID: raw,
			Source:  domain.ScanSourceManual,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidTokenID, "token id %q", raw)
	}
}

func TestVerify_InvalidSource(t *testing.T) {
	tm := setupTestEngine(t)
	defer tearDownTestEngine(tm)

	_, err := tm.engine.Verify(context.Background(), verifier.VerifyInput{
		TokenID: "1",
		Source:  domain.ScanSource("fax"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestVerify_NonexistentToken(t *testing.T) {
	tm := setupTestEngine(t)
	defer tearDownTestEngine(tm)

	tm.ledger.EXPECT().
		GetProductDetails(gomock.Any(), uint64(9999)).
		Return(nil, nil)
	tm.store.EXPECT().
		GetProductByTokenID(gomock.Any(), uint64(9999)).
		Return(nil, nil)

	_, err := tm.engine.Verify(context.Background(), verifier.VerifyInput{
		TokenID: "9999",
		Source:  domain.ScanSourceLink,
	})
	assert.ErrorIs(t, err, domain.ErrTokenNotFound)
}

func TestVerify_MetadataMissing(t *testing.T) {
	tm := setupTestEngine(t)
	defer tearDownTestEngine(tm)

	hash := digestOf(t, testProductRow())

	tm.ledger.EXPECT().
		GetProductDetails(gomock.Any(), uint64(1)).
		Return(&domain.LedgerBinding{
			TokenID:      1,
			MetadataHash: hash,
			Manufacturer: testManufacturer,
			Owner:        testOwner,
		}, nil)
	tm.store.EXPECT().
		GetProductByTokenID(gomock.Any(), uint64(1)).
		Return(nil, nil)
	scan := expectScan(tm)

	_, err := tm.engine.Verify(context.Background(), verifier.VerifyInput{
		TokenID: "1",
		Source:  domain.ScanSourceNFC,
	})
	assert.ErrorIs(t, err, domain.ErrMetadataMissing)
	assert.Equal(t, domain.ScanOutcomeError, scan.Outcome)
	assert.Equal(t, testManufacturer, scan.Manufacturer)
}

func TestVerify_LedgerFailureRecordsNoScan(t *testing.T) {
	tm := setupTestEngine(t)
	defer tearDownTestEngine(tm)

	tm.ledger.EXPECT().
		GetProductDetails(gomock.Any(), uint64(1)).
		Return(nil, domain.ErrNetworkFailure)
	tm.store.EXPECT().
		GetProductByTokenID(gomock.Any(), uint64(1)).
		Return(testProductRow(), nil).
		AnyTimes()

	_, err := tm.engine.Verify(context.Background(), verifier.VerifyInput{
		TokenID: "1",
		Source:  domain.ScanSourceManual,
	})
	assert.ErrorIs(t, err, domain.ErrNetworkFailure)
}

func TestVerify_IncompleteRecord(t *testing.T) {
	tm := setupTestEngine(t)
	defer tearDownTestEngine(tm)

	product := testProductRow()
	product.Color = ""

	tm.ledger.EXPECT().
		GetProductDetails(gomock.Any(), uint64(1)).
		Return(&domain.LedgerBinding{
			TokenID:      1,
			MetadataHash: [32]byte{0x01},
			Manufacturer: testManufacturer,
			Owner:        testOwner,
		}, nil)
	tm.store.EXPECT().
		GetProductByTokenID(gomock.Any(), uint64(1)).
		Return(product, nil)
	scan := expectScan(tm)

	_, err := tm.engine.Verify(context.Background(), verifier.VerifyInput{
		TokenID: "1",
		Source:  domain.ScanSourceManual,
	})
	assert.ErrorIs(t, err, domain.ErrIncompleteRecord)
	assert.Equal(t, domain.ScanOutcomeError, scan.Outcome)
}

func TestVerify_StoreReadFailure(t *testing.T) {
	tm := setupTestEngine(t)
	defer tearDownTestEngine(tm)

	hash := digestOf(t, testProductRow())

	tm.ledger.EXPECT().
		GetProductDetails(gomock.Any(), uint64(1)).
		Return(&domain.LedgerBinding{
			TokenID:      1,
			MetadataHash: hash,
			Manufacturer: testManufacturer,
			Owner:        testOwner,
		}, nil)
	tm.store.EXPECT().
		GetProductByTokenID(gomock.Any(), uint64(1)).
		Return(nil, errors.New("connection refused"))

	// A transient store failure is a network error and never reaches a
	// verdict, so nothing lands in the scan log
	_, err := tm.engine.Verify(context.Background(), verifier.VerifyInput{
		TokenID: "1",
		Source:  domain.ScanSourceLink,
	})
	assert.ErrorIs(t, err, domain.ErrNetworkFailure)
	assert.NotErrorIs(t, err, domain.ErrMetadataMissing)
}
