package ledger_test

import (
	"context"
	"encoding/hex"
	"errors"
	"math/big"
	"os"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tagin-labs/tagin-verifier/internal/domain"
	"github.com/tagin-labs/tagin-verifier/internal/ledger"
	"github.com/tagin-labs/tagin-verifier/internal/logger"
	"github.com/tagin-labs/tagin-verifier/internal/mocks"
)

// Anvil's first development account key
const testSignerKey = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

const (
	testContract     = "0x396343362be2A4dA1cE0C1C210945346fb82Aa49"
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

// testClientMocks contains all the mocks needed for testing the client
type testClientMocks struct {
	ctrl   *gomock.Controller
	eth    *mocks.MockEthClient
	clock  *mocks.MockClock
	client ledger.Client
}

// setupTestClient creates the mocks and a client with a real key signer
func setupTestClient(t *testing.T, cfg ledger.Config) *testClientMocks {
	ctrl := gomock.NewController(t)

	tm := &testClientMocks{
		ctrl:  ctrl,
		eth:   mocks.NewMockEthClient(ctrl),
		clock: mocks.NewMockClock(ctrl),
	}

	tm.eth.EXPECT().ChainID(gomock.Any()).Return(big.NewInt(31337), nil)

	signer, err := ledger.NewKeySigner(testSignerKey)
	require.NoError(t, err)

	if cfg.ContractAddress == "" {
		cfg.ContractAddress = testContract
	}

	client, err := ledger.NewClient(context.Background(), cfg, tm.eth, signer, tm.clock)
	require.NoError(t, err)
	tm.client = client

	return tm
}

func tearDownTestClient(tm *testClientMocks) {
	tm.ctrl.Finish()
}

// abiType is a test helper for building packed call results
func abiType(t *testing.T, name string) abi.Type {
	typ, err := abi.NewType(name, "", nil)
	require.NoError(t, err)
	return typ
}

// rpcDataError mimics an RPC error carrying typed revert data
type rpcDataError struct {
	msg  string
	data interface{}
}

func (e *rpcDataError) Error() string          { return e.msg }
func (e *rpcDataError) ErrorData() interface{} { return e.data }

// revertWith builds an RPC error whose data is the selector of the
// given solidity error signature
func revertWith(signature string) error {
	selector := crypto.Keccak256([]byte(signature))[:4]
	return &rpcDataError{
		msg:  "execution reverted",
		data: "0x" + hex.EncodeToString(selector),
	}
}

func TestGetProductDetails_Bound(t *testing.T) {
	tm := setupTestClient(t, ledger.Config{})
	defer tearDownTestClient(tm)

	var hash [32]byte
	copy(hash[:], []byte("canonical-digest-of-the-record!!"))

	outputs := abi.Arguments{
		{Type: abiType(t, "bytes32")},
		{Type: abiType(t, "address")},
		{Type: abiType(t, "address")},
	}
	result, err := outputs.Pack(hash, common.HexToAddress(testManufacturer), common.HexToAddress(testOwner))
	require.NoError(t, err)

	tm.eth.EXPECT().
		CallContract(gomock.Any(), gomock.Any(), nil).
		Return(result, nil)

	binding, err := tm.client.GetProductDetails(context.Background(), 42)
	assert.NoError(t, err)
	require.NotNil(t, binding)
	assert.Equal(t, uint64(42), binding.TokenID)
	assert.Equal(t, hash, binding.MetadataHash)
	assert.Equal(t, testManufacturer, binding.Manufacturer)
	assert.Equal(t, common.HexToAddress(testOwner).Hex(), binding.Owner)
}

func TestGetProductDetails_Unminted(t *testing.T) {
	tm := setupTestClient(t, ledger.Config{})
	defer tearDownTestClient(tm)

	outputs := abi.Arguments{
		{Type: abiType(t, "bytes32")},
		{Type: abiType(t, "address")},
		{Type: abiType(t, "address")},
	}
	result, err := outputs.Pack([32]byte{}, common.Address{}, common.Address{})
	require.NoError(t, err)

	tm.eth.EXPECT().
		CallContract(gomock.Any(), gomock.Any(), nil).
		Return(result, nil)

	binding, err := tm.client.GetProductDetails(context.Background(), 9999)
	assert.NoError(t, err)
	assert.Nil(t, binding)
}

func TestGetProductDetails_NonexistentTokenRevert(t *testing.T) {
	tm := setupTestClient(t, ledger.Config{})
	defer tearDownTestClient(tm)

	tm.eth.EXPECT().
		CallContract(gomock.Any(), gomock.Any(), nil).
		Return(nil, revertWith("ERC721NonexistentToken(uint256)"))

	binding, err := tm.client.GetProductDetails(context.Background(), 7)
	assert.NoError(t, err)
	assert.Nil(t, binding)
}

func TestGetProductDetails_RetriesTransientFailure(t *testing.T) {
	tm := setupTestClient(t, ledger.Config{ReadRetryMax: 2})
	defer tearDownTestClient(tm)

	var hash [32]byte
	hash[0] = 0xab

	outputs := abi.Arguments{
		{Type: abiType(t, "bytes32")},
		{Type: abiType(t, "address")},
		{Type: abiType(t, "address")},
	}
	result, err := outputs.Pack(hash, common.HexToAddress(testManufacturer), common.HexToAddress(testOwner))
	require.NoError(t, err)

	gomock.InOrder(
		tm.eth.EXPECT().
			CallContract(gomock.Any(), gomock.Any(), nil).
			Return(nil, errors.New("connection reset")),
		tm.eth.EXPECT().
			CallContract(gomock.Any(), gomock.Any(), nil).
			Return(result, nil),
	)

	binding, err := tm.client.GetProductDetails(context.Background(), 1)
	assert.NoError(t, err)
	require.NotNil(t, binding)
	assert.Equal(t, hash, binding.MetadataHash)
}

func TestGetProductDetails_ExhaustedRetries(t *testing.T) {
	tm := setupTestClient(t, ledger.Config{ReadRetryMax: 1})
	defer tearDownTestClient(tm)

	tm.eth.EXPECT().
		CallContract(gomock.Any(), gomock.Any(), nil).
		Return(nil, errors.New("connection reset")).
		Times(2)

	binding, err := tm.client.GetProductDetails(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrNetworkFailure)
	assert.Nil(t, binding)
}

func TestIsWhitelisted(t *testing.T) {
	tm := setupTestClient(t, ledger.Config{})
	defer tearDownTestClient(tm)

	outputs := abi.Arguments{{Type: abiType(t, "bool")}}
	result, err := outputs.Pack(true)
	require.NoError(t, err)

	tm.eth.EXPECT().
		CallContract(gomock.Any(), gomock.Any(), nil).
		Return(result, nil)

	whitelisted, err := tm.client.IsWhitelisted(context.Background(), testOwner)
	assert.NoError(t, err)
	assert.True(t, whitelisted)
}

func TestIsWhitelisted_InvalidAddress(t *testing.T) {
	tm := setupTestClient(t, ledger.Config{})
	defer tearDownTestClient(tm)

	_, err := tm.client.IsWhitelisted(context.Background(), "not-an-address")
	assert.Error(t, err)
}

func TestOwnerOf(t *testing.T) {
	tm := setupTestClient(t, ledger.Config{})
	defer tearDownTestClient(tm)

	outputs := abi.Arguments{{Type: abiType(t, "address")}}
	result, err := outputs.Pack(common.HexToAddress(testOwner))
	require.NoError(t, err)

	tm.eth.EXPECT().
		CallContract(gomock.Any(), gomock.Any(), nil).
		Return(result, nil)

	owner, err := tm.client.OwnerOf(context.Background(), 42)
	assert.NoError(t, err)
	assert.Equal(t, common.HexToAddress(testOwner).Hex(), owner)
}

func TestTransferFrom_Success(t *testing.T) {
	tm := setupTestClient(t, ledger.Config{})
	defer tearDownTestClient(tm)

	tm.clock.EXPECT().Now().Return(time.Now()).AnyTimes()

	var sentTx *types.Transaction
	tm.eth.EXPECT().PendingNonceAt(gomock.Any(), gomock.Any()).Return(uint64(7), nil)
	tm.eth.EXPECT().SuggestGasPrice(gomock.Any()).Return(big.NewInt(1_000_000_000), nil)
	tm.eth.EXPECT().EstimateGas(gomock.Any(), gomock.Any()).Return(uint64(90_000), nil)
	tm.eth.EXPECT().
		SendTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *types.Transaction) error {
			sentTx = tx
			return nil
		})
	tm.eth.EXPECT().
		TransactionReceipt(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ common.Hash) (*types.Receipt, error) {
			return &types.Receipt{Status: types.ReceiptStatusSuccessful, TxHash: sentTx.Hash()}, nil
		})

	err := tm.client.TransferFrom(context.Background(), testOwner, testManufacturer, 42)
	assert.NoError(t, err)
	require.NotNil(t, sentTx)
	assert.Equal(t, uint64(7), sentTx.Nonce())
	assert.Equal(t, common.HexToAddress(testContract), *sentTx.To())
}

func TestTransferFrom_WhitelistRevert(t *testing.T) {
	tm := setupTestClient(t, ledger.Config{})
	defer tearDownTestClient(tm)

	tm.eth.EXPECT().PendingNonceAt(gomock.Any(), gomock.Any()).Return(uint64(7), nil)
	tm.eth.EXPECT().SuggestGasPrice(gomock.Any()).Return(big.NewInt(1_000_000_000), nil)
	tm.eth.EXPECT().
		EstimateGas(gomock.Any(), gomock.Any()).
		Return(uint64(0), revertWith("ERC721InvalidReceiver(address)"))

	err := tm.client.TransferFrom(context.Background(), testOwner, testManufacturer, 42)
	assert.ErrorIs(t, err, domain.ErrWhitelistViolation)
}

func TestTransferFrom_IncorrectOwnerRevert(t *testing.T) {
	tm := setupTestClient(t, ledger.Config{})
	defer tearDownTestClient(tm)

	tm.eth.EXPECT().PendingNonceAt(gomock.Any(), gomock.Any()).Return(uint64(7), nil)
	tm.eth.EXPECT().SuggestGasPrice(gomock.Any()).Return(big.NewInt(1_000_000_000), nil)
	tm.eth.EXPECT().
		EstimateGas(gomock.Any(), gomock.Any()).
		Return(uint64(0), revertWith("ERC721IncorrectOwner(address,uint256,address)"))

	err := tm.client.TransferFrom(context.Background(), testOwner, testManufacturer, 42)
	assert.ErrorIs(t, err, domain.ErrUnauthorizedTransfer)
}

func TestMintProduct(t *testing.T) {
	tm := setupTestClient(t, ledger.Config{})
	defer tearDownTestClient(tm)

	tm.clock.EXPECT().Now().Return(time.Now()).AnyTimes()

	var hash [32]byte
	copy(hash[:], []byte("canonical-digest-of-the-record!!"))

	mintedData, err := abi.Arguments{
		{Type: abiType(t, "uint256")},
		{Type: abiType(t, "address")},
	}.Pack(big.NewInt(42), common.HexToAddress(testManufacturer))
	require.NoError(t, err)

	var sentTx *types.Transaction
	tm.eth.EXPECT().PendingNonceAt(gomock.Any(), gomock.Any()).Return(uint64(0), nil)
	tm.eth.EXPECT().SuggestGasPrice(gomock.Any()).Return(big.NewInt(1_000_000_000), nil)
	tm.eth.EXPECT().EstimateGas(gomock.Any(), gomock.Any()).Return(uint64(150_000), nil)
	tm.eth.EXPECT().
		SendTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *types.Transaction) error {
			sentTx = tx
			return nil
		})
	tm.eth.EXPECT().
		TransactionReceipt(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ common.Hash) (*types.Receipt, error) {
			return &types.Receipt{
				Status: types.ReceiptStatusSuccessful,
				TxHash: sentTx.Hash(),
				Logs: []*types.Log{
					{
						Address: common.HexToAddress(testContract),
						Topics: []common.Hash{
							crypto.Keccak256Hash([]byte("ProductMinted(uint256,address)")),
						},
						Data: mintedData,
					},
				},
			}, nil
		})

	tokenID, err := tm.client.MintProduct(context.Background(), hash)
	assert.NoError(t, err)
	assert.Equal(t, uint64(42), tokenID)
}

func TestParseRegistryLog_Mint(t *testing.T) {
	tm := setupTestClient(t, ledger.Config{})
	defer tearDownTestClient(tm)

	mintedData, err := abi.Arguments{
		{Type: abiType(t, "uint256")},
		{Type: abiType(t, "address")},
	}.Pack(big.NewInt(42), common.HexToAddress(testManufacturer))
	require.NoError(t, err)

	blockTime := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	tm.eth.EXPECT().
		HeaderByNumber(gomock.Any(), big.NewInt(1200)).
		Return(&types.Header{Number: big.NewInt(1200), Time: uint64(blockTime.Unix())}, nil)

	event, err := tm.client.ParseRegistryLog(context.Background(), types.Log{
		Address: common.HexToAddress(testContract),
		Topics: []common.Hash{
			crypto.Keccak256Hash([]byte("ProductMinted(uint256,address)")),
		},
		Data:        mintedData,
		BlockNumber: 1200,
		TxHash:      common.HexToHash("0x01"),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RegistryEventMint, event.EventType)
	assert.Equal(t, uint64(42), event.TokenID)
	assert.Equal(t, testManufacturer, event.Manufacturer)
	assert.Equal(t, uint64(1200), event.BlockNumber)
	assert.Equal(t, blockTime, event.Timestamp)
	assert.True(t, event.IsMint())
}

func TestParseRegistryLog_Transfer(t *testing.T) {
	tm := setupTestClient(t, ledger.Config{})
	defer tearDownTestClient(tm)

	tm.eth.EXPECT().
		HeaderByNumber(gomock.Any(), gomock.Any()).
		Return(&types.Header{Number: big.NewInt(1300), Time: 1717243200}, nil)

	event, err := tm.client.ParseRegistryLog(context.Background(), types.Log{
		Address: common.HexToAddress(testContract),
		Topics: []common.Hash{
			crypto.Keccak256Hash([]byte("Transfer(address,address,uint256)")),
			common.BytesToHash(common.HexToAddress(testOwner).Bytes()),
			common.BytesToHash(common.HexToAddress(testManufacturer).Bytes()),
			common.BigToHash(big.NewInt(42)),
		},
		BlockNumber: 1300,
		TxHash:      common.HexToHash("0x02"),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RegistryEventTransfer, event.EventType)
	assert.Equal(t, uint64(42), event.TokenID)
	assert.Equal(t, common.HexToAddress(testOwner).Hex(), event.FromAddress)
	assert.Equal(t, common.HexToAddress(testManufacturer).Hex(), event.ToAddress)
	assert.False(t, event.IsMint())
}

func TestParseRegistryLog_WhitelistUpdate(t *testing.T) {
	tm := setupTestClient(t, ledger.Config{})
	defer tearDownTestClient(tm)

	data, err := abi.Arguments{{Type: abiType(t, "bool")}}.Pack(true)
	require.NoError(t, err)

	tm.eth.EXPECT().
		HeaderByNumber(gomock.Any(), gomock.Any()).
		Return(&types.Header{Number: big.NewInt(1400), Time: 1717243200}, nil)

	event, err := tm.client.ParseRegistryLog(context.Background(), types.Log{
		Address: common.HexToAddress(testContract),
		Topics: []common.Hash{
			crypto.Keccak256Hash([]byte("WhitelistUpdated(address,bool)")),
			common.BytesToHash(common.HexToAddress(testOwner).Bytes()),
		},
		Data:        data,
		BlockNumber: 1400,
		TxHash:      common.HexToHash("0x03"),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RegistryEventWhitelistUpdate, event.EventType)
	assert.Equal(t, common.HexToAddress(testOwner).Hex(), event.Account)
	assert.True(t, event.Whitelisted)
}

func TestParseRegistryLog_UnknownSignature(t *testing.T) {
	tm := setupTestClient(t, ledger.Config{})
	defer tearDownTestClient(tm)

	tm.eth.EXPECT().
		HeaderByNumber(gomock.Any(), gomock.Any()).
		Return(&types.Header{Number: big.NewInt(1500), Time: 1717243200}, nil)

	_, err := tm.client.ParseRegistryLog(context.Background(), types.Log{
		Address: common.HexToAddress(testContract),
		Topics: []common.Hash{
			crypto.Keccak256Hash([]byte("Approval(address,address,uint256)")),
		},
		BlockNumber: 1500,
	})
	assert.Error(t, err)
}
