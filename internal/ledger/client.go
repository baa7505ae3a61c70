package ledger

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/tagin-labs/tagin-verifier/internal/adapter"
	"github.com/tagin-labs/tagin-verifier/internal/domain"
	"github.com/tagin-labs/tagin-verifier/internal/logger"
)

// registryABI is the product registry contract surface: an ERC-721 with
// a per-token metadata digest, the registering manufacturer, and a
// transfer whitelist.
const registryABI = `[
	{"inputs":[{"name":"metadataHash","type":"bytes32"}],"name":"mintProduct","outputs":[{"name":"","type":"uint256"}],"stateMutability":"nonpayable","type":"function"},
	{"inputs":[{"name":"tokenId","type":"uint256"}],"name":"getProductDetails","outputs":[{"name":"metadataHash","type":"bytes32"},{"name":"manufacturer","type":"address"},{"name":"owner","type":"address"}],"stateMutability":"view","type":"function"},
	{"inputs":[{"name":"tokenId","type":"uint256"}],"name":"ownerOf","outputs":[{"name":"","type":"address"}],"stateMutability":"view","type":"function"},
	{"inputs":[{"name":"owner","type":"address"}],"name":"balanceOf","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"inputs":[{"name":"account","type":"address"}],"name":"whitelist","outputs":[{"name":"","type":"bool"}],"stateMutability":"view","type":"function"},
	{"inputs":[{"name":"account","type":"address"}],"name":"addToWhitelist","outputs":[],"stateMutability":"nonpayable","type":"function"},
	{"inputs":[{"name":"account","type":"address"}],"name":"removeFromWhitelist","outputs":[],"stateMutability":"nonpayable","type":"function"},
	{"inputs":[{"name":"to","type":"address"},{"name":"tokenId","type":"uint256"}],"name":"approve","outputs":[],"stateMutability":"nonpayable","type":"function"},
	{"inputs":[{"name":"tokenId","type":"uint256"}],"name":"getApproved","outputs":[{"name":"","type":"address"}],"stateMutability":"view","type":"function"},
	{"inputs":[{"name":"from","type":"address"},{"name":"to","type":"address"},{"name":"tokenId","type":"uint256"}],"name":"transferFrom","outputs":[],"stateMutability":"nonpayable","type":"function"},
	{"inputs":[{"name":"from","type":"address"},{"name":"to","type":"address"},{"name":"tokenId","type":"uint256"}],"name":"safeTransferFrom","outputs":[],"stateMutability":"nonpayable","type":"function"},
	{"anonymous":false,"inputs":[{"indexed":false,"name":"tokenId","type":"uint256"},{"indexed":false,"name":"manufacturer","type":"address"}],"name":"ProductMinted","type":"event"},
	{"anonymous":false,"inputs":[{"indexed":true,"name":"from","type":"address"},{"indexed":true,"name":"to","type":"address"},{"indexed":true,"name":"tokenId","type":"uint256"}],"name":"Transfer","type":"event"},
	{"anonymous":false,"inputs":[{"indexed":true,"name":"user","type":"address"},{"indexed":false,"name":"isWhitelisted","type":"bool"}],"name":"WhitelistUpdated","type":"event"},
	{"inputs":[{"name":"tokenId","type":"uint256"}],"name":"ERC721NonexistentToken","type":"error"},
	{"inputs":[{"name":"sender","type":"address"},{"name":"tokenId","type":"uint256"},{"name":"owner","type":"address"}],"name":"ERC721IncorrectOwner","type":"error"},
	{"inputs":[{"name":"operator","type":"address"},{"name":"tokenId","type":"uint256"}],"name":"ERC721InsufficientApproval","type":"error"},
	{"inputs":[{"name":"approver","type":"address"}],"name":"ERC721InvalidApprover","type":"error"},
	{"inputs":[{"name":"operator","type":"address"}],"name":"ERC721InvalidOperator","type":"error"},
	{"inputs":[{"name":"owner","type":"address"}],"name":"ERC721InvalidOwner","type":"error"},
	{"inputs":[{"name":"receiver","type":"address"}],"name":"ERC721InvalidReceiver","type":"error"},
	{"inputs":[{"name":"sender","type":"address"}],"name":"ERC721InvalidSender","type":"error"},
	{"inputs":[{"name":"owner","type":"address"}],"name":"OwnableInvalidOwner","type":"error"},
	{"inputs":[{"name":"account","type":"address"}],"name":"OwnableUnauthorizedAccount","type":"error"}
]`

// Client is the statically typed registry-contract surface. Every
// method's argument and return types are fixed at compile time; the raw
// ABI above is build-time configuration, not a runtime-interpreted
// value.
//
//go:generate mockgen -source=client.go -destination=../mocks/ledger_client.go -package=mocks -mock_names=Client=MockLedgerClient
type Client interface {
	// MintProduct creates a new binding for a metadata digest and
	// returns the minted token id
	MintProduct(ctx context.Context, metadataHash [32]byte) (uint64, error)

	// GetProductDetails reads the binding for a token. Returns nil
	// when the registry has no minted token for the id (zero
	// manufacturer address).
	GetProductDetails(ctx context.Context, tokenID uint64) (*domain.LedgerBinding, error)

	// OwnerOf returns the current owner of a token
	OwnerOf(ctx context.Context, tokenID uint64) (string, error)

	// BalanceOf returns the number of tokens held by an address
	BalanceOf(ctx context.Context, owner string) (uint64, error)

	// IsWhitelisted reports whitelist membership for an address
	IsWhitelisted(ctx context.Context, account string) (bool, error)

	// AddToWhitelist submits a whitelist-add transaction
	AddToWhitelist(ctx context.Context, account string) error

	// RemoveFromWhitelist submits a whitelist-remove transaction
	RemoveFromWhitelist(ctx context.Context, account string) error

	// Approve grants transfer approval for one token
	Approve(ctx context.Context, to string, tokenID uint64) error

	// TransferFrom submits an ownership transfer
	TransferFrom(ctx context.Context, from, to string, tokenID uint64) error

	// SafeTransferFrom submits an ownership transfer with receiver check
	SafeTransferFrom(ctx context.Context, from, to string, tokenID uint64) error

	// ParseRegistryLog parses a contract log into a normalized registry event
	ParseRegistryLog(ctx context.Context, vLog types.Log) (*domain.RegistryEvent, error)

	// SubscribeFilterLogs subscribes to filter logs
	SubscribeFilterLogs(ctx context.Context, query ethereum.FilterQuery, ch chan<- types.Log) (ethereum.Subscription, error)

	// HeaderByNumber returns a header by number
	HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error)

	// ContractAddress returns the registry contract address
	ContractAddress() common.Address

	// Close closes the connection
	Close()
}

// Config holds the ledger client configuration
type Config struct {
	ContractAddress string
	// ReadRetryMax bounds retries for transient read failures
	ReadRetryMax uint64
	// ReceiptPollInterval is the delay between receipt polls for a
	// submitted transaction
	ReceiptPollInterval time.Duration
	// ReceiptTimeout bounds how long a submitted transaction is
	// waited on before surfacing a network failure
	ReceiptTimeout time.Duration
}

type client struct {
	cfg      Config
	contract common.Address
	abi      abi.ABI
	eth      adapter.EthClient
	signer   TxSigner
	clock    adapter.Clock
	chainID  *big.Int
}

// NewClient creates a new registry client. The signer may be nil for
// read-only deployments (verification, event emission); write methods
// then fail.
func NewClient(ctx context.Context, cfg Config, eth adapter.EthClient, signer TxSigner, clock adapter.Clock) (Client, error) {
	if !common.IsHexAddress(cfg.ContractAddress) {
		return nil, fmt.Errorf("invalid contract address: %s", cfg.ContractAddress)
	}

	parsed, err := abi.JSON(strings.NewReader(registryABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse registry ABI: %w", err)
	}

	chainID, err := eth.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get chain id: %w", err)
	}

	if cfg.ReadRetryMax == 0 {
		cfg.ReadRetryMax = 3
	}
	if cfg.ReceiptPollInterval == 0 {
		cfg.ReceiptPollInterval = 2 * time.Second
	}
	if cfg.ReceiptTimeout == 0 {
		cfg.ReceiptTimeout = 2 * time.Minute
	}

	return &client{
		cfg:      cfg,
		contract: common.HexToAddress(cfg.ContractAddress),
		abi:      parsed,
		eth:      eth,
		signer:   signer,
		clock:    clock,
		chainID:  chainID,
	}, nil
}

// call packs a read-only contract call, retries transient failures with
// bounded exponential backoff, and returns the raw result bytes
func (c *client) call(ctx context.Context, method string, args ...interface{}) ([]byte, error) {
	data, err := c.abi.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to pack %s: %w", method, err)
	}

	var result []byte
	operation := func() error {
		res, err := c.eth.CallContract(ctx, ethereum.CallMsg{
			To:   &c.contract,
			Data: data,
		}, nil)
		if err != nil {
			if mapped := c.mapRevert(err); mapped != nil {
				return backoff.Permanent(mapped)
			}
			return err
		}
		result = res
		return nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), c.cfg.ReadRetryMax), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		var permanent *backoff.PermanentError
		if errors.As(err, &permanent) {
			err = permanent.Unwrap()
		}
		if !domain.Retryable(err) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrNetworkFailure, method, err)
	}

	return result, nil
}

// GetProductDetails reads the binding for a token
func (c *client) GetProductDetails(ctx context.Context, tokenID uint64) (*domain.LedgerBinding, error) {
	result, err := c.call(ctx, "getProductDetails", new(big.Int).SetUint64(tokenID))
	if err != nil {
		if errors.Is(err, domain.ErrTokenNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var details struct {
		MetadataHash [32]byte
		Manufacturer common.Address
		Owner        common.Address
	}
	if err := c.abi.UnpackIntoInterface(&details, "getProductDetails", result); err != nil {
		return nil, fmt.Errorf("failed to unpack getProductDetails: %w", err)
	}

	// An unminted id unpacks as all zero values
	if details.Manufacturer == (common.Address{}) {
		return nil, nil
	}

	return &domain.LedgerBinding{
		TokenID:      tokenID,
		MetadataHash: details.MetadataHash,
		Manufacturer: details.Manufacturer.Hex(),
		Owner:        details.Owner.Hex(),
	}, nil
}

// OwnerOf returns the current owner of a token
func (c *client) OwnerOf(ctx context.Context, tokenID uint64) (string, error) {
	result, err := c.call(ctx, "ownerOf", new(big.Int).SetUint64(tokenID))
	if err != nil {
		return "", err
	}

	var owner common.Address
	if err := c.abi.UnpackIntoInterface(&owner, "ownerOf", result); err != nil {
		return "", fmt.Errorf("failed to unpack ownerOf: %w", err)
	}

	return owner.Hex(), nil
}

// BalanceOf returns the number of tokens held by an address
func (c *client) BalanceOf(ctx context.Context, owner string) (uint64, error) {
	if !common.IsHexAddress(owner) {
		return 0, fmt.Errorf("invalid address: %s", owner)
	}

	result, err := c.call(ctx, "balanceOf", common.HexToAddress(owner))
	if err != nil {
		return 0, err
	}

	var balance *big.Int
	if err := c.abi.UnpackIntoInterface(&balance, "balanceOf", result); err != nil {
		return 0, fmt.Errorf("failed to unpack balanceOf: %w", err)
	}

	return balance.Uint64(), nil
}

// IsWhitelisted reports whitelist membership for an address
func (c *client) IsWhitelisted(ctx context.Context, account string) (bool, error) {
	if !common.IsHexAddress(account) {
		return false, fmt.Errorf("invalid address: %s", account)
	}

	result, err := c.call(ctx, "whitelist", common.HexToAddress(account))
	if err != nil {
		return false, err
	}

	var whitelisted bool
	if err := c.abi.UnpackIntoInterface(&whitelisted, "whitelist", result); err != nil {
		return false, fmt.Errorf("failed to unpack whitelist: %w", err)
	}

	return whitelisted, nil
}

// MintProduct creates a new binding and returns the minted token id,
// read back from the ProductMinted event in the receipt
func (c *client) MintProduct(ctx context.Context, metadataHash [32]byte) (uint64, error) {
	receipt, err := c.transact(ctx, "mintProduct", metadataHash)
	if err != nil {
		return 0, err
	}

	for _, vLog := range receipt.Logs {
		if vLog.Address != c.contract || len(vLog.Topics) == 0 {
			continue
		}
		if vLog.Topics[0] != c.abi.Events["ProductMinted"].ID {
			continue
		}

		var minted struct {
			TokenId      *big.Int
			Manufacturer common.Address
		}
		if err := c.abi.UnpackIntoInterface(&minted, "ProductMinted", vLog.Data); err != nil {
			return 0, fmt.Errorf("failed to unpack ProductMinted: %w", err)
		}
		return minted.TokenId.Uint64(), nil
	}

	return 0, fmt.Errorf("mint transaction %s carried no ProductMinted event", receipt.TxHash.Hex())
}

// AddToWhitelist submits a whitelist-add transaction
func (c *client) AddToWhitelist(ctx context.Context, account string) error {
	if !common.IsHexAddress(account) {
		return fmt.Errorf("invalid address: %s", account)
	}
	_, err := c.transact(ctx, "addToWhitelist", common.HexToAddress(account))
	return err
}

// RemoveFromWhitelist submits a whitelist-remove transaction
func (c *client) RemoveFromWhitelist(ctx context.Context, account string) error {
	if !common.IsHexAddress(account) {
		return fmt.Errorf("invalid address: %s", account)
	}
	_, err := c.transact(ctx, "removeFromWhitelist", common.HexToAddress(account))
	return err
}

// Approve grants transfer approval for one token
func (c *client) Approve(ctx context.Context, to string, tokenID uint64) error {
	if !common.IsHexAddress(to) {
		return fmt.Errorf("invalid address: %s", to)
	}
	_, err := c.transact(ctx, "approve", common.HexToAddress(to), new(big.Int).SetUint64(tokenID))
	return err
}

// TransferFrom submits an ownership transfer
func (c *client) TransferFrom(ctx context.Context, from, to string, tokenID uint64) error {
	if !common.IsHexAddress(from) || !common.IsHexAddress(to) {
		return fmt.Errorf("invalid transfer addresses: %s -> %s", from, to)
	}
	_, err := c.transact(ctx, "transferFrom",
		common.HexToAddress(from), common.HexToAddress(to), new(big.Int).SetUint64(tokenID))
	return err
}

// SafeTransferFrom submits an ownership transfer with receiver check
func (c *client) SafeTransferFrom(ctx context.Context, from, to string, tokenID uint64) error {
	if !common.IsHexAddress(from) || !common.IsHexAddress(to) {
		return fmt.Errorf("invalid transfer addresses: %s -> %s", from, to)
	}
	_, err := c.transact(ctx, "safeTransferFrom",
		common.HexToAddress(from), common.HexToAddress(to), new(big.Int).SetUint64(tokenID))
	return err
}

// transact packs, signs, submits a state-changing call and waits for
// its receipt
func (c *client) transact(ctx context.Context, method string, args ...interface{}) (*types.Receipt, error) {
	if c.signer == nil {
		return nil, fmt.Errorf("no transaction signer configured for %s", method)
	}

	data, err := c.abi.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to pack %s: %w", method, err)
	}

	from := c.signer.Address()

	nonce, err := c.eth.PendingNonceAt(ctx, from)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get nonce: %v", domain.ErrNetworkFailure, err)
	}

	gasPrice, err := c.eth.SuggestGasPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get gas price: %v", domain.ErrNetworkFailure, err)
	}

	// Estimation executes the call; reverts surface here with typed
	// error data before anything is submitted
	gasLimit, err := c.eth.EstimateGas(ctx, ethereum.CallMsg{
		From: from,
		To:   &c.contract,
		Data: data,
	})
	if err != nil {
		if mapped := c.mapRevert(err); mapped != nil {
			return nil, mapped
		}
		return nil, fmt.Errorf("%w: failed to estimate gas for %s: %v", domain.ErrNetworkFailure, method, err)
	}

	tx := types.NewTransaction(nonce, c.contract, big.NewInt(0), gasLimit, gasPrice, data)
	signedTx, err := c.signer.SignTx(tx, c.chainID)
	if err != nil {
		return nil, fmt.Errorf("failed to sign %s: %w", method, err)
	}

	if err := c.eth.SendTransaction(ctx, signedTx); err != nil {
		if mapped := c.mapRevert(err); mapped != nil {
			return nil, mapped
		}
		return nil, fmt.Errorf("%w: failed to send %s: %v", domain.ErrNetworkFailure, method, err)
	}

	logger.InfoCtx(ctx, "Submitted registry transaction",
		zap.String("method", method),
		zap.String("tx_hash", signedTx.Hash().Hex()))

	return c.waitMined(ctx, signedTx.Hash(), method)
}

// waitMined polls for the transaction receipt until mined or timed out
func (c *client) waitMined(ctx context.Context, txHash common.Hash, method string) (*types.Receipt, error) {
	deadline := c.clock.Now().Add(c.cfg.ReceiptTimeout)

	for {
		receipt, err := c.eth.TransactionReceipt(ctx, txHash)
		if err == nil && receipt != nil {
			if receipt.Status == types.ReceiptStatusFailed {
				return nil, fmt.Errorf("transaction %s (%s) reverted on chain", txHash.Hex(), method)
			}
			return receipt, nil
		}
		if err != nil && !errors.Is(err, ethereum.NotFound) {
			logger.WarnCtx(ctx, "Receipt poll failed",
				zap.String("tx_hash", txHash.Hex()), zap.Error(err))
		}

		if c.clock.Now().After(deadline) {
			return nil, fmt.Errorf("%w: timed out waiting for receipt of %s", domain.ErrNetworkFailure, txHash.Hex())
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-c.clock.After(c.cfg.ReceiptPollInterval):
		}
	}
}

// mapRevert decodes typed revert data from a call error and maps the
// contract's failure conditions onto the domain taxonomy. Returns nil
// when the error carries no recognizable revert.
func (c *client) mapRevert(err error) error {
	if err == nil {
		return nil
	}

	data, ok := revertData(err)
	if !ok || len(data) < 4 {
		return nil
	}

	for name, abiErr := range c.abi.Errors {
		if [4]byte(data[:4]) != [4]byte(abiErr.ID[:4]) {
			continue
		}

		switch name {
		case "ERC721NonexistentToken":
			return fmt.Errorf("%w: %s", domain.ErrTokenNotFound, name)
		case "ERC721IncorrectOwner", "ERC721InsufficientApproval",
			"ERC721InvalidOperator", "ERC721InvalidSender":
			return fmt.Errorf("%w: %s", domain.ErrUnauthorizedTransfer, name)
		case "ERC721InvalidReceiver":
			return fmt.Errorf("%w: %s", domain.ErrWhitelistViolation, name)
		case "OwnableUnauthorizedAccount", "OwnableInvalidOwner":
			return fmt.Errorf("%w: %s", domain.ErrWhitelistViolation, name)
		case "ERC721InvalidApprover", "ERC721InvalidOwner":
			return fmt.Errorf("%w: %s", domain.ErrUnauthorizedTransfer, name)
		default:
			return fmt.Errorf("registry reverted with %s", name)
		}
	}

	// Revert without recognizable selector. The registry gates
	// transfers on whitelist membership with a require(), which
	// surfaces as a plain revert string.
	reason := strings.ToLower(err.Error())
	if strings.Contains(reason, "whitelist") {
		return fmt.Errorf("%w: %s", domain.ErrWhitelistViolation, err.Error())
	}
	return nil
}

// revertData extracts hex revert payloads from RPC errors carrying
// typed error data
func revertData(err error) ([]byte, bool) {
	type dataError interface {
		ErrorData() interface{}
	}

	var de dataError
	if !errors.As(err, &de) {
		return nil, false
	}

	hexData, ok := de.ErrorData().(string)
	if !ok {
		return nil, false
	}
	hexData = strings.TrimPrefix(hexData, "0x")

	data, decodeErr := hex.DecodeString(hexData)
	if decodeErr != nil {
		return nil, false
	}
	return data, true
}

// SubscribeFilterLogs subscribes to filter logs
func (c *client) SubscribeFilterLogs(ctx context.Context, query ethereum.FilterQuery, ch chan<- types.Log) (ethereum.Subscription, error) {
	return c.eth.SubscribeFilterLogs(ctx, query, ch)
}

// HeaderByNumber returns a header by number
func (c *client) HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error) {
	return c.eth.HeaderByNumber(ctx, number)
}

// ContractAddress returns the registry contract address
func (c *client) ContractAddress() common.Address {
	return c.contract
}

// Close closes the connection
func (c *client) Close() {
	if c.eth == nil {
		return
	}
	c.eth.Close()
}
