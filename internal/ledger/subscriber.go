package ledger

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"

	"github.com/tagin-labs/tagin-verifier/internal/logger"
	"github.com/tagin-labs/tagin-verifier/internal/messaging"
)

type registrySubscriber struct {
	client Client
}

// Event signatures
var (
	// ProductMinted(uint256 tokenId, address manufacturer)
	productMintedEventSignature = crypto.Keccak256Hash([]byte("ProductMinted(uint256,address)"))

	// ERC721 Transfer(address indexed from, address indexed to, uint256 indexed tokenId)
	transferEventSignature = crypto.Keccak256Hash([]byte("Transfer(address,address,uint256)"))

	// WhitelistUpdated(address indexed user, bool isWhitelisted)
	whitelistUpdatedEventSignature = crypto.Keccak256Hash([]byte("WhitelistUpdated(address,bool)"))
)

// NewSubscriber creates a new registry event subscriber over a ledger
// client
func NewSubscriber(client Client) messaging.Subscriber {
	return &registrySubscriber{client: client}
}

// SubscribeEvents subscribes to mint, transfer and whitelist events of
// the registry contract
func (s *registrySubscriber) SubscribeEvents(ctx context.Context, fromBlock uint64, handler messaging.EventHandler) error {
	query := ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(fromBlock),
		Addresses: []common.Address{s.client.ContractAddress()},
		Topics: [][]common.Hash{
			{
				productMintedEventSignature,
				transferEventSignature,
				whitelistUpdatedEventSignature,
			},
		},
	}

	logs := make(chan types.Log)
	sub, err := s.client.SubscribeFilterLogs(ctx, query, logs)
	if err != nil {
		return fmt.Errorf("failed to subscribe to filter logs: %w", err)
	}
	defer func() {
		logger.InfoCtx(ctx, "Unsubscribing from registry event logs")
		sub.Unsubscribe()
		logger.InfoCtx(ctx, "Unsubscribed from registry event logs")
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-sub.Err():
			return fmt.Errorf("subscription error: %w", err)
		case vLog := <-logs:
			event, err := s.client.ParseRegistryLog(ctx, vLog)
			if err != nil && !errors.Is(err, context.Canceled) {
				logger.ErrorCtx(ctx, err, zap.String("message", "Error parsing log"))
				continue
			}

			if event == nil {
				continue
			}

			if err := handler(event); err != nil {
				logger.ErrorCtx(ctx, err, zap.String("message", "Error handling event"))
			}
		}
	}
}

// GetLatestBlock returns the latest block number
func (s *registrySubscriber) GetLatestBlock(ctx context.Context) (uint64, error) {
	header, err := s.client.HeaderByNumber(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to get latest block: %w", err)
	}
	return header.Number.Uint64(), nil
}

// Close closes the connection
func (s *registrySubscriber) Close() {
	if s.client == nil {
		return
	}

	s.client.Close()
	logger.Info("Registry WebSocket connection closed")
}
