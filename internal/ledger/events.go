package ledger

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/tagin-labs/tagin-verifier/internal/domain"
)

// ParseRegistryLog maps a raw contract log onto a normalized registry
// event. Logs from other contracts or with unknown signatures return an
// error; callers filter before parsing.
func (c *client) ParseRegistryLog(ctx context.Context, vLog types.Log) (*domain.RegistryEvent, error) {
	if len(vLog.Topics) == 0 {
		return nil, fmt.Errorf("log %s has no topics", vLog.TxHash.Hex())
	}

	timestamp, err := c.blockTime(ctx, vLog.BlockNumber)
	if err != nil {
		return nil, err
	}

	event := &domain.RegistryEvent{
		TxHash:      vLog.TxHash.Hex(),
		BlockNumber: vLog.BlockNumber,
		Timestamp:   timestamp,
	}

	switch vLog.Topics[0] {
	case c.abi.Events["ProductMinted"].ID:
		var minted struct {
			TokenId      *big.Int
			Manufacturer common.Address
		}
		if err := c.abi.UnpackIntoInterface(&minted, "ProductMinted", vLog.Data); err != nil {
			return nil, fmt.Errorf("failed to unpack ProductMinted: %w", err)
		}
		event.EventType = domain.RegistryEventMint
		event.TokenID = minted.TokenId.Uint64()
		event.Manufacturer = minted.Manufacturer.Hex()
		event.ToAddress = minted.Manufacturer.Hex()

	case c.abi.Events["Transfer"].ID:
		if len(vLog.Topics) < 4 {
			return nil, fmt.Errorf("transfer log %s has %d topics", vLog.TxHash.Hex(), len(vLog.Topics))
		}
		event.EventType = domain.RegistryEventTransfer
		event.FromAddress = common.BytesToAddress(vLog.Topics[1].Bytes()).Hex()
		event.ToAddress = common.BytesToAddress(vLog.Topics[2].Bytes()).Hex()
		event.TokenID = new(big.Int).SetBytes(vLog.Topics[3].Bytes()).Uint64()

	case c.abi.Events["WhitelistUpdated"].ID:
		if len(vLog.Topics) < 2 {
			return nil, fmt.Errorf("whitelist log %s has %d topics", vLog.TxHash.Hex(), len(vLog.Topics))
		}
		var updated struct {
			IsWhitelisted bool
		}
		if err := c.abi.UnpackIntoInterface(&updated, "WhitelistUpdated", vLog.Data); err != nil {
			return nil, fmt.Errorf("failed to unpack WhitelistUpdated: %w", err)
		}
		event.EventType = domain.RegistryEventWhitelistUpdate
		event.Account = common.BytesToAddress(vLog.Topics[1].Bytes()).Hex()
		event.Whitelisted = updated.IsWhitelisted

	default:
		return nil, fmt.Errorf("unknown registry log signature %s", vLog.Topics[0].Hex())
	}

	return event, nil
}

// blockTime resolves the timestamp of a block
func (c *client) blockTime(ctx context.Context, blockNumber uint64) (time.Time, error) {
	header, err := c.eth.HeaderByNumber(ctx, new(big.Int).SetUint64(blockNumber))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: failed to get header for block %d: %v",
			domain.ErrNetworkFailure, blockNumber, err)
	}
	return time.Unix(int64(header.Time), 0).UTC(), nil
}
