package ledger

import (
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

// TxSigner signs registry transactions. Keeping it behind an interface
// lets deployments swap the local key for a remote signing service
// without touching the client.
//
//go:generate mockgen -source=signer.go -destination=../mocks/ledger_signer.go -package=mocks -mock_names=TxSigner=MockTxSigner
type TxSigner interface {
	// Address returns the signing account address
	Address() common.Address

	// SignTx signs a transaction for the given chain
	SignTx(tx *types.Transaction, chainID *big.Int) (*types.Transaction, error)
}

// NewKeySigner creates a signer from a hex-encoded private key
func NewKeySigner(privateKeyHex string) (TxSigner, error) {
	privateKeyHex = strings.TrimPrefix(privateKeyHex, "0x")

	key, err := crypto.HexToECDSA(privateKeyHex)
	if err != nil {
		return nil, fmt.Errorf("failed to parse signing key: %w", err)
	}

	return &privateKeySigner{
		key:     key,
		address: crypto.PubkeyToAddress(key.PublicKey),
	}, nil
}

type privateKeySigner struct {
	key     *ecdsa.PrivateKey
	address common.Address
}

// Address returns the signing account address
func (s *privateKeySigner) Address() common.Address {
	return s.address
}

// SignTx signs a transaction for the given chain
func (s *privateKeySigner) SignTx(tx *types.Transaction, chainID *big.Int) (*types.Transaction, error) {
	signed, err := types.SignTx(tx, types.LatestSignerForChainID(chainID), s.key)
	if err != nil {
		return nil, fmt.Errorf("failed to sign transaction: %w", err)
	}
	return signed, nil
}
