package adapter

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
)

// EthBackend defines the Ethereum node operations the ledger client needs.
// It is the bind.ContractBackend surface plus the chain-identifier and receipt
// accessors used for domain resolution and write confirmation.
type EthBackend interface {
	bind.ContractBackend

	// ChainID returns the chain id of the connected network
	ChainID(ctx context.Context) (*big.Int, error)

	// TransactionReceipt returns the receipt of a mined transaction
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)

	// Close closes the connection
	Close()
}

// EthBackendDialer defines an interface for dialing Ethereum backends
type EthBackendDialer interface {
	Dial(ctx context.Context, rawurl string) (EthBackend, error)
}

// RealEthBackendDialer implements EthBackendDialer using the standard ethclient package
type RealEthBackendDialer struct{}

// NewEthBackendDialer creates a new real Ethereum backend dialer
func NewEthBackendDialer() EthBackendDialer {
	return &RealEthBackendDialer{}
}

func (a *RealEthBackendDialer) Dial(ctx context.Context, rawurl string) (EthBackend, error) {
	return ethclient.DialContext(ctx, rawurl)
}
