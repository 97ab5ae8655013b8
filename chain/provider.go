package chain

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
)

// ContractCaller executes read-only contract calls.
type ContractCaller interface {
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
}

// Provider is the subset of a chain RPC client the registry needs.
// *ethclient.Client satisfies it.
type Provider interface {
	ContractCaller
	FilterLogs(ctx context.Context, q ethereum.FilterQuery) ([]types.Log, error)
}

var _ Provider = (*ethclient.Client)(nil)

// Dial connects to an RPC endpoint and checks it serves the expected chain.
// Pass a zero expected chain to skip the check.
func Dial(ctx context.Context, rpcURL string, expected ChainID) (*ethclient.Client, error) {
	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, &TransportError{Op: "dial", Err: err}
	}
	if expected == 0 {
		return client, nil
	}

	id, err := client.ChainID(ctx)
	if err != nil {
		client.Close()
		return nil, &TransportError{Op: "eth_chainId", Err: err}
	}
	if !id.IsUint64() || ChainID(id.Uint64()) != expected {
		client.Close()
		return nil, fmt.Errorf("%w: endpoint serves chain %s, expected %d", ErrChainMismatch, id, expected)
	}
	return client, nil
}
