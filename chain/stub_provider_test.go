package chain

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// stubProvider answers registry and ERC20 calls from in-memory state,
// packing real ABI return data.
type stubProvider struct {
	abi abi.ABI

	mu        sync.Mutex
	urls      map[common.Address]string
	tokens    map[common.Address][]common.Address
	failFor   map[common.Address]error
	logs      []types.Log
	logsErr   error
	rawResult []byte
	calls     int
	queries   []ethereum.FilterQuery
}

func newStubProvider(a abi.ABI) *stubProvider {
	return &stubProvider{
		abi:     a,
		urls:    make(map[common.Address]string),
		tokens:  make(map[common.Address][]common.Address),
		failFor: make(map[common.Address]error),
	}
}

func (p *stubProvider) CallContract(_ context.Context, msg ethereum.CallMsg, _ *big.Int) ([]byte, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++

	if p.rawResult != nil {
		return p.rawResult, nil
	}
	if len(msg.Data) < 4 {
		return nil, errors.New("short calldata")
	}
	method, err := p.abi.MethodById(msg.Data[:4])
	if err != nil {
		return nil, err
	}
	args, err := method.Inputs.Unpack(msg.Data[4:])
	if err != nil {
		return nil, err
	}

	switch method.Name {
	case "stakerURLs", "stakerServerURLs":
		return method.Outputs.Pack(p.urls[args[0].(common.Address)])
	case "getSupportedTokens", "getTokensForStaker":
		addr := args[0].(common.Address)
		if err := p.failFor[addr]; err != nil {
			return nil, err
		}
		return method.Outputs.Pack(p.tokens[addr])
	case "decimals":
		return method.Outputs.Pack(uint8(9))
	case "symbol":
		return method.Outputs.Pack("STUB")
	}
	return nil, fmt.Errorf("unexpected method %s", method.Name)
}

func (p *stubProvider) FilterLogs(_ context.Context, q ethereum.FilterQuery) ([]types.Log, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.queries = append(p.queries, q)
	if p.logsErr != nil {
		return nil, p.logsErr
	}
	return p.logs, nil
}

func topicFromAddress(addr common.Address) common.Hash {
	return common.BytesToHash(addr.Bytes())
}
