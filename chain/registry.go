package chain

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"

	"github.com/kaifufi/airswap-rfq-sdk-go/log"
)

// Registry reads maker URLs and supported tokens from the on-chain maker
// registry. Implementations differ only in the ABI they speak.
type Registry interface {
	GetMaker(ctx context.Context, maker common.Address) (Maker, error)
	GetMakers(ctx context.Context) ([]Maker, error)
	GetTokens(ctx context.Context, maker common.Address) ([]common.Address, error)
}

// NewRegistry returns the registry implementation for cfg.Version.
func NewRegistry(provider Provider, cfg Config, logger log.Logger) (Registry, error) {
	if provider == nil {
		return nil, errors.New("chain: nil provider")
	}
	base := contractRegistry{
		provider: provider,
		cfg:      cfg,
		logger:   log.OrNop(logger).With("module", "registry", "version", cfg.Version.String()),
	}

	switch cfg.Version {
	case Legacy:
		base.methods = legacyMethods
		return &legacyRegistry{base}, nil
	case V4:
		base.methods = v4Methods
		return &v4Registry{base}, nil
	case V5:
		// V5 swap deployments still register makers in the V4 registry.
		base.methods = v4Methods
		return &v4Registry{base}, nil
	default:
		return nil, &ConfigError{ChainID: cfg.ChainID, Version: cfg.Version}
	}
}

type legacyRegistry struct{ contractRegistry }

type v4Registry struct{ contractRegistry }

type contractRegistry struct {
	provider Provider
	cfg      Config
	methods  registryMethods
	logger   log.Logger
}

// GetMaker returns the server URL registered for maker.
func (r *contractRegistry) GetMaker(ctx context.Context, maker common.Address) (Maker, error) {
	var url string
	if err := r.call(ctx, r.methods.makerURL, &url, maker); err != nil {
		return Maker{}, err
	}
	return Maker{Address: maker, URL: normalizeURL(url)}, nil
}

// GetTokens returns the tokens maker is staked for.
func (r *contractRegistry) GetTokens(ctx context.Context, maker common.Address) ([]common.Address, error) {
	var tokens []common.Address
	if err := r.call(ctx, r.methods.tokens, &tokens, maker); err != nil {
		return nil, err
	}
	return tokens, nil
}

// GetMakers scans URL-set events from the registry's deployment block. An
// account that set its URL more than once keeps its latest URL at the
// position it was first seen.
func (r *contractRegistry) GetMakers(ctx context.Context) ([]Maker, error) {
	event, ok := r.methods.abi.Events[r.methods.setURLEvt]
	if !ok {
		return nil, fmt.Errorf("registry ABI has no %s event", r.methods.setURLEvt)
	}

	query := ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(r.cfg.FromBlock),
		Addresses: []common.Address{r.cfg.RegistryAddress},
		Topics:    [][]common.Hash{{event.ID}},
	}
	logs, err := r.provider.FilterLogs(ctx, query)
	if err != nil {
		return nil, &TransportError{Op: "eth_getLogs", Err: err}
	}

	var (
		makers []Maker
		seen   = make(map[common.Address]int)
	)
	for _, lg := range logs {
		if lg.Removed {
			continue
		}
		if len(lg.Topics) < 2 {
			return nil, &DecodeError{Op: event.Name, Err: fmt.Errorf("log %s:%d has no account topic", lg.TxHash.Hex(), lg.Index)}
		}
		values, err := event.Inputs.NonIndexed().Unpack(lg.Data)
		if err != nil {
			return nil, &DecodeError{Op: event.Name, Err: err}
		}
		url, ok := values[0].(string)
		if !ok {
			return nil, &DecodeError{Op: event.Name, Err: fmt.Errorf("unexpected url type %T", values[0])}
		}

		m := Maker{
			Address: common.BytesToAddress(lg.Topics[1].Bytes()),
			URL:     normalizeURL(url),
		}
		if i, dup := seen[m.Address]; dup {
			makers[i] = m
			continue
		}
		seen[m.Address] = len(makers)
		makers = append(makers, m)
	}

	r.logger.Debug("scanned registry", "logs", len(logs), "makers", len(makers), "fromBlock", r.cfg.FromBlock)
	return makers, nil
}

func (r *contractRegistry) call(ctx context.Context, method string, out interface{}, args ...interface{}) error {
	data, err := r.methods.abi.Pack(method, args...)
	if err != nil {
		return fmt.Errorf("failed to pack %s: %w", method, err)
	}

	to := r.cfg.RegistryAddress
	result, err := r.provider.CallContract(ctx, ethereum.CallMsg{
		To:   &to,
		Data: data,
	}, nil)
	if err != nil {
		return &TransportError{Op: method, Err: err}
	}

	if err := r.methods.abi.UnpackIntoInterface(out, method, result); err != nil {
		return &DecodeError{Op: method, Err: err}
	}
	return nil
}
