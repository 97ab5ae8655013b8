package airswap

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/kaifufi/airswap-rfq-sdk-go/chain"
	"github.com/kaifufi/airswap-rfq-sdk-go/jsonrpc"
	"github.com/kaifufi/airswap-rfq-sdk-go/log"
	"github.com/kaifufi/airswap-rfq-sdk-go/maker"
)

// Client is the main SDK client
type Client struct {
	chainCfg   chain.Config
	cfg        ClientConfig
	closer     func()
	registry   *chain.RegistryClient
	tokens     *chain.TokenStore
	makerCfg   maker.Config
	aggregator *Aggregator
	logger     log.Logger
}

// NewClient dials cfg.RPCURL, checks it serves cfg.ChainID and wires the
// registry for cfg.ProtocolVersion.
func NewClient(ctx context.Context, cfg ClientConfig) (*Client, error) {
	cfg = cfg.withDefaults()
	if cfg.RPCURL == "" {
		return nil, &InvalidParamError{Message: "rpc url is required"}
	}
	if _, err := chain.LookupConfig(cfg.ChainID, cfg.ProtocolVersion); err != nil {
		return nil, err
	}

	rpc, err := chain.Dial(ctx, cfg.RPCURL, cfg.ChainID)
	if err != nil {
		return nil, err
	}
	c, err := NewClientWithProvider(rpc, cfg)
	if err != nil {
		rpc.Close()
		return nil, err
	}
	c.closer = rpc.Close
	return c, nil
}

// NewClientWithProvider builds a client on an existing chain provider. The
// caller keeps ownership of provider.
func NewClientWithProvider(provider chain.Provider, cfg ClientConfig) (*Client, error) {
	cfg = cfg.withDefaults()

	chainCfg, err := chain.LookupConfig(cfg.ChainID, cfg.ProtocolVersion)
	if err != nil {
		return nil, err
	}
	logger, err := cfg.logger()
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	logger = logger.With("chain", uint64(cfg.ChainID), "version", cfg.ProtocolVersion.String())

	registry, err := chain.NewRegistry(provider, chainCfg, logger)
	if err != nil {
		return nil, err
	}

	registryClient := chain.NewRegistryClient(registry,
		chain.WithLookupLimit(int(cfg.MaxConcurrency)),
		chain.WithLogger(logger),
	)

	makerCfg := maker.ConfigFromChain(chainCfg)
	makerCfg.Timeout = cfg.MakerTimeout
	makerCfg.Logger = logger

	return &Client{
		chainCfg: chainCfg,
		cfg:      cfg,
		registry: registryClient,
		tokens:   chain.NewTokenStore(provider, cfg.ChainID),
		makerCfg: makerCfg,
		aggregator: NewAggregator(registryClient, AggregatorConfig{
			Maker:          makerCfg,
			MaxConcurrency: cfg.MaxConcurrency,
			MinimumAmount:  cfg.MinimumAmount,
			Logger:         logger,
		}),
		logger: logger,
	}, nil
}

// ChainConfig returns the registry and swap deployment in use.
func (c *Client) ChainConfig() chain.Config { return c.chainCfg }

// Registry exposes the registry resolver.
func (c *Client) Registry() *chain.RegistryClient { return c.registry }

func (c *Client) GetMakers(ctx context.Context) ([]chain.Maker, error) {
	return c.registry.GetMakers(ctx)
}

func (c *Client) GetMaker(ctx context.Context, makerAddr common.Address) (chain.Maker, error) {
	return c.registry.GetMaker(ctx, makerAddr)
}

// GetTokens returns metadata for every token makerAddr is registered for.
func (c *Client) GetTokens(ctx context.Context, makerAddr common.Address) ([]chain.Token, error) {
	addrs, err := c.registry.GetTokens(ctx, makerAddr)
	if err != nil {
		return nil, err
	}
	out := make([]chain.Token, 0, len(addrs))
	for _, addr := range addrs {
		t, err := c.tokens.Token(ctx, addr)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

// Token resolves a symbol or hex address to token metadata.
func (c *Client) Token(ctx context.Context, symbolOrAddress string) (chain.Token, error) {
	return c.tokens.Resolve(ctx, symbolOrAddress)
}

func (c *Client) GetProtocols(ctx context.Context, makerAddr common.Address) ([]jsonrpc.Protocol, error) {
	var out []jsonrpc.Protocol
	err := c.withMaker(ctx, makerAddr, func(mc *maker.Client) (err error) {
		out, err = mc.GetProtocols(ctx)
		return err
	})
	return out, err
}

// GetPricing asks makerAddr for the ladders of each base/quote pair.
func (c *Client) GetPricing(ctx context.Context, makerAddr common.Address, pairs ...jsonrpc.Pair) ([]jsonrpc.Pricing, error) {
	if len(pairs) == 0 {
		return nil, &InvalidParamError{Message: "at least one pair is required"}
	}
	var out []jsonrpc.Pricing
	err := c.withMaker(ctx, makerAddr, func(mc *maker.Client) (err error) {
		out, err = mc.GetPricing(ctx, pairs)
		return err
	})
	return out, err
}

func (c *Client) GetAllPricing(ctx context.Context, makerAddr common.Address) ([]jsonrpc.Pricing, error) {
	var out []jsonrpc.Pricing
	err := c.withMaker(ctx, makerAddr, func(mc *maker.Client) (err error) {
		out, err = mc.GetAllPricing(ctx)
		return err
	})
	return out, err
}

func (c *Client) withMaker(ctx context.Context, makerAddr common.Address, fn func(*maker.Client) error) error {
	m, err := c.registry.GetMakerWithSupportedTokens(ctx, makerAddr)
	if err != nil {
		return err
	}
	if m.URL == "" {
		return fmt.Errorf("%w: %s", ErrMakerNotFound, makerAddr.Hex())
	}
	mc, err := maker.NewClient(m, c.makerCfg)
	if err != nil {
		return err
	}
	defer mc.Close()
	return fn(mc)
}

// Buy quotes receiving amount of toToken for fromToken. Tokens are symbols
// or addresses; makerAddr optionally limits the request to one maker.
func (c *Client) Buy(ctx context.Context, amount, fromToken, toToken string, makerAddr *common.Address, opts ...maker.OrderOption) ([]AggregatedQuoteRow, error) {
	return c.quoteSide(ctx, SideBuy, amount, fromToken, toToken, makerAddr, opts)
}

// Sell quotes paying amount of fromToken for toToken.
func (c *Client) Sell(ctx context.Context, amount, fromToken, toToken string, makerAddr *common.Address, opts ...maker.OrderOption) ([]AggregatedQuoteRow, error) {
	return c.quoteSide(ctx, SideSell, amount, fromToken, toToken, makerAddr, opts)
}

func (c *Client) quoteSide(ctx context.Context, side Side, amount, fromToken, toToken string, makerAddr *common.Address, opts []maker.OrderOption) ([]AggregatedQuoteRow, error) {
	qty, err := ParseAmount(amount)
	if err != nil {
		return nil, err
	}
	from, err := c.Token(ctx, fromToken)
	if err != nil {
		return nil, err
	}
	to, err := c.Token(ctx, toToken)
	if err != nil {
		return nil, err
	}
	return c.Quote(ctx, QuoteRequest{
		Side:         side,
		Amount:       qty,
		FromToken:    from,
		ToToken:      to,
		SenderWallet: c.cfg.SenderWallet,
		Maker:        makerAddr,
		OrderOptions: opts,
	})
}

// Quote fans req out to every registered maker that supports the pair.
func (c *Client) Quote(ctx context.Context, req QuoteRequest) ([]AggregatedQuoteRow, error) {
	if req.SenderWallet == (common.Address{}) {
		req.SenderWallet = c.cfg.SenderWallet
	}
	return c.aggregator.Quote(ctx, req)
}

// Close releases the RPC connection if the client dialed it.
func (c *Client) Close() {
	if c.closer != nil {
		c.closer()
	}
}
