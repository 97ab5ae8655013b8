package chain

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/sync/errgroup"

	"github.com/kaifufi/airswap-rfq-sdk-go/log"
)

// RegistryClient composes registry reads into maker-with-tokens views.
type RegistryClient struct {
	registry Registry
	limit    int
	logger   log.Logger
}

// RegistryOption configures a RegistryClient.
type RegistryOption func(*RegistryClient)

// WithLookupLimit bounds concurrent token lookups. Zero means unbounded.
func WithLookupLimit(n int) RegistryOption {
	return func(c *RegistryClient) { c.limit = n }
}

// WithLogger sets the client logger.
func WithLogger(l log.Logger) RegistryOption {
	return func(c *RegistryClient) { c.logger = log.OrNop(l) }
}

// NewRegistryClient wraps registry with resolution helpers.
func NewRegistryClient(registry Registry, opts ...RegistryOption) *RegistryClient {
	c := &RegistryClient{
		registry: registry,
		logger:   log.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetMaker resolves the URL a maker registered.
func (c *RegistryClient) GetMaker(ctx context.Context, maker common.Address) (Maker, error) {
	return c.registry.GetMaker(ctx, maker)
}

// GetMakers lists every maker with a registered URL.
func (c *RegistryClient) GetMakers(ctx context.Context) ([]Maker, error) {
	return c.registry.GetMakers(ctx)
}

// GetTokens lists the tokens a maker supports.
func (c *RegistryClient) GetTokens(ctx context.Context, maker common.Address) ([]common.Address, error) {
	return c.registry.GetTokens(ctx, maker)
}

// GetMakerWithSupportedTokens resolves one maker's URL and token list.
func (c *RegistryClient) GetMakerWithSupportedTokens(ctx context.Context, maker common.Address) (MakerWithSupportedTokens, error) {
	m, err := c.registry.GetMaker(ctx, maker)
	if err != nil {
		return MakerWithSupportedTokens{}, err
	}
	tokens, err := c.registry.GetTokens(ctx, maker)
	if err != nil {
		return MakerWithSupportedTokens{}, err
	}
	return MakerWithSupportedTokens{Maker: m, SupportedTokens: tokens}, nil
}

// GetMakersWithSupportedTokens enumerates makers and fetches every token
// list concurrently. The first failed lookup fails the whole call. Results
// keep the registry's maker order.
func (c *RegistryClient) GetMakersWithSupportedTokens(ctx context.Context) ([]MakerWithSupportedTokens, error) {
	makers, err := c.registry.GetMakers(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]MakerWithSupportedTokens, len(makers))
	g, gctx := errgroup.WithContext(ctx)
	if c.limit > 0 {
		g.SetLimit(c.limit)
	}
	for i, m := range makers {
		i, m := i, m
		g.Go(func() error {
			tokens, err := c.registry.GetTokens(gctx, m.Address)
			if err != nil {
				return err
			}
			out[i] = MakerWithSupportedTokens{Maker: m, SupportedTokens: tokens}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		c.logger.Error("token lookup failed", "makers", len(makers), "err", err)
		return nil, err
	}

	c.logger.Debug("resolved makers with supported tokens", "makers", len(out))
	return out, nil
}
