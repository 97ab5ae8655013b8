package maker

import (
	"context"
	"fmt"
	"math/big"
	"net/url"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"github.com/kaifufi/airswap-rfq-sdk-go/chain"
	"github.com/kaifufi/airswap-rfq-sdk-go/jsonrpc"
	"github.com/kaifufi/airswap-rfq-sdk-go/log"
	"github.com/kaifufi/airswap-rfq-sdk-go/middleware"
)

// Client talks to one maker. It is cheap to build and meant to be used for
// a single batch of requests, then closed.
type Client struct {
	maker     chain.MakerWithSupportedTokens
	cfg       Config
	ids       *jsonrpc.IDGenerator
	transport transport
	logger    log.Logger
}

var _ middleware.Handler[jsonrpc.Params, *jsonrpc.Result] = (*Client)(nil)

// NewClient picks a transport from the maker URL scheme: http and https
// POST each call, ws and wss share one websocket connection.
func NewClient(m chain.MakerWithSupportedTokens, cfg Config) (*Client, error) {
	cfg = cfg.withDefaults()

	u, err := url.Parse(m.URL)
	if err != nil || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedURL, m.URL)
	}

	c := &Client{
		maker:  m,
		cfg:    cfg,
		ids:    jsonrpc.NewIDGenerator(),
		logger: cfg.Logger.With("maker", m.URL),
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		c.transport = newHTTPTransport(m.URL, cfg)
	case "ws", "wss":
		c.transport = newWSTransport(m.URL, cfg)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedURL, m.URL)
	}
	return c, nil
}

// Maker returns the maker this client talks to.
func (c *Client) Maker() chain.MakerWithSupportedTokens { return c.maker }

// Prepare readies the transport; for websocket makers it opens the
// connection.
func (c *Client) Prepare(ctx context.Context) error {
	return c.transport.Prepare(ctx)
}

// Invoke is Call, satisfying middleware.Handler.
func (c *Client) Invoke(ctx context.Context, params jsonrpc.Params) (*jsonrpc.Result, error) {
	return c.Call(ctx, params)
}

// Service exposes the client as a handler for middleware composition.
func (c *Client) Service() middleware.Handler[jsonrpc.Params, *jsonrpc.Result] {
	return c
}

// Call sends params to the maker and returns its result. Error objects,
// whether top-level or inside the result, come back as errors: rate limit
// codes as *RateLimitError, others as *jsonrpc.RemoteError.
func (c *Client) Call(ctx context.Context, params jsonrpc.Params) (*jsonrpc.Result, error) {
	if order, ok := params.(jsonrpc.OrderRequest); ok {
		signer, sender := order.Tokens()
		if !c.maker.Supports(signer, sender) {
			return nil, fmt.Errorf("%w: %s does not quote %s/%s", ErrPairNotSupported, c.maker.URL, signer.Hex(), sender.Hex())
		}
	}

	req, err := jsonrpc.NewRequest(c.ids.Next(), params)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	c.logger.Debug("calling maker", "method", req.Method, "id", req.ID)
	body, err := c.transport.RoundTrip(ctx, req)
	if err != nil {
		return nil, err
	}

	resp, err := jsonrpc.DecodeResponse(body)
	if err != nil {
		return nil, err
	}

	switch resp.Kind {
	case jsonrpc.KindResult:
		if resp.Result.Kind == jsonrpc.ResultError {
			return nil, remoteError(resp.Result.Error)
		}
		return resp.Result, nil
	case jsonrpc.KindError:
		return nil, remoteError(resp.Error)
	default:
		return nil, resp.Err()
	}
}

// GetProtocols asks the maker which protocols it serves.
func (c *Client) GetProtocols(ctx context.Context) ([]jsonrpc.Protocol, error) {
	result, err := c.Call(ctx, jsonrpc.ProtocolsParams{})
	if err != nil {
		return nil, err
	}
	return result.AsProtocols()
}

// GetBuyQuote asks for a quote delivering exactly amount of toToken.
func (c *Client) GetBuyQuote(ctx context.Context, from, fromToken, toToken common.Address, amount *big.Int, opts ...OrderOption) (*jsonrpc.OrderQuote, error) {
	return c.quote(ctx, BuildBuyOrder(from, fromToken, toToken, amount, c.cfg.SwapContract, c.cfg.ChainID, opts...))
}

// GetSellQuote asks for a quote taking exactly amount of fromToken.
func (c *Client) GetSellQuote(ctx context.Context, from, fromToken, toToken common.Address, amount *big.Int, opts ...OrderOption) (*jsonrpc.OrderQuote, error) {
	return c.quote(ctx, BuildSellOrder(from, fromToken, toToken, amount, c.cfg.SwapContract, c.cfg.ChainID, opts...))
}

func (c *Client) quote(ctx context.Context, params jsonrpc.OrderRequest) (*jsonrpc.OrderQuote, error) {
	result, err := c.Call(ctx, params)
	if err != nil {
		return nil, err
	}
	return result.AsOrder()
}

// GetPricing returns the ladders for pairs in the order the maker sent them.
func (c *Client) GetPricing(ctx context.Context, pairs []jsonrpc.Pair) ([]jsonrpc.Pricing, error) {
	result, err := c.Call(ctx, jsonrpc.PricingParams{Pairs: pairs})
	if err != nil {
		return nil, err
	}
	return result.AsPricing()
}

// GetAllPricing fetches the maker's pricing for every pair it quotes.
func (c *Client) GetAllPricing(ctx context.Context) ([]jsonrpc.Pricing, error) {
	result, err := c.Call(ctx, jsonrpc.AllPricingParams{})
	if err != nil {
		return nil, err
	}
	return result.AsPricing()
}

// BuyOrder builds buy params with this client's chain and swap contract.
func (c *Client) BuyOrder(from, fromToken, toToken common.Address, amount *big.Int, opts ...OrderOption) jsonrpc.SenderSideOrderParams {
	return BuildBuyOrder(from, fromToken, toToken, amount, c.cfg.SwapContract, c.cfg.ChainID, opts...)
}

// SellOrder builds sell params with this client's chain and swap contract.
func (c *Client) SellOrder(from, fromToken, toToken common.Address, amount *big.Int, opts ...OrderOption) jsonrpc.SignerSideOrderParams {
	return BuildSellOrder(from, fromToken, toToken, amount, c.cfg.SwapContract, c.cfg.ChainID, opts...)
}

// Close releases the underlying transport.
func (c *Client) Close() error {
	return c.transport.Close()
}
