package airswap

import (
	"context"
	"math/big"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/semaphore"

	"github.com/kaifufi/airswap-rfq-sdk-go/chain"
	"github.com/kaifufi/airswap-rfq-sdk-go/jsonrpc"
	"github.com/kaifufi/airswap-rfq-sdk-go/log"
	"github.com/kaifufi/airswap-rfq-sdk-go/maker"
	"github.com/kaifufi/airswap-rfq-sdk-go/middleware"
)

// MakerSource lists registered makers with the tokens they support.
// *chain.RegistryClient satisfies it.
type MakerSource interface {
	GetMakersWithSupportedTokens(ctx context.Context) ([]chain.MakerWithSupportedTokens, error)
}

var _ MakerSource = (*chain.RegistryClient)(nil)

type AggregatorConfig struct {
	Maker maker.Config
	// MaxConcurrency bounds in-flight maker calls. Zero means one goroutine
	// per maker with no bound.
	MaxConcurrency int64
	// MinimumAmount rejects smaller requests before any maker is called.
	MinimumAmount decimal.Decimal
	Logger        log.Logger
}

// Aggregator fans a quote request out to every capable maker and collects
// one row per maker.
type Aggregator struct {
	source MakerSource
	cfg    AggregatorConfig
	sem    *semaphore.Weighted
	logger log.Logger
}

// NewAggregator creates an Aggregator reading makers from source.
func NewAggregator(source MakerSource, cfg AggregatorConfig) *Aggregator {
	a := &Aggregator{
		source: source,
		cfg:    cfg,
		logger: log.OrNop(cfg.Logger).With("module", "aggregator"),
	}
	if a.cfg.Maker.Logger == nil {
		a.cfg.Maker.Logger = a.logger
	}
	if cfg.MaxConcurrency > 0 {
		a.sem = semaphore.NewWeighted(cfg.MaxConcurrency)
	}
	return a
}

// Candidates returns the makers that support both tokens of req and match
// its maker filter.
func Candidates(makers []chain.MakerWithSupportedTokens, req QuoteRequest) []chain.MakerWithSupportedTokens {
	var out []chain.MakerWithSupportedTokens
	for _, m := range makers {
		if req.Maker != nil && m.Address != *req.Maker {
			continue
		}
		if !m.Supports(req.FromToken.Address, req.ToToken.Address) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// Quote asks every candidate maker concurrently and waits for all of them.
// Registry and validation failures fail the call; a maker failure becomes
// that maker's row. Rows follow the registry's maker order. No candidate,
// including a maker filter that matches nothing, yields no rows.
func (a *Aggregator) Quote(ctx context.Context, req QuoteRequest) ([]AggregatedQuoteRow, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	decimals := req.FromToken.Decimals
	if req.Side == SideBuy {
		decimals = req.ToToken.Decimals
	}
	amount, err := ParseUnits(req.Amount, decimals)
	if err != nil {
		return nil, err
	}

	makers, err := a.source.GetMakersWithSupportedTokens(ctx)
	if err != nil {
		return nil, err
	}
	candidates := Candidates(makers, req)

	start := time.Now()
	rows := make([]AggregatedQuoteRow, len(candidates))
	var wg sync.WaitGroup
	for i, m := range candidates {
		wg.Add(1)
		go func(i int, m chain.MakerWithSupportedTokens) {
			defer wg.Done()
			rows[i] = a.quoteMaker(ctx, m, req, amount)
		}(i, m)
	}
	wg.Wait()

	failed := 0
	for _, row := range rows {
		if !row.OK() {
			failed++
		}
	}
	a.logger.Info("quote round finished",
		"side", req.Side.String(),
		"makers", len(makers),
		"candidates", len(candidates),
		"failed", failed,
		"elapsed", time.Since(start).String(),
	)
	return rows, nil
}

func (a *Aggregator) quoteMaker(ctx context.Context, m chain.MakerWithSupportedTokens, req QuoteRequest, amount *big.Int) AggregatedQuoteRow {
	row := AggregatedQuoteRow{
		MakerURL:     m.URL,
		MakerAddress: m.Address,
		MakerName:    MakerName(m.Maker),
	}

	if a.sem != nil {
		if err := a.sem.Acquire(ctx, 1); err != nil {
			row.Err = err
			return row
		}
		defer a.sem.Release(1)
	}

	client, err := maker.NewClient(m, a.cfg.Maker)
	if err != nil {
		row.Err = err
		return row
	}
	defer client.Close()

	var params jsonrpc.Params
	if req.Side == SideBuy {
		params = client.BuyOrder(req.SenderWallet, req.FromToken.Address, req.ToToken.Address, amount, req.OrderOptions...)
	} else {
		params = client.SellOrder(req.SenderWallet, req.FromToken.Address, req.ToToken.Address, amount, req.OrderOptions...)
	}

	handler := middleware.NewThresholdFilter(
		middleware.Chain(client.Service(), middleware.Logging[jsonrpc.Params, *jsonrpc.Result](
			a.logger.With("maker", m.URL),
			func(p jsonrpc.Params) []interface{} { return []interface{}{"method", p.Method()} },
		)),
		a.cfg.MinimumAmount,
	)
	result, err := middleware.Call[middleware.Amounted[jsonrpc.Params], *jsonrpc.Result](ctx, handler, middleware.Amounted[jsonrpc.Params]{
		Request: params,
		Amount:  req.Amount,
	})
	if err != nil {
		row.Err = err
		return row
	}

	quote, err := result.AsOrder()
	if err != nil {
		row.Err = err
		return row
	}
	row.Quote = quote
	if req.Side == SideBuy {
		row.Amount = FormatUnits(quote.SenderAmount, req.FromToken.Decimals)
	} else {
		row.Amount = FormatUnits(quote.SignerAmount, req.ToToken.Decimals)
	}
	return row
}
