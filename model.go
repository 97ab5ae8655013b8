package airswap

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"

	"github.com/kaifufi/airswap-rfq-sdk-go/chain"
	"github.com/kaifufi/airswap-rfq-sdk-go/jsonrpc"
	"github.com/kaifufi/airswap-rfq-sdk-go/maker"
)

// Side is the direction of a quote request from the taker's view.
type Side int

const (
	// SideBuy fixes the amount of ToToken received.
	SideBuy Side = iota
	// SideSell fixes the amount of FromToken paid.
	SideSell
)

func (s Side) String() string {
	if s == SideBuy {
		return "buy"
	}
	return "sell"
}

// ParseSide parses "buy" or "sell", ignoring case.
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(s) {
	case "buy":
		return SideBuy, nil
	case "sell":
		return SideSell, nil
	}
	return 0, &InvalidParamError{Message: fmt.Sprintf("side must be buy or sell, got: %q", s)}
}

// QuoteRequest is a trade intent fanned out to every capable maker.
type QuoteRequest struct {
	Side         Side
	Amount       decimal.Decimal
	FromToken    chain.Token
	ToToken      chain.Token
	SenderWallet common.Address
	// Maker restricts the request to one maker when set.
	Maker        *common.Address
	OrderOptions []maker.OrderOption
}

func (r QuoteRequest) validate() error {
	if !r.Amount.IsPositive() {
		return &InvalidParamError{Message: fmt.Sprintf("amount must be positive, got: %s", r.Amount)}
	}
	if r.FromToken.Address == (common.Address{}) || r.ToToken.Address == (common.Address{}) {
		return &InvalidParamError{Message: "from and to tokens are required"}
	}
	if r.FromToken.Address == r.ToToken.Address {
		return &InvalidParamError{Message: "from and to tokens must differ"}
	}
	return nil
}

// AggregatedQuoteRow is one maker's outcome. Err is nil for a quote.
type AggregatedQuoteRow struct {
	MakerURL     string
	MakerAddress common.Address
	MakerName    string
	// Amount is the quoted counter amount: what the maker gives on a sell,
	// what it asks on a buy.
	Amount decimal.Decimal
	Quote  *jsonrpc.OrderQuote
	Err    error
}

// OK reports whether the maker returned a quote.
func (r AggregatedQuoteRow) OK() bool { return r.Err == nil }

// Message is the quoted amount, or the error text.
func (r AggregatedQuoteRow) Message() string {
	if r.Err != nil {
		return r.Err.Error()
	}
	return r.Amount.String()
}

// BestRow picks the most favourable successful row: the largest amount
// received on a sell, the smallest amount paid on a buy.
func BestRow(side Side, rows []AggregatedQuoteRow) (AggregatedQuoteRow, bool) {
	var (
		best  AggregatedQuoteRow
		found bool
	)
	for _, row := range rows {
		if !row.OK() {
			continue
		}
		better := !found ||
			(side == SideSell && row.Amount.GreaterThan(best.Amount)) ||
			(side == SideBuy && row.Amount.LessThan(best.Amount))
		if better {
			best, found = row, true
		}
	}
	return best, found
}
