package jsonrpc

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

// Level is one rung of a pricing ladder, encoded as [quantity, price].
type Level struct {
	Quantity decimal.Decimal
	Price    decimal.Decimal
}

func (l *Level) UnmarshalJSON(data []byte) error {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("level: %w", err)
	}
	if len(items) != 2 {
		return fmt.Errorf("level: want [quantity, price], got %d elements", len(items))
	}
	qty, err := parseNumber(items[0])
	if err != nil {
		return fmt.Errorf("level quantity: %w", err)
	}
	price, err := parseNumber(items[1])
	if err != nil {
		return fmt.Errorf("level price: %w", err)
	}
	l.Quantity, l.Price = qty, price
	return nil
}

func (l Level) MarshalJSON() ([]byte, error) {
	return []byte("[" + l.Quantity.String() + "," + l.Price.String() + "]"), nil
}

func (l Level) String() string {
	return l.Quantity.String() + "@" + l.Price.String()
}

// NormalizedPrice scales the price to an integer with the given decimals,
// truncating the remainder.
func (l Level) NormalizedPrice(decimals uint8) *big.Int {
	return l.Price.Shift(int32(decimals)).Truncate(0).BigInt()
}

// Pricing is the bid and ask ladder a maker quotes for one pair. Ladders
// keep the order the maker sent.
type Pricing struct {
	BaseToken  common.Address  `json:"baseToken"`
	QuoteToken common.Address  `json:"quoteToken"`
	Minimum    decimal.Decimal `json:"minimum"`
	Bid        []Level         `json:"bid"`
	Ask        []Level         `json:"ask"`
}

func (p *Pricing) UnmarshalJSON(data []byte) error {
	var raw struct {
		BaseToken  *common.Address `json:"baseToken"`
		QuoteToken *common.Address `json:"quoteToken"`
		Minimum    json.RawMessage `json:"minimum"`
		Bid        *[]Level        `json:"bid"`
		Ask        *[]Level        `json:"ask"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.BaseToken == nil || raw.QuoteToken == nil || raw.Bid == nil || raw.Ask == nil {
		return errors.New("pricing needs baseToken, quoteToken, bid and ask")
	}
	minimum, err := parseNumber(raw.Minimum)
	if err != nil {
		return fmt.Errorf("pricing minimum: %w", err)
	}

	*p = Pricing{
		BaseToken:  *raw.BaseToken,
		QuoteToken: *raw.QuoteToken,
		Minimum:    minimum,
		Bid:        *raw.Bid,
		Ask:        *raw.Ask,
	}
	return nil
}

// BestBid is the last bid level, or false for an empty ladder.
func (p Pricing) BestBid() (Level, bool) {
	if len(p.Bid) == 0 {
		return Level{}, false
	}
	return p.Bid[len(p.Bid)-1], true
}

// BestAsk is the last ask level, or false for an empty ladder.
func (p Pricing) BestAsk() (Level, bool) {
	if len(p.Ask) == 0 {
		return Level{}, false
	}
	return p.Ask[len(p.Ask)-1], true
}
