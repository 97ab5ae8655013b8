package jsonrpc

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"sort"

	"github.com/ethereum/go-ethereum/common"
)

// OrderQuote is a signed order returned by a maker. Amounts are in token
// base units.
type OrderQuote struct {
	Nonce        *big.Int        `json:"nonce"`
	Expiry       *big.Int        `json:"expiry"`
	SignerWallet common.Address  `json:"signerWallet"`
	SignerToken  common.Address  `json:"signerToken"`
	SignerAmount *big.Int        `json:"signerAmount"`
	SenderToken  common.Address  `json:"senderToken"`
	SenderAmount *big.Int        `json:"senderAmount"`
	SenderWallet *common.Address `json:"senderWallet,omitempty"`
	SignerFee    string          `json:"signerFee,omitempty"`
	SwapContract *common.Address `json:"swapContract,omitempty"`
	Signature    json.RawMessage `json:"signature,omitempty"`
	R            common.Hash     `json:"r"`
	S            common.Hash     `json:"s"`
	V            uint64          `json:"v,omitempty"`
}

func (q *OrderQuote) UnmarshalJSON(data []byte) error {
	var raw struct {
		Nonce        json.RawMessage `json:"nonce"`
		Expiry       json.RawMessage `json:"expiry"`
		SignerWallet *common.Address `json:"signerWallet"`
		SignerToken  *common.Address `json:"signerToken"`
		SignerAmount json.RawMessage `json:"signerAmount"`
		SenderToken  *common.Address `json:"senderToken"`
		SenderAmount json.RawMessage `json:"senderAmount"`
		SenderWallet *common.Address `json:"senderWallet"`
		SignerFee    json.RawMessage `json:"signerFee"`
		SwapContract *common.Address `json:"swapContract"`
		Signature    json.RawMessage `json:"signature"`
		R            *common.Hash    `json:"r"`
		S            *common.Hash    `json:"s"`
		V            json.RawMessage `json:"v"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.SignerWallet == nil || raw.SignerToken == nil || raw.SenderToken == nil {
		return errors.New("order needs signerWallet, signerToken and senderToken")
	}
	if raw.R == nil || raw.S == nil {
		return errors.New("order needs r and s")
	}

	out := OrderQuote{
		SignerWallet: *raw.SignerWallet,
		SignerToken:  *raw.SignerToken,
		SenderToken:  *raw.SenderToken,
		SenderWallet: raw.SenderWallet,
		SwapContract: raw.SwapContract,
		R:            *raw.R,
		S:            *raw.S,
	}
	quantities := []struct {
		name string
		raw  json.RawMessage
		dst  **big.Int
	}{
		{"nonce", raw.Nonce, &out.Nonce},
		{"expiry", raw.Expiry, &out.Expiry},
		{"signerAmount", raw.SignerAmount, &out.SignerAmount},
		{"senderAmount", raw.SenderAmount, &out.SenderAmount},
	}
	for _, f := range quantities {
		v, err := parseQuantity(f.raw)
		if err != nil {
			return fmt.Errorf("order %s: %w", f.name, err)
		}
		*f.dst = v
	}
	if present(raw.SignerFee) {
		fee, err := flexString(raw.SignerFee)
		if err != nil {
			return fmt.Errorf("order signerFee: %w", err)
		}
		out.SignerFee = fee
	}
	if present(raw.Signature) {
		out.Signature = raw.Signature
	}
	if present(raw.V) {
		v, err := parseQuantity(raw.V)
		if err != nil || !v.IsUint64() {
			return fmt.Errorf("order v: invalid value %s", snippet(raw.V))
		}
		out.V = v.Uint64()
	}

	*q = out
	return nil
}

// Compare orders quotes by signer amount. A nil amount sorts below any
// other amount.
func (q *OrderQuote) Compare(other *OrderQuote) int {
	switch a, b := q.SignerAmount, other.SignerAmount; {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	default:
		return a.Cmp(b)
	}
}

// SortQuotes sorts quotes by ascending signer amount.
func SortQuotes(quotes []*OrderQuote) {
	sort.SliceStable(quotes, func(i, j int) bool {
		return quotes[i].Compare(quotes[j]) < 0
	})
}

// BestQuote returns the quote with the largest signer amount, or nil.
func BestQuote(quotes []*OrderQuote) *OrderQuote {
	var best *OrderQuote
	for _, q := range quotes {
		if q == nil {
			continue
		}
		if best == nil || q.Compare(best) > 0 {
			best = q
		}
	}
	return best
}
