package jsonrpc

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common/math"
	"github.com/shopspring/decimal"
)

// flexString reads a JSON string or bare number as text.
func flexString(raw json.RawMessage) (string, error) {
	if len(raw) == 0 {
		return "", fmt.Errorf("missing value")
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", err
		}
		return s, nil
	}
	if !isNumber(raw) {
		return "", fmt.Errorf("expected string or number, got %s", snippet(raw))
	}
	return string(raw), nil
}

// parseQuantity reads a uint256 from a decimal or 0x-hex string or a bare
// integer.
func parseQuantity(raw json.RawMessage) (*big.Int, error) {
	s, err := flexString(raw)
	if err != nil {
		return nil, err
	}
	if s == "" {
		return nil, fmt.Errorf("empty quantity")
	}
	v, ok := math.ParseBig256(s)
	if !ok || v.Sign() < 0 {
		return nil, fmt.Errorf("invalid uint256 quantity %q", s)
	}
	return v, nil
}

// parseNumber reads a bare JSON number. Quoted numbers are rejected.
func parseNumber(raw json.RawMessage) (decimal.Decimal, error) {
	if !isNumber(raw) {
		return decimal.Decimal{}, fmt.Errorf("expected number, got %s", snippet(raw))
	}
	return decimal.NewFromString(string(raw))
}

func isNumber(raw json.RawMessage) bool {
	if len(raw) == 0 {
		return false
	}
	c := raw[0]
	return c == '-' || (c >= '0' && c <= '9')
}
