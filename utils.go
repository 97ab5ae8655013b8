package airswap

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

const MaxDecimals = 36

var maxUint256 = new(big.Int).Lsh(big.NewInt(1), 256)

// ParseUnits converts a human amount to token base units. Digits beyond
// the token's decimals are truncated.
func ParseUnits(amount decimal.Decimal, decimals uint8) (*big.Int, error) {
	if !amount.IsPositive() {
		return nil, &InvalidParamError{Message: fmt.Sprintf("amount must be positive, got: %s", amount)}
	}
	if decimals > MaxDecimals {
		return nil, &InvalidParamError{Message: fmt.Sprintf("decimals must be between 0 and %d, got: %d", MaxDecimals, decimals)}
	}

	result := amount.Shift(int32(decimals)).Truncate(0).BigInt()

	if result.Cmp(maxUint256) >= 0 {
		return nil, &InvalidParamError{Message: fmt.Sprintf("amount too large for uint256: %s", result.String())}
	}
	if result.Sign() <= 0 {
		return nil, &InvalidParamError{Message: fmt.Sprintf("amount %s is zero at %d decimals", amount, decimals)}
	}
	return result, nil
}

// FormatUnits converts base units back to a human amount.
func FormatUnits(value *big.Int, decimals uint8) decimal.Decimal {
	if value == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(value, -int32(decimals))
}

// ParseAmount parses a human amount string.
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, &InvalidParamError{Message: fmt.Sprintf("invalid amount %q: %v", s, err)}
	}
	return d, nil
}
