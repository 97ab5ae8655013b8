package airswap

import (
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUnits(t *testing.T) {
	testCases := map[string]struct {
		amount   string
		decimals uint8
		want     string
		wantErr  bool
	}{
		"whole usdc":        {amount: "1000", decimals: 6, want: "1000000000"},
		"fractional weth":   {amount: "0.5", decimals: 18, want: "500000000000000000"},
		"truncates excess":  {amount: "1.23456789", decimals: 6, want: "1234567"},
		"zero decimals":     {amount: "42.9", decimals: 0, want: "42"},
		"zero amount":       {amount: "0", decimals: 6, wantErr: true},
		"negative amount":   {amount: "-1", decimals: 6, wantErr: true},
		"vanishes":          {amount: "0.0000001", decimals: 6, wantErr: true},
		"too many decimals": {amount: "1", decimals: MaxDecimals + 1, wantErr: true},
		"overflows uint256": {amount: "1e60", decimals: 18, wantErr: true},
	}

	for name, tc := range testCases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			got, err := ParseUnits(decimal.RequireFromString(tc.amount), tc.decimals)
			if tc.wantErr {
				require.ErrorIs(t, err, ErrInvalidParam)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.String())
		})
	}
}

func TestFormatUnits(t *testing.T) {
	assert.Equal(t, "1000", FormatUnits(big.NewInt(1_000_000_000), 6).String())
	assert.Equal(t, "0.000001", FormatUnits(big.NewInt(1), 6).String())
	assert.True(t, FormatUnits(nil, 18).IsZero())

	value, err := ParseUnits(decimal.RequireFromString("12.5"), 8)
	require.NoError(t, err)
	assert.True(t, FormatUnits(value, 8).Equal(decimal.RequireFromString("12.5")))
}

func TestParseAmount(t *testing.T) {
	d, err := ParseAmount("0.25")
	require.NoError(t, err)
	assert.Equal(t, "0.25", d.String())

	_, err = ParseAmount("a lot")
	assert.ErrorIs(t, err, ErrInvalidParam)
}
