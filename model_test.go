package airswap

import (
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaifufi/airswap-rfq-sdk-go/chain"
)

func TestParseSide(t *testing.T) {
	side, err := ParseSide("BUY")
	require.NoError(t, err)
	assert.Equal(t, SideBuy, side)
	assert.Equal(t, "buy", side.String())

	side, err = ParseSide("sell")
	require.NoError(t, err)
	assert.Equal(t, SideSell, side)
	assert.Equal(t, "sell", side.String())

	_, err = ParseSide("hold")
	assert.ErrorIs(t, err, ErrInvalidParam)
}

func TestBestRow(t *testing.T) {
	rows := []AggregatedQuoteRow{
		{MakerURL: "a", Amount: decimal.NewFromInt(5)},
		{MakerURL: "b", Err: errors.New("timeout")},
		{MakerURL: "c", Amount: decimal.NewFromInt(3)},
		{MakerURL: "d", Amount: decimal.NewFromInt(7)},
	}

	best, ok := BestRow(SideSell, rows)
	require.True(t, ok)
	assert.Equal(t, "d", best.MakerURL)

	best, ok = BestRow(SideBuy, rows)
	require.True(t, ok)
	assert.Equal(t, "c", best.MakerURL)

	_, ok = BestRow(SideSell, rows[1:2])
	assert.False(t, ok)
}

func TestRowMessage(t *testing.T) {
	assert.Equal(t, "1.25", AggregatedQuoteRow{Amount: decimal.RequireFromString("1.25")}.Message())
	assert.Equal(t, "timeout", AggregatedQuoteRow{Err: errors.New("timeout")}.Message())
}

func TestMakerName(t *testing.T) {
	assert.Equal(t, "alphalab", MakerName(chain.Maker{
		Address: common.HexToAddress("0xbb289bc97591f70d8216462df40ed713011b968a"),
		URL:     "https://rfq.alphalab.example",
	}))
	assert.Equal(t, "maker.example.org", MakerName(chain.Maker{URL: "https://www.maker.example.org/rpc"}))
	assert.Equal(t, "not a url", MakerName(chain.Maker{URL: "not a url"}))
}
