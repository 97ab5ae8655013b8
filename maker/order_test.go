package maker

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
)

func TestBuildSellOrder(t *testing.T) {
	amount := big.NewInt(1_500_000)
	p := BuildSellOrder(taker, usdc, weth, amount, swapV5, 1)

	assert.Equal(t, "1500000", p.SenderAmount)
	assert.Equal(t, usdc, p.SenderToken)
	assert.Equal(t, weth, p.SignerToken)
	assert.Equal(t, taker, p.SenderWallet)
	assert.Equal(t, swapV5, p.SwapContract)
	assert.EqualValues(t, 1, p.ChainID)
	assert.Empty(t, p.Expiry)
	assert.Nil(t, p.ProxyingFor)
}

func TestBuildBuyOrder(t *testing.T) {
	proxy := common.HexToAddress("0x00000000000000000000000000000000000000ff")
	p := BuildBuyOrder(taker, usdc, weth, big.NewInt(42), swapV5, 137, WithExpiry("99"), WithProxyingFor(proxy))

	assert.Equal(t, "42", p.SignerAmount)
	assert.Equal(t, weth, p.SignerToken)
	assert.Equal(t, usdc, p.SenderToken)
	assert.EqualValues(t, 137, p.ChainID)
	assert.Equal(t, "99", p.Expiry)
	assert.Equal(t, &proxy, p.ProxyingFor)
}

func TestBuildOrderNilAmount(t *testing.T) {
	assert.Equal(t, "0", BuildSellOrder(taker, usdc, weth, nil, swapV5, 1).SenderAmount)
	assert.Equal(t, "0", BuildBuyOrder(taker, usdc, weth, nil, swapV5, 1).SignerAmount)
}
