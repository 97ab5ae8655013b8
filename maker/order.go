package maker

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/kaifufi/airswap-rfq-sdk-go/jsonrpc"
)

// OrderOption sets optional order request fields.
type OrderOption func(*jsonrpc.OrderParams)

// WithExpiry requests a specific order expiry, in unix seconds.
func WithExpiry(expiry string) OrderOption {
	return func(p *jsonrpc.OrderParams) { p.Expiry = expiry }
}

// WithProxyingFor names the ultimate counterparty of the swap.
func WithProxyingFor(account common.Address) OrderOption {
	return func(p *jsonrpc.OrderParams) { p.ProxyingFor = &account }
}

func orderParams(from, signerToken, senderToken, swapContract common.Address, chainID uint64, opts []OrderOption) jsonrpc.OrderParams {
	p := jsonrpc.OrderParams{
		ChainID:      chainID,
		SwapContract: swapContract,
		SignerToken:  signerToken,
		SenderToken:  senderToken,
		SenderWallet: from,
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// BuildBuyOrder asks for exactly amount of toToken; the maker quotes how
// much fromToken it wants for it.
func BuildBuyOrder(from, fromToken, toToken common.Address, amount *big.Int, swapContract common.Address, chainID uint64, opts ...OrderOption) jsonrpc.SenderSideOrderParams {
	return jsonrpc.SenderSideOrderParams{
		SignerAmount: amountString(amount),
		OrderParams:  orderParams(from, toToken, fromToken, swapContract, chainID, opts),
	}
}

// BuildSellOrder offers exactly amount of fromToken; the maker quotes how
// much toToken it gives for it.
func BuildSellOrder(from, fromToken, toToken common.Address, amount *big.Int, swapContract common.Address, chainID uint64, opts ...OrderOption) jsonrpc.SignerSideOrderParams {
	return jsonrpc.SignerSideOrderParams{
		SenderAmount: amountString(amount),
		OrderParams:  orderParams(from, toToken, fromToken, swapContract, chainID, opts),
	}
}

// amountString renders a nil amount as zero.
func amountString(amount *big.Int) string {
	if amount == nil {
		return "0"
	}
	return amount.String()
}
