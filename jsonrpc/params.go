package jsonrpc

import (
	"github.com/ethereum/go-ethereum/common"
)

const (
	MethodGetProtocols            = "getProtocols"
	MethodGetSignerSideOrderERC20 = "getSignerSideOrderERC20"
	MethodGetSenderSideOrderERC20 = "getSenderSideOrderERC20"
	MethodGetPricingERC20         = "getPricingERC20"
	MethodGetAllPricingERC20      = "getAllPricingERC20"
)

// Params is one of the RFQ request payloads. The method name is derived
// from the concrete type.
type Params interface {
	Method() string
}

// OrderRequest is implemented by params that ask a maker for an order on
// a token pair.
type OrderRequest interface {
	Params
	Tokens() (signer, sender common.Address)
}

var (
	_ Params       = ProtocolsParams{}
	_ OrderRequest = SignerSideOrderParams{}
	_ OrderRequest = SenderSideOrderParams{}
	_ Params       = PricingParams{}
	_ Params       = AllPricingParams{}
)

// ProtocolsParams requests the protocols a maker supports. Encodes as {}.
type ProtocolsParams struct{}

func (ProtocolsParams) Method() string { return MethodGetProtocols }

// OrderParams holds the fields shared by both order request kinds.
type OrderParams struct {
	ChainID      uint64          `json:"chainId,string"`
	SwapContract common.Address  `json:"swapContract"`
	SignerToken  common.Address  `json:"signerToken"`
	SenderToken  common.Address  `json:"senderToken"`
	SenderWallet common.Address  `json:"senderWallet"`
	Expiry       string          `json:"expiry,omitempty"`
	ProxyingFor  *common.Address `json:"proxyingFor,omitempty"`
}

// SignerSideOrderParams fixes the amount the sender pays; the maker quotes
// the signer amount.
type SignerSideOrderParams struct {
	SenderAmount string `json:"senderAmount"`
	OrderParams
}

func (SignerSideOrderParams) Method() string { return MethodGetSignerSideOrderERC20 }

func (p SignerSideOrderParams) Tokens() (common.Address, common.Address) {
	return p.SignerToken, p.SenderToken
}

// SenderSideOrderParams fixes the amount the maker delivers; the maker
// quotes the sender amount.
type SenderSideOrderParams struct {
	SignerAmount string `json:"signerAmount"`
	OrderParams
}

func (SenderSideOrderParams) Method() string { return MethodGetSenderSideOrderERC20 }

func (p SenderSideOrderParams) Tokens() (common.Address, common.Address) {
	return p.SignerToken, p.SenderToken
}

type Pair struct {
	BaseToken  common.Address `json:"baseToken"`
	QuoteToken common.Address `json:"quoteToken"`
}

type PricingParams struct {
	Pairs     []Pair `json:"pairs"`
	MinExpiry string `json:"minExpiry,omitempty"`
}

func (PricingParams) Method() string { return MethodGetPricingERC20 }

// AllPricingParams requests every pricing ladder a maker serves. Encodes as {}.
type AllPricingParams struct{}

func (AllPricingParams) Method() string { return MethodGetAllPricingERC20 }
