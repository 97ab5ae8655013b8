package chain

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
)

// ErrUnknownToken is returned when a symbol is not in the store.
var ErrUnknownToken = errors.New("unknown token")

// Token is ERC20 metadata needed to convert human amounts.
type Token struct {
	Address  common.Address `json:"address"`
	Symbol   string         `json:"symbol"`
	Decimals uint8          `json:"decimals"`
}

// TokenResolver looks up token metadata by address.
type TokenResolver interface {
	Token(ctx context.Context, address common.Address) (Token, error)
}

var knownTokens = map[ChainID][]Token{
	ChainIDMainnet: {
		{Address: common.HexToAddress("0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48"), Symbol: "USDC", Decimals: 6},
		{Address: common.HexToAddress("0xdAC17F958D2ee523a2206206994597C13D831ec7"), Symbol: "USDT", Decimals: 6},
		{Address: common.HexToAddress("0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2"), Symbol: "WETH", Decimals: 18},
		{Address: common.HexToAddress("0x2260FAC5E5542a773Aa44fBCfeDf7C193bc2C599"), Symbol: "WBTC", Decimals: 8},
		{Address: common.HexToAddress("0x6B175474E89094C44Da98b954EedeAC495271d0F"), Symbol: "DAI", Decimals: 18},
	},
	ChainIDPolygon: {
		{Address: common.HexToAddress("0x2791Bca1f2de4661ED88A30C99A7a9449Aa84174"), Symbol: "USDC", Decimals: 6},
		{Address: common.HexToAddress("0x7ceB23fD6bC0adD59E62ac25578270cFf1b9f619"), Symbol: "WETH", Decimals: 18},
		{Address: common.HexToAddress("0x0d500B1d8E8eF31E21C99d1Db9A6444d3ADf1270"), Symbol: "WMATIC", Decimals: 18},
	},
	ChainIDArbitrum: {
		{Address: common.HexToAddress("0xaf88d065e77c8cC2239327C5EDb3A432268e5831"), Symbol: "USDC", Decimals: 6},
		{Address: common.HexToAddress("0x82aF49447D8a07e3bd95BD0d56f35241523fBab1"), Symbol: "WETH", Decimals: 18},
	},
}

// TokenStore caches token metadata, seeded with well-known tokens for the
// chain and filled from decimals()/symbol() calls on a miss.
type TokenStore struct {
	caller ContractCaller

	mu       sync.RWMutex
	byAddr   map[common.Address]Token
	bySymbol map[string]Token
}

// NewTokenStore returns a store seeded for chainID. caller may be nil, in
// which case only seeded or added tokens resolve.
func NewTokenStore(caller ContractCaller, chainID ChainID) *TokenStore {
	s := &TokenStore{
		caller:   caller,
		byAddr:   make(map[common.Address]Token),
		bySymbol: make(map[string]Token),
	}
	for _, t := range knownTokens[chainID] {
		s.Add(t)
	}
	return s
}

// Add stores t, replacing any entry for the same address.
func (s *TokenStore) Add(t Token) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byAddr[t.Address] = t
	if t.Symbol != "" {
		s.bySymbol[strings.ToUpper(t.Symbol)] = t
	}
}

// Token returns metadata for address, reading the contract on a cache miss.
func (s *TokenStore) Token(ctx context.Context, address common.Address) (Token, error) {
	s.mu.RLock()
	t, ok := s.byAddr[address]
	s.mu.RUnlock()
	if ok {
		return t, nil
	}
	if s.caller == nil {
		return Token{}, fmt.Errorf("%w: %s", ErrUnknownToken, address.Hex())
	}

	var decimals uint8
	if err := s.call(ctx, address, "decimals", &decimals); err != nil {
		return Token{}, err
	}
	var symbol string
	if err := s.call(ctx, address, "symbol", &symbol); err != nil {
		return Token{}, err
	}

	t = Token{Address: address, Symbol: symbol, Decimals: decimals}
	s.Add(t)
	return t, nil
}

// Resolve accepts a hex address or a known symbol.
func (s *TokenStore) Resolve(ctx context.Context, symbolOrAddress string) (Token, error) {
	if common.IsHexAddress(symbolOrAddress) {
		return s.Token(ctx, common.HexToAddress(symbolOrAddress))
	}

	s.mu.RLock()
	t, ok := s.bySymbol[strings.ToUpper(symbolOrAddress)]
	s.mu.RUnlock()
	if !ok {
		return Token{}, fmt.Errorf("%w: %s", ErrUnknownToken, symbolOrAddress)
	}
	return t, nil
}

func (s *TokenStore) call(ctx context.Context, token common.Address, method string, out interface{}) error {
	data, err := erc20ABI.Pack(method)
	if err != nil {
		return fmt.Errorf("failed to pack %s: %w", method, err)
	}

	result, err := s.caller.CallContract(ctx, ethereum.CallMsg{
		To:   &token,
		Data: data,
	}, nil)
	if err != nil {
		return &TransportError{Op: method, Err: err}
	}

	if err := erc20ABI.UnpackIntoInterface(out, method, result); err != nil {
		return &DecodeError{Op: method, Err: err}
	}
	return nil
}
