package maker

import (
	"net/http"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gorilla/websocket"

	"github.com/kaifufi/airswap-rfq-sdk-go/chain"
	"github.com/kaifufi/airswap-rfq-sdk-go/log"
)

// DefaultTimeout bounds every maker call.
const DefaultTimeout = 10 * time.Second

// Config holds the settings shared by every maker client of one session.
type Config struct {
	ChainID      uint64
	SwapContract common.Address
	Timeout      time.Duration

	// HTTPClient overrides the client used for http(s) makers. The caller
	// keeps ownership of it.
	HTTPClient *http.Client
	// Dialer overrides the dialer used for ws(s) makers.
	Dialer *websocket.Dialer
	Logger log.Logger
}

// ConfigFromChain fills the chain id and swap contract from a registry config.
func ConfigFromChain(cfg chain.Config) Config {
	return Config{
		ChainID:      uint64(cfg.ChainID),
		SwapContract: cfg.SwapContract,
		Timeout:      DefaultTimeout,
	}
}

func (c Config) withDefaults() Config {
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.Dialer == nil {
		c.Dialer = websocket.DefaultDialer
	}
	c.Logger = log.OrNop(c.Logger)
	return c
}
