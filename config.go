package airswap

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/kaifufi/airswap-rfq-sdk-go/chain"
	"github.com/kaifufi/airswap-rfq-sdk-go/log"
	"github.com/kaifufi/airswap-rfq-sdk-go/maker"
)

const (
	DefaultChainID         = chain.ChainIDMainnet
	DefaultProtocolVersion = chain.V4
)

// ClientConfig holds configuration for creating a Client
type ClientConfig struct {
	RPCURL  string
	ChainID chain.ChainID
	// ProtocolVersion picks the registry and swap deployment. The zero
	// value is chain.Legacy.
	ProtocolVersion chain.ProtocolVersion
	// SenderWallet is the taker address sent to makers in order requests.
	SenderWallet common.Address
	MakerTimeout time.Duration
	// MaxConcurrency bounds parallel registry lookups and maker calls.
	// Zero leaves them unbounded.
	MaxConcurrency int64
	MinimumAmount  decimal.Decimal

	LogFormat string
	LogLevel  string
	// Logger overrides LogFormat and LogLevel when set.
	Logger log.Logger
}

func (c ClientConfig) withDefaults() ClientConfig {
	if c.ChainID == 0 {
		c.ChainID = DefaultChainID
	}
	if c.MakerTimeout <= 0 {
		c.MakerTimeout = maker.DefaultTimeout
	}
	if c.MaxConcurrency < 0 {
		c.MaxConcurrency = 0
	}
	if c.LogFormat == "" {
		c.LogFormat = log.LogFormatPlain
	}
	if c.LogLevel == "" {
		c.LogLevel = log.LogLevelInfo
	}
	return c
}

func (c ClientConfig) logger() (log.Logger, error) {
	if c.Logger != nil {
		return c.Logger, nil
	}
	return log.NewDefaultLogger(c.LogFormat, c.LogLevel)
}

var envOnce sync.Once

func ensureEnvLoaded() {
	envOnce.Do(func() {
		if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "warning: failed to load .env file: %v\n", err)
		}
	})
}

// LoadConfigFromEnv builds a ClientConfig from the process environment,
// after loading a .env file from the working directory if there is one.
func LoadConfigFromEnv() (ClientConfig, error) {
	ensureEnvLoaded()

	chainID, err := u64env("RFQ_CHAIN_ID", uint64(DefaultChainID))
	if err != nil {
		return ClientConfig{}, err
	}
	makerTimeout, err := durationEnv("RFQ_MAKER_TIMEOUT", maker.DefaultTimeout)
	if err != nil {
		return ClientConfig{}, err
	}
	maxConcurrency, err := i64env("RFQ_MAX_CONCURRENCY", 0)
	if err != nil {
		return ClientConfig{}, err
	}

	cfg := ClientConfig{
		RPCURL:         getenv("RFQ_RPC_URL", os.Getenv("ETH_RPC_URL")),
		ChainID:        chain.ChainID(chainID),
		MakerTimeout:   makerTimeout,
		MaxConcurrency: maxConcurrency,
		LogFormat:      getenv("RFQ_LOG_FORMAT", log.LogFormatPlain),
		LogLevel:       getenv("RFQ_LOG_LEVEL", log.LogLevelInfo),
	}
	if cfg.RPCURL == "" {
		return ClientConfig{}, &InvalidParamError{Message: "RFQ_RPC_URL or ETH_RPC_URL must be set"}
	}

	version, err := chain.ParseProtocolVersion(getenv("RFQ_PROTOCOL_VERSION", DefaultProtocolVersion.String()))
	if err != nil {
		return ClientConfig{}, &InvalidParamError{Message: err.Error()}
	}
	cfg.ProtocolVersion = version

	if v := getenv("RFQ_SENDER_WALLET", ""); v != "" {
		if !common.IsHexAddress(v) {
			return ClientConfig{}, &InvalidParamError{Message: fmt.Sprintf("RFQ_SENDER_WALLET is not an address: %q", v)}
		}
		cfg.SenderWallet = common.HexToAddress(v)
	}

	if v := getenv("RFQ_MINIMUM_AMOUNT", ""); v != "" {
		minimum, err := decimal.NewFromString(v)
		if err != nil || minimum.IsNegative() {
			return ClientConfig{}, &InvalidParamError{Message: fmt.Sprintf("RFQ_MINIMUM_AMOUNT must be a non-negative decimal, got: %q", v)}
		}
		cfg.MinimumAmount = minimum
	}
	return cfg, nil
}

func getenv(k, def string) string {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	return v
}

// u64env reads a positive integer. An unset variable yields def; a set but
// malformed one is an error.
func u64env(k string, def uint64) (uint64, error) {
	v := getenv(k, "")
	if v == "" {
		return def, nil
	}
	x, err := strconv.ParseUint(v, 10, 64)
	if err != nil || x == 0 {
		return 0, &InvalidParamError{Message: fmt.Sprintf("%s must be a positive integer, got: %q", k, v)}
	}
	return x, nil
}

func i64env(k string, def int64) (int64, error) {
	v := getenv(k, "")
	if v == "" {
		return def, nil
	}
	x, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, &InvalidParamError{Message: fmt.Sprintf("%s must be an integer, got: %q", k, v)}
	}
	return x, nil
}

// durationEnv accepts a Go duration ("1500ms") or whole seconds.
func durationEnv(k string, def time.Duration) (time.Duration, error) {
	v := getenv(k, "")
	if v == "" {
		return def, nil
	}
	if dur, err := time.ParseDuration(v); err == nil && dur > 0 {
		return dur, nil
	}
	if secs, err := strconv.ParseUint(v, 10, 32); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second, nil
	}
	return 0, &InvalidParamError{Message: fmt.Sprintf("%s must be a positive duration, got: %q", k, v)}
}
