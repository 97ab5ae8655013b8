package airswap

import (
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaifufi/airswap-rfq-sdk-go/chain"
	"github.com/kaifufi/airswap-rfq-sdk-go/maker"
)

var configEnvKeys = []string{
	"RFQ_RPC_URL", "ETH_RPC_URL", "RFQ_CHAIN_ID", "RFQ_PROTOCOL_VERSION",
	"RFQ_SENDER_WALLET", "RFQ_MAKER_TIMEOUT", "RFQ_MAX_CONCURRENCY",
	"RFQ_MINIMUM_AMOUNT", "RFQ_LOG_FORMAT", "RFQ_LOG_LEVEL",
}

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, k := range configEnvKeys {
		t.Setenv(k, "")
	}
}

func TestLoadConfigFromEnvDefaults(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("ETH_RPC_URL", "http://localhost:8545")

	cfg, err := LoadConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8545", cfg.RPCURL)
	assert.Equal(t, chain.ChainIDMainnet, cfg.ChainID)
	assert.Equal(t, chain.V4, cfg.ProtocolVersion)
	assert.Equal(t, maker.DefaultTimeout, cfg.MakerTimeout)
	assert.Zero(t, cfg.MaxConcurrency)
	assert.True(t, cfg.MinimumAmount.IsZero())
	assert.Equal(t, "plain", cfg.LogFormat)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfigFromEnvOverrides(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("ETH_RPC_URL", "http://ignored")
	t.Setenv("RFQ_RPC_URL", "https://polygon-rpc.example")
	t.Setenv("RFQ_CHAIN_ID", "137")
	t.Setenv("RFQ_PROTOCOL_VERSION", "v5")
	t.Setenv("RFQ_SENDER_WALLET", "0x00000000000000000000000000000000000000aa")
	t.Setenv("RFQ_MAKER_TIMEOUT", "1500ms")
	t.Setenv("RFQ_MAX_CONCURRENCY", "4")
	t.Setenv("RFQ_MINIMUM_AMOUNT", "2.5")
	t.Setenv("RFQ_LOG_FORMAT", "json")
	t.Setenv("RFQ_LOG_LEVEL", "debug")

	cfg, err := LoadConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "https://polygon-rpc.example", cfg.RPCURL)
	assert.Equal(t, chain.ChainIDPolygon, cfg.ChainID)
	assert.Equal(t, chain.V5, cfg.ProtocolVersion)
	assert.Equal(t, common.HexToAddress("0xaa"), cfg.SenderWallet)
	assert.Equal(t, 1500*time.Millisecond, cfg.MakerTimeout)
	assert.EqualValues(t, 4, cfg.MaxConcurrency)
	assert.Equal(t, "2.5", cfg.MinimumAmount.String())
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfigFromEnvSecondsTimeout(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("RFQ_RPC_URL", "http://localhost:8545")
	t.Setenv("RFQ_MAKER_TIMEOUT", "3")

	cfg, err := LoadConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, cfg.MakerTimeout)
}

func TestLoadConfigFromEnvErrors(t *testing.T) {
	testCases := map[string]map[string]string{
		"missing rpc":      {},
		"bad version":      {"RFQ_RPC_URL": "http://x", "RFQ_PROTOCOL_VERSION": "v9"},
		"bad wallet":       {"RFQ_RPC_URL": "http://x", "RFQ_SENDER_WALLET": "alice"},
		"negative minimum": {"RFQ_RPC_URL": "http://x", "RFQ_MINIMUM_AMOUNT": "-1"},
		"bad minimum":      {"RFQ_RPC_URL": "http://x", "RFQ_MINIMUM_AMOUNT": "ten"},
		"typo chain id":    {"RFQ_RPC_URL": "http://x", "RFQ_CHAIN_ID": "13x7"},
		"zero chain id":    {"RFQ_RPC_URL": "http://x", "RFQ_CHAIN_ID": "0"},
		"bad timeout":      {"RFQ_RPC_URL": "http://x", "RFQ_MAKER_TIMEOUT": "soon"},
		"bad concurrency":  {"RFQ_RPC_URL": "http://x", "RFQ_MAX_CONCURRENCY": "4x"},
	}

	for name, env := range testCases {
		env := env
		t.Run(name, func(t *testing.T) {
			clearConfigEnv(t)
			for k, v := range env {
				t.Setenv(k, v)
			}
			_, err := LoadConfigFromEnv()
			assert.ErrorIs(t, err, ErrInvalidParam)
		})
	}
}

func TestClientConfigDefaults(t *testing.T) {
	cfg := ClientConfig{MaxConcurrency: -3}.withDefaults()
	assert.Equal(t, DefaultChainID, cfg.ChainID)
	assert.Equal(t, chain.Legacy, cfg.ProtocolVersion)
	assert.Equal(t, maker.DefaultTimeout, cfg.MakerTimeout)
	assert.Zero(t, cfg.MaxConcurrency)
	assert.Equal(t, "plain", cfg.LogFormat)
}
