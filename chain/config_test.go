package chain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupConfigSupported(t *testing.T) {
	for key := range DefaultConfigs {
		key := key
		t.Run(fmt.Sprintf("%d/%s", key.chainID, key.version), func(t *testing.T) {
			cfg, err := LookupConfig(key.chainID, key.version)
			require.NoError(t, err)
			assert.NotEqual(t, common.Address{}, cfg.RegistryAddress)
			assert.NotEqual(t, common.Address{}, cfg.SwapContract)
			assert.NotZero(t, cfg.FromBlock)
			assert.Equal(t, key.chainID, cfg.ChainID)
			assert.Equal(t, key.version, cfg.Version)

			again, err := LookupConfig(key.chainID, key.version)
			require.NoError(t, err)
			assert.Equal(t, cfg, again)
		})
	}
}

func TestLookupConfigUnsupported(t *testing.T) {
	testCases := map[string]struct {
		chainID ChainID
		version ProtocolVersion
	}{
		"unknown chain":            {chainID: 56, version: V4},
		"legacy on arbitrum":       {chainID: ChainIDArbitrum, version: Legacy},
		"unknown protocol version": {chainID: ChainIDMainnet, version: ProtocolVersion(7)},
	}

	for name, tc := range testCases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			cfg, err := LookupConfig(tc.chainID, tc.version)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrUnsupportedConfig))

			var cfgErr *ConfigError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, tc.chainID, cfgErr.ChainID)
			assert.Equal(t, Config{}, cfg)
		})
	}
}

func TestSupportedConfigs(t *testing.T) {
	assert.Len(t, SupportedConfigs(), len(DefaultConfigs))
}

func TestParseProtocolVersion(t *testing.T) {
	for _, v := range []ProtocolVersion{Legacy, V4, V5} {
		got, err := ParseProtocolVersion(v.String())
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}

	got, err := ParseProtocolVersion(" V4 ")
	require.NoError(t, err)
	assert.Equal(t, V4, got)

	_, err = ParseProtocolVersion("v3")
	require.Error(t, err)
}
