package chain

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// ChainID identifies an EVM network.
type ChainID uint64

const (
	ChainIDMainnet  ChainID = 1
	ChainIDPolygon  ChainID = 137
	ChainIDArbitrum ChainID = 42161
)

// ProtocolVersion selects the registry ABI and swap contract generation.
type ProtocolVersion int

const (
	Legacy ProtocolVersion = iota
	V4
	V5
)

func (v ProtocolVersion) String() string {
	switch v {
	case Legacy:
		return "legacy"
	case V4:
		return "v4"
	case V5:
		return "v5"
	default:
		return fmt.Sprintf("ProtocolVersion(%d)", int(v))
	}
}

// ParseProtocolVersion accepts "legacy", "v4" or "v5" (case-insensitive).
func ParseProtocolVersion(s string) (ProtocolVersion, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "legacy":
		return Legacy, nil
	case "v4":
		return V4, nil
	case "v5":
		return V5, nil
	}
	return 0, fmt.Errorf("unknown protocol version %q", s)
}

// Config holds the registry and swap contract settings for one
// (chain, version) combination.
type Config struct {
	ChainID         ChainID
	Version         ProtocolVersion
	RegistryAddress common.Address
	FromBlock       uint64
	SwapContract    common.Address
}

type configKey struct {
	chainID ChainID
	version ProtocolVersion
}

var v4RegistryAddress = common.HexToAddress("0xe30E9c001dEFb5F0B04fD21662454A2427F4257A")

// DefaultConfigs maps supported (chain, version) pairs to their deployments.
// It is read-only after package initialization.
var DefaultConfigs = map[configKey]Config{
	{ChainIDMainnet, Legacy}: {
		RegistryAddress: common.HexToAddress("0x8F9DA6d38939411340b19401E8c54Ea1f51B8f95"),
		FromBlock:       12782029,
		SwapContract:    common.HexToAddress("0x522d6f36c95a1b6509a14272c17747bbb582f2a6"),
	},
	{ChainIDPolygon, Legacy}: {
		RegistryAddress: common.HexToAddress("0x9F11691FA842856E44586380b27Ac331ab7De93d"),
		FromBlock:       26036024,
		SwapContract:    common.HexToAddress("0x6713c23261c8a9b7d84dd6114e78d9a7b9863c1a"),
	},
	{ChainIDMainnet, V4}: {
		RegistryAddress: v4RegistryAddress,
		FromBlock:       12782029,
		SwapContract:    common.HexToAddress("0xd82FA167727a4dc6D6F55830A2c47aBbB4b3a0F8"),
	},
	{ChainIDPolygon, V4}: {
		RegistryAddress: v4RegistryAddress,
		FromBlock:       53161197,
		SwapContract:    common.HexToAddress("0xd82FA167727a4dc6D6F55830A2c47aBbB4b3a0F8"),
	},
	{ChainIDArbitrum, V4}: {
		RegistryAddress: v4RegistryAddress,
		FromBlock:       178078567,
		SwapContract:    common.HexToAddress("0xd82FA167727a4dc6D6F55830A2c47aBbB4b3a0F8"),
	},
	{ChainIDMainnet, V5}: {
		RegistryAddress: v4RegistryAddress,
		FromBlock:       12782029,
		SwapContract:    common.HexToAddress("0xD82E10B9A4107939e55fCCa9B53A9ede6CF2fC46"),
	},
	{ChainIDPolygon, V5}: {
		RegistryAddress: v4RegistryAddress,
		FromBlock:       53161197,
		SwapContract:    common.HexToAddress("0xD82E10B9A4107939e55fCCa9B53A9ede6CF2fC46"),
	},
	{ChainIDArbitrum, V5}: {
		RegistryAddress: v4RegistryAddress,
		FromBlock:       178078567,
		SwapContract:    common.HexToAddress("0xD82E10B9A4107939e55fCCa9B53A9ede6CF2fC46"),
	},
}

// LookupConfig resolves the deployment for chainID and version. Unlisted
// combinations return a *ConfigError.
func LookupConfig(chainID ChainID, version ProtocolVersion) (Config, error) {
	cfg, ok := DefaultConfigs[configKey{chainID, version}]
	if !ok {
		return Config{}, &ConfigError{ChainID: chainID, Version: version}
	}
	cfg.ChainID = chainID
	cfg.Version = version
	return cfg, nil
}

// SupportedConfigs lists every (chain, version) pair LookupConfig resolves.
func SupportedConfigs() []Config {
	out := make([]Config, 0, len(DefaultConfigs))
	for k := range DefaultConfigs {
		cfg, _ := LookupConfig(k.chainID, k.version)
		out = append(out, cfg)
	}
	return out
}
