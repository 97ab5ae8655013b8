package chain

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// Legacy registry: stakerURLs / getSupportedTokens / SetURL
const legacyRegistryABIJSON = `[
	{
		"constant": true,
		"inputs": [{"name": "", "type": "address"}],
		"name": "stakerURLs",
		"outputs": [{"name": "", "type": "string"}],
		"stateMutability": "view",
		"type": "function"
	},
	{
		"constant": true,
		"inputs": [{"name": "staker", "type": "address"}],
		"name": "getSupportedTokens",
		"outputs": [{"name": "tokenList", "type": "address[]"}],
		"stateMutability": "view",
		"type": "function"
	},
	{
		"anonymous": false,
		"inputs": [
			{"indexed": true, "name": "account", "type": "address"},
			{"indexed": false, "name": "url", "type": "string"}
		],
		"name": "SetURL",
		"type": "event"
	}
]`

// V4 registry, also deployed for V5 swap contracts.
const v4RegistryABIJSON = `[
	{
		"inputs": [{"name": "", "type": "address"}],
		"name": "stakerServerURLs",
		"outputs": [{"name": "", "type": "string"}],
		"stateMutability": "view",
		"type": "function"
	},
	{
		"inputs": [{"name": "staker", "type": "address"}],
		"name": "getTokensForStaker",
		"outputs": [{"name": "tokenList", "type": "address[]"}],
		"stateMutability": "view",
		"type": "function"
	},
	{
		"anonymous": false,
		"inputs": [
			{"indexed": true, "name": "account", "type": "address"},
			{"indexed": false, "name": "url", "type": "string"}
		],
		"name": "SetServerURL",
		"type": "event"
	}
]`

const erc20ABIJSON = `[
	{
		"constant": true,
		"inputs": [],
		"name": "decimals",
		"outputs": [{"name": "", "type": "uint8"}],
		"type": "function"
	},
	{
		"constant": true,
		"inputs": [],
		"name": "symbol",
		"outputs": [{"name": "", "type": "string"}],
		"type": "function"
	}
]`

var (
	legacyRegistryABI = mustParseABI("legacy registry", legacyRegistryABIJSON)
	v4RegistryABI     = mustParseABI("v4 registry", v4RegistryABIJSON)
	erc20ABI          = mustParseABI("ERC20", erc20ABIJSON)
)

func mustParseABI(name, raw string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(raw))
	if err != nil {
		panic("failed to parse " + name + " ABI: " + err.Error())
	}
	return parsed
}

// registryMethods names the version-specific selectors for the logical
// registry operations.
type registryMethods struct {
	abi       abi.ABI
	makerURL  string
	tokens    string
	setURLEvt string
}

var (
	legacyMethods = registryMethods{
		abi:       legacyRegistryABI,
		makerURL:  "stakerURLs",
		tokens:    "getSupportedTokens",
		setURLEvt: "SetURL",
	}
	v4Methods = registryMethods{
		abi:       v4RegistryABI,
		makerURL:  "stakerServerURLs",
		tokens:    "getTokensForStaker",
		setURLEvt: "SetServerURL",
	}
)

// GetRegistryABI returns the parsed registry ABI for version.
func GetRegistryABI(version ProtocolVersion) abi.ABI {
	if version == Legacy {
		return legacyRegistryABI
	}
	return v4RegistryABI
}

// GetERC20ABI returns the parsed ERC20 metadata ABI.
func GetERC20ABI() abi.ABI {
	return erc20ABI
}
