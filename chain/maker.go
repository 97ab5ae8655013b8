package chain

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// Maker is a registered RFQ server.
type Maker struct {
	Address common.Address `json:"address"`
	URL     string         `json:"url"`
}

// MakerWithSupportedTokens pairs a maker with the tokens it has staked for.
type MakerWithSupportedTokens struct {
	Maker
	SupportedTokens []common.Address `json:"supportedTokens"`
}

// Supports reports whether every token is in the maker's supported set.
func (m MakerWithSupportedTokens) Supports(tokens ...common.Address) bool {
	for _, t := range tokens {
		found := false
		for _, s := range m.SupportedTokens {
			if s == t {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// normalizeURL strips the quote characters some makers registered with.
func normalizeURL(url string) string {
	return strings.ReplaceAll(url, `"`, "")
}
