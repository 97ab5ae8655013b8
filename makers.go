package airswap

import (
	"net/url"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"github.com/kaifufi/airswap-rfq-sdk-go/chain"
)

// knownMakerNames labels makers by registry account. Read-only.
var knownMakerNames = map[common.Address]string{
	common.HexToAddress("0xbb289bc97591f70d8216462df40ed713011b968a"): "alphalab",
}

// MakerName returns a display name for m: its known label, else its URL host.
func MakerName(m chain.Maker) string {
	if name, ok := knownMakerNames[m.Address]; ok {
		return name
	}
	if u, err := url.Parse(m.URL); err == nil && u.Host != "" {
		return strings.TrimPrefix(u.Hostname(), "www.")
	}
	return m.URL
}
