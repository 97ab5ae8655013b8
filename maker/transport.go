package maker

import (
	"context"

	"github.com/kaifufi/airswap-rfq-sdk-go/jsonrpc"
)

// transport carries one JSON-RPC request to a maker and returns the raw
// reply body.
type transport interface {
	Prepare(ctx context.Context) error
	RoundTrip(ctx context.Context, req jsonrpc.Request) ([]byte, error)
	Close() error
}
