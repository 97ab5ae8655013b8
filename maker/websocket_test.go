package maker

import (
	"context"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/kaifufi/airswap-rfq-sdk-go/chain"
	"github.com/kaifufi/airswap-rfq-sdk-go/jsonrpc"
)

// newWSMakerServer answers each JSON-RPC message on the socket with reply.
func newWSMakerServer(t *testing.T, reply func(req recordedRequest) string) (*httptest.Server, *sync.WaitGroup) {
	t.Helper()
	upgrader := websocket.Upgrader{}
	var handlers sync.WaitGroup
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		handlers.Add(1)
		defer handlers.Done()
		defer conn.Close()
		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				return
			}
			var req recordedRequest
			if err := json.Unmarshal(data, &req); err != nil {
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, []byte(reply(req))); err != nil {
				return
			}
		}
	}))
	return srv, &handlers
}

func TestWebsocketTransport(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	srv, handlers := newWSMakerServer(t, func(req recordedRequest) string {
		switch req.Method {
		case jsonrpc.MethodGetSignerSideOrderERC20:
			return resultBody(req.ID, orderJSON)
		case jsonrpc.MethodGetProtocols:
			return errorBody(req.ID, jsonrpc.CodeRateLimited, "rate limited")
		default:
			return resultBody(req.ID, `[]`)
		}
	})
	defer func() {
		srv.Close()
		handlers.Wait()
	}()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	c, err := NewClient(chain.MakerWithSupportedTokens{
		Maker:           chain.Maker{URL: url},
		SupportedTokens: []common.Address{usdc, weth},
	}, Config{ChainID: 1, SwapContract: swapV5})
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, c.Prepare(ctx))

	quote, err := c.GetSellQuote(ctx, taker, usdc, weth, big.NewInt(1_000_000_000))
	require.NoError(t, err)
	assert.Equal(t, "1000000000", quote.SenderAmount.String())

	pricing, err := c.GetAllPricing(ctx)
	require.NoError(t, err)
	assert.Empty(t, pricing)

	_, err = c.GetProtocols(ctx)
	require.ErrorIs(t, err, ErrRateLimitMet)

	require.NoError(t, c.Close())

	_, err = c.GetAllPricing(ctx)
	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
}

func TestWebsocketDialFailure(t *testing.T) {
	c, err := NewClient(chain.MakerWithSupportedTokens{
		Maker: chain.Maker{URL: "ws://127.0.0.1:1"},
	}, Config{})
	require.NoError(t, err)
	defer c.Close()

	_, err = c.GetAllPricing(context.Background())
	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
}
