package maker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/kaifufi/airswap-rfq-sdk-go/jsonrpc"
	"github.com/kaifufi/airswap-rfq-sdk-go/log"
)

// maxBodySize caps how much of a maker reply is read.
const maxBodySize = 4 << 20

// httpTransport POSTs requests to an http(s) maker.
type httpTransport struct {
	url    string
	client *http.Client
	owned  bool
	logger log.Logger
}

func newHTTPTransport(url string, cfg Config) *httpTransport {
	t := &httpTransport{
		url:    url,
		client: cfg.HTTPClient,
		logger: cfg.Logger,
	}
	if t.client == nil {
		t.client = &http.Client{
			Timeout:   cfg.Timeout,
			Transport: http.DefaultTransport.(*http.Transport).Clone(),
		}
		t.owned = true
	}
	return t
}

func (t *httpTransport) Prepare(ctx context.Context) error {
	return ctx.Err()
}

func (t *httpTransport) RoundTrip(ctx context.Context, req jsonrpc.Request) ([]byte, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, t.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := t.client.Do(httpReq)
	if err != nil {
		return nil, &TransportError{URL: t.url, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNoContent:
		return nil, ErrEmptyResponse
	case resp.StatusCode >= http.StatusBadRequest:
		// The body is only context; a failed read still reports the status.
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
		return nil, &ServerError{StatusCode: resp.StatusCode, Body: truncate(string(respBody))}
	}

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, &TransportError{URL: t.url, Err: fmt.Errorf("failed to read response body: %w", err)}
	}
	return respBody, nil
}

func (t *httpTransport) Close() error {
	if t.owned {
		t.client.CloseIdleConnections()
	}
	return nil
}

func truncate(s string) string {
	if len(s) > 200 {
		return s[:200] + "..."
	}
	return s
}
