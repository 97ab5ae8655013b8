package maker

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/kaifufi/airswap-rfq-sdk-go/jsonrpc"
)

var (
	// ErrEmptyResponse is returned for HTTP 204 replies.
	ErrEmptyResponse = errors.New("maker returned an empty response")

	// ErrRateLimitMet is matched by every *RateLimitError.
	ErrRateLimitMet = errors.New("maker rate limit met")

	// ErrPairNotSupported is returned before any request is sent when the
	// maker has not staked for both tokens of an order.
	ErrPairNotSupported = errors.New("pair not supported by maker")

	// ErrUnsupportedURL is returned for maker URLs with no usable transport.
	ErrUnsupportedURL = errors.New("unsupported maker URL")
)

// ServerError reports an HTTP status of 400 or above.
type ServerError struct {
	StatusCode int
	Body       string
}

func (e *ServerError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("maker server error: HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("maker server error: HTTP %d: %s", e.StatusCode, e.Body)
}

// RateLimitError is a remote error carrying jsonrpc.CodeRateLimited.
type RateLimitError struct {
	Remote *jsonrpc.RemoteError
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("%s: %s", ErrRateLimitMet, e.Remote)
}

func (e *RateLimitError) Is(target error) bool { return target == ErrRateLimitMet }

func (e *RateLimitError) Unwrap() error { return e.Remote }

// TransportError wraps a failure to reach a maker or read its reply.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("maker %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Timeout reports whether the call ran out of time.
func (e *TransportError) Timeout() bool {
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(e.Err, &netErr) && netErr.Timeout()
}

// remoteError maps a maker error object to the error callers match on.
func remoteError(e *jsonrpc.RemoteError) error {
	if e.RateLimited() {
		return &RateLimitError{Remote: e}
	}
	return e
}
