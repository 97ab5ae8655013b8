package jsonrpc

import (
	"encoding/json"
	"errors"
	"fmt"
)

// CodeRateLimited is the error code makers use when a caller exceeded its
// request allowance.
const CodeRateLimited = -33605

// ErrWrongVariant is returned when a result decodes to a different shape
// than the call expects.
var ErrWrongVariant = errors.New("jsonrpc: unexpected result variant")

// RemoteError is a JSON-RPC error object returned by a maker.
type RemoteError struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

func (e *RemoteError) Error() string {
	if present(e.Data) {
		return fmt.Sprintf("%s (%d): %s", e.Message, e.Code, string(e.Data))
	}
	return fmt.Sprintf("%s (%d)", e.Message, e.Code)
}

// RateLimited reports whether the maker rejected the call for rate limiting.
func (e *RemoteError) RateLimited() bool {
	return e.Code == CodeRateLimited
}

// DecodeError reports a body that is not valid JSON or a result that
// matches no known shape.
type DecodeError struct {
	Body string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode JSON-RPC response: %v (body: %s)", e.Err, e.Body)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// UnknownResponseError carries a well-formed JSON body that is neither a
// result nor an error response.
type UnknownResponseError struct {
	Raw json.RawMessage
}

func (e *UnknownResponseError) Error() string {
	return "unrecognized JSON-RPC response: " + snippet(e.Raw)
}

func decodeRemoteError(data []byte) (*RemoteError, error) {
	var raw struct {
		Code    *int            `json:"code"`
		Message *string         `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if raw.Code == nil || raw.Message == nil {
		return nil, errors.New("error object needs code and message")
	}
	return &RemoteError{Code: *raw.Code, Message: *raw.Message, Data: raw.Data}, nil
}

func present(raw json.RawMessage) bool {
	return len(raw) > 0 && string(raw) != "null"
}

func snippet(b []byte) string {
	s := string(b)
	if len(s) > 200 {
		s = s[:200] + "..."
	}
	return s
}
