package jsonrpc

import (
	"encoding/json"
	"errors"
	"strings"
)

type ResponseKind int

const (
	KindResult ResponseKind = iota
	KindError
	KindUnknown
)

func (k ResponseKind) String() string {
	switch k {
	case KindResult:
		return "result"
	case KindError:
		return "error"
	default:
		return "unknown"
	}
}

// Response is a decoded maker reply. Exactly one of Result and Error is set
// for KindResult and KindError. Raw always holds the body.
type Response struct {
	JSONRPC string
	ID      string
	Kind    ResponseKind
	Result  *Result
	Error   *RemoteError
	Raw     json.RawMessage
}

// DecodeResponse classifies body with a fixed priority: a "result" member
// that decodes to a known result shape wins, then an "error" member with a
// code and message, and anything else well-formed is KindUnknown. Only
// invalid JSON is an error.
func DecodeResponse(body []byte) (*Response, error) {
	if !json.Valid(body) {
		return nil, &DecodeError{Body: snippet(body), Err: errors.New("invalid JSON")}
	}
	resp := &Response{
		Kind: KindUnknown,
		Raw:  append(json.RawMessage(nil), body...),
	}

	var envelope struct {
		JSONRPC string          `json:"jsonrpc"`
		ID      json.RawMessage `json:"id"`
		Result  json.RawMessage `json:"result"`
		Error   json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return resp, nil
	}
	resp.JSONRPC = envelope.JSONRPC
	resp.ID = decodeID(envelope.ID)

	if present(envelope.Result) {
		if result, err := DecodeResult(envelope.Result); err == nil {
			resp.Kind = KindResult
			resp.Result = result
			return resp, nil
		}
	}
	if present(envelope.Error) {
		if remote, err := decodeRemoteError(envelope.Error); err == nil {
			resp.Kind = KindError
			resp.Error = remote
			return resp, nil
		}
	}
	return resp, nil
}

func (r *Response) UnmarshalJSON(data []byte) error {
	decoded, err := DecodeResponse(data)
	if err != nil {
		return err
	}
	*r = *decoded
	return nil
}

// Err returns the failure carried by a non-result response, or nil.
func (r *Response) Err() error {
	switch r.Kind {
	case KindResult:
		return nil
	case KindError:
		return r.Error
	default:
		return &UnknownResponseError{Raw: r.Raw}
	}
}

// PeekID returns the id member of a response body without classifying it.
func PeekID(body []byte) string {
	var envelope struct {
		ID json.RawMessage `json:"id"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return ""
	}
	return decodeID(envelope.ID)
}

func decodeID(raw json.RawMessage) string {
	if !present(raw) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return strings.TrimSpace(string(raw))
}
