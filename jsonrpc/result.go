package jsonrpc

import (
	"encoding/json"
	"errors"
)

type ResultKind int

const (
	ResultProtocols ResultKind = iota
	ResultOrder
	ResultPricing
	ResultError
)

func (k ResultKind) String() string {
	switch k {
	case ResultProtocols:
		return "protocols"
	case ResultOrder:
		return "order"
	case ResultPricing:
		return "pricing"
	default:
		return "error"
	}
}

// Result is the decoded "result" member of a maker response.
type Result struct {
	Kind      ResultKind
	Protocols []Protocol
	Order     *OrderQuote
	Pricing   []Pricing
	Error     *RemoteError
}

// DecodeResult tries each result shape in turn: protocols, order, pricing,
// then an error object placed inside the result. An empty array therefore
// decodes as protocols; AsPricing accepts it as empty pricing.
func DecodeResult(data json.RawMessage) (*Result, error) {
	var protocols []Protocol
	if err := json.Unmarshal(data, &protocols); err == nil {
		return &Result{Kind: ResultProtocols, Protocols: protocols}, nil
	}

	var order OrderQuote
	if err := json.Unmarshal(data, &order); err == nil {
		return &Result{Kind: ResultOrder, Order: &order}, nil
	}

	var pricing []Pricing
	if err := json.Unmarshal(data, &pricing); err == nil {
		return &Result{Kind: ResultPricing, Pricing: pricing}, nil
	}

	if remote, err := decodeRemoteError(data); err == nil {
		return &Result{Kind: ResultError, Error: remote}, nil
	}

	return nil, &DecodeError{Body: snippet(data), Err: errors.New("result matches no known shape")}
}

func (r *Result) AsProtocols() ([]Protocol, error) {
	switch r.Kind {
	case ResultProtocols:
		return r.Protocols, nil
	case ResultError:
		return nil, r.Error
	}
	return nil, ErrWrongVariant
}

func (r *Result) AsOrder() (*OrderQuote, error) {
	switch r.Kind {
	case ResultOrder:
		return r.Order, nil
	case ResultError:
		return nil, r.Error
	}
	return nil, ErrWrongVariant
}

func (r *Result) AsPricing() ([]Pricing, error) {
	switch r.Kind {
	case ResultPricing:
		return r.Pricing, nil
	case ResultProtocols:
		if len(r.Protocols) == 0 {
			return []Pricing{}, nil
		}
	case ResultError:
		return nil, r.Error
	}
	return nil, ErrWrongVariant
}
