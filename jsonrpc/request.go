package jsonrpc

import (
	"errors"
	"strconv"
	"sync/atomic"
	"time"
)

const Version = "2.0"

// Request is a JSON-RPC 2.0 call to a maker.
type Request struct {
	JSONRPC string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  Params `json:"params"`
	ID      string `json:"id"`
}

// NewRequest wraps params with the method it implies.
func NewRequest(id string, params Params) (Request, error) {
	if params == nil {
		return Request{}, errors.New("jsonrpc: nil params")
	}
	return Request{
		JSONRPC: Version,
		Method:  params.Method(),
		Params:  params,
		ID:      id,
	}, nil
}

// IDGenerator issues request ids from the millisecond wall clock. Ids from
// one generator are strictly increasing even when calls share a
// millisecond or the clock steps back.
type IDGenerator struct {
	last atomic.Int64
	now  func() time.Time
}

// NewIDGenerator returns a generator backed by the wall clock.
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{now: time.Now}
}

// Next returns the next request ID.
func (g *IDGenerator) Next() string {
	now := time.Now
	if g.now != nil {
		now = g.now
	}
	ms := now().UnixMilli()
	for {
		last := g.last.Load()
		next := ms
		if next <= last {
			next = last + 1
		}
		if g.last.CompareAndSwap(last, next) {
			return strconv.FormatInt(next, 10)
		}
	}
}
