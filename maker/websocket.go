package maker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/kaifufi/airswap-rfq-sdk-go/jsonrpc"
	"github.com/kaifufi/airswap-rfq-sdk-go/log"
)

var errConnClosed = errors.New("websocket connection closed")

// wsTransport speaks JSON-RPC over a websocket. The connection is dialed
// on first use and redialed after it drops; replies are matched to callers
// by request id.
type wsTransport struct {
	url    string
	dialer *websocket.Dialer
	logger log.Logger

	mu       sync.Mutex
	conn     *websocket.Conn
	done     chan struct{}
	readErr  error
	pending  map[string]chan []byte
	closed   bool
	loopDone sync.WaitGroup

	writeMu sync.Mutex
}

func newWSTransport(url string, cfg Config) *wsTransport {
	return &wsTransport{
		url:     url,
		dialer:  cfg.Dialer,
		logger:  cfg.Logger,
		pending: make(map[string]chan []byte),
	}
}

// Prepare dials the maker if no connection is open.
func (t *wsTransport) Prepare(ctx context.Context) error {
	_, _, err := t.connect(ctx)
	return err
}

func (t *wsTransport) connect(ctx context.Context) (*websocket.Conn, chan struct{}, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return nil, nil, &TransportError{URL: t.url, Err: errConnClosed}
	}
	if t.conn != nil {
		return t.conn, t.done, nil
	}

	conn, _, err := t.dialer.DialContext(ctx, t.url, nil)
	if err != nil {
		return nil, nil, &TransportError{URL: t.url, Err: fmt.Errorf("failed to connect to WebSocket: %w", err)}
	}

	t.conn = conn
	t.done = make(chan struct{})
	t.readErr = nil
	t.loopDone.Add(1)
	go t.readLoop(conn, t.done)

	t.logger.Debug("websocket connected", "url", t.url)
	return conn, t.done, nil
}

func (t *wsTransport) RoundTrip(ctx context.Context, req jsonrpc.Request) ([]byte, error) {
	conn, done, err := t.connect(ctx)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal message: %w", err)
	}

	reply := make(chan []byte, 1)
	t.mu.Lock()
	t.pending[req.ID] = reply
	t.mu.Unlock()
	defer func() {
		t.mu.Lock()
		delete(t.pending, req.ID)
		t.mu.Unlock()
	}()

	t.writeMu.Lock()
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetWriteDeadline(deadline)
	} else {
		_ = conn.SetWriteDeadline(time.Time{})
	}
	err = conn.WriteMessage(websocket.TextMessage, data)
	t.writeMu.Unlock()
	if err != nil {
		return nil, &TransportError{URL: t.url, Err: fmt.Errorf("failed to send message: %w", err)}
	}

	select {
	case body := <-reply:
		return body, nil
	case <-done:
		t.mu.Lock()
		readErr := t.readErr
		t.mu.Unlock()
		if readErr == nil {
			readErr = errConnClosed
		}
		return nil, &TransportError{URL: t.url, Err: readErr}
	case <-ctx.Done():
		return nil, &TransportError{URL: t.url, Err: ctx.Err()}
	}
}

func (t *wsTransport) readLoop(conn *websocket.Conn, done chan struct{}) {
	defer t.loopDone.Done()
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			t.mu.Lock()
			if t.conn == conn {
				t.conn = nil
			}
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				t.readErr = err
			}
			t.mu.Unlock()
			close(done)
			_ = conn.Close()
			return
		}

		id := jsonrpc.PeekID(data)
		t.mu.Lock()
		reply, ok := t.pending[id]
		t.mu.Unlock()
		if !ok {
			t.logger.Debug("dropping unsolicited websocket message", "url", t.url, "id", id)
			continue
		}
		select {
		case reply <- data:
		default:
		}
	}
}

// Close shuts the connection and waits for the reader to exit.
func (t *wsTransport) Close() error {
	t.mu.Lock()
	t.closed = true
	conn := t.conn
	t.conn = nil
	t.mu.Unlock()

	var err error
	if conn != nil {
		t.writeMu.Lock()
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second))
		t.writeMu.Unlock()
		err = conn.Close()
	}
	t.loopDone.Wait()
	return err
}
