package gmocoin

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/daaquan/gmocoin-connector/pkg/interfaces"
	"github.com/daaquan/gmocoin-connector/pkg/logger"
	"github.com/daaquan/gmocoin-connector/pkg/schema"
)

const (
	commandSubscribe   = "subscribe"
	commandUnsubscribe = "unsubscribe"
)

// ListenerState is the lifecycle state of a Listener.
type ListenerState int

const (
	StateDisconnected ListenerState = iota
	StateConnected
	// StateFailed is terminal: a read or write failed, or the context of a
	// pending call ended. Only Close is meaningful afterwards.
	StateFailed
	StateClosed
)

func (s ListenerState) String() string {
	switch s {
	case StateConnected:
		return "connected"
	case StateFailed:
		return "failed"
	case StateClosed:
		return "closed"
	default:
		return "disconnected"
	}
}

// subscriptionMessage is the command frame of the public stream.
type subscriptionMessage struct {
	Command string         `json:"command"`
	Channel schema.Channel `json:"channel"`
	Symbol  string         `json:"symbol"`
}

// Listener is a single-owner public WebSocket client: open, subscribe,
// pull messages one at a time, close. It never reconnects.
type Listener struct {
	url  string
	conn interfaces.WSConn

	mu    sync.Mutex
	state ListenerState
}

var _ interfaces.Listener = (*Listener)(nil)

// DialOption customizes the websocket dialer.
type DialOption func(*websocket.Dialer)

// WithHandshakeTimeout overrides the 10s handshake timeout.
func WithHandshakeTimeout(d time.Duration) DialOption {
	return func(d2 *websocket.Dialer) { d2.HandshakeTimeout = d }
}

// WithTLSConfig sets the TLS configuration used for wss URLs.
func WithTLSConfig(cfg *tls.Config) DialOption {
	return func(d *websocket.Dialer) { d.TLSClientConfig = cfg }
}

// Dial opens a connection to url. Failure returns a *schema.ConnectionError.
func Dial(ctx context.Context, url string, opts ...DialOption) (*Listener, error) {
	d := &websocket.Dialer{
		Proxy:            http.ProxyFromEnvironment,
		HandshakeTimeout: 10 * time.Second,
	}
	for _, opt := range opts {
		opt(d)
	}

	logger.Info("GMO Coin WS 开始连接 %s", url)
	conn, _, err := d.DialContext(ctx, url, nil)
	if err != nil {
		logger.Error("GMO Coin WS 连接失败: %v", err)
		return nil, &schema.ConnectionError{URL: url, Err: err}
	}
	logger.Info("GMO Coin WS 连接成功")
	return NewListener(url, interfaces.WSShim{Conn: conn}), nil
}

// NewListener wraps an already open connection.
func NewListener(url string, conn interfaces.WSConn) *Listener {
	return &Listener{url: url, conn: conn, state: StateConnected}
}

// State returns the current lifecycle state.
func (l *Listener) State() ListenerState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

func (l *Listener) connected() bool {
	return l.State() == StateConnected
}

// fail moves a connected listener to StateFailed. gorilla/websocket does not
// recover from a read or write error, so the connection is never used again.
func (l *Listener) fail() {
	l.mu.Lock()
	if l.state == StateConnected {
		l.state = StateFailed
	}
	l.mu.Unlock()
}

// watch closes the connection when ctx ends so a blocked read or write
// returns. The returned func stops watching.
func (l *Listener) watch(ctx context.Context) func() bool {
	return context.AfterFunc(ctx, func() {
		l.fail()
		_ = l.conn.Close()
	})
}

// Subscribe asks for channel updates of symbol. An empty channel means ticker.
func (l *Listener) Subscribe(ctx context.Context, symbol string, channel schema.Channel) error {
	return l.send(ctx, commandSubscribe, symbol, channel)
}

// Unsubscribe stops channel updates of symbol.
func (l *Listener) Unsubscribe(ctx context.Context, symbol string, channel schema.Channel) error {
	return l.send(ctx, commandUnsubscribe, symbol, channel)
}

func (l *Listener) send(ctx context.Context, command, symbol string, channel schema.Channel) error {
	if !l.connected() {
		return &schema.SendError{Err: schema.ErrListenerClosed}
	}
	if channel == "" {
		channel = schema.ChannelTicker
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = l.conn.SetWriteDeadline(deadline)
		defer l.conn.SetWriteDeadline(time.Time{})
	}
	defer l.watch(ctx)()

	msg := subscriptionMessage{Command: command, Channel: channel, Symbol: symbol}
	logger.Debug("GMO Coin WS SendMessage: %+v", msg)
	if err := l.conn.WriteJSON(msg); err != nil {
		l.fail()
		logger.Error("GMO Coin WS 发送消息失败: %v", err)
		return &schema.SendError{Err: contextErr(ctx, err)}
	}
	return nil
}

// ReceiveNext blocks until one message arrives and returns it decoded.
// The wait ends when ctx is cancelled or its deadline passes; either case
// ends the listener as well, and every later call fails with
// schema.ErrListenerClosed. Use a fresh listener to keep streaming.
func (l *Listener) ReceiveNext(ctx context.Context) (any, error) {
	if !l.connected() {
		return nil, &schema.ReceiveError{Err: schema.ErrListenerClosed}
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = l.conn.SetReadDeadline(deadline)
		defer l.conn.SetReadDeadline(time.Time{})
	}
	defer l.watch(ctx)()

	_, data, err := l.conn.ReadMessage()
	if err != nil {
		l.fail()
		return nil, &schema.ReceiveError{Err: contextErr(ctx, err)}
	}
	logger.Debug("GMO Coin WS 原始消息: %s", string(data))
	return decodeJSON(data)
}

// contextErr prefers the context error when ctx ended the call.
func contextErr(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("%w: %v", ctxErr, err)
	}
	return err
}

// Close releases the connection. Errors are logged and swallowed, and
// calling Close more than once is harmless.
func (l *Listener) Close() {
	l.mu.Lock()
	if l.state == StateClosed {
		l.mu.Unlock()
		return
	}
	l.state = StateClosed
	conn := l.conn
	l.mu.Unlock()

	if conn == nil {
		return
	}
	if err := conn.Close(); err != nil {
		logger.Debug("GMO Coin WS 关闭连接: %v", err)
	}
}
