package interfaces

import (
	"context"
	"time"

	"github.com/gorilla/websocket"

	"github.com/daaquan/gmocoin-connector/pkg/schema"
)

// Requester issues one REST call against a logical path and returns the
// decoded JSON payload verbatim.
type Requester interface {
	Request(ctx context.Context, method, path string, params schema.Params, body schema.Body) (any, error)
}

// EndpointResolver maps a logical path to the request path and its visibility.
type EndpointResolver interface {
	Resolve(path string) schema.Endpoint
}

// ResolverFunc adapts a plain function to EndpointResolver.
type ResolverFunc func(path string) schema.Endpoint

func (f ResolverFunc) Resolve(path string) schema.Endpoint { return f(path) }

// RESTClient defines every named GMO Coin REST operation.
type RESTClient interface {
	// Market data
	GetStatus(ctx context.Context) (any, error)
	GetTicker(ctx context.Context) (any, error)
	GetKlines(ctx context.Context, symbol, priceType, interval, date string) (any, error)
	GetOrderBooks(ctx context.Context, symbol string) (any, error)
	GetTrades(ctx context.Context, symbol string, page, count int) (any, error)
	GetSymbols(ctx context.Context) (any, error)

	// Account
	GetMargin(ctx context.Context) (any, error)
	GetAssets(ctx context.Context) (any, error)
	GetTradingVolume(ctx context.Context) (any, error)
	GetFiatDepositHistory(ctx context.Context) (any, error)
	GetFiatWithdrawalHistory(ctx context.Context) (any, error)
	GetDepositHistory(ctx context.Context) (any, error)
	GetWithdrawalHistory(ctx context.Context) (any, error)

	// Orders and executions
	GetOrders(ctx context.Context, params schema.Params) (any, error)
	GetActiveOrders(ctx context.Context, params schema.Params) (any, error)
	GetExecutions(ctx context.Context, params schema.Params) (any, error)
	GetLatestExecutions(ctx context.Context, params schema.Params) (any, error)
	GetOpenPositions(ctx context.Context, params schema.Params) (any, error)
	GetPositionSummary(ctx context.Context) (any, error)

	// Order mutation
	SpeedOrder(ctx context.Context, body schema.Body) (any, error)
	Order(ctx context.Context, body schema.Body) (any, error)
	IfdOrder(ctx context.Context, body schema.Body) (any, error)
	IfoOrder(ctx context.Context, body schema.Body) (any, error)
	ChangeOrder(ctx context.Context, body schema.Body) (any, error)
	ChangeOcoOrder(ctx context.Context, body schema.Body) (any, error)
	ChangeIfdOrder(ctx context.Context, body schema.Body) (any, error)
	ChangeIfoOrder(ctx context.Context, body schema.Body) (any, error)
	CancelOrders(ctx context.Context, body schema.Body) (any, error)
	CancelBulkOrder(ctx context.Context, body schema.Body) (any, error)
	CloseOrder(ctx context.Context, body schema.Body) (any, error)
}

// WSConn abstracts websocket Conn for testability.
type WSConn interface {
	WriteJSON(v any) error
	ReadMessage() (messageType int, p []byte, err error)
	SetReadDeadline(t time.Time) error
	SetWriteDeadline(t time.Time) error
	Close() error
}

// Listener pulls public market data one message at a time.
type Listener interface {
	Subscribe(ctx context.Context, symbol string, channel schema.Channel) error
	Unsubscribe(ctx context.Context, symbol string, channel schema.Channel) error
	ReceiveNext(ctx context.Context) (any, error)
	Close()
}

// Exchange bundles market type and available clients.
type Exchange interface {
	Name() schema.ExchangeName
	Market() schema.MarketType
	REST() RESTClient
	// Listen opens a public WebSocket listener for this market.
	Listen(ctx context.Context) (Listener, error)
}

// WSShim adapts real *websocket.Conn to WSConn.
type WSShim struct{ *websocket.Conn }

func (w WSShim) WriteJSON(v any) error              { return w.Conn.WriteJSON(v) }
func (w WSShim) ReadMessage() (int, []byte, error)  { return w.Conn.ReadMessage() }
func (w WSShim) SetReadDeadline(t time.Time) error  { return w.Conn.SetReadDeadline(t) }
func (w WSShim) SetWriteDeadline(t time.Time) error { return w.Conn.SetWriteDeadline(t) }
func (w WSShim) Close() error                       { return w.Conn.Close() }
