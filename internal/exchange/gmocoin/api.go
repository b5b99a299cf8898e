package gmocoin

import (
	"context"
	"net/http"

	"github.com/daaquan/gmocoin-connector/pkg/interfaces"
	"github.com/daaquan/gmocoin-connector/pkg/schema"
)

const (
	defaultTradesPage  = 1
	defaultTradesCount = 100
)

// API exposes every catalog operation as a method. Each method forwards a
// fixed (method, path, params, body) tuple to the Requester and returns its
// result unchanged; order payloads are not validated here.
type API struct {
	r interfaces.Requester
}

var _ interfaces.RESTClient = (*API)(nil)

// NewAPI wraps a Requester, usually a *Client.
func NewAPI(r interfaces.Requester) *API {
	return &API{r: r}
}

func (a *API) get(ctx context.Context, path string, params schema.Params) (any, error) {
	return a.r.Request(ctx, http.MethodGet, path, params, nil)
}

func (a *API) post(ctx context.Context, path string, body schema.Body) (any, error) {
	return a.r.Request(ctx, http.MethodPost, path, nil, body)
}

// GetStatus returns the exchange service status.
func (a *API) GetStatus(ctx context.Context) (any, error) {
	return a.get(ctx, apiV1Status, nil)
}

// GetTicker returns the latest rates of every symbol.
func (a *API) GetTicker(ctx context.Context) (any, error) {
	return a.get(ctx, apiV1Ticker, nil)
}

// GetKlines returns candles for symbol. date is YYYYMMDD (or YYYY for long
// intervals).
func (a *API) GetKlines(ctx context.Context, symbol, priceType, interval, date string) (any, error) {
	return a.get(ctx, apiV1Klines, schema.Params{
		{Key: "symbol", Value: symbol},
		{Key: "priceType", Value: priceType},
		{Key: "interval", Value: interval},
		{Key: "date", Value: date},
	})
}

func (a *API) GetOrderBooks(ctx context.Context, symbol string) (any, error) {
	return a.get(ctx, apiV1OrderBook, schema.Params{{Key: "symbol", Value: symbol}})
}

// GetTrades returns the trade history of symbol. A page or count of zero or
// less means the defaults, 1 and 100.
func (a *API) GetTrades(ctx context.Context, symbol string, page, count int) (any, error) {
	if page <= 0 {
		page = defaultTradesPage
	}
	if count <= 0 {
		count = defaultTradesCount
	}
	return a.get(ctx, apiV1Trades, schema.Params{
		{Key: "symbol", Value: symbol},
		{Key: "page", Value: page},
		{Key: "count", Value: count},
	})
}

func (a *API) GetSymbols(ctx context.Context) (any, error) {
	return a.get(ctx, apiV1Symbols, nil)
}

func (a *API) GetMargin(ctx context.Context) (any, error) {
	return a.get(ctx, apiV1Margin, nil)
}

func (a *API) GetAssets(ctx context.Context) (any, error) {
	return a.get(ctx, apiV1Assets, nil)
}

func (a *API) GetTradingVolume(ctx context.Context) (any, error) {
	return a.get(ctx, apiV1TradingVolume, nil)
}

func (a *API) GetFiatDepositHistory(ctx context.Context) (any, error) {
	return a.get(ctx, apiV1FiatDepositHist, nil)
}

func (a *API) GetFiatWithdrawalHistory(ctx context.Context) (any, error) {
	return a.get(ctx, apiV1FiatWithdrawalHist, nil)
}

func (a *API) GetDepositHistory(ctx context.Context) (any, error) {
	return a.get(ctx, apiV1DepositHist, nil)
}

func (a *API) GetWithdrawalHistory(ctx context.Context) (any, error) {
	return a.get(ctx, apiV1WithdrawalHist, nil)
}

func (a *API) GetOrders(ctx context.Context, params schema.Params) (any, error) {
	return a.get(ctx, apiV1Orders, params)
}

// GetActiveOrders lists open orders; params may be nil.
func (a *API) GetActiveOrders(ctx context.Context, params schema.Params) (any, error) {
	return a.get(ctx, apiV1ActiveOrders, params)
}

func (a *API) GetExecutions(ctx context.Context, params schema.Params) (any, error) {
	return a.get(ctx, apiV1Executions, params)
}

func (a *API) GetLatestExecutions(ctx context.Context, params schema.Params) (any, error) {
	return a.get(ctx, apiV1LatestExecutions, params)
}

// GetOpenPositions lists open positions; params may be nil.
func (a *API) GetOpenPositions(ctx context.Context, params schema.Params) (any, error) {
	return a.get(ctx, apiV1OpenPositions, params)
}

func (a *API) GetPositionSummary(ctx context.Context) (any, error) {
	return a.get(ctx, apiV1PositionSummary, nil)
}

func (a *API) SpeedOrder(ctx context.Context, body schema.Body) (any, error) {
	return a.post(ctx, apiV1SpeedOrder, body)
}

// Order places a standard order. See schema.OrderRequest for a typed builder.
func (a *API) Order(ctx context.Context, body schema.Body) (any, error) {
	return a.post(ctx, apiV1Order, body)
}

func (a *API) IfdOrder(ctx context.Context, body schema.Body) (any, error) {
	return a.post(ctx, apiV1IfdOrder, body)
}

func (a *API) IfoOrder(ctx context.Context, body schema.Body) (any, error) {
	return a.post(ctx, apiV1IfoOrder, body)
}

func (a *API) ChangeOrder(ctx context.Context, body schema.Body) (any, error) {
	return a.post(ctx, apiV1ChangeOrder, body)
}

func (a *API) ChangeOcoOrder(ctx context.Context, body schema.Body) (any, error) {
	return a.post(ctx, apiV1ChangeOcoOrder, body)
}

func (a *API) ChangeIfdOrder(ctx context.Context, body schema.Body) (any, error) {
	return a.post(ctx, apiV1ChangeIfdOrder, body)
}

func (a *API) ChangeIfoOrder(ctx context.Context, body schema.Body) (any, error) {
	return a.post(ctx, apiV1ChangeIfoOrder, body)
}

func (a *API) CancelOrders(ctx context.Context, body schema.Body) (any, error) {
	return a.post(ctx, apiV1CancelOrders, body)
}

func (a *API) CancelBulkOrder(ctx context.Context, body schema.Body) (any, error) {
	return a.post(ctx, apiV1CancelBulkOrder, body)
}

// CloseOrder settles open positions.
func (a *API) CloseOrder(ctx context.Context, body schema.Body) (any, error) {
	return a.post(ctx, apiV1CloseOrder, body)
}
