package gmocoin

import (
	"net/http"

	"github.com/daaquan/gmocoin-connector/pkg/schema"
)

// Logical paths. The wire path is the visibility prefix followed by one of these.
const (
	apiV1Status    = "/v1/status"
	apiV1Ticker    = "/v1/ticker"
	apiV1Klines    = "/v1/klines"
	apiV1OrderBook = "/v1/orderbooks"
	apiV1Trades    = "/v1/trades"
	apiV1Symbols   = "/v1/symbols"

	apiV1Margin             = "/v1/account/margin"
	apiV1Assets             = "/v1/account/assets"
	apiV1TradingVolume      = "/v1/account/tradingVolume"
	apiV1FiatDepositHist    = "/v1/account/fiatDeposit/history"
	apiV1FiatWithdrawalHist = "/v1/account/fiatWithdrawal/history"
	apiV1DepositHist        = "/v1/account/deposit/history"
	apiV1WithdrawalHist     = "/v1/account/withdrawal/history"

	apiV1Orders           = "/v1/orders"
	apiV1ActiveOrders     = "/v1/activeOrders"
	apiV1Executions       = "/v1/executions"
	apiV1LatestExecutions = "/v1/latestExecutions"
	apiV1OpenPositions    = "/v1/openPositions"
	apiV1PositionSummary  = "/v1/positionSummary"

	apiV1SpeedOrder      = "/v1/speedOrder"
	apiV1Order           = "/v1/order"
	apiV1IfdOrder        = "/v1/ifdOrder"
	apiV1IfoOrder        = "/v1/ifoOrder"
	apiV1ChangeOrder     = "/v1/changeOrder"
	apiV1ChangeOcoOrder  = "/v1/changeOcoOrder"
	apiV1ChangeIfdOrder  = "/v1/changeIfdOrder"
	apiV1ChangeIfoOrder  = "/v1/changeIfoOrder"
	apiV1CancelOrders    = "/v1/cancelOrders"
	apiV1CancelBulkOrder = "/v1/cancelBulkOrder"
	apiV1CloseOrder      = "/v1/closeOrder"
)

func public(name, path string) schema.Operation {
	return schema.Operation{Name: name, Method: http.MethodGet, Path: path, Visibility: schema.PUBLIC}
}

func privateGet(name, path string) schema.Operation {
	return schema.Operation{Name: name, Method: http.MethodGet, Path: path, Visibility: schema.PRIVATE}
}

func privatePost(name, path string) schema.Operation {
	return schema.Operation{Name: name, Method: http.MethodPost, Path: path, Visibility: schema.PRIVATE}
}

var catalog = []schema.Operation{
	public("status", apiV1Status),
	public("ticker", apiV1Ticker),
	public("klines", apiV1Klines),
	public("orderbooks", apiV1OrderBook),
	public("trades", apiV1Trades),
	public("symbols", apiV1Symbols),

	privateGet("margin", apiV1Margin),
	privateGet("assets", apiV1Assets),
	privateGet("tradingVolume", apiV1TradingVolume),
	privateGet("fiatDepositHistory", apiV1FiatDepositHist),
	privateGet("fiatWithdrawalHistory", apiV1FiatWithdrawalHist),
	privateGet("depositHistory", apiV1DepositHist),
	privateGet("withdrawalHistory", apiV1WithdrawalHist),

	privateGet("orders", apiV1Orders),
	privateGet("activeOrders", apiV1ActiveOrders),
	privateGet("executions", apiV1Executions),
	privateGet("latestExecutions", apiV1LatestExecutions),
	privateGet("openPositions", apiV1OpenPositions),
	privateGet("positionSummary", apiV1PositionSummary),

	privatePost("speedOrder", apiV1SpeedOrder),
	privatePost("order", apiV1Order),
	privatePost("ifdOrder", apiV1IfdOrder),
	privatePost("ifoOrder", apiV1IfoOrder),
	privatePost("changeOrder", apiV1ChangeOrder),
	privatePost("changeOcoOrder", apiV1ChangeOcoOrder),
	privatePost("changeIfdOrder", apiV1ChangeIfdOrder),
	privatePost("changeIfoOrder", apiV1ChangeIfoOrder),
	privatePost("cancelOrders", apiV1CancelOrders),
	privatePost("cancelBulkOrder", apiV1CancelBulkOrder),
	privatePost("closeOrder", apiV1CloseOrder),
}

var visibilityByPath = func() map[string]schema.Visibility {
	m := make(map[string]schema.Visibility, len(catalog))
	for _, op := range catalog {
		m[op.Path] = op.Visibility
	}
	return m
}()

// Catalog returns a copy of every named operation.
func Catalog() []schema.Operation {
	out := make([]schema.Operation, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup returns the visibility registered for a logical path.
func Lookup(path string) (schema.Visibility, bool) {
	v, ok := visibilityByPath[path]
	return v, ok
}
