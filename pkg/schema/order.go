package schema

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderSide defines the side of an order.
type OrderSide string

const (
	OrderSideBuy  OrderSide = "BUY"
	OrderSideSell OrderSide = "SELL"
)

// ExecutionType defines how an order is executed.
type ExecutionType string

const (
	ExecutionMarket ExecutionType = "MARKET"
	ExecutionLimit  ExecutionType = "LIMIT"
	ExecutionStop   ExecutionType = "STOP"
	ExecutionOCO    ExecutionType = "OCO" // FX only
)

// OrderRequest is a convenience builder for the /v1/order payload. The
// exchange validates the result; Body only drops unset fields.
type OrderRequest struct {
	Symbol        string
	Side          OrderSide
	ExecutionType ExecutionType
	Size          decimal.Decimal
	Price         decimal.NullDecimal // crypto LIMIT/STOP
	LimitPrice    decimal.NullDecimal // FX LIMIT/OCO
	StopPrice     decimal.NullDecimal // FX STOP/OCO
	LosscutPrice  decimal.NullDecimal
	TimeInForce   string
	ClientOrderID string
	CancelBefore  bool
}

// Body renders the request as a payload accepted by API.Order.
func (o OrderRequest) Body() Body {
	b := Body{
		"symbol":        o.Symbol,
		"side":          string(o.Side),
		"executionType": string(o.ExecutionType),
		"size":          o.Size.String(),
	}
	putDecimal(b, "price", o.Price)
	putDecimal(b, "limitPrice", o.LimitPrice)
	putDecimal(b, "stopPrice", o.StopPrice)
	putDecimal(b, "losscutPrice", o.LosscutPrice)
	if o.TimeInForce != "" {
		b["timeInForce"] = o.TimeInForce
	}
	if o.ClientOrderID != "" {
		b["clientOrderId"] = o.ClientOrderID
	}
	if o.CancelBefore {
		b["cancelBefore"] = true
	}
	return b
}

// CloseOrderRequest settles positions through /v1/closeOrder.
type CloseOrderRequest struct {
	Symbol        string
	Side          OrderSide
	ExecutionType ExecutionType
	Price         decimal.NullDecimal
	Positions     []SettlePosition
	ClientOrderID string
}

// SettlePosition names one position and the size to settle.
type SettlePosition struct {
	PositionID int64
	Size       decimal.Decimal
}

func (c CloseOrderRequest) Body() Body {
	b := Body{
		"symbol":        c.Symbol,
		"side":          string(c.Side),
		"executionType": string(c.ExecutionType),
	}
	putDecimal(b, "price", c.Price)
	if len(c.Positions) > 0 {
		settle := make([]map[string]any, 0, len(c.Positions))
		for _, p := range c.Positions {
			settle = append(settle, map[string]any{
				"positionId": p.PositionID,
				"size":       p.Size.String(),
			})
		}
		b["settlePosition"] = settle
	}
	if c.ClientOrderID != "" {
		b["clientOrderId"] = c.ClientOrderID
	}
	return b
}

// NewClientOrderID returns a 32 character alphanumeric id.
func NewClientOrderID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

func putDecimal(b Body, key string, d decimal.NullDecimal) {
	if d.Valid {
		b[key] = d.Decimal.String()
	}
}
